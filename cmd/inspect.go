package cmd

import (
	"errors"
	"fmt"
	"io"

	"countries-api/core/dataset"

	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report facts about the dataset",
}

// longestNameCmd represents the inspect longest-name command
var longestNameCmd = &cobra.Command{
	Use:   "longest-name",
	Short: "Find the longest name variant in the dataset",
	Long:  `Scans common, official, native and translated names of every country with a common name and reports the longest one. Useful for sizing name columns and UI labels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logg.Sync()

		records, err := loadRecords(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		longest, ok := dataset.FindLongestName(records)
		if !ok {
			return errors.New("dataset has no named countries")
		}
		return printLongestName(cmd.OutOrStdout(), longest)
	},
}

func printLongestName(w io.Writer, l dataset.LongestName) error {
	kind := l.Variant.Kind
	if l.Variant.Lang != "" {
		kind += " (" + l.Variant.Lang + ")"
	}
	_, err := fmt.Fprintf(w, "Country: %s\nType:    %s\nName:    %q\nLength:  %d\n",
		l.Country, kind, l.Variant.Name, l.Length)
	return err
}

func init() {
	inspectCmd.AddCommand(longestNameCmd)
	RootCmd.AddCommand(inspectCmd)
}
