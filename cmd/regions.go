package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"countries-api/core/index"
	"countries-api/core/metrics"

	"github.com/spf13/cobra"
)

// regionsCmd represents the regions command
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Print the region summaries of the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := catalogForCLI(cmd)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), catalog.Regions())
	},
}

// catalogForCLI loads the configured dataset for one-shot commands.
func catalogForCLI(cmd *cobra.Command) (*index.Catalog, error) {
	cfg, logg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	defer logg.Sync()
	return loadCatalog(cmd.Context(), cfg, logg, metrics.New())
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func init() {
	RootCmd.AddCommand(regionsCmd)
}
