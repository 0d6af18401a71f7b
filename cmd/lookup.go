package cmd

import (
	"fmt"

	"countries-api/core/dataset"
	"countries-api/core/index"
	"countries-api/core/normalize"
	"countries-api/core/query"
	"countries-api/core/value"

	"github.com/spf13/cobra"
)

var (
	lookupRegion  bool
	lookupFields  string
	lookupSort    string
	lookupFlatten bool
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Look countries up by name or region",
	Long: `Looks countries up the same way the API does and prints the JSON result.
Names match common, official, native and translated names, ignoring case,
accents and separators.`,
	Example: `  countries-api lookup "cote d'ivoire" --fields name.common,capital
  countries-api lookup europe --region --sort -population --fields name.common --flatten`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := catalogForCLI(cmd)
		if err != nil {
			return err
		}

		result, err := lookup(catalog, args[0], lookupRegion,
			query.ParseOptions(lookupFields, lookupSort, lookupFlatten))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

func lookup(catalog *index.Catalog, name string, byRegion bool, opts query.Options) ([]*value.Value, error) {
	key := normalize.Key(name)

	var records []*dataset.Record
	var ok bool
	if byRegion {
		records, ok = catalog.LookupRegion(key)
	} else {
		records, ok = catalog.LookupName(key)
	}
	if !ok {
		kind := "country"
		if byRegion {
			kind = "region"
		}
		return nil, fmt.Errorf("no %s matches %q", kind, name)
	}
	return query.Apply(dataset.Documents(records), opts), nil
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupRegion, "region", false, "treat the argument as a region name")
	lookupCmd.Flags().StringVar(&lookupFields, "fields", "", "comma-separated field paths to keep")
	lookupCmd.Flags().StringVar(&lookupSort, "sort", "", "comma-separated field paths, '-' prefix for descending")
	lookupCmd.Flags().BoolVar(&lookupFlatten, "flatten", false, "print bare values when exactly one field is kept")
	RootCmd.AddCommand(lookupCmd)
}
