package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"countries-api/core/dataset"
	"countries-api/core/reconcile"
	"countries-api/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pushObject string

// datasetCmd represents the dataset command
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the country dataset",
}

// datasetPushCmd represents the dataset push command
var datasetPushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Validate a dataset file and upload it to the storage bucket",
	Long: `Decodes the file with the same rules used at startup and, if it is valid,
uploads it to the configured bucket so the storage source can serve it.
The bucket is created when it does not exist.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logg.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		object := pushObject
		if object == "" {
			object = cfg.Dataset.Object
		}

		timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		n, err := dataset.Publish(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region, object, data)
		if err != nil {
			return err
		}

		logg.Info("Dataset uploaded",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", object),
			zap.Int("records", n))
		return nil
	},
}

// datasetCheckCmd represents the dataset check command
var datasetCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the configured dataset and print index statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := catalogForCLI(cmd)
		if err != nil {
			return err
		}
		stats := catalog.Stats()
		_, err = fmt.Fprintf(cmd.OutOrStdout(),
			"Records:        %d\nName keys:      %d\nRegions:        %d\nUnnamed (skip): %d\n",
			stats.Records, stats.NameKeys, stats.Regions, stats.NameSkipped)
		return err
	},
}

// datasetDiffCmd represents the dataset diff command
var datasetDiffCmd = &cobra.Command{
	Use:   "diff <source> <source> [source]",
	Short: "Compare the dataset copies held by file, storage and database",
	Long: `Loads the dataset from each named source (file, storage, database) and
reports records missing from a source, duplicated in a source, or whose
top-level fields differ. Exits non-zero when the copies diverge.`,
	Example: `  countries-api dataset diff file storage
  countries-api dataset diff file storage database`,
	Args:      cobra.RangeArgs(2, 3),
	ValidArgs: []string{dataset.SourceFile, dataset.SourceStorage, dataset.SourceDatabase},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logg.Sync()

		sources := make([]dataset.Source, 0, len(args))
		for _, name := range args {
			src, err := openNamedSource(cfg, name)
			if err != nil {
				return err
			}
			sources = append(sources, src)
		}

		timeout := time.Duration(cfg.Dataset.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		report, err := reconcile.Compare(ctx, sources...)
		if err != nil {
			return err
		}

		diverged := report.Diverged()
		if err := printJSON(cmd.OutOrStdout(), diverged); err != nil {
			return err
		}
		logg.Info("Dataset comparison finished",
			zap.Strings("sources", report.Sources),
			zap.Any("counts", report.Counts),
			zap.Int("keys", len(report.Results)),
			zap.Int("diverged", len(diverged)))

		if len(diverged) > 0 {
			return fmt.Errorf("%d of %d records diverge", len(diverged), len(report.Results))
		}
		return nil
	},
}

func init() {
	datasetPushCmd.Flags().StringVar(&pushObject, "object", "", "object key, defaults to dataset.object")
	datasetCmd.AddCommand(datasetPushCmd, datasetCheckCmd, datasetDiffCmd)
	RootCmd.AddCommand(datasetCmd)
}
