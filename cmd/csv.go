package cmd

import (
	"errors"
	"fmt"
	"os"

	"garment-stock/core/query"
	"garment-stock/core/storage"
	"garment-stock/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	csvOut    string
	csvUpload bool
)

// csvCmd exports the inventory as CSV.
var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the inventory as CSV",
	Long: `Writes the inventory as CSV to stdout, to a file (--out) or to the export bucket (--upload).

Examples:
  csv > stock.csv
  csv --out inventory_export.csv
  csv --upload`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		var client storage.Client
		if csvUpload {
			if client, err = storage.NewClient(rt.cfg.Storage); err != nil {
				return fmt.Errorf("failed to connect to storage: %w", err)
			}
		}
		svc := inventory.NewService(rt.engine, client, rt.cfg.Storage, nil, rt.log)

		if csvUpload {
			name, err := svc.PublishCSV(ctx)
			if errors.Is(err, query.ErrNoData) {
				fmt.Println("No data to export")
				return nil
			}
			if err != nil {
				return err
			}
			rt.log.Info("CSV uploaded", zap.String("bucket", rt.cfg.Storage.Bucket), zap.String("object", name))
			return nil
		}

		data, err := svc.CSV(ctx, query.Options{})
		if errors.Is(err, query.ErrNoData) {
			fmt.Println("No data to export")
			return nil
		}
		if err != nil {
			return err
		}

		if csvOut == "" {
			fmt.Println(data)
			return nil
		}
		if err := os.WriteFile(csvOut, []byte(data), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", csvOut, err)
		}
		rt.log.Info("CSV written", zap.String("path", csvOut))
		return nil
	},
}

func init() {
	csvCmd.Flags().StringVar(&csvOut, "out", "", "Write to this file instead of stdout")
	csvCmd.Flags().BoolVar(&csvUpload, "upload", false, "Upload to the export bucket")
	RootCmd.AddCommand(csvCmd)
}
