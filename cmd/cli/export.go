package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/voalerta/flight-service/internal/database"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <flight-id>",
	Short: "Export a flight's price history to a spreadsheet",
	Example: `  flight-service export 2f1f5b0e-8a43-4c6e-9f70-1c8a31d2b9aa
  flight-service export 2f1f5b0e-8a43-4c6e-9f70-1c8a31d2b9aa --out history.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOutput, "out", "price-history.xlsx", "Output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	trip, err := database.GetTrip(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load flight: %w", err)
	}

	history, err := database.PriceHistory(ctx, trip.ID, 40000)
	if err != nil {
		return fmt.Errorf("failed to load price history: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Price History"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Checked At", "Price", "Currency"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, obs := range history {
		values := []any{obs.CheckedAt.Format("2006-01-02 15:04:05"), obs.Price, obs.Currency}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.SaveAs(exportOutput); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}

	logger.Info().
		Str("flight", trip.ID).
		Int("observations", len(history)).
		Str("file", exportOutput).
		Msg("Price history exported")
	return nil
}
