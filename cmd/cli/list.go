package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/voalerta/flight-service/internal/database"
	"github.com/voalerta/flight-service/internal/flight"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitored flights",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	trips, err := database.ListTrips(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load flights: %w", err)
	}

	if len(trips) == 0 {
		fmt.Println("No monitored flights")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tROUTE\tDEPARTURE\tACTIVE\tLAST PRICE\tLOWEST")
	for _, t := range trips {
		last := "-"
		if t.LastPrice != nil {
			last = fmt.Sprintf("%.2f", *t.LastPrice)
		}
		lowest := "-"
		if t.LowestPrice != nil {
			lowest = fmt.Sprintf("%.2f", *t.LowestPrice)
		}
		fmt.Fprintf(w, "%s\t%s-%s\t%s\t%t\t%s\t%s\n",
			t.ID, t.Origin, t.Destination, t.DepartureDate.Format(flight.DateLayout), t.IsActive, last, lowest)
	}
	return w.Flush()
}
