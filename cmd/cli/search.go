package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/voalerta/flight-service/internal/flight"
	"github.com/voalerta/flight-service/internal/search"
)

var (
	searchOrigin      string
	searchDestination string
	searchDeparture   string
	searchReturn      string
	searchAdults      int
	searchClass       string
	searchOutput      string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a smart search for a route",
	Long: `Search flight offers for a route, sweeping flexible dates, nearby airports
and alternative cabin classes alongside the requested parameters, then report
the cheapest option found.`,
	Example: `  flight-service search --origin GRU --destination JFK --departure 2026-10-15
  flight-service search --origin GRU --destination LIS --departure 2026-10-15 --return 2026-10-29 --output json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchOrigin, "origin", "", "Origin IATA code (required)")
	searchCmd.Flags().StringVar(&searchDestination, "destination", "", "Destination IATA code (required)")
	searchCmd.Flags().StringVar(&searchDeparture, "departure", "", "Departure date YYYY-MM-DD (required)")
	searchCmd.Flags().StringVar(&searchReturn, "return", "", "Return date YYYY-MM-DD (one-way if empty)")
	searchCmd.Flags().IntVar(&searchAdults, "adults", 1, "Number of adult passengers")
	searchCmd.Flags().StringVar(&searchClass, "class", flight.ClassEconomy, "Cabin class")
	searchCmd.Flags().StringVar(&searchOutput, "output", "table", "Output format: table or json")
	searchCmd.MarkFlagRequired("origin")
	searchCmd.MarkFlagRequired("destination")
	searchCmd.MarkFlagRequired("departure")
}

func runSearch(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}

	engine := search.NewEngine(provider, search.Config{
		FlexDays:     cfg.Search.FlexDays,
		MinDaysAhead: cfg.Search.MinDaysAhead,
		CallTimeout:  cfg.Search.CallTimeout,
	})

	params := flight.SearchParams{
		Origin:        strings.ToUpper(searchOrigin),
		Destination:   strings.ToUpper(searchDestination),
		DepartureDate: searchDeparture,
		ReturnDate:    searchReturn,
		Adults:        searchAdults,
		TravelClass:   strings.ToUpper(searchClass),
	}

	logger.Info().
		Str("origin", params.Origin).
		Str("destination", params.Destination).
		Str("departure", params.DepartureDate).
		Msg("Running smart search")

	bundle, err := engine.Run(context.Background(), params)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	formatted := bundle.Format()

	switch strings.ToLower(searchOutput) {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(formatted)
	case "table":
		outputSearchTable(bundle, formatted)
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", searchOutput)
	}

	return nil
}

func outputSearchTable(bundle *search.Bundle, formatted search.FormattedBundle) {
	fmt.Println()
	if bundle.Original != nil {
		fmt.Printf("Requested route: %.2f %s\n", bundle.Original.Price, bundle.Original.Currency)
	} else {
		fmt.Println("Requested route: no offers found")
	}

	if best := formatted.Recommendations.BestDeal; best != nil {
		fmt.Printf("Best deal:       %.2f %s (%s)\n", best.Price, best.Currency, best.Source)
		if best.Savings != nil {
			fmt.Printf("Savings:         %.2f (%.1f%%)\n", *best.Savings, *best.SavingsPercent)
		}
	}

	if len(formatted.Recommendations.FlexibleDates) > 0 {
		fmt.Println("\nFlexible dates:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "DEPARTURE\tRETURN\tPRICE\tSAVINGS")
		for _, opt := range formatted.Recommendations.FlexibleDates {
			savings := "-"
			if opt.Savings != nil {
				savings = fmt.Sprintf("%.2f", *opt.Savings)
			}
			fmt.Fprintf(w, "%s\t%s\t%.2f %s\t%s\n", opt.DepartureDate, opt.ReturnDate, opt.Price, opt.Currency, savings)
		}
		w.Flush()
	}

	if len(formatted.Recommendations.NearbyAirports) > 0 {
		fmt.Println("\nNearby airports:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ROUTE\tPRICE")
		for _, opt := range formatted.Recommendations.NearbyAirports {
			fmt.Fprintf(w, "%s-%s\t%.2f %s\n", opt.Origin, opt.Destination, opt.Price, opt.Currency)
		}
		w.Flush()
	}

	if len(formatted.Recommendations.DifferentClasses) > 0 {
		fmt.Println("\nOther cabin classes:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CLASS\tPRICE")
		for _, opt := range formatted.Recommendations.DifferentClasses {
			fmt.Fprintf(w, "%s\t%.2f %s\n", opt.Class, opt.Price, opt.Currency)
		}
		w.Flush()
	}
	fmt.Println()
}
