package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bbernstein/flixgo/internal/trips"
)

var searchCmd = &cobra.Command{
	Use:   "search <from_station_id> <to_station_id>",
	Short: "Searches trips between two stations",
	Args:  cobra.ExactArgs(2),
	RunE:  search,
}

var (
	dateStr string
	earlier bool
)

func init() {
	searchCmd.Flags().StringVarP(&dateStr, "date", "d", "", "Departure date/time (2006-01-02 or 2006-01-02T15:04, operator-local)")
	searchCmd.Flags().BoolVarP(&earlier, "earlier", "e", false, "Also fetch same-day trips before the anchor")
}

func search(cmd *cobra.Command, args []string) error {
	service, directory, err := newTripService()
	if err != nil {
		return err
	}

	ctx := context.Background()

	from, err := directory.Resolve(ctx, args[0])
	if err != nil {
		return fmt.Errorf("resolving origin: %w", err)
	}
	to, err := directory.Resolve(ctx, args[1])
	if err != nil {
		return fmt.Errorf("resolving destination: %w", err)
	}

	anchor, err := parseAnchor(dateStr)
	if err != nil {
		return err
	}

	result, err := service.SearchTrips(ctx, *from, *to, anchor)
	if err != nil {
		return err
	}
	printResult(result)

	if earlier && result.Context.CanQueryEarlier {
		fmt.Println("--- earlier the same day ---")
		earlierResult, err := service.ContinueEarlier(ctx, result.Context)
		if err != nil {
			return err
		}
		printResult(earlierResult)
	}

	return nil
}

func parseAnchor(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}

	zone, err := time.LoadLocation(cfg.OperatorTimeZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading operator timezone: %w", err)
	}

	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, zone); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("'%s' is not a valid date (want 2006-01-02 or 2006-01-02T15:04)", value)
}

func printResult(result *trips.TripsResult) {
	if len(result.Trips) == 0 {
		fmt.Println("no trips found")
	}

	for _, trip := range result.Trips {
		fmt.Printf("%s -> %s  %s -> %s  (%d transfers)\n",
			trip.From.Name, trip.To.Name,
			trip.Departure().Format(time.RFC3339),
			trip.Arrival().Format(time.RFC3339),
			trip.Transfers())
		for _, leg := range trip.Legs {
			fmt.Printf("  %s  %s -> %s  %s\n",
				leg.Line.Label,
				leg.Boarding.Location.Name,
				leg.Alighting.Location.Name,
				leg.Boarding.Time.Format("15:04"))
		}
	}

	for _, anomaly := range result.Anomalies {
		fmt.Printf("warning: %v\n", anomaly)
	}
}
