package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggests stations matching a free-text query",
	Args:  cobra.ExactArgs(1),
	RunE:  suggest,
}

var nearbyCmd = &cobra.Command{
	Use:   "nearby <lat> <lon>",
	Short: "Lists stations near a geographical location",
	Args:  cobra.ExactArgs(2),
	RunE:  nearby,
}

var nearbyLimit int

func init() {
	nearbyCmd.Flags().IntVarP(&nearbyLimit, "limit", "l", 5, "Limit the number of stations returned")
}

func suggest(cmd *cobra.Command, args []string) error {
	directory, err := newDirectory()
	if err != nil {
		return err
	}

	locations, err := directory.Suggest(context.Background(), args[0])
	if err != nil {
		return err
	}

	for _, location := range locations {
		fmt.Printf("%s  %s\n", location.ID, location.Name)
	}
	return nil
}

func nearby(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("'%s' is not a valid latitude", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("'%s' is not a valid longitude", args[1])
	}

	directory, err := newDirectory()
	if err != nil {
		return err
	}

	locations, err := directory.FindNearest(context.Background(), lat, lon, nearbyLimit)
	if err != nil {
		return err
	}

	for _, location := range locations {
		fmt.Printf("%s  %s  %.1f km\n", location.ID, location.Name, location.Distance)
	}
	return nil
}
