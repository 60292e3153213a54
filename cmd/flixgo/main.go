package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bbernstein/flixgo/internal/config"
	"github.com/bbernstein/flixgo/internal/station"
	"github.com/bbernstein/flixgo/internal/trips"
	"github.com/bbernstein/flixgo/pkg/http/client"
)

var rootCmd = &cobra.Command{
	Use:          "flixgo",
	Short:        "FlixBus trip search tool",
	Long:         "Searches trips and stations on the FlixBus network",
	SilenceUsage: true,
}

var cfg *config.Config

func init() {
	cfg = config.LoadFromEnv()
	cfg.InitializeLogging()

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(nearbyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newHTTPClient() *client.Client {
	return client.New(client.Options{
		BaseURL:    cfg.APIBaseURL,
		AuthToken:  cfg.APIAuthToken,
		Timeout:    cfg.HTTPTimeout,
		MaxRetries: cfg.MaxRetries,
	})
}

func newDirectory() (*station.Directory, error) {
	return station.NewDirectory(newHTTPClient(), nil)
}

func newTripService() (*trips.Service, *station.Directory, error) {
	directory, err := newDirectory()
	if err != nil {
		return nil, nil, fmt.Errorf("creating station directory: %w", err)
	}

	zone, err := time.LoadLocation(cfg.OperatorTimeZone)
	if err != nil {
		return nil, nil, fmt.Errorf("loading operator timezone %s: %w", cfg.OperatorTimeZone, err)
	}

	service := trips.NewService(newHTTPClient(), directory, trips.WithOperatorTimeZone(zone))
	return service, directory, nil
}
