package main

import (
	"encoding/json"
	"fmt"

	"github.com/alimikegami/point-of-sales/storefront-service/config"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/app"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/fetcher"
	circuitbreaker "github.com/alimikegami/point-of-sales/storefront-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/repository"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/service"
	"github.com/alimikegami/point-of-sales/storefront-service/pkg/httpclient"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Fetches the user list once and prints the dashboard counters as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.CreateNewConfig()
		app.SetupLogger(cfg.LogLevel)

		endpoints, err := config.LoadEndpoints(cfg.BackendConfig.EndpointsFile)
		if err != nil {
			return err
		}

		repo := repository.CreateNewRepository(
			fetcher.New(fetcher.LogObserver{}),
			httpclient.NewClient(cfg.BackendConfig.Timeout, cfg.BackendConfig.MaxBodyBytes),
			circuitbreaker.NewRegistry(),
			cfg.BackendConfig.BaseURL,
			endpoints,
		)

		stats, err := service.CreateDashboardService(repo, cfg).GetStats(cmd.Context())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
