package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/point-of-sales/storefront-service/config"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/app"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the storefront HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		server := app.App{
			Config: config.CreateNewConfig(),
		}

		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit

			if err := server.StopServer(); err != nil {
				log.Error().Err(err).Str("component", "App").Msg("Failed to stop server cleanly")
			}
		}()

		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
