package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront and admin dashboard backend-for-frontend",
	Long: `Serves storefront and admin dashboard view models built from the upstream
catalog and user endpoints. Usage:

	storefront serve
	storefront stats
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}
