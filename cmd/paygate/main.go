package main

import (
	"os"

	"github.com/spf13/cobra"

	"paygate/internal/interfaces/cli/migrate"
	"paygate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paygate",
		Short: "MMG Checkout payment gateway service",
		Long:  `Paygate bridges a storefront to the MMG Checkout hosted payment page: it issues encrypted checkout tokens and processes signed payment result callbacks.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
