package main

import (
	"os"

	"github.com/spf13/cobra"

	"mirrorly/internal/interfaces/cli/migrate"
	"mirrorly/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mirrorly",
		Short: "Mirrorly - chat mirroring billing service",
		Long:  `Mirrorly processes payment gateway webhooks and reconciles mirror entitlements against subscription tiers.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
