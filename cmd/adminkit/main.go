package main

import (
	"os"

	"github.com/spf13/cobra"

	"adminkit/internal/interfaces/cli/admin"
	"adminkit/internal/interfaces/cli/migrate"
	"adminkit/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "adminkit",
		Short: "adminkit - admin backend with session-tracked authentication",
		Long:  `adminkit serves the admin CRUD API with JWT authentication, a session audit ledger, and the supporting migration and operator tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
