// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"quotemaster/dbctl/internal/config"
	"quotemaster/dbctl/internal/logging"
)

// dbinfoCmd displays the connection string dbctl would use, password
// masked, together with the source it resolved from.
var dbinfoCmd = &cobra.Command{
	Use:   "dbinfo",
	Short: "Show current database connection string",
	Long: `The dbinfo command displays the currently configured database connection
string (DSN) with the password masked. It also names the source the value
resolved from: the --dsn flag, DBCTL_DSN, DATABASE_URL, the OS keychain,
or the built-in default.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(dsnFlag)
		if err != nil {
			return err
		}

		pterm.Println("Using DSN from " + string(cfg.Source))
		pterm.Println()

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Database Connection")).
			WithPadding(1).
			Println(logging.MaskDSN(cfg.DatabaseURL))

		if cfg.Info.Driver != "" {
			pterm.Println()
			pterm.Printf("Note: legacy '+%s' driver qualifier accepted and normalized.\n", cfg.Info.Driver)
		}
		pterm.Println()
		pterm.Println("To update this connection, run: dbctl connect")
		pterm.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbinfoCmd)
}
