// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"quotemaster/dbctl/internal/keychain"
)

// disconnectCmd removes the connection string saved by 'dbctl connect'.
// Environment variables and the --dsn flag are unaffected; after this the
// CLI falls back to them or to the built-in default.
var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the database connection saved in the OS keychain",
	Long: `The disconnect command removes the connection string stored in the OS
keychain by 'dbctl connect'. It does not touch DBCTL_DSN or DATABASE_URL;
those keep working if set.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if km, err := keychain.GetManager(); err == nil {
			_ = km.ClearDSN()
		}
		pterm.Println("✅ Saved database connection removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(disconnectCmd)
}
