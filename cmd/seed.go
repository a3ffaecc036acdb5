// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"quotemaster/dbctl/internal/database"
	"quotemaster/dbctl/internal/logging"
	"quotemaster/dbctl/internal/sample"
)

var (
	seedUsers  int
	seedQuotes int
)

// seedCmd populates the schema with generated demo data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample data",
	Long: `The seed command inserts generated demo rows: users, quotes, one chat
session per user and a handful of quote interactions. Everything runs in
one transaction, so a failure leaves the database unchanged. Generated
usernames are unique per run, making repeated seeding safe.

The schema must exist; run 'dbctl create' first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Database:   ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(cfg.Info.Database))
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Connection: ") + pterm.NewStyle(pterm.FgLightBlue).Sprint(logging.MaskDSN(cfg.DatabaseURL)))
		pterm.Println()

		start := time.Now()
		stop := startInlineSpinner(os.Stdout, "seeding sample data", 100*time.Millisecond)

		var sum sample.Summary
		err = db.WithSession(cmd.Context(), func(s *database.Session) error {
			var insertErr error
			sum, insertErr = sample.Insert(cmd.Context(), s, sample.Options{
				Users:  seedUsers,
				Quotes: seedQuotes,
			})
			return insertErr
		})
		stop()

		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			title := pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Seeding Failed")
			details := fmt.Sprintf("Duration: %s\n\nNothing was inserted; the transaction rolled back.", elapsed)
			pterm.Println(pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(details))
			return err
		}

		title := pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("Seeding Completed")
		details := fmt.Sprintf("Duration: %s\nUsers: %d\nQuotes: %d\nChat sessions: %d\nInteractions: %d",
			elapsed, sum.Users, sum.Quotes, sum.ChatSessions, sum.Interactions)
		pterm.Println(pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(details))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedUsers, "users", 5, "Number of sample users to insert")
	seedCmd.Flags().IntVar(&seedQuotes, "quotes", 12, "Number of sample quotes to insert")
}
