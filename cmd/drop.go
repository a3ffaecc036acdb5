// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"quotemaster/dbctl/internal/database"
)

var dropAssumeYes bool

// dropCmd removes every QuoteMaster table after an interactive
// confirmation.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop all database tables",
	Long: `The drop command removes all QuoteMaster tables and their data. Tables are
dropped in reverse dependency order inside a single transaction; missing
tables are skipped.

This is destructive. The command asks for confirmation unless --yes is
passed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !dropAssumeYes && !confirm("Are you sure you want to drop all tables? (yes/no): ") {
			fmt.Println("Aborted: no tables were dropped.")
			return nil
		}

		db, _, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		stop := startInlineSpinner(os.Stdout, "dropping tables", 100*time.Millisecond)
		ok := database.NewManager(db).DropTables(cmd.Context())
		stop()

		if !ok {
			return errors.New("dropping tables failed")
		}

		fmt.Println("✅ All tables dropped successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dropCmd)
	dropCmd.Flags().BoolVarP(&dropAssumeYes, "yes", "y", false, "Skip the confirmation prompt")
}
