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

var resetAssumeYes bool

// resetCmd drops and recreates the whole schema.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset database (drop + create)",
	Long: `The reset command drops all QuoteMaster tables and recreates them empty.
When the drop step fails nothing is recreated.

This is destructive: every row in every table is lost. The command asks
for confirmation unless --yes is passed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetAssumeYes && !confirm("Are you sure you want to reset the database? (yes/no): ") {
			fmt.Println("Aborted: the database was not changed.")
			return nil
		}

		db, _, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		stop := startInlineSpinner(os.Stdout, "resetting database", 100*time.Millisecond)
		ok := database.NewManager(db).ResetDatabase(cmd.Context())
		stop()

		if !ok {
			return errors.New("resetting database failed")
		}

		fmt.Println("✅ Database reset: all tables dropped and recreated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetAssumeYes, "yes", "y", false, "Skip the confirmation prompt")
}
