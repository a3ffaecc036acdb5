// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"quotemaster/dbctl/internal/database"
	"quotemaster/dbctl/internal/schema"
)

// createCmd creates every QuoteMaster table that does not exist yet.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create all database tables",
	Long: `The create command ensures the uuid-ossp extension exists and creates the
QuoteMaster tables in dependency order. Statements use IF NOT EXISTS, so
running it against an existing schema is a no-op. Everything happens in a
single transaction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		stop := startInlineSpinner(os.Stdout, "creating tables", 100*time.Millisecond)
		ok := database.NewManager(db).CreateTables(cmd.Context())
		stop()

		if !ok {
			return errors.New("creating tables failed")
		}

		fmt.Println("✅ All tables created successfully")
		items := make([]pterm.BulletListItem, 0, len(schema.Names()))
		for _, name := range schema.Names() {
			items = append(items, pterm.BulletListItem{Level: 0, Text: name})
		}
		_ = pterm.DefaultBulletList.WithItems(items).Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
