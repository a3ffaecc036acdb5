// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"quotemaster/dbctl/internal/database"
	"quotemaster/dbctl/internal/logging"
)

var infoJSON bool

// infoCmd lists the public tables and their row counts.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show database information",
	Long: `The info command lists every table in the public schema together with its
row count, plus the connection the data came from. Pass --json for
machine-readable output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		info := database.NewManager(db).GetTableInfo(cmd.Context())
		if info.Error != "" {
			return errors.New(info.Error)
		}

		if infoJSON || cfg.Format == "json" {
			b, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Database:   ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(cfg.Info.Database))
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Connection: ") + pterm.NewStyle(pterm.FgLightBlue).Sprint(logging.MaskDSN(cfg.DatabaseURL)))
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Source:     ") + pterm.NewStyle(pterm.FgLightBlue).Sprint(string(cfg.Source)))
		pterm.Println()

		if len(info.Tables) == 0 {
			pterm.Println("No tables in the public schema. Run 'dbctl create' to create them.")
			return nil
		}

		width := 0
		for _, name := range info.Tables {
			if l := utf8.RuneCountInString(name); l > width {
				width = l
			}
		}
		pterm.Println(pterm.NewStyle(pterm.Bold).Sprintf("Tables (%d)", len(info.Tables)))
		for _, name := range info.Tables {
			pterm.Printf("  %-*s %d rows\n", width, name, info.RecordCounts[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Print table information as JSON")
}
