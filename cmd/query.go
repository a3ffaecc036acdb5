// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"quotemaster/dbctl/internal/database"
)

var queryJSON bool

// queryCmd runs one SQL statement inside a managed transaction.
var queryCmd = &cobra.Command{
	Use:   "query \"SQL\" [args...]",
	Short: "Run an ad-hoc SQL statement",
	Long: `The query command executes a single SQL statement inside a transaction.
Positional arguments after the statement bind to $1, $2, ... placeholders.
The transaction commits when the statement succeeds and rolls back
otherwise.

Examples:
  dbctl query "SELECT * FROM quotes LIMIT 5"
  dbctl query "SELECT username FROM users WHERE email = $1" ada@example.com
  dbctl query --json "SELECT COUNT(*) FROM quote_interactions"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		params := make([]any, 0, len(args)-1)
		for _, a := range args[1:] {
			params = append(params, a)
		}

		res, err := database.NewManager(db).ExecuteQuery(cmd.Context(), args[0], params...)
		if err != nil {
			return err
		}

		if queryJSON || cfg.Format == "json" {
			b, err := json.Marshal(res)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		if len(res.Columns) == 0 {
			fmt.Printf("OK, %d rows affected\n", res.RowsAffected)
			return nil
		}

		printResultTable(res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "Print the result as JSON")
}

func printResultTable(res *database.Result) {
	widths := make([]int, len(res.Columns))
	for i, c := range res.Columns {
		widths[i] = utf8.RuneCountInString(c)
	}

	cells := make([][]string, len(res.Rows))
	for i, row := range res.Rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			s := cellString(v)
			cells[i][j] = s
			if l := utf8.RuneCountInString(s); j < len(widths) && l > widths[j] {
				widths[j] = l
			}
		}
	}

	header := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		header[i] = fmt.Sprintf("%-*s", widths[i], c)
	}
	pterm.Println(pterm.NewStyle(pterm.Bold).Sprint(strings.Join(header, "  ")))

	for _, row := range cells {
		padded := make([]string, len(row))
		for j, s := range row {
			padded[j] = fmt.Sprintf("%-*s", widths[j], s)
		}
		fmt.Println(strings.Join(padded, "  "))
	}
	fmt.Printf("(%d rows)\n", len(res.Rows))
}

// cellString renders one result value for terminal display.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case [16]byte:
		return uuid.UUID(t).String()
	case []byte:
		if id, err := uuid.FromBytes(t); err == nil {
			return id.String()
		}
		return fmt.Sprintf("\\x%x", t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}
