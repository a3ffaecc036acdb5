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
	"quotemaster/dbctl/internal/logging"
)

// testCmd verifies the configured database answers a trivial query.
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test database connection",
	Long: `The test command runs a SELECT 1 round trip against the configured
database and reports whether it answered within the connect timeout. It
exits with status 1 when the database is unreachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		stop := startInlineSpinner(os.Stdout, "testing connection", 100*time.Millisecond)
		ok := database.NewManager(db).TestConnection(cmd.Context())
		stop()

		if !ok {
			fmt.Println("❌ Database connection failed")
			fmt.Println("   Connection: " + logging.MaskDSN(cfg.DatabaseURL))
			fmt.Println("   Check that the server is running, or run 'dbctl connect' to reconfigure.")
			return errors.New("connection test failed")
		}

		fmt.Println("✅ Database connection successful")
		fmt.Println("   Connection: " + logging.MaskDSN(cfg.DatabaseURL))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
