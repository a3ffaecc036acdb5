// Copyright (c) 2025 QuoteMaster
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd implements the dbctl command-line interface. Subcommands
// cover connection management, schema lifecycle and ad-hoc SQL against the
// QuoteMaster database, built on the Cobra framework with pterm for
// terminal presentation.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quotemaster/dbctl/internal/logging"
)

var (
	showVersion bool
	dsnFlag     string
	echoFlag    bool
	verbosity   int
)

// rootCmd is the base command when dbctl is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "dbctl",
	Short: "QuoteMaster database administration utility",
	Long: `dbctl manages the QuoteMaster PostgreSQL database: verify connectivity,
create or drop the schema, inspect table state, seed sample data and run
ad-hoc SQL.

The connection string resolves from --dsn, DBCTL_DSN, DATABASE_URL, the
OS keychain (saved by 'dbctl connect'), then a credential-free localhost
default, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		v := verbosity
		if echoFlag && v == 0 {
			// Statement echo logs at debug; surface it without -v.
			v = 1
		}
		logging.Setup(v)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("dbctl %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Command failures print a masked error
// and exit with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("❌ Error", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "PostgreSQL connection string (overrides env and keychain)")
	rootCmd.PersistentFlags().BoolVar(&echoFlag, "echo", false, "Log every SQL statement (also DATABASE_ECHO=true)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v debug, -vv trace)")
}
