// Command readinessctl administers the readiness survey store directly.
package main

import (
	"fmt"
	"os"

	"github.com/PavaniTiago/readiness-survey-api/internal/config"
	"github.com/PavaniTiago/readiness-survey-api/internal/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := config.LoadEnvFile(".env"); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	rootCmd, cleanup := newRootCmd()
	err := rootCmd.Execute()
	if cerr := cleanup(); cerr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; cleanup closes the database if a command opened it.
func newRootCmd() (*cobra.Command, func() error) {
	cli := &cliContext{}

	rootCmd := &cobra.Command{
		Use:   "readinessctl",
		Short: "Admin CLI for the change readiness survey",
		Long: `readinessctl works against the same database as the API.

It creates responses, submits answer files, prints scored results,
exports CSV and serves the survey as MCP tools over stdio.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseOutputFormat(cli.output); err != nil {
				return err
			}
			log, err := logger.New(cli.logLevel, "console")
			if err != nil {
				return err
			}
			cli.log = log
			return nil
		},
		SilenceUsage: true,
	}

	defaults, _ := config.DatabaseFromEnv()

	rootCmd.PersistentFlags().StringVar(&cli.db.Driver, "db-driver", defaults.Driver, "Storage backend: sqlite or postgres (DATABASE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&cli.db.URL, "db-url", defaults.URL, "SQLite file path or Postgres DSN (DATABASE_URL)")
	rootCmd.PersistentFlags().StringVarP(&cli.output, "output", "o", "table", "Output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "warn", "Log level written to stderr")

	rootCmd.AddCommand(newQuestionsCmd(cli))
	rootCmd.AddCommand(newCreateCmd(cli))
	rootCmd.AddCommand(newSubmitCmd(cli))
	rootCmd.AddCommand(newShowCmd(cli))
	rootCmd.AddCommand(newExportCmd(cli))
	rootCmd.AddCommand(newMcpCmd(cli))

	return rootCmd, cli.close
}
