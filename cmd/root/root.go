// Package root contains the root command for the application.
package root

import (
	"rupeewise/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "rupeewise",
		Short: "A personal finance tracker with budget contexts, AI insights and PDF reports.",
		Long: `rupeewise tracks income and expense transactions under two budget
contexts (Home, School), persists them locally, and serves a web dashboard
with category breakdowns, Gemini-powered spending insights and downloadable
PDF/CSV reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to rupeewise!")
			Log.Info("Use 'rupeewise serve' to start the web application, or --help for all commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
		},
	}
)
