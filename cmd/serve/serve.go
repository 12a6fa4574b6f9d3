// Package serve contains the command that runs the web application.
package serve

import (
	"rupeewise/cmd/root"
	"rupeewise/internal/config"
	"rupeewise/internal/insights"
	"rupeewise/internal/persistence"
	"rupeewise/internal/report"
	"rupeewise/internal/store"
	"rupeewise/internal/web"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cmd is the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the RupeeWise web application",
	Long:  `Start the local web server hosting the dashboard, transaction API, AI insights and report downloads.`,
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if err := config.LoadCategoryOverrides(cfg.Categories.File); err != nil {
		root.Log.WithError(err).Warn("Ignoring invalid category overrides")
	}

	adapter := persistence.NewFileAdapter(cfg.Storage.Directory, root.Log)
	st := store.New(adapter, root.Log)
	root.Log.WithFields(logrus.Fields{
		"file":  adapter.Path(),
		"count": st.Count(),
	}).Info("Transaction store ready")

	var client insights.AIClient
	gemini, err := insights.NewGeminiClient(cmd.Context(), cfg.AI.APIKey, cfg.AI.Model, root.Log)
	if err != nil {
		// insights degrade to a fixed fallback message without a client
		root.Log.WithError(err).Warn("Gemini unavailable, insight requests will return a fallback message")
	} else {
		defer func() {
			if err := gemini.Close(); err != nil {
				root.Log.WithError(err).Warn("Failed to close Gemini client")
			}
		}()
		client = gemini
	}
	requester := insights.NewRequester(client, root.Log)

	server := web.New(st, requester, report.NewExporter(), root.Log)
	return server.Run(cfg.Addr())
}
