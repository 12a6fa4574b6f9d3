// Package export contains the command that writes a report to a file
// without starting the web server.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"rupeewise/cmd/root"
	"rupeewise/internal/config"
	"rupeewise/internal/models"
	"rupeewise/internal/persistence"
	"rupeewise/internal/report"
	"rupeewise/internal/store"

	"github.com/spf13/cobra"
)

var (
	budgetContext string
	format        string
	output        string
)

// Cmd is the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Write a transaction report for one budget context to a file",
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&budgetContext, "context", "c", "HOME", "Budget context (HOME or SCHOOL)")
	Cmd.Flags().StringVarP(&format, "format", "f", "pdf", "Report format (pdf or csv)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to the report's download name)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	ctx := models.BudgetContext(budgetContext)
	if !ctx.Valid() {
		return fmt.Errorf("invalid context %q, must be HOME or SCHOOL", budgetContext)
	}

	adapter := persistence.NewFileAdapter(cfg.Storage.Directory, root.Log)
	transactions := store.New(adapter, root.Log).List()
	exporter := report.NewExporter()

	var data []byte
	var name string
	switch format {
	case "pdf":
		name = report.Filename(ctx)
		data, err = exporter.PDF(transactions, ctx)
	case "csv":
		name = report.CSVFilename(ctx)
		data, err = exporter.CSV(transactions, ctx)
	default:
		return fmt.Errorf("unsupported format %q, use pdf or csv", format)
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = name
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	root.Log.WithField("file", output).Info("Report written")
	return nil
}
