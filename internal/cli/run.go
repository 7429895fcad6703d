package cli

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alisonlhart/genre-classification/internal/journal"
	"github.com/alisonlhart/genre-classification/internal/orchestrator"
	"github.com/alisonlhart/genre-classification/internal/runner"
	"github.com/alisonlhart/genre-classification/internal/telemetry"
	"github.com/alisonlhart/genre-classification/internal/tracking"
)

// metricsJob — имя job для Pushgateway.
const metricsJob = "genre_classification_pipeline"

// NewRunCmd создаёт команду "run": выполнить выбранные шаги пайплайна.
func NewRunCmd(opts *Options) *cobra.Command {
	var (
		runnerName  string
		rootPath    string
		mlflowBin   string
		journalPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the selected pipeline steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()

			cfg, err := opts.LoadConfig()
			if err != nil {
				return err
			}

			root, err := filepath.Abs(rootPath)
			if err != nil {
				return err
			}

			registry := runner.NewRegistry()
			registry.Register("mlflow", &runner.MLflowRunner{
				RootPath: root,
				Binary:   mlflowBin,
				Tracking: tracking.Context{
					Project:  cfg.Main.ProjectName,
					RunGroup: cfg.Main.ExperimentName,
				},
				Logger: logger,
			})
			registry.Register("noop", &runner.NoopRunner{Logger: logger})

			backend, err := registry.Get(runnerName)
			if err != nil {
				return err
			}

			orchCfg := orchestrator.Config{
				Config:  cfg,
				Runner:  backend,
				Metrics: telemetry.NewMetrics(),
				Logger:  logger,
			}

			if journalPath != "" {
				jrnl, err := journal.Open(journalPath)
				if err != nil {
					return err
				}
				defer jrnl.Close()
				orchCfg.Journal = jrnl
			}

			runErr := orchestrator.New(orchCfg).Run(cmd.Context())

			// Метрики отправляются и при провале запуска.
			if err := orchCfg.Metrics.Push(metricsJob); err != nil {
				logger.Warn("metrics push failed", "error", err)
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&runnerName, "runner", "mlflow", "Runner backend (mlflow, noop)")
	cmd.Flags().StringVar(&rootPath, "root", ".", "Root of the pipeline project (step packages live under it)")
	cmd.Flags().StringVar(&mlflowBin, "mlflow-bin", "", "Path to the mlflow binary (default: mlflow from PATH)")
	cmd.Flags().StringVar(&journalPath, "journal", "pipeline_journal.db", "Dispatch journal database path (empty to disable)")

	return cmd
}
