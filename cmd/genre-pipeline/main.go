// genre-pipeline — оркестратор ML-пайплайна классификации жанров.
//
// Использование:
//
//	genre-pipeline [--config FILE] [--set section.key=value] [--steps LIST] [--json] <command>
//
// Команды:
//
//	run      Выполнить выбранные шаги пайплайна
//	plan     Показать план выполнения без запуска
//	config   Показать эффективную конфигурацию
//	history  Показать журнал диспетчеризаций
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alisonlhart/genre-classification/internal/cli"
	"github.com/alisonlhart/genre-classification/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	// .env необязателен: локальное удобство для WANDB_*, LOG_* и
	// PUSHGATEWAY_URL.
	_ = godotenv.Load()

	telemetry.SetupLogger()

	opts := &cli.Options{}

	rootCmd := &cobra.Command{
		Use:           "genre-pipeline",
		Short:         "genre-pipeline — ML pipeline orchestrator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "config.yaml", "Pipeline configuration file")
	rootCmd.PersistentFlags().StringArrayVar(&opts.Overrides, "set", nil, "Override a config field as section.key=value (repeatable)")
	rootCmd.PersistentFlags().StringVar(&opts.Steps, "steps", "", "Override execute_steps as a comma-separated list")
	rootCmd.PersistentFlags().BoolVar(&opts.JSONOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(
		cli.NewRunCmd(opts),
		cli.NewPlanCmd(opts),
		cli.NewConfigCmd(opts),
		cli.NewHistoryCmd(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
