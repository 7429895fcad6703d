package orchestrator

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alisonlhart/genre-classification/internal/config"
	"github.com/alisonlhart/genre-classification/internal/domain"
	"github.com/alisonlhart/genre-classification/internal/pipeline"
	"github.com/alisonlhart/genre-classification/internal/runner"
	"github.com/alisonlhart/genre-classification/internal/telemetry"
)

// Journal — приёмник записей о диспетчеризации шагов.
//
// Журнал строго информационный: его ошибки логируются и никогда
// не останавливают запуск.
type Journal interface {
	// Record сохраняет новую запись.
	Record(ctx context.Context, d *domain.Dispatch) error

	// Update обновляет статус существующей записи.
	Update(ctx context.Context, d *domain.Dispatch) error
}

// Orchestrator выполняет один запуск пайплайна.
type Orchestrator struct {
	cfg     *config.Config
	runner  runner.Runner
	journal Journal
	metrics *telemetry.Metrics
	workDir string
	logger  *slog.Logger
}

// Config — зависимости Orchestrator.
type Config struct {
	// Config — конфигурация запуска. Обязательно.
	Config *config.Config

	// Runner — бэкенд диспетчеризации. Обязательно.
	Runner runner.Runner

	// Journal — журнал диспетчеризаций. Nil — журналирование выключено.
	Journal Journal

	// Metrics — метрики запуска. Nil — метрики выключены.
	Metrics *telemetry.Metrics

	// WorkDir — директория для файла sub-конфигурации.
	// Пустая — текущая рабочая директория.
	WorkDir string

	// Logger — nil заменяется на slog.Default().
	Logger *slog.Logger
}

// New создаёт Orchestrator.
func New(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		cfg:     cfg.Config,
		runner:  cfg.Runner,
		journal: cfg.Journal,
		metrics: cfg.Metrics,
		workDir: cfg.WorkDir,
		logger:  logger,
	}
}

// Run выполняет запуск: план → деривация → последовательная
// диспетчеризация. Возвращает первую фатальную ошибку.
func (o *Orchestrator) Run(ctx context.Context) error {
	runID := uuid.New()
	logger := telemetry.WithRun(o.logger, runID.String())

	plan := pipeline.Resolve(o.cfg.Main.ExecuteSteps)
	if plan.IsEmpty() {
		logger.Info("no steps selected, nothing to do")
		return nil
	}
	logger.Info("execution plan resolved", "steps", plan.IDs())

	o.warnUnmetInputs(logger, plan)

	for _, step := range plan.Steps() {
		if err := o.dispatch(ctx, logger, runID, step); err != nil {
			return err
		}
	}

	logger.Info("pipeline finished", "steps", plan.Len())
	return nil
}

// dispatch выполняет один шаг плана: деривация параметров,
// материализация sub-конфигурации (только random_forest),
// блокирующий вызов Runner.
func (o *Orchestrator) dispatch(ctx context.Context, logger *slog.Logger, runID uuid.UUID, step domain.Step) error {
	stepLogger := telemetry.WithStep(logger, step.ID)

	var aux pipeline.Aux
	if step.ID == pipeline.StepRandomForest {
		path, err := Materialize(o.workDir, o.cfg.RandomForestPipeline)
		if err != nil {
			return err
		}
		stepLogger.Info("model config materialized", "path", path)
		aux.ModelConfigPath = path
	}

	params, err := pipeline.Derive(step, o.cfg, aux)
	if err != nil {
		return err
	}
	inv := pipeline.BuildInvocation(step, params)

	record := domain.NewDispatch(runID, step.ID)
	o.record(ctx, stepLogger, record)

	record.MarkRunning()
	o.update(ctx, stepLogger, record)
	o.metrics.StepDispatched(step.ID)

	handle, err := o.runner.Invoke(ctx, inv)
	if err != nil {
		record.MarkFailed(err.Error())
		o.update(ctx, stepLogger, record)
		o.metrics.StepFailed(step.ID)
		return err
	}

	record.MarkSucceeded()
	o.update(ctx, stepLogger, record)
	o.metrics.ObserveStepDuration(step.ID, handle.Duration)

	stepLogger.Info("step finished", "duration", handle.Duration)
	return nil
}

// warnUnmetInputs предупреждает о входных артефактах, которые не
// публикуются более ранними шагами этого плана. Не ошибка: ссылки
// "X:latest" могут указывать на артефакты предыдущих запусков.
func (o *Orchestrator) warnUnmetInputs(logger *slog.Logger, plan pipeline.Plan) {
	unmet := plan.UnmetInputs()
	for _, step := range plan.Steps() {
		if missing := unmet[step.ID]; len(missing) > 0 {
			logger.Warn("step inputs are not produced by this plan, relying on existing artifact versions",
				"step", step.ID, "artifacts", missing)
		}
	}
}

func (o *Orchestrator) record(ctx context.Context, logger *slog.Logger, d *domain.Dispatch) {
	if o.journal == nil {
		return
	}
	if err := o.journal.Record(ctx, d); err != nil {
		logger.Warn("journal record failed", "error", err)
	}
}

func (o *Orchestrator) update(ctx context.Context, logger *slog.Logger, d *domain.Dispatch) {
	if o.journal == nil {
		return
	}
	if err := o.journal.Update(ctx, d); err != nil {
		logger.Warn("journal update failed", "error", err)
	}
}
