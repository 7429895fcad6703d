package runner

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alisonlhart/genre-classification/internal/domain"
)

// NoopRunner ничего не запускает и всегда отвечает успехом.
//
// Используется для холостого прогона (--runner noop): оркестратор
// проходит весь путь — план, деривация параметров, материализация
// sub-конфигурации — не трогая внешнюю систему запусков.
type NoopRunner struct {
	// Logger — nil заменяется на slog.Default().
	Logger *slog.Logger
}

// Invoke логирует вызов и возвращает успешный Handle.
func (r *NoopRunner) Invoke(_ context.Context, inv domain.Invocation) (*Handle, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("noop dispatch", "step", inv.StepID, "params", len(inv.Params))

	return &Handle{ID: uuid.New(), StepID: inv.StepID}, nil
}
