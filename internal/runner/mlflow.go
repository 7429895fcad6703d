package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/alisonlhart/genre-classification/internal/domain"
	"github.com/alisonlhart/genre-classification/internal/tracking"
)

const defaultMLflowBinary = "mlflow"

// MLflowRunner запускает шаг через "mlflow run" как дочерний процесс.
//
// Команда: mlflow run <root>/<dir> -e <entry_point> -P k=v ...
//
// Запуск блокирующий: Invoke возвращается только после завершения
// процесса шага. Идентичность эксперимента (tracking.Context)
// добавляется в окружение дочернего процесса — окружение самого
// оркестратора не мутируется.
type MLflowRunner struct {
	// RootPath — абсолютный путь к корню MLflow-проекта,
	// относительно которого лежат пакеты шагов.
	RootPath string

	// Binary — имя или путь исполняемого файла mlflow.
	// Пустое значение — "mlflow" из PATH.
	Binary string

	// Tracking — идентичность эксперимента, передаваемая каждому шагу.
	Tracking tracking.Context

	// Stdout, Stderr — куда направлять вывод процесса шага.
	// Nil — os.Stdout / os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Logger — nil заменяется на slog.Default().
	Logger *slog.Logger
}

// BuildCommand строит команду запуска шага без её выполнения.
// Выделено из Invoke для тестируемости.
func (r *MLflowRunner) BuildCommand(ctx context.Context, inv domain.Invocation) *exec.Cmd {
	binary := r.Binary
	if binary == "" {
		binary = defaultMLflowBinary
	}

	args := []string{"run", filepath.Join(r.RootPath, inv.Dir), "-e", inv.EntryPoint}
	for _, k := range sortedParamKeys(inv.Params) {
		args = append(args, "-P", k+"="+inv.Params[k])
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = append(os.Environ(), r.Tracking.Environ()...)

	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd
}

// Invoke запускает шаг и ждёт его завершения.
func (r *MLflowRunner) Invoke(ctx context.Context, inv domain.Invocation) (*Handle, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cmd := r.BuildCommand(ctx, inv)
	logger.Info("dispatching step", "step", inv.StepID, "entry_point", inv.EntryPoint, "dir", inv.Dir)
	logger.Debug("step command", "step", inv.StepID, "args", cmd.Args)

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: step %s: %v", ErrDispatchFailed, inv.StepID, err)
	}

	return &Handle{
		ID:       uuid.New(),
		StepID:   inv.StepID,
		Duration: time.Since(start),
	}, nil
}
