package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/alisonlhart/genre-classification/internal/domain"
)

// ErrNotFound — запись с таким ID отсутствует в журнале.
var ErrNotFound = errors.New("dispatch record not found")

const schema = `
	CREATE TABLE IF NOT EXISTS dispatches (
		id          TEXT PRIMARY KEY,
		run_id      TEXT NOT NULL,
		step_id     TEXT NOT NULL,
		status      TEXT NOT NULL,
		started_at  TIMESTAMP,
		finished_at TIMESTAMP,
		error       TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_dispatches_run ON dispatches(run_id);
`

// Journal — журнал диспетчеризаций поверх SQLite.
type Journal struct {
	db *sql.DB
}

// Open открывает (или создаёт) базу журнала по указанному пути.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close закрывает базу журнала.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record сохраняет новую запись о диспетчеризации.
func (j *Journal) Record(ctx context.Context, d *domain.Dispatch) error {
	query := `
		INSERT INTO dispatches (id, run_id, step_id, status, started_at, finished_at, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := j.db.ExecContext(ctx, query,
		d.ID.String(),
		d.RunID.String(),
		d.StepID,
		string(d.Status),
		nullTime(d.StartedAt),
		nullTime(d.FinishedAt),
		d.Error,
		d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

// Update обновляет статус, время и ошибку существующей записи.
func (j *Journal) Update(ctx context.Context, d *domain.Dispatch) error {
	query := `
		UPDATE dispatches
		SET status = ?, started_at = ?, finished_at = ?, error = ?
		WHERE id = ?
	`
	res, err := j.db.ExecContext(ctx, query,
		string(d.Status),
		nullTime(d.StartedAt),
		nullTime(d.FinishedAt),
		d.Error,
		d.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update dispatch: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update dispatch: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, d.ID)
	}
	return nil
}

// ListRun возвращает записи одного запуска в порядке создания.
func (j *Journal) ListRun(ctx context.Context, runID uuid.UUID) ([]domain.Dispatch, error) {
	query := `
		SELECT id, run_id, step_id, status, started_at, finished_at, error, created_at
		FROM dispatches
		WHERE run_id = ?
		ORDER BY created_at, rowid
	`
	return j.list(ctx, query, runID.String())
}

// ListRecent возвращает последние limit записей, новые первыми.
func (j *Journal) ListRecent(ctx context.Context, limit int) ([]domain.Dispatch, error) {
	query := `
		SELECT id, run_id, step_id, status, started_at, finished_at, error, created_at
		FROM dispatches
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	return j.list(ctx, query, limit)
}

func (j *Journal) list(ctx context.Context, query string, args ...any) ([]domain.Dispatch, error) {
	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query dispatches: %w", err)
	}
	defer rows.Close()

	var out []domain.Dispatch
	for rows.Next() {
		d, err := scanDispatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatches: %w", err)
	}
	return out, nil
}

func scanDispatch(rows *sql.Rows) (*domain.Dispatch, error) {
	var (
		d          domain.Dispatch
		id, runID  string
		status     string
		startedAt  sql.NullTime
		finishedAt sql.NullTime
	)

	err := rows.Scan(&id, &runID, &d.StepID, &status, &startedAt, &finishedAt, &d.Error, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan dispatch: %w", err)
	}

	if d.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse dispatch id: %w", err)
	}
	if d.RunID, err = uuid.Parse(runID); err != nil {
		return nil, fmt.Errorf("parse run id: %w", err)
	}

	d.Status = domain.ParseDispatchStatus(status)
	if startedAt.Valid {
		t := startedAt.Time
		d.StartedAt = &t
	}
	if finishedAt.Valid {
		t := finishedAt.Time
		d.FinishedAt = &t
	}
	return &d, nil
}

// nullTime конвертирует *time.Time в значение для nullable колонки.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
