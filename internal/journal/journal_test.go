package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/alisonlhart/genre-classification/internal/domain"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_RecordAndListRun(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()
	runID := uuid.New()

	first := domain.NewDispatch(runID, "download")
	second := domain.NewDispatch(runID, "preprocess")
	other := domain.NewDispatch(uuid.New(), "download")

	for _, d := range []*domain.Dispatch{first, second, other} {
		if err := j.Record(ctx, d); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	dispatches, err := j.ListRun(ctx, runID)
	if err != nil {
		t.Fatalf("list run: %v", err)
	}
	if len(dispatches) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(dispatches))
	}
	if dispatches[0].StepID != "download" || dispatches[1].StepID != "preprocess" {
		t.Errorf("unexpected steps: %s, %s", dispatches[0].StepID, dispatches[1].StepID)
	}
	if dispatches[0].Status != domain.DispatchPending {
		t.Errorf("status = %s, want PENDING", dispatches[0].Status)
	}
}

func TestJournal_Update(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	d := domain.NewDispatch(uuid.New(), "segregate")
	if err := j.Record(ctx, d); err != nil {
		t.Fatalf("record: %v", err)
	}

	d.MarkRunning()
	if err := j.Update(ctx, d); err != nil {
		t.Fatalf("update to running: %v", err)
	}

	d.MarkFailed("step process exited with code 1")
	if err := j.Update(ctx, d); err != nil {
		t.Fatalf("update to failed: %v", err)
	}

	dispatches, err := j.ListRun(ctx, d.RunID)
	if err != nil {
		t.Fatalf("list run: %v", err)
	}
	if len(dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(dispatches))
	}

	got := dispatches[0]
	if got.Status != domain.DispatchFailed {
		t.Errorf("status = %s, want FAILED", got.Status)
	}
	if got.Error != "step process exited with code 1" {
		t.Errorf("error = %q", got.Error)
	}
	if got.StartedAt == nil || got.FinishedAt == nil {
		t.Error("expected started_at and finished_at to be set")
	}
}

func TestJournal_UpdateMissing(t *testing.T) {
	j := openTestJournal(t)

	d := domain.NewDispatch(uuid.New(), "download")
	err := j.Update(context.Background(), d)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJournal_ListRecent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		d := domain.NewDispatch(uuid.New(), "download")
		if err := j.Record(ctx, d); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	dispatches, err := j.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(dispatches) != 3 {
		t.Errorf("expected 3 dispatches, got %d", len(dispatches))
	}
}
