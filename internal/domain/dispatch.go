package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dispatch — запись о диспетчеризации одного шага в рамках запуска пайплайна.
//
// Записи носят информационный характер: журнал никогда не влияет
// на ход выполнения, пайплайн не является возобновляемым.
type Dispatch struct {
	// ID — уникальный идентификатор записи.
	ID uuid.UUID `json:"id"`

	// RunID — идентификатор запуска пайплайна, объединяющий
	// все шаги одного вызова оркестратора.
	RunID uuid.UUID `json:"run_id"`

	// StepID — имя диспетчеризованного шага.
	StepID string `json:"step_id"`

	// Status — текущий статус.
	Status DispatchStatus `json:"status"`

	// StartedAt — время запуска шага. Nil, если шаг ещё не запущен.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// FinishedAt — время завершения. Nil, если шаг ещё выполняется.
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// Error — текст ошибки, если шаг завершился с FAILED.
	Error string `json:"error,omitempty"`

	// CreatedAt — время создания записи.
	CreatedAt time.Time `json:"created_at"`
}

// NewDispatch создаёт запись в статусе PENDING.
func NewDispatch(runID uuid.UUID, stepID string) *Dispatch {
	return &Dispatch{
		ID:        uuid.New(),
		RunID:     runID,
		StepID:    stepID,
		Status:    DispatchPending,
		CreatedAt: time.Now(),
	}
}

// Duration возвращает продолжительность выполнения шага.
// Возвращает 0, если шаг ещё не завершён.
func (d *Dispatch) Duration() time.Duration {
	if d.StartedAt == nil || d.FinishedAt == nil {
		return 0
	}
	return d.FinishedAt.Sub(*d.StartedAt)
}

// MarkRunning переводит запись в статус RUNNING.
func (d *Dispatch) MarkRunning() {
	now := time.Now()
	d.Status = DispatchRunning
	d.StartedAt = &now
}

// MarkSucceeded переводит запись в статус SUCCEEDED.
func (d *Dispatch) MarkSucceeded() {
	now := time.Now()
	d.Status = DispatchSucceeded
	d.FinishedAt = &now
}

// MarkFailed переводит запись в статус FAILED с текстом ошибки.
func (d *Dispatch) MarkFailed(err string) {
	now := time.Now()
	d.Status = DispatchFailed
	d.FinishedAt = &now
	d.Error = err
}
