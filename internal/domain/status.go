package domain

// DispatchStatus — статус диспетчеризации одного шага.
//
// Жизненный цикл:
//
//	PENDING → RUNNING → SUCCEEDED
//	                  ↘ FAILED
type DispatchStatus string

const (
	// DispatchPending — вызов построен, но шаг ещё не запущен.
	DispatchPending DispatchStatus = "PENDING"

	// DispatchRunning — шаг выполняется внешней системой запусков.
	DispatchRunning DispatchStatus = "RUNNING"

	// DispatchSucceeded — шаг успешно завершён.
	DispatchSucceeded DispatchStatus = "SUCCEEDED"

	// DispatchFailed — шаг завершился с ошибкой.
	DispatchFailed DispatchStatus = "FAILED"
)

// IsTerminal возвращает true, если статус финальный.
func (s DispatchStatus) IsTerminal() bool {
	switch s {
	case DispatchSucceeded, DispatchFailed:
		return true
	default:
		return false
	}
}

// ParseDispatchStatus парсит строку в DispatchStatus.
func ParseDispatchStatus(s string) DispatchStatus {
	switch s {
	case "PENDING":
		return DispatchPending
	case "RUNNING":
		return DispatchRunning
	case "SUCCEEDED":
		return DispatchSucceeded
	case "FAILED":
		return DispatchFailed
	default:
		return DispatchPending
	}
}
