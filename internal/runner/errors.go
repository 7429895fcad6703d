package runner

import "errors"

// Ошибки диспетчеризации.
var (
	// ErrDispatchFailed — процесс шага завершился с ошибкой или
	// не смог запуститься.
	ErrDispatchFailed = errors.New("step dispatch failed")

	// ErrUnknownRunner — бэкенд с таким именем не зарегистрирован.
	ErrUnknownRunner = errors.New("unknown runner backend")
)
