package orchestrator

import "errors"

// Ошибки оркестратора.
var (
	// ErrMaterialize — не удалось записать файл sub-конфигурации
	// для шага random_forest.
	ErrMaterialize = errors.New("model config materialization failed")
)
