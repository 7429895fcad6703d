package config

import "errors"

// Ошибки конфигурации.
var (
	// ErrMissingField — обязательное поле отсутствует или пусто.
	ErrMissingField = errors.New("required config field is missing")

	// ErrMalformedOverride — переопределение не в формате section.key=value.
	ErrMalformedOverride = errors.New("malformed override")

	// ErrInvalidDocument — документ не является YAML-маппингом.
	ErrInvalidDocument = errors.New("config document is not a mapping")
)

// FieldError — ошибка конфигурации с указанием секции и поля.
type FieldError struct {
	Section string // секция документа (main, data, random_forest_pipeline)
	Field   string // имя поля внутри секции
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *FieldError) Error() string {
	return e.Section + "." + e.Field + ": " + e.Err.Error()
}

// Unwrap возвращает базовую ошибку.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError создаёт ошибку для поля section.field.
func NewFieldError(section, field string, err error) *FieldError {
	return &FieldError{Section: section, Field: field, Err: err}
}
