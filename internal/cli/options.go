package cli

import (
	"github.com/alisonlhart/genre-classification/internal/config"
)

// Options — общие флаги всех подкоманд, привязанные к root-команде.
type Options struct {
	// ConfigPath — путь к YAML-файлу конфигурации (--config).
	ConfigPath string

	// Overrides — переопределения section.key=value (--set, повторяемый).
	Overrides []string

	// Steps — переопределение execute_steps строкой через запятую
	// (--steps). Сокращение для --set main.execute_steps=...
	Steps string

	// JSONOutput — выводить данные в JSON вместо таблиц (--json).
	JSONOutput bool
}

// LoadConfig загружает конфигурацию с учётом всех переопределений.
func (o *Options) LoadConfig() (*config.Config, error) {
	overrides := o.Overrides
	if o.Steps != "" {
		overrides = append(overrides, "main.execute_steps="+o.Steps)
	}
	return config.Load(o.ConfigPath, overrides)
}

// Output создаёт форматтер вывода согласно флагам.
func (o *Options) Output() *Output {
	return NewOutput(o.JSONOutput)
}
