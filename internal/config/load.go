package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Load читает YAML-документ из файла, применяет переопределения
// и декодирует результат в Config.
//
// overrides — список строк вида "section.key=value" (флаг --set).
// Значение разбирается как YAML-скаляр, поэтому "0.05" становится
// числом, а "download,evaluate" — строкой.
func Load(path string, overrides []string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(raw, overrides)
}

// Parse декодирует документ из памяти. Выделен из Load для тестов.
func Parse(raw []byte, overrides []string) (*Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if doc == nil {
		doc = make(map[string]any)
	}

	for _, ov := range overrides {
		if err := applyOverride(doc, ov); err != nil {
			return nil, err
		}
	}

	// Повторная сериализация прогоняет переопределённый документ
	// через ту же типизацию, что и исходный файл.
	merged, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("merge config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(merged, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// applyOverride применяет одно переопределение "a.b.c=value" к документу.
// Промежуточные маппинги создаются по мере необходимости.
func applyOverride(doc map[string]any, ov string) error {
	key, val, ok := strings.Cut(ov, "=")
	if !ok || key == "" {
		return fmt.Errorf("%w: %q, expected section.key=value", ErrMalformedOverride, ov)
	}

	var parsed any
	if err := yaml.Unmarshal([]byte(val), &parsed); err != nil {
		// Невалидный YAML-скаляр оставляем сырой строкой.
		parsed = val
	}

	path := strings.Split(key, ".")
	node := doc
	for _, part := range path[:len(path)-1] {
		child, ok := node[part]
		if !ok || child == nil {
			next := make(map[string]any)
			node[part] = next
			node = next
			continue
		}
		m, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q overrides a non-mapping node", ErrMalformedOverride, ov)
		}
		node = m
	}
	node[path[len(path)-1]] = parsed
	return nil
}
