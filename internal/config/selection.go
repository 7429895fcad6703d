package config

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// StepSelection — выбор шагов из execute_steps.
//
// Конфигурация допускает две формы записи:
//   - YAML-список имён шагов (удобно в файле)
//   - строка с именами через запятую (удобно в командной строке)
//
// Обе формы нормализуются здесь, на границе конфигурации, в один
// канонический тип. Глубже в пайплайне полиморфизма нет.
//
// Порядок элементов не имеет значения: план выполнения всегда
// строится в каноническом порядке зависимостей.
type StepSelection []string

// UnmarshalYAML принимает список строк или строку через запятую.
func (s *StepSelection) UnmarshalYAML(b []byte) error {
	var list []string
	if err := yaml.Unmarshal(b, &list); err == nil {
		*s = normalizeSelection(list)
		return nil
	}

	var str string
	if err := yaml.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("execute_steps must be a string or a list of strings: %w", err)
	}
	*s = ParseStepSelection(str)
	return nil
}

// ParseStepSelection разбирает строку вида "download,preprocess".
func ParseStepSelection(s string) StepSelection {
	return normalizeSelection(strings.Split(s, ","))
}

// normalizeSelection убирает пробелы и пустые элементы.
func normalizeSelection(names []string) StepSelection {
	out := make(StepSelection, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}

// Contains проверяет, содержит ли выбор шаг с данным именем.
func (s StepSelection) Contains(name string) bool {
	for _, id := range s {
		if id == name {
			return true
		}
	}
	return false
}
