package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/alisonlhart/genre-classification/internal/config"
)

// ModelConfigFile — фиксированное имя файла sub-конфигурации,
// которое шаг random_forest получает через параметр model_config.
const ModelConfigFile = "random_forest_config.yml"

// Materialize сериализует поддерево random_forest_pipeline в YAML-файл
// в директории dir и возвращает абсолютный путь к файлу.
//
// Файл перезаписывается при каждом запуске. Пустой dir означает
// текущую рабочую директорию. Ошибка записи фатальна для всего
// запуска — резервного пути нет. Файл не удаляется оркестратором:
// его жизненный цикл заканчивается вместе с процессом.
func Materialize(dir string, section config.RandomForestPipeline) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: resolve working directory: %v", ErrMaterialize, err)
		}
		dir = wd
	}

	path, err := filepath.Abs(filepath.Join(dir, ModelConfigFile))
	if err != nil {
		return "", fmt.Errorf("%w: resolve path: %v", ErrMaterialize, err)
	}

	out, err := yaml.Marshal(map[string]any(section))
	if err != nil {
		return "", fmt.Errorf("%w: marshal: %v", ErrMaterialize, err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMaterialize, err)
	}
	return path, nil
}
