package config

// Config — конфигурация одного запуска пайплайна.
type Config struct {
	// Main — идентичность проекта и выбор шагов.
	Main Main `yaml:"main"`

	// Data — параметры данных, общие для нескольких шагов.
	Data Data `yaml:"data"`

	// RandomForestPipeline — поддерево гиперпараметров модели.
	// Оркестратор не интерпретирует его содержимое, кроме поля
	// export_artifact, и сериализует поддерево целиком в файл
	// для шага random_forest.
	RandomForestPipeline RandomForestPipeline `yaml:"random_forest_pipeline"`
}

// Main — секция main конфигурации.
type Main struct {
	// ProjectName — имя проекта в трекере экспериментов.
	ProjectName string `yaml:"project_name"`

	// ExperimentName — имя группы запусков в трекере экспериментов.
	ExperimentName string `yaml:"experiment_name"`

	// ExecuteSteps — какие шаги выполнять в этом запуске.
	ExecuteSteps StepSelection `yaml:"execute_steps"`

	// RandomSeed — seed для воспроизводимости обучения.
	RandomSeed int `yaml:"random_seed"`
}

// Data — секция data конфигурации.
type Data struct {
	// FileURL — URL исходного датасета для шага download.
	FileURL string `yaml:"file_url"`

	// ReferenceDataset — ссылка на эталонный датасет для check_data.
	ReferenceDataset string `yaml:"reference_dataset"`

	// KSAlpha — порог значимости теста Колмогорова-Смирнова.
	KSAlpha float64 `yaml:"ks_alpha"`

	// TestSize — доля тестовой выборки при разбиении.
	TestSize float64 `yaml:"test_size"`

	// ValSize — доля валидационной выборки при обучении.
	ValSize float64 `yaml:"val_size"`

	// Stratify — колонка для стратификации разбиений.
	Stratify string `yaml:"stratify"`
}

// RandomForestPipeline — непрозрачное поддерево random_forest_pipeline.
//
// Хранится как map, а не как структура: набор гиперпараметров —
// контракт шага random_forest, не оркестратора. Новые поля не
// должны требовать изменений здесь.
type RandomForestPipeline map[string]any

// ExportArtifact возвращает имя артефакта экспортированной модели.
// Поле обязательно для шагов random_forest и evaluate.
func (p RandomForestPipeline) ExportArtifact() (string, error) {
	v, ok := p["export_artifact"]
	if !ok {
		return "", NewFieldError("random_forest_pipeline", "export_artifact", ErrMissingField)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", NewFieldError("random_forest_pipeline", "export_artifact", ErrMissingField)
	}
	return s, nil
}
