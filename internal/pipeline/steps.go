package pipeline

import "github.com/alisonlhart/genre-classification/internal/domain"

// Имена канонических шагов.
const (
	StepDownload     = "download"
	StepPreprocess   = "preprocess"
	StepCheckData    = "check_data"
	StepSegregate    = "segregate"
	StepRandomForest = "random_forest"
	StepEvaluate     = "evaluate"
)

// Фиксированные имена артефактов, связывающие шаги между собой.
const (
	// ArtifactRawData — сырые данные, выход download.
	ArtifactRawData = "raw_data.parquet"

	// ArtifactPreprocessed — очищенные данные, выход preprocess.
	ArtifactPreprocessed = "preprocessed_data.csv"

	// ArtifactDatasetRoot — корневое имя артефактов разбиения.
	ArtifactDatasetRoot = "dataset"

	// ArtifactTrainSplit — обучающая выборка, выход segregate.
	ArtifactTrainSplit = "dataset_train.csv"

	// ArtifactTestSplit — тестовая выборка, выход segregate.
	ArtifactTestSplit = "dataset_test.csv"
)

// Canonical — канонический список шагов в порядке зависимостей.
//
// Порядок фиксирован на этапе проектирования: download → preprocess →
// check_data → segregate → random_forest → evaluate. Выбор шагов
// (Resolve) фильтрует этот список, никогда не переупорядочивая его.
//
// Consumes/Produces описывают контракт шага по артефактам и
// используются только для статической диагностики плана
// (Plan.UnmetInputs); во время выполнения никакие зависимости
// не отслеживаются.
var Canonical = []domain.Step{
	{
		ID:         StepDownload,
		Dir:        "download",
		EntryPoint: "main",
		Produces:   []string{ArtifactRawData},
	},
	{
		ID:         StepPreprocess,
		Dir:        "preprocess",
		EntryPoint: "main",
		Consumes:   []string{ArtifactRawData},
		Produces:   []string{ArtifactPreprocessed},
	},
	{
		ID:         StepCheckData,
		Dir:        "check_data",
		EntryPoint: "main",
		Consumes:   []string{ArtifactPreprocessed},
	},
	{
		ID:         StepSegregate,
		Dir:        "segregate",
		EntryPoint: "main",
		Consumes:   []string{ArtifactPreprocessed},
		Produces:   []string{ArtifactTrainSplit, ArtifactTestSplit},
	},
	{
		ID:         StepRandomForest,
		Dir:        "random_forest",
		EntryPoint: "main",
		Consumes:   []string{ArtifactTrainSplit},
		Produces:   []string{domain.ModelExportArtifact},
	},
	{
		ID:         StepEvaluate,
		Dir:        "evaluate",
		EntryPoint: "main",
		Consumes:   []string{domain.ModelExportArtifact, ArtifactTestSplit},
	},
}

// StepIDs возвращает имена всех канонических шагов по порядку.
func StepIDs() []string {
	ids := make([]string, len(Canonical))
	for i, s := range Canonical {
		ids[i] = s.ID
	}
	return ids
}

// IsKnownStep проверяет, есть ли шаг с таким именем в каноническом списке.
func IsKnownStep(name string) bool {
	for _, s := range Canonical {
		if s.ID == name {
			return true
		}
	}
	return false
}
