package pipeline

import (
	"fmt"
	"strconv"

	"github.com/alisonlhart/genre-classification/internal/config"
	"github.com/alisonlhart/genre-classification/internal/domain"
)

// Фиксированные типы и описания артефактов, передаваемые шагам.
const (
	artifactTypeRaw        = "raw_data"
	artifactTypeProcessed  = "processed_data"
	artifactTypeStratified = "stratified_data"

	rawDataDescription      = "Data as downloaded"
	preprocessedDescription = "Data after processing"
)

// Aux — вспомогательные входы деривации, не являющиеся частью
// конфигурации. Заполняется оркестратором.
type Aux struct {
	// ModelConfigPath — абсолютный путь к материализованному файлу
	// random_forest_config.yml. Обязателен для шага random_forest,
	// игнорируется остальными.
	ModelConfigPath string
}

// Derive вычисляет параметры вызова шага из конфигурации.
//
// Деривация — чистая таблица соответствия: ни один параметр не
// зависит от результата ранее запущенного шага, только от полей
// конфигурации и фиксированных соглашений об именах артефактов.
// Повторный вызов с той же конфигурацией даёт тот же результат.
//
// Отсутствие обязательного поля для выбранного шага — фатальная
// ошибка конфигурации (config.ErrMissingField).
func Derive(step domain.Step, cfg *config.Config, aux Aux) (domain.Params, error) {
	switch step.ID {
	case StepDownload:
		return deriveDownload(cfg)
	case StepPreprocess:
		return derivePreprocess()
	case StepCheckData:
		return deriveCheckData(cfg)
	case StepSegregate:
		return deriveSegregate(cfg)
	case StepRandomForest:
		return deriveRandomForest(cfg, aux)
	case StepEvaluate:
		return deriveEvaluate(cfg)
	default:
		return nil, fmt.Errorf("no parameter derivation for step %q", step.ID)
	}
}

// BuildInvocation собирает вызов шага из дескриптора и параметров.
func BuildInvocation(step domain.Step, params domain.Params) domain.Invocation {
	return domain.Invocation{
		StepID:     step.ID,
		Dir:        step.Dir,
		EntryPoint: step.EntryPoint,
		Params:     params,
	}
}

func deriveDownload(cfg *config.Config) (domain.Params, error) {
	if cfg.Data.FileURL == "" {
		return nil, config.NewFieldError("data", "file_url", config.ErrMissingField)
	}
	return domain.Params{
		"file_url":             cfg.Data.FileURL,
		"artifact_name":        ArtifactRawData,
		"artifact_type":        artifactTypeRaw,
		"artifact_description": rawDataDescription,
	}, nil
}

func derivePreprocess() (domain.Params, error) {
	return domain.Params{
		"input_artifact":       domain.Latest(ArtifactRawData).String(),
		"artifact_name":        ArtifactPreprocessed,
		"artifact_type":        artifactTypeProcessed,
		"artifact_description": preprocessedDescription,
	}, nil
}

func deriveCheckData(cfg *config.Config) (domain.Params, error) {
	if cfg.Data.ReferenceDataset == "" {
		return nil, config.NewFieldError("data", "reference_dataset", config.ErrMissingField)
	}
	if cfg.Data.KSAlpha <= 0 {
		return nil, config.NewFieldError("data", "ks_alpha", config.ErrMissingField)
	}
	return domain.Params{
		"reference_artifact": cfg.Data.ReferenceDataset,
		"sample_artifact":    domain.Latest(ArtifactPreprocessed).String(),
		"ks_alpha":           formatFloat(cfg.Data.KSAlpha),
	}, nil
}

func deriveSegregate(cfg *config.Config) (domain.Params, error) {
	if cfg.Data.TestSize <= 0 {
		return nil, config.NewFieldError("data", "test_size", config.ErrMissingField)
	}
	if cfg.Data.Stratify == "" {
		return nil, config.NewFieldError("data", "stratify", config.ErrMissingField)
	}
	return domain.Params{
		"input_artifact": domain.Latest(ArtifactPreprocessed).String(),
		"artifact_root":  ArtifactDatasetRoot,
		"artifact_type":  artifactTypeStratified,
		"test_size":      formatFloat(cfg.Data.TestSize),
		"stratify":       cfg.Data.Stratify,
	}, nil
}

func deriveRandomForest(cfg *config.Config, aux Aux) (domain.Params, error) {
	exportArtifact, err := cfg.RandomForestPipeline.ExportArtifact()
	if err != nil {
		return nil, err
	}
	if cfg.Data.ValSize <= 0 {
		return nil, config.NewFieldError("data", "val_size", config.ErrMissingField)
	}
	if cfg.Data.Stratify == "" {
		return nil, config.NewFieldError("data", "stratify", config.ErrMissingField)
	}
	if aux.ModelConfigPath == "" {
		return nil, fmt.Errorf("model config path is required for step %s", StepRandomForest)
	}
	return domain.Params{
		"train_data":      domain.Latest(ArtifactTrainSplit).String(),
		"model_config":    aux.ModelConfigPath,
		"export_artifact": exportArtifact,
		"random_seed":     strconv.Itoa(cfg.Main.RandomSeed),
		"val_size":        formatFloat(cfg.Data.ValSize),
		"stratify":        cfg.Data.Stratify,
	}, nil
}

func deriveEvaluate(cfg *config.Config) (domain.Params, error) {
	exportArtifact, err := cfg.RandomForestPipeline.ExportArtifact()
	if err != nil {
		return nil, err
	}
	return domain.Params{
		"model_export": domain.Latest(exportArtifact).String(),
		"test_data":    domain.Latest(ArtifactTestSplit).String(),
	}, nil
}

// formatFloat форматирует число без хвостовых нулей ("0.05", "0.3").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
