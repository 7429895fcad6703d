package pipeline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alisonlhart/genre-classification/internal/config"
	"github.com/alisonlhart/genre-classification/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Main: config.Main{
			ProjectName:    "genre_classification",
			ExperimentName: "dev",
			RandomSeed:     42,
		},
		Data: config.Data{
			FileURL:          "https://example.com/genres.parquet",
			ReferenceDataset: "prod/preprocessed_data.csv:latest",
			KSAlpha:          0.05,
			TestSize:         0.3,
			ValSize:          0.3,
			Stratify:         "genre",
		},
		RandomForestPipeline: config.RandomForestPipeline{
			"random_forest":   map[string]any{"n_estimators": 100},
			"export_artifact": "model_export",
		},
	}
}

func stepByID(t *testing.T, id string) domain.Step {
	t.Helper()
	for _, s := range Canonical {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("unknown step %q", id)
	return domain.Step{}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		step string
		aux  Aux
		want domain.Params
	}{
		{
			step: StepDownload,
			want: domain.Params{
				"file_url":             "https://example.com/genres.parquet",
				"artifact_name":        "raw_data.parquet",
				"artifact_type":        "raw_data",
				"artifact_description": "Data as downloaded",
			},
		},
		{
			step: StepPreprocess,
			want: domain.Params{
				"input_artifact":       "raw_data.parquet:latest",
				"artifact_name":        "preprocessed_data.csv",
				"artifact_type":        "processed_data",
				"artifact_description": "Data after processing",
			},
		},
		{
			step: StepCheckData,
			want: domain.Params{
				"reference_artifact": "prod/preprocessed_data.csv:latest",
				"sample_artifact":    "preprocessed_data.csv:latest",
				"ks_alpha":           "0.05",
			},
		},
		{
			step: StepSegregate,
			want: domain.Params{
				"input_artifact": "preprocessed_data.csv:latest",
				"artifact_root":  "dataset",
				"artifact_type":  "stratified_data",
				"test_size":      "0.3",
				"stratify":       "genre",
			},
		},
		{
			step: StepRandomForest,
			aux:  Aux{ModelConfigPath: "/work/random_forest_config.yml"},
			want: domain.Params{
				"train_data":      "dataset_train.csv:latest",
				"model_config":    "/work/random_forest_config.yml",
				"export_artifact": "model_export",
				"random_seed":     "42",
				"val_size":        "0.3",
				"stratify":        "genre",
			},
		},
		{
			step: StepEvaluate,
			want: domain.Params{
				"model_export": "model_export:latest",
				"test_data":    "dataset_test.csv:latest",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			got, err := Derive(stepByID(t, tt.step), testConfig(), tt.aux)
			if err != nil {
				t.Fatalf("derive: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Деривация — чистая функция конфигурации: повторный вызов даёт
// идентичный результат.
func TestDerive_Idempotent(t *testing.T) {
	cfg := testConfig()
	aux := Aux{ModelConfigPath: "/work/random_forest_config.yml"}

	for _, step := range Canonical {
		first, err := Derive(step, cfg, aux)
		if err != nil {
			t.Fatalf("derive %s: %v", step.ID, err)
		}
		second, err := Derive(step, cfg, aux)
		if err != nil {
			t.Fatalf("derive %s again: %v", step.ID, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("step %s: derivation is not idempotent (-first +second):\n%s", step.ID, diff)
		}
	}
}

func TestDerive_CustomExportArtifact(t *testing.T) {
	cfg := testConfig()
	cfg.RandomForestPipeline["export_artifact"] = "rf_model"

	params, err := Derive(stepByID(t, StepEvaluate), cfg, Aux{})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if params["model_export"] != "rf_model:latest" {
		t.Errorf("model_export = %q, want rf_model:latest", params["model_export"])
	}
}

func TestDerive_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		step    string
		aux     Aux
		mutate  func(cfg *config.Config)
		section string
		field   string
	}{
		{
			name:    "download without file_url",
			step:    StepDownload,
			mutate:  func(cfg *config.Config) { cfg.Data.FileURL = "" },
			section: "data",
			field:   "file_url",
		},
		{
			name:    "check_data without reference_dataset",
			step:    StepCheckData,
			mutate:  func(cfg *config.Config) { cfg.Data.ReferenceDataset = "" },
			section: "data",
			field:   "reference_dataset",
		},
		{
			name:    "check_data without ks_alpha",
			step:    StepCheckData,
			mutate:  func(cfg *config.Config) { cfg.Data.KSAlpha = 0 },
			section: "data",
			field:   "ks_alpha",
		},
		{
			name:    "segregate without test_size",
			step:    StepSegregate,
			mutate:  func(cfg *config.Config) { cfg.Data.TestSize = 0 },
			section: "data",
			field:   "test_size",
		},
		{
			name:    "segregate without stratify",
			step:    StepSegregate,
			mutate:  func(cfg *config.Config) { cfg.Data.Stratify = "" },
			section: "data",
			field:   "stratify",
		},
		{
			name:    "random_forest without export_artifact",
			step:    StepRandomForest,
			aux:     Aux{ModelConfigPath: "/work/random_forest_config.yml"},
			mutate:  func(cfg *config.Config) { delete(cfg.RandomForestPipeline, "export_artifact") },
			section: "random_forest_pipeline",
			field:   "export_artifact",
		},
		{
			name:    "random_forest without val_size",
			step:    StepRandomForest,
			aux:     Aux{ModelConfigPath: "/work/random_forest_config.yml"},
			mutate:  func(cfg *config.Config) { cfg.Data.ValSize = 0 },
			section: "data",
			field:   "val_size",
		},
		{
			name:    "evaluate without export_artifact",
			step:    StepEvaluate,
			mutate:  func(cfg *config.Config) { delete(cfg.RandomForestPipeline, "export_artifact") },
			section: "random_forest_pipeline",
			field:   "export_artifact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			_, err := Derive(stepByID(t, tt.step), cfg, tt.aux)
			if !errors.Is(err, config.ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}

			var fErr *config.FieldError
			if !errors.As(err, &fErr) {
				t.Fatalf("expected FieldError, got %T", err)
			}
			if fErr.Section != tt.section || fErr.Field != tt.field {
				t.Errorf("error location = %s.%s, want %s.%s", fErr.Section, fErr.Field, tt.section, tt.field)
			}
		})
	}
}

func TestDerive_RandomForestRequiresModelConfigPath(t *testing.T) {
	_, err := Derive(stepByID(t, StepRandomForest), testConfig(), Aux{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
