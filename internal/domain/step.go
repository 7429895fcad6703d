package domain

// Step — описание одного шага пайплайна.
//
// Шаг — это независимо упакованный компонент (отдельная директория
// со своей entry point), который запускается внешней системой
// управления запусками как изолированный процесс. Оркестратор
// не знает ничего о внутренностях шага — только его расположение,
// точку входа и контракт по артефактам.
type Step struct {
	// ID — каноническое имя шага (например, "download", "preprocess").
	// Используется в execute_steps для выбора шагов.
	ID string

	// Dir — относительное расположение пакета шага от корня проекта.
	// Совпадает с ID для всех стандартных шагов.
	Dir string

	// EntryPoint — имя точки входа внутри пакета шага.
	EntryPoint string

	// Consumes — имена артефактов, которые шаг читает.
	// Символическое имя ModelExportArtifact обозначает артефакт модели,
	// фактическое имя которого задаётся конфигурацией.
	Consumes []string

	// Produces — имена артефактов, которые шаг публикует.
	Produces []string
}

// ModelExportArtifact — символическое имя артефакта экспортированной
// модели. Фактическое имя берётся из random_forest_pipeline.export_artifact.
const ModelExportArtifact = "<export_artifact>"

// Params — параметры вызова шага.
//
// Система управления запусками принимает только строковые значения,
// поэтому числовые поля конфигурации форматируются при деривации.
type Params map[string]string

// Invocation — полностью вычисленный вызов шага:
// (расположение, точка входа, параметры).
//
// Это то, что оркестратор передаёт в Runner. После построения
// Invocation не изменяется.
type Invocation struct {
	// StepID — имя шага, к которому относится вызов.
	StepID string

	// Dir — расположение пакета шага от корня проекта.
	Dir string

	// EntryPoint — точка входа.
	EntryPoint string

	// Params — параметры вызова (имя → строковое значение).
	Params Params
}
