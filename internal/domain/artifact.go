package domain

// VersionLatest — селектор последней версии артефакта.
const VersionLatest = "latest"

// ArtifactRef — ссылка на версионированный артефакт.
//
// Единственный механизм связи между шагами: выход одного шага
// становится входом другого через строку вида "<имя>:<версия>".
// Оркестратор никогда не читает содержимое артефактов —
// только строит и передаёт такие ссылки.
type ArtifactRef struct {
	// Name — имя артефакта (например, "raw_data.parquet").
	Name string

	// Version — селектор версии. Практически всегда "latest".
	Version string
}

// Latest возвращает ссылку на последнюю версию артефакта.
func Latest(name string) ArtifactRef {
	return ArtifactRef{Name: name, Version: VersionLatest}
}

// String возвращает строковое представление "<имя>:<версия>".
func (r ArtifactRef) String() string {
	return r.Name + ":" + r.Version
}
