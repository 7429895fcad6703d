// Package tracking описывает идентичность эксперимента для внешнего
// трекера (W&B): имя проекта и имя группы запусков.
//
// Вместо мутации окружения собственного процесса оркестратор передаёт
// явный Context в Runner, который добавляет переменные в окружение
// каждого дочернего процесса шага. Общего изменяемого глобального
// состояния нет.
package tracking

// Имена переменных окружения, которые читает трекер внутри
// процесса каждого шага.
const (
	EnvProject  = "WANDB_PROJECT"
	EnvRunGroup = "WANDB_RUN_GROUP"
)

// Context — идентичность эксперимента для одного запуска пайплайна.
// Устанавливается один раз и далее не меняется.
type Context struct {
	// Project — имя проекта (main.project_name).
	Project string

	// RunGroup — имя группы запусков (main.experiment_name).
	// Все шаги одного запуска группируются под этим именем.
	RunGroup string
}

// Environ возвращает переменные окружения в формате "KEY=value"
// для добавления в окружение процесса шага. Пустые значения
// не передаются.
func (c Context) Environ() []string {
	env := make([]string, 0, 2)
	if c.Project != "" {
		env = append(env, EnvProject+"="+c.Project)
	}
	if c.RunGroup != "" {
		env = append(env, EnvRunGroup+"="+c.RunGroup)
	}
	return env
}
