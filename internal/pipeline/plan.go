package pipeline

import (
	"strings"

	"github.com/alisonlhart/genre-classification/internal/config"
	"github.com/alisonlhart/genre-classification/internal/domain"
)

// Plan — план выполнения: упорядоченное подмножество канонического
// списка шагов. Строится один раз из execute_steps и далее не меняется.
type Plan struct {
	steps []domain.Step
}

// Resolve строит план из выбора шагов.
//
// Выбор пересекается с каноническим списком; результат всегда в
// каноническом порядке, независимо от порядка имён во входе.
// Нераспознанные имена молча игнорируются — сознательная
// терпимость к опечаткам и шагам будущих версий. Пустой выбор
// даёт пустой план: запуск без шагов — не ошибка.
func Resolve(selection config.StepSelection) Plan {
	requested := make(map[string]bool, len(selection))
	for _, name := range selection {
		requested[name] = true
	}

	steps := make([]domain.Step, 0, len(Canonical))
	for _, step := range Canonical {
		if requested[step.ID] {
			steps = append(steps, step)
		}
	}
	return Plan{steps: steps}
}

// Steps возвращает шаги плана в каноническом порядке.
func (p Plan) Steps() []domain.Step {
	return p.steps
}

// IDs возвращает имена шагов плана по порядку.
func (p Plan) IDs() []string {
	ids := make([]string, len(p.steps))
	for i, s := range p.steps {
		ids[i] = s.ID
	}
	return ids
}

// Len возвращает количество шагов в плане.
func (p Plan) Len() int {
	return len(p.steps)
}

// IsEmpty возвращает true, если план не содержит шагов.
func (p Plan) IsEmpty() bool {
	return len(p.steps) == 0
}

// Contains проверяет, входит ли шаг в план.
func (p Plan) Contains(stepID string) bool {
	for _, s := range p.steps {
		if s.ID == stepID {
			return true
		}
	}
	return false
}

// String возвращает план в виде "download → preprocess → ...".
func (p Plan) String() string {
	return strings.Join(p.IDs(), " → ")
}

// UnmetInputs возвращает входные артефакты шагов плана, которые
// не публикуются более ранними шагами этого же плана.
//
// Диагностика статическая и строго информационная: ссылка вида
// "X:latest" может указывать на артефакт из предыдущего запуска,
// поэтому неполный план остаётся валидным. Оркестратор лишь
// предупреждает в логе.
//
// Ключ результата — имя шага, значение — недостающие артефакты
// в порядке объявления.
func (p Plan) UnmetInputs() map[string][]string {
	produced := make(map[string]bool)
	unmet := make(map[string][]string)

	for _, step := range p.steps {
		for _, name := range step.Consumes {
			if !produced[name] {
				unmet[step.ID] = append(unmet[step.ID], name)
			}
		}
		for _, name := range step.Produces {
			produced[name] = true
		}
	}
	return unmet
}
