package runner

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alisonlhart/genre-classification/internal/domain"
)

// Handle — непрозрачный результат диспетчеризации шага.
//
// Оркестратор не интерпретирует Handle: успешный возврат Invoke
// означает, что шаг завершился успешно, ошибка — что запуск
// провалился. Больше никакой информации не гарантируется.
type Handle struct {
	// ID — идентификатор диспетчеризации.
	ID uuid.UUID

	// StepID — имя запущенного шага.
	StepID string

	// Duration — сколько длился запуск.
	Duration time.Duration
}

// Runner — интерфейс внешней системы управления запусками.
type Runner interface {
	// Invoke запускает шаг и блокируется до его завершения.
	// Ненулевой выход процесса шага возвращается как ошибка
	// (ErrDispatchFailed).
	Invoke(ctx context.Context, inv domain.Invocation) (*Handle, error)
}

// Registry — реестр бэкендов Runner по имени.
// Потокобезопасен.
type Registry struct {
	mu      sync.RWMutex
	runners map[string]Runner
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	return &Registry{runners: make(map[string]Runner)}
}

// Register добавляет бэкенд под именем name.
// Существующий бэкенд с тем же именем перезаписывается.
func (r *Registry) Register(name string, runner Runner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runners[name] = runner
}

// Get возвращает бэкенд по имени.
func (r *Registry) Get(name string) (Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runner, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRunner, name)
	}
	return runner, nil
}

// Names возвращает имена зарегистрированных бэкендов по алфавиту.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedParamKeys возвращает ключи параметров по алфавиту —
// для детерминированного порядка аргументов командной строки.
func sortedParamKeys(params domain.Params) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
