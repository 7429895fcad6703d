package telemetry

import (
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics — метрики одного запуска пайплайна.
//
// Все методы записи безопасны для nil-получателя: это позволяет
// держать метрики опциональными без проверок на стороне вызывающего.
type Metrics struct {
	registry *prometheus.Registry

	dispatched *prometheus.CounterVec
	failed     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics создаёт метрики с собственным registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_steps_dispatched_total",
			Help: "Number of step dispatches, by step.",
		}, []string{"step"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_steps_failed_total",
			Help: "Number of failed step dispatches, by step.",
		}, []string{"step"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pipeline_step_duration_seconds",
			Help:    "Wall-clock duration of successful steps, by step.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"step"}),
	}

	m.registry.MustRegister(m.dispatched, m.failed, m.duration)
	return m
}

// StepDispatched учитывает диспетчеризацию шага.
func (m *Metrics) StepDispatched(step string) {
	if m == nil {
		return
	}
	m.dispatched.WithLabelValues(step).Inc()
}

// StepFailed учитывает провал шага.
func (m *Metrics) StepFailed(step string) {
	if m == nil {
		return
	}
	m.failed.WithLabelValues(step).Inc()
}

// ObserveStepDuration учитывает длительность успешного шага.
func (m *Metrics) ObserveStepDuration(step string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(step).Observe(d.Seconds())
}

// Push отправляет метрики в Pushgateway под именем job.
//
// Если PUSHGATEWAY_URL не задан, ничего не делает. Вызывается
// один раз по завершении запуска (успешного или нет).
func (m *Metrics) Push(job string) error {
	if m == nil {
		return nil
	}
	url := os.Getenv("PUSHGATEWAY_URL")
	if url == "" {
		return nil
	}
	return push.New(url, job).Gatherer(m.registry).Push()
}
