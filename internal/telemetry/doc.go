// Package telemetry обеспечивает наблюдаемость оркестратора.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики пакетного запуска
//
// Оркестратор — короткоживущий процесс, поэтому метрики не
// экспортируются через HTTP, а отправляются в Pushgateway
// по завершении запуска (если задан PUSHGATEWAY_URL).
package telemetry
