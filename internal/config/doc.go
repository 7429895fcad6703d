// Package config загружает конфигурацию пайплайна.
//
// Конфигурация — YAML-документ с тремя фиксированными секциями:
//   - main — имя проекта, имя эксперимента, random seed, execute_steps
//   - data — источник данных, параметры статистического теста, размеры выборок
//   - random_forest_pipeline — гиперпараметры модели (непрозрачное поддерево)
//
// Любое поле можно переопределить из командной строки через
// повторяемый флаг --set section.key=value. Переопределения
// применяются к сырому документу до декодирования, поэтому
// проходят через ту же нормализацию, что и значения из файла.
//
// Пакет не подставляет значения по умолчанию: отсутствие поля,
// необходимого выбранному шагу, обнаруживается при деривации
// параметров и фатально для всего запуска.
package config
