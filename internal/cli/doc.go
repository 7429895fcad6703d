// Package cli реализует подкоманды genre-pipeline:
//
//	run      выполнить выбранные шаги пайплайна
//	plan     показать план выполнения без запуска
//	config   показать эффективную конфигурацию
//	history  показать журнал диспетчеризаций
//
// Все подкоманды разделяют флаги --config, --set и --steps:
// конфигурация с переопределениями загружается одинаково, поэтому
// plan показывает ровно то, что выполнит run.
package cli
