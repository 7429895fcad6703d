// Package orchestrator связывает ядро пайплайна с внешним миром:
// строит план из конфигурации и последовательно диспетчеризует шаги.
//
// Модель выполнения предельно простая и полностью однопоточная:
// шаги запускаются строго по одному в каноническом порядке, каждый
// Invoke блокирует оркестратор до завершения процесса шага. Именно
// так — а не через отслеживание зависимостей — обеспечивается
// доступность артефактов: preprocess не стартует раньше, чем
// download опубликует raw_data.parquet.
//
// Любая ошибка фатальна для всего запуска: пайплайн пакетный и
// невозобновляемый, частичного успеха не существует. Первый же
// провал диспетчеризации останавливает цепочку — нижестоящие шаги
// не запускаются.
package orchestrator
