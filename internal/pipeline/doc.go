// Package pipeline содержит ядро оркестратора: канонический список
// шагов, построение плана выполнения и деривацию параметров.
//
// Всё в этом пакете — чистые функции от конфигурации:
//   - Resolve фильтрует канонический список по execute_steps,
//     сохраняя порядок зависимостей независимо от порядка во входе
//   - Derive строит параметры вызова шага из полей конфигурации
//     и фиксированных соглашений об именах артефактов
//
// Ни одна функция не зависит от результатов уже запущенных шагов:
// корректность цепочки обеспечивается строго последовательной
// диспетчеризацией и фиксированным порядком, а не отслеживанием
// зависимостей во время выполнения.
package pipeline
