// Package domain содержит основные типы предметной области:
// шаги пайплайна, ссылки на артефакты, записи о диспетчеризации.
//
// Пакет не имеет зависимостей от других internal-пакетов
// и не содержит бизнес-логики — только данные и их инварианты.
package domain
