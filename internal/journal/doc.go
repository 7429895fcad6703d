// Package journal ведёт локальный журнал диспетчеризаций шагов
// в embedded SQLite базе.
//
// Журнал — информационная летопись запусков для подкоманды history:
// он никогда не влияет на ход выполнения, пайплайн не читает из него
// состояние и не возобновляется. Ошибки журнала логируются
// оркестратором как предупреждения.
package journal
