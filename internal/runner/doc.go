// Package runner отвечает за диспетчеризацию шагов во внешнюю
// систему управления запусками.
//
// Runner — интерфейс с единственной операцией Invoke: запустить шаг
// по его вызову (директория, точка входа, параметры) и заблокироваться
// до завершения. Оркестратор не повторяет попытки, не опрашивает
// статус и не читает результат — только непрозрачный Handle.
//
// Реализации:
//   - MLflowRunner — запускает "mlflow run" как дочерний процесс
//   - NoopRunner — ничего не запускает (тесты, прогон вхолостую)
//
// Реализации регистрируются в Registry по имени бэкенда.
package runner
