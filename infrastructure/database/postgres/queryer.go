package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de operações usado pelos repositórios. Todas as
// chamadas carregam contexto para que o chamador imponha timeouts.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
