package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation en PostgreSQL.
const pgUniqueViolation = "23505"

// isUniqueViolation detecta el choque contra la PK de products: el ID
// candidato perdió la carrera contra otro insert concurrente. Create lo
// traduce a ErrDuplicate para que el caso de uso reintente con un ID fresco.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
