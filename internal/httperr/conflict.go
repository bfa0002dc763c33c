package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos Postgres que indicam uma transação perdida para um commit
// concorrente: falha de serialização, deadlock, ou violação de
// constraint inserida por outra transação durante a corrida.
var conflictCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"23505": true, // unique_violation
	"23514": true, // check_violation
	"23P01": true, // exclusion_violation
}

func IsStorageConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return conflictCodes[pgErr.Code]
	}
	return false
}
