// Package queries contains read operations that bypass the command engine.
// Queries build SQL with goqu and scan into read models; they never modify
// state and run outside any transaction scope.
package queries

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const dialectPostgres = "postgres"

func dialect() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}
