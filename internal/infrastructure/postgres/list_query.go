package postgres

import (
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
)

const productColumns = "id, name, category, price_cents, description, status, created_at, updated_at"

// buildListQuery construye las dos sentencias del listado (count y página) a
// partir de un filtro ya validado. El WHERE sale exclusivamente del enum
// cerrado de estados y el ORDER BY de la allow-list de columnas: nada de
// texto libre llega jamás al SQL. LIMIT y OFFSET van como parámetros.
func buildListQuery(f catalog.ListFilter) (countSQL, pageSQL string, args []any) {
	where := ""
	switch f.FilterBy {
	case catalog.FilterActive:
		where = "WHERE status = 1"
	case catalog.FilterInactive:
		where = "WHERE status = 0"
	case catalog.FilterAll:
		// sin predicado
	}

	countSQL = fmt.Sprintf("SELECT COUNT(*) FROM products %s", where)
	pageSQL = fmt.Sprintf(
		"SELECT %s FROM products %s ORDER BY %s %s LIMIT $1 OFFSET $2",
		productColumns, where, f.SortColumn, f.SortOrder,
	)
	args = []any{f.PerPage, f.Page * f.PerPage}
	return countSQL, pageSQL, args
}
