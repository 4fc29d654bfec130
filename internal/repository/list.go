package repository

// Every list endpoint caps page size at 100 regardless of the requested limit.
const maxListLimit = 100

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// orderExpr builds the ORDER BY clause. Ties on the requested column are
// broken by id ascending so paging is deterministic across stores.
func orderExpr(column, order string) string {
	if order == "desc" {
		return column + " DESC, id ASC"
	}
	return column + " ASC, id ASC"
}

// sortColumn resolves an API sort field against a per-resource allow-list,
// falling back to the resource default for unknown fields.
func sortColumn(allowed map[string]string, field, fallback string) string {
	if col, ok := allowed[field]; ok {
		return col
	}
	return allowed[fallback]
}
