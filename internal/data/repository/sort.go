package repository

import "strings"

// sortClause converts an API sort key ("-date" means descending) into a
// safe ORDER BY clause. Only whitelisted columns pass through; anything
// else falls back to the default ascending column.
func sortClause(sort, fallback string, allowed map[string]string) string {
	direction := "ASC"
	key := sort

	if strings.HasPrefix(sort, "-") {
		direction = "DESC"
		key = sort[1:]
	}

	column, ok := allowed[key]
	if !ok {
		if strings.HasPrefix(fallback, "-") {
			return fallback[1:] + " DESC"
		}
		return fallback + " ASC"
	}

	return column + " " + direction
}
