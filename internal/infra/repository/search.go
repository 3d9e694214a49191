package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps an already lower-cased query for a LIKE substring match.
// Use it with ESCAPE '\'.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
