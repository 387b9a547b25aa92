package repository

import "strings"

// likeEscape is the escape character used in LIKE clauses. '!' is accepted as an
// explicit ESCAPE by MySQL, Postgres and SQLite alike.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a LIKE pattern matching term anywhere in the column.
func containsPattern(term string) string {
	return "%" + likeReplacer.Replace(term) + "%"
}
