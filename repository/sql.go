package repository

import (
	sq "github.com/Masterminds/squirrel"
)

// psql builds the hand-written aggregate queries that GORM's chain API
// expresses poorly. They run through gorm.DB.Raw so they share its pool and logger.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// summaryQuery counts the games attached to each row of table through fkColumn,
// ordered by name.
func summaryQuery(table, fkColumn string) sq.SelectBuilder {
	return psql.Select(
		table+".id AS id",
		table+".name AS name",
		"COUNT(games.id) AS game_count",
	).
		From(table).
		LeftJoin("games ON games." + fkColumn + " = " + table + ".id").
		GroupBy(table+".id", table+".name").
		OrderBy(table+".name ASC", table+".id ASC")
}
