package services

import (
	"sort"

	"github.com/facette/natsort"

	"github.com/ludotheque/catalog/models"
)

// sortGamesByTitle orders games by title in natural order, so "Part 2" precedes "Part 10".
func sortGamesByTitle(games []models.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		return natsort.Compare(games[i].Title, games[j].Title)
	})
}
