package handlers

import (
	"net/http"

	"github.com/ludotheque/catalog/models"
	"github.com/ludotheque/catalog/services"
)

type GenreHandler struct {
	Genres   *services.GenreService
	Renderer *Renderer
}

type genresPage struct {
	Title  string
	Genres []models.GenreSummary
}

type genreGamesPage struct {
	Title string
	Genre *models.Genre
}

func (gh *GenreHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := gh.Genres.List(r.Context())
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	gh.Renderer.Render(w, http.StatusOK, pageGenres, genresPage{Title: "Genres", Genres: genres})
}

func (gh *GenreHandler) GenreGames(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, services.EntityGenre)
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	genre, err := gh.Genres.Games(r.Context(), id)
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	gh.Renderer.Render(w, http.StatusOK, pageGenreGames, genreGamesPage{Title: genre.Name, Genre: genre})
}
