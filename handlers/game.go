package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/ludotheque/catalog/models"
	"github.com/ludotheque/catalog/services"
)

type GameHandler struct {
	Games    *services.GameService
	Editors  *services.EditorService
	Renderer *Renderer
}

type gamesPage struct {
	Title string
	Games []models.Game
}

type gamePage struct {
	Title string
	Game  *models.Game
}

type gameFormPage struct {
	Title       string
	Action      string
	Method      string
	SubmitLabel string
	Game        *models.Game
	Genres      []models.Genre
	Editors     []models.Editor
}

func (gh *GameHandler) Home(w http.ResponseWriter, r *http.Request) {
	games, err := gh.Games.ListHighlighted(r.Context())
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	gh.Renderer.Render(w, http.StatusOK, pageHome, gamesPage{Title: "Home", Games: games})
}

func (gh *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := gh.Games.List(r.Context())
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	gh.Renderer.Render(w, http.StatusOK, pageGames, gamesPage{Title: "Games", Games: games})
}

// CreateForm renders the creation form. Games need an editor, so the form is
// refused while no editor exists.
func (gh *GameHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	count, err := gh.Editors.Count(r.Context())
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	if count == 0 {
		gh.Renderer.renderError(w, http.StatusForbidden, msgNoEditors)
		return
	}

	genres, editors, err := gh.Games.FormOptions(r.Context())
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	gh.Renderer.Render(w, http.StatusOK, pageGameForm, gameFormPage{
		Title:       "Create a game",
		Action:      "/games/create",
		SubmitLabel: "Create the game",
		Genres:      genres,
		Editors:     editors,
	})
}

func (gh *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	in, cover, err := gh.readGameForm(r)
	if cover != nil {
		defer cover.Close()
	}
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}

	if _, err := gh.Games.Create(r.Context(), in); err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/games", http.StatusFound)
}

func (gh *GameHandler) GameDetails(w http.ResponseWriter, r *http.Request) {
	game, ok := gh.loadGame(w, r)
	if !ok {
		return
	}
	gh.Renderer.Render(w, http.StatusOK, pageGameDetails, gamePage{Title: game.Title, Game: game})
}

func (gh *GameHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	game, ok := gh.loadGame(w, r)
	if !ok {
		return
	}
	genres, editors, err := gh.Games.FormOptions(r.Context())
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	gh.Renderer.Render(w, http.StatusOK, pageGameForm, gameFormPage{
		Title:       "Edit " + game.Title,
		Action:      fmt.Sprintf("/games/%d/edit", game.ID),
		Method:      http.MethodPut,
		SubmitLabel: "Save changes",
		Game:        game,
		Genres:      genres,
		Editors:     editors,
	})
}

func (gh *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, services.EntityGame)
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}

	in, cover, err := gh.readGameForm(r)
	if cover != nil {
		defer cover.Close()
	}
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}

	if _, err := gh.Games.Update(r.Context(), id, in); err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/games/%d/details", id), http.StatusFound)
}

func (gh *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, services.EntityGame)
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	if err := gh.Games.Delete(r.Context(), id); err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/games", http.StatusFound)
}

func (gh *GameHandler) loadGame(w http.ResponseWriter, r *http.Request) (*models.Game, bool) {
	id, err := pathID(r, services.EntityGame)
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return nil, false
	}
	game, err := gh.Games.Get(r.Context(), id)
	if err != nil {
		gh.Renderer.writeServiceError(w, r, err)
		return nil, false
	}
	return game, true
}

// readGameForm parses the form and its optional cover. The returned file is
// non-nil whenever a cover was opened.
func (gh *GameHandler) readGameForm(r *http.Request) (services.GameInput, multipart.File, error) {
	if err := parseForm(r); err != nil {
		return services.GameInput{}, nil, fmt.Errorf("%w: %w", services.ErrInvalidInput, err)
	}
	in, err := gameInput(r)
	if err != nil {
		return services.GameInput{}, nil, err
	}
	upload, file, err := formCover(r)
	if err != nil {
		return services.GameInput{}, nil, err
	}
	in.Cover = upload
	return in, file, nil
}
