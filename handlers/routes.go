package handlers

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ludotheque/catalog/media"
	"github.com/ludotheque/catalog/services"
)

// Dependencies are the services and assets the routes are built from.
type Dependencies struct {
	Games    *services.GameService
	Genres   *services.GenreService
	Editors  *services.EditorService
	Uploads  *media.LocalStorage
	Renderer *Renderer
	Static   fs.FS

	// MaxUploadBytes caps request bodies; 0 disables the limit.
	MaxUploadBytes int64
}

// RegisterRoutes mounts every catalog route on r. It installs the body size
// limit and MethodOverride, so it must run before any other route is added.
func RegisterRoutes(r chi.Router, deps Dependencies) {
	if deps.MaxUploadBytes > 0 {
		r.Use(middleware.RequestSize(deps.MaxUploadBytes))
	}
	r.Use(MethodOverride)

	gameHandler := &GameHandler{Games: deps.Games, Editors: deps.Editors, Renderer: deps.Renderer}
	genreHandler := &GenreHandler{Genres: deps.Genres, Renderer: deps.Renderer}
	editorHandler := &EditorHandler{Editors: deps.Editors, Renderer: deps.Renderer}

	r.Get("/", gameHandler.Home)

	r.Route("/games", func(r chi.Router) {
		r.Get("/", gameHandler.ListGames)
		r.Get("/create", gameHandler.CreateForm)
		r.Post("/create", gameHandler.CreateGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/details", gameHandler.GameDetails)
			r.Get("/edit", gameHandler.EditForm)
			r.Put("/edit", gameHandler.UpdateGame)
			r.Delete("/delete", gameHandler.DeleteGame)
		})
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", genreHandler.ListGenres)
		r.Get("/{id}/games", genreHandler.GenreGames)
	})

	r.Route("/editors", func(r chi.Router) {
		r.Get("/", editorHandler.ListEditors)
		r.Post("/", editorHandler.CreateEditor)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/games", editorHandler.EditorGames)
			r.Put("/update", editorHandler.RenameEditor)
			r.Delete("/delete", editorHandler.DeleteEditor)
		})
	})

	uploadsSubDir := deps.Uploads.SubDir(media.AssetTypeCover)
	r.Get(fmt.Sprintf("/%s/*", uploadsSubDir), AssetServer(deps.Uploads, media.AssetTypeCover))
	log.Printf("handlers: Registered cover server at /%s/*", uploadsSubDir)

	if deps.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(deps.Static))))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		deps.Renderer.renderError(w, http.StatusNotFound, "Page not found.")
	})

	// an unreadable body hides the override field, so the POST lands here
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		if err := formError(r); err != nil {
			deps.Renderer.writeServiceError(w, r, fmt.Errorf("%w: %w", services.ErrInvalidInput, err))
			return
		}
		deps.Renderer.renderError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})
}
