package handlers

import (
	"fmt"
	"net/http"

	"github.com/ludotheque/catalog/models"
	"github.com/ludotheque/catalog/services"
)

type EditorHandler struct {
	Editors  *services.EditorService
	Renderer *Renderer
}

type editorsPage struct {
	Title   string
	Editors []models.EditorSummary
}

type editorGamesPage struct {
	Title  string
	Editor *models.Editor
}

func (eh *EditorHandler) ListEditors(w http.ResponseWriter, r *http.Request) {
	editors, err := eh.Editors.List(r.Context())
	if err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	eh.Renderer.Render(w, http.StatusOK, pageEditors, editorsPage{Title: "Editors", Editors: editors})
}

func (eh *EditorHandler) CreateEditor(w http.ResponseWriter, r *http.Request) {
	name, err := formName(r)
	if err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	if _, err := eh.Editors.Create(r.Context(), name); err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/editors", http.StatusFound)
}

func (eh *EditorHandler) EditorGames(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, services.EntityEditor)
	if err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	editor, err := eh.Editors.Games(r.Context(), id)
	if err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	eh.Renderer.Render(w, http.StatusOK, pageEditorGames, editorGamesPage{Title: editor.Name, Editor: editor})
}

func (eh *EditorHandler) RenameEditor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, services.EntityEditor)
	if err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	name, err := formName(r)
	if err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	if err := eh.Editors.Rename(r.Context(), id, name); err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/editors", http.StatusFound)
}

func (eh *EditorHandler) DeleteEditor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, services.EntityEditor)
	if err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	if err := eh.Editors.Delete(r.Context(), id); err != nil {
		eh.Renderer.writeServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/editors", http.StatusFound)
}

func formName(r *http.Request) (string, error) {
	if err := parseForm(r); err != nil {
		return "", fmt.Errorf("%w: %w", services.ErrInvalidInput, err)
	}
	return r.FormValue("name"), nil
}
