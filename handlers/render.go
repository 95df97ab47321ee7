package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/ludotheque/catalog/models"
)

// Page names, relative to templates/ without the .html suffix.
const (
	pageHome          = "home"
	pageGames         = "games/index"
	pageGameForm      = "games/form"
	pageGameDetails   = "games/details"
	pageGenres        = "genres/index"
	pageGenreGames    = "genres/games"
	pageEditors       = "editors/index"
	pageEditorGames   = "editors/games"
	pageError         = "errors/error"
	layoutTemplate    = "templates/layout.html"
	layoutDefinedName = "layout"
)

var allPages = []string{
	pageHome, pageGames, pageGameForm, pageGameDetails,
	pageGenres, pageGenreGames, pageEditors, pageEditorGames, pageError,
}

var templateFuncs = template.FuncMap{
	"isGenre": func(g *models.Game, id uint) bool {
		return g != nil && g.GenreID == id
	},
	"isEditor": func(g *models.Game, id uint) bool {
		return g != nil && g.EditorID != nil && *g.EditorID == id
	},
}

// Renderer executes the page templates, each parsed together with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout and every page from fsys.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(allPages))
	for _, name := range allPages {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(fsys, layoutTemplate, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page with the given status. The page is rendered
// into a buffer first so a template failure still produces a clean 500.
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) {
	tmpl, ok := rd.pages[name]
	if !ok {
		log.Printf("handlers: Unknown template %s", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutDefinedName, data); err != nil {
		log.Printf("handlers: Error rendering template %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("handlers: Error writing response for %s: %v", name, err)
	}
}
