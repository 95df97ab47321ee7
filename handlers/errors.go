package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ludotheque/catalog/media"
	"github.com/ludotheque/catalog/services"
)

const (
	errorTitle          = "Error"
	msgInternalError    = "An error occurred."
	msgUnsupportedImage = "Only JPEG and PNG images are accepted."
	msgNoEditors        = "You must add editors before you can add games."
	msgUploadTooLarge   = "The uploaded file is too large."
)

// errorPage is the data of the errors/error view.
type errorPage struct {
	Title string
	Error string
}

// renderError renders the error view with the given status and message.
func (rd *Renderer) renderError(w http.ResponseWriter, status int, message string) {
	rd.Render(w, status, pageError, errorPage{Title: errorTitle, Error: message})
}

// writeServiceError maps a workflow error onto a status code and the error view.
// Not-found errors carry their own message; unknown errors are logged and hidden.
func (rd *Renderer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *services.NotFoundError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &nf):
		rd.renderError(w, http.StatusNotFound, nf.Error())
	case errors.Is(err, services.ErrNotFound):
		rd.renderError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, media.ErrUnsupportedImage):
		rd.renderError(w, http.StatusBadRequest, msgUnsupportedImage)
	case errors.As(err, &tooLarge):
		rd.renderError(w, http.StatusRequestEntityTooLarge, msgUploadTooLarge)
	case errors.Is(err, services.ErrInvalidInput):
		rd.renderError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("handlers: %s %s failed: %v", r.Method, r.URL.Path, err)
		rd.renderError(w, http.StatusInternalServerError, msgInternalError)
	}
}
