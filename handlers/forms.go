package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ludotheque/catalog/media"
	"github.com/ludotheque/catalog/models"
	"github.com/ludotheque/catalog/services"
)

const (
	multipartMemory = 10 << 20 // 10MB kept in memory, the rest spills to temp files
	coverField      = "image"
)

// parseForm parses urlencoded and multipart bodies alike. MethodOverride and
// the handlers share it, so a body is parsed once with the same memory limit.
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(multipartMemory)
	}
	return r.ParseForm()
}

// pathID reads the {id} route parameter. Anything that is not a positive
// integer is reported as a missing entity.
func pathID(r *http.Request, entity services.Entity) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, &services.NotFoundError{Entity: entity}
	}
	return uint(id), nil
}

// formID parses a numeric select value; unparseable values become 0, which
// never resolves to a row.
func formID(value string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// optionalFormID is formID for fields that may be left empty; empty means nil.
func optionalFormID(value string) *uint {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	id := formID(value)
	return &id
}

// parseReleaseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func parseReleaseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(models.DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid release date '%s'", services.ErrInvalidInput, value)
}

// formCover returns the uploaded cover, or nil when no file was sent. Files
// whose declared content type is not an accepted image type are rejected
// before anything is stored. The caller closes the returned file.
func formCover(r *http.Request) (*services.Upload, multipart.File, error) {
	file, header, err := r.FormFile(coverField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if !media.IsAllowedCoverType(contentType) {
		file.Close()
		return nil, nil, fmt.Errorf("%w: content type '%s'", media.ErrUnsupportedImage, contentType)
	}

	return &services.Upload{Filename: header.Filename, ContentType: contentType, Data: file}, file, nil
}

// gameInput reads the create/edit form fields into a GameInput.
func gameInput(r *http.Request) (services.GameInput, error) {
	releaseDate, err := parseReleaseDate(r.FormValue("releaseDate"))
	if err != nil {
		return services.GameInput{}, err
	}
	return services.GameInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		ReleaseDate: releaseDate,
		GenreID:     formID(r.FormValue("genre")),
		EditorID:    optionalFormID(r.FormValue("editor")),
		Highlighted: r.FormValue("highlighted") == "on",
	}, nil
}
