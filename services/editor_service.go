package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ludotheque/catalog/models"
	"github.com/ludotheque/catalog/repository"
)

// EditorService manages editors (publishers).
type EditorService struct {
	editors repository.EditorRepositoryInterface
}

// NewEditorService creates a new EditorService
func NewEditorService(editors repository.EditorRepositoryInterface) *EditorService {
	return &EditorService{editors: editors}
}

// List returns every editor by name with its game count.
func (s *EditorService) List(ctx context.Context) ([]models.EditorSummary, error) {
	return s.editors.ListSummaries(ctx)
}

// Count returns the number of editors.
func (s *EditorService) Count(ctx context.Context) (int64, error) {
	return s.editors.Count(ctx)
}

// Games returns an editor with its games in natural title order.
func (s *EditorService) Games(ctx context.Context, id uint) (*models.Editor, error) {
	if id == 0 {
		return nil, notFound(EntityEditor)
	}
	editor, err := s.editors.GetWithGames(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound(EntityEditor)
		}
		return nil, err
	}
	sortGamesByTitle(editor.Games)
	return editor, nil
}

// Create adds an editor. The name is trimmed and must not be blank.
func (s *EditorService) Create(ctx context.Context, name string) (*models.Editor, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	editor := &models.Editor{Name: name}
	if err := s.editors.Create(ctx, editor); err != nil {
		return nil, err
	}
	log.Printf("services.editors: Created editor %d (%s)", editor.ID, editor.Name)
	return editor, nil
}

// Rename changes an editor's name.
func (s *EditorService) Rename(ctx context.Context, id uint, name string) error {
	if id == 0 {
		return notFound(EntityEditor)
	}
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	if err := s.editors.Rename(ctx, id, name); err != nil {
		if isRecordNotFound(err) {
			return notFound(EntityEditor)
		}
		return err
	}
	return nil
}

// Delete removes an editor. Its games remain, without an editor.
func (s *EditorService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return notFound(EntityEditor)
	}
	if err := s.editors.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound(EntityEditor)
		}
		return err
	}
	log.Printf("services.editors: Deleted editor %d", id)
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return name, nil
}
