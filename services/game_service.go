package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/ludotheque/catalog/models"
	"github.com/ludotheque/catalog/repository"
)

// CoverStore persists uploaded cover art. SaveCover returns the public path
// stored on Game.Image, DeleteCover takes such a path.
type CoverStore interface {
	SaveCover(data io.Reader) (string, error)
	DeleteCover(publicPath string) error
}

// Upload is an uploaded cover file that already passed the content-type filter.
type Upload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// GameInput is the normalized payload of the create and edit forms.
// EditorID is required on create; on edit nil means "leave the editor as is".
type GameInput struct {
	Title       string
	Description string
	ReleaseDate time.Time
	GenreID     uint
	EditorID    *uint
	Highlighted bool
	Cover       *Upload
}

// GameService validates game relations and coordinates row and cover-file
// changes for the create, edit and delete workflows.
type GameService struct {
	games   repository.GameRepositoryInterface
	genres  repository.GenreRepositoryInterface
	editors repository.EditorRepositoryInterface
	covers  CoverStore
}

// NewGameService creates a new GameService
func NewGameService(
	games repository.GameRepositoryInterface,
	genres repository.GenreRepositoryInterface,
	editors repository.EditorRepositoryInterface,
	covers CoverStore,
) *GameService {
	return &GameService{
		games:   games,
		genres:  genres,
		editors: editors,
		covers:  covers,
	}
}

// List returns every game ordered by title.
func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	return s.games.ListAll(ctx)
}

// ListHighlighted returns highlighted games ordered by title.
func (s *GameService) ListHighlighted(ctx context.Context) ([]models.Game, error) {
	return s.games.ListHighlighted(ctx)
}

// Get returns a game with its genre and editor.
func (s *GameService) Get(ctx context.Context, id uint) (*models.Game, error) {
	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound(EntityGame)
		}
		return nil, err
	}
	return game, nil
}

// FormOptions returns the genres and editors offered by the game forms, by name.
func (s *GameService) FormOptions(ctx context.Context) ([]models.Genre, []models.Editor, error) {
	genres, err := s.genres.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	editors, err := s.editors.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return genres, editors, nil
}

// Create validates the genre and editor, stores the optional cover and
// inserts the game. Nothing is written when a relation does not resolve.
func (s *GameService) Create(ctx context.Context, in GameInput) (*models.Game, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.requireGenre(ctx, in.GenreID, EntityGenre); err != nil {
		return nil, err
	}
	if in.EditorID == nil {
		return nil, notFound(EntityEditor)
	}
	if err := s.requireEditor(ctx, *in.EditorID, EntityEditor); err != nil {
		return nil, err
	}

	imagePath, err := s.storeCover(in.Cover)
	if err != nil {
		return nil, err
	}

	editorID := *in.EditorID
	game := &models.Game{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ReleaseDate: in.ReleaseDate,
		Highlighted: in.Highlighted,
		Image:       imagePath,
		GenreID:     in.GenreID,
		EditorID:    &editorID,
	}
	if err := s.games.Create(ctx, game); err != nil {
		if imagePath != nil {
			s.removeCover(*imagePath)
		}
		return nil, err
	}

	log.Printf("services.games: Created game %d (%s)", game.ID, game.Title)
	return game, nil
}

// Update validates the relations of an existing game, stores a newly uploaded
// cover, writes the new values and then removes the replaced cover. A nil or zero EditorID keeps
// the current editor relation and skips editor validation.
func (s *GameService) Update(ctx context.Context, id uint, in GameInput) (*models.Game, error) {
	game, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.requireGenre(ctx, in.GenreID, EntityGenreOrEditor); err != nil {
		return nil, err
	}

	var editorID *uint
	if in.EditorID != nil && *in.EditorID != 0 {
		if err := s.requireEditor(ctx, *in.EditorID, EntityGenreOrEditor); err != nil {
			return nil, err
		}
		eid := *in.EditorID
		editorID = &eid
	}

	imagePath := game.Image
	var newImage *string
	if in.Cover != nil {
		newImage, err = s.storeCover(in.Cover)
		if err != nil {
			return nil, err
		}
		imagePath = newImage
	}

	err = s.games.Update(ctx, id, repository.GameUpdate{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ReleaseDate: in.ReleaseDate,
		Highlighted: in.Highlighted,
		Image:       imagePath,
		GenreID:     in.GenreID,
		EditorID:    editorID,
	})
	if err != nil {
		if newImage != nil {
			s.removeCover(*newImage)
		}
		if isRecordNotFound(err) {
			return nil, notFound(EntityGame)
		}
		return nil, err
	}

	// the replaced cover is removed once the row points at the new one
	if newImage != nil && game.Image != nil {
		s.removeCover(*game.Image)
	}

	log.Printf("services.games: Updated game %d", id)
	return s.Get(ctx, id)
}

// Delete removes a game and, best effort, its cover file. A failed file
// deletion is logged and the row is deleted anyway.
func (s *GameService) Delete(ctx context.Context, id uint) error {
	game, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if game.Image != nil {
		s.removeCover(*game.Image)
	}

	if err := s.games.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound(EntityGame)
		}
		return err
	}

	log.Printf("services.games: Deleted game %d", id)
	return nil
}

func validateInput(in GameInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.ReleaseDate.IsZero() {
		return fmt.Errorf("%w: release date is required", ErrInvalidInput)
	}
	return nil
}

func (s *GameService) requireGenre(ctx context.Context, id uint, reported Entity) error {
	if id == 0 {
		return notFound(reported)
	}
	if _, err := s.genres.GetByID(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound(reported)
		}
		return fmt.Errorf("failed to look up genre %d: %w", id, err)
	}
	return nil
}

func (s *GameService) requireEditor(ctx context.Context, id uint, reported Entity) error {
	if id == 0 {
		return notFound(reported)
	}
	if _, err := s.editors.GetByID(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFound(reported)
		}
		return fmt.Errorf("failed to look up editor %d: %w", id, err)
	}
	return nil
}

// storeCover saves an upload and returns its public path, or nil without an upload.
func (s *GameService) storeCover(upload *Upload) (*string, error) {
	if upload == nil {
		return nil, nil
	}
	path, err := s.covers.SaveCover(upload.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to store cover %s: %w", upload.Filename, err)
	}
	return &path, nil
}

// removeCover deletes a stored cover, logging instead of returning failures.
func (s *GameService) removeCover(publicPath string) {
	if err := s.covers.DeleteCover(publicPath); err != nil {
		log.Printf("services.games: Failed to delete cover %s: %v", publicPath, err)
	}
}
