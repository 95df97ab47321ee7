package repository

import (
	"context"
	"time"

	"github.com/ludotheque/catalog/models"
)

// GameUpdate carries the columns written by GameRepositoryInterface.Update.
// A nil EditorID leaves the stored editor relation untouched.
type GameUpdate struct {
	Title       string
	Description string
	ReleaseDate time.Time
	Highlighted bool
	Image       *string
	GenreID     uint
	EditorID    *uint
}

// GameRepositoryInterface defines the methods for game data operations
type GameRepositoryInterface interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	ListAll(ctx context.Context) ([]models.Game, error)
	ListHighlighted(ctx context.Context) ([]models.Game, error)
	Update(ctx context.Context, id uint, update GameUpdate) error
	Delete(ctx context.Context, id uint) error
}

// GenreRepositoryInterface defines the methods for genre data operations
type GenreRepositoryInterface interface {
	Create(ctx context.Context, genre *models.Genre) error
	GetByID(ctx context.Context, id uint) (*models.Genre, error)
	GetWithGames(ctx context.Context, id uint) (*models.Genre, error)
	ListAll(ctx context.Context) ([]models.Genre, error)
	ListSummaries(ctx context.Context) ([]models.GenreSummary, error)
	Count(ctx context.Context) (int64, error)
}

// EditorRepositoryInterface defines the methods for editor data operations
type EditorRepositoryInterface interface {
	Create(ctx context.Context, editor *models.Editor) error
	GetByID(ctx context.Context, id uint) (*models.Editor, error)
	GetWithGames(ctx context.Context, id uint) (*models.Editor, error)
	ListAll(ctx context.Context) ([]models.Editor, error)
	ListSummaries(ctx context.Context) ([]models.EditorSummary, error)
	Count(ctx context.Context) (int64, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}
