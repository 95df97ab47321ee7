package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ludotheque/catalog/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository handles database operations for Game entities
type GameRepository struct {
	DB *gorm.DB
}

// NewGameRepository creates a new instance of GameRepository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{DB: db}
}

// Create inserts a game row. Genre and Editor are linked by their IDs only;
// associated structs are never written.
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	now := time.Now().Unix()
	if game.CreatedAt == 0 {
		game.CreatedAt = now
	}
	if game.UpdatedAt == 0 {
		game.UpdatedAt = now
	}

	err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(game).Error
	if err != nil {
		return fmt.Errorf("failed to create game %s: %w", game.Title, err)
	}
	return nil
}

// GetByID retrieves a game by its ID, preloading Genre and Editor
func (r *GameRepository) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	err := r.DB.WithContext(ctx).Preload("Genre").Preload("Editor").First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get game by ID %d: %w", id, err)
	}
	return &game, nil
}

// ListAll retrieves all games ordered by title
func (r *GameRepository) ListAll(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := r.DB.WithContext(ctx).Order("title ASC").Order("id ASC").Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// ListHighlighted retrieves highlighted games ordered by title, preloading Genre
func (r *GameRepository) ListHighlighted(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := r.DB.WithContext(ctx).Preload("Genre").
		Where("highlighted = ?", true).
		Order("title ASC").Order("id ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list highlighted games: %w", err)
	}
	return games, nil
}

// Update writes the editable columns of a game. editor_id is only written
// when update.EditorID is set.
func (r *GameRepository) Update(ctx context.Context, id uint, update GameUpdate) error {
	changes := map[string]interface{}{
		"title":        update.Title,
		"description":  update.Description,
		"release_date": update.ReleaseDate,
		"highlighted":  update.Highlighted,
		"image":        update.Image,
		"genre_id":     update.GenreID,
		"updated_at":   time.Now().Unix(),
	}
	if update.EditorID != nil {
		changes["editor_id"] = *update.EditorID
	}

	result := r.DB.WithContext(ctx).Model(&models.Game{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return fmt.Errorf("failed to update game ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a game by its ID
func (r *GameRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Game{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete game ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
