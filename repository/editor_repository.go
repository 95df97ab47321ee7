package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ludotheque/catalog/models"
	"gorm.io/gorm"
)

// EditorRepository handles database operations for Editor entities
type EditorRepository struct {
	DB *gorm.DB
}

// NewEditorRepository creates a new instance of EditorRepository
func NewEditorRepository(db *gorm.DB) *EditorRepository {
	return &EditorRepository{DB: db}
}

// Create creates a new editor record in the database
func (r *EditorRepository) Create(ctx context.Context, editor *models.Editor) error {
	now := time.Now().Unix()
	if editor.CreatedAt == 0 {
		editor.CreatedAt = now
	}
	if editor.UpdatedAt == 0 {
		editor.UpdatedAt = now
	}

	err := r.DB.WithContext(ctx).Create(editor).Error
	if err != nil {
		return fmt.Errorf("failed to create editor %s: %w", editor.Name, err)
	}
	return nil
}

// GetByID retrieves an editor by its ID
func (r *EditorRepository) GetByID(ctx context.Context, id uint) (*models.Editor, error) {
	var editor models.Editor
	err := r.DB.WithContext(ctx).First(&editor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get editor by ID %d: %w", id, err)
	}
	return &editor, nil
}

// GetWithGames retrieves an editor together with its games
func (r *EditorRepository) GetWithGames(ctx context.Context, id uint) (*models.Editor, error) {
	var editor models.Editor
	err := r.DB.WithContext(ctx).Preload("Games").First(&editor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get editor %d with games: %w", id, err)
	}
	return &editor, nil
}

// ListAll retrieves all editors ordered by name
func (r *EditorRepository) ListAll(ctx context.Context) ([]models.Editor, error) {
	var editors []models.Editor
	err := r.DB.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&editors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list editors: %w", err)
	}
	return editors, nil
}

// ListSummaries retrieves all editors ordered by name with their game counts
func (r *EditorRepository) ListSummaries(ctx context.Context) ([]models.EditorSummary, error) {
	sqlStr, args, err := summaryQuery("editors", "editor_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for editor summaries: %w", err)
	}

	var summaries []models.EditorSummary
	if err := r.DB.WithContext(ctx).Raw(sqlStr, args...).Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list editor summaries: %w", err)
	}
	return summaries, nil
}

// Count returns the number of editors
func (r *EditorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Editor{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count editors: %w", err)
	}
	return count, nil
}

// Rename updates an editor's name
func (r *EditorRepository) Rename(ctx context.Context, id uint, name string) error {
	result := r.DB.WithContext(ctx).Model(&models.Editor{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       name,
		"updated_at": time.Now().Unix(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update editor ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an editor by its ID. Its games stay in the catalog with no editor.
func (r *EditorRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Game{}).Where("editor_id = ?", id).Update("editor_id", nil).Error
		if err != nil {
			return fmt.Errorf("failed to detach games from editor ID %d: %w", id, err)
		}

		result := tx.Delete(&models.Editor{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete editor ID %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
