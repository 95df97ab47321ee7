package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ludotheque/catalog/models"
	"gorm.io/gorm"
)

// GenreRepository handles database operations for Genre entities
type GenreRepository struct {
	DB *gorm.DB
}

// NewGenreRepository creates a new instance of GenreRepository
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{DB: db}
}

// Create creates a new genre record in the database
func (r *GenreRepository) Create(ctx context.Context, genre *models.Genre) error {
	err := r.DB.WithContext(ctx).Create(genre).Error
	if err != nil {
		return fmt.Errorf("failed to create genre %s: %w", genre.Name, err)
	}
	return nil
}

// GetByID retrieves a genre by its ID
func (r *GenreRepository) GetByID(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	err := r.DB.WithContext(ctx).First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get genre by ID %d: %w", id, err)
	}
	return &genre, nil
}

// GetWithGames retrieves a genre together with its games
func (r *GenreRepository) GetWithGames(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	err := r.DB.WithContext(ctx).Preload("Games").First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get genre %d with games: %w", id, err)
	}
	return &genre, nil
}

// ListAll retrieves all genres ordered by name
func (r *GenreRepository) ListAll(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&genres).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

// ListSummaries retrieves all genres ordered by name with their game counts
func (r *GenreRepository) ListSummaries(ctx context.Context) ([]models.GenreSummary, error) {
	sqlStr, args, err := summaryQuery("genres", "genre_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for genre summaries: %w", err)
	}

	var summaries []models.GenreSummary
	if err := r.DB.WithContext(ctx).Raw(sqlStr, args...).Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list genre summaries: %w", err)
	}
	return summaries, nil
}

// Count returns the number of genres
func (r *GenreRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Genre{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}
