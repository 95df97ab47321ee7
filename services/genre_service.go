package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ludotheque/catalog/models"
	"github.com/ludotheque/catalog/repository"
)

// GenreService lists genres and seeds the default ones.
type GenreService struct {
	genres repository.GenreRepositoryInterface
}

// NewGenreService creates a new GenreService
func NewGenreService(genres repository.GenreRepositoryInterface) *GenreService {
	return &GenreService{genres: genres}
}

// List returns every genre by name with its game count.
func (s *GenreService) List(ctx context.Context) ([]models.GenreSummary, error) {
	return s.genres.ListSummaries(ctx)
}

// Games returns a genre with its games in natural title order.
func (s *GenreService) Games(ctx context.Context, id uint) (*models.Genre, error) {
	if id == 0 {
		return nil, notFound(EntityGenre)
	}
	genre, err := s.genres.GetWithGames(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound(EntityGenre)
		}
		return nil, err
	}
	sortGamesByTitle(genre.Games)
	return genre, nil
}

// SeedDefaults creates the given genres when the genre table is empty. The
// inserts are independent and run concurrently; the first failure is returned.
// It reports whether anything was created.
func (s *GenreService) SeedDefaults(ctx context.Context, names []string) (bool, error) {
	count, err := s.genres.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		log.Println("services.genres: Genres already exist. Skipping initialization.")
		return false, nil
	}

	log.Println("services.genres: Initializing default genres...")
	g, gctx := errgroup.WithContext(ctx)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		name := name
		g.Go(func() error {
			if err := s.genres.Create(gctx, &models.Genre{Name: name}); err != nil {
				return fmt.Errorf("failed to seed genre %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	log.Printf("services.genres: Default genres initialized (%d).", len(seen))
	return len(seen) > 0, nil
}
