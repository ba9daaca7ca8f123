package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"filmoteka/internal/common"
	"filmoteka/internal/server/config"
	"filmoteka/internal/server/models"
	"filmoteka/internal/server/repositories/movies"
	"filmoteka/internal/server/repositories/repomanager"
)

type MovieService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	pageSize    int
}

func NewMovieService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *MovieService {
	return &MovieService{db: db, repomanager: m, pageSize: cfg.PageSize}
}

// List returns one collection page and the cursor for the next one, or an
// empty cursor when the collection is exhausted. movies.ErrInvalidCursor
// passes through untouched so the handler can answer InvalidArgument.
func (s *MovieService) List(ctx context.Context, cursor string) ([]*models.Movie, string, error) {

	repo := s.repomanager.Movies(s.db)

	page, next, err := repo.ListPage(ctx, cursor, s.pageSize)
	if err != nil {
		if errors.Is(err, movies.ErrInvalidCursor) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error listing movies: %w", err)
	}

	return page, next, nil
}

// GetWithComments returns the detail view for one movie.
func (s *MovieService) GetWithComments(ctx context.Context, id string) (*models.MovieWithComments, error) {

	repo := s.repomanager.Movies(s.db)

	movie, err := repo.GetWithComments(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error loading movie: %w", err)
	}

	return movie, nil
}
