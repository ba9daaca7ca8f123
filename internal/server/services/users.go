// Package services holds the application services between the gRPC layer
// and the repositories: error mapping, transactions, paging policy.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"filmoteka/internal/common"
	"filmoteka/internal/dbx"
	"filmoteka/internal/server/models"
	"filmoteka/internal/server/repositories/repomanager"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// GetUser returns the user record with favorites. common.ErrNotFound
// passes through untouched so the handler can answer codes.NotFound.
func (s *UserService) GetUser(ctx context.Context, email string) (*models.User, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

// AddFavorite records the favorite inside one transaction, materializing
// the user row on first write. Re-adding is a no-op.
func (s *UserService) AddFavorite(ctx context.Context, email string, movieID string) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Users(tx).AddFavorite(ctx, email, movieID)
	})

	if err != nil {
		return fmt.Errorf("error adding favorite: %w", err)
	}

	return nil
}

// RemoveFavorite deletes the favorite. Removing an absent favorite is a
// no-op.
func (s *UserService) RemoveFavorite(ctx context.Context, email string, movieID string) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Users(tx).RemoveFavorite(ctx, email, movieID)
	})

	if err != nil {
		return fmt.Errorf("error removing favorite: %w", err)
	}

	return nil
}
