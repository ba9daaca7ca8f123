// Package users persists catalog accounts and their favorite sets.
package users

import (
	"context"

	"filmoteka/internal/server/models"
)

type Repository interface {
	// GetByEmail returns the user row including the favorite movie ids,
	// or common.ErrNotFound when the row was never materialized.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// AddFavorite materializes the user row if needed and records the
	// favorite. Adding an already-present favorite is a no-op.
	AddFavorite(ctx context.Context, email string, movieID string) error
	// RemoveFavorite deletes the favorite if present. Removing an absent
	// favorite is a no-op.
	RemoveFavorite(ctx context.Context, email string, movieID string) error
}
