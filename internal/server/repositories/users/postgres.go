package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"filmoteka/internal/common"
	"filmoteka/internal/dbx"
	"filmoteka/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {

	query :=
		`SELECT email, name FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.Email, &user.Name)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	favQuery :=
		`SELECT movie_id FROM favorites
		 WHERE user_email = $1
		 ORDER BY added_at, movie_id
		 `

	rows, err := r.db.QueryContext(ctx, favQuery, email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var movieID string
		if err := rows.Scan(&movieID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		user.FavoriteMovieIDs = append(user.FavoriteMovieIDs, movieID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) AddFavorite(ctx context.Context, email string, movieID string) error {

	userQuery :=
		`INSERT INTO users (email)
		 VALUES ($1)
		 ON CONFLICT (email) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, userQuery, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	favQuery :=
		`INSERT INTO favorites (user_email, movie_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_email, movie_id) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, favQuery, email, movieID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RemoveFavorite(ctx context.Context, email string, movieID string) error {

	query :=
		`DELETE FROM favorites
		 WHERE user_email = $1 AND movie_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, email, movieID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
