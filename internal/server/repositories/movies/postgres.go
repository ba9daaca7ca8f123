package movies

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

func (r *PostgresRepository) ListPage(ctx context.Context, cursor string, limit int) ([]*models.Movie, string, error) {

	// one extra row tells us whether a next page exists
	query :=
		`SELECT id, title, plot, poster, runtime, released, created_at FROM movies
		 ORDER BY created_at, id
		 LIMIT $1
		 `
	args := []any{limit + 1}

	if cursor != "" {
		pos, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		query =
			`SELECT id, title, plot, poster, runtime, released, created_at FROM movies
			 WHERE (created_at, id) > ($1, $2)
			 ORDER BY created_at, id
			 LIMIT $3
			 `
		args = []any{pos.CreatedAt, pos.ID, limit + 1}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var page []*models.Movie
	for rows.Next() {
		m := &models.Movie{}
		var released sql.NullTime
		if err := rows.Scan(&m.ID, &m.Title, &m.Plot, &m.Poster, &m.Runtime, &released, &m.CreatedAt); err != nil {
			return nil, "", fmt.Errorf("db error: %w", err)
		}
		m.Released = released.Time
		page = append(page, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("db error: %w", err)
	}

	next := ""
	if len(page) > limit {
		page = page[:limit]
		next = encodeCursor(page[len(page)-1])
	}

	return page, next, nil
}

func (r *PostgresRepository) GetWithComments(ctx context.Context, id string) (*models.MovieWithComments, error) {

	query :=
		`SELECT id, title, plot, poster, runtime, released, created_at FROM movies
		 WHERE id = $1
		 `

	m := &models.MovieWithComments{}
	var released sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.Title, &m.Plot, &m.Poster, &m.Runtime, &released, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	m.Released = released.Time

	commentQuery :=
		`SELECT id, movie_id, name, text, date FROM comments
		 WHERE movie_id = $1
		 ORDER BY date, id
		 `

	rows, err := r.db.QueryContext(ctx, commentQuery, id)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.MovieID, &c.Name, &c.Text, &c.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.Comments = append(m.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}
