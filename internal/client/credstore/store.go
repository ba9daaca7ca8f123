// Package credstore persists the identity credential across process
// restarts: the bearer token and the email derived from it. It is pure
// storage; nothing here touches the network, and no expiry is enforced —
// a stale token is only discovered when the server rejects it.
package credstore

import (
	"context"
	"database/sql"
	"fmt"

	"filmoteka/internal/client/credstore/migrations"
	"filmoteka/internal/dbx"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	keyToken = "token"
	keyEmail = "user_email"
)

// Credentials is the stored pair. Token and Email are written together,
// read together and cleared together.
type Credentials struct {
	Token string
	Email string
}

// Store is a SQLite-backed credential store.
type Store struct {
	db *sql.DB
}

// New wraps an already-open database that has the credentials schema.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (creating if needed) the credential database at dsn and
// applies pending migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate credential db: %w", err)
	}

	return New(db), nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Save persists both values in one transaction, so a crash can never leave
// a token without its email or vice versa.
func (s *Store) Save(ctx context.Context, token, email string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, token); err != nil {
			return err
		}
		return set(ctx, tx, keyEmail, email)
	})
}

// Load returns the stored pair, or (nil, nil) when no complete credential
// is present.
func (s *Store) Load(ctx context.Context) (*Credentials, error) {
	token, ok, err := get(ctx, s.db, keyToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	email, ok, err := get(ctx, s.db, keyEmail)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &Credentials{Token: token, Email: email}, nil
}

// Token returns the stored bearer token, or "" when absent. Used by the
// transport to decide whether to attach the authorization header.
func (s *Store) Token(ctx context.Context) (string, error) {
	token, _, err := get(ctx, s.db, keyToken)
	return token, err
}

// Clear removes both values. Clearing an already-empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set credentials[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get credentials[%s]: %w", key, err)
	}
	return value, true, nil
}
