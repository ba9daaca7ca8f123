package repomanager

import (
	"context"
	"database/sql"

	"filmoteka/internal/dbx"
	"filmoteka/internal/server/repositories/movies"
	"filmoteka/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Movies(db dbx.DBTX) movies.Repository
}
