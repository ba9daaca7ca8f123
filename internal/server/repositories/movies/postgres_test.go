package movies

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"filmoteka/internal/common"
	"filmoteka/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var (
	qListFirst = `(?s)^SELECT\s+id,\s*title,\s*plot,\s*poster,\s*runtime,\s*released,\s*created_at\s+FROM\s+movies\s+ORDER\s+BY\s+created_at,\s*id\s+LIMIT\s+\$1\s*$`
	qListAfter = `(?s)^SELECT\s+id,\s*title,\s*plot,\s*poster,\s*runtime,\s*released,\s*created_at\s+FROM\s+movies\s+WHERE\s+\(created_at,\s*id\)\s*>\s*\(\$1,\s*\$2\)\s+ORDER\s+BY\s+created_at,\s*id\s+LIMIT\s+\$3\s*$`
	qGetMovie  = `(?s)^SELECT\s+id,\s*title,\s*plot,\s*poster,\s*runtime,\s*released,\s*created_at\s+FROM\s+movies\s+WHERE\s+id\s*=\s*\$1\s*$`
	qComments  = `(?s)^SELECT\s+id,\s*movie_id,\s*name,\s*text,\s*date\s+FROM\s+comments\s+WHERE\s+movie_id\s*=\s*\$1\s+ORDER\s+BY\s+date,\s*id\s*$`

	movieCols = []string{"id", "title", "plot", "poster", "runtime", "released", "created_at"}
)

func movieRow(rows *sqlmock.Rows, id string, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(id, "Title "+id, "", "", int32(90), time.Time{}, createdAt)
}

func TestListPage_FirstPageWithMore(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(movieCols)
	for _, id := range []string{"m-1", "m-2", "m-3"} {
		rows = movieRow(rows, id, base)
		base = base.Add(time.Second)
	}

	// limit 2 requested, 3 rows returned: a next page exists
	mock.ExpectQuery(qListFirst).WithArgs(3).WillReturnRows(rows)

	page, next, err := repo.ListPage(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("ListPage error: %v", err)
	}
	if len(page) != 2 || page[0].ID != "m-1" || page[1].ID != "m-2" {
		t.Fatalf("unexpected page: %+v", page)
	}
	if next == "" {
		t.Fatal("expected a next cursor")
	}

	pos, err := decodeCursor(next)
	if err != nil {
		t.Fatalf("minted cursor does not parse: %v", err)
	}
	if pos.ID != "m-2" {
		t.Fatalf("cursor pins %q, want last returned row m-2", pos.ID)
	}
}

func TestListPage_LastPage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := movieRow(sqlmock.NewRows(movieCols), "m-9", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(qListFirst).WithArgs(3).WillReturnRows(rows)

	page, next, err := repo.ListPage(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("ListPage error: %v", err)
	}
	if len(page) != 1 || page[0].ID != "m-9" {
		t.Fatalf("unexpected page: %+v", page)
	}
	if next != "" {
		t.Fatalf("expected empty cursor on last page, got %q", next)
	}
}

func TestListPage_AfterCursor(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	createdAt := time.Date(2024, 1, 1, 0, 0, 5, 0, time.UTC)

	pageRows := movieRow(sqlmock.NewRows(movieCols), "m-6", createdAt.Add(time.Second))

	mock.ExpectQuery(qListAfter).
		WithArgs(createdAt, "m-5", 3).
		WillReturnRows(pageRows)

	cursor := encodeCursor(&models.Movie{ID: "m-5", CreatedAt: createdAt})
	page, next, err := repo.ListPage(context.Background(), cursor, 2)
	if err != nil {
		t.Fatalf("ListPage error: %v", err)
	}
	if len(page) != 1 || page[0].ID != "m-6" {
		t.Fatalf("unexpected page: %+v", page)
	}
	if next != "" {
		t.Fatalf("expected empty cursor, got %q", next)
	}
}

func TestListPage_InvalidCursor(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	_, _, err := repo.ListPage(context.Background(), "!!!", 2)
	if !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("want ErrInvalidCursor, got %v", err)
	}
}

func TestListPage_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qListFirst).WithArgs(3).WillReturnError(errors.New("db down"))

	_, _, err := repo.ListPage(context.Background(), "", 2)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetWithComments_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(qGetMovie).
		WithArgs("m-1").
		WillReturnRows(movieRow(sqlmock.NewRows(movieCols), "m-1", createdAt))
	mock.ExpectQuery(qComments).
		WithArgs("m-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "movie_id", "name", "text", "date"}).
			AddRow("c-1", "m-1", "Reviewer", "A classic.", createdAt.Add(time.Hour)).
			AddRow("c-2", "m-1", "Viewer", "Agreed.", createdAt.Add(2*time.Hour)))

	got, err := repo.GetWithComments(context.Background(), "m-1")
	if err != nil {
		t.Fatalf("GetWithComments error: %v", err)
	}
	if got.ID != "m-1" {
		t.Fatalf("unexpected movie: %+v", got.Movie)
	}
	if len(got.Comments) != 2 || got.Comments[0].ID != "c-1" || got.Comments[1].ID != "c-2" {
		t.Fatalf("unexpected comments: %+v", got.Comments)
	}
}

func TestGetWithComments_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qGetMovie).
		WithArgs("m-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetWithComments(context.Background(), "m-404")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestGetWithComments_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qGetMovie).
		WithArgs("m-1").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetWithComments(context.Background(), "m-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
