package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"filmoteka/internal/common"
	"filmoteka/internal/dbx"
	"filmoteka/internal/server/models"
	moviesrepo "filmoteka/internal/server/repositories/movies"
	usersrepo "filmoteka/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	getOut *models.User
	getErr error

	addErr    error
	addCalls  int
	removeErr error
	remCalls  int
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) AddFavorite(ctx context.Context, email string, movieID string) error {
	f.addCalls++
	return f.addErr
}

func (f *fakeUsersRepo) RemoveFavorite(ctx context.Context, email string, movieID string) error {
	f.remCalls++
	return f.removeErr
}

type fakeMoviesRepo struct {
	pageOut []*models.Movie
	nextOut string
	pageErr error

	getOut *models.MovieWithComments
	getErr error
}

func (f *fakeMoviesRepo) ListPage(ctx context.Context, cursor string, limit int) ([]*models.Movie, string, error) {
	if f.pageErr != nil {
		return nil, "", f.pageErr
	}
	return f.pageOut, f.nextOut, nil
}

func (f *fakeMoviesRepo) GetWithComments(ctx context.Context, id string) (*models.MovieWithComments, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRepoManager struct {
	users  *fakeUsersRepo
	movies *fakeMoviesRepo
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return f.users }

func (f *fakeRepoManager) Movies(db dbx.DBTX) moviesrepo.Repository { return f.movies }

// --- UserService ---

func TestGetUser_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{users: &fakeUsersRepo{
		getOut: &models.User{Email: "alice@example.com", FavoriteMovieIDs: []string{"m-1"}},
	}}
	s := NewUserService(db, rm)

	got, err := s.GetUser(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if got.Email != "alice@example.com" || len(got.FavoriteMovieIDs) != 1 {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetUser_NotFoundPassesThrough(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{users: &fakeUsersRepo{getErr: common.ErrNotFound}}
	s := NewUserService(db, rm)

	_, err := s.GetUser(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestGetUser_RepoErrorWrapped(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{users: &fakeUsersRepo{getErr: errors.New("db down")}}
	s := NewUserService(db, rm)

	_, err := s.GetUser(context.Background(), "alice@example.com")
	if err == nil || !regexp.MustCompile(`error loading user: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestAddFavorite_CommitsTx(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{users: &fakeUsersRepo{}}
	s := NewUserService(db, rm)

	if err := s.AddFavorite(context.Background(), "alice@example.com", "m-1"); err != nil {
		t.Fatalf("AddFavorite error: %v", err)
	}
	if rm.users.addCalls != 1 {
		t.Fatalf("expected one repo call, got %d", rm.users.addCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddFavorite_RepoErrorRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{users: &fakeUsersRepo{addErr: errors.New("db down")}}
	s := NewUserService(db, rm)

	err := s.AddFavorite(context.Background(), "alice@example.com", "m-1")
	if err == nil || !regexp.MustCompile(`error adding favorite: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRemoveFavorite_CommitsTx(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{users: &fakeUsersRepo{}}
	s := NewUserService(db, rm)

	if err := s.RemoveFavorite(context.Background(), "alice@example.com", "m-1"); err != nil {
		t.Fatalf("RemoveFavorite error: %v", err)
	}
	if rm.users.remCalls != 1 {
		t.Fatalf("expected one repo call, got %d", rm.users.remCalls)
	}
}

func TestRemoveFavorite_RepoErrorRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{users: &fakeUsersRepo{removeErr: errors.New("db down")}}
	s := NewUserService(db, rm)

	err := s.RemoveFavorite(context.Background(), "alice@example.com", "m-1")
	if err == nil || !regexp.MustCompile(`error removing favorite: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
