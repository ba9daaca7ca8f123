package browse

import (
	"context"
	"errors"
	"testing"

	"filmoteka/internal/client/models"

	"github.com/stretchr/testify/require"
)

type pagedClient struct {
	pages   map[string]page // keyed by requested cursor
	calls   []string
	failAll bool
}

type page struct {
	movies []models.Movie
	next   string
}

func (c *pagedClient) Close() error { return nil }

func (c *pagedClient) ListMovies(ctx context.Context, cursor string) ([]models.Movie, string, error) {
	c.calls = append(c.calls, cursor)
	if c.failAll {
		return nil, "", errors.New("listing failed")
	}
	p, ok := c.pages[cursor]
	if !ok {
		return nil, "", errors.New("unexpected cursor " + cursor)
	}
	return p.movies, p.next, nil
}

func (c *pagedClient) GetUser(ctx context.Context, email string) (*models.User, error) {
	return nil, errors.New("unexpected GetUser")
}

func (c *pagedClient) AddFavorite(ctx context.Context, email, movieID string) error {
	return errors.New("unexpected AddFavorite")
}

func (c *pagedClient) RemoveFavorite(ctx context.Context, email, movieID string) error {
	return errors.New("unexpected RemoveFavorite")
}

func (c *pagedClient) GetMovieWithComments(ctx context.Context, id string) (*models.MovieWithComments, error) {
	return nil, errors.New("unexpected GetMovieWithComments")
}

func movieIDs(movies []models.Movie) []string {
	ids := make([]string, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}
	return ids
}

func threePages() *pagedClient {
	return &pagedClient{pages: map[string]page{
		"":   {movies: []models.Movie{{ID: "a"}, {ID: "b"}}, next: "c1"},
		"c1": {movies: []models.Movie{{ID: "c"}}, next: "c2"},
		"c2": {movies: []models.Movie{{ID: "d"}}, next: ""},
	}}
}

func TestPager_AccumulatesPagesInOrder(t *testing.T) {
	client := threePages()
	p := NewPager(client)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))
	require.True(t, p.HasMore())

	require.NoError(t, p.LoadMore(ctx))
	require.NoError(t, p.LoadMore(ctx))

	require.Equal(t, []string{"a", "b", "c", "d"}, movieIDs(p.Movies()))
	require.False(t, p.HasMore(), "load more must be unavailable after the last page")
	require.Equal(t, []string{"", "c1", "c2"}, client.calls)
}

func TestPager_LoadMoreAfterExhaustionIsRejected(t *testing.T) {
	client := threePages()
	p := NewPager(client)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))
	require.NoError(t, p.LoadMore(ctx))
	require.NoError(t, p.LoadMore(ctx))

	calls := len(client.calls)
	require.ErrorIs(t, p.LoadMore(ctx), ErrNoMorePages)
	require.Len(t, client.calls, calls, "no request may be issued with an empty cursor")
}

func TestPager_LoadMoreBeforeFirstPageIsRejected(t *testing.T) {
	client := threePages()
	p := NewPager(client)

	require.ErrorIs(t, p.LoadMore(context.Background()), ErrNoMorePages)
	require.Empty(t, client.calls)
}

func TestPager_LoadFirstReplacesAccumulator(t *testing.T) {
	client := threePages()
	p := NewPager(client)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))
	require.NoError(t, p.LoadMore(ctx))
	require.NoError(t, p.LoadFirst(ctx))

	require.Equal(t, []string{"a", "b"}, movieIDs(p.Movies()))
	require.True(t, p.HasMore())
}

func TestPager_FailedLoadMutatesNothing(t *testing.T) {
	client := threePages()
	p := NewPager(client)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))
	before := movieIDs(p.Movies())

	client.failAll = true
	require.Error(t, p.LoadMore(ctx))
	require.Equal(t, before, movieIDs(p.Movies()))
	require.True(t, p.HasMore(), "cursor must stay retryable after a failure")

	// retry with the same cursor succeeds
	client.failAll = false
	require.NoError(t, p.LoadMore(ctx))
	require.Equal(t, []string{"a", "b", "c"}, movieIDs(p.Movies()))
}

func TestPager_SinglePageCollection(t *testing.T) {
	client := &pagedClient{pages: map[string]page{
		"": {movies: []models.Movie{{ID: "only"}}, next: ""},
	}}
	p := NewPager(client)

	require.NoError(t, p.LoadFirst(context.Background()))
	require.False(t, p.HasMore())
}

func TestPager_MoviesReturnsCopy(t *testing.T) {
	p := NewPager(threePages())
	require.NoError(t, p.LoadFirst(context.Background()))

	snapshot := p.Movies()
	snapshot[0].ID = "mutated"

	require.Equal(t, []string{"a", "b"}, movieIDs(p.Movies()))
}
