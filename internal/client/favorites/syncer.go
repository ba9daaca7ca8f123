// Package favorites keeps the client's favorite-membership set consistent
// with server state. A toggle is never applied locally: the mutation is
// issued, then the authoritative user record is re-fetched and swapped into
// the session wholesale. The server owns conflict resolution for
// concurrent changes (say, the same account on two devices), so a local
// flip could silently drift from server truth.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"filmoteka/internal/client/api"
	"filmoteka/internal/client/models"
	"filmoteka/internal/logging"
)

var (
	// ErrNotAuthenticated is returned when toggling without a session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrToggleInFlight is returned when a toggle for the same movie has
	// not finished its re-fetch yet.
	ErrToggleInFlight = errors.New("favorite toggle already in flight")
)

// Session is the slice of the session manager the syncer needs.
type Session interface {
	Current() (*models.User, bool)
	UpdateUser(user *models.User)
}

// Syncer toggles favorite membership with server confirmation.
type Syncer struct {
	client  api.Client
	session Session
	logger  logging.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSyncer(client api.Client, session Session, logger logging.Logger) *Syncer {
	return &Syncer{
		client:   client,
		session:  session,
		logger:   logger.With("module", "favorites"),
		inFlight: make(map[string]struct{}),
	}
}

// Toggle adds movieID to the session user's favorites if absent, removes it
// if present, then re-fetches the user record and replaces the session's
// copy with the server's view.
//
// If the mutation fails the session is left untouched. If the mutation
// succeeds but the re-fetch fails, the server has already applied the
// change and the client's view is stale until the next successful fetch;
// the returned error says so and nothing is rolled back.
//
// A second Toggle for the same movie while one is still in flight is
// rejected with ErrToggleInFlight.
func (s *Syncer) Toggle(ctx context.Context, movieID string) error {
	user, ok := s.session.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	if !s.begin(movieID) {
		return ErrToggleInFlight
	}
	defer s.end(movieID)

	if user.HasFavorite(movieID) {
		if err := s.client.RemoveFavorite(ctx, user.Email, movieID); err != nil {
			return fmt.Errorf("remove favorite: %w", err)
		}
	} else {
		if err := s.client.AddFavorite(ctx, user.Email, movieID); err != nil {
			return fmt.Errorf("add favorite: %w", err)
		}
	}

	fresh, err := s.client.GetUser(ctx, user.Email)
	if err != nil {
		s.logger.Warn(ctx, "favorite updated but refresh failed, view is stale",
			"movie_id", movieID, "error", err)
		return fmt.Errorf("favorite updated, refresh failed: %w", err)
	}

	s.session.UpdateUser(fresh)
	return nil
}

func (s *Syncer) begin(movieID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[movieID]; busy {
		return false
	}
	s.inFlight[movieID] = struct{}{}
	return true
}

func (s *Syncer) end(movieID string) {
	s.mu.Lock()
	delete(s.inFlight, movieID)
	s.mu.Unlock()
}
