// Package session owns the process-wide authenticated-user state: a state
// machine that is either Anonymous or Authenticated with exactly one User.
// All writes go through the Manager's transition methods; everything else
// only reads snapshots or subscribes to changes.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"filmoteka/internal/client/api"
	"filmoteka/internal/client/credstore"
	"filmoteka/internal/client/models"
	"filmoteka/internal/common"
	"filmoteka/internal/logging"
)

// Manager holds the session state and performs its transitions.
type Manager struct {
	creds  *credstore.Store
	client api.Client
	logger logging.Logger

	mu     sync.RWMutex
	user   *models.User
	nextID int
	subs   map[int]func(*models.User)
}

// NewManager builds an Anonymous manager. Call Restore to attempt picking
// up a persisted session.
func NewManager(creds *credstore.Store, client api.Client, logger logging.Logger) *Manager {
	return &Manager{
		creds:  creds,
		client: client,
		logger: logger.With("module", "session"),
		subs:   make(map[int]func(*models.User)),
	}
}

// Restore attempts the startup transition: if a credential is stored, fetch
// the user it names. A NotFound reply means the stored identity is stale:
// the credential is cleared and the session stays Anonymous. Any other
// fetch error also leaves the session Anonymous but keeps the credential,
// so the next start can retry; that error is returned for reporting.
func (m *Manager) Restore(ctx context.Context) error {
	creds, err := m.creds.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	if creds == nil {
		return nil
	}

	user, err := m.client.GetUser(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			m.logger.Info(ctx, "stored session is stale, clearing", "email", creds.Email)
			return m.creds.Clear(ctx)
		}
		return fmt.Errorf("restore session: %w", err)
	}

	m.setUser(user)
	m.logger.Info(ctx, "session restored", "email", user.Email)
	return nil
}

// Login performs the login transition with an identity token. The email
// claim is decoded locally; the credential is persisted before the network
// round-trip so a crash mid-login still leaves a resumable credential.
// A NotFound reply authenticates a first-time user with an empty favorites
// set; no create call is issued. Any other fetch error aborts the login,
// leaving the credential as written and the session Anonymous.
func (m *Manager) Login(ctx context.Context, token string) error {
	email, err := DecodeEmail(token)
	if err != nil {
		return err
	}

	if err := m.creds.Save(ctx, token, email); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}

	user, err := m.client.GetUser(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// first-time user, not yet materialized server-side
			user = &models.User{Email: email}
		} else {
			return fmt.Errorf("login: %w", err)
		}
	}

	m.setUser(user)
	m.logger.Info(ctx, "logged in", "email", email)
	return nil
}

// Logout clears the credential store and transitions to Anonymous. No
// network call is made; calling it twice is the same as calling it once.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	m.setUser(nil)
	m.logger.Info(ctx, "logged out")
	return nil
}

// UpdateUser replaces the authenticated user wholesale with a
// server-confirmed value. While Anonymous it is a logged no-op.
func (m *Manager) UpdateUser(user *models.User) {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		m.logger.Warn(context.Background(), "UpdateUser while anonymous ignored")
		return
	}
	m.user = user.Clone()
	m.mu.Unlock()
	m.notify()
}

// Current returns a snapshot of the authenticated user, or (nil, false)
// while Anonymous. The snapshot is a copy; mutating it does not touch the
// session.
func (m *Manager) Current() (*models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil, false
	}
	return m.user.Clone(), true
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// Subscribe registers fn to be called after every state transition with a
// snapshot of the new user (nil on logout). The returned function cancels
// the subscription.
func (m *Manager) Subscribe(fn func(*models.User)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Manager) setUser(user *models.User) {
	m.mu.Lock()
	m.user = user.Clone()
	m.mu.Unlock()
	m.notify()
}

// notify runs subscribers outside the lock so they may call back into the
// manager.
func (m *Manager) notify() {
	m.mu.RLock()
	snapshot := m.user.Clone()
	fns := make([]func(*models.User), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot.Clone())
	}
}
