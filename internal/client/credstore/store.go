// Package credstore holds the process-wide session: the bearer credential
// and the authenticated user's profile.
//
// The store is single-writer (the auth service) and multi-reader (the HTTP
// client's interceptor, the CLI). Get, Set, and Clear are atomic with respect
// to each other: no reader ever observes a credential without its matching
// user or vice versa.
//
// The credential is persisted to the local sqlite database under a fixed key
// so a session survives restarts. Persistence failures are logged and
// swallowed: the store degrades to in-memory only ("session lost on restart")
// rather than failing the operation.
package credstore

import (
	"context"
	"sync"

	"github.com/arfidakai/Rapihin.ai/internal/client/models"
	"github.com/arfidakai/Rapihin.ai/internal/client/repositories/metadata"
	"github.com/arfidakai/Rapihin.ai/internal/common"
	"github.com/arfidakai/Rapihin.ai/internal/logging"
)

type Store struct {
	mu      sync.RWMutex
	session models.Session

	repo metadata.Repository // nil when durable storage is unavailable
	log  logging.Logger
}

// New constructs a Store. repo may be nil, in which case the session is held
// in memory only.
func New(repo metadata.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("component", "credstore")}
}

// Get returns a snapshot of the current session.
func (s *Store) Get() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Set replaces the session and persists the credential.
func (s *Store) Set(ctx context.Context, credential string, user *models.User) {
	s.mu.Lock()
	s.session = models.Session{Credential: credential, User: user}
	s.mu.Unlock()

	if s.repo == nil {
		return
	}
	if err := s.repo.Set(ctx, common.CredentialKey, []byte(credential)); err != nil {
		s.log.Warn(ctx, "credential not persisted, session will not survive restart", "error", err)
	}
}

// Clear resets the session to logged out and removes the persisted
// credential. Idempotent.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	if s.repo == nil {
		return
	}
	if err := s.repo.Delete(ctx, common.CredentialKey); err != nil {
		s.log.Warn(ctx, "persisted credential not removed", "error", err)
	}
}

// LoadPersisted reads a previously persisted credential into the in-memory
// session, without a user profile. The session must not be trusted until the
// auth service has validated the credential against the server. Returns the
// credential, or "" when none is stored or storage is unavailable.
func (s *Store) LoadPersisted(ctx context.Context) string {
	if s.repo == nil {
		return ""
	}

	value, err := s.repo.Get(ctx, common.CredentialKey)
	if err != nil {
		s.log.Warn(ctx, "persisted credential unreadable", "error", err)
		return ""
	}
	if len(value) == 0 {
		return ""
	}

	credential := string(value)
	s.mu.Lock()
	s.session = models.Session{Credential: credential}
	s.mu.Unlock()
	return credential
}
