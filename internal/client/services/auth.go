// Package services contains the application services of the Rapihin client:
// the auth session manager, the document formatting orchestrator, and the
// history reader. Services sit between the CLI and the API client and are
// the only writers of shared state (the credential store, the staged file).
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arfidakai/Rapihin.ai/internal/client/api"
	"github.com/arfidakai/Rapihin.ai/internal/client/credstore"
	"github.com/arfidakai/Rapihin.ai/internal/client/models"
	"github.com/arfidakai/Rapihin.ai/internal/common"
	"github.com/arfidakai/Rapihin.ai/internal/logging"
)

// AuthService manages the session lifecycle.
//
// Contract:
//   - Register: client-side password policy first, then create the account
//     and store the returned session.
//   - Login: authenticate and store the session.
//   - Logout: local-only, idempotent; never calls the server.
//   - Restore: silently re-validate a persisted credential at startup.
//
// All session mutation goes through the credential store; nothing else
// writes it.
type AuthService interface {
	Register(ctx context.Context, email string, password, confirm []byte, fullName string) (models.Session, error)
	Login(ctx context.Context, email string, password []byte) (models.Session, error)
	Logout(ctx context.Context)
	Restore(ctx context.Context) (models.Session, error)
	Session() models.Session
}

type authService struct {
	client api.Client
	store  *credstore.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// credential store.
func NewAuthService(client api.Client, store *credstore.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log.With("component", "auth")}
}

// Register creates a new account. The password policy (minimum length,
// matching confirmation) is checked before any network call; policy
// violations never leave the client.
func (a *authService) Register(ctx context.Context, email string, password, confirm []byte, fullName string) (models.Session, error) {
	if len(password) < common.MinPasswordLength {
		return models.Session{}, common.ErrPasswordTooShort
	}
	if string(password) != string(confirm) {
		return models.Session{}, common.ErrPasswordMismatch
	}

	session, err := a.client.Register(ctx, email, string(password), fullName)
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", err)
	}

	a.store.Set(ctx, session.Credential, session.User)
	return *session, nil
}

// Login authenticates against the server and stores the session.
// A 401-class response surfaces as common.ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.Session, error) {
	session, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	a.store.Set(ctx, session.Credential, session.User)
	return *session, nil
}

// Logout clears the credential store. Local-only and idempotent.
func (a *authService) Logout(ctx context.Context) {
	a.store.Clear(ctx)
}

// Restore rehydrates a persisted credential at startup. The credential is
// not trusted until the server accepts it: a token that is already past its
// expiry, or that the server rejects, is cleared immediately. A transport
// failure leaves the credential in place and returns the error so the caller
// can retry later.
func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	credential := a.store.LoadPersisted(ctx)
	if credential == "" {
		return models.Session{}, nil
	}

	if expired(credential) {
		a.log.Info(ctx, "persisted credential expired, clearing")
		a.store.Clear(ctx)
		return models.Session{}, nil
	}

	user, err := a.client.Me(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.log.Info(ctx, "persisted credential rejected, clearing")
			a.store.Clear(ctx)
			return models.Session{}, nil
		}
		return models.Session{}, fmt.Errorf("validate session: %w", err)
	}

	a.store.Set(ctx, credential, user)
	return a.store.Get(), nil
}

// Session returns the current session snapshot.
func (a *authService) Session() models.Session {
	return a.store.Get()
}

// expired reports whether the token carries an exp claim that has already
// passed. The signature is not verified here; the server remains the source
// of truth, this only avoids a doomed round trip. Malformed tokens are left
// for the server to reject.
func expired(token string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}
