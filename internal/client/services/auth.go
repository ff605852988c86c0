// Package services contains application services for the portal client. This
// file defines the authentication service: login against the portal backend,
// persistence of the resulting session, and restore of a previously saved one.
package services

import (
	"context"
	"fmt"

	"github.com/sunvoyage/portal/internal/client/api"
	"github.com/sunvoyage/portal/internal/client/models"
	"github.com/sunvoyage/portal/internal/client/state"
)

// SessionBinder attaches session credentials to outgoing API requests.
// *api.HTTPClient satisfies it.
type SessionBinder interface {
	SetSession(s models.Session)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the portal, persist the session atomically,
//     and bind it to the API client.
//   - Restore: load a previously saved session and, when complete, bind it.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Restore(ctx context.Context) (models.Session, error)
}

type authService struct {
	client    api.Client
	binder    SessionBinder
	persistor *state.Persistor
}

// NewAuthService constructs an AuthService bound to the given API client and
// state persistor.
func NewAuthService(client api.Client, binder SessionBinder, persistor *state.Persistor) AuthService {
	return &authService{client: client, binder: binder, persistor: persistor}
}

// Login authenticates, stores all four session attributes in one transaction,
// and binds the credentials to the API client. Nothing is persisted when the
// login itself fails.
func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login error: %w", err)
	}
	if err := a.persistor.SaveSession(ctx, s); err != nil {
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}
	a.binder.SetSession(s)
	return s, nil
}

// Restore loads the saved session, if any. A partial or absent session comes
// back with Present() == false and nothing is bound.
func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	s, err := a.persistor.LoadSession(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if s.Present() {
		a.binder.SetSession(s)
	}
	return s, nil
}
