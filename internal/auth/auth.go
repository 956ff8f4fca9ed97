// Package auth resolves the calling user from an inbound request.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tvshow_admin/internal/domain"
	"tvshow_admin/internal/store"
	"tvshow_admin/internal/utils"
)

// UserIDHeader carries the caller's user ID in header mode.
const UserIDHeader = "X-User-Id"

var (
	// ErrNoIdentity means the request carried no usable credential.
	ErrNoIdentity = errors.New("no caller identity")
	// ErrUnknownUser means the credential named a user that does not exist.
	ErrUnknownUser = errors.New("unknown user")
)

// Authenticator resolves the caller of a request to a stored user.
type Authenticator interface {
	Authenticate(ctx context.Context, r *http.Request) (*domain.User, error)
}

// UserLookup loads users by ID.
type UserLookup interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// HeaderAuthenticator trusts the X-User-Id header as-is.
type HeaderAuthenticator struct {
	Users UserLookup
}

func NewHeaderAuthenticator(users UserLookup) *HeaderAuthenticator {
	return &HeaderAuthenticator{Users: users}
}

func (a *HeaderAuthenticator) Authenticate(ctx context.Context, r *http.Request) (*domain.User, error) {
	id := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if id == "" {
		return nil, ErrNoIdentity
	}
	return lookup(ctx, a.Users, id)
}

// TokenAuthenticator resolves a signed bearer token. The role is always
// re-read from storage, never taken from the token.
type TokenAuthenticator struct {
	Users  UserLookup
	Secret string
}

func NewTokenAuthenticator(users UserLookup, secret string) *TokenAuthenticator {
	return &TokenAuthenticator{Users: users, Secret: secret}
}

func (a *TokenAuthenticator) Authenticate(ctx context.Context, r *http.Request) (*domain.User, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, ErrNoIdentity
	}
	claims, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "), a.Secret)
	if err != nil || claims.UserID == "" {
		return nil, ErrNoIdentity
	}
	return lookup(ctx, a.Users, claims.UserID)
}

func lookup(ctx context.Context, users UserLookup, id string) (*domain.User, error) {
	u, err := users.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
