// Package session holds the admin console's authentication state: the
// current access token and the message describing the last failed login.
//
// A Store is created by the caller and handed to the API client; there is
// no package-level session.
package session

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"stock-admin/internal/model"

	"github.com/rs/zerolog"
)

// Messages recorded by Login on failure.
const (
	MsgInvalidCredentials = "Invalid credentials. Please try again."
	MsgServerError        = "Login failed. Server error."
	MsgNetworkError       = "Network or server error."
	MsgMissingToken       = "Login failed. No access token returned."
)

// HeaderAuthorization is the header AuthHeader produces.
const HeaderAuthorization = "Authorization"

// TokenStore is the narrow view of a session that the API client needs.
type TokenStore interface {
	CurrentToken() string
	SetToken(token string)
	Clear()
}

// Authenticator exchanges credentials for an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// Session is a point-in-time copy of a Store's state.
type Session struct {
	Token           string
	IsAuthenticated bool
	LastError       string
}

// Store is the single holder of the admin session. Readers observe whatever
// token is current when they read it; concurrent writers are last-writer-wins.
type Store struct {
	mu        sync.RWMutex
	token     string
	lastError string

	auth   Authenticator
	logger zerolog.Logger
}

// NewStore creates an anonymous session that logs in through auth.
func NewStore(auth Authenticator, logger zerolog.Logger) *Store {
	return &Store{
		auth:   auth,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// SetAuthenticator replaces the authenticator used by Login. It exists so the
// store and the client that authenticates for it can be built in either order.
func (s *Store) SetAuthenticator(auth Authenticator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = auth
}

// Login exchanges credentials for a token. It reports success as a boolean
// and records a user-facing message in LastError on failure; errors never
// escape. A failed attempt leaves any existing token in place.
func (s *Store) Login(ctx context.Context, username, password string) bool {
	s.mu.Lock()
	s.lastError = ""
	auth := s.auth
	s.mu.Unlock()

	if auth == nil {
		s.fail(MsgNetworkError, errors.New("no authenticator configured"))
		return false
	}

	token, err := auth.Authenticate(ctx, username, password)
	if err != nil {
		s.fail(loginMessage(err), err)
		return false
	}
	if token == "" {
		s.fail(MsgMissingToken, model.ErrMissingToken)
		return false
	}

	s.SetToken(token)
	s.logger.Info().Str("username", username).Msg("logged in")
	return true
}

func (s *Store) fail(message string, err error) {
	s.mu.Lock()
	s.lastError = message
	s.mu.Unlock()

	s.logger.Warn().Err(err).Str("reason", message).Msg("login failed")
}

// loginMessage maps an authentication failure onto the message shown to the user.
func loginMessage(err error) string {
	if errors.Is(err, model.ErrMissingToken) {
		return MsgMissingToken
	}

	kind, ok := model.KindOf(err)
	if !ok {
		return MsgNetworkError
	}

	switch kind {
	case model.KindAuthentication:
		return MsgInvalidCredentials
	case model.KindServer:
		return MsgServerError
	default:
		return MsgNetworkError
	}
}

// Logout clears the token and the last error. It does not contact the backend.
func (s *Store) Logout() {
	s.Clear()
	s.logger.Info().Msg("logged out")
}

// CurrentToken returns the access token, or "" when anonymous.
func (s *Store) CurrentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores a token and clears the last error.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.lastError = ""
}

// Clear resets the store to the anonymous state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.lastError = ""
}

// IsAdmin reports whether a token is held.
func (s *Store) IsAdmin() bool {
	return s.CurrentToken() != ""
}

// LastError returns the message recorded by the most recent failed login.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{
		Token:           s.token,
		IsAuthenticated: s.token != "",
		LastError:       s.lastError,
	}
}

// AuthHeader returns the Authorization header for the current token.
// ok is false when the session is anonymous.
func (s *Store) AuthHeader() (name, value string, ok bool) {
	return BearerHeader(s.CurrentToken())
}

// BearerHeader builds the Authorization header for token.
func BearerHeader(token string) (name, value string, ok bool) {
	if token == "" {
		return "", "", false
	}
	return HeaderAuthorization, "Bearer " + token, true
}

// ApplyAuth sets the Authorization header on h from tokens, or removes it
// when there is no token.
func ApplyAuth(h http.Header, tokens TokenStore) {
	name, value, ok := BearerHeader(tokens.CurrentToken())
	if !ok {
		h.Del(HeaderAuthorization)
		return
	}
	h.Set(name, value)
}
