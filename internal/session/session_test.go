package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"stock-admin/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthenticator is a mock implementation of Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func TestStore_Login(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name          string
		token         string
		authErr       error
		expectOK      bool
		expectedError string
	}{
		{
			name:     "Success stores token",
			token:    "tok-123",
			expectOK: true,
		},
		{
			name:          "Rejected credentials",
			authErr:       fmt.Errorf("login: %w", model.NewStatusError(http.StatusUnauthorized, "Unauthorized", "")),
			expectedError: MsgInvalidCredentials,
		},
		{
			name:          "Server error",
			authErr:       fmt.Errorf("login: %w", model.NewStatusError(http.StatusInternalServerError, "Internal Server Error", "")),
			expectedError: MsgServerError,
		},
		{
			name:          "Forbidden counts as a server error",
			authErr:       model.NewStatusError(http.StatusForbidden, "Forbidden", ""),
			expectedError: MsgServerError,
		},
		{
			name:          "Transport failure",
			authErr:       &model.APIError{Kind: model.KindTransport, Err: errors.New("connection refused")},
			expectedError: MsgNetworkError,
		},
		{
			name:          "Undecodable body",
			authErr:       &model.APIError{Kind: model.KindDecode, Err: errors.New("unexpected EOF")},
			expectedError: MsgNetworkError,
		},
		{
			name:          "Untyped error",
			authErr:       errors.New("boom"),
			expectedError: MsgNetworkError,
		},
		{
			name:          "Missing token from authenticator error",
			authErr:       fmt.Errorf("login: %w", model.ErrMissingToken),
			expectedError: MsgMissingToken,
		},
		{
			name:          "Empty token without error",
			token:         "",
			expectedError: MsgMissingToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthenticator)
			auth.On("Authenticate", ctx, "admin", "secret").Return(tt.token, tt.authErr)

			store := NewStore(auth, logger)
			ok := store.Login(ctx, "admin", "secret")

			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.expectedError, store.LastError())
			assert.Equal(t, tt.expectOK, store.IsAdmin())

			if tt.expectOK {
				name, value, present := store.AuthHeader()
				require.True(t, present)
				assert.Equal(t, "Authorization", name)
				assert.Equal(t, "Bearer "+tt.token, value)
			} else {
				_, _, present := store.AuthHeader()
				assert.False(t, present)
			}

			auth.AssertExpectations(t)
		})
	}
}

func TestStore_FailedLoginKeepsExistingToken(t *testing.T) {
	ctx := context.Background()

	auth := new(MockAuthenticator)
	auth.On("Authenticate", ctx, "admin", "wrong").
		Return("", model.NewStatusError(http.StatusUnauthorized, "Unauthorized", ""))

	store := NewStore(auth, zerolog.Nop())
	store.SetToken("existing")

	assert.False(t, store.Login(ctx, "admin", "wrong"))
	assert.Equal(t, "existing", store.CurrentToken())
	assert.Equal(t, MsgInvalidCredentials, store.LastError())
}

func TestStore_SuccessfulLoginClearsPreviousError(t *testing.T) {
	ctx := context.Background()

	auth := new(MockAuthenticator)
	auth.On("Authenticate", ctx, "admin", "wrong").
		Return("", model.NewStatusError(http.StatusUnauthorized, "Unauthorized", "")).Once()
	auth.On("Authenticate", ctx, "admin", "secret").Return("tok", nil).Once()

	store := NewStore(auth, zerolog.Nop())

	require.False(t, store.Login(ctx, "admin", "wrong"))
	require.Equal(t, MsgInvalidCredentials, store.LastError())

	require.True(t, store.Login(ctx, "admin", "secret"))
	assert.Empty(t, store.LastError())
	assert.Equal(t, Session{Token: "tok", IsAuthenticated: true}, store.Snapshot())
}

func TestStore_LoginWithoutAuthenticator(t *testing.T) {
	store := NewStore(nil, zerolog.Nop())

	assert.False(t, store.Login(context.Background(), "admin", "secret"))
	assert.Equal(t, MsgNetworkError, store.LastError())
}

func TestStore_Logout(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Store)
	}{
		{
			name:  "From anonymous",
			setup: func(s *Store) {},
		},
		{
			name:  "From authenticated",
			setup: func(s *Store) { s.SetToken("tok") },
		},
		{
			name: "With a recorded error",
			setup: func(s *Store) {
				s.SetToken("tok")
				s.fail(MsgServerError, errors.New("500"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(nil, zerolog.Nop())
			tt.setup(store)

			store.Logout()

			_, _, ok := store.AuthHeader()
			assert.False(t, ok)
			assert.False(t, store.IsAdmin())
			assert.Empty(t, store.LastError())
			assert.Equal(t, Session{}, store.Snapshot())
		})
	}
}

func TestApplyAuth(t *testing.T) {
	store := NewStore(nil, zerolog.Nop())

	h := http.Header{}
	h.Set("Authorization", "Bearer stale")
	ApplyAuth(h, store)
	_, present := h["Authorization"]
	assert.False(t, present, "anonymous requests must not carry an Authorization header")

	store.SetToken("fresh")
	ApplyAuth(h, store)
	assert.Equal(t, "Bearer fresh", h.Get("Authorization"))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore(nil, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			store.SetToken(fmt.Sprintf("tok-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			if _, value, ok := store.AuthHeader(); ok {
				assert.Contains(t, value, "Bearer tok-")
			}
		}()
	}
	wg.Wait()

	assert.True(t, store.IsAdmin())
}
