package service

import (
	"context"
	"errors"
	"fmt"

	"stock-admin/internal/model"

	"github.com/rs/zerolog"
)

// CredentialChecker verifies admin credentials and issues a token.
// *auth.Authenticator satisfies it.
type CredentialChecker interface {
	Login(username, password string) (string, error)
}

// authService implements AuthService.
type authService struct {
	checker CredentialChecker
	logger  zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(checker CredentialChecker, logger zerolog.Logger) AuthService {
	return &authService{
		checker: checker,
		logger:  logger.With().Str("service", "auth").Logger(),
	}
}

// Login exchanges admin credentials for a bearer token.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.checker.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			s.logger.Warn().Str("username", req.Username).Msg("rejected login")
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("username", req.Username).Msg("admin logged in")

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   model.TokenTypeBearer,
	}, nil
}
