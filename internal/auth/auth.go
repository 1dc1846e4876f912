// Package auth checks the admin credentials and issues the HS256 access
// tokens the stock API accepts as bearer tokens.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"stock-admin/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is returned by Verify for any token it does not accept.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload of an access token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Authenticator holds the single admin account and the signing key.
type Authenticator struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// New hashes password and returns an Authenticator for the admin account.
func New(username, password, secret string, ttl time.Duration) (*Authenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &Authenticator{
		username:     username,
		passwordHash: hash,
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Login checks the credentials and returns a signed access token.
func (a *Authenticator) Login(username, password string) (string, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !usernameOK || passwordErr != nil {
		return "", model.ErrInvalidCredentials
	}

	return a.Issue(username)
}

// Issue signs a token for username valid for the configured TTL.
func (a *Authenticator) Issue(username string) (string, error) {
	now := a.now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString and returns its claims.
func (a *Authenticator) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return a.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
