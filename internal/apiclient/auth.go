package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"stock-admin/internal/model"
)

// Authenticate posts credentials to /login and returns the access token.
// The request never carries an Authorization header. A success response
// without an access_token yields model.ErrMissingToken.
func (c *Client) Authenticate(ctx context.Context, username, password string) (string, error) {
	req := model.LoginRequest{Username: username, Password: password}

	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &resp, false); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	if resp.AccessToken == "" {
		return "", fmt.Errorf("login: %w", model.ErrMissingToken)
	}

	return resp.AccessToken, nil
}
