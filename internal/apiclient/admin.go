package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// RefillMockData asks the backend to replace its data with the seed catalogue.
func (c *Client) RefillMockData(ctx context.Context) error {
	if err := c.Do(ctx, http.MethodPost, "/admin/refill-mocks", nil, nil); err != nil {
		return fmt.Errorf("refill mock data: %w", err)
	}
	return nil
}

// ClearAllData asks the backend to delete every product and category.
func (c *Client) ClearAllData(ctx context.Context) error {
	if err := c.Do(ctx, http.MethodDelete, "/admin/clear-data", nil, nil); err != nil {
		return fmt.Errorf("clear all data: %w", err)
	}
	return nil
}
