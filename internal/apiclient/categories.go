package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"stock-admin/internal/model"
)

func categoryPath(id int64) string {
	return fmt.Sprintf("/categories/%d", id)
}

// ListCategories returns every category.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	if err := c.Do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category and returns it with its assigned id.
func (c *Client) CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var category model.Category
	if err := c.Do(ctx, http.MethodPost, "/categories", in, &category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory replaces the category with the given id.
func (c *Client) UpdateCategory(ctx context.Context, id int64, in model.CategoryInput) (*model.Category, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var category model.Category
	if err := c.Do(ctx, http.MethodPut, categoryPath(id), in, &category); err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return &category, nil
}

// DeleteCategory removes the category with the given id.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidID
	}

	if err := c.Do(ctx, http.MethodDelete, categoryPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}
