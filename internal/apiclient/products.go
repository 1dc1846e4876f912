package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"stock-admin/internal/model"
)

func productPath(id int64) string {
	return fmt.Sprintf("/products/%d", id)
}

// ListProducts returns every product.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := c.Do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// CreateProduct creates a product and returns it with its assigned id.
func (c *Client) CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var product model.Product
	if err := c.Do(ctx, http.MethodPost, "/products", in, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct replaces the product with the given id.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var product model.Product
	if err := c.Do(ctx, http.MethodPut, productPath(id), in, &product); err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	return &product, nil
}

// DeleteProduct removes the product with the given id.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidID
	}

	if err := c.Do(ctx, http.MethodDelete, productPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}
