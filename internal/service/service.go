package service

import (
	"context"

	"stock-admin/internal/model"
)

// CategoryService defines operations for category management.
type CategoryService interface {
	// List retrieves all categories.
	List(ctx context.Context) ([]model.Category, error)

	// Create validates and stores a new category.
	Create(ctx context.Context, in model.CategoryInput) (*model.Category, error)

	// Update replaces an existing category.
	Update(ctx context.Context, id int64, in model.CategoryInput) (*model.Category, error)

	// Delete removes a category that no product references.
	Delete(ctx context.Context, id int64) error
}

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create validates and stores a new product.
	Create(ctx context.Context, in model.ProductInput) (*model.Product, error)

	// Update replaces an existing product.
	Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error
}

// AdminService defines the bulk data operations.
type AdminService interface {
	// RefillMockData replaces all data with the seed catalogue.
	RefillMockData(ctx context.Context) error

	// ClearAllData deletes every product and category.
	ClearAllData(ctx context.Context) error
}

// AuthService exchanges admin credentials for an access token.
type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}
