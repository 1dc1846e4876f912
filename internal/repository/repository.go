package repository

import (
	"context"

	"stock-admin/internal/model"

	"github.com/jackc/pgx/v5"
)

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category. Returns nil, nil when it does not exist.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// Create inserts a category and returns it with its assigned ID.
	Create(ctx context.Context, in model.CategoryInput) (*model.Category, error)

	// Update replaces a category. Returns nil, nil when it does not exist.
	Update(ctx context.Context, id int64, in model.CategoryInput) (*model.Category, error)

	// Delete removes a category and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves all products ordered by ID.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product. Returns nil, nil when it does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a product and returns it with its assigned ID.
	Create(ctx context.Context, in model.ProductInput) (*model.Product, error)

	// Update replaces a product. Returns nil, nil when it does not exist.
	Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error)

	// Delete removes a product and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// CatalogRepository defines the bulk operations behind the admin actions.
type CatalogRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Clear deletes every product and category within the provided transaction.
	Clear(ctx context.Context, tx pgx.Tx) error

	// InsertCategories inserts categories within the provided transaction and
	// returns their IDs keyed by name.
	InsertCategories(ctx context.Context, tx pgx.Tx, names []string) (map[string]int64, error)

	// InsertProducts inserts products within the provided transaction.
	InsertProducts(ctx context.Context, tx pgx.Tx, products []model.ProductInput) error
}
