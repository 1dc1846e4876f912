package repository

import (
	"context"
	"errors"
	"fmt"

	"stock-admin/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves all products ordered by ID.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, category_id, image_url, quantity
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.CategoryID, &p.ImageURL, &p.Quantity)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, category_id, image_url, quantity
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.CategoryID, &p.ImageURL, &p.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a product and returns it with its assigned ID.
func (r *productRepository) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	query := `
		INSERT INTO products (name, category_id, image_url, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	p := productFromInput(0, in)
	err := r.pool.QueryRow(ctx, query, in.Name, in.CategoryID, in.ImageURL, in.Quantity).Scan(&p.ID)
	if err != nil {
		if err := translate(err, model.ErrCategoryNotFound); isDomainError(err) {
			r.logger.Debug().Err(err).Int64("category_id", in.CategoryID).Msg("product rejected")
			return nil, err
		}
		r.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created successfully")

	return &p, nil
}

// Update replaces a product's fields.
func (r *productRepository) Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, image_url = $4, quantity = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, in.Name, in.CategoryID, in.ImageURL, in.Quantity)
	if err != nil {
		if err := translate(err, model.ErrCategoryNotFound); isDomainError(err) {
			return nil, err
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	p := productFromInput(id, in)
	return &p, nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func productFromInput(id int64, in model.ProductInput) model.Product {
	return model.Product{
		ID:         id,
		Name:       in.Name,
		CategoryID: in.CategoryID,
		ImageURL:   in.ImageURL,
		Quantity:   in.Quantity,
	}
}
