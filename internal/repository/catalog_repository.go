package repository

import (
	"context"
	"fmt"

	"stock-admin/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// catalogRepository implements the CatalogRepository interface using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *catalogRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Clear deletes every product and category and restarts their ID sequences.
func (r *catalogRepository) Clear(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, `TRUNCATE products, categories RESTART IDENTITY`); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear catalog")
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	r.logger.Debug().Msg("catalog cleared")

	return nil
}

// InsertCategories inserts categories within the provided transaction.
func (r *catalogRepository) InsertCategories(ctx context.Context, tx pgx.Tx, names []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(names))
	if len(names) == 0 {
		return ids, nil
	}

	batch := &pgx.Batch{}
	for _, name := range names {
		batch.Queue(`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for _, name := range names {
		var id int64
		if err := results.QueryRow().Scan(&id); err != nil {
			if err := translate(err, model.ErrCategoryNotFound); isDomainError(err) {
				return nil, fmt.Errorf("category %q: %w", name, err)
			}
			r.logger.Error().Err(err).Str("name", name).Msg("failed to insert category")
			return nil, fmt.Errorf("failed to insert category %q: %w", name, err)
		}
		ids[name] = id
	}

	r.logger.Debug().Int("count", len(ids)).Msg("categories inserted successfully")

	return ids, nil
}

// InsertProducts inserts products within the provided transaction.
func (r *catalogRepository) InsertProducts(ctx context.Context, tx pgx.Tx, products []model.ProductInput) error {
	if len(products) == 0 {
		return nil
	}

	query := `
		INSERT INTO products (name, category_id, image_url, quantity)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.Name, p.CategoryID, p.ImageURL, p.Quantity)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(products); i++ {
		if _, err := results.Exec(); err != nil {
			if err := translate(err, model.ErrCategoryNotFound); isDomainError(err) {
				return fmt.Errorf("product %q: %w", products[i].Name, err)
			}
			r.logger.Error().
				Err(err).
				Str("name", products[i].Name).
				Msg("failed to insert product")
			return fmt.Errorf("failed to insert product: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(products)).
		Msg("products inserted successfully")

	return nil
}
