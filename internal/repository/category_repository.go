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

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// List retrieves all categories ordered by name.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &c, nil
}

// Create inserts a category and returns it with its assigned ID.
func (r *categoryRepository) Create(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	c := model.Category{Name: in.Name}
	err := r.pool.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, in.Name).Scan(&c.ID)
	if err != nil {
		if err := translate(err, model.ErrCategoryNotFound); isDomainError(err) {
			r.logger.Debug().Err(err).Str("name", in.Name).Msg("category rejected")
			return nil, err
		}
		r.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().Int64("category_id", c.ID).Msg("category created successfully")

	return &c, nil
}

// Update replaces a category's fields.
func (r *categoryRepository) Update(ctx context.Context, id int64, in model.CategoryInput) (*model.Category, error) {
	c := model.Category{ID: id}
	err := r.pool.QueryRow(ctx,
		`UPDATE categories SET name = $2 WHERE id = $1 RETURNING name`,
		id, in.Name,
	).Scan(&c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if err := translate(err, model.ErrCategoryNotFound); isDomainError(err) {
			return nil, err
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &c, nil
}

// Delete removes a category. Categories that still have products are refused.
func (r *categoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if err := translate(err, model.ErrCategoryInUse); isDomainError(err) {
			return false, err
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
