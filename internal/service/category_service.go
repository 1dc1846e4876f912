package service

import (
	"context"
	"fmt"

	"stock-admin/internal/model"
	"stock-admin/internal/repository"

	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// List retrieves all categories.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")

	return categories, nil
}

// Create validates and stores a new category.
func (s *categoryService) Create(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.Create(ctx, in)
	if err != nil {
		s.logger.Warn().Err(err).Str("name", in.Name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().Int64("category_id", category.ID).Msg("category created")

	return category, nil
}

// Update replaces an existing category.
func (s *categoryService) Update(ctx context.Context, id int64, in model.CategoryInput) (*model.Category, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.Update(ctx, id, in)
	if err != nil {
		s.logger.Warn().Err(err).Int64("category_id", id).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if category == nil {
		s.logger.Debug().Int64("category_id", id).Msg("category not found")
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

// Delete removes a category that no product references.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidID
	}

	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if !deleted {
		return model.ErrCategoryNotFound
	}

	s.logger.Info().Int64("category_id", id).Msg("category deleted")

	return nil
}
