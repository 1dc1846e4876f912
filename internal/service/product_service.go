package service

import (
	"context"
	"fmt"

	"stock-admin/internal/model"
	"stock-admin/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create validates and stores a new product.
func (s *productService) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Create(ctx, in)
	if err != nil {
		s.logger.Warn().Err(err).Str("name", in.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Int64("category_id", product.CategoryID).
		Msg("product created")

	return product, nil
}

// Update replaces an existing product.
func (s *productService) Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, in)
	if err != nil {
		s.logger.Warn().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidID
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		return model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}
