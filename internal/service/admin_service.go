package service

import (
	"context"
	"fmt"

	"stock-admin/internal/model"
	"stock-admin/internal/repository"
	"stock-admin/internal/seed"

	"github.com/rs/zerolog"
)

// adminService implements AdminService.
type adminService struct {
	catalogRepo repository.CatalogRepository
	loader      seed.Loader
	seedFiles   []string
	logger      zerolog.Logger
}

// NewAdminService creates a new admin service that refills from seedFiles.
func NewAdminService(
	catalogRepo repository.CatalogRepository,
	loader seed.Loader,
	seedFiles []string,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		catalogRepo: catalogRepo,
		loader:      loader,
		seedFiles:   seedFiles,
		logger:      logger.With().Str("service", "admin").Logger(),
	}
}

// RefillMockData replaces all data with the seed catalogue. The catalogue is
// read before the transaction starts; a bad seed file leaves the data as is.
func (s *adminService) RefillMockData(ctx context.Context) (err error) {
	catalog, err := seed.LoadAll(ctx, s.loader, s.seedFiles)
	if err != nil {
		s.logger.Error().Err(err).Strs("files", s.seedFiles).Msg("failed to load seed catalogue")
		return fmt.Errorf("failed to refill mock data: %w", err)
	}

	tx, err := s.catalogRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to refill mock data: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.catalogRepo.Clear(ctx, tx); err != nil {
		return fmt.Errorf("failed to refill mock data: %w", err)
	}

	ids, err := s.catalogRepo.InsertCategories(ctx, tx, catalog.Categories)
	if err != nil {
		return fmt.Errorf("failed to insert seed categories: %w", err)
	}

	products := make([]model.ProductInput, len(catalog.Products))
	for i, p := range catalog.Products {
		products[i] = model.ProductInput{
			Name:       p.Name,
			CategoryID: ids[p.Category],
			ImageURL:   p.ImageURL,
			Quantity:   p.Quantity,
		}
	}

	if err = s.catalogRepo.InsertProducts(ctx, tx, products); err != nil {
		return fmt.Errorf("failed to insert seed products: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to refill mock data: %w", err)
	}

	s.logger.Info().
		Int("categories", len(catalog.Categories)).
		Int("products", len(products)).
		Msg("mock data refilled")

	return nil
}

// ClearAllData deletes every product and category.
func (s *adminService) ClearAllData(ctx context.Context) (err error) {
	tx, err := s.catalogRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.catalogRepo.Clear(ctx, tx); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to clear data: %w", err)
	}

	s.logger.Info().Msg("all data cleared")

	return nil
}
