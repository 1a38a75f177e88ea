package service

import (
	"context"

	"go.uber.org/zap"

	"trayafront/internal/domain"
)

// CatalogService is a read-through over the backend catalog. Products
// are fetched fresh on every page view; there is no cache and no
// partial-result handling — any failure is fatal for the call.
type CatalogService struct {
	backend Backend
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(backend Backend, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		backend: backend,
		logger:  logger,
	}
}

// ListProducts returns the full catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// GetProduct returns one product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.backend.GetProduct(ctx, id)
	if err != nil {
		s.logger.Error("failed to get product", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return product, nil
}
