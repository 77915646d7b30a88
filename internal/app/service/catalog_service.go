package service

import (
	"context"
	"errors"

	"github.com/openshelf/storefront-api/pkg/catalog"
	"github.com/openshelf/storefront-api/pkg/logger"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

type CatalogService interface {
	ListProducts(ctx context.Context, limit int, sort string) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id uint) (*catalog.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListByCategory(ctx context.Context, category string) ([]catalog.Product, error)
}

type catalogService struct {
	client *catalog.Client
}

func NewCatalogService(client *catalog.Client) CatalogService {
	return &catalogService{client: client}
}

func (s *catalogService) ListProducts(ctx context.Context, limit int, sort string) ([]catalog.Product, error) {
	logger.Debug("Fetching products from catalog", map[string]interface{}{
		"limit": limit,
		"sort":  sort,
	})

	products, err := s.client.ListProducts(ctx, catalog.ListOptions{Limit: limit, Sort: sort})
	if err != nil {
		logger.Error("Failed to fetch products from catalog", err, map[string]interface{}{
			"limit": limit,
			"sort":  sort,
		})
		return nil, s.mapError(err)
	}

	logger.Info("Products fetched from catalog", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uint) (*catalog.Product, error) {
	logger.Debug("Fetching product from catalog", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.client.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			logger.Warn("Product not found in catalog", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product from catalog", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, s.mapError(err)
	}

	logger.Info("Product fetched from catalog", map[string]interface{}{
		"product_id": product.ID,
		"category":   product.Category,
	})
	return product, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	logger.Debug("Fetching categories from catalog")

	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		logger.Error("Failed to fetch categories from catalog", err)
		return nil, s.mapError(err)
	}

	logger.Info("Categories fetched from catalog", map[string]interface{}{
		"count": len(categories),
	})
	return categories, nil
}

func (s *catalogService) ListByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	logger.Debug("Fetching category products from catalog", map[string]interface{}{
		"category": category,
	})

	products, err := s.client.ListByCategory(ctx, category)
	if err != nil {
		logger.Error("Failed to fetch category products from catalog", err, map[string]interface{}{
			"category": category,
		})
		return nil, s.mapError(err)
	}

	logger.Info("Category products fetched from catalog", map[string]interface{}{
		"category": category,
		"count":    len(products),
	})
	return products, nil
}

func (s *catalogService) mapError(err error) error {
	if errors.Is(err, catalog.ErrProductNotFound) {
		return ErrProductNotFound
	}
	if errors.Is(err, catalog.ErrUpstream) || errors.Is(err, catalog.ErrNetworkError) {
		return ErrCatalogUnavailable
	}
	return err
}
