// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog repository.CatalogRepository
	logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	catalog repository.CatalogRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns products matching the filter, in catalog order.
func (srv *catalogService) ListProducts(ctx context.Context, filter *usecase.ProductFilter) ([]entity.Product, error) {
	products, err := srv.catalog.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	if filter == nil {
		return products, nil
	}

	filtered := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if !product.Matches(filter.Query) {
			continue
		}
		if !matchesCategory(&product, filter.Category) {
			continue
		}
		filtered = append(filtered, product)
	}
	srv.log(ctx).Debug("Filtered products",
		slog.String("query", filter.Query),
		slog.String("category", filter.Category),
		slog.Int("count", len(filtered)),
	)

	return filtered, nil
}

// matchesCategory applies the exact category filter; empty and "All" match everything.
func matchesCategory(product *entity.Product, category string) bool {
	if category == "" || strings.EqualFold(category, "All") {
		return true
	}

	return product.Category == category
}

// GetProduct returns a single product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.catalog.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListCategories returns the distinct categories in first-seen order.
func (srv *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	products, err := srv.catalog.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	for _, product := range products {
		if _, ok := seen[product.Category]; ok {
			continue
		}
		seen[product.Category] = struct{}{}
		categories = append(categories, product.Category)
	}

	return categories, nil
}
