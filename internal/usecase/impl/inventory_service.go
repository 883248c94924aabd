package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"boutique/config"
	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/infra/export"
	"boutique/internal/usecase"
)

// inventoryService implements the InventoryUsecase interface. The manager
// gate lives here, at the service boundary, so no alternative delivery path
// can mutate the catalog without the role check.
type inventoryService struct {
	catalog     repository.CatalogRepository
	stockPolicy entity.StockEmptyPolicy
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(
	catalog repository.CatalogRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.InventoryUsecase {
	return &inventoryService{
		catalog:     catalog,
		stockPolicy: cfg.Inventory.StockPolicy(),
		validate:    validator.New(),
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireManager rejects any actor that is not an authenticated manager.
func requireManager(actor *entity.Principal) error {
	if !actor.IsManager() {
		return errors.Wrap(domainerrors.ErrForbidden, "inventory operations require the manager role")
	}

	return nil
}

// AddProduct validates the draft and appends a new product.
func (srv *inventoryService) AddProduct(ctx context.Context, actor *entity.Principal, input *usecase.ProductInput) (*entity.Product, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	product, err := srv.coerceDraft(input)
	if err != nil {
		return nil, err
	}

	if err := srv.catalog.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Product added",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name),
		slog.String("actor", actor.Username),
	)

	return product, nil
}

// UpdateProduct replaces a product's mutable fields by id.
func (srv *inventoryService) UpdateProduct(ctx context.Context, actor *entity.Principal, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	product, err := srv.coerceDraft(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := srv.catalog.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.log(ctx).Info("Product updated",
		slog.Int64("product_id", id),
		slog.String("actor", actor.Username),
	)

	return product, nil
}

// DeleteProduct removes a product; deleting an unknown id succeeds silently.
func (srv *inventoryService) DeleteProduct(ctx context.Context, actor *entity.Principal, id int64) error {
	if err := requireManager(actor); err != nil {
		return err
	}

	if err := srv.catalog.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	srv.log(ctx).Info("Product deleted",
		slog.Int64("product_id", id),
		slog.String("actor", actor.Username),
	)

	return nil
}

// StageStock records a raw stock input without committing it.
func (srv *inventoryService) StageStock(ctx context.Context, actor *entity.Principal, id int64, raw string) error {
	if err := requireManager(actor); err != nil {
		return err
	}

	if err := srv.catalog.StageStock(ctx, id, raw); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrInvalidStockInput):
			return domainerrors.ErrValidationFailed.WithDetails("stock must be a non-negative integer")
		}

		return errors.Wrap(err, "failed to stage stock")
	}

	return nil
}

// CommitStock resolves the staged stock value per the configured policy.
func (srv *inventoryService) CommitStock(ctx context.Context, actor *entity.Principal, id int64) (int, error) {
	if err := requireManager(actor); err != nil {
		return 0, err
	}

	stock, err := srv.catalog.CommitStock(ctx, id, srv.stockPolicy)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return 0, domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrNoStagedStock):
			return 0, domainerrors.ErrNoStagedStock
		case errors.Is(err, repository.ErrInvalidStockInput):
			return 0, domainerrors.ErrValidationFailed.WithDetails("empty stock value rejected by policy")
		}

		return 0, errors.Wrap(err, "failed to commit stock")
	}
	srv.log(ctx).Info("Stock committed",
		slog.Int64("product_id", id),
		slog.Int("stock", stock),
		slog.String("actor", actor.Username),
	)

	return stock, nil
}

// Stats computes the dashboard aggregates over the current catalog.
func (srv *inventoryService) Stats(ctx context.Context, actor *entity.Principal) (*entity.CatalogStats, error) {
	if err := requireManager(actor); err != nil {
		return nil, err
	}

	products, err := srv.catalog.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	stats := &entity.CatalogStats{TotalProducts: len(products)}
	for _, product := range products {
		stats.TotalStockValue += product.Price * float64(product.Stock)
		if product.Stock < entity.LowStockThreshold {
			stats.LowStockCount++
		}
	}

	return stats, nil
}

// ExportCSV streams the catalog as CSV and returns the download filename.
func (srv *inventoryService) ExportCSV(ctx context.Context, actor *entity.Principal, w io.Writer) (string, error) {
	if err := requireManager(actor); err != nil {
		return "", err
	}

	products, err := srv.catalog.List(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to list products")
	}

	if err := export.WriteCSV(w, products); err != nil {
		return "", err
	}
	srv.log(ctx).Info("Inventory exported",
		slog.Int("products", len(products)),
		slog.String("actor", actor.Username),
	)

	return export.FileName(time.Now()), nil
}

// coerceDraft validates a product draft and coerces its numeric text fields.
func (srv *inventoryService) coerceDraft(input *usecase.ProductInput) (*entity.Product, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing product draft")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil || price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a non-negative number")
	}
	stock, err := strconv.Atoi(input.Stock)
	if err != nil || stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must be a non-negative integer")
	}

	return &entity.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       price,
		Image:       input.Image,
		Stock:       stock,
		Description: input.Description,
	}, nil
}
