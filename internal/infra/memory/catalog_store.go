// Package memory provides in-memory implementations of the repository
// interfaces. The storefront deliberately has no persistence: everything
// lives for the lifetime of the process and is seeded at construction.
package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"
)

// CatalogStore is the in-memory CatalogRepository. Products are kept in a
// slice to preserve insertion order; staged stock edits are kept aside so a
// half-typed value never corrupts the effective stock level.
type CatalogStore struct {
	mu          sync.RWMutex
	products    []entity.Product
	ids         map[int64]struct{}
	stagedStock map[int64]string
}

// NewCatalogStore builds a catalog seeded with the given initial products.
// Seed ids are taken as-is and must be unique.
func NewCatalogStore(seed []entity.Product) repository.CatalogRepository {
	store := &CatalogStore{
		products:    make([]entity.Product, 0, len(seed)),
		ids:         make(map[int64]struct{}, len(seed)),
		stagedStock: make(map[int64]string),
	}
	for _, product := range seed {
		store.products = append(store.products, product)
		store.ids[product.ID] = struct{}{}
	}

	return store
}

// List returns a copy of all products in insertion order.
func (s *CatalogStore) List(_ context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, len(s.products))
	copy(out, s.products)

	return out, nil
}

// FindByID retrieves a single product by its unique id.
func (s *CatalogStore) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			product := s.products[i]

			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// Create persists a new product, assigning it a fresh timestamp-derived id.
func (s *CatalogStore) Create(_ context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextID()
	s.products = append(s.products, *product)
	s.ids[product.ID] = struct{}{}

	return nil
}

// nextID derives a unique id from the millisecond clock, bumping on
// collision so two products created in the same millisecond stay distinct.
// Callers must hold the write lock.
func (s *CatalogStore) nextID() int64 {
	id := time.Now().UnixMilli()
	for {
		if _, taken := s.ids[id]; !taken {
			return id
		}
		id++
	}
}

// Update replaces the mutable fields of an existing product by id.
// The product keeps its position in the listing.
func (s *CatalogStore) Update(_ context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = *product

			return nil
		}
	}

	return repository.ErrProductNotFound
}

// Delete removes a product by id. Absent ids are ignored.
func (s *CatalogStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			delete(s.ids, id)
			delete(s.stagedStock, id)

			return nil
		}
	}

	return nil
}

// StageStock records a raw stock input for a product without committing it.
func (s *CatalogStore) StageStock(_ context.Context, id int64, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; !ok {
		return repository.ErrProductNotFound
	}

	raw = strings.TrimSpace(raw)
	if raw != "" {
		if _, err := parseStock(raw); err != nil {
			return err
		}
	}
	s.stagedStock[id] = raw

	return nil
}

// StagedStock returns the currently staged raw value for a product.
func (s *CatalogStore) StagedStock(_ context.Context, id int64) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.ids[id]; !ok {
		return "", false, repository.ErrProductNotFound
	}
	raw, ok := s.stagedStock[id]

	return raw, ok, nil
}

// CommitStock resolves the staged value for a product into a definite stock
// level according to the empty-value policy.
func (s *CatalogStore) CommitStock(_ context.Context, id int64, policy entity.StockEmptyPolicy) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.products {
		if s.products[i].ID == id {
			index = i

			break
		}
	}
	if index < 0 {
		return 0, repository.ErrProductNotFound
	}

	raw, ok := s.stagedStock[id]
	if !ok {
		return 0, repository.ErrNoStagedStock
	}

	if raw == "" {
		if policy == entity.StockEmptyReject {
			// The staged value is kept so the operator can correct it.
			return 0, repository.ErrInvalidStockInput
		}
		delete(s.stagedStock, id)

		return s.products[index].Stock, nil
	}

	stock, err := parseStock(raw)
	if err != nil {
		return 0, err
	}
	s.products[index].Stock = stock
	delete(s.stagedStock, id)

	return stock, nil
}

// parseStock parses a raw stock input into a non-negative integer.
func parseStock(raw string) (int, error) {
	stock, err := strconv.Atoi(raw)
	if err != nil || stock < 0 {
		return 0, repository.ErrInvalidStockInput
	}

	return stock, nil
}
