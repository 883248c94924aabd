package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"boutique/config"
	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/infra/memory"
)

// discardLogger keeps service log output out of test runs.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func manager() *entity.Principal {
	return &entity.Principal{Username: "admin", Role: entity.RoleManager}
}

func customer() *entity.Principal {
	return &entity.Principal{Username: "user", Role: entity.RoleCustomer}
}

// testCatalog returns a small catalog with one healthy, one low and one
// out-of-stock product.
func testCatalog() repository.CatalogRepository {
	return memory.NewCatalogStore([]entity.Product{
		{ID: 1, Name: "Diamond Stud Earrings", Category: "Earrings", Price: 299, Stock: 10},
		{ID: 2, Name: "Ruby Red Lipstick", Category: "Lipstick", Price: 35, Stock: 3},
		{ID: 3, Name: "Pearl Hair Clip", Category: "Hair Clips", Price: 25, Stock: 0},
	})
}

func testConfig(stockPolicy string) *config.Config {
	cfg := &config.Config{}
	cfg.Inventory = &config.InventoryConfig{StockEmptyPolicy: stockPolicy}

	return cfg
}

// fakeGateway is a controllable PaymentGateway. The hook runs during
// Authorize, outside any session lock, which lets tests interleave other
// operations with an in-flight settlement.
type fakeGateway struct {
	mu         sync.Mutex
	settlement *service.Settlement
	err        error
	hook       func()
	calls      int
}

func (g *fakeGateway) Authorize(_ context.Context, _ *service.ChargeRequest) (*service.Settlement, error) {
	g.mu.Lock()
	g.calls++
	hook := g.hook
	g.mu.Unlock()

	if hook != nil {
		hook()
	}
	if g.err != nil {
		return nil, g.err
	}
	if g.settlement != nil {
		return g.settlement, nil
	}

	return &service.Settlement{Approved: true, SettledAt: time.Now()}, nil
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.calls
}

// capturePublisher records published order events.
type capturePublisher struct {
	mu     sync.Mutex
	events []*service.OrderEvent
}

func (p *capturePublisher) PublishOrderPlaced(_ context.Context, event *service.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturePublisher) Close() error {
	return nil
}

func (p *capturePublisher) published() []*service.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*service.OrderEvent, len(p.events))
	copy(out, p.events)

	return out
}

// fakeQRCode renders a deterministic payload instead of a real PNG.
type fakeQRCode struct{}

func (fakeQRCode) GenerateUPIQR(_ float64, reference string) ([]byte, error) {
	return []byte("qr:" + reference), nil
}
