package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"boutique/config"
	"boutique/internal/delivery"
	"boutique/internal/delivery/http"
	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/router/handler"
	"boutique/internal/domain/service"
	"boutique/internal/infra/auth"
	logs "boutique/internal/infra/log"
	"boutique/internal/infra/memory"
	"boutique/internal/infra/payment"
	"boutique/internal/infra/pubsub"
	"boutique/internal/infra/qrcode"
	"boutique/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewSeededCatalog,
			memory.NewSessionStore,
			auth.NewCredentialStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			payment.NewSimulatedGateway,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	payee, payeeName := "", ""
	if cfg.Checkout != nil {
		payee = cfg.Checkout.UPIPayee
		payeeName = cfg.Checkout.UPIPayeeName
	}
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(payee, payeeName, 256, "M")
	}

	return qrcode.NewQRCodeService(payee, payeeName, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewInventoryService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewCheckoutService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewAuthHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewCheckoutHandler,
			handler.NewInventoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
