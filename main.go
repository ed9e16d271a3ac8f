package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/event-ticketing/config"
	"github.com/Eursukkul/event-ticketing/internal/catalog"
	"github.com/Eursukkul/event-ticketing/internal/clock"
	"github.com/Eursukkul/event-ticketing/internal/handler"
	"github.com/Eursukkul/event-ticketing/internal/middleware"
	"github.com/Eursukkul/event-ticketing/internal/navigation"
	"github.com/Eursukkul/event-ticketing/internal/repository"
	"github.com/Eursukkul/event-ticketing/internal/service"
	"github.com/Eursukkul/event-ticketing/internal/store"
	"github.com/Eursukkul/event-ticketing/pkg/database"
	"github.com/Eursukkul/event-ticketing/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.Real()
	seed, err := loadCatalog(ctx, cfg, clk.Now(), logger)
	if err != nil {
		return err
	}
	if err := seed.Validate(); err != nil {
		return err
	}

	st, err := store.New(seed.Users, seed.Events, store.WithClock(clk))
	if err != nil {
		return err
	}

	// A nil publisher turns domain events off.
	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		defer p.Close()
		publisher = p
	}

	flow := service.NewBookingFlow(st, clk, cfg.BookingDelay, publisher, logger)
	eventSvc := service.NewEventService(st, flow, publisher, logger)
	nav := navigation.New()

	e := newServer(logger, st, eventSvc, flow, nav)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("event ticketing service starting",
			"port", cfg.ServerPort,
			"users", len(seed.Users),
			"events", len(seed.Events),
			"booking_delay", cfg.BookingDelay,
		)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newServer(logger *slog.Logger, st *store.Store, eventSvc service.EventService, flow service.BookingFlow, nav *navigation.Navigator) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "event-ticketing"})
	})

	api := e.Group("/api/v1")
	handler.NewSessionHandler(eventSvc, nav, st).RegisterRoutes(api.Group("/session"))
	events := api.Group("/events")
	handler.NewEventHandler(eventSvc, flow, st, logger).RegisterRoutes(events)
	handler.NewBookingHandler(flow).RegisterRoutes(events)
	handler.NewDashboardHandler(st).RegisterRoutes(api.Group("/dashboard"))

	return e
}

// loadCatalog picks the seed source: the Postgres catalog, then a YAML
// file, then the built-in demo data.
func loadCatalog(ctx context.Context, cfg *config.Config, now time.Time, logger *slog.Logger) (catalog.Catalog, error) {
	switch {
	case cfg.CatalogDSN != "":
		db, err := database.NewPostgresDB(cfg.CatalogDSN)
		if err != nil {
			return catalog.Catalog{}, err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				logger.Warn("failed to close catalog database", "error", err)
			}
		}()
		logger.Info("loading catalog from database")
		return catalog.FromRepository(ctx, repository.NewCatalogRepository(db))
	case cfg.SeedFile != "":
		logger.Info("loading catalog from file", "path", cfg.SeedFile)
		return catalog.LoadFile(cfg.SeedFile, now)
	}
	logger.Info("using built-in demo catalog")
	return catalog.Default(now), nil
}
