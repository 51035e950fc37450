package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/fieldops/construction-api/internal/api/handler"
	"github.com/fieldops/construction-api/internal/core/domain"
	"github.com/fieldops/construction-api/internal/core/schema"
	"github.com/fieldops/construction-api/internal/core/service"
	"github.com/fieldops/construction-api/internal/infrastructure/config"
	mongostore "github.com/fieldops/construction-api/internal/infrastructure/db/mongo"
	"github.com/fieldops/construction-api/internal/infrastructure/http/handlers"
	"github.com/fieldops/construction-api/internal/infrastructure/security"
)

// NewRouter builds the Echo instance with every resource mounted under
// /api. Each entity contributes one schema declaration and one request
// codec; the CRUD pipeline between them is shared.
func NewRouter(ctx context.Context, db *mongodriver.Database, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fieldops"))

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handlers.NewHealthHandler()
	readyHandler := handlers.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", readyHandler.Readiness) // readiness – is the store reachable?

	// --- Resources ---
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	api := e.Group("/api")

	if err := mount[domain.Project, *domain.Project](ctx, api, db, schema.Project(), handler.ProjectCodec(), log); err != nil {
		return nil, err
	}
	if err := mount[domain.User, *domain.User](ctx, api, db, schema.User(hasher), handler.UserCodec(), log); err != nil {
		return nil, err
	}
	if err := mount[domain.Equipment, *domain.Equipment](ctx, api, db, schema.Equipment(), handler.EquipmentCodec(), log); err != nil {
		return nil, err
	}
	if err := mount[domain.Expense, *domain.Expense](ctx, api, db, schema.Expense(), handler.ExpenseCodec(), log); err != nil {
		return nil, err
	}

	return e, nil
}

// mount wires one entity end to end: store, unique indexes, service,
// routes.
func mount[T any, P interface {
	*T
	domain.Entity
}](ctx context.Context, g *echo.Group, db *mongodriver.Database, def schema.Definition[T], codec handler.Codec[T], log zerolog.Logger) error {
	store := mongostore.NewStore[T, P](db, def.Collection)
	if err := store.EnsureIndexes(ctx, def.Unique); err != nil {
		return fmt.Errorf("ensure indexes for %s: %w", def.Name, err)
	}
	svc := service.NewResource(def, store, log)
	handler.NewResource(def.Name, svc, codec).Register(g)
	return nil
}
