package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bizapi/internal/company"
	"bizapi/internal/config"
	"bizapi/internal/database"
	handlers "bizapi/internal/http/handler"
	"bizapi/internal/http/httperr"
	"bizapi/internal/http/middleware"
	"bizapi/internal/module"
	"bizapi/internal/otel"
	"bizapi/internal/worktype"
)

func main() {
	// Startup is an explicit sequence: load configuration (pure), initialize
	// observability, open the shared pool, construct modules, serve.
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(ctx)

	// The pool handle is shared by every module. nil means the durable store
	// is unconfigured or unreachable; each module applies the fallback policy.
	var db *sql.DB
	if cfg.Database.URL != "" {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			logger.Warn("durable store unreachable", zap.Error(err))
			db = nil
		} else {
			defer db.Close()
		}
	} else {
		logger.Info("DATABASE_URL not set, durable store unconfigured")
	}

	env := module.Env{DB: db, Policy: cfg.Fallback, Log: logger}

	// Module construction is fail-fast: a module whose policy is fatal on
	// backend failure aborts startup before the listener binds.
	registry := module.NewRegistry()

	companies, err := company.NewModule(ctx, env)
	if err != nil {
		logger.Fatal("module initialization failed", zap.Error(err))
	}
	registry.Add(companies)

	worktypes, err := worktype.NewModule(ctx, env)
	if err != nil {
		logger.Fatal("module initialization failed", zap.Error(err))
	}
	registry.Add(worktypes)

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.ErrorHandler(logger),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(otelfiber.Middleware())
	app.Use(cors.New())

	promReg := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(promReg)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	app.Get("/health", handlers.HealthCheck(db))
	app.Get("/healthz", handlers.LivenessProbe())

	if err := registry.Mount(app); err != nil {
		logger.Fatal("route merge failed", zap.Error(err))
	}

	addr := ":" + cfg.Port
	logger.Info("server listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
