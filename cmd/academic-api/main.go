// main is the entry point of the academic records API.
//
// STARTUP SEQUENCE:
//  1. Load .env (if present) and the configuration file
//  2. Initialise the logger
//  3. Open the database (SQLite or PostgreSQL) and migrate the tables
//  4. Build repositories → services → handlers
//  5. Start the HTTP server in a separate goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, close the pool
//
// RUNNING THE SERVER:
//
//	go run ./cmd/academic-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/academic-api
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/aanand-mishra/academic-api/internal/config"
	"github.com/aanand-mishra/academic-api/internal/entity"
	"github.com/aanand-mishra/academic-api/internal/http/router"
	"github.com/aanand-mishra/academic-api/internal/service"
	"github.com/aanand-mishra/academic-api/internal/storage"
	"github.com/aanand-mishra/academic-api/internal/storage/orm"
	"github.com/aanand-mishra/academic-api/internal/types"
)

const version = "1.0.0"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting academic-api",
		slog.String("env", cfg.Env),
		slog.String("version", version),
	)

	db, err := storage.Open(cfg, log)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer orm.Close(db)

	log.Info("storage initialised", slog.String("driver", cfg.Storage.Driver))

	handler, err := router.New(buildDeps(db, log))
	if err != nil {
		log.Error("failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	// ListenAndServe blocks, so it runs in its own goroutine and main
	// waits for a signal below.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped gracefully")
}

// buildDeps is the single composition point: every collaborator is
// passed explicitly through constructors.
func buildDeps(db *gorm.DB, log *slog.Logger) router.Deps {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return router.Deps{
		Log:         log,
		Students:    service.New[entity.Student](types.KindStudent, orm.NewRepository[entity.Student](db)),
		Subjects:    service.New[entity.Subject](types.KindSubject, orm.NewRepository[entity.Subject](db)),
		ClassGroups: service.New[entity.ClassGroup](types.KindClassGroup, orm.NewRepository[entity.ClassGroup](db)),
		Ready:       func(ctx context.Context) error { return orm.Ping(ctx, db) },
		Registry:    registry,
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging/production: JSON output, DEBUG in staging, INFO in prod.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
