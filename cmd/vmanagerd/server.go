package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/vmanager/internal/config"
	"github.com/vmunix/vmanager/internal/migrations"
	"github.com/vmunix/vmanager/internal/server"
	"github.com/vmunix/vmanager/internal/storeserver"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// openStore opens the SQLite database at path, applies the schema and
// seeds it from seedPath when the database is empty.
func openStore(ctx context.Context, path, seedPath string, logger *slog.Logger) (*sql.DB, *storeserver.Store, error) {
	if dbDir := filepath.Dir(path); dbDir != "" {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.ExecContext(ctx, migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	store := storeserver.NewStore(db)
	if seedPath != "" {
		data, err := storeserver.ReadSeedFile(seedPath)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		if _, err := store.SeedIfEmpty(ctx, data, logger); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	return db, store, nil
}

func newHandler(store *storeserver.Store, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	storeserver.New(store, logger.With("component", "store")).RegisterRoutes(mux)
	return logRequests(mux, logger.With("component", "http"))
}

func runServer(configPath, seedPath string) error {
	cfg, foundPath, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, store, err := openStore(ctx, cfg.Database.Path, seedPath, logger.With("component", "seed"))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	logger.Info("server starting",
		"addr", addr,
		"config", foundPath,
		"database", cfg.Database.Path,
		"seed", seedPath,
		"log_level", cfg.Server.LogLevel,
	)

	runner := server.NewRunner(newHandler(store, logger), server.Config{Addr: addr}, logger.With("component", "runner"))
	if err := runner.Run(ctx); err != nil {
		return err
	}
	return nil
}
