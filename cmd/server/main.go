package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/bidintel/internal/app"
	"github.com/rpggio/bidintel/internal/config"
	"github.com/rpggio/bidintel/internal/seed"
	"github.com/rpggio/bidintel/internal/sqlite"
	"github.com/rpggio/bidintel/internal/store"
	"github.com/rpggio/bidintel/internal/suggest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	if logPath := os.Getenv("BIDINTEL_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var db *sqlite.DB
	if cfg.DB.Path != "" {
		if err := ensureDBDir(cfg.DB.Path); err != nil {
			logger.Error("failed to prepare database path", "error", err)
			os.Exit(1)
		}
		db, err = sqlite.New(cfg.DB.Path)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.RunMigrations(); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("no database path configured, records are kept in memory")
	}

	var seeder store.Seeder
	if !cfg.Seed.Disabled {
		seeder = seed.FromFile(cfg.Seed.Path)
	}

	application, err := app.New(ctx, app.Options{
		DB:             db,
		Seeder:         seeder,
		Generator:      newGenerator(ctx, cfg.Suggest, logger),
		SuggestTimeout: cfg.Suggest.Timeout,
		Logger:         logger,
	})
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(ctx, logger, application.MCP)
	} else {
		runHTTPMode(ctx, logger, application.Router(), cfg.Server.Host, cfg.Server.Port)
	}
}

func newGenerator(ctx context.Context, cfg config.SuggestConfig, logger *slog.Logger) suggest.Generator {
	if cfg.APIKey == "" {
		logger.Warn("no API key configured, term expansion and content analysis are disabled")
		return suggest.Disabled{}
	}
	gen, err := suggest.NewGenAIGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		logger.Warn("text generation unavailable", "error", err)
		return suggest.Disabled{}
	}
	logger.Info("text generation enabled", "model", gen.Name())
	return gen
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
	logger.Info("shutting down")
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, handler http.Handler, host string, port int) {
	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(ctx, logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(ctx context.Context, logger *slog.Logger, server *http.Server) {
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
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
