// Package app assembles the record store, domain services and command surfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/bidintel/internal/domain/dashboard"
	"github.com/rpggio/bidintel/internal/domain/draft"
	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/rpggio/bidintel/internal/mcp"
	"github.com/rpggio/bidintel/internal/sqlite"
	"github.com/rpggio/bidintel/internal/store"
	"github.com/rpggio/bidintel/internal/suggest"
	"github.com/rpggio/bidintel/internal/transport"
)

// Options configures an App.
type Options struct {
	// DB persists records when set. Nil keeps everything in memory.
	DB *sqlite.DB
	// Seeder fills an empty store on startup. Nil starts empty.
	Seeder store.Seeder
	// Generator backs term expansion and content analysis. Nil disables both.
	Generator      suggest.Generator
	SuggestTimeout time.Duration
	Logger         *slog.Logger
}

// App holds the wired components of a running server.
type App struct {
	Store     *store.Store
	Projects  *project.Service
	Talents   *talent.Service
	Dashboard *dashboard.Service
	Drafts    *draft.Service
	Suggest   *suggest.Client
	Handler   *mcp.Handler
	MCP       *sdkmcp.Server

	logger *slog.Logger
}

// New loads the store and builds every service on top of it.
func New(ctx context.Context, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var persist store.Persister
	if opts.DB != nil {
		persist = sqlite.NewRepository(opts.DB)
	}
	st := store.New(persist, logger)
	snap, err := st.Load(ctx, opts.Seeder)
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}
	logger.Info("records loaded",
		"projects", len(snap.Projects),
		"talents", len(snap.Talents),
		"persistent", persist != nil,
	)

	suggestClient := suggest.NewClient(opts.Generator, opts.SuggestTimeout, logger)
	projectSvc := project.NewService(st, logger)

	a := &App{
		Store:     st,
		Projects:  projectSvc,
		Talents:   talent.NewService(st, logger),
		Dashboard: dashboard.NewService(st, logger),
		Drafts:    draft.NewService(suggestClient, projectSvc, logger),
		Suggest:   suggestClient,
		logger:    logger,
	}

	services := mcp.Services{
		Projects:  a.Projects,
		Talents:   a.Talents,
		Dashboard: a.Dashboard,
		Drafts:    a.Drafts,
		Analyzer:  a.Suggest,
	}
	a.Handler = mcp.NewHandler(services)
	a.MCP = mcp.NewServer(mcp.Config{Services: services, Logger: logger})

	return a, nil
}

// Router returns the HTTP surface: JSON-RPC, exports, health and the
// streamable MCP endpoint.
func (a *App) Router() http.Handler {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return a.MCP },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)

	return transport.NewServer(transport.Options{
		Handler:  a.Handler,
		Projects: a.Projects,
		Talents:  a.Talents,
		MCP:      mcpHandler,
		Logger:   a.logger,
	})
}
