package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rpggio/bidintel/internal/app"
	"github.com/rpggio/bidintel/internal/seed"
	"github.com/rpggio/bidintel/internal/sqlite"
	"github.com/rpggio/bidintel/internal/suggest"
	"github.com/stretchr/testify/require"
)

// TestServer runs the full HTTP surface over an in-memory database seeded
// with the default dataset.
type TestServer struct {
	Server    *httptest.Server
	DB        *sqlite.DB
	App       *app.App
	Generator *Generator
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	gen := &Generator{}
	a, err := app.New(context.Background(), app.Options{
		DB:        db,
		Seeder:    seed.Default(),
		Generator: gen,
	})
	require.NoError(t, err)

	server := httptest.NewServer(a.Router())

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:    server,
		DB:        db,
		App:       a,
		Generator: gen,
	}
}

// Generator is a scripted suggest.Generator. With no reply set it echoes a
// fixed term list.
type Generator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

// Reply sets the text or error returned by subsequent calls.
func (g *Generator) Reply(text string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reply = text
	g.err = err
}

// Prompts returns every prompt received so far.
func (g *Generator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

// Generate implements suggest.Generator.
func (g *Generator) Generate(_ context.Context, prompt string, _ suggest.Options) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	if g.reply == "" {
		return "Smart Sensors, Edge Computing, Digital Twin", nil
	}
	return g.reply, nil
}
