package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/rpggio/bidintel/internal/export"
	"github.com/rpggio/bidintel/internal/mcp"
	"github.com/xuri/excelize/v2"
)

// RPCHandler dispatches a JSON-RPC method to the command surface.
type RPCHandler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// ProjectLister provides filtered project views for export.
type ProjectLister interface {
	List(ctx context.Context, raw project.RawCriteria) project.ListResult
}

// TalentLister provides filtered talent views for export.
type TalentLister interface {
	List(ctx context.Context, raw talent.RawCriteria) talent.ListResult
}

// Options configures the HTTP router. Nil components disable their routes.
type Options struct {
	Handler  RPCHandler
	Projects ProjectLister
	Talents  TalentLister
	MCP      http.Handler
	Logger   *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	handler  RPCHandler
	projects ProjectLister
	talents  TalentLister
	logger   *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	srv := &Server{
		handler:  opts.Handler,
		projects: opts.Projects,
		talents:  opts.Talents,
		logger:   logger,
	}

	r.Get("/health", srv.handleHealth)
	if srv.handler != nil {
		r.Post("/rpc", srv.handleRPC)
	}
	if srv.projects != nil {
		r.Get("/export/projects.xlsx", srv.handleExportProjects)
	}
	if srv.talents != nil {
		r.Get("/export/talents.xlsx", srv.handleExportTalents)
	}
	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
		r.Handle("/mcp/*", opts.MCP)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		code := ErrInvalidReq
		if errors.Is(err, errParse) {
			code = ErrParseCode
		}
		WriteError(w, nil, code, err.Error(), nil)
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		s.writeHandlerError(w, req, err)
		return
	}

	WriteResult(w, req.ID, result)
}

func (s *Server) writeHandlerError(w http.ResponseWriter, req Request, err error) {
	var apiErr *mcp.APIError
	switch {
	case errors.Is(err, mcp.ErrUnknownMethod):
		WriteError(w, req.ID, ErrMethodNotFound, err.Error(), nil)
	case errors.Is(err, mcp.ErrInvalidParams):
		WriteError(w, req.ID, ErrInvalidParams, err.Error(), nil)
	case errors.As(err, &apiErr):
		WriteError(w, req.ID, ErrApplication, apiErr.Message, apiErr)
	default:
		s.logger.Error("rpc failed", "method", req.Method, "error", err)
		WriteError(w, req.ID, ErrInternal, "internal error", nil)
	}
}

func (s *Server) handleExportProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result := s.projects.List(r.Context(), project.RawCriteria{
		Name:      q.Get("name"),
		Unit:      q.Get("unit"),
		MinAmount: q.Get("min_amount"),
		MaxAmount: q.Get("max_amount"),
		DateFrom:  q.Get("date_from"),
		DateTo:    q.Get("date_to"),
	})

	f, err := export.Projects(result.Projects)
	s.writeWorkbook(w, "projects.xlsx", f, err)
}

func (s *Server) handleExportTalents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result := s.talents.List(r.Context(), talent.RawCriteria{
		Name:      q.Get("name"),
		Expertise: q.Get("expertise"),
		Status:    q.Get("status"),
	})

	f, err := export.Talents(result.Talents)
	s.writeWorkbook(w, "talents.xlsx", f, err)
}

func (s *Server) writeWorkbook(w http.ResponseWriter, filename string, f *excelize.File, err error) {
	if err != nil {
		s.logger.Error("building workbook", "file", filename, "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	defer func() { _ = f.Close() }()

	// Serialize fully before committing to a status code.
	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("serializing workbook", "file", filename, "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("sending workbook", "file", filename, "error", err)
	}
}
