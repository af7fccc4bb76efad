package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpggio/bidintel/internal/domain/dashboard"
	"github.com/rpggio/bidintel/internal/domain/draft"
	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	List(ctx context.Context, raw project.RawCriteria) project.ListResult
}

// TalentService defines talent operations needed by MCP.
type TalentService interface {
	List(ctx context.Context, raw talent.RawCriteria) talent.ListResult
	Sync(ctx context.Context) (*talent.SyncResult, error)
}

// DashboardService defines dashboard operations needed by MCP.
type DashboardService interface {
	Overview(ctx context.Context) dashboard.Overview
}

// DraftService defines project form operations needed by MCP.
type DraftService interface {
	Open(ctx context.Context, initial draft.Patch) *draft.Draft
	Update(ctx context.Context, id string, patch draft.Patch) (*draft.Draft, error)
	Expand(ctx context.Context, id string) (*draft.Draft, error)
	Submit(ctx context.Context, id string) (*project.Project, error)
	Discard(ctx context.Context, id string) (*draft.Draft, error)
}

// ContentAnalyzer summarizes free-form project content.
type ContentAnalyzer interface {
	AnalyzeContent(ctx context.Context, content string) string
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects  ProjectService
	Talents   TalentService
	Dashboard DashboardService
	Drafts    DraftService
	Analyzer  ContentAnalyzer
}

// Handler exposes the domain services as named operations.
type Handler struct {
	svc Services
}

// NewHandler creates a new MCP handler.
func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListProjects(ctx context.Context, req ListProjectsParams) (ListProjectsResponse, error) {
	res := h.svc.Projects.List(ctx, req.criteria())
	projects := make([]ProjectResponse, 0, len(res.Projects))
	for _, p := range res.Projects {
		projects = append(projects, projectResponse(p))
	}
	return ListProjectsResponse{Version: res.Version, Total: res.Total, Count: res.Count, Projects: projects}, nil
}

func (h *Handler) CreateProject(ctx context.Context, req CreateProjectParams) (ProjectResponse, error) {
	proj, err := h.svc.Projects.Create(ctx, project.CreateRequest{
		ProjectName:         req.ProjectName,
		Keywords:            req.Keywords,
		ExtendedTerms:       req.ExtendedTerms,
		ProjectContent:      req.ProjectContent,
		ContractSigningDate: req.ContractSigningDate,
		ProjectEndDate:      req.ProjectEndDate,
		ContractAmount:      req.ContractAmount,
		ConstructionUnit:    req.ConstructionUnit,
		ContactPerson:       req.ContactPerson,
		ContactPhone:        req.ContactPhone,
	})
	if err != nil {
		return ProjectResponse{}, mapError(err)
	}
	return projectResponse(*proj), nil
}

func (h *Handler) ListTalents(ctx context.Context, req ListTalentsParams) (ListTalentsResponse, error) {
	res := h.svc.Talents.List(ctx, talent.RawCriteria{
		Name:      req.Name,
		Expertise: req.Expertise,
		Status:    req.Status,
	})
	return ListTalentsResponse{Version: res.Version, Total: res.Total, Count: res.Count, Talents: res.Talents}, nil
}

func (h *Handler) SyncTalents(ctx context.Context) (SyncTalentsResponse, error) {
	res, err := h.svc.Talents.Sync(ctx)
	if err != nil {
		return SyncTalentsResponse{}, mapError(err)
	}
	return SyncTalentsResponse{
		Version: res.Version,
		Synced:  res.Synced,
		Message: res.Message,
		Talents: res.Talents,
	}, nil
}

func (h *Handler) GetOverview(ctx context.Context) (OverviewResponse, error) {
	ov := h.svc.Dashboard.Overview(ctx)
	return OverviewResponse{Version: ov.Version, Stats: ov.Stats, Chart: ov.Chart}, nil
}

func (h *Handler) OpenDraft(ctx context.Context, req OpenDraftParams) (DraftResponse, error) {
	return draftResponse(h.svc.Drafts.Open(ctx, req.Fields)), nil
}

func (h *Handler) UpdateDraft(ctx context.Context, req UpdateDraftParams) (DraftResponse, error) {
	d, err := h.svc.Drafts.Update(ctx, req.DraftID, req.Fields)
	if err != nil {
		return DraftResponse{}, mapError(err)
	}
	return draftResponse(d), nil
}

func (h *Handler) ExpandTerms(ctx context.Context, req DraftIDParams) (DraftResponse, error) {
	d, err := h.svc.Drafts.Expand(ctx, req.DraftID)
	if err != nil {
		return DraftResponse{}, mapError(err)
	}
	return draftResponse(d), nil
}

func (h *Handler) SubmitDraft(ctx context.Context, req DraftIDParams) (ProjectResponse, error) {
	proj, err := h.svc.Drafts.Submit(ctx, req.DraftID)
	if err != nil {
		return ProjectResponse{}, mapError(err)
	}
	return projectResponse(*proj), nil
}

func (h *Handler) DiscardDraft(ctx context.Context, req DraftIDParams) (DiscardDraftResponse, error) {
	d, err := h.svc.Drafts.Discard(ctx, req.DraftID)
	if err != nil {
		return DiscardDraftResponse{}, mapError(err)
	}
	return DiscardDraftResponse{ID: d.ID, Status: d.Status}, nil
}

func (h *Handler) AnalyzeContent(ctx context.Context, req AnalyzeContentParams) (AnalyzeContentResponse, error) {
	if req.Content == "" {
		return AnalyzeContentResponse{}, &APIError{Code: "INVALID_INPUT", Message: "content is required"}
	}
	return AnalyzeContentResponse{Analysis: h.svc.Analyzer.AnalyzeContent(ctx, req.Content)}, nil
}

// Handle dispatches a named method with JSON params, for the JSON-RPC transport.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "list_projects":
		return dispatch(ctx, params, h.ListProjects)
	case "create_project":
		return dispatch(ctx, params, h.CreateProject)
	case "list_talents":
		return dispatch(ctx, params, h.ListTalents)
	case "sync_talents":
		return h.SyncTalents(ctx)
	case "get_overview":
		return h.GetOverview(ctx)
	case "open_draft":
		return dispatch(ctx, params, h.OpenDraft)
	case "update_draft":
		return dispatch(ctx, params, h.UpdateDraft)
	case "expand_terms":
		return dispatch(ctx, params, h.ExpandTerms)
	case "submit_draft":
		return dispatch(ctx, params, h.SubmitDraft)
	case "discard_draft":
		return dispatch(ctx, params, h.DiscardDraft)
	case "analyze_content":
		return dispatch(ctx, params, h.AnalyzeContent)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

func dispatch[In, Out any](ctx context.Context, params json.RawMessage, fn func(context.Context, In) (Out, error)) (any, error) {
	var req In
	if err := decodeParams(params, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return fn(ctx, req)
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	return json.Unmarshal(params, out)
}
