package mcp

import (
	"time"

	"github.com/rpggio/bidintel/internal/domain/dashboard"
	"github.com/rpggio/bidintel/internal/domain/draft"
	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
)

type ListProjectsParams struct {
	Name      string `json:"name,omitempty" jsonschema:"case-insensitive substring of the project name"`
	Unit      string `json:"unit,omitempty" jsonschema:"case-insensitive substring of the construction unit"`
	MinAmount string `json:"min_amount,omitempty" jsonschema:"inclusive lower bound on contract amount (unit 10k); non-numeric is ignored"`
	MaxAmount string `json:"max_amount,omitempty" jsonschema:"inclusive upper bound on contract amount (unit 10k); non-numeric is ignored"`
	DateFrom  string `json:"date_from,omitempty" jsonschema:"inclusive lower bound on signing date (YYYY-MM-DD)"`
	DateTo    string `json:"date_to,omitempty" jsonschema:"inclusive upper bound on signing date (YYYY-MM-DD)"`
}

func (p ListProjectsParams) criteria() project.RawCriteria {
	return project.RawCriteria{
		Name:      p.Name,
		Unit:      p.Unit,
		MinAmount: p.MinAmount,
		MaxAmount: p.MaxAmount,
		DateFrom:  p.DateFrom,
		DateTo:    p.DateTo,
	}
}

type CreateProjectParams struct {
	ProjectName         string  `json:"projectName" jsonschema:"project display name"`
	Keywords            string  `json:"keywords,omitempty" jsonschema:"comma separated keywords"`
	ExtendedTerms       string  `json:"extendedTerms,omitempty"`
	ProjectContent      string  `json:"projectContent,omitempty"`
	ContractSigningDate string  `json:"contractSigningDate,omitempty" jsonschema:"YYYY-MM-DD"`
	ProjectEndDate      string  `json:"projectEndDate,omitempty" jsonschema:"YYYY-MM-DD"`
	ContractAmount      float64 `json:"contractAmount,omitempty" jsonschema:"non-negative amount in units of 10k"`
	ConstructionUnit    string  `json:"constructionUnit,omitempty"`
	ContactPerson       string  `json:"contactPerson,omitempty"`
	ContactPhone        string  `json:"contactPhone,omitempty"`
}

type ListTalentsParams struct {
	Name      string `json:"name,omitempty" jsonschema:"case-insensitive substring of the talent name"`
	Expertise string `json:"expertise,omitempty" jsonschema:"case-insensitive substring of the expertise"`
	Status    string `json:"status,omitempty" jsonschema:"All, Updated or Pending"`
}

type OpenDraftParams struct {
	Fields draft.Patch `json:"fields,omitempty" jsonschema:"initial form values"`
}

type UpdateDraftParams struct {
	DraftID string      `json:"draft_id" jsonschema:"draft id returned by open_draft"`
	Fields  draft.Patch `json:"fields" jsonschema:"form values to change; omitted fields are kept"`
}

type DraftIDParams struct {
	DraftID string `json:"draft_id" jsonschema:"draft id returned by open_draft"`
}

type AnalyzeContentParams struct {
	Content string `json:"content" jsonschema:"project content to summarize"`
}

type EmptyParams struct{}

// ProjectResponse is a project with its parsed keyword tags.
type ProjectResponse struct {
	ID                  string   `json:"id"`
	ProjectName         string   `json:"projectName"`
	Keywords            string   `json:"keywords"`
	Tags                []string `json:"tags"`
	ExtendedTerms       string   `json:"extendedTerms"`
	ProjectContent      string   `json:"projectContent"`
	ContractSigningDate string   `json:"contractSigningDate"`
	ProjectEndDate      string   `json:"projectEndDate"`
	ContractAmount      float64  `json:"contractAmount"`
	ConstructionUnit    string   `json:"constructionUnit"`
	ContactPerson       string   `json:"contactPerson"`
	ContactPhone        string   `json:"contactPhone"`
}

type ListProjectsResponse struct {
	Version  uint64            `json:"version"`
	Total    int               `json:"total"`
	Count    int               `json:"count"`
	Projects []ProjectResponse `json:"projects"`
}

type ListTalentsResponse struct {
	Version uint64          `json:"version"`
	Total   int             `json:"total"`
	Count   int             `json:"count"`
	Talents []talent.Talent `json:"talents"`
}

type SyncTalentsResponse struct {
	Version uint64          `json:"version"`
	Synced  int             `json:"synced"`
	Message string          `json:"message"`
	Talents []talent.Talent `json:"talents"`
}

type OverviewResponse struct {
	Version uint64                 `json:"version"`
	Stats   dashboard.Stats        `json:"stats"`
	Chart   []dashboard.ChartPoint `json:"chart"`
}

// DraftResponse is a draft with timestamps rendered as RFC 3339 strings.
type DraftResponse struct {
	ID         string       `json:"id"`
	Status     draft.Status `json:"status"`
	Fields     draft.Fields `json:"fields"`
	Expanding  bool         `json:"expanding"`
	Generation uint64       `json:"generation"`
	ProjectID  string       `json:"projectId,omitempty"`
	CreatedAt  string       `json:"createdAt"`
	UpdatedAt  string       `json:"updatedAt"`
	ClosedAt   string       `json:"closedAt,omitempty"`
}

type DiscardDraftResponse struct {
	ID     string       `json:"id"`
	Status draft.Status `json:"status"`
}

type AnalyzeContentResponse struct {
	Analysis string `json:"analysis"`
}

func projectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:                  p.ID,
		ProjectName:         p.ProjectName,
		Keywords:            p.Keywords,
		Tags:                p.Tags(),
		ExtendedTerms:       p.ExtendedTerms,
		ProjectContent:      p.ProjectContent,
		ContractSigningDate: p.ContractSigningDate,
		ProjectEndDate:      p.ProjectEndDate,
		ContractAmount:      p.ContractAmount,
		ConstructionUnit:    p.ConstructionUnit,
		ContactPerson:       p.ContactPerson,
		ContactPhone:        p.ContactPhone,
	}
}

func draftResponse(d *draft.Draft) DraftResponse {
	resp := DraftResponse{
		ID:         d.ID,
		Status:     d.Status,
		Fields:     d.Fields,
		Expanding:  d.Expanding,
		Generation: d.Generation,
		ProjectID:  d.ProjectID,
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.Format(time.RFC3339),
	}
	if d.ClosedAt != nil {
		resp.ClosedAt = d.ClosedAt.Format(time.RFC3339)
	}
	return resp
}
