package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `bidintel tracks bidding projects and the domain experts ("talents") linked to them.

Core concepts:
- Project: a bidding record with keywords, contract amount (units of 10,000), signing/end dates (YYYY-MM-DD) and the construction unit.
- Talent: an expert with a social security status (Updated or Pending) and related project names.
- Version: every write bumps a store version; list and overview results report the version they were read from.
- Draft: one open project creation form. Term expansion runs per draft, one at a time.

Default workflow:
1) Orient: get_overview for totals and the contract value chart.
2) Browse: list_projects / list_talents with filters. Filters are forgiving: a bad number or date is ignored, never an error.
3) Create: open_draft, update_draft, expand_terms (needs projectName and keywords), then submit_draft.
   Use create_project when no term expansion is needed.
4) Maintenance: sync_talents marks every talent Updated with today's date.

Docs:
- bidintel://docs/index
- bidintel://docs/filters
- bidintel://docs/drafts
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "bidintel://docs/index",
		Name:        "docs_index",
		Title:       "bidintel docs index",
		Description: "Entry point: available tools and which doc to read when.",
		Content: `# bidintel: Docs Index

## Tools

| Tool | Purpose |
|------|---------|
| get_overview | Stats over all records plus chart series |
| list_projects | Filtered project view |
| list_talents | Filtered talent view |
| create_project | Direct project creation |
| open_draft / update_draft / expand_terms / submit_draft / discard_draft | Project creation form |
| sync_talents | Bulk status update |
| analyze_content | Summarize project content for bid evaluation |

## Read next

- Filtering semantics: bidintel://docs/filters
- Draft lifecycle and term expansion: bidintel://docs/drafts

## Limitations

- Talent related projects are matched by name only. Renamed or missing projects are not reported.
- Term expansion and analysis never fail outright; on error the text fields hold a fixed error message.
`,
	},
	{
		URI:         "bidintel://docs/filters",
		Name:        "docs_filters",
		Title:       "Filtering semantics",
		Description: "How project and talent filters match records.",
		Content: `# Filtering

All criteria combine with AND. Results keep the stored order. Empty criteria return everything.

## Projects

- name, unit: case-insensitive substring.
- min_amount, max_amount: inclusive; a blank or non-numeric value means no bound.
- date_from, date_to: inclusive bounds on the contract signing date (YYYY-MM-DD or RFC 3339).
  A record whose signing date can't be parsed is excluded only when a date bound is set.

## Talents

- name, expertise: case-insensitive substring.
- status: All, Updated or Pending. Anything else behaves like All.
`,
	},
	{
		URI:         "bidintel://docs/drafts",
		Name:        "docs_drafts",
		Title:       "Draft lifecycle",
		Description: "Project creation forms, term expansion and stale results.",
		Content: `# Drafts

open -> (update_draft | expand_terms)* -> submitted | discarded

- expand_terms requires non-blank projectName and keywords (MISSING_EXPANSION_INPUT).
- Only one expansion may run per draft (EXPANSION_IN_FLIGHT). Other drafts are unaffected.
- Other fields stay editable while an expansion runs.
- If the draft is submitted or discarded, or projectName, keywords or extendedTerms change
  before the expansion returns, the result is dropped (STALE_EXPANSION).
- submit_draft validates like create_project; an invalid draft stays open.
- Closed drafts stay readable for 15 minutes, then return DRAFT_NOT_FOUND.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
