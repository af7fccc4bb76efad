package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools exposes every handler operation as an MCP tool.
func registerTools(server *sdkmcp.Server, h *Handler) {
	// Projects
	addTool(server, "list_projects",
		"List bidding projects matching optional name, unit, amount range and signing date range filters. All filters combine with AND; malformed bounds are ignored.",
		h.ListProjects)
	addTool(server, "create_project",
		"Create a project record directly. projectName is required; the id is generated.",
		h.CreateProject)

	// Talents
	addTool(server, "list_talents",
		"List talent records matching optional name, expertise and social security status filters.",
		h.ListTalents)
	addTool(server, "sync_talents",
		"Mark every talent's social security status as Updated and stamp today's date.",
		func(ctx context.Context, _ EmptyParams) (SyncTalentsResponse, error) {
			return h.SyncTalents(ctx)
		})

	// Dashboard
	addTool(server, "get_overview",
		"Get total projects, total contract value, talent count, pending compliance count and the contract value chart series.",
		func(ctx context.Context, _ EmptyParams) (OverviewResponse, error) {
			return h.GetOverview(ctx)
		})

	// Project form drafts
	addTool(server, "open_draft",
		"Open a new project creation form. Returns a draft id used by the other draft tools.",
		h.OpenDraft)
	addTool(server, "update_draft",
		"Change fields of an open draft. Changing projectName, keywords or extendedTerms cancels the effect of a pending expansion.",
		h.UpdateDraft)
	addTool(server, "expand_terms",
		"Generate extended related terms from the draft's projectName and keywords and store them in extendedTerms.",
		h.ExpandTerms)
	addTool(server, "submit_draft",
		"Create a project from the draft and close it.",
		h.SubmitDraft)
	addTool(server, "discard_draft",
		"Close the draft without creating a project.",
		h.DiscardDraft)

	addTool(server, "analyze_content",
		"Summarize project content for a bidding evaluation, focusing on technical requirements and key deliverables.",
		h.AnalyzeContent)
}

func addTool[In, Out any](server *sdkmcp.Server, name, description string, fn func(context.Context, In) (Out, error)) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
		out, err := fn(ctx, in)
		return nil, out, err
	})
}
