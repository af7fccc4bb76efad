package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/bidintel/internal/domain/draft"
	"github.com/rpggio/bidintel/internal/domain/project"
)

var (
	// ErrUnknownMethod is returned by Handle for an unsupported method name.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrInvalidParams is returned by Handle when params don't decode.
	ErrInvalidParams = errors.New("invalid params")
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, draft.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "projectName is required; amount must be non-negative; dates use YYYY-MM-DD"}
	case errors.Is(err, project.ErrDuplicateID):
		return &APIError{Code: "DUPLICATE_ID", Message: "project id already exists", RecoveryHint: "Retry the request"}
	case errors.Is(err, draft.ErrDraftNotFound):
		return &APIError{Code: "DRAFT_NOT_FOUND", Message: "draft not found", RecoveryHint: "Call open_draft to start a new form"}
	case errors.Is(err, draft.ErrDraftClosed):
		return &APIError{Code: "DRAFT_CLOSED", Message: "draft already submitted or discarded", RecoveryHint: "Call open_draft to start a new form"}
	case errors.Is(err, draft.ErrExpansionInFlight):
		return &APIError{Code: "EXPANSION_IN_FLIGHT", Message: "term expansion already in progress", RecoveryHint: "Wait for the pending expansion to finish"}
	case errors.Is(err, draft.ErrMissingExpansionInput):
		return &APIError{Code: "MISSING_EXPANSION_INPUT", Message: "Please fill in Project Name and Keywords first!", RecoveryHint: "Set projectName and keywords with update_draft"}
	case errors.Is(err, draft.ErrStaleExpansion):
		return &APIError{Code: "STALE_EXPANSION", Message: "expansion result discarded because the draft changed", RecoveryHint: "Call expand_terms again if still needed"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
