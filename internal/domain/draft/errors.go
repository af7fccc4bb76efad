package draft

import "errors"

var (
	// ErrDraftNotFound indicates the draft doesn't exist.
	ErrDraftNotFound = errors.New("draft not found")
	// ErrDraftClosed indicates the draft was already submitted or discarded.
	ErrDraftClosed = errors.New("draft is closed")
	// ErrExpansionInFlight indicates an expansion for this draft is still pending.
	ErrExpansionInFlight = errors.New("term expansion already in progress")
	// ErrMissingExpansionInput indicates the name or keywords are blank.
	ErrMissingExpansionInput = errors.New("please fill in Project Name and Keywords first")
	// ErrStaleExpansion indicates the draft changed while the expansion ran.
	ErrStaleExpansion = errors.New("expansion result discarded: draft changed")
	// ErrInvalidInput indicates invalid draft input.
	ErrInvalidInput = errors.New("invalid draft input")
)
