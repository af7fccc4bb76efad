package project

import "errors"

var (
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrDuplicateID indicates a project with the same id is already stored.
	ErrDuplicateID = errors.New("duplicate project id")
)
