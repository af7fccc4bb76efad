package repository

import "errors"

var (
	// ErrConflict is returned when a write would collide with an existing id
	ErrConflict = errors.New("conflict: entity id already exists")

	// ErrInvalidInput is returned when storage rejects a malformed row
	ErrInvalidInput = errors.New("invalid input")
)
