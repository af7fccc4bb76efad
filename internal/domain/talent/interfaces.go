package talent

import "context"

// Store provides the talent collection.
type Store interface {
	Talents() ([]Talent, uint64)
	UpdateTalents(ctx context.Context, fn func([]Talent) []Talent) ([]Talent, uint64, error)
}
