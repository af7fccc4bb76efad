package talent

import (
	"strings"

	"github.com/rpggio/bidintel/internal/domain/query"
)

// StatusFilter selects talents by compliance state.
type StatusFilter string

const (
	FilterAll     StatusFilter = "All"
	FilterUpdated StatusFilter = "Updated"
	FilterPending StatusFilter = "Pending"
)

// RawCriteria holds talent filter inputs as typed by an operator.
type RawCriteria struct {
	Name      string `json:"name,omitempty"`
	Expertise string `json:"expertise,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Criteria is the parsed form of RawCriteria.
type Criteria struct {
	Name      string
	Expertise string
	Status    StatusFilter
}

// ParseCriteria normalizes the status selector. Unknown values select all.
func ParseCriteria(raw RawCriteria) Criteria {
	return Criteria{
		Name:      raw.Name,
		Expertise: raw.Expertise,
		Status:    parseStatusFilter(raw.Status),
	}
}

func parseStatusFilter(s string) StatusFilter {
	switch StatusFilter(strings.TrimSpace(s)) {
	case FilterUpdated:
		return FilterUpdated
	case FilterPending:
		return FilterPending
	default:
		return FilterAll
	}
}

// Filter returns the talents matching every criterion, in source order.
func Filter(all []Talent, c Criteria) []Talent {
	out := make([]Talent, 0, len(all))
	for _, t := range all {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether t satisfies all criteria.
func (c Criteria) Matches(t Talent) bool {
	if !query.ContainsFold(t.Name, c.Name) {
		return false
	}
	if !query.ContainsFold(t.Expertise, c.Expertise) {
		return false
	}
	switch c.Status {
	case FilterUpdated, FilterPending:
		return t.SocialSecurityStatus == Status(c.Status)
	default:
		return true
	}
}
