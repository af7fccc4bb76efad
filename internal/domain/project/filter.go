package project

import (
	"time"

	"github.com/rpggio/bidintel/internal/domain/query"
)

// RawCriteria holds project filter inputs as typed by an operator.
type RawCriteria struct {
	Name      string `json:"name,omitempty"`
	Unit      string `json:"unit,omitempty"`
	MinAmount string `json:"min_amount,omitempty"`
	MaxAmount string `json:"max_amount,omitempty"`
	DateFrom  string `json:"date_from,omitempty"`
	DateTo    string `json:"date_to,omitempty"`
}

// Criteria is the parsed form of RawCriteria. The zero value matches everything.
type Criteria struct {
	Name       string
	Unit       string
	MinAmount  query.Bound[float64]
	MaxAmount  query.Bound[float64]
	SignedFrom query.Bound[time.Time]
	SignedTo   query.Bound[time.Time]
}

// ParseCriteria converts raw inputs once. Malformed bounds become unbounded.
func ParseCriteria(raw RawCriteria) Criteria {
	return Criteria{
		Name:       raw.Name,
		Unit:       raw.Unit,
		MinAmount:  query.ParseAmount(raw.MinAmount),
		MaxAmount:  query.ParseAmount(raw.MaxAmount),
		SignedFrom: query.ParseDate(raw.DateFrom),
		SignedTo:   query.ParseDate(raw.DateTo),
	}
}

// Filter returns the projects matching every criterion, in source order.
// The input slice is not modified.
func Filter(all []Project, c Criteria) []Project {
	out := make([]Project, 0, len(all))
	for _, p := range all {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p satisfies all criteria.
func (c Criteria) Matches(p Project) bool {
	if !query.ContainsFold(p.ProjectName, c.Name) {
		return false
	}
	if !query.ContainsFold(p.ConstructionUnit, c.Unit) {
		return false
	}
	if !query.AmountWithin(p.ContractAmount, c.MinAmount, c.MaxAmount) {
		return false
	}
	if c.SignedFrom.IsSet() || c.SignedTo.IsSet() {
		signed, ok := query.ParseRecordDate(p.ContractSigningDate)
		if !ok {
			return false
		}
		if !query.TimeWithin(signed, c.SignedFrom, c.SignedTo) {
			return false
		}
	}
	return true
}
