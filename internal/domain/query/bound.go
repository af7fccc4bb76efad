package query

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date encoding used by project and talent records.
const DateLayout = "2006-01-02"

// Bound is an optional range endpoint. The zero value is unbounded.
type Bound[T any] struct {
	Value T
	Set   bool
}

// Unbounded returns a bound that constrains nothing.
func Unbounded[T any]() Bound[T] {
	return Bound[T]{}
}

// At returns a bound fixed at v.
func At[T any](v T) Bound[T] {
	return Bound[T]{Value: v, Set: true}
}

// IsSet reports whether the bound constrains anything.
func (b Bound[T]) IsSet() bool {
	return b.Set
}

// ParseAmount parses a numeric criterion. Empty, malformed and non-finite
// input yields an unset bound rather than an error.
func ParseAmount(s string) Bound[float64] {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unbounded[float64]()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Unbounded[float64]()
	}
	return At(v)
}

// ParseDate parses a date criterion as YYYY-MM-DD (UTC midnight) or RFC 3339.
// Anything else yields an unset bound.
func ParseDate(s string) Bound[time.Time] {
	t, ok := ParseRecordDate(s)
	if !ok {
		return Unbounded[time.Time]()
	}
	return At(t)
}

// ParseRecordDate parses a date stored on a record.
func ParseRecordDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// AmountWithin reports whether lo <= v <= hi, treating unset bounds as infinite.
func AmountWithin(v float64, lo, hi Bound[float64]) bool {
	if lo.Set && v < lo.Value {
		return false
	}
	if hi.Set && v > hi.Value {
		return false
	}
	return true
}

// TimeWithin reports whether lo <= t <= hi, treating unset bounds as the
// earliest and latest representable instants.
func TimeWithin(t time.Time, lo, hi Bound[time.Time]) bool {
	if lo.Set && t.Before(lo.Value) {
		return false
	}
	if hi.Set && t.After(hi.Value) {
		return false
	}
	return true
}

// ContainsFold reports whether needle occurs anywhere in field, ignoring case.
// An empty needle matches everything.
func ContainsFold(field, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(needle))
}
