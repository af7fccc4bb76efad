package query_test

import (
	"testing"
	"time"

	"github.com/rpggio/bidintel/internal/domain/query"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		set   bool
		value float64
	}{
		{in: "", set: false},
		{in: "   ", set: false},
		{in: "abc", set: false},
		{in: "12abc", set: false},
		{in: "NaN", set: false},
		{in: "Inf", set: false},
		{in: "1250", set: true, value: 1250},
		{in: " 4800.5 ", set: true, value: 4800.5},
		{in: "-3", set: true, value: -3},
	}

	for _, tc := range cases {
		b := query.ParseAmount(tc.in)
		require.Equal(t, tc.set, b.IsSet(), "input %q", tc.in)
		if tc.set {
			require.Equal(t, tc.value, b.Value, "input %q", tc.in)
		}
	}
}

func TestParseDate(t *testing.T) {
	b := query.ParseDate("2024-01-20")
	require.True(t, b.IsSet())
	require.True(t, b.Value.Equal(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)))

	b = query.ParseDate("2024-01-20T08:00:00Z")
	require.True(t, b.IsSet())
	require.Equal(t, 8, b.Value.Hour())

	require.False(t, query.ParseDate("").IsSet())
	require.False(t, query.ParseDate("20/01/2024").IsSet())
	require.False(t, query.ParseDate("2024-13-01").IsSet())
}

func TestAmountWithin(t *testing.T) {
	lo := query.At(100.0)
	hi := query.At(200.0)

	require.True(t, query.AmountWithin(100, lo, hi))
	require.True(t, query.AmountWithin(200, lo, hi))
	require.False(t, query.AmountWithin(99.99, lo, hi))
	require.False(t, query.AmountWithin(200.01, lo, hi))
	require.True(t, query.AmountWithin(-1e12, query.Unbounded[float64](), hi))
	require.True(t, query.AmountWithin(1e12, lo, query.Unbounded[float64]()))
}

func TestTimeWithin_InclusiveAtDayBoundary(t *testing.T) {
	day := time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)
	require.True(t, query.TimeWithin(day, query.At(day), query.At(day)))
	require.False(t, query.TimeWithin(day, query.At(day.Add(time.Nanosecond)), query.Unbounded[time.Time]()))
	require.True(t, query.TimeWithin(day, query.Unbounded[time.Time](), query.Unbounded[time.Time]()))
}

func TestContainsFold(t *testing.T) {
	require.True(t, query.ContainsFold("Smart City Infrastructure", ""))
	require.True(t, query.ContainsFold("Smart City Infrastructure", "city"))
	require.True(t, query.ContainsFold("Smart City Infrastructure", "STRUCT"))
	require.False(t, query.ContainsFold("Smart City Infrastructure", "valley"))
}
