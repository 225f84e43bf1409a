//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func period(t *testing.T, from, to string) booking.StayPeriod {
	t.Helper()
	p, err := booking.NewStayPeriod(day(from), day(to))
	require.NoError(t, err)
	return p
}

func TestNewStayPeriod(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		to    string
		errIs error
	}{
		{name: "one night", from: "2025-02-01", to: "2025-02-02"},
		{name: "multi night", from: "2025-02-01", to: "2025-02-10"},
		{name: "zero length rejected", from: "2025-02-01", to: "2025-02-01", errIs: booking.ErrInvalidStayPeriod},
		{name: "inverted rejected", from: "2025-02-05", to: "2025-02-01", errIs: booking.ErrInvalidStayPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := booking.NewStayPeriod(day(tt.from), day(tt.to))
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, day(tt.from).UTC(), p.From())
			assert.Equal(t, day(tt.to).UTC(), p.To())
		})
	}
}

func TestStayPeriodTruncatesToDay(t *testing.T) {
	from := time.Date(2025, 2, 1, 15, 30, 0, 0, time.UTC)
	to := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)

	p, err := booking.NewStayPeriod(from, to)
	require.NoError(t, err)

	assert.Equal(t, day("2025-02-01"), p.From())
	assert.Equal(t, day("2025-02-03"), p.To())
	assert.Equal(t, 2, p.Nights())
}

func TestStayPeriodOverlaps(t *testing.T) {
	tests := []struct {
		name    string
		a, b    booking.StayPeriod
		overlap bool
	}{
		{
			// checkout day equals next check-in: no conflict
			name:    "touching periods do not overlap",
			a:       period(t, "2025-01-01", "2025-01-05"),
			b:       period(t, "2025-01-05", "2025-01-09"),
			overlap: false,
		},
		{
			name:    "partial overlap",
			a:       period(t, "2025-01-01", "2025-01-05"),
			b:       period(t, "2025-01-04", "2025-01-09"),
			overlap: true,
		},
		{
			name:    "containment",
			a:       period(t, "2025-01-01", "2025-01-10"),
			b:       period(t, "2025-01-03", "2025-01-05"),
			overlap: true,
		},
		{
			name:    "identical",
			a:       period(t, "2025-01-01", "2025-01-05"),
			b:       period(t, "2025-01-01", "2025-01-05"),
			overlap: true,
		},
		{
			name:    "disjoint",
			a:       period(t, "2025-01-01", "2025-01-05"),
			b:       period(t, "2025-02-01", "2025-02-05"),
			overlap: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, tt.a.Overlaps(tt.b))
			// the predicate is symmetric
			assert.Equal(t, tt.overlap, tt.b.Overlaps(tt.a))
		})
	}
}

func TestStayPeriodCovers(t *testing.T) {
	p := period(t, "2025-02-01", "2025-02-05")

	assert.True(t, p.Covers(day("2025-02-01")))
	assert.True(t, p.Covers(day("2025-02-04")))
	assert.False(t, p.Covers(day("2025-02-05"))) // checkout day excluded
	assert.False(t, p.Covers(day("2025-01-31")))
}
