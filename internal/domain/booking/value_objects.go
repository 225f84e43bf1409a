package booking

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidStayPeriod marks a zero-length or inverted interval. It is a
// caller error, never a capacity outcome.
var ErrInvalidStayPeriod = errors.New("stay period start must be before end")

// StayPeriod is a half-open date interval [from, to): check-in day
// inclusive, checkout day exclusive. A stay ending on day D and one
// starting on day D share a room without conflict.
type StayPeriod struct {
	from time.Time
	to   time.Time
}

func NewStayPeriod(from, to time.Time) (StayPeriod, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if !from.Before(to) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{from: from, to: to}, nil
}

func (p StayPeriod) From() time.Time { return p.from }
func (p StayPeriod) To() time.Time   { return p.to }

func (p StayPeriod) Nights() int {
	return int(p.to.Sub(p.from).Hours() / 24)
}

// Overlaps is the single source of truth for stay conflicts. Every
// overlap-counting query must be a range translation of this predicate.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.from.Before(other.to) && other.from.Before(p.to)
}

// Covers reports whether the instant t falls inside the stay.
func (p StayPeriod) Covers(t time.Time) bool {
	t = truncateToDay(t)
	return !t.Before(p.from) && t.Before(p.to)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.from.Format(time.DateOnly), p.to.Format(time.DateOnly))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
