package date

import (
	"fmt"
	"time"
)

// Range represents a range of dates, boundaries included.
// A zero boundary is open: a Range with a zero From starts at the beginning of times.
type Range struct{ From, To Date }

// NewRange returns the range between from and to.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Year returns the range covering the whole calendar year.
func Year(year int) Range {
	return Range{From: New(year, time.January, 1), To: New(year, time.December, 31)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// IsZero reports whether the range is fully open.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

func (r Range) String() string {
	from, to := "…", "…"
	if !r.From.IsZero() {
		from = r.From.String()
	}
	if !r.To.IsZero() {
		to = r.To.String()
	}
	return fmt.Sprintf("%s to %s", from, to)
}
