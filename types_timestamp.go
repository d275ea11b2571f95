package stash

import (
	"math"
	"time"

	"github.com/etnz/stash/date"
)

// Timestamp is a number of seconds since the Unix epoch, possibly fractional.
type Timestamp float64

// TimestampOf returns the timestamp of t.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(float64(t.UnixNano()) / float64(time.Second))
}

// Time returns the instant in UTC.
func (t Timestamp) Time() time.Time {
	sec, frac := math.Modf(float64(t))
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

// Date returns the UTC day of the timestamp.
func (t Timestamp) Date() date.Date { return date.FromTime(t.Time()) }

// Year returns the UTC year of the timestamp.
func (t Timestamp) Year() int { return t.Time().Year() }

// String formats the timestamp as an ISO date and time, in UTC.
func (t Timestamp) String() string { return t.Time().Format("2006-01-02 15:04:05") }
