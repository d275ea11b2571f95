package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestFromUnix(t *testing.T) {
	testCases := []struct {
		name string
		sec  float64
		want Date
	}{
		{"epoch", 0, New(1970, time.January, 1)},
		{"afternoon", 1445524380, New(2015, time.October, 22)},
		{"last second of the year", 1483228799, New(2016, time.December, 31)},
		{"first second of the year", 1483228800, New(2017, time.January, 1)},
		{"fractional seconds", 1469764141.75, New(2016, time.July, 29)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromUnix(tc.sec); got != tc.want {
				t.Errorf("FromUnix(%v) = %v, want %v", tc.sec, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2016-7-9")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if want := New(2016, time.July, 9); d != want {
		t.Errorf("Parse() = %v, want %v", d, want)
	}
	if d.String() != "2016-07-09" {
		t.Errorf("String() = %q, want %q", d.String(), "2016-07-09")
	}

	if _, err := Parse("07/09/2016"); err == nil {
		t.Error("Parse() expected an error for a non ISO date")
	}
}

func TestRange_Contains(t *testing.T) {
	y2016 := Year(2016)
	testCases := []struct {
		name string
		r    Range
		d    Date
		want bool
	}{
		{"first day", y2016, New(2016, time.January, 1), true},
		{"last day", y2016, New(2016, time.December, 31), true},
		{"day before", y2016, New(2015, time.December, 31), false},
		{"day after", y2016, New(2017, time.January, 1), false},
		{"open start", Range{To: New(2016, time.March, 1)}, New(1999, time.March, 1), true},
		{"open end", Range{From: New(2016, time.March, 1)}, New(2099, time.March, 1), true},
		{"open range", Range{}, New(2016, time.March, 1), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.d); got != tc.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tc.r, tc.d, got, tc.want)
			}
		})
	}
}
