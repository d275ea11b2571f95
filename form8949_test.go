package stash

import (
	"slices"
	"testing"

	"github.com/etnz/stash/date"
)

// form8949Ledger sells from two lots over three years.
func form8949Ledger() *Stash {
	return newStash(
		acq(oct22at1433, "10", "100", "0"),
		disp(oct22at1456, "2", "110", "0"),
		acq(dec01at1419, "5", "200", "0"),
		disp(jul29at0349, "3", "150", "0"),
		disp(aug10at1408, "1", "250", "0"),
		disp(jan01y2017, "7", "300", "0"),
	)
}

func TestGenerateEntries(t *testing.T) {
	s := form8949Ledger()
	entries := GenerateEntries(s.Asset, s.States())
	if len(entries) != 5 {
		t.Fatalf("GenerateEntries() = %d entries, want 5", len(entries))
	}

	// the last disposition spans two lots.
	e := entries[3]
	if e.Description != "4 BTC" || e.Lot != 1 {
		t.Errorf("entries[3] = %q from lot %d, want \"4 BTC\" from lot 1", e.Description, e.Lot)
	}
	if e.DateAcquired != date.New(2015, 10, 22) || e.DateSold != date.New(2017, 1, 1) {
		t.Errorf("entries[3] dates = %v, %v, want 2015-10-22, 2017-01-01", e.DateAcquired, e.DateSold)
	}
	if !e.Proceeds.Equal(m("1200")) || !e.CostBasis.Equal(m("400")) || !e.GainOrLoss().Equal(m("800")) {
		t.Errorf("entries[3] = %v - %v = %v, want 1200 - 400 = 800", e.Proceeds.Decimal(), e.CostBasis.Decimal(), e.GainOrLoss().Decimal())
	}
	if !e.LongTerm || !e.Adjustment.IsZero() || e.Code != "" {
		t.Errorf("entries[3] = %+v, want long term with no adjustment", e)
	}
	if last := entries[4]; last.Lot != 2 || last.Description != "3 BTC" {
		t.Errorf("entries[4] = %q from lot %d, want \"3 BTC\" from lot 2", last.Description, last.Lot)
	}
	if entries[1].LongTerm {
		t.Error("entries[1] held less than a year, want short term")
	}
}

func TestForm8949_FilterByYear(t *testing.T) {
	f := NewForm8949(form8949Ledger())
	if got, want := f.Years(), []int{2015, 2016, 2017}; !slices.Equal(got, want) {
		t.Errorf("Years() = %v, want %v", got, want)
	}

	f.FilterByYear(2016)
	if len(f.Entries()) != 2 {
		t.Fatalf("Entries() = %d after filtering 2016, want 2", len(f.Entries()))
	}
	for _, e := range f.Entries() {
		if e.YearSold() != 2016 {
			t.Errorf("entry sold in %d, want 2016", e.YearSold())
		}
	}
	totals := f.Totals()
	testCases := []struct {
		name      string
		got, want Money
	}{
		{"Short.Proceeds", totals.Short.Proceeds, m("700")},
		{"Short.CostBasis", totals.Short.CostBasis, m("400")},
		{"Short.Gain", totals.Short.Gain, m("300")},
		{"Long.Proceeds", totals.Long.Proceeds, m("0")},
		{"Long.Gain", totals.Long.Gain, m("0")},
		{"Total.Gain", totals.Total.Gain, m("300")},
	}
	for _, tc := range testCases {
		if !tc.got.Equal(tc.want) {
			t.Errorf("2016 %s = %v, want %v", tc.name, tc.got.Decimal(), tc.want.Decimal())
		}
	}

	// the full set is still available
	if len(f.AllEntries()) != 5 {
		t.Errorf("AllEntries() = %d, want 5", len(f.AllEntries()))
	}
	f.FilterByYear()
	totals = f.Totals()
	if len(f.Entries()) != 5 {
		t.Errorf("Entries() = %d with no filter, want 5", len(f.Entries()))
	}
	if !totals.Long.Gain.Equal(m("1100")) || !totals.Short.Gain.Equal(m("320")) || !totals.Total.Proceeds.Equal(m("3020")) {
		t.Errorf("Totals() = %+v, want long 1100, short 320, proceeds 3020", totals)
	}
}

func TestForm8949_Reset(t *testing.T) {
	s := form8949Ledger()
	f := NewForm8949(s)
	f.FilterByYear(2017, 2018)

	s.Dispositions = s.Dispositions[:len(s.Dispositions)-1]
	s.Update()
	f.Reset(s)
	if len(f.Entries()) != 0 {
		t.Errorf("Entries() = %d, want none sold in 2017 anymore", len(f.Entries()))
	}
	if got := f.SelectedYears(); !slices.Equal(got, []int{2017, 2018}) {
		t.Errorf("SelectedYears() = %v, want [2017 2018]", got)
	}
}
