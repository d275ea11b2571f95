package stash

import (
	"fmt"
	"slices"

	"github.com/etnz/stash/date"
	"github.com/samber/lo"
)

// Entry is one line of IRS Form 8949: the part of a lot sold by one disposition.
type Entry struct {
	Description  string // quantity and asset, e.g. "34.92438215 BTC"
	Lot          int
	Quantity     Quantity
	DateAcquired date.Date
	DateSold     date.Date
	Proceeds     Money
	CostBasis    Money
	Adjustment   Money  // not computed, always zero
	Code         string // not computed, always empty
	LongTerm     bool
}

// GainOrLoss returns proceeds minus cost basis plus adjustment.
func (e Entry) GainOrLoss() Money { return e.Proceeds.Sub(e.CostBasis).Add(e.Adjustment) }

// YearSold returns the UTC year of the sale.
func (e Entry) YearSold() int { return e.DateSold.Year() }

// GenerateEntries returns one entry per lot consumed by each disposition of states.
func GenerateEntries(asset string, states []*State) []Entry {
	var entries []Entry
	for _, s := range states {
		if s.Activity.Kind() != KindDisposition {
			continue
		}
		for _, l := range s.LotsAffected() {
			q := l.Consumed()
			entries = append(entries, Entry{
				Description:  fmt.Sprintf("%s %s", q, asset),
				Lot:          l.Lot.Number,
				Quantity:     q,
				DateAcquired: l.Lot.InitialTimestamp.Date(),
				DateSold:     s.Timestamp().Date(),
				Proceeds:     l.SaleProceeds(),
				CostBasis:    l.SaleBasis(),
				LongTerm:     l.IsLongTerm(),
			})
		}
	}
	return entries
}

// Form8949 is the set of entries of a ledger, with a selection of sale years.
type Form8949 struct {
	all      []Entry
	selected []int // years sold, empty means all
	entries  []Entry
}

// NewForm8949 generates the entries of the stash, all years selected.
func NewForm8949(s *Stash) *Form8949 {
	f := &Form8949{all: GenerateEntries(s.Asset, s.States())}
	f.entries = f.all
	return f
}

// Reset regenerates the entries from s and keeps the current year selection.
func (f *Form8949) Reset(s *Stash) {
	f.all = GenerateEntries(s.Asset, s.States())
	f.FilterByYear(f.selected...)
}

// FilterByYear selects the entries sold during any of years. No year selects them all.
func (f *Form8949) FilterByYear(years ...int) {
	f.selected = slices.Clone(years)
	if len(years) == 0 {
		f.entries = f.all
		return
	}
	f.entries = lo.Filter(f.all, func(e Entry, _ int) bool { return slices.Contains(years, e.YearSold()) })
}

// SelectedYears returns the years passed to the last FilterByYear.
func (f *Form8949) SelectedYears() []int { return f.selected }

// Years returns the distinct years of sale, ascending.
func (f *Form8949) Years() []int {
	years := lo.Uniq(lo.Map(f.all, func(e Entry, _ int) int { return e.YearSold() }))
	slices.Sort(years)
	return years
}

// Entries returns the selected entries.
func (f *Form8949) Entries() []Entry { return f.entries }

// AllEntries returns every entry, regardless of the selection.
func (f *Form8949) AllEntries() []Entry { return f.all }

// Sums are the column totals of a set of entries.
type Sums struct {
	Proceeds, CostBasis, Adjustment, Gain Money
}

func (s Sums) add(e Entry) Sums {
	return Sums{
		Proceeds:   s.Proceeds.Add(e.Proceeds),
		CostBasis:  s.CostBasis.Add(e.CostBasis),
		Adjustment: s.Adjustment.Add(e.Adjustment),
		Gain:       s.Gain.Add(e.GainOrLoss()),
	}
}

// Totals holds the sums of the selected entries, split by holding period.
type Totals struct {
	Short, Long, Total Sums
}

// Totals sums the selected entries.
func (f *Form8949) Totals() Totals {
	var t Totals
	for _, e := range f.entries {
		if e.LongTerm {
			t.Long = t.Long.add(e)
		} else {
			t.Short = t.Short.add(e)
		}
		t.Total = t.Total.add(e)
	}
	return t
}
