package renderer

import (
	"strconv"
	"strings"

	"github.com/etnz/stash"
	"github.com/samber/lo"
)

// Form8949Options holds configuration for rendering the Form 8949 report.
type Form8949Options struct {
	SkipEntries bool // Only render the totals.
}

// form8949View is the data of the form8949 templates, every value is preformatted.
type form8949View struct {
	Asset   string
	Title   string
	Years   string
	Entries []entryRow
	Totals  []totalRow
}

type entryRow struct {
	Description, DateAcquired, DateSold   string
	Proceeds, CostBasis, Code, Adjustment string
	Gain, Term                            string
}

type totalRow struct {
	Label                                 string
	Proceeds, CostBasis, Adjustment, Gain string
}

// Form8949 renders the selected entries of f, and their totals, to a markdown string.
func Form8949(s *stash.Stash, f *stash.Form8949, opts Form8949Options) string {
	v := form8949View{
		Asset: s.Asset,
		Title: s.Title,
		Years: strings.Join(lo.Map(f.SelectedYears(), func(y int, _ int) string { return strconv.Itoa(y) }), ", "),
	}
	for _, e := range f.Entries() {
		term := "short"
		if e.LongTerm {
			term = "long"
		}
		v.Entries = append(v.Entries, entryRow{
			Description:  e.Description,
			DateAcquired: e.DateAcquired.String(),
			DateSold:     e.DateSold.String(),
			Proceeds:     money(s, e.Proceeds),
			CostBasis:    money(s, e.CostBasis),
			Code:         e.Code,
			Adjustment:   money(s, e.Adjustment),
			Gain:         signedMoney(s, e.GainOrLoss()),
			Term:         term,
		})
	}
	t := f.Totals()
	for _, row := range []struct {
		label string
		sums  stash.Sums
	}{{"Short term", t.Short}, {"Long term", t.Long}, {"**Total**", t.Total}} {
		v.Totals = append(v.Totals, totalRow{
			Label:      row.label,
			Proceeds:   money(s, row.sums.Proceeds),
			CostBasis:  money(s, row.sums.CostBasis),
			Adjustment: money(s, row.sums.Adjustment),
			Gain:       signedMoney(s, row.sums.Gain),
		})
	}

	partials := map[string]string{
		"form8949_entries": "form8949_entries.md",
		"form8949_totals":  "form8949_totals.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipEntries {
		partials["form8949_entries"] = ""
	}
	return renderTemplate("form8949", "form8949.md", partials, v)
}
