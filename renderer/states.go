package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/stash"
	"github.com/etnz/stash/date"
)

// States renders the state sequence of s as a markdown table, restricted to the
// activities dated within r. Anomalies follow the table, if any.
func States(s *stash.Stash, r date.Range) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", s.Asset, s.Title)
	if !r.IsZero() {
		fmt.Fprintf(&b, "Period: %s\n\n", r)
	}

	fmt.Fprintln(&b, "| # | Date | Type | Amount | Price | Value | Fees | Balance | Lots Affected | Cap Gains | Reference | Comment |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|---:|---:|---:|:---|:---|:---|:---|")
	for _, st := range s.States() {
		if !r.Contains(st.Timestamp().Date()) {
			continue
		}
		act := st.Activity
		var affected []string
		for _, l := range st.LotsAffected() {
			affected = append(affected, fmt.Sprintf("#%d: %s", l.Lot.Number, l.LastConsumed.SignedString()))
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			st.Index+1,
			st.Timestamp(),
			act.Kind(),
			act.Amount().StringFixed(8),
			money(s, act.UnitPrice()),
			money(s, act.Value()),
			money(s, act.Fees()),
			st.Balance().StringFixed(8),
			strings.Join(affected, ", "),
			gains(s, st.CapitalGains()),
			cell(act.Reference()),
			cell(act.Comment()),
		)
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Anomalies\n\n")
		for _, a := range s.Anomalies() {
			fmt.Fprintf(w, "- #%d on %s: disposition of %s %s overdrawn by %s\n", a.Index+1, a.Timestamp, a.Requested, s.Asset, a.Remaining)
		}
		return len(s.Anomalies()) > 0
	})
	return b.String()
}
