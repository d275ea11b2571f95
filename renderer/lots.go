package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stash"
)

// Lots renders the lots still holding some asset as of asOf.
func Lots(s *stash.Stash, asOf stash.Timestamp) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Open lots of %s as of %s\n\n", s.Asset, asOf.Date())
	fmt.Fprintln(&b, "| Lot | Acquired | Cost Basis | Initial | Remaining | Held (days) | Term |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|---:|:---|")

	var open int
	for _, l := range s.Lots() {
		if !l.Balance.IsPositive() {
			continue
		}
		open++
		term := "short"
		if l.LongTermAt(asOf) {
			term = "long"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %d | %s |\n",
			l.Lot.Number,
			l.Lot.InitialTimestamp.Date(),
			money(s, l.Lot.UnitCostBasis),
			l.Lot.InitialBalance.StringFixed(8),
			l.Balance.StringFixed(8),
			int(l.HoldingPeriod(asOf)/(24*60*60)),
			term,
		)
	}
	fmt.Fprintf(&b, "\n%d open lots, balance %s %s\n", open, s.Balance().StringFixed(8), s.Asset)
	return b.String()
}
