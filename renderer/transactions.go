package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stash"
)

// Transactions renders the acquisitions and dispositions of s as they are stored,
// with the 1-based index used to designate them on the command line.
func Transactions(s *stash.Stash) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", s.Asset, s.Title)

	fmt.Fprint(&b, "## Acquisitions\n\n")
	fmt.Fprintln(&b, "| i | Lot | Date | Amount | Price | Fees | Reference | Comment | Disabled |")
	fmt.Fprintln(&b, "|---:|---:|:---|---:|---:|---:|:---|:---|:---|")
	for i, a := range s.Acquisitions {
		lot := ""
		if a.LotNumber > 0 {
			lot = fmt.Sprint(a.LotNumber)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			i+1, lot, a.Timestamp, a.Amount.StringFixed(8), money(s, a.UnitPrice), money(s, a.Fees),
			cell(a.Reference), cell(a.Comment), disabled(a.Disabled))
	}

	fmt.Fprint(&b, "\n## Dispositions\n\n")
	fmt.Fprintln(&b, "| i | Date | Amount | Price | Fees | Reference | Comment | Disabled |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|:---|:---|:---|")
	for i, d := range s.Dispositions {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			i+1, d.Timestamp, d.Amount.StringFixed(8), money(s, d.UnitPrice), money(s, d.Fees),
			cell(d.Reference), cell(d.Comment), disabled(d.Disabled))
	}
	return b.String()
}

func disabled(v bool) string {
	if v {
		return "yes"
	}
	return ""
}
