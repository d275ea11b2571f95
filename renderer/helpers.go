package renderer

import (
	"bytes"
	"io"
	"strings"

	"github.com/etnz/stash"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// cell escapes free text for a markdown table cell.
var cell = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "").Replace

// money formats m in the ledger currency.
func money(s *stash.Stash, m stash.Money) string { return m.In(s.Currency).String() }

// signedMoney formats m in the ledger currency with an explicit sign.
func signedMoney(s *stash.Stash, m stash.Money) string { return m.In(s.Currency).SignedString() }

// gains formats long and short term gains as "L: $1.00, S: -$2.00", empty when there are none.
func gains(s *stash.Stash, g stash.Gains) string {
	var parts []string
	if g.HasLong {
		parts = append(parts, "L: "+money(s, g.Long))
	}
	if g.HasShort {
		parts = append(parts, "S: "+money(s, g.Short))
	}
	return strings.Join(parts, ", ")
}
