package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/etnz/stash"
	"github.com/etnz/stash/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const (
	t0  stash.Timestamp = 1445524380 // 2015-10-22 14:33:00
	day stash.Timestamp = 24 * 60 * 60
)

func mustLedger(t *testing.T, txs ...stash.Transaction) *stash.Stash {
	t.Helper()
	s := stash.New("BTC", "Coinbase")
	for _, tx := range txs {
		assert.NoError(t, s.Add(tx))
	}
	s.Update()
	return s
}

func acq(t *testing.T, ts stash.Timestamp, amount, price float64, comment string) *stash.Acquisition {
	t.Helper()
	a, err := stash.NewAcquisition(ts, "BTC", stash.Q(amount), stash.M(price, ""), stash.M(0, ""), "", comment)
	assert.NoError(t, err)
	return a
}

func disp(t *testing.T, ts stash.Timestamp, amount, price, fees float64, reference string) *stash.Disposition {
	t.Helper()
	d, err := stash.NewDisposition(ts, "BTC", stash.Q(amount), stash.M(price, ""), stash.M(fees, ""), reference, "")
	assert.NoError(t, err)
	return d
}

// tables parses md and returns, for each table, the number of cells of each body row.
func tables(t *testing.T, md string) [][]int {
	t.Helper()
	source := []byte(md)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(source))

	var result [][]int
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			result = append(result, nil)
		case *east.TableRow:
			result[len(result)-1] = append(result[len(result)-1], n.ChildCount())
		}
		return ast.WalkContinue, nil
	})
	assert.NoError(t, err)
	return result
}

func TestStates(t *testing.T) {
	s := mustLedger(t,
		acq(t, t0, 10, 100, "first | buy"),
		disp(t, t0+day, 12, 300, 6, "CB Ref: YBFY7P4C"),
	)
	md := States(s, date.Range{})

	assert.Contains(t, md, "# BTC Coinbase")
	assert.Contains(t, md, "| 2 | 2015-10-23 14:33:00 | disposition | 12.00000000 | $300.00 | $3,600.00 | $6.00 | 0.00000000 | #1: -10.00000000 | S: $1,994.00 | CB Ref: YBFY7P4C |  |")
	assert.Contains(t, md, `first \| buy`)
	assert.Contains(t, md, "## Anomalies")
	assert.Contains(t, md, "- #2 on 2015-10-23 14:33:00: disposition of 12 BTC overdrawn by 2")

	assert.Equal(t, [][]int{{12, 12}}, tables(t, md))
}

func TestStates_Range(t *testing.T) {
	s := mustLedger(t,
		acq(t, t0, 10, 100, ""),
		disp(t, t0+day, 1, 300, 0, ""),
		disp(t, t0+400*day, 1, 300, 0, ""),
	)
	md := States(s, date.NewRange(date.New(2015, time.October, 23), date.New(2015, time.December, 31)))

	assert.Contains(t, md, "Period: 2015-10-23 to 2015-12-31")
	assert.Equal(t, [][]int{{12}}, tables(t, md))
	assert.NotContains(t, md, "## Anomalies")
}

func TestLots(t *testing.T) {
	s := mustLedger(t,
		acq(t, t0, 10, 100, ""),
		acq(t, t0+day, 5, 200, ""),
		disp(t, t0+2*day, 12, 300, 0, ""),
	)
	md := Lots(s, t0+400*day)

	assert.Contains(t, md, "| 2 | 2015-10-23 | $200.00 | 5.00000000 | 3.00000000 | 399 | long |")
	assert.Contains(t, md, "1 open lots, balance 3.00000000 BTC")
	assert.Equal(t, [][]int{{7}}, tables(t, md))
}

func TestForm8949(t *testing.T) {
	s := mustLedger(t,
		acq(t, t0, 10, 100, ""),
		disp(t, t0+day, 2, 110, 0, ""),
		disp(t, t0+500*day, 8, 300, 0, ""),
	)
	f := stash.NewForm8949(s)
	f.FilterByYear(2017)

	md := Form8949(s, f, Form8949Options{})
	assert.Contains(t, md, "# Form 8949: BTC Coinbase")
	assert.Contains(t, md, "Years sold: 2017")
	assert.Contains(t, md, "| 8 BTC | 2015-10-22 | 2017-03-05 | $2,400.00 | $800.00 |  | $0.00 | +$1,600.00 | long |")
	assert.Contains(t, md, "| **Total** | $2,400.00 | $800.00 | $0.00 | +$1,600.00 |")
	// one entry, then short, long and total sums.
	assert.Equal(t, [][]int{{9}, {5, 5, 5}}, tables(t, md))

	md = Form8949(s, f, Form8949Options{SkipEntries: true})
	assert.NotContains(t, md, "## Entries")
	assert.Equal(t, 1, len(tables(t, md)))
}

func TestForm8949_Empty(t *testing.T) {
	s := mustLedger(t, acq(t, t0, 10, 100, ""))
	md := Form8949(s, stash.NewForm8949(s), Form8949Options{})

	assert.Contains(t, md, "All years")
	assert.Contains(t, md, "No disposition.")
	assert.Contains(t, md, "| Short term | $0.00 | $0.00 | $0.00 | - |")
}

func TestHTML(t *testing.T) {
	s := mustLedger(t, acq(t, t0, 10, 100, ""))
	html, err := HTML(States(s, date.Range{}))
	assert.NoError(t, err)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<h1>BTC Coinbase</h1>")
	assert.Equal(t, 2, strings.Count(html, "<tr>"))
}

func TestTransactions(t *testing.T) {
	s := mustLedger(t,
		acq(t, t0, 10, 100, ""),
		acq(t, t0+day, 5, 200, "gift"),
		disp(t, t0+2*day, 2, 300, 1, "ref"),
	)
	assert.NoError(t, s.SetDisabled(stash.KindAcquisition, 0, true))
	s.Update()
	md := Transactions(s)

	assert.Contains(t, md, "| 1 |  | 2015-10-22 14:33:00 | 10.00000000 | $100.00 | $0.00 |  |  | yes |")
	assert.Contains(t, md, "| 2 | 1 | 2015-10-23 14:33:00 | 5.00000000 | $200.00 | $0.00 |  | gift |  |")
	assert.Contains(t, md, "| 1 | 2015-10-24 14:33:00 | 2.00000000 | $300.00 | $1.00 | ref |  |  |")
	assert.Equal(t, [][]int{{9, 9}, {8}}, tables(t, md))
}
