package stash

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Kind identifies the two kinds of transaction a ledger holds.
type Kind int

const (
	KindAcquisition Kind = iota
	KindDisposition
)

func (k Kind) String() string {
	switch k {
	case KindAcquisition:
		return "acquisition"
	case KindDisposition:
		return "disposition"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind, short forms "acq" and "disp" are accepted.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "acq", "acquisition":
		return KindAcquisition, nil
	case "disp", "disposition":
		return KindDisposition, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is implemented by *Acquisition and *Disposition only.
type Transaction interface {
	Kind() Kind
	When() Timestamp
	Enabled() bool
	Fingerprint() uuid.UUID
	record() *txBase
}

// txBase holds the fields shared by acquisitions and dispositions.
type txBase struct {
	Timestamp Timestamp // seconds since the epoch
	Asset     string
	Amount    Quantity // quantity of asset, always positive
	UnitPrice Money    // price of one unit of asset
	Fees      Money    // transaction fees, of any sign
	Reference string
	Comment   string
	Disabled  bool // excluded from every computation, but kept in the ledger
}

func newTxBase(ts Timestamp, asset string, amount Quantity, price, fees Money, reference, comment string) (txBase, error) {
	t := txBase{
		Timestamp: ts,
		Asset:     asset,
		Amount:    amount,
		UnitPrice: price,
		Fees:      fees,
		Reference: reference,
		Comment:   comment,
	}
	return t, t.validate()
}

// validate checks every field, the first failure is reported.
func (t txBase) validate() error {
	ts := float64(t.Timestamp)
	switch {
	case math.IsNaN(ts) || math.IsInf(ts, 0) || ts <= 0:
		return &ValidationError{Field: "timestamp", Value: t.Timestamp, Reason: "must be a positive number of seconds"}
	case strings.TrimSpace(t.Asset) == "":
		return &ValidationError{Field: "asset", Value: strconv.Quote(t.Asset), Reason: "is missing"}
	case !t.Amount.IsPositive():
		return &ValidationError{Field: "asset_amount", Value: t.Amount, Reason: "must be positive"}
	case !t.UnitPrice.IsPositive():
		return &ValidationError{Field: "asset_price", Value: t.UnitPrice.Decimal(), Reason: "must be positive"}
	case !utf8.ValidString(t.Reference):
		return &ValidationError{Field: "reference", Value: strconv.Quote(t.Reference), Reason: "is not valid text"}
	case !utf8.ValidString(t.Comment):
		return &ValidationError{Field: "comment", Value: strconv.Quote(t.Comment), Reason: "is not valid text"}
	}
	return nil
}

func (t *txBase) record() *txBase { return t }

// When returns the timestamp of the transaction.
func (t txBase) When() Timestamp { return t.Timestamp }

// Enabled reports whether the transaction takes part in the ledger computation.
func (t txBase) Enabled() bool { return !t.Disabled }

// Value returns amount × unit price.
func (t txBase) Value() Money { return t.UnitPrice.Mul(t.Amount) }

// fingerprint names the economic content of a transaction, references and comments are ignored.
func (t txBase) fingerprint(k Kind) uuid.UUID {
	name := strings.Join([]string{
		k.String(),
		strconv.FormatFloat(float64(t.Timestamp), 'f', -1, 64),
		t.Asset,
		t.Amount.String(),
		t.UnitPrice.Decimal().String(),
		t.Fees.Decimal().String(),
	}, "|")
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

// Acquisition adds a new lot of asset to the ledger.
type Acquisition struct {
	txBase
	// LotNumber is assigned by the ledger on update: 1.. in timestamp order for
	// enabled acquisitions, 0 for disabled ones.
	LotNumber int
}

// NewAcquisition returns a validated acquisition.
func NewAcquisition(ts Timestamp, asset string, amount Quantity, price, fees Money, reference, comment string) (*Acquisition, error) {
	b, err := newTxBase(ts, asset, amount, price, fees, reference, comment)
	if err != nil {
		return nil, err
	}
	return &Acquisition{txBase: b}, nil
}

func (a *Acquisition) Kind() Kind { return KindAcquisition }

// Clone returns an independent copy of a.
func (a *Acquisition) Clone() *Acquisition {
	c := *a
	return &c
}

// Fingerprint returns a deterministic identifier of the acquisition content.
// Two transactions with the same fingerprint are likely duplicates.
func (a *Acquisition) Fingerprint() uuid.UUID { return a.fingerprint(KindAcquisition) }

// Disposition consumes asset from existing lots, oldest first.
type Disposition struct {
	txBase
}

// NewDisposition returns a validated disposition.
func NewDisposition(ts Timestamp, asset string, amount Quantity, price, fees Money, reference, comment string) (*Disposition, error) {
	b, err := newTxBase(ts, asset, amount, price, fees, reference, comment)
	if err != nil {
		return nil, err
	}
	return &Disposition{txBase: b}, nil
}

func (d *Disposition) Kind() Kind { return KindDisposition }

// Clone returns an independent copy of d.
func (d *Disposition) Clone() *Disposition {
	c := *d
	return &c
}

func (d *Disposition) Fingerprint() uuid.UUID { return d.fingerprint(KindDisposition) }

// Activity is an enabled transaction as seen by the ledger fold.
// Exactly one of Acquisition and Disposition is set.
type Activity struct {
	Acquisition *Acquisition
	Disposition *Disposition
}

// ActivityOf wraps a transaction.
func ActivityOf(tx Transaction) Activity {
	switch v := tx.(type) {
	case *Acquisition:
		return Activity{Acquisition: v}
	case *Disposition:
		return Activity{Disposition: v}
	default:
		panic(fmt.Sprintf("unsupported transaction type %T", tx))
	}
}

// Kind returns the kind of the wrapped transaction.
func (a Activity) Kind() Kind {
	if a.Acquisition != nil {
		return KindAcquisition
	}
	return KindDisposition
}

// Transaction returns the wrapped transaction.
func (a Activity) Transaction() Transaction {
	switch a.Kind() {
	case KindAcquisition:
		return a.Acquisition
	default:
		return a.Disposition
	}
}

func (a Activity) base() *txBase    { return a.Transaction().record() }
func (a Activity) When() Timestamp  { return a.base().Timestamp }
func (a Activity) Amount() Quantity { return a.base().Amount }
func (a Activity) UnitPrice() Money { return a.base().UnitPrice }
func (a Activity) Fees() Money      { return a.base().Fees }
func (a Activity) Value() Money     { return a.base().Value() }
func (a Activity) Reference() string {
	return a.base().Reference
}
func (a Activity) Comment() string { return a.base().Comment }
