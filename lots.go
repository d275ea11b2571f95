package stash

// longTermThreshold is the holding period, in seconds, above which a gain is long term.
// It is a fixed 365 days, no calendar or leap year adjustment.
const longTermThreshold = 365 * 24 * 60 * 60

// Lot is the identity of a quantity of asset acquired at once.
// It never changes once created.
type Lot struct {
	Number           int // 1-based creation order
	UnitCostBasis    Money
	InitialBalance   Quantity
	InitialTimestamp Timestamp
}

// LotState is a lot as of a given ledger step.
//
// The Last* fields describe the activity that touched the lot in that step, they
// are all zero when the lot was left untouched.
type LotState struct {
	Lot     *Lot
	Balance Quantity // remaining quantity, never negative

	LastUpdate    Timestamp
	LastConsumed  Quantity // positive on creation, negative on consumption
	LastUnitPrice Money
	LastFees      Money
}

// acquire creates the state of a new lot.
func acquire(number int, a *Acquisition) *LotState {
	return &LotState{
		Lot: &Lot{
			Number:           number,
			UnitCostBasis:    a.UnitPrice,
			InitialBalance:   a.Amount,
			InitialTimestamp: a.Timestamp,
		},
		Balance:       a.Amount,
		LastUpdate:    a.Timestamp,
		LastConsumed:  a.Amount,
		LastUnitPrice: a.UnitPrice,
		LastFees:      a.Fees,
	}
}

// dispose consumes up to amount from the lot and returns the part that could not be consumed.
func (l *LotState) dispose(ts Timestamp, amount Quantity, price, fees Money) (overdraw Quantity) {
	if amount.IsNegative() {
		panic("dispose: negative amount " + amount.String())
	}
	l.LastUpdate = ts
	l.LastUnitPrice = price
	l.LastFees = fees

	consumed := amount.Min(l.Balance)
	l.LastConsumed = consumed.Neg()
	l.Balance = l.Balance.Sub(consumed)
	return amount.Sub(consumed)
}

// next returns the state of the lot for the following step: same lot, same balance, untouched.
func (l *LotState) next() *LotState {
	return &LotState{Lot: l.Lot, Balance: l.Balance}
}

// Affected reports whether the lot was touched in this step.
func (l *LotState) Affected() bool { return !l.LastConsumed.IsZero() }

// Consumed returns the quantity taken from the lot in this step, zero unless it was disposed of.
func (l *LotState) Consumed() Quantity {
	if l.LastConsumed.IsNegative() {
		return l.LastConsumed.Neg()
	}
	return Quantity{}
}

// SaleBasis returns the cost basis of the quantity last consumed.
func (l *LotState) SaleBasis() Money {
	return l.Lot.UnitCostBasis.Mul(l.LastConsumed.Abs())
}

// SaleProceeds returns the net proceeds of the quantity last consumed.
func (l *LotState) SaleProceeds() Money {
	return l.LastUnitPrice.Mul(l.LastConsumed.Abs()).Sub(l.LastFees)
}

// CapitalGain returns proceeds minus basis, negative for a loss.
func (l *LotState) CapitalGain() Money { return l.SaleProceeds().Sub(l.SaleBasis()) }

// IsLongTerm reports whether the lot was held strictly more than 365 days at its last update.
func (l *LotState) IsLongTerm() bool { return l.LongTermAt(l.LastUpdate) }

// LongTermAt reports whether the lot, if sold at t, would be held strictly more than 365 days.
func (l *LotState) LongTermAt(t Timestamp) bool {
	return float64(l.HoldingPeriod(t)) > longTermThreshold
}

// HoldingPeriod returns the time, in seconds, between the lot creation and t.
func (l *LotState) HoldingPeriod(t Timestamp) Timestamp { return t - l.Lot.InitialTimestamp }
