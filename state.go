package stash

// State is the ledger right after one activity has been applied.
//
// States are immutable snapshots: applying the next activity copies every lot
// state and never modifies the previous ones.
type State struct {
	Index    int // position in the state sequence
	Activity Activity
	Lots     []*LotState // every lot created so far, in creation order
	// Overdraw is the part of a disposition that no lot could match, zero otherwise.
	Overdraw Quantity
}

// Apply returns the state reached by applying act to prev, prev is nil for the
// empty ledger. The anomaly is non nil when a disposition overdraws the ledger.
func Apply(prev *State, index int, act Activity, fees FeeAllocation) (*State, *Anomaly) {
	next := &State{Index: index, Activity: act}
	if prev != nil {
		next.Lots = make([]*LotState, 0, len(prev.Lots)+1)
		for _, l := range prev.Lots {
			next.Lots = append(next.Lots, l.next())
		}
	}

	switch act.Kind() {
	case KindAcquisition:
		next.Lots = append(next.Lots, acquire(len(next.Lots)+1, act.Acquisition))
		return next, nil

	case KindDisposition:
		d := act.Disposition
		remaining := d.Amount
		var touched []*LotState
		for _, l := range next.Lots {
			if !remaining.IsPositive() {
				break
			}
			if !l.Balance.IsPositive() {
				continue
			}
			remaining = l.dispose(d.Timestamp, remaining, d.UnitPrice, d.Fees)
			touched = append(touched, l)
		}
		if fees == FeesProRata {
			allocateProRata(touched, d.Fees)
		}
		if remaining.IsPositive() {
			next.Overdraw = remaining
			return next, &Anomaly{Index: index, Timestamp: d.Timestamp, Requested: d.Amount, Remaining: remaining}
		}
		return next, nil

	default:
		panic("unknown activity kind " + act.Kind().String())
	}
}

// allocateProRata charges each touched lot its share of fees in proportion to
// the quantity it gave up. The last lot gets the rounding remainder so that the
// charged fees add up exactly, an overdrawn part is not charged to any lot.
func allocateProRata(touched []*LotState, fees Money) {
	var consumed Quantity
	for _, l := range touched {
		consumed = consumed.Add(l.Consumed())
	}
	var charged Money
	for i, l := range touched {
		if i == len(touched)-1 {
			l.LastFees = fees.Sub(charged)
			return
		}
		l.LastFees = fees.Mul(l.Consumed()).Div(consumed)
		charged = charged.Add(l.LastFees)
	}
}

// Timestamp returns the timestamp of the activity.
func (s *State) Timestamp() Timestamp { return s.Activity.When() }

// Balance returns the quantity held across all lots.
func (s *State) Balance() Quantity {
	var total Quantity
	for _, l := range s.Lots {
		total = total.Add(l.Balance)
	}
	return total
}

// LotsAffected returns the lots touched by the activity, in creation order.
func (s *State) LotsAffected() []*LotState {
	var affected []*LotState
	for _, l := range s.Lots {
		if l.Affected() {
			affected = append(affected, l)
		}
	}
	return affected
}

// CurrentLot returns the oldest lot with a positive balance, nil if there is none.
func (s *State) CurrentLot() *LotState {
	for _, l := range s.Lots {
		if l.Balance.IsPositive() {
			return l
		}
	}
	return nil
}

// Gains holds the capital gains realized by one activity.
type Gains struct {
	Long, Short       Money
	HasLong, HasShort bool // whether any long (short) term lot was consumed
}

// IsZero reports whether no gain was realized.
func (g Gains) IsZero() bool { return !g.HasLong && !g.HasShort }

// Total returns long and short term gains together.
func (g Gains) Total() Money { return g.Long.Add(g.Short) }

// CapitalGains splits the gains of the affected lots by holding period.
// Only dispositions realize gains.
func (s *State) CapitalGains() Gains {
	var g Gains
	if s.Activity.Kind() != KindDisposition {
		return g
	}
	for _, l := range s.LotsAffected() {
		if l.IsLongTerm() {
			g.Long = g.Long.Add(l.CapitalGain())
			g.HasLong = true
		} else {
			g.Short = g.Short.Add(l.CapitalGain())
			g.HasShort = true
		}
	}
	return g
}
