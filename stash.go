package stash

import (
	"cmp"
	"fmt"
	"slices"
)

// Stash is the ledger of one asset: its transactions and the states derived from them.
//
// Acquisitions and Dispositions can be edited freely, Update must then be called
// to recompute lot numbers, states and anomalies.
type Stash struct {
	Asset    string
	Title    string
	Currency string        // optional, presentation only
	Fees     FeeAllocation // not persisted

	Acquisitions []*Acquisition
	Dispositions []*Disposition

	states    []*State
	anomalies []Anomaly
}

// New returns an empty stash.
func New(asset, title string) *Stash {
	return &Stash{Asset: asset, Title: title}
}

func byTimestamp[T Transaction](a, b T) int { return cmp.Compare(a.When(), b.When()) }

// Update sorts the transactions by timestamp, renumbers the lots and recomputes
// every state from scratch. It returns the overdraw anomalies met on the way.
//
// Equal timestamps keep acquisitions before dispositions, and input order within each list.
func (s *Stash) Update() []Anomaly {
	slices.SortStableFunc(s.Acquisitions, byTimestamp[*Acquisition])
	slices.SortStableFunc(s.Dispositions, byTimestamp[*Disposition])

	activities := make([]Activity, 0, len(s.Acquisitions)+len(s.Dispositions))
	number := 0
	for _, a := range s.Acquisitions {
		if !a.Enabled() {
			a.LotNumber = 0
			continue
		}
		number++
		a.LotNumber = number
		// states keep their own copy, later edits do not leak into them
		activities = append(activities, Activity{Acquisition: a.Clone()})
	}
	for _, d := range s.Dispositions {
		if d.Enabled() {
			activities = append(activities, Activity{Disposition: d.Clone()})
		}
	}
	slices.SortStableFunc(activities, func(a, b Activity) int { return cmp.Compare(a.When(), b.When()) })

	states := make([]*State, 0, len(activities))
	var anomalies []Anomaly
	var state *State
	for i, act := range activities {
		var anomaly *Anomaly
		state, anomaly = Apply(state, i, act, s.Fees)
		if anomaly != nil {
			anomalies = append(anomalies, *anomaly)
		}
		states = append(states, state)
	}
	s.states, s.anomalies = states, anomalies
	return anomalies
}

// States returns the state sequence computed by the last Update.
func (s *Stash) States() []*State { return s.states }

// Anomalies returns the anomalies found by the last Update.
func (s *Stash) Anomalies() []Anomaly { return s.anomalies }

// Last returns the final state, nil for an empty ledger.
func (s *Stash) Last() *State {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

// Lots returns the lots as they stand after the last activity.
func (s *Stash) Lots() []*LotState {
	if last := s.Last(); last != nil {
		return last.Lots
	}
	return nil
}

// Balance returns the quantity currently held.
func (s *Stash) Balance() Quantity {
	if last := s.Last(); last != nil {
		return last.Balance()
	}
	return Quantity{}
}

// Add appends a transaction. Update must be called afterwards.
func (s *Stash) Add(tx Transaction) error {
	if tx.record().Asset != s.Asset {
		return fmt.Errorf("cannot add %s of %q to the %q ledger: %w", tx.Kind(), tx.record().Asset, s.Asset, ErrAssetMismatch)
	}
	switch v := tx.(type) {
	case *Acquisition:
		s.Acquisitions = append(s.Acquisitions, v)
	case *Disposition:
		s.Dispositions = append(s.Dispositions, v)
	}
	return nil
}

// Transaction returns the i-th (0-based) transaction of the given kind.
func (s *Stash) Transaction(kind Kind, i int) (Transaction, error) {
	switch kind {
	case KindAcquisition:
		if i >= 0 && i < len(s.Acquisitions) {
			return s.Acquisitions[i], nil
		}
	case KindDisposition:
		if i >= 0 && i < len(s.Dispositions) {
			return s.Dispositions[i], nil
		}
	}
	return nil, fmt.Errorf("no %s at index %d", kind, i)
}

// Remove deletes the i-th (0-based) transaction of the given kind. Update must be called afterwards.
func (s *Stash) Remove(kind Kind, i int) error {
	if _, err := s.Transaction(kind, i); err != nil {
		return err
	}
	switch kind {
	case KindAcquisition:
		s.Acquisitions = slices.Delete(s.Acquisitions, i, i+1)
	case KindDisposition:
		s.Dispositions = slices.Delete(s.Dispositions, i, i+1)
	}
	return nil
}

// SetDisabled disables, or re-enables, the i-th (0-based) transaction of the given kind.
func (s *Stash) SetDisabled(kind Kind, i int, disabled bool) error {
	tx, err := s.Transaction(kind, i)
	if err != nil {
		return err
	}
	tx.record().Disabled = disabled
	return nil
}

// Merge appends the transactions of o into s and updates s.
// Ledgers of different assets are rejected, s is then left untouched.
func (s *Stash) Merge(o *Stash) error {
	if o.Asset != s.Asset {
		return fmt.Errorf("cannot merge %q into %q: %w", o.Asset, s.Asset, ErrAssetMismatch)
	}
	for _, a := range o.Acquisitions {
		s.Acquisitions = append(s.Acquisitions, a.Clone())
	}
	for _, d := range o.Dispositions {
		s.Dispositions = append(s.Dispositions, d.Clone())
	}
	s.Update()
	return nil
}

// Duplicates returns groups of transactions sharing the same fingerprint, in ledger order.
// It is a best effort: legitimate identical transactions are reported too.
func (s *Stash) Duplicates() [][]Transaction {
	var order []string
	groups := make(map[string][]Transaction)
	add := func(tx Transaction) {
		k := tx.Fingerprint().String()
		if _, exists := groups[k]; !exists {
			order = append(order, k)
		}
		groups[k] = append(groups[k], tx)
	}
	for _, a := range s.Acquisitions {
		add(a)
	}
	for _, d := range s.Dispositions {
		add(d)
	}

	var dups [][]Transaction
	for _, k := range order {
		if len(groups[k]) > 1 {
			dups = append(dups, groups[k])
		}
	}
	return dups
}
