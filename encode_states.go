package stash

import (
	"encoding/json"
	"io"
)

// MarshalJSON implements json.Marshaler.
func (l *Lot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("lot", l.Number)
	w.Append("initial_timestamp", float64(l.InitialTimestamp))
	w.Append("initial_balance", l.InitialBalance)
	w.Append("basis_price", l.UnitCostBasis)
	return w.MarshalJSON()
}

// MarshalJSON writes the lot identity and the last activity that touched it.
func (l *LotState) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(l.Lot)
	w.Append("balance", l.Balance)
	if l.Affected() {
		w.Append("update_timestamp", float64(l.LastUpdate))
		w.Append("update_amount_delta", l.LastConsumed)
		w.Append("update_asset_price", l.LastUnitPrice)
		w.Append("update_fees", l.LastFees)
		w.Append("long_term", l.IsLongTerm())
		if l.LastConsumed.IsNegative() {
			w.Append("cap_gains", l.CapitalGain())
		}
	}
	return w.MarshalJSON()
}

// MarshalJSON writes the activity, every lot, and the derived values of the state.
func (s *State) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("index", s.Index)
	w.Append("type", s.Activity.Kind().String())
	w.Append("activity", s.Activity.Transaction())
	lots := s.Lots
	if lots == nil {
		lots = []*LotState{}
	}
	w.Append("lots", lots)
	w.Append("balance", s.Balance())

	if g := s.CapitalGains(); !g.IsZero() {
		var gains jsonObjectWriter
		if g.HasLong {
			gains.Append("L", g.Long)
		}
		if g.HasShort {
			gains.Append("S", g.Short)
		}
		w.Append("cap_gains", &gains)
	}
	if s.Overdraw.IsPositive() {
		w.Append("overdraw", s.Overdraw)
	}
	return w.MarshalJSON()
}

// MarshalJSON implements json.Marshaler.
func (a Anomaly) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("index", a.Index)
	w.Append("timestamp", float64(a.Timestamp))
	w.Append("requested", a.Requested)
	w.Append("remaining", a.Remaining)
	return w.MarshalJSON()
}

// EncodeStates writes the derived states and anomalies of s as a JSON document.
func EncodeStates(w io.Writer, s *Stash) error {
	doc := struct {
		Asset     string    `json:"asset"`
		Balance   Quantity  `json:"balance"`
		States    []*State  `json:"states"`
		Anomalies []Anomaly `json:"anomalies"`
	}{
		Asset:     s.Asset,
		Balance:   s.Balance(),
		States:    s.States(),
		Anomalies: s.Anomalies(),
	}
	if doc.States == nil {
		doc.States = []*State{}
	}
	if doc.Anomalies == nil {
		doc.Anomalies = []Anomaly{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
