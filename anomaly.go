package stash

import "fmt"

// Anomaly reports a disposition that could not be fully matched against open lots.
//
// The ledger keeps going: the matched part is consumed and the remainder is dropped.
type Anomaly struct {
	Index     int       // position of the activity in the state sequence
	Timestamp Timestamp // of the disposition
	Requested Quantity  // disposition amount
	Remaining Quantity  // unmatched quantity, always positive
}

func (a Anomaly) Error() string {
	return fmt.Sprintf("activity #%d on %s: disposition of %s overdrawn by %s", a.Index, a.Timestamp, a.Requested, a.Remaining)
}
