package stash

import (
	"errors"
	"fmt"
)

// ErrAssetMismatch is returned when two ledgers, or a ledger and a record, disagree on the asset.
var ErrAssetMismatch = errors.New("asset mismatch")

// ValidationError reports a transaction field that violates its constraint.
type ValidationError struct {
	Field  string // name of the field as found in a ledger file
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// DecodeError locates a malformed record in a ledger file.
//
// List is "acquisitions" or "dispositions", Index the position of the record
// in that list. Both are empty for errors on the document itself.
type DecodeError struct {
	List  string
	Index int
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.List == "" {
		if e.Field == "" {
			return fmt.Sprintf("invalid ledger: %v", e.Err)
		}
		return fmt.Sprintf("invalid ledger %s: %v", e.Field, e.Err)
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid %s[%d]: %v", e.List, e.Index, e.Err)
	}
	return fmt.Sprintf("invalid %s[%d].%s: %v", e.List, e.Index, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
