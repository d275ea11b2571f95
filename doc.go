// Package stash keeps the tax-lot ledger of a single fungible asset.
//
// A ledger, the Stash, holds acquisitions and dispositions. Each enabled
// acquisition opens a lot, each enabled disposition consumes lots in creation
// order (first in, first out). Update folds the time ordered transactions into
// a sequence of immutable States, one per activity, from which capital gains
// and the entries of IRS Form 8949 are derived.
//
// Disposing of more than what is held is not an error: the unmatched quantity
// is reported as an Anomaly and the fold carries on.
//
// Ledgers are persisted as a single JSON document (see DecodeStash and
// EncodeStash). This package is the foundation of the `fifo` command line tool.
package stash
