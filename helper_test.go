package stash

// timestamps of the reference ledger, in UTC.
const (
	oct22at1433 Timestamp = 1445524380 // 2015-10-22 14:33:00
	oct22at1456 Timestamp = 1445525760 // 2015-10-22 14:56:00
	dec01at1419 Timestamp = 1448979540 // 2015-12-01 14:19:00
	jul29at0349 Timestamp = 1469764141 // 2016-07-29 03:49:01
	aug10at1408 Timestamp = 1470838080 // 2016-08-10 14:08:00
	jan01y2017  Timestamp = 1483228800 // 2017-01-01 00:00:00
)

const day Timestamp = 24 * 60 * 60

// q is a helper for test to create an exact quantity from a decimal string.
func q(s string) Quantity {
	v, err := ParseQuantity(s)
	if err != nil {
		panic(err)
	}
	return v
}

// m is a helper for test to create an exact money with no currency from a decimal string.
func m(s string) Money {
	v, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return v
}

// acq returns a BTC acquisition, it panics on invalid fields.
func acq(ts Timestamp, amount, price, fees string) *Acquisition {
	a, err := NewAcquisition(ts, "BTC", q(amount), m(price), m(fees), "", "")
	if err != nil {
		panic(err)
	}
	return a
}

// disp returns a BTC disposition, it panics on invalid fields.
func disp(ts Timestamp, amount, price, fees string) *Disposition {
	d, err := NewDisposition(ts, "BTC", q(amount), m(price), m(fees), "", "")
	if err != nil {
		panic(err)
	}
	return d
}

// newStash returns an updated BTC ledger made of txs.
func newStash(txs ...Transaction) *Stash {
	s := New("BTC", "test")
	for _, tx := range txs {
		if err := s.Add(tx); err != nil {
			panic(err)
		}
	}
	s.Update()
	return s
}
