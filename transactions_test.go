package stash

import (
	"errors"
	"math"
	"testing"
)

func TestNewAcquisition_Validation(t *testing.T) {
	testCases := []struct {
		name      string
		ts        Timestamp
		asset     string
		amount    Quantity
		price     Money
		reference string
		wantField string
	}{
		{"valid", oct22at1433, "BTC", q("1"), m("100"), "ref", ""},
		{"zero timestamp", 0, "BTC", q("1"), m("100"), "", "timestamp"},
		{"negative timestamp", -1, "BTC", q("1"), m("100"), "", "timestamp"},
		{"NaN timestamp", Timestamp(math.NaN()), "BTC", q("1"), m("100"), "", "timestamp"},
		{"missing asset", oct22at1433, " ", q("1"), m("100"), "", "asset"},
		{"zero amount", oct22at1433, "BTC", q("0"), m("100"), "", "asset_amount"},
		{"negative amount", oct22at1433, "BTC", q("-2"), m("100"), "", "asset_amount"},
		{"zero price", oct22at1433, "BTC", q("1"), m("0"), "", "asset_price"},
		{"invalid reference", oct22at1433, "BTC", q("1"), m("100"), "\xff", "reference"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewAcquisition(tc.ts, tc.asset, tc.amount, tc.price, m("-1"), tc.reference, "")
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("NewAcquisition() unexpected error: %v", err)
				}
				if a == nil {
					t.Fatal("NewAcquisition() = nil")
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("NewAcquisition() error = %v, want a *ValidationError", err)
			}
			if ve.Field != tc.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", ve.Field, tc.wantField)
			}
			if a != nil {
				t.Errorf("NewAcquisition() = %v, want nil on error", a)
			}
		})
	}
}

func TestNewDisposition_Validation(t *testing.T) {
	if _, err := NewDisposition(oct22at1456, "BTC", q("1"), m("-3"), m("0"), "", ""); err == nil {
		t.Error("NewDisposition() with a negative price, want an error")
	}
	d, err := NewDisposition(oct22at1456, "BTC", q("2"), m("3.5"), m("0"), "CB Ref: YBFY7P4C", "")
	if err != nil {
		t.Fatalf("NewDisposition() unexpected error: %v", err)
	}
	if got := d.Value(); !got.Equal(m("7")) {
		t.Errorf("Value() = %v, want 7", got.Decimal())
	}
}

func TestTransaction_Clone(t *testing.T) {
	a := acq(oct22at1433, "1", "100", "0")
	c := a.Clone()
	c.Comment = "edited"
	c.Disabled = true
	if a.Comment != "" || a.Disabled {
		t.Errorf("editing a clone changed the original: %+v", a)
	}
	if a.Fingerprint() != c.Fingerprint() {
		t.Error("Fingerprint() must ignore comments and the disabled flag")
	}
}

func TestTransaction_Fingerprint(t *testing.T) {
	a := acq(oct22at1433, "1.50", "100", "0")
	if a.Fingerprint() != acq(oct22at1433, "1.5", "100", "0").Fingerprint() {
		t.Error("Fingerprint() must not depend on the decimal representation")
	}
	if a.Fingerprint() == acq(oct22at1433+1, "1.5", "100", "0").Fingerprint() {
		t.Error("Fingerprint() must depend on the timestamp")
	}
	if a.Fingerprint() == disp(oct22at1433, "1.5", "100", "0").Fingerprint() {
		t.Error("Fingerprint() must depend on the kind")
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"acq": KindAcquisition, "Disposition": KindDisposition, "disp": KindDisposition} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseKind("buy"); err == nil {
		t.Error("ParseKind(\"buy\") want an error")
	}
}
