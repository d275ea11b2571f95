package stash

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// stashRecord is the ledger file document.
type stashRecord struct {
	Asset        string              `json:"asset" validate:"required"`
	Title        string              `json:"title"`
	Currency     string              `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Acquisitions []transactionRecord `json:"acquisitions"`
	Dispositions []transactionRecord `json:"dispositions"`
}

// transactionRecord is one acquisition or disposition as found in a ledger file.
// Numbers are pointers so that a missing field is told apart from a zero.
type transactionRecord struct {
	Timestamp float64          `json:"timestamp" validate:"gt=0"`
	Asset     string           `json:"asset" validate:"required"`
	Amount    *decimal.Decimal `json:"asset_amount" validate:"required,gt=0"`
	Price     *decimal.Decimal `json:"asset_price" validate:"required,gt=0"`
	Fees      *decimal.Decimal `json:"fees" validate:"required"`
	Reference string           `json:"reference"`
	Comment   string           `json:"comment"`
	Disabled  bool             `json:"disabled,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their name in the file
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// decimals are validated as numbers
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("iso4217", func(fl validator.FieldLevel) bool {
		return money.GetCurrency(fl.Field().String()) != nil
	})
	return v
}

// reason turns a validation failure into a short human message.
func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is missing"
	case "gt":
		return "must be positive"
	case "iso4217":
		return "is not a known currency"
	default:
		return "fails " + fe.Tag()
	}
}

// validationFailure converts the first failure reported by the validator.
func validationFailure(err error, list string, index int) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		return &DecodeError{List: list, Index: index, Field: fe.Field(), Err: errors.New(reason(fe))}
	}
	return &DecodeError{List: list, Index: index, Err: err}
}

func (r transactionRecord) base() txBase {
	return txBase{
		Timestamp: Timestamp(r.Timestamp),
		Asset:     r.Asset,
		Amount:    Q(*r.Amount),
		UnitPrice: M(*r.Price, ""),
		Fees:      M(*r.Fees, ""),
		Reference: r.Reference,
		Comment:   r.Comment,
		Disabled:  r.Disabled,
	}
}

// decodeRecord validates r and builds the transaction through the validating constructors.
func decodeRecord[T Transaction](asset, list string, i int, r transactionRecord, newTx func(Timestamp, string, Quantity, Money, Money, string, string) (T, error)) (T, error) {
	var zero T
	if err := validate.Struct(r); err != nil {
		return zero, validationFailure(err, list, i)
	}
	if r.Asset != asset {
		return zero, &DecodeError{List: list, Index: i, Field: "asset", Err: fmt.Errorf("%q in a %q ledger: %w", r.Asset, asset, ErrAssetMismatch)}
	}
	b := r.base()
	tx, err := newTx(b.Timestamp, b.Asset, b.Amount, b.UnitPrice, b.Fees, b.Reference, b.Comment)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return zero, &DecodeError{List: list, Index: i, Field: ve.Field, Err: errors.New(ve.Reason)}
		}
		return zero, &DecodeError{List: list, Index: i, Err: err}
	}
	tx.record().Disabled = r.Disabled
	return tx, nil
}

// DecodeStash reads a ledger document from r and updates it.
//
// Every record is validated, the first invalid one is reported as a *DecodeError
// and no ledger is returned.
func DecodeStash(r io.Reader) (*Stash, error) {
	var doc stashRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if err := validate.Struct(doc); err != nil {
		return nil, validationFailure(err, "", 0)
	}

	s := New(doc.Asset, doc.Title)
	s.Currency = doc.Currency
	for i, rec := range doc.Acquisitions {
		a, err := decodeRecord(doc.Asset, "acquisitions", i, rec, NewAcquisition)
		if err != nil {
			return nil, err
		}
		s.Acquisitions = append(s.Acquisitions, a)
	}
	for i, rec := range doc.Dispositions {
		d, err := decodeRecord(doc.Asset, "dispositions", i, rec, NewDisposition)
		if err != nil {
			return nil, err
		}
		s.Dispositions = append(s.Dispositions, d)
	}
	s.Update()
	return s, nil
}

// MarshalJSON writes a transaction record with a stable key order.
func (t txBase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("timestamp", float64(t.Timestamp))
	w.Append("asset", t.Asset)
	w.Append("asset_amount", t.Amount)
	w.Append("asset_price", t.UnitPrice)
	w.Append("fees", t.Fees)
	w.Append("reference", t.Reference)
	w.Append("comment", t.Comment)
	w.Optional("disabled", t.Disabled)
	return w.MarshalJSON()
}

// EncodeStash writes the ledger document of s to w, indented.
func EncodeStash(w io.Writer, s *Stash) error {
	var o jsonObjectWriter
	o.Append("asset", s.Asset)
	o.Append("title", s.Title)
	o.Optional("currency", s.Currency)
	// lists are never null
	acqs := make([]json.Marshaler, 0, len(s.Acquisitions))
	for _, a := range s.Acquisitions {
		acqs = append(acqs, a.txBase)
	}
	disps := make([]json.Marshaler, 0, len(s.Dispositions))
	for _, d := range s.Dispositions {
		disps = append(disps, d.txBase)
	}
	o.Append("acquisitions", acqs)
	o.Append("dispositions", disps)

	raw, err := o.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode ledger %q: %w", s.Asset, err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}
