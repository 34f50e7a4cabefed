// Package writer serializes an invoice model into CII or UBL XML for a
// chosen schema version and profile.
package writer

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/rezonia/einvoice/internal/capability"
	"github.com/rezonia/einvoice/internal/model"
)

// DefaultIndent is the number of spaces per nesting level
const DefaultIndent = 2

// Writer encodes invoices. The zero configuration built by New is safe for
// concurrent use.
type Writer struct {
	logger zerolog.Logger
	indent int
}

// Option configures the writer
type Option func(*Writer)

// WithLogger sets the logger used for debug output
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// WithIndent sets the indentation width
func WithIndent(spaces int) Option {
	return func(w *Writer) {
		w.indent = spaces
	}
}

// New creates a writer
func New(opts ...Option) *Writer {
	w := &Writer{
		logger: zerolog.Nop(),
		indent: DefaultIndent,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Encode serializes inv with a default writer
func Encode(inv *model.Invoice, v model.Version, p model.Profile, d model.Dialect) ([]byte, error) {
	return New().Encode(context.Background(), inv, v, p, d)
}

// Encode serializes inv. Nothing is produced when the combination or any
// tax type is rejected.
func (w *Writer) Encode(ctx context.Context, inv *model.Invoice, v model.Version, p model.Profile, d model.Dialect) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("encode: nil invoice")
	}
	if err := Validate(inv, v, p, d); err != nil {
		return nil, err
	}

	enc := &encoder{
		inv:     inv,
		version: v,
		profile: p,
		dialect: d,
		indent:  w.indent,
		logger:  w.logger.With().Str("invoice_no", inv.InvoiceNo).Logger(),
	}

	doc := enc.build()
	doc.Indent(w.indent)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	w.logger.Debug().
		Str("invoice_no", inv.InvoiceNo).
		Stringer("version", v).
		Stringer("profile", p).
		Stringer("dialect", d).
		Int("lines", len(inv.TradeLineItems)).
		Int("bytes", len(out)).
		Msg("invoice encoded")
	return out, nil
}

// Write encodes inv and copies the result to out
func (w *Writer) Write(ctx context.Context, out io.Writer, inv *model.Invoice, v model.Version, p model.Profile, d model.Dialect) error {
	data, err := w.Encode(ctx, inv, v, p, d)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, bytes.NewReader(data))
	return err
}

// Validate checks that the triple is producible and that every tax type
// in the invoice is accepted by the profile. Line taxes are skipped for
// profiles without line items.
func Validate(inv *model.Invoice, v model.Version, p model.Profile, d model.Dialect) error {
	if err := capability.Supported(v, p, d); err != nil {
		return err
	}

	check := func(t model.TaxType, location string) error {
		if !capability.AcceptsTaxType(p, t) {
			return model.NewTaxTypeError(p, t, location)
		}
		return nil
	}

	for i := range inv.Taxes {
		if err := check(inv.Taxes[i].TypeCode, fmt.Sprintf("tax %d", i+1)); err != nil {
			return err
		}
	}
	for i := range inv.TradeAllowanceCharges {
		if err := check(inv.TradeAllowanceCharges[i].Tax.TypeCode, fmt.Sprintf("allowance/charge %d", i+1)); err != nil {
			return err
		}
	}
	for i := range inv.ServiceCharges {
		if err := check(inv.ServiceCharges[i].Tax.TypeCode, fmt.Sprintf("service charge %d", i+1)); err != nil {
			return err
		}
	}
	if !capability.Has(v, p, d, capability.LineItems) {
		return nil
	}
	for _, item := range inv.TradeLineItems {
		if err := check(item.TaxType, "line "+item.LineID()); err != nil {
			return err
		}
	}
	return nil
}

// encoder holds the state of one Encode call
type encoder struct {
	inv     *model.Invoice
	version model.Version
	profile model.Profile
	dialect model.Dialect
	indent  int
	logger  zerolog.Logger
}

func (e *encoder) support(f capability.Feature) capability.Support {
	return capability.Lookup(e.version, e.profile, e.dialect, f)
}

func (e *encoder) has(f capability.Feature) bool {
	return e.support(f) != capability.Omitted
}

// gate reports whether f is written; present values that are dropped are
// logged
func (e *encoder) gate(f capability.Feature, present bool) bool {
	if !present {
		return false
	}
	if e.has(f) {
		return true
	}
	e.logger.Debug().Stringer("feature", f).Stringer("profile", e.profile).Msg("field not carried by profile, dropped")
	return false
}

func (e *encoder) restricted(f capability.Feature) bool {
	return e.support(f) == capability.Restricted
}
