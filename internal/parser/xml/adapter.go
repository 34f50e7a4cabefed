// Package xml reads CII and UBL e-invoice documents into the invoice model.
package xml

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/rezonia/einvoice/internal/dialect"
	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/internal/signature"
)

// Adapter parses one XML dialect into an Invoice
type Adapter interface {
	// Parse parses XML content into Invoice
	Parse(ctx context.Context, r io.Reader) (*model.Invoice, error)

	// CanParse returns true if adapter can handle this content
	CanParse(content []byte) bool

	// Dialect returns the XML vocabulary handled
	Dialect() model.Dialect
}

// Option configures adapters and registries
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used for debug output
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Registry holds the registered adapters
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates a registry with the CII and UBL adapters
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		adapters: []Adapter{
			NewCIIAdapter(opts...),
			NewUBLAdapter(opts...),
		},
	}
}

// Detect picks the adapter for content
func (r *Registry) Detect(content []byte) (Adapter, error) {
	for _, a := range r.adapters {
		if a.CanParse(content) {
			return a, nil
		}
	}
	// surface the detector's reason when it has one
	if _, err := signature.DetectVersion(content); err != nil {
		return nil, err
	}
	return nil, model.NewDocumentError("no adapter for document", nil)
}

// Parse reads a document and decodes it with the matching adapter
func (r *Registry) Parse(ctx context.Context, in io.Reader) (*model.Invoice, error) {
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, model.NewParseError(model.DialectUnknown, "content", "failed to read content", err)
	}
	adapter, err := r.Detect(content)
	if err != nil {
		return nil, err
	}
	return adapter.Parse(ctx, bytes.NewReader(content))
}

// RegisterAdapter adds a custom adapter ahead of the built-in ones
func (r *Registry) RegisterAdapter(a Adapter) {
	r.adapters = append([]Adapter{a}, r.adapters...)
}

// GetAdapter returns the adapter for a dialect
func (r *Registry) GetAdapter(d model.Dialect) Adapter {
	for _, a := range r.adapters {
		if a.Dialect() == d {
			return a
		}
	}
	return nil
}

var defaultRegistry = NewRegistry()

// Decode decodes a CII or UBL document
func Decode(content []byte) (*model.Invoice, error) {
	return defaultRegistry.Parse(context.Background(), bytes.NewReader(content))
}

// readDocument reads content into a tree and returns it with its detected tag
func readDocument(ctx context.Context, in io.Reader, d model.Dialect) (*etree.Element, signature.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, signature.Tag{}, err
	}
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, signature.Tag{}, model.NewParseError(d, "content", "failed to read content", err)
	}

	tag, err := signature.DetectVersion(content)
	if err != nil {
		return nil, signature.Tag{}, err
	}
	if tag.Dialect != d {
		return nil, tag, model.NewDocumentError("document is "+tag.Dialect.String()+", not "+d.String(), nil)
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = dialect.CharsetReader
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, tag, model.NewDocumentError("cannot parse XML", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, tag, model.NewDocumentError("empty document", nil)
	}
	return root, tag, nil
}

// decodeBinary decodes base64 content that may be wrapped over several lines
func decodeBinary(text string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.Join(strings.Fields(text), ""))
}

// requireHeader enforces the fields every document must carry
func requireHeader(inv *model.Invoice, d model.Dialect) error {
	switch {
	case inv.InvoiceNo == "":
		return model.NewFieldError("invoice number", d)
	case inv.InvoiceDate == nil:
		return model.NewFieldError("issue date", d)
	case inv.Currency == "":
		return model.NewFieldError("currency", d)
	}
	return nil
}
