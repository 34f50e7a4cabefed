// Package pdf pulls the invoice XML out of PDF/A-3 hybrid invoices
// (ZUGFeRD, Factur-X, XRechnung as PDF).
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"

	"github.com/rezonia/einvoice/internal/signature"
)

// ErrNoInvoiceXML is returned when a PDF embeds no invoice document
var ErrNoInvoiceXML = errors.New("pdf: no embedded invoice XML")

// InvoiceFileNames are the attachment names used by the hybrid formats, in
// order of preference
var InvoiceFileNames = []string{
	"factur-x.xml",
	"zugferd-invoice.xml",
	"xrechnung.xml",
	"zugferd_invoice.xml",
}

// Attachment is one embedded file
type Attachment struct {
	Name        string
	Description string
	Data        []byte
}

// Extractor reads embedded files from PDF documents
type Extractor struct {
	conf   *model.Configuration
	logger zerolog.Logger
}

// Option configures the extractor
type Option func(*Extractor)

// WithLogger sets the logger used for debug output
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a PDF attachment extractor
func NewExtractor(opts ...Option) *Extractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	e := &Extractor{
		conf:   conf,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsPDF reports whether data starts with the PDF header
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// PageCount returns the number of pages
func (e *Extractor) PageCount(ctx context.Context, data []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !IsPDF(data) {
		return 0, fmt.Errorf("pdf: not a PDF document")
	}
	n, err := api.PageCount(bytes.NewReader(data), e.conf)
	if err != nil {
		return 0, fmt.Errorf("pdf: failed to get page count: %w", err)
	}
	return n, nil
}

// Attachments returns every embedded file of the document
func (e *Extractor) Attachments(ctx context.Context, r io.Reader) ([]Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pdf: failed to read content: %w", err)
	}
	if !IsPDF(content) {
		return nil, fmt.Errorf("pdf: not a PDF document")
	}

	raw, err := api.ExtractAttachmentsRaw(bytes.NewReader(content), "", nil, e.conf)
	if err != nil {
		return nil, fmt.Errorf("pdf: failed to extract attachments: %w", err)
	}

	out := make([]Attachment, 0, len(raw))
	for _, a := range raw {
		if a.Reader == nil {
			continue
		}
		data, err := io.ReadAll(a.Reader)
		if err != nil {
			return nil, fmt.Errorf("pdf: failed to read attachment %q: %w", a.FileName, err)
		}
		out = append(out, Attachment{Name: a.FileName, Description: a.Desc, Data: data})
	}

	e.logger.Debug().Int("attachments", len(out)).Msg("pdf attachments extracted")
	return out, nil
}

// ExtractInvoiceXML returns the embedded invoice document and its file name.
// Well-known names win; otherwise the first XML attachment that carries a
// recognizable invoice root is used.
func (e *Extractor) ExtractInvoiceXML(ctx context.Context, r io.Reader) ([]byte, string, error) {
	attachments, err := e.Attachments(ctx, r)
	if err != nil {
		return nil, "", err
	}

	if a := pickInvoice(attachments); a != nil {
		e.logger.Debug().Str("attachment", a.Name).Int("bytes", len(a.Data)).Msg("invoice XML found in PDF")
		return a.Data, a.Name, nil
	}
	return nil, "", ErrNoInvoiceXML
}

func pickInvoice(attachments []Attachment) *Attachment {
	for _, name := range InvoiceFileNames {
		for i := range attachments {
			if strings.EqualFold(attachments[i].Name, name) {
				return &attachments[i]
			}
		}
	}
	for i := range attachments {
		a := &attachments[i]
		if !strings.EqualFold(path.Ext(a.Name), ".xml") {
			continue
		}
		if _, err := signature.DetectVersion(a.Data); err == nil {
			return a
		}
	}
	return nil
}
