// Package processor runs the decode pipeline: detect the input format,
// pull the invoice XML out of hybrid PDFs, decode it, and optionally
// re-encode it in another version, profile or dialect.
package processor

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/internal/parser/pdf"
	"github.com/rezonia/einvoice/internal/parser/xml"
	"github.com/rezonia/einvoice/internal/signature"
	"github.com/rezonia/einvoice/internal/writer"
)

// Source indicates where the invoice XML came from
type Source string

const (
	SourceXML Source = "xml"
	SourcePDF Source = "pdf"
)

// Result is the outcome of one pipeline run
type Result struct {
	JobID      string         `json:"job_id"`
	Source     Source         `json:"source,omitempty"`
	Attachment string         `json:"attachment,omitempty"`
	Tag        signature.Tag  `json:"tag"`
	Invoice    *model.Invoice `json:"invoice,omitempty"`
	Warnings   []string       `json:"warnings,omitempty"`
	Error      error          `json:"-"`
}

// Pipeline wires the PDF extractor, the XML registry and the writer
type Pipeline struct {
	registry *xml.Registry
	pdf      *pdf.Extractor
	writer   *writer.Writer
	logger   zerolog.Logger
	indent   int
}

// PipelineOption configures the pipeline
type PipelineOption func(*Pipeline)

// WithLogger sets the logger handed to every stage
func WithLogger(logger zerolog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithIndent sets the indentation of encoded output
func WithIndent(spaces int) PipelineOption {
	return func(p *Pipeline) {
		p.indent = spaces
	}
}

// NewPipeline creates a new pipeline
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		logger: zerolog.Nop(),
		indent: writer.DefaultIndent,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.registry = xml.NewRegistry(xml.WithLogger(p.logger))
	p.pdf = pdf.NewExtractor(pdf.WithLogger(p.logger))
	p.writer = writer.New(writer.WithLogger(p.logger), writer.WithIndent(p.indent))
	return p
}

// Process reads r and decodes it
func (p *Pipeline) Process(ctx context.Context, r io.Reader) *Result {
	data, err := io.ReadAll(r)
	if err != nil {
		return &Result{
			JobID: uuid.NewString(),
			Error: fmt.Errorf("failed to read input: %w", err),
		}
	}
	return p.ProcessBytes(ctx, data)
}

// ProcessBytes decodes an XML document or a hybrid PDF
func (p *Pipeline) ProcessBytes(ctx context.Context, data []byte) *Result {
	res := &Result{JobID: uuid.NewString()}
	log := p.logger.With().Str("job_id", res.JobID).Logger()

	content, err := p.invoiceXML(ctx, data, res)
	if err != nil {
		res.Error = err
		log.Debug().Err(err).Msg("no invoice XML in input")
		return res
	}

	tag, err := signature.DetectVersion(content)
	if err != nil {
		res.Error = fmt.Errorf("detection failed: %w", err)
		return res
	}
	res.Tag = tag
	if tag.Profile == model.ProfileUnknown {
		res.Warnings = append(res.Warnings, fmt.Sprintf("guideline identifier %q not recognized", tag.GuidelineID))
	}

	inv, err := p.registry.Parse(ctx, bytes.NewReader(content))
	if err != nil {
		res.Error = fmt.Errorf("decoding failed: %w", err)
		return res
	}
	res.Invoice = inv
	for _, verr := range inv.Validate() {
		res.Warnings = append(res.Warnings, verr.Error())
	}

	log.Debug().
		Str("source", string(res.Source)).
		Stringer("dialect", tag.Dialect).
		Stringer("version", tag.Version).
		Stringer("profile", tag.Profile).
		Str("invoice_no", inv.InvoiceNo).
		Int("warnings", len(res.Warnings)).
		Msg("document processed")
	return res
}

func (p *Pipeline) invoiceXML(ctx context.Context, data []byte, res *Result) ([]byte, error) {
	switch DetectFormat(data) {
	case FormatXML:
		res.Source = SourceXML
		return data, nil
	case FormatPDF:
		res.Source = SourcePDF
		content, name, err := p.pdf.ExtractInvoiceXML(ctx, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		res.Attachment = name
		return content, nil
	}
	return nil, model.NewDocumentError("unsupported input format", nil)
}

// Encode serializes inv with the pipeline's writer
func (p *Pipeline) Encode(ctx context.Context, inv *model.Invoice, v model.Version, pr model.Profile, d model.Dialect) ([]byte, error) {
	return p.writer.Encode(ctx, inv, v, pr, d)
}

// Convert decodes data and encodes the result for the target triple. The
// decode result is returned even when encoding fails.
func (p *Pipeline) Convert(ctx context.Context, data []byte, v model.Version, pr model.Profile, d model.Dialect) ([]byte, *Result, error) {
	res := p.ProcessBytes(ctx, data)
	if res.Error != nil {
		return nil, res, res.Error
	}
	out, err := p.writer.Encode(ctx, res.Invoice, v, pr, d)
	if err != nil {
		return nil, res, fmt.Errorf("encoding failed: %w", err)
	}
	return out, res, nil
}

// Format is the container format of an input
type Format int

const (
	FormatUnknown Format = iota
	FormatXML
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// DetectFormat detects the container format from the leading bytes
func DetectFormat(data []byte) Format {
	switch signature.DetectFormat(data) {
	case signature.FormatXML:
		return FormatXML
	case signature.FormatPDF:
		return FormatPDF
	}
	return FormatUnknown
}
