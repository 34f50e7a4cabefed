package einvoice

import (
	"bytes"
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/rezonia/einvoice/internal/processor"
	"github.com/rezonia/einvoice/internal/writer"
)

// Result is the outcome of decoding one XML document or hybrid PDF
type Result struct {
	JobID      string
	Source     string // "xml" or "pdf"
	Attachment string // embedded file name for PDFs
	Tag        Tag
	Invoice    *Invoice
	Warnings   []string
}

// Processor decodes XML documents and hybrid PDFs and converts them
// between versions, profiles and dialects
type Processor struct {
	pipeline *processor.Pipeline
}

// ProcessorOption configures a Processor
type ProcessorOption func(*processorOptions)

type processorOptions struct {
	logger zerolog.Logger
	indent int
}

// WithLogger sets the logger used by every stage
func WithLogger(logger zerolog.Logger) ProcessorOption {
	return func(o *processorOptions) {
		o.logger = logger
	}
}

// WithIndent sets the indentation of encoded output. A negative value
// writes the document without any whitespace between elements.
func WithIndent(spaces int) ProcessorOption {
	return func(o *processorOptions) {
		o.indent = spaces
	}
}

// NewProcessor creates a new processor
func NewProcessor(opts ...ProcessorOption) *Processor {
	o := processorOptions{logger: zerolog.Nop(), indent: writer.DefaultIndent}
	for _, opt := range opts {
		opt(&o)
	}

	return &Processor{pipeline: processor.NewPipeline(
		processor.WithLogger(o.logger),
		processor.WithIndent(o.indent),
	)}
}

// Process decodes an XML document or a hybrid PDF read from r
func (p *Processor) Process(ctx context.Context, r io.Reader) (*Result, error) {
	res := p.pipeline.Process(ctx, r)
	if res.Error != nil {
		return nil, res.Error
	}
	return toResult(res), nil
}

// Convert decodes data and re-encodes the invoice for the target triple
func (p *Processor) Convert(ctx context.Context, data []byte, v Version, pr Profile, d Dialect) ([]byte, *Result, error) {
	out, res, err := p.pipeline.Convert(ctx, data, v, pr, d)
	if err != nil {
		return nil, nil, err
	}
	return out, toResult(res), nil
}

// Encode serializes inv with the processor's indentation
func (p *Processor) Encode(ctx context.Context, inv *Invoice, v Version, pr Profile, d Dialect) ([]byte, error) {
	return p.pipeline.Encode(ctx, inv, v, pr, d)
}

// ProcessBatch processes multiple inputs concurrently. Results are aligned
// with inputs; failed entries are nil and the first error is returned.
func (p *Processor) ProcessBatch(ctx context.Context, inputs [][]byte) ([]*Result, error) {
	results := make([]*Result, len(inputs))
	errCh := make(chan error, len(inputs))

	for i, input := range inputs {
		go func(idx int, data []byte) {
			result, err := p.Process(ctx, bytes.NewReader(data))
			if err != nil {
				errCh <- err
				return
			}
			results[idx] = result
			errCh <- nil
		}(i, input)
	}

	var firstErr error
	for range inputs {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}

func toResult(res *processor.Result) *Result {
	return &Result{
		JobID:      res.JobID,
		Source:     string(res.Source),
		Attachment: res.Attachment,
		Tag:        res.Tag,
		Invoice:    res.Invoice,
		Warnings:   res.Warnings,
	}
}
