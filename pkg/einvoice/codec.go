package einvoice

import (
	"context"
	"io"

	"github.com/rezonia/einvoice/internal/capability"
	"github.com/rezonia/einvoice/internal/parser/xml"
	"github.com/rezonia/einvoice/internal/signature"
	"github.com/rezonia/einvoice/internal/writer"
)

// Combination is one producible version/profile/dialect triple
type Combination = capability.Combination

// Encode serializes inv for the given triple
func Encode(inv *Invoice, v Version, p Profile, d Dialect) ([]byte, error) {
	return writer.Encode(inv, v, p, d)
}

// EncodeTo serializes inv and writes the document to w
func EncodeTo(ctx context.Context, w io.Writer, inv *Invoice, v Version, p Profile, d Dialect) error {
	return writer.New().Write(ctx, w, inv, v, p, d)
}

// Decode reads a CII or UBL document of any supported version
func Decode(data []byte) (*Invoice, error) {
	return xml.Decode(data)
}

// DecodeFrom reads a CII or UBL document from r
func DecodeFrom(ctx context.Context, r io.Reader) (*Invoice, error) {
	return xml.NewRegistry().Parse(ctx, r)
}

// DetectVersion identifies the version, profile and dialect of a document
// without decoding it
func DetectVersion(data []byte) (Tag, error) {
	return signature.DetectVersion(data)
}

// Supported returns nil when the triple can be written
func Supported(v Version, p Profile, d Dialect) error {
	return capability.Supported(v, p, d)
}

// Combinations lists every producible triple
func Combinations() []Combination {
	return capability.Combinations()
}
