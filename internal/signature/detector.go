// Package signature identifies the version, profile and dialect of an
// e-invoice document from its first bytes, without parsing the whole tree.
package signature

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"

	"github.com/rezonia/einvoice/internal/dialect"
	"github.com/rezonia/einvoice/internal/model"
)

// Input formats
const (
	FormatXML = "xml"
	FormatPDF = "pdf"
)

// ScanLimit is the number of leading bytes inspected
const ScanLimit = 64 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Tag is the detected identity of a document
type Tag struct {
	Version     model.Version `json:"version"`
	Profile     model.Profile `json:"profile"`
	Dialect     model.Dialect `json:"dialect"`
	GuidelineID string        `json:"guideline_id,omitempty"`
	Root        string        `json:"root"`
	Namespace   string        `json:"namespace,omitempty"`
}

var (
	guidelinePattern     = regexp.MustCompile(`(?s)GuidelineSpecifiedDocumentContextParameter[^>]*>\s*<(?:[\w.-]+:)?ID[^>]*>([^<]*)<`)
	customizationPattern = regexp.MustCompile(`<(?:[\w.-]+:)?CustomizationID[^>]*>([^<]*)<`)
)

// DetectFormat reports whether data looks like a PDF or an XML document,
// empty when it is neither
func DetectFormat(data []byte) string {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")
	switch {
	case bytes.HasPrefix(trimmed, []byte("%PDF-")):
		return FormatPDF
	case bytes.HasPrefix(trimmed, []byte("<")):
		return FormatXML
	}
	return ""
}

// CanDetect is a quick check that data starts like an XML document
func CanDetect(data []byte) bool {
	return len(data) >= 5 && DetectFormat(data) == FormatXML
}

// DetectVersion classifies a document. Only the first ScanLimit bytes are
// read, so truncated input works as long as it still holds the root start
// tag (and the guideline identifier, for the profile).
func DetectVersion(content []byte) (Tag, error) {
	window := content
	if len(window) > ScanLimit {
		window = window[:ScanLimit]
	}
	window = bytes.TrimPrefix(window, utf8BOM)

	root, ns, err := readRoot(window)
	if err != nil {
		return Tag{}, err
	}
	tag := Tag{Root: root, Namespace: ns}

	switch {
	case isCIIRoot(root, ns):
		tag.Dialect = model.DialectCII
		if root == dialect.CII1.Root {
			tag.Version = model.Version1
		} else {
			tag.Version = model.Version23
		}
		tag.GuidelineID = firstSubmatch(guidelinePattern, window)
	case isUBLRoot(root, ns):
		tag.Dialect = model.DialectUBL
		tag.Version = model.Version23
		tag.GuidelineID = firstSubmatch(customizationPattern, window)
	default:
		return Tag{}, model.NewDocumentError("unrecognized root element "+qualified(ns, root), nil)
	}

	if v, p, ok := dialect.ResolveGuideline(tag.GuidelineID); ok {
		tag.Profile = p
		// the root decides between 1.0 and 2.x, the identifier within 2.x
		if tag.Dialect == model.DialectCII && (v == model.Version1) == (tag.Version == model.Version1) {
			tag.Version = v
		}
	}
	return tag, nil
}

func isCIIRoot(root, ns string) bool {
	if v, ok := dialect.CIIForNamespace(ns); ok {
		return v.Root == root
	}
	return ns == "" && (root == dialect.CII1.Root || root == dialect.CII2.Root)
}

func isUBLRoot(root, ns string) bool {
	v, ok := dialect.UBLForNamespace(ns)
	return ok && v.Root == root
}

// readRoot returns the local name and namespace URI of the first element.
// The namespace is empty when the prefix is not declared on the root.
func readRoot(window []byte) (string, string, error) {
	dec := xml.NewDecoder(bytes.NewReader(window))
	dec.Strict = false
	dec.CharsetReader = dialect.CharsetReader

	for {
		tok, err := dec.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", "", model.NewDocumentError("no root element", nil)
			}
			return "", "", model.NewDocumentError("cannot read root element", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		return start.Name.Local, declaredNamespace(start), nil
	}
}

func declaredNamespace(start xml.StartElement) string {
	prefix := start.Name.Space
	for _, attr := range start.Attr {
		if prefix == "" && attr.Name.Space == "" && attr.Name.Local == "xmlns" {
			return attr.Value
		}
		if prefix != "" && attr.Name.Space == "xmlns" && attr.Name.Local == prefix {
			return attr.Value
		}
	}
	return ""
}

func firstSubmatch(re *regexp.Regexp, window []byte) string {
	m := re.FindSubmatch(window)
	if m == nil {
		return ""
	}
	return string(bytes.TrimSpace(m[1]))
}

func qualified(ns, local string) string {
	if ns == "" {
		return local
	}
	return "{" + ns + "}" + local
}
