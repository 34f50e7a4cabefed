package pdf_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/einvoice/internal/parser/pdf"
)

const ciiDocument = `<?xml version="1.0" encoding="UTF-8"?>
<rsm:CrossIndustryInvoice xmlns:rsm="urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"/>`

type embedded struct {
	name string
	data string
}

// buildPDF writes a one-page PDF with the given files in its EmbeddedFiles
// name tree. Names must be passed in sorted order.
func buildPDF(files ...embedded) []byte {
	var names bytes.Buffer
	for i, f := range files {
		fmt.Fprintf(&names, "(%s) %d 0 R ", f.name, 4+2*i)
	}

	catalog := "<< /Type /Catalog /Pages 2 0 R"
	if len(files) > 0 {
		catalog += " /Names << /EmbeddedFiles << /Names [" + names.String() + "] >> >>"
	}
	catalog += " >>"

	objects := []string{
		catalog,
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << >> >>",
	}
	for i, f := range files {
		stream := 5 + 2*i
		objects = append(objects,
			fmt.Sprintf("<< /Type /Filespec /F (%s) /UF (%s) /Desc (Invoice data) /EF << /F %d 0 R /UF %d 0 R >> >>", f.name, f.name, stream, stream),
			fmt.Sprintf("<< /Type /EmbeddedFile /Subtype /text#2Fxml /Length %d >>\nstream\n%s\nendstream", len(f.data), f.data),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestIsPDF(t *testing.T) {
	assert.True(t, pdf.IsPDF([]byte("%PDF-1.4\n")))
	assert.False(t, pdf.IsPDF([]byte("<?xml version=\"1.0\"?>")))
	assert.False(t, pdf.IsPDF(nil))
}

func TestExtractor_PageCount(t *testing.T) {
	e := pdf.NewExtractor()

	n, err := e.PageCount(context.Background(), buildPDF())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = e.PageCount(context.Background(), []byte("plain text"))
	assert.Error(t, err)
}

func TestExtractor_ExtractInvoiceXML(t *testing.T) {
	tests := []struct {
		name     string
		files    []embedded
		wantName string
	}{
		{
			name:     "factur-x",
			files:    []embedded{{"factur-x.xml", ciiDocument}},
			wantName: "factur-x.xml",
		},
		{
			name:     "zugferd next to other files",
			files:    []embedded{{"notes.txt", "hello"}, {"zugferd-invoice.xml", ciiDocument}},
			wantName: "zugferd-invoice.xml",
		},
		{
			name:     "unknown name with invoice root",
			files:    []embedded{{"other.xml", "<root/>"}, {"rechnung.xml", ciiDocument}},
			wantName: "rechnung.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, name, err := pdf.NewExtractor().ExtractInvoiceXML(context.Background(), bytes.NewReader(buildPDF(tt.files...)))
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, ciiDocument, string(data))
		})
	}
}

func TestExtractor_Attachments(t *testing.T) {
	attachments, err := pdf.NewExtractor().Attachments(context.Background(),
		bytes.NewReader(buildPDF(embedded{"a.txt", "first"}, embedded{"b.txt", "second"})))
	require.NoError(t, err)
	require.Len(t, attachments, 2)

	byName := map[string]string{}
	for _, a := range attachments {
		byName[a.Name] = string(a.Data)
	}
	assert.Equal(t, "first", byName["a.txt"])
	assert.Equal(t, "second", byName["b.txt"])
}

func TestExtractor_NoInvoice(t *testing.T) {
	e := pdf.NewExtractor()

	// without a name tree pdfcpu may already refuse the extraction
	_, _, err := e.ExtractInvoiceXML(context.Background(), bytes.NewReader(buildPDF()))
	assert.Error(t, err)

	_, _, err = e.ExtractInvoiceXML(context.Background(), bytes.NewReader(buildPDF(embedded{"notes.txt", "hello"})))
	assert.True(t, errors.Is(err, pdf.ErrNoInvoiceXML))
}

func TestExtractor_Errors(t *testing.T) {
	e := pdf.NewExtractor()

	_, err := e.Attachments(context.Background(), bytes.NewReader([]byte(ciiDocument)))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = e.ExtractInvoiceXML(ctx, bytes.NewReader(buildPDF()))
	assert.ErrorIs(t, err, context.Canceled)
}
