package writer

import (
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/einvoice/internal/model"
)

const (
	cii102Layout   = "20060102"
	isoDateLayout  = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

func (e *encoder) build() *etree.Document {
	if e.dialect == model.DialectUBL {
		return e.buildUBL()
	}
	return e.buildCII()
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.WriteSettings.CanonicalText = true
	return doc
}

// el creates prefix:tag under parent
func el(parent *etree.Element, prefix, tag string) *etree.Element {
	return parent.CreateElement(prefix + ":" + tag)
}

// textEl creates prefix:tag holding text, nothing when text is empty
func textEl(parent *etree.Element, prefix, tag, text string) *etree.Element {
	if text == "" {
		return nil
	}
	child := el(parent, prefix, tag)
	child.SetText(text)
	return child
}

func attr(e *etree.Element, key, value string) *etree.Element {
	if e != nil && value != "" {
		e.CreateAttr(key, value)
	}
	return e
}

func format102(t time.Time) string {
	return t.Format(cii102Layout)
}

func formatISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

func nonZero(d *decimal.Decimal) bool {
	return d != nil && !d.IsZero()
}

// depth returns the nesting level of e below the document node, the root
// element being 0
func depth(e *etree.Element) int {
	n := 0
	for p := e.Parent(); p != nil && p.Parent() != nil; p = p.Parent() {
		n++
	}
	return n
}

// setBlockText stores multi-line text so that after indentation every line
// sits one level deeper than the element's tags and the closing tag lines
// up with the opening one. Single-line text is stored as is.
func setBlockText(e *etree.Element, text string, indent int) {
	if !strings.Contains(text, "\n") || indent <= 0 {
		e.SetText(text)
		return
	}
	d := depth(e)
	inner := strings.Repeat(" ", (d+1)*indent)
	outer := strings.Repeat(" ", d*indent)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	e.SetText("\n" + inner + strings.Join(lines, "\n"+inner) + "\n" + outer)
}
