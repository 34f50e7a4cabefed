package xml

import (
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/einvoice/internal/decimal"
)

// node wraps an element for namespace aware lookups. The zero node stands
// for an absent element; every accessor on it returns the empty value.
type node struct {
	e *etree.Element
}

func (n node) exists() bool {
	return n.e != nil
}

// hasLocalName reports whether e is named local in namespace ns. An
// element whose prefix is declared nowhere in scope matches on the local
// name alone.
func hasLocalName(e *etree.Element, ns, local string) bool {
	if e.Tag != local {
		return false
	}
	uri := e.NamespaceURI()
	return uri == ns || uri == ""
}

func (n node) child(ns, local string) node {
	if n.e == nil {
		return node{}
	}
	for _, c := range n.e.ChildElements() {
		if hasLocalName(c, ns, local) {
			return node{c}
		}
	}
	return node{}
}

func (n node) children(ns, local string) []node {
	if n.e == nil {
		return nil
	}
	var out []node
	for _, c := range n.e.ChildElements() {
		if hasLocalName(c, ns, local) {
			out = append(out, node{c})
		}
	}
	return out
}

// path follows a chain of children sharing one namespace
func (n node) path(ns string, steps ...string) node {
	cur := n
	for _, step := range steps {
		if cur = cur.child(ns, step); !cur.exists() {
			return node{}
		}
	}
	return cur
}

func (n node) text() string {
	if n.e == nil {
		return ""
	}
	return strings.TrimSpace(n.e.Text())
}

// blockText returns multi-line text with each line trimmed and blank
// edges removed, undoing the indentation added on write
func (n node) blockText() string {
	raw := n.text()
	if !strings.Contains(raw, "\n") {
		return raw
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func (n node) attr(key string) string {
	if n.e == nil {
		return ""
	}
	return strings.TrimSpace(n.e.SelectAttrValue(key, ""))
}

func (n node) number() *decimal.Decimal {
	return dec.ParseOptional(n.text())
}

// numberOrZero is used for values a writer always emits
func (n node) numberOrZero() decimal.Decimal {
	if d := n.number(); d != nil {
		return *d
	}
	return decimal.Zero
}

func (n node) boolean() bool {
	return strings.EqualFold(n.text(), "true")
}

// Date layouts found in the wild
const (
	layout102      = "20060102"
	layoutISODate  = "2006-01-02"
	layoutDateTime = "2006-01-02T15:04:05"
)

// parseDate accepts format 102, ISO dates and ISO date-times
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{layout102, layoutISODate, layoutDateTime, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
