package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/einvoice/internal/capability"
	"github.com/rezonia/einvoice/internal/dialect"
	"github.com/rezonia/einvoice/internal/model"
)

func TestGuidelineID_EverySupportedTriple(t *testing.T) {
	for _, c := range capability.Combinations() {
		t.Run(c.Version.String()+"/"+c.Profile.String()+"/"+c.Dialect.String(), func(t *testing.T) {
			id, ok := dialect.GuidelineID(c.Version, c.Profile)
			require.True(t, ok)
			assert.NotEmpty(t, id)
		})
	}
}

func TestResolveGuideline(t *testing.T) {
	tests := []struct {
		id      string
		version model.Version
		profile model.Profile
	}{
		{"urn:ferd:CrossIndustryDocument:invoice:1p0:comfort", model.Version1, model.ProfileComfort},
		{"urn:zugferd.de:2p0:minimum", model.Version20, model.ProfileMinimum},
		{"urn:factur-x.eu:1p0:basicwl", model.Version23, model.ProfileBasicWL},
		{"urn:cen.eu:en16931:2017", model.Version23, model.ProfileComfort},
		{"urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_1.2", model.Version23, model.ProfileXRechnung1},
		{"urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_2.0", model.Version20, model.ProfileXRechnung},
		{"urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:standard:xrechnung_2.3", model.Version23, model.ProfileXRechnung},
		{"  urn.cpro.gouv.fr:1p0:ereporting\n", model.Version23, model.ProfileEReporting},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			v, p, ok := dialect.ResolveGuideline(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.version, v)
			assert.Equal(t, tt.profile, p)
		})
	}

	_, _, ok := dialect.ResolveGuideline("urn:example:unknown")
	assert.False(t, ok)
}

func TestVocabularies(t *testing.T) {
	assert.Same(t, dialect.CII1, dialect.CIIFor(model.Version1))
	assert.Same(t, dialect.CII2, dialect.CIIFor(model.Version20))
	assert.Same(t, dialect.CII2, dialect.CIIFor(model.Version23))

	v, ok := dialect.CIIForNamespace("urn:ferd:CrossIndustryDocument:invoice:1p0")
	require.True(t, ok)
	assert.Equal(t, "HeaderExchangedDocument", v.Header)

	_, ok = dialect.CIIForNamespace(dialect.NsInvoice)
	assert.False(t, ok)

	assert.Equal(t, "CreditNote", dialect.UBLFor(model.InvoiceTypeCreditNote).Root)
	assert.Equal(t, "Invoice", dialect.UBLFor(model.InvoiceTypeInvoice).Root)
	u, ok := dialect.UBLForNamespace(dialect.NsCreditNote)
	require.True(t, ok)
	assert.Equal(t, "CreditedQuantity", u.Quantity)
}
