package writer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dec "github.com/rezonia/einvoice/internal/decimal"
	"github.com/rezonia/einvoice/internal/model"
	xmlparser "github.com/rezonia/einvoice/internal/parser/xml"
	"github.com/rezonia/einvoice/internal/writer"
)

type target struct {
	version model.Version
	profile model.Profile
	dialect model.Dialect
}

func (tt target) String() string {
	return fmt.Sprintf("%s/%s/%s", tt.dialect, tt.version, tt.profile)
}

func decodeAs(t *testing.T, inv *model.Invoice, tt target) *model.Invoice {
	t.Helper()
	decoded, err := xmlparser.Decode(mustEncode(t, inv, tt.version, tt.profile, tt.dialect))
	require.NoError(t, err)
	return decoded
}

// hierarchyInvoice holds lines 1, 2, 2.1, 2.2, 2.2.1 and 3, where 2.x
// belong to 2 and 2.2.1 to 2.2
func hierarchyInvoice() *model.Invoice {
	inv := sampleInvoice()
	inv.TradeLineItems = nil
	for _, l := range []struct{ id, parent string }{
		{"1", ""}, {"2", ""}, {"2.1", "2"}, {"2.2", "2"}, {"2.2.1", "2.2"}, {"3", ""},
	} {
		item := inv.AddTradeLineItem(&model.TradeLineItem{
			AssociatedDocument: model.AssociatedDocument{LineID: l.id},
			Name:               "Position " + l.id,
			BilledQuantity:     amount("1"),
			UnitCode:           model.QuantityCodeC62,
			NetUnitPrice:       dec.Ptr(amount("10.00")),
			TaxType:            model.TaxTypeVAT,
			TaxCategoryCode:    model.TaxCategoryCodeS,
			TaxPercent:         amount("19"),
		})
		if l.parent != "" {
			item.SetParentLineID(l.parent)
		}
	}
	return inv
}

func TestRoundTrip_ParentLines(t *testing.T) {
	withParents := []string{"", "", "2", "2", "2.2", ""}
	withoutParents := []string{"", "", "", "", "", ""}

	tests := []struct {
		target     target
		creditNote bool
		want       []string
	}{
		{target{model.Version23, model.ProfileExtended, model.DialectCII}, false, withParents},
		{target{model.Version23, model.ProfileXRechnung, model.DialectCII}, false, withParents},
		{target{model.Version20, model.ProfileExtended, model.DialectCII}, false, withParents},
		{target{model.Version23, model.ProfileXRechnung, model.DialectUBL}, false, withParents},
		{target{model.Version23, model.ProfileXRechnung, model.DialectUBL}, true, withParents},
		{target{model.Version23, model.ProfileComfort, model.DialectCII}, false, withoutParents},
		{target{model.Version1, model.ProfileExtended, model.DialectCII}, false, withoutParents},
	}

	for _, tt := range tests {
		name := tt.target.String()
		if tt.creditNote {
			name += "/creditnote"
		}
		t.Run(name, func(t *testing.T) {
			inv := hierarchyInvoice()
			if tt.creditNote {
				inv.Type = model.InvoiceTypeCreditNote
			}
			decoded := decodeAs(t, inv, tt.target)

			require.Len(t, decoded.TradeLineItems, 6)
			ids := make([]string, 0, 6)
			parents := make([]string, 0, 6)
			for _, item := range decoded.TradeLineItems {
				ids = append(ids, item.LineID())
				parents = append(parents, item.ParentLineID())
			}
			assert.Equal(t, []string{"1", "2", "2.1", "2.2", "2.2.1", "3"}, ids)
			assert.Equal(t, tt.want, parents)
		})
	}
}

func TestRoundTrip_UBLParentLinesAreFlat(t *testing.T) {
	doc := encode(t, hierarchyInvoice(), model.Version23, model.ProfileXRechnung, model.DialectUBL)

	lines := doc.FindElements("/ubl:Invoice/cac:InvoiceLine")
	require.Len(t, lines, 6)
	assert.Empty(t, doc.FindElements("//cac:InvoiceLine/cac:InvoiceLine"))

	assert.Nil(t, lines[0].FindElement("cac:DocumentReference"))
	ref := lines[4].FindElement("cac:DocumentReference")
	require.NotNil(t, ref)
	assert.Equal(t, "2.2", ref.FindElement("cbc:ID").Text())
	assert.Equal(t, "ParentLineID", ref.FindElement("cbc:DocumentType").Text())
}

func TestRoundTrip_RestrictedPayee(t *testing.T) {
	inv := sampleInvoice()
	inv.Payee = &model.Party{
		Name:              "Inkasso GmbH",
		Street:            "Zahlweg 1",
		City:              "Berlin",
		Country:           "DE",
		LegalOrganization: model.NewLegalOrganization(model.GlobalIDSchemeIdentifierGLN, "4000001987658", "Inkasso"),
	}

	tests := []struct {
		target      target
		fullAddress bool
		tradingName string
	}{
		{target{model.Version23, model.ProfileExtended, model.DialectCII}, true, "Inkasso"},
		{target{model.Version23, model.ProfileComfort, model.DialectCII}, false, ""},
		{target{model.Version23, model.ProfileXRechnung, model.DialectCII}, false, ""},
		{target{model.Version23, model.ProfileXRechnung, model.DialectUBL}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			payee := decodeAs(t, inv, tt.target).Payee
			require.NotNil(t, payee)
			assert.Equal(t, "Inkasso GmbH", payee.Name)
			require.NotNil(t, payee.LegalOrganization)
			require.NotNil(t, payee.LegalOrganization.ID)
			assert.Equal(t, "4000001987658", payee.LegalOrganization.ID.ID)
			assert.Equal(t, tt.tradingName, payee.LegalOrganization.TradingBusinessName)

			if tt.fullAddress {
				assert.Equal(t, "Zahlweg 1", payee.Street)
				assert.Equal(t, "Berlin", payee.City)
				assert.Equal(t, "DE", payee.Country)
			} else {
				assert.Empty(t, payee.Street)
				assert.Empty(t, payee.City)
				assert.Empty(t, payee.Country)
			}
		})
	}
}

func TestRoundTrip_TaxAllowanceChargeBasis(t *testing.T) {
	inv := sampleInvoice()
	inv.Taxes[0].AllowanceChargeBasisAmount = dec.Ptr(amount("275.00"))
	inv.Taxes[1].AllowanceChargeBasisAmount = dec.Ptr(amount("200.00"))

	doc := encode(t, inv, model.Version23, model.ProfileExtended, model.DialectCII)
	taxes := doc.FindElements("//ram:ApplicableHeaderTradeSettlement/ram:ApplicableTradeTax")
	require.Len(t, taxes, 2)
	assert.Nil(t, taxes[0].FindElement("ram:AllowanceChargeBasisAmount"))
	assert.Equal(t, "200.00", taxes[1].FindElement("ram:AllowanceChargeBasisAmount").Text())

	tests := []struct {
		target target
		second *string
	}{
		{target{model.Version23, model.ProfileExtended, model.DialectCII}, strPtr("200")},
		{target{model.Version23, model.ProfileComfort, model.DialectCII}, nil},
		{target{model.Version23, model.ProfileXRechnung, model.DialectUBL}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			decoded := decodeAs(t, inv, tt.target)
			require.Len(t, decoded.Taxes, 2)
			assert.Nil(t, decoded.Taxes[0].AllowanceChargeBasisAmount)
			if tt.second == nil {
				assert.Nil(t, decoded.Taxes[1].AllowanceChargeBasisAmount)
				return
			}
			require.NotNil(t, decoded.Taxes[1].AllowanceChargeBasisAmount)
			assert.True(t, amount(*tt.second).Equal(*decoded.Taxes[1].AllowanceChargeBasisAmount))
		})
	}
}

func strPtr(s string) *string {
	return &s
}

func TestRoundTrip_EmptyBIC(t *testing.T) {
	inv := sampleInvoice()
	inv.CreditorBankAccounts = nil
	inv.AddCreditorFinancialAccount("DE02120300000000202051", "", "Lieferant GmbH")
	inv.SetPaymentMeansSepaDirectDebit("DE98ZZZ09999999999", "REF-A-123")
	inv.AddDebitorFinancialAccount("DE21860000000086001055", "")

	tests := []struct {
		target target
		absent []string
	}{
		{target{model.Version23, model.ProfileComfort, model.DialectCII}, []string{"//ram:BICID", "//ram:PayeeSpecifiedCreditorFinancialInstitution", "//ram:PayerSpecifiedDebtorFinancialInstitution"}},
		{target{model.Version23, model.ProfileXRechnung, model.DialectCII}, []string{"//ram:BICID", "//ram:PayeeSpecifiedCreditorFinancialInstitution", "//ram:PayerSpecifiedDebtorFinancialInstitution"}},
		{target{model.Version23, model.ProfileXRechnung, model.DialectUBL}, []string{"//cac:FinancialInstitutionBranch"}},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			doc := encode(t, inv, tt.target.version, tt.target.profile, tt.target.dialect)
			for _, path := range tt.absent {
				assert.Nil(t, doc.FindElement(path), path)
			}

			decoded := decodeAs(t, inv, tt.target)
			require.Len(t, decoded.CreditorBankAccounts, 1)
			assert.Equal(t, "DE02120300000000202051", decoded.CreditorBankAccounts[0].IBAN)
			assert.Empty(t, decoded.CreditorBankAccounts[0].BIC)
			require.Len(t, decoded.DebitorBankAccounts, 1)
			assert.Equal(t, "DE21860000000086001055", decoded.DebitorBankAccounts[0].IBAN)
			assert.Empty(t, decoded.DebitorBankAccounts[0].BIC)
		})
	}

	// a filled BIC survives where the profile carries it
	inv.CreditorBankAccounts[0].BIC = "BYLADEM1001"
	for _, tt := range tests {
		decoded := decodeAs(t, inv, tt.target)
		require.Len(t, decoded.CreditorBankAccounts, 1, tt.target.String())
		assert.Equal(t, "BYLADEM1001", decoded.CreditorBankAccounts[0].BIC, tt.target.String())
	}
}

func TestRoundTrip_PaymentTerms(t *testing.T) {
	restricted := []target{
		{model.Version23, model.ProfileComfort, model.DialectCII},
		{model.Version23, model.ProfileXRechnung, model.DialectCII},
		{model.Version23, model.ProfileXRechnung, model.DialectUBL},
	}

	t.Run("free text entries merge", func(t *testing.T) {
		inv := sampleInvoice()
		inv.PaymentTerms = nil
		inv.AddTradePaymentTerms("Zahlbar innerhalb 30 Tagen netto", day(2018, 4, 4))
		inv.AddTradePaymentTerms("Bitte Rechnungsnummer angeben", nil)

		for _, tt := range restricted {
			terms := decodeAs(t, inv, tt).PaymentTerms
			require.Len(t, terms, 1, tt.String())
			assert.Equal(t, "Zahlbar innerhalb 30 Tagen netto\nBitte Rechnungsnummer angeben", terms[0].Description, tt.String())
			assert.False(t, terms[0].IsStructured(), tt.String())
			require.NotNil(t, terms[0].DueDate, tt.String())
			assert.True(t, day(2018, 4, 4).Equal(*terms[0].DueDate), tt.String())
		}

		terms := decodeAs(t, inv, target{model.Version23, model.ProfileExtended, model.DialectCII}).PaymentTerms
		assert.Len(t, terms, 2)
	})

	t.Run("described skonto stays one entry", func(t *testing.T) {
		inv := sampleInvoice()
		inv.PaymentTerms = nil
		inv.AddSkontoPaymentTerms("3% Skonto innerhalb 10 Tagen", 10, amount("3"), dec.Ptr(amount("529.87")))

		for _, tt := range append(restricted, target{model.Version23, model.ProfileExtended, model.DialectCII}) {
			terms := decodeAs(t, inv, tt).PaymentTerms
			require.Len(t, terms, 1, tt.String())
			pt := terms[0]
			assert.Equal(t, "3% Skonto innerhalb 10 Tagen", pt.Description, tt.String())
			assert.Equal(t, model.PaymentTermsTypeSkonto, pt.Type, tt.String())
			require.NotNil(t, pt.DueDays, tt.String())
			assert.Equal(t, 10, *pt.DueDays, tt.String())
			require.NotNil(t, pt.BaseAmount, tt.String())
			assert.True(t, amount("529.87").Equal(*pt.BaseAmount), tt.String())
		}
	})
}

func TestEncode_LineTaxesOutsideLineProfiles(t *testing.T) {
	inv := sampleInvoice()
	inv.TradeLineItems[0].TaxType = model.TaxTypeCustomsDuty

	for _, p := range []model.Profile{model.ProfileMinimum, model.ProfileBasicWL} {
		_, err := writer.Encode(inv, model.Version23, p, model.DialectCII)
		assert.NoError(t, err, p.String())
	}

	_, err := writer.Encode(inv, model.Version23, model.ProfileBasic, model.DialectCII)
	assert.ErrorIs(t, err, model.ErrUnsupportedTaxType)
}
