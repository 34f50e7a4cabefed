package xml_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/einvoice/internal/model"
	xmlparser "github.com/rezonia/einvoice/internal/parser/xml"
)

func TestRegistry_NewRegistry(t *testing.T) {
	registry := xmlparser.NewRegistry()
	require.NotNil(t, registry)

	for _, d := range []model.Dialect{model.DialectCII, model.DialectUBL} {
		adapter := registry.GetAdapter(d)
		require.NotNil(t, adapter, "adapter for %s should exist", d)
		assert.Equal(t, d, adapter.Dialect())
	}
}

func TestRegistry_Detect(t *testing.T) {
	registry := xmlparser.NewRegistry()

	tests := []struct {
		name     string
		content  string
		expected model.Dialect
	}{
		{
			name:     "detect CII 2.x",
			content:  `<rsm:CrossIndustryInvoice xmlns:rsm="urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"/>`,
			expected: model.DialectCII,
		},
		{
			name:     "detect CII 1.0",
			content:  `<rsm:CrossIndustryDocument xmlns:rsm="urn:ferd:CrossIndustryDocument:invoice:1p0"/>`,
			expected: model.DialectCII,
		},
		{
			name:     "detect UBL invoice",
			content:  `<Invoice xmlns="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"/>`,
			expected: model.DialectUBL,
		},
		{
			name:     "detect UBL credit note",
			content:  `<ubl:CreditNote xmlns:ubl="urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"/>`,
			expected: model.DialectUBL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := registry.Detect([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, adapter.Dialect())
		})
	}
}

func TestRegistry_Detect_UnknownFormat(t *testing.T) {
	registry := xmlparser.NewRegistry()
	_, err := registry.Detect([]byte(`<UnknownFormat>data</UnknownFormat>`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrMalformedDocument))
}

func TestRegistry_RegisterAdapter(t *testing.T) {
	registry := xmlparser.NewRegistry()

	custom := &mockAdapter{dialect: model.DialectCII}
	registry.RegisterAdapter(custom)

	adapter := registry.GetAdapter(model.DialectCII)
	assert.Equal(t, custom, adapter)
}

type mockAdapter struct {
	dialect model.Dialect
}

func (m *mockAdapter) Parse(ctx context.Context, r io.Reader) (*model.Invoice, error) {
	return nil, nil
}
func (m *mockAdapter) CanParse(content []byte) bool { return false }
func (m *mockAdapter) Dialect() model.Dialect       { return m.dialect }

func TestCIIAdapter_ParseVersion1(t *testing.T) {
	content := readTestFile(t, "zugferd1_comfort.xml")

	adapter := xmlparser.NewCIIAdapter()
	require.True(t, adapter.CanParse(content))

	inv, err := parseWithAdapter(t, adapter, content)
	require.NoError(t, err)
	require.NotNil(t, inv)

	assert.Equal(t, "471102", inv.InvoiceNo)
	assert.Equal(t, "RECHNUNG", inv.Name)
	assert.Equal(t, model.InvoiceTypeInvoice, inv.Type)
	assertDate(t, "2013-03-05", inv.InvoiceDate)
	assert.Equal(t, "EUR", inv.Currency)
	assert.Equal(t, "AB-312", inv.ReferenceOrderNo)
	assert.Equal(t, "2013-471102", inv.PaymentReference)

	require.Len(t, inv.Notes, 2)
	assert.Equal(t, model.SubjectCodeREG, inv.Notes[1].SubjectCode)
	assert.Equal(t, "Lieferant GmbH\nLieferantenstraße 20\n80333 München", inv.Notes[1].Content)

	require.NotNil(t, inv.Seller)
	assert.Equal(t, "Lieferant GmbH", inv.Seller.Name)
	assert.Equal(t, "80333", inv.Seller.Postcode)
	require.NotNil(t, inv.Seller.GlobalID)
	assert.Equal(t, model.GlobalIDSchemeIdentifierGLN, inv.Seller.GlobalID.SchemeID)
	require.Len(t, inv.Seller.TaxRegistrations, 2)
	assert.Equal(t, model.TaxRegistrationSchemeIDVA, inv.Seller.TaxRegistrations[1].SchemeID)
	assert.Equal(t, "DE123456789", inv.Seller.TaxRegistrations[1].No)

	require.NotNil(t, inv.Buyer)
	assert.Equal(t, "GE2020211", inv.Buyer.ID)

	require.NotNil(t, inv.BuyerOrderReferencedDocument)
	assert.Equal(t, "PO-2013-0815", inv.BuyerOrderReferencedDocument.ID)
	assertDate(t, "2013-03-01", inv.BuyerOrderReferencedDocument.IssueDate)
	assertDate(t, "2013-03-05", inv.ActualDeliveryDate)

	require.NotNil(t, inv.PaymentMeans)
	assert.Equal(t, model.PaymentMeansTypeCodeSEPACreditTransfer, inv.PaymentMeans.TypeCode)
	require.Len(t, inv.CreditorBankAccounts, 1)
	assert.Equal(t, "DE08700901001234567890", inv.CreditorBankAccounts[0].IBAN)
	assert.Equal(t, "GENODEF1M04", inv.CreditorBankAccounts[0].BIC)

	require.Len(t, inv.Taxes, 2)
	assertAmount(t, "275.00", inv.Taxes[0].BasisAmount)
	assertAmount(t, "7", inv.Taxes[0].Percent)
	require.NotNil(t, inv.Taxes[1].TaxAmount)
	assertAmount(t, "37.62", *inv.Taxes[1].TaxAmount)

	// the free text above the token line describes it
	require.Len(t, inv.PaymentTerms, 1)
	assert.Equal(t, "Zahlbar innerhalb 30 Tagen netto bis 04.04.2013", inv.PaymentTerms[0].Description)
	assertDate(t, "2013-04-04", inv.PaymentTerms[0].DueDate)
	assert.Equal(t, model.PaymentTermsTypeSkonto, inv.PaymentTerms[0].Type)
	require.NotNil(t, inv.PaymentTerms[0].DueDays)
	assert.Equal(t, 14, *inv.PaymentTerms[0].DueDays)

	require.NotNil(t, inv.GrandTotalAmount)
	assertAmount(t, "529.87", *inv.GrandTotalAmount)
	require.NotNil(t, inv.TaxTotalAmount)
	assertAmount(t, "56.87", *inv.TaxTotalAmount)

	require.Len(t, inv.TradeLineItems, 2)
	line := inv.TradeLineItems[1]
	assert.Equal(t, "2", line.LineID())
	assert.Equal(t, "Joghurt Banane", line.Name)
	assert.Equal(t, "ARNR2", line.SellerAssignedID)
	assert.Equal(t, model.QuantityCodeH87, line.UnitCode)
	assertAmount(t, "50", line.BilledQuantity)
	require.NotNil(t, line.NetUnitPrice)
	assertAmount(t, "5.50", *line.NetUnitPrice)
	require.NotNil(t, line.LineTotalAmount)
	assertAmount(t, "275.00", *line.LineTotalAmount)
	assert.Equal(t, model.TaxTypeVAT, line.TaxType)
	assert.Equal(t, model.TaxCategoryCodeS, line.TaxCategoryCode)
}

const extendedInvoice = `<?xml version="1.0" encoding="UTF-8"?>
<rsm:CrossIndustryInvoice xmlns:rsm="urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100" xmlns:ram="urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100" xmlns:udt="urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100">
  <rsm:ExchangedDocumentContext>
    <ram:GuidelineSpecifiedDocumentContextParameter>
      <ram:ID>urn:cen.eu:en16931:2017#conformant#urn:factur-x.eu:1p0:extended</ram:ID>
    </ram:GuidelineSpecifiedDocumentContextParameter>
  </rsm:ExchangedDocumentContext>
  <rsm:ExchangedDocument>
    <ram:ID>{{ID}}</ram:ID>
    <ram:TypeCode>380</ram:TypeCode>
    <ram:IssueDateTime>
      <udt:DateTimeString format="102">20240301</udt:DateTimeString>
    </ram:IssueDateTime>
  </rsm:ExchangedDocument>
  <rsm:SupplyChainTradeTransaction>
    <ram:IncludedSupplyChainTradeLineItem>
      <ram:AssociatedDocumentLineDocument>
        <ram:LineID>1</ram:LineID>
      </ram:AssociatedDocumentLineDocument>
      <ram:SpecifiedTradeProduct>
        <ram:Name>Montage</ram:Name>
      </ram:SpecifiedTradeProduct>
      <ram:SpecifiedLineTradeAgreement>
        <ram:NetPriceProductTradePrice>
          <ram:ChargeAmount>100.0000</ram:ChargeAmount>
        </ram:NetPriceProductTradePrice>
      </ram:SpecifiedLineTradeAgreement>
      <ram:SpecifiedLineTradeDelivery>
        <ram:BilledQuantity unitCode="C62">1.0000</ram:BilledQuantity>
      </ram:SpecifiedLineTradeDelivery>
      <ram:SpecifiedLineTradeSettlement>
        <ram:ApplicableTradeTax>
          <ram:TypeCode>VAT</ram:TypeCode>
          <ram:CategoryCode>S</ram:CategoryCode>
          <ram:RateApplicablePercent>19.00</ram:RateApplicablePercent>
        </ram:ApplicableTradeTax>
        <ram:SpecifiedTradeSettlementLineMonetarySummation>
          <ram:LineTotalAmount>100.00</ram:LineTotalAmount>
        </ram:SpecifiedTradeSettlementLineMonetarySummation>
      </ram:SpecifiedLineTradeSettlement>
    </ram:IncludedSupplyChainTradeLineItem>
    <ram:IncludedSupplyChainTradeLineItem>
      <ram:AssociatedDocumentLineDocument>
        <ram:LineID>1.1</ram:LineID>
        <ram:ParentLineID>1</ram:ParentLineID>
      </ram:AssociatedDocumentLineDocument>
      <ram:SpecifiedTradeProduct>
        <ram:Name>Schrauben</ram:Name>
      </ram:SpecifiedTradeProduct>
      <ram:SpecifiedLineTradeAgreement/>
      <ram:SpecifiedLineTradeDelivery>
        <ram:BilledQuantity unitCode="H87">40.0000</ram:BilledQuantity>
      </ram:SpecifiedLineTradeDelivery>
      <ram:SpecifiedLineTradeSettlement>
        <ram:ApplicableTradeTax>
          <ram:TypeCode>VAT</ram:TypeCode>
          <ram:CategoryCode>S</ram:CategoryCode>
          <ram:RateApplicablePercent>19.00</ram:RateApplicablePercent>
        </ram:ApplicableTradeTax>
        <ram:SpecifiedTradeSettlementLineMonetarySummation>
          <ram:LineTotalAmount>0.00</ram:LineTotalAmount>
        </ram:SpecifiedTradeSettlementLineMonetarySummation>
      </ram:SpecifiedLineTradeSettlement>
    </ram:IncludedSupplyChainTradeLineItem>
    <ram:ApplicableHeaderTradeAgreement>
      <ram:SellerTradeParty>
        <ram:Name>Lieferant GmbH</ram:Name>
      </ram:SellerTradeParty>
      <ram:AdditionalReferencedDocument>
        <ram:IssuerAssignedID>Aufmass-7</ram:IssuerAssignedID>
        <ram:TypeCode>916</ram:TypeCode>
        <ram:AttachmentBinaryObject filename="aufmass.pdf">
          JVBERi0x
          LjQK
        </ram:AttachmentBinaryObject>
      </ram:AdditionalReferencedDocument>
    </ram:ApplicableHeaderTradeAgreement>
    <ram:ApplicableHeaderTradeDelivery/>
    <ram:ApplicableHeaderTradeSettlement>
      <ram:InvoiceCurrencyCode>EUR</ram:InvoiceCurrencyCode>
      <ram:SpecifiedTradePaymentTerms>
        <ram:Description>3% Skonto innerhalb 10 Tagen</ram:Description>
        <ram:DueDateDateTime>
          <udt:DateTimeString format="102">20240331</udt:DateTimeString>
        </ram:DueDateDateTime>
        <ram:ApplicableTradePaymentDiscountTerms>
          <ram:BasisPeriodMeasure unitCode="DAY">10</ram:BasisPeriodMeasure>
          <ram:BasisAmount>119.00</ram:BasisAmount>
          <ram:CalculationPercent>3.00</ram:CalculationPercent>
        </ram:ApplicableTradePaymentDiscountTerms>
      </ram:SpecifiedTradePaymentTerms>
      <ram:SpecifiedTradeSettlementHeaderMonetarySummation>
        <ram:LineTotalAmount>100.00</ram:LineTotalAmount>
        <ram:TaxBasisTotalAmount>100.00</ram:TaxBasisTotalAmount>
        <ram:TaxTotalAmount currencyID="USD">20.90</ram:TaxTotalAmount>
        <ram:TaxTotalAmount currencyID="EUR">19.00</ram:TaxTotalAmount>
        <ram:GrandTotalAmount>119.00</ram:GrandTotalAmount>
        <ram:DuePayableAmount>119.00</ram:DuePayableAmount>
      </ram:SpecifiedTradeSettlementHeaderMonetarySummation>
      <ram:InvoiceReferencedDocument>
        <ram:IssuerAssignedID>RE-2024-0001</ram:IssuerAssignedID>
        <ram:FormattedIssueDateTime>
          <qdt:DateTimeString format="102">20240115</qdt:DateTimeString>
        </ram:FormattedIssueDateTime>
      </ram:InvoiceReferencedDocument>
    </ram:ApplicableHeaderTradeSettlement>
  </rsm:SupplyChainTradeTransaction>
</rsm:CrossIndustryInvoice>`

func extended(id string) []byte {
	return []byte(strings.Replace(extendedInvoice, "{{ID}}", id, 1))
}

func TestCIIAdapter_ParseExtended(t *testing.T) {
	inv, err := xmlparser.Decode(extended("EXT-1"))
	require.NoError(t, err)

	assert.Equal(t, "EXT-1", inv.InvoiceNo)

	t.Run("undeclared qdt prefix", func(t *testing.T) {
		require.NotNil(t, inv.InvoiceReferencedDocument)
		assert.Equal(t, "RE-2024-0001", inv.InvoiceReferencedDocument.ID)
		assertDate(t, "2024-01-15", inv.InvoiceReferencedDocument.IssueDate)
	})

	t.Run("structured payment terms", func(t *testing.T) {
		require.Len(t, inv.PaymentTerms, 1)
		pt := inv.PaymentTerms[0]
		assert.Equal(t, "3% Skonto innerhalb 10 Tagen", pt.Description)
		assert.Equal(t, model.PaymentTermsTypeSkonto, pt.Type)
		require.NotNil(t, pt.DueDays)
		assert.Equal(t, 10, *pt.DueDays)
		require.NotNil(t, pt.Percentage)
		assertAmount(t, "3", *pt.Percentage)
		require.NotNil(t, pt.BaseAmount)
		assertAmount(t, "119", *pt.BaseAmount)
		assertDate(t, "2024-03-31", pt.DueDate)
	})

	t.Run("tax total in invoice currency", func(t *testing.T) {
		require.NotNil(t, inv.TaxTotalAmount)
		assertAmount(t, "19.00", *inv.TaxTotalAmount)
	})

	t.Run("attachment", func(t *testing.T) {
		require.Len(t, inv.AdditionalReferencedDocuments, 1)
		doc := inv.AdditionalReferencedDocuments[0]
		assert.Equal(t, "Aufmass-7", doc.ID)
		assert.Equal(t, "aufmass.pdf", doc.Filename)
		assert.Equal(t, "application/pdf", doc.MimeType)
		assert.Equal(t, []byte("%PDF-1.4\n"), doc.AttachmentBinaryObject)
	})

	t.Run("sub lines", func(t *testing.T) {
		require.Len(t, inv.TradeLineItems, 2)
		children := inv.SubLineItems("1")
		require.Len(t, children, 1)
		assert.Equal(t, "Schrauben", children[0].Name)
		assert.Nil(t, children[0].NetUnitPrice)
	})
}

func TestCIIAdapter_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		target  error
	}{
		{
			name:    "missing invoice number",
			content: extended(""),
			target:  model.ErrMissingRequiredField,
		},
		{
			name:    "truncated document",
			content: extended("EXT-2")[:900],
			target:  model.ErrMalformedDocument,
		},
		{
			name:    "bad attachment",
			content: bytes.Replace(extended("EXT-3"), []byte("JVBERi0x"), []byte("*not*base64*"), 1),
			target:  model.ErrMalformedDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := xmlparser.Decode(tt.content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestCIIAdapter_RejectsUBL(t *testing.T) {
	content := readTestFile(t, "xrechnung_ubl.xml")

	adapter := xmlparser.NewCIIAdapter()
	assert.False(t, adapter.CanParse(content))

	_, err := parseWithAdapter(t, adapter, content)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrMalformedDocument))
}

func TestCIIAdapter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := xmlparser.NewCIIAdapter().Parse(ctx, bytes.NewReader(extended("EXT-4")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUBLAdapter_Parse(t *testing.T) {
	content := readTestFile(t, "xrechnung_ubl.xml")

	adapter := xmlparser.NewUBLAdapter()
	require.True(t, adapter.CanParse(content))

	inv, err := parseWithAdapter(t, adapter, content)
	require.NoError(t, err)

	assert.Equal(t, "RE-2024-0042", inv.InvoiceNo)
	assert.Equal(t, model.InvoiceTypeInvoice, inv.Type)
	assertDate(t, "2024-05-13", inv.InvoiceDate)
	assert.Equal(t, "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0", inv.BusinessProcess)
	assert.Equal(t, "04011000-12345-34", inv.ReferenceOrderNo)
	assertDate(t, "2024-05-01", inv.BillingPeriodStart)
	assertDate(t, "2024-05-31", inv.BillingPeriodEnd)
	assertDate(t, "2024-05-31", inv.ActualDeliveryDate)

	t.Run("notes", func(t *testing.T) {
		require.Len(t, inv.Notes, 2)
		assert.Equal(t, model.SubjectCodeAAI, inv.Notes[0].SubjectCode)
		assert.Equal(t, "Leistung erbracht im Mai 2024", inv.Notes[0].Content)
		assert.False(t, inv.Notes[1].SubjectCode.IsKnown())
	})

	t.Run("references", func(t *testing.T) {
		require.NotNil(t, inv.BuyerOrderReferencedDocument)
		assert.Equal(t, "PO-7781", inv.BuyerOrderReferencedDocument.ID)
		require.NotNil(t, inv.SellerOrderReferencedDocument)
		assert.Equal(t, "SO-1190", inv.SellerOrderReferencedDocument.ID)
		require.NotNil(t, inv.ContractReferencedDocument)
		assert.Equal(t, "RV-2023-17", inv.ContractReferencedDocument.ID)
		require.NotNil(t, inv.SpecifiedProcuringProject)
		assert.Equal(t, "PRJ-42", inv.SpecifiedProcuringProject.ID)

		require.Len(t, inv.AdditionalReferencedDocuments, 1)
		doc := inv.AdditionalReferencedDocuments[0]
		assert.Equal(t, "Stundennachweis Mai", doc.Name)
		assert.Equal(t, "text/csv", doc.MimeType)
		assert.Equal(t, "Datum;Stunden\n2024-05-02;8\n", string(doc.AttachmentBinaryObject))
	})

	t.Run("parties", func(t *testing.T) {
		seller := inv.Seller
		require.NotNil(t, seller)
		assert.Equal(t, "Lieferant GmbH", seller.Name)
		require.NotNil(t, seller.LegalOrganization)
		assert.Equal(t, "Lieferant", seller.LegalOrganization.TradingBusinessName)
		require.NotNil(t, seller.LegalOrganization.ID)
		assert.Equal(t, "HRB 12345", seller.LegalOrganization.ID.ID)
		require.NotNil(t, seller.ElectronicAddress)
		assert.Equal(t, model.ElectronicAddressSchemeEMail, seller.ElectronicAddress.Scheme)
		require.Len(t, seller.TaxRegistrations, 1)
		assert.Equal(t, model.TaxRegistrationSchemeIDVA, seller.TaxRegistrations[0].SchemeID)
		require.NotNil(t, seller.Contact)
		assert.Equal(t, "+49 89 123456", seller.Contact.PhoneNo)

		require.NotNil(t, inv.Buyer)
		assert.Equal(t, "Kunden AG Mitte", inv.Buyer.Name)
		assert.Nil(t, inv.Buyer.LegalOrganization)
		assert.Nil(t, inv.ShipTo)
	})

	t.Run("payment", func(t *testing.T) {
		require.NotNil(t, inv.PaymentMeans)
		assert.Equal(t, model.PaymentMeansTypeCodeSEPACreditTransfer, inv.PaymentMeans.TypeCode)
		assert.Equal(t, "RE-2024-0042", inv.PaymentReference)
		require.Len(t, inv.CreditorBankAccounts, 1)
		assert.Equal(t, "DE02120300000000202051", inv.CreditorBankAccounts[0].IBAN)
		assert.Equal(t, "BYLADEM1001", inv.CreditorBankAccounts[0].BIC)

		require.Len(t, inv.PaymentTerms, 1)
		skonto := inv.PaymentTerms[0]
		assert.Equal(t, "Zahlbar innerhalb von 30 Tagen", skonto.Description)
		assertDate(t, "2024-06-12", skonto.DueDate)
		assert.Equal(t, model.PaymentTermsTypeSkonto, skonto.Type)
		require.NotNil(t, skonto.BaseAmount)
		assertAmount(t, "1190", *skonto.BaseAmount)
	})

	t.Run("totals", func(t *testing.T) {
		require.Len(t, inv.Taxes, 1)
		assert.Equal(t, model.TaxTypeVAT, inv.Taxes[0].TypeCode)
		assertAmount(t, "1000", inv.Taxes[0].BasisAmount)
		require.NotNil(t, inv.TaxTotalAmount)
		assertAmount(t, "190", *inv.TaxTotalAmount)
		require.NotNil(t, inv.GrandTotalAmount)
		assertAmount(t, "1190", *inv.GrandTotalAmount)
		assert.Nil(t, inv.RoundingAmount)
	})

	t.Run("line", func(t *testing.T) {
		require.Len(t, inv.TradeLineItems, 1)
		line := inv.TradeLineItems[0]
		assert.Equal(t, "1", line.LineID())
		assert.Equal(t, "Beratung", line.Name)
		assert.Equal(t, "IT-Beratung Mai 2024", line.Description)
		assert.Equal(t, model.QuantityCodeHUR, line.UnitCode)
		assertAmount(t, "10", line.BilledQuantity)
		require.NotNil(t, line.NetUnitPrice)
		assertAmount(t, "100", *line.NetUnitPrice)
		require.NotNil(t, line.GrossUnitPrice)
		assertAmount(t, "120", *line.GrossUnitPrice)
		require.NotNil(t, line.UnitQuantity)
		assertAmount(t, "1", *line.UnitQuantity)
		require.NotNil(t, line.BuyerOrderReferencedDocument)
		assert.Equal(t, "3", line.BuyerOrderReferencedDocument.LineID)
		require.Len(t, line.ReceivableSpecifiedTradeAccountingAccounts, 1)
		assert.Equal(t, "4711", line.ReceivableSpecifiedTradeAccountingAccounts[0].TradeAccountID)
		require.Len(t, line.DesignatedProductClassifications, 1)
		assert.Equal(t, "STI", line.DesignatedProductClassifications[0].ListID)
		assert.Equal(t, "2.1", line.DesignatedProductClassifications[0].ListVersionID)
		require.Len(t, line.ApplicableProductCharacteristics, 1)
		assert.Equal(t, "Einsatzort", line.ApplicableProductCharacteristics[0].Description)
		assert.Equal(t, []model.Note{{Content: "Beratung vor Ort"}}, line.AssociatedDocument.Notes)
	})
}

func TestUBLAdapter_ParseCreditNote(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<CreditNote xmlns="urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2" xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2" xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
  <cbc:CustomizationID>urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:standard:xrechnung_3.0</cbc:CustomizationID>
  <cbc:ID>GS-17</cbc:ID>
  <cbc:IssueDate>2024-07-01</cbc:IssueDate>
  <cbc:CreditNoteTypeCode>381</cbc:CreditNoteTypeCode>
  <cbc:DocumentCurrencyCode>EUR</cbc:DocumentCurrencyCode>
  <cac:BillingReference>
    <cac:InvoiceDocumentReference>
      <cbc:ID>RE-2024-0042</cbc:ID>
      <cbc:IssueDate>2024-05-13</cbc:IssueDate>
    </cac:InvoiceDocumentReference>
  </cac:BillingReference>
  <cac:PaymentMeans>
    <cbc:PaymentMeansCode>30</cbc:PaymentMeansCode>
    <cbc:PaymentDueDate>2024-07-15</cbc:PaymentDueDate>
  </cac:PaymentMeans>
  <cac:CreditNoteLine>
    <cbc:ID>1</cbc:ID>
    <cbc:CreditedQuantity unitCode="C62">2.0000</cbc:CreditedQuantity>
    <cbc:LineExtensionAmount currencyID="EUR">50.00</cbc:LineExtensionAmount>
    <cac:Item>
      <cbc:Name>Rücknahme</cbc:Name>
    </cac:Item>
  </cac:CreditNoteLine>
</CreditNote>`

	inv, err := xmlparser.Decode([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, model.InvoiceTypeCreditNote, inv.Type)
	require.NotNil(t, inv.InvoiceReferencedDocument)
	assert.Equal(t, "RE-2024-0042", inv.InvoiceReferencedDocument.ID)
	assertDate(t, "2024-05-13", inv.InvoiceReferencedDocument.IssueDate)

	// the due date of a credit note lives in the payment means
	require.Len(t, inv.PaymentTerms, 1)
	assertDate(t, "2024-07-15", inv.PaymentTerms[0].DueDate)
	assert.Empty(t, inv.PaymentTerms[0].Description)

	require.Len(t, inv.TradeLineItems, 1)
	assertAmount(t, "2", inv.TradeLineItems[0].BilledQuantity)
	assert.Equal(t, model.QuantityCodeC62, inv.TradeLineItems[0].UnitCode)
}

func TestUBLAdapter_MissingCurrency(t *testing.T) {
	content := `<Invoice xmlns="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2" xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
  <cbc:ID>1</cbc:ID>
  <cbc:IssueDate>2024-07-01</cbc:IssueDate>
</Invoice>`

	_, err := xmlparser.Decode([]byte(content))
	require.Error(t, err)

	var fieldErr *model.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "currency", fieldErr.Field)
	assert.Equal(t, model.DialectUBL, fieldErr.Dialect)
}

func readTestFile(t *testing.T, filename string) []byte {
	t.Helper()
	path := filepath.Join("testdata", filename)
	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read test file: %s", filename)
	return content
}

func parseWithAdapter(t *testing.T, adapter xmlparser.Adapter, content []byte) (*model.Invoice, error) {
	t.Helper()
	return adapter.Parse(context.Background(), bytes.NewReader(content))
}

func assertDate(t *testing.T, expected string, actual *time.Time) {
	t.Helper()
	require.NotNil(t, actual)
	assert.Equal(t, expected, actual.Format("2006-01-02"))
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}
