// Package dialect holds the element and namespace vocabularies of the
// supported XML dialects and the guideline identifiers that name a
// (version, profile) pair inside a document.
package dialect

import "github.com/rezonia/einvoice/internal/model"

// Namespace prefixes used when writing CII documents
const (
	PrefixRSM = "rsm"
	PrefixRAM = "ram"
	PrefixUDT = "udt"
	PrefixQDT = "qdt"
)

// CIIVocabulary names the elements that differ between CII schema
// generations. Everything not listed here is spelled the same in all of
// them.
type CIIVocabulary struct {
	Version model.Version

	RSM string
	RAM string
	UDT string
	QDT string

	Root        string
	Context     string
	Header      string
	Transaction string

	HeaderAgreement  string
	HeaderDelivery   string
	HeaderSettlement string
	HeaderSummation  string

	LineItem       string
	LineAgreement  string
	LineDelivery   string
	LineSettlement string
	LineSummation  string

	// ReferenceID is the id element of referenced documents
	ReferenceID string
	// ReferenceDate is the date element of referenced documents
	ReferenceDate string
	// FormattedDates selects qdt:DateTimeString children for ReferenceDate
	// instead of plain xs:dateTime text
	FormattedDates bool
	// TaxPercent is the rate element inside ApplicableTradeTax
	TaxPercent string
	// ProductFirst places SpecifiedTradeProduct before the line agreement
	ProductFirst bool
	// LinesFirst places the line items before the header agreement
	LinesFirst bool
	// AmountCurrency adds currencyID to every amount
	AmountCurrency bool
}

// CII1 is the ZUGFeRD 1.0 vocabulary
var CII1 = &CIIVocabulary{
	Version: model.Version1,

	RSM: "urn:ferd:CrossIndustryDocument:invoice:1p0",
	RAM: "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:12",
	UDT: "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:15",
	QDT: "urn:un:unece:uncefact:data:standard:QualifiedDataType:12",

	Root:        "CrossIndustryDocument",
	Context:     "SpecifiedExchangedDocumentContext",
	Header:      "HeaderExchangedDocument",
	Transaction: "SpecifiedSupplyChainTradeTransaction",

	HeaderAgreement:  "ApplicableSupplyChainTradeAgreement",
	HeaderDelivery:   "ApplicableSupplyChainTradeDelivery",
	HeaderSettlement: "ApplicableSupplyChainTradeSettlement",
	HeaderSummation:  "SpecifiedTradeSettlementMonetarySummation",

	LineItem:       "IncludedSupplyChainTradeLineItem",
	LineAgreement:  "SpecifiedSupplyChainTradeAgreement",
	LineDelivery:   "SpecifiedSupplyChainTradeDelivery",
	LineSettlement: "SpecifiedSupplyChainTradeSettlement",
	LineSummation:  "SpecifiedTradeSettlementMonetarySummation",

	ReferenceID:    "ID",
	ReferenceDate:  "IssueDateTime",
	FormattedDates: false,
	TaxPercent:     "ApplicablePercent",
	ProductFirst:   false,
	LinesFirst:     false,
	AmountCurrency: true,
}

// CII2 is the vocabulary of ZUGFeRD 2.x and Factur-X
var CII2 = &CIIVocabulary{
	Version: model.Version23,

	RSM: "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100",
	RAM: "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100",
	UDT: "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100",
	QDT: "urn:un:unece:uncefact:data:standard:QualifiedDataType:100",

	Root:        "CrossIndustryInvoice",
	Context:     "ExchangedDocumentContext",
	Header:      "ExchangedDocument",
	Transaction: "SupplyChainTradeTransaction",

	HeaderAgreement:  "ApplicableHeaderTradeAgreement",
	HeaderDelivery:   "ApplicableHeaderTradeDelivery",
	HeaderSettlement: "ApplicableHeaderTradeSettlement",
	HeaderSummation:  "SpecifiedTradeSettlementHeaderMonetarySummation",

	LineItem:       "IncludedSupplyChainTradeLineItem",
	LineAgreement:  "SpecifiedLineTradeAgreement",
	LineDelivery:   "SpecifiedLineTradeDelivery",
	LineSettlement: "SpecifiedLineTradeSettlement",
	LineSummation:  "SpecifiedTradeSettlementLineMonetarySummation",

	ReferenceID:    "IssuerAssignedID",
	ReferenceDate:  "FormattedIssueDateTime",
	FormattedDates: true,
	TaxPercent:     "RateApplicablePercent",
	ProductFirst:   true,
	LinesFirst:     true,
	AmountCurrency: false,
}

// CIIFor returns the vocabulary used to write the given version
func CIIFor(v model.Version) *CIIVocabulary {
	if v == model.Version1 {
		return CII1
	}
	return CII2
}

// CIIForNamespace returns the vocabulary whose root namespace is ns
func CIIForNamespace(ns string) (*CIIVocabulary, bool) {
	switch ns {
	case CII1.RSM:
		return CII1, true
	case CII2.RSM:
		return CII2, true
	}
	return nil, false
}
