// Package einvoice reads and writes ZUGFeRD, Factur-X and XRechnung
// invoices in both the UN/CEFACT CII and the OASIS UBL syntax.
//
// Example usage:
//
//	inv := einvoice.NewInvoice("471102", time.Now(), "EUR")
//	// ... parties, lines, taxes, totals
//	data, err := einvoice.Encode(inv, einvoice.Version23, einvoice.ProfileComfort, einvoice.DialectCII)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	back, err := einvoice.Decode(data)
package einvoice

import (
	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/internal/signature"
)

// Re-export core types for public API
type (
	Invoice              = model.Invoice
	Note                 = model.Note
	Party                = model.Party
	Contact              = model.Contact
	GlobalID             = model.GlobalID
	LegalOrganization    = model.LegalOrganization
	ElectronicAddress    = model.ElectronicAddress
	TaxRegistration      = model.TaxRegistration
	TradeLineItem        = model.TradeLineItem
	Tax                  = model.Tax
	TradeAllowanceCharge = model.TradeAllowanceCharge
	ServiceCharge        = model.ServiceCharge
	PaymentMeans         = model.PaymentMeans
	PaymentTerms         = model.PaymentTerms
	BankAccount          = model.BankAccount
	Tag                  = signature.Tag
)

// Re-export format identifiers
type (
	Version = model.Version
	Profile = model.Profile
	Dialect = model.Dialect
)

const (
	Version1  = model.Version1
	Version20 = model.Version20
	Version23 = model.Version23
)

const (
	ProfileUnknown    = model.ProfileUnknown
	ProfileMinimum    = model.ProfileMinimum
	ProfileBasicWL    = model.ProfileBasicWL
	ProfileBasic      = model.ProfileBasic
	ProfileComfort    = model.ProfileComfort
	ProfileExtended   = model.ProfileExtended
	ProfileXRechnung1 = model.ProfileXRechnung1
	ProfileXRechnung  = model.ProfileXRechnung
	ProfileEReporting = model.ProfileEReporting
)

const (
	DialectCII = model.DialectCII
	DialectUBL = model.DialectUBL
)

// Re-export code list types most callers need
type (
	InvoiceType     = model.InvoiceType
	TaxType         = model.TaxType
	TaxCategoryCode = model.TaxCategoryCode
	QuantityCode    = model.QuantityCode
)

const (
	InvoiceTypeInvoice    = model.InvoiceTypeInvoice
	InvoiceTypeCreditNote = model.InvoiceTypeCreditNote
	TaxTypeVAT            = model.TaxTypeVAT
)

// Re-export error types
type (
	CombinationError = model.CombinationError
	TaxTypeError     = model.TaxTypeError
	DocumentError    = model.DocumentError
	FieldError       = model.FieldError
	ParseError       = model.ParseError
	ValidationError  = model.ValidationError
)

// Error classes, for use with errors.Is
var (
	ErrUnsupportedCombination = model.ErrUnsupportedCombination
	ErrUnsupportedTaxType     = model.ErrUnsupportedTaxType
	ErrMalformedDocument      = model.ErrMalformedDocument
	ErrMissingRequiredField   = model.ErrMissingRequiredField
)

// NewInvoice creates an invoice with the mandatory header fields set
var NewInvoice = model.NewInvoice
