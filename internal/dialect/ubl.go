package dialect

import "github.com/rezonia/einvoice/internal/model"

// UBL 2.1 namespaces
const (
	NsInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
	NsCac        = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc        = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// Namespace prefixes used when writing UBL documents
const (
	PrefixUBL = "ubl"
	PrefixCac = "cac"
	PrefixCbc = "cbc"
)

// UBLParentLineDocumentType marks the line level DocumentReference that
// carries the parent line ID of a sub-line
const UBLParentLineDocumentType = "ParentLineID"

// UBLVocabulary names the elements that differ between the Invoice and
// CreditNote document types
type UBLVocabulary struct {
	Namespace string
	Root      string
	TypeCode  string
	Line      string
	Quantity  string
}

var (
	UBLInvoice = &UBLVocabulary{
		Namespace: NsInvoice,
		Root:      "Invoice",
		TypeCode:  "InvoiceTypeCode",
		Line:      "InvoiceLine",
		Quantity:  "InvoicedQuantity",
	}
	UBLCreditNote = &UBLVocabulary{
		Namespace: NsCreditNote,
		Root:      "CreditNote",
		TypeCode:  "CreditNoteTypeCode",
		Line:      "CreditNoteLine",
		Quantity:  "CreditedQuantity",
	}
)

// UBLFor picks the document type for an invoice type code
func UBLFor(t model.InvoiceType) *UBLVocabulary {
	if t == model.InvoiceTypeCreditNote || t == model.InvoiceTypeSelfBilledCreditNote {
		return UBLCreditNote
	}
	return UBLInvoice
}

// UBLForNamespace returns the vocabulary whose root namespace is ns
func UBLForNamespace(ns string) (*UBLVocabulary, bool) {
	switch ns {
	case NsInvoice:
		return UBLInvoice, true
	case NsCreditNote:
		return UBLCreditNote, true
	}
	return nil, false
}
