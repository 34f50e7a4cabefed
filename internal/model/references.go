package model

import (
	"path/filepath"
	"strings"
	"time"
)

// BuyerOrderReferencedDocument references the buyer's purchase order
type BuyerOrderReferencedDocument struct {
	ID        string     `json:"id"`
	IssueDate *time.Time `json:"issue_date,omitempty"`
	LineID    string     `json:"line_id,omitempty"`
}

// SellerOrderReferencedDocument references the seller's order confirmation
type SellerOrderReferencedDocument struct {
	ID        string     `json:"id"`
	IssueDate *time.Time `json:"issue_date,omitempty"`
}

// ContractReferencedDocument references a contract
type ContractReferencedDocument struct {
	ID        string     `json:"id"`
	IssueDate *time.Time `json:"issue_date,omitempty"`
}

// DeliveryNoteReferencedDocument references a delivery note
type DeliveryNoteReferencedDocument struct {
	ID        string     `json:"id"`
	IssueDate *time.Time `json:"issue_date,omitempty"`
	LineID    string     `json:"line_id,omitempty"`
}

// DespatchAdviceReferencedDocument references a despatch advice
type DespatchAdviceReferencedDocument struct {
	ID        string     `json:"id"`
	IssueDate *time.Time `json:"issue_date,omitempty"`
}

// InvoiceReferencedDocument references a preceding invoice
type InvoiceReferencedDocument struct {
	ID        string     `json:"id"`
	IssueDate *time.Time `json:"issue_date,omitempty"`
}

// AdditionalReferencedDocument is a supporting document, optionally with an
// embedded binary attachment
type AdditionalReferencedDocument struct {
	ID                     string                               `json:"id"`
	IssueDate              *time.Time                           `json:"issue_date,omitempty"`
	LineID                 string                               `json:"line_id,omitempty"`
	TypeCode               AdditionalReferencedDocumentTypeCode `json:"type_code,omitempty"`
	ReferenceTypeCode      ReferenceTypeCode                    `json:"reference_type_code,omitempty"`
	Name                   string                               `json:"name,omitempty"`
	URIID                  string                               `json:"uri_id,omitempty"`
	AttachmentBinaryObject []byte                               `json:"attachment,omitempty"`
	Filename               string                               `json:"filename,omitempty"`
	MimeType               string                               `json:"mime_type,omitempty"`
}

// HasAttachment reports whether binary content is embedded
func (d *AdditionalReferencedDocument) HasAttachment() bool {
	return len(d.AttachmentBinaryObject) > 0
}

// AttachmentMimeType returns the stored MIME type or infers it from the filename
func (d *AdditionalReferencedDocument) AttachmentMimeType() string {
	if d.MimeType != "" {
		return d.MimeType
	}
	return InferMimeType(d.Filename)
}

// SpecifiedProcuringProject identifies the project an invoice belongs to
type SpecifiedProcuringProject struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".csv":  "text/csv",
	".xml":  "application/xml",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ods":  "application/vnd.oasis.opendocument.spreadsheet",
}

// InferMimeType guesses the MIME type of an attachment from its file
// extension, application/octet-stream when unrecognized
func InferMimeType(filename string) string {
	if mime, ok := mimeTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return mime
	}
	return "application/octet-stream"
}
