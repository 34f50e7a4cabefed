package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Note is a free-text note with an optional subject qualifier
type Note struct {
	Content     string      `json:"content"`
	SubjectCode SubjectCode `json:"subject_code,omitempty"`
	ContentCode string      `json:"content_code,omitempty"`
}

// AssociatedDocument carries the identity of a line within the invoice
type AssociatedDocument struct {
	LineID               string               `json:"line_id"`
	ParentLineID         string               `json:"parent_line_id,omitempty"`
	Notes                []Note               `json:"notes,omitempty"`
	LineStatusCode       LineStatusCode       `json:"line_status_code,omitempty"`
	LineStatusReasonCode LineStatusReasonCode `json:"line_status_reason_code,omitempty"`
}

// ProductCharacteristic is a key/value attribute of the traded product
type ProductCharacteristic struct {
	TypeCode     string           `json:"type_code,omitempty"`
	Description  string           `json:"description"`
	ValueMeasure *decimal.Decimal `json:"value_measure,omitempty"`
	Value        string           `json:"value"`
}

// DesignatedProductClassification classifies the product in a code list
type DesignatedProductClassification struct {
	ClassCode     string `json:"class_code"`
	ListID        string `json:"list_id,omitempty"`
	ListVersionID string `json:"list_version_id,omitempty"`
	ClassName     string `json:"class_name,omitempty"`
}

// IncludedReferencedProduct is a product bundled within the line
type IncludedReferencedProduct struct {
	Name         string           `json:"name"`
	UnitQuantity *decimal.Decimal `json:"unit_quantity,omitempty"`
	UnitCode     QuantityCode     `json:"unit_code,omitempty"`
}

// ReceivableSpecifiedTradeAccountingAccount is the buyer's booking reference
type ReceivableSpecifiedTradeAccountingAccount struct {
	TradeAccountID       string                    `json:"trade_account_id"`
	TradeAccountTypeCode AccountingAccountTypeCode `json:"trade_account_type_code,omitempty"`
}

// TradeLineItem is one invoice line
type TradeLineItem struct {
	AssociatedDocument AssociatedDocument `json:"associated_document"`

	GlobalID         *GlobalID `json:"global_id,omitempty"`
	SellerAssignedID string    `json:"seller_assigned_id,omitempty"`
	BuyerAssignedID  string    `json:"buyer_assigned_id,omitempty"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`

	BilledQuantity  decimal.Decimal  `json:"billed_quantity"`
	UnitCode        QuantityCode     `json:"unit_code"`
	UnitQuantity    *decimal.Decimal `json:"unit_quantity,omitempty"`
	NetUnitPrice    *decimal.Decimal `json:"net_unit_price,omitempty"`
	GrossUnitPrice  *decimal.Decimal `json:"gross_unit_price,omitempty"`
	LineTotalAmount *decimal.Decimal `json:"line_total_amount,omitempty"`

	TaxType         TaxType         `json:"tax_type"`
	TaxCategoryCode TaxCategoryCode `json:"tax_category_code"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`

	BillingPeriodStart *time.Time `json:"billing_period_start,omitempty"`
	BillingPeriodEnd   *time.Time `json:"billing_period_end,omitempty"`
	ActualDeliveryDate *time.Time `json:"actual_delivery_date,omitempty"`

	BuyerOrderReferencedDocument   *BuyerOrderReferencedDocument   `json:"buyer_order_referenced_document,omitempty"`
	ContractReferencedDocument     *ContractReferencedDocument     `json:"contract_referenced_document,omitempty"`
	DeliveryNoteReferencedDocument *DeliveryNoteReferencedDocument `json:"delivery_note_referenced_document,omitempty"`
	AdditionalReferencedDocuments  []AdditionalReferencedDocument  `json:"additional_referenced_documents,omitempty"`

	// TradeAllowanceCharges apply to the gross unit price
	TradeAllowanceCharges []TradeAllowanceCharge `json:"trade_allowance_charges,omitempty"`
	// SpecifiedTradeAllowanceCharges apply to the line total
	SpecifiedTradeAllowanceCharges []TradeAllowanceCharge `json:"specified_trade_allowance_charges,omitempty"`

	ApplicableProductCharacteristics           []ProductCharacteristic                     `json:"applicable_product_characteristics,omitempty"`
	DesignatedProductClassifications           []DesignatedProductClassification           `json:"designated_product_classifications,omitempty"`
	IncludedReferencedProducts                 []IncludedReferencedProduct                 `json:"included_referenced_products,omitempty"`
	ReceivableSpecifiedTradeAccountingAccounts []ReceivableSpecifiedTradeAccountingAccount `json:"receivable_specified_trade_accounting_accounts,omitempty"`

	ShipTo         *Party `json:"ship_to,omitempty"`
	UltimateShipTo *Party `json:"ultimate_ship_to,omitempty"`
}

// LineID returns the line identifier
func (li *TradeLineItem) LineID() string {
	return li.AssociatedDocument.LineID
}

// ParentLineID returns the parent line identifier, empty for top-level lines
func (li *TradeLineItem) ParentLineID() string {
	return li.AssociatedDocument.ParentLineID
}

// SetParentLineID makes the line a sub-line of parent
func (li *TradeLineItem) SetParentLineID(parent string) {
	li.AssociatedDocument.ParentLineID = parent
}

// AddNote appends a line-level note
func (li *TradeLineItem) AddNote(content string) {
	li.AssociatedDocument.Notes = append(li.AssociatedDocument.Notes, Note{Content: content})
}

// SetLineStatus sets the line status code pair
func (li *TradeLineItem) SetLineStatus(code LineStatusCode, reason LineStatusReasonCode) {
	li.AssociatedDocument.LineStatusCode = code
	li.AssociatedDocument.LineStatusReasonCode = reason
}

// AddApplicableProductCharacteristic appends a product attribute
func (li *TradeLineItem) AddApplicableProductCharacteristic(description, value string) {
	li.ApplicableProductCharacteristics = append(li.ApplicableProductCharacteristics, ProductCharacteristic{
		Description: description,
		Value:       value,
	})
}

// AddDesignatedProductClassification appends a product classification
func (li *TradeLineItem) AddDesignatedProductClassification(listID, listVersionID, classCode, className string) {
	li.DesignatedProductClassifications = append(li.DesignatedProductClassifications, DesignatedProductClassification{
		ClassCode:     classCode,
		ListID:        listID,
		ListVersionID: listVersionID,
		ClassName:     className,
	})
}

// AddIncludedReferencedProduct appends a bundled sub-product
func (li *TradeLineItem) AddIncludedReferencedProduct(name string, quantity *decimal.Decimal, unit QuantityCode) {
	li.IncludedReferencedProducts = append(li.IncludedReferencedProducts, IncludedReferencedProduct{
		Name:         name,
		UnitQuantity: quantity,
		UnitCode:     unit,
	})
}

// AddTradeAllowanceCharge appends an allowance/charge on the gross price
func (li *TradeLineItem) AddTradeAllowanceCharge(isDiscount bool, currency string, basisAmount, actualAmount decimal.Decimal, reason string) {
	basis := basisAmount
	li.TradeAllowanceCharges = append(li.TradeAllowanceCharges, TradeAllowanceCharge{
		ChargeIndicator: !isDiscount,
		BasisAmount:     &basis,
		ActualAmount:    actualAmount,
		Currency:        currency,
		Reason:          reason,
	})
}

// AddSpecifiedTradeAllowanceCharge appends an allowance/charge on the line total
func (li *TradeLineItem) AddSpecifiedTradeAllowanceCharge(isDiscount bool, currency string, basisAmount *decimal.Decimal, actualAmount decimal.Decimal, chargePercentage *decimal.Decimal, reason string) {
	li.SpecifiedTradeAllowanceCharges = append(li.SpecifiedTradeAllowanceCharges, TradeAllowanceCharge{
		ChargeIndicator:  !isDiscount,
		BasisAmount:      basisAmount,
		ActualAmount:     actualAmount,
		ChargePercentage: chargePercentage,
		Currency:         currency,
		Reason:           reason,
	})
}

// AddReceivableSpecifiedTradeAccountingAccount appends a booking reference
func (li *TradeLineItem) AddReceivableSpecifiedTradeAccountingAccount(id string, typeCode AccountingAccountTypeCode) {
	li.ReceivableSpecifiedTradeAccountingAccounts = append(li.ReceivableSpecifiedTradeAccountingAccounts,
		ReceivableSpecifiedTradeAccountingAccount{TradeAccountID: id, TradeAccountTypeCode: typeCode})
}

// AddAdditionalReferencedDocument appends a line-level document reference
func (li *TradeLineItem) AddAdditionalReferencedDocument(id string, typeCode AdditionalReferencedDocumentTypeCode, issueDate *time.Time, refType ReferenceTypeCode) {
	li.AdditionalReferencedDocuments = append(li.AdditionalReferencedDocuments, AdditionalReferencedDocument{
		ID:                id,
		TypeCode:          typeCode,
		IssueDate:         issueDate,
		ReferenceTypeCode: refType,
	})
}
