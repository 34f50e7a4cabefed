package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the root of the invoice entity graph. It exclusively owns every
// party, line, tax and reference attached to it.
type Invoice struct {
	InvoiceNo       string      `json:"invoice_no"`
	InvoiceDate     *time.Time  `json:"invoice_date"`
	Type            InvoiceType `json:"type"`
	Currency        string      `json:"currency"`
	TaxCurrency     string      `json:"tax_currency,omitempty"`
	IsTest          bool        `json:"is_test,omitempty"`
	Name            string      `json:"name,omitempty"`
	BusinessProcess string      `json:"business_process,omitempty"`
	Notes           []Note      `json:"notes,omitempty"`

	// ReferenceOrderNo is the buyer reference (Leitweg-ID for XRechnung)
	ReferenceOrderNo string `json:"reference_order_no,omitempty"`
	PaymentReference string `json:"payment_reference,omitempty"`

	ActualDeliveryDate *time.Time `json:"actual_delivery_date,omitempty"`
	BillingPeriodStart *time.Time `json:"billing_period_start,omitempty"`
	BillingPeriodEnd   *time.Time `json:"billing_period_end,omitempty"`

	Seller         *Party `json:"seller,omitempty"`
	Buyer          *Party `json:"buyer,omitempty"`
	Invoicee       *Party `json:"invoicee,omitempty"`
	Payee          *Party `json:"payee,omitempty"`
	ShipTo         *Party `json:"ship_to,omitempty"`
	ShipFrom       *Party `json:"ship_from,omitempty"`
	UltimateShipTo *Party `json:"ultimate_ship_to,omitempty"`

	BuyerOrderReferencedDocument     *BuyerOrderReferencedDocument     `json:"buyer_order_referenced_document,omitempty"`
	SellerOrderReferencedDocument    *SellerOrderReferencedDocument    `json:"seller_order_referenced_document,omitempty"`
	ContractReferencedDocument       *ContractReferencedDocument       `json:"contract_referenced_document,omitempty"`
	DeliveryNoteReferencedDocument   *DeliveryNoteReferencedDocument   `json:"delivery_note_referenced_document,omitempty"`
	DespatchAdviceReferencedDocument *DespatchAdviceReferencedDocument `json:"despatch_advice_referenced_document,omitempty"`
	InvoiceReferencedDocument        *InvoiceReferencedDocument        `json:"invoice_referenced_document,omitempty"`
	AdditionalReferencedDocuments    []AdditionalReferencedDocument    `json:"additional_referenced_documents,omitempty"`
	SpecifiedProcuringProject        *SpecifiedProcuringProject        `json:"specified_procuring_project,omitempty"`

	PaymentMeans         *PaymentMeans  `json:"payment_means,omitempty"`
	CreditorBankAccounts []BankAccount  `json:"creditor_bank_accounts,omitempty"`
	DebitorBankAccounts  []BankAccount  `json:"debitor_bank_accounts,omitempty"`
	PaymentTerms         []PaymentTerms `json:"payment_terms,omitempty"`

	Taxes                 []Tax                  `json:"taxes,omitempty"`
	TradeAllowanceCharges []TradeAllowanceCharge `json:"trade_allowance_charges,omitempty"`
	ServiceCharges        []ServiceCharge        `json:"service_charges,omitempty"`
	CurrencyExchange      *CurrencyExchange      `json:"currency_exchange,omitempty"`

	TradeLineItems []*TradeLineItem `json:"trade_line_items,omitempty"`

	LineTotalAmount      *decimal.Decimal `json:"line_total_amount,omitempty"`
	ChargeTotalAmount    *decimal.Decimal `json:"charge_total_amount,omitempty"`
	AllowanceTotalAmount *decimal.Decimal `json:"allowance_total_amount,omitempty"`
	TaxBasisAmount       *decimal.Decimal `json:"tax_basis_amount,omitempty"`
	TaxTotalAmount       *decimal.Decimal `json:"tax_total_amount,omitempty"`
	GrandTotalAmount     *decimal.Decimal `json:"grand_total_amount,omitempty"`
	TotalPrepaidAmount   *decimal.Decimal `json:"total_prepaid_amount,omitempty"`
	RoundingAmount       *decimal.Decimal `json:"rounding_amount,omitempty"`
	DuePayableAmount     *decimal.Decimal `json:"due_payable_amount,omitempty"`
}

// NewInvoice creates an invoice with the mandatory header fields set
func NewInvoice(invoiceNo string, invoiceDate time.Time, currency string) *Invoice {
	return &Invoice{
		InvoiceNo:   invoiceNo,
		InvoiceDate: &invoiceDate,
		Type:        InvoiceTypeInvoice,
		Currency:    currency,
	}
}

// nextLineID returns one more than the highest integer line id in use.
// Non-integer ids such as "2.1" do not take part.
func (inv *Invoice) nextLineID() string {
	highest := 0
	for _, item := range inv.TradeLineItems {
		if n, err := strconv.Atoi(item.AssociatedDocument.LineID); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}

// AddTradeLineItem appends item, assigning the next sequential line id when
// it has none, and returns it
func (inv *Invoice) AddTradeLineItem(item *TradeLineItem) *TradeLineItem {
	if item.AssociatedDocument.LineID == "" {
		item.AssociatedDocument.LineID = inv.nextLineID()
	}
	inv.TradeLineItems = append(inv.TradeLineItems, item)
	return item
}

// FindLineItem returns the line with the given id, or nil
func (inv *Invoice) FindLineItem(lineID string) *TradeLineItem {
	for _, item := range inv.TradeLineItems {
		if item.AssociatedDocument.LineID == lineID {
			return item
		}
	}
	return nil
}

// SubLineItems returns the direct children of the given line, in order
func (inv *Invoice) SubLineItems(parentLineID string) []*TradeLineItem {
	var children []*TradeLineItem
	for _, item := range inv.TradeLineItems {
		if item.AssociatedDocument.ParentLineID == parentLineID {
			children = append(children, item)
		}
	}
	return children
}

// AddNote appends a document-level note
func (inv *Invoice) AddNote(content string, subject SubjectCode) {
	inv.Notes = append(inv.Notes, Note{Content: content, SubjectCode: subject})
}

// SetSeller sets the seller party
func (inv *Invoice) SetSeller(p *Party) {
	inv.Seller = p
}

// SetBuyer sets the buyer party
func (inv *Invoice) SetBuyer(p *Party) {
	inv.Buyer = p
}

// AddApplicableTradeTax appends a tax breakdown entry
func (inv *Invoice) AddApplicableTradeTax(basisAmount, percent decimal.Decimal, taxType TaxType, category TaxCategoryCode) *Tax {
	inv.Taxes = append(inv.Taxes, Tax{
		BasisAmount:  basisAmount,
		Percent:      percent,
		TypeCode:     taxType,
		CategoryCode: category,
	})
	return &inv.Taxes[len(inv.Taxes)-1]
}

// AddTradeAllowanceCharge appends a document-level allowance or charge
func (inv *Invoice) AddTradeAllowanceCharge(isDiscount bool, basisAmount *decimal.Decimal, actualAmount decimal.Decimal, reason string, taxType TaxType, category TaxCategoryCode, taxPercent decimal.Decimal) {
	inv.TradeAllowanceCharges = append(inv.TradeAllowanceCharges, TradeAllowanceCharge{
		ChargeIndicator: !isDiscount,
		BasisAmount:     basisAmount,
		ActualAmount:    actualAmount,
		Currency:        inv.Currency,
		Reason:          reason,
		Tax: Tax{
			TypeCode:     taxType,
			CategoryCode: category,
			Percent:      taxPercent,
		},
	})
}

// AddLogisticsServiceCharge appends a logistics service charge
func (inv *Invoice) AddLogisticsServiceCharge(amount decimal.Decimal, description string, taxType TaxType, category TaxCategoryCode, taxPercent decimal.Decimal) {
	inv.ServiceCharges = append(inv.ServiceCharges, ServiceCharge{
		Description: description,
		Amount:      amount,
		Tax: Tax{
			TypeCode:     taxType,
			CategoryCode: category,
			Percent:      taxPercent,
		},
	})
}

// AddTradePaymentTerms appends a free-text payment term
func (inv *Invoice) AddTradePaymentTerms(description string, dueDate *time.Time) {
	inv.PaymentTerms = append(inv.PaymentTerms, PaymentTerms{Description: description, DueDate: dueDate})
}

// AddSkontoPaymentTerms appends a structured early-payment discount
func (inv *Invoice) AddSkontoPaymentTerms(description string, dueDays int, percentage decimal.Decimal, baseAmount *decimal.Decimal) {
	inv.PaymentTerms = append(inv.PaymentTerms, PaymentTerms{
		Description: description,
		Type:        PaymentTermsTypeSkonto,
		DueDays:     &dueDays,
		Percentage:  &percentage,
		BaseAmount:  baseAmount,
	})
}

// SetPaymentMeans sets type code and information; identifier and mandate
// are SEPA creditor id and mandate reference
func (inv *Invoice) SetPaymentMeans(typeCode PaymentMeansTypeCode, information, identifier, mandate string) {
	inv.PaymentMeans = &PaymentMeans{
		TypeCode:               typeCode,
		Information:            information,
		SEPACreditorIdentifier: identifier,
		SEPAMandateReference:   mandate,
	}
}

// SetPaymentMeansSepaDirectDebit sets SEPA direct debit payment means
func (inv *Invoice) SetPaymentMeansSepaDirectDebit(creditorIdentifier, mandateReference string) {
	inv.SetPaymentMeans(PaymentMeansTypeCodeSEPADirectDebit, "", creditorIdentifier, mandateReference)
}

// AddCreditorFinancialAccount appends a seller-side bank account
func (inv *Invoice) AddCreditorFinancialAccount(iban, bic, name string) {
	inv.CreditorBankAccounts = append(inv.CreditorBankAccounts, BankAccount{IBAN: iban, BIC: bic, Name: name})
}

// AddDebitorFinancialAccount appends a buyer-side bank account
func (inv *Invoice) AddDebitorFinancialAccount(iban, bic string) {
	inv.DebitorBankAccounts = append(inv.DebitorBankAccounts, BankAccount{IBAN: iban, BIC: bic})
}

// AddAdditionalReferencedDocument appends a supporting document
func (inv *Invoice) AddAdditionalReferencedDocument(doc AdditionalReferencedDocument) {
	inv.AdditionalReferencedDocuments = append(inv.AdditionalReferencedDocuments, doc)
}

// SetTotals sets the document totals
func (inv *Invoice) SetTotals(lineTotal, chargeTotal, allowanceTotal, taxBasis, taxTotal, grandTotal, prepaid, duePayable decimal.Decimal) {
	inv.LineTotalAmount = &lineTotal
	inv.ChargeTotalAmount = &chargeTotal
	inv.AllowanceTotalAmount = &allowanceTotal
	inv.TaxBasisAmount = &taxBasis
	inv.TaxTotalAmount = &taxTotal
	inv.GrandTotalAmount = &grandTotal
	inv.TotalPrepaidAmount = &prepaid
	inv.DuePayableAmount = &duePayable
}

// Validate checks the fields every document needs
func (inv *Invoice) Validate() []error {
	var errs []error
	if inv.InvoiceNo == "" {
		errs = append(errs, NewValidationError("invoice_no", nil, "required", "invoice number is required"))
	}
	if inv.InvoiceDate == nil {
		errs = append(errs, NewValidationError("invoice_date", nil, "required", "invoice date is required"))
	}
	if inv.Currency == "" {
		errs = append(errs, NewValidationError("currency", nil, "required", "currency is required"))
	}
	if inv.Seller == nil {
		errs = append(errs, NewValidationError("seller", nil, "required", "seller is required"))
	}
	seen := make(map[string]bool, len(inv.TradeLineItems))
	for _, item := range inv.TradeLineItems {
		id := item.AssociatedDocument.LineID
		if seen[id] {
			errs = append(errs, NewValidationError("line_id", id, "unique", "duplicate line id"))
		}
		seen[id] = true
	}
	for _, item := range inv.TradeLineItems {
		if parent := item.AssociatedDocument.ParentLineID; parent != "" && !seen[parent] {
			errs = append(errs, NewValidationError("parent_line_id", parent, "reference", "parent line does not exist"))
		}
	}
	return errs
}
