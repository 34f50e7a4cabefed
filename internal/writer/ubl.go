package writer

import (
	"encoding/base64"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/einvoice/internal/capability"
	dec "github.com/rezonia/einvoice/internal/decimal"
	"github.com/rezonia/einvoice/internal/dialect"
	"github.com/rezonia/einvoice/internal/model"
)

// ublWriter emits UBL 2.1 Invoice and CreditNote documents
type ublWriter struct {
	*encoder
	voc *dialect.UBLVocabulary
}

func (e *encoder) buildUBL() *etree.Document {
	w := &ublWriter{encoder: e, voc: dialect.UBLFor(e.inv.Type)}

	doc := newDocument()
	root := doc.CreateElement(dialect.PrefixUBL + ":" + w.voc.Root)
	root.CreateAttr("xmlns:"+dialect.PrefixUBL, w.voc.Namespace)
	root.CreateAttr("xmlns:"+dialect.PrefixCac, dialect.NsCac)
	root.CreateAttr("xmlns:"+dialect.PrefixCbc, dialect.NsCbc)

	w.writeHeader(root)
	w.writeReferences(root)
	w.writeParties(root)
	w.writePaymentMeans(root)
	w.writePaymentTerms(root)
	w.writeAllowanceCharges(root)
	w.writeTaxTotal(root)
	w.writeMonetaryTotal(root)
	w.writeLines(root)
	return doc
}

func (w *ublWriter) cac(parent *etree.Element, tag string) *etree.Element {
	return el(parent, dialect.PrefixCac, tag)
}

func (w *ublWriter) cbc(parent *etree.Element, tag, text string) *etree.Element {
	return textEl(parent, dialect.PrefixCbc, tag, text)
}

func (w *ublWriter) amount(parent *etree.Element, tag string, d decimal.Decimal) {
	attr(w.cbc(parent, tag, dec.FormatAmount(d)), "currencyID", w.inv.Currency)
}

func (w *ublWriter) amountPtr(parent *etree.Element, tag string, d *decimal.Decimal) {
	if d != nil {
		w.amount(parent, tag, *d)
	}
}

func (w *ublWriter) date(parent *etree.Element, tag string, t *time.Time) {
	if t != nil {
		w.cbc(parent, tag, formatISODate(*t))
	}
}

// dueDate is the first due date among the payment terms
func (w *ublWriter) dueDate() *time.Time {
	for i := range w.inv.PaymentTerms {
		if d := w.inv.PaymentTerms[i].DueDate; d != nil {
			return d
		}
	}
	return nil
}

func (w *ublWriter) creditNote() bool {
	return w.voc == dialect.UBLCreditNote
}

func (w *ublWriter) writeHeader(root *etree.Element) {
	inv := w.inv
	id, _ := dialect.GuidelineID(w.version, w.profile)
	w.cbc(root, "CustomizationID", id)
	if w.gate(capability.BusinessProcess, inv.BusinessProcess != "") {
		w.cbc(root, "ProfileID", inv.BusinessProcess)
	}
	w.cbc(root, "ID", inv.InvoiceNo)
	w.date(root, "IssueDate", inv.InvoiceDate)
	if !w.creditNote() {
		w.date(root, "DueDate", w.dueDate())
	}
	w.cbc(root, w.voc.TypeCode, inv.Type.Code())

	if w.gate(capability.Notes, len(inv.Notes) > 0) {
		for _, note := range inv.Notes {
			w.cbc(root, "Note", noteText(note))
		}
	}
	w.cbc(root, "DocumentCurrencyCode", inv.Currency)
	if w.gate(capability.TaxCurrency, inv.TaxCurrency != "") {
		w.cbc(root, "TaxCurrencyCode", inv.TaxCurrency)
	}
	if w.gate(capability.BuyerReference, inv.ReferenceOrderNo != "") {
		w.cbc(root, "BuyerReference", inv.ReferenceOrderNo)
	}
	if w.gate(capability.BillingPeriod, inv.BillingPeriodStart != nil || inv.BillingPeriodEnd != nil) {
		w.writePeriod(root, inv.BillingPeriodStart, inv.BillingPeriodEnd)
	}
}

// noteText prefixes the subject code the way XRechnung carries it in UBL
func noteText(note model.Note) string {
	if note.SubjectCode.IsKnown() {
		return "#" + note.SubjectCode.Code() + "#" + note.Content
	}
	return note.Content
}

func (w *ublWriter) writePeriod(parent *etree.Element, start, end *time.Time) {
	p := w.cac(parent, "InvoicePeriod")
	w.date(p, "StartDate", start)
	w.date(p, "EndDate", end)
}

func (w *ublWriter) writeReferences(root *etree.Element) {
	inv := w.inv

	if ref := inv.BuyerOrderReferencedDocument; w.gate(capability.BuyerOrderReference, ref != nil && ref.ID != "") {
		o := w.cac(root, "OrderReference")
		w.cbc(o, "ID", ref.ID)
		if s := inv.SellerOrderReferencedDocument; w.gate(capability.SellerOrderReference, s != nil && s.ID != "") {
			w.cbc(o, "SalesOrderID", s.ID)
		}
	} else if s := inv.SellerOrderReferencedDocument; s != nil && s.ID != "" {
		w.logger.Debug().Msg("seller order reference needs a buyer order reference in UBL, dropped")
	}

	if ref := inv.InvoiceReferencedDocument; w.gate(capability.InvoiceReference, ref != nil && ref.ID != "") {
		r := w.cac(w.cac(root, "BillingReference"), "InvoiceDocumentReference")
		w.cbc(r, "ID", ref.ID)
		w.date(r, "IssueDate", ref.IssueDate)
	}
	if ref := inv.DespatchAdviceReferencedDocument; w.gate(capability.DespatchAdviceReference, ref != nil && ref.ID != "") {
		w.cbc(w.cac(root, "DespatchDocumentReference"), "ID", ref.ID)
	}
	if ref := inv.ContractReferencedDocument; w.gate(capability.ContractReference, ref != nil && ref.ID != "") {
		w.cbc(w.cac(root, "ContractDocumentReference"), "ID", ref.ID)
	}
	if w.gate(capability.AdditionalReferences, len(inv.AdditionalReferencedDocuments) > 0) {
		for i := range inv.AdditionalReferencedDocuments {
			w.writeAdditionalReference(root, &inv.AdditionalReferencedDocuments[i])
		}
	}
	if p := inv.SpecifiedProcuringProject; w.gate(capability.ProcuringProject, p != nil && p.ID != "") {
		if w.creditNote() {
			w.logger.Debug().Msg("project reference not carried by credit notes, dropped")
		} else {
			w.cbc(w.cac(root, "ProjectReference"), "ID", p.ID)
		}
	}
}

func (w *ublWriter) writeAdditionalReference(parent *etree.Element, doc *model.AdditionalReferencedDocument) {
	r := w.cac(parent, "AdditionalDocumentReference")
	attr(w.cbc(r, "ID", doc.ID), "schemeID", doc.ReferenceTypeCode.Code())
	w.cbc(r, "DocumentTypeCode", doc.TypeCode.Code())
	w.cbc(r, "DocumentDescription", doc.Name)

	withBinary := w.gate(capability.Attachments, doc.HasAttachment())
	if !withBinary && doc.URIID == "" {
		return
	}
	a := w.cac(r, "Attachment")
	if withBinary {
		b := w.cbc(a, "EmbeddedDocumentBinaryObject", base64.StdEncoding.EncodeToString(doc.AttachmentBinaryObject))
		attr(b, "mimeCode", doc.AttachmentMimeType())
		attr(b, "filename", doc.Filename)
	}
	if doc.URIID != "" {
		w.cbc(w.cac(a, "ExternalReference"), "URI", doc.URIID)
	}
}

func (w *ublWriter) writeParties(root *etree.Element) {
	inv := w.inv
	if inv.Seller != nil {
		w.writeParty(w.cac(root, "AccountingSupplierParty"), inv.Seller, roleSeller)
	}
	if inv.Buyer != nil {
		w.writeParty(w.cac(root, "AccountingCustomerParty"), inv.Buyer, roleBuyer)
	}
	if p := inv.Payee; w.gate(capability.PayeeParty, p != nil) {
		pp := w.cac(root, "PayeeParty")
		if p.Name != "" {
			w.cbc(w.cac(pp, "PartyName"), "Name", p.Name)
		}
		if lo := p.LegalOrganization; lo != nil && !lo.ID.IsEmpty() {
			le := w.cac(pp, "PartyLegalEntity")
			attr(w.cbc(le, "CompanyID", lo.ID.ID), "schemeID", lo.ID.SchemeID.Code())
		}
	}
	// no UBL home; gate only logs the drop
	w.gate(capability.InvoiceeParty, inv.Invoicee != nil)
	w.gate(capability.ShipFromParty, inv.ShipFrom != nil)
	w.gate(capability.UltimateShipToParty, inv.UltimateShipTo != nil)

	shipTo := w.gate(capability.ShipToParty, inv.ShipTo != nil)
	delivered := w.gate(capability.ActualDeliveryDate, inv.ActualDeliveryDate != nil)
	if !shipTo && !delivered {
		return
	}
	d := w.cac(root, "Delivery")
	w.date(d, "ActualDeliveryDate", inv.ActualDeliveryDate)
	if shipTo {
		if inv.ShipTo.HasAddress() {
			w.writeAddress(w.cac(d, "DeliveryLocation"), "Address", inv.ShipTo)
		}
		if inv.ShipTo.Name != "" {
			w.cbc(w.cac(w.cac(d, "DeliveryParty"), "PartyName"), "Name", inv.ShipTo.Name)
		}
	}
}

func (w *ublWriter) writeParty(parent *etree.Element, p *model.Party, role partyRole) {
	party := w.cac(parent, "Party")

	if ea := p.ElectronicAddress; w.gate(capability.ElectronicAddress, ea != nil && ea.Address != "") {
		attr(w.cbc(party, "EndpointID", ea.Address), "schemeID", ea.Scheme.Code())
	}
	if role == roleSeller && w.inv.PaymentMeans.IsDirectDebit() && w.has(capability.SEPADirectDebit) {
		if creditor := w.inv.PaymentMeans.SEPACreditorIdentifier; creditor != "" {
			attr(w.cbc(w.cac(party, "PartyIdentification"), "ID", creditor), "schemeID", "SEPA")
		}
	}
	if lo := p.LegalOrganization; lo != nil && w.gate(capability.TradingBusinessName, lo.TradingBusinessName != "") {
		w.cbc(w.cac(party, "PartyName"), "Name", lo.TradingBusinessName)
	}
	if w.has(capability.PartyAddress) && p.HasAddress() {
		w.writeAddress(party, "PostalAddress", p)
	}
	if w.has(capability.TaxRegistration) {
		for _, reg := range p.TaxRegistrations {
			ts := w.cac(party, "PartyTaxScheme")
			w.cbc(ts, "CompanyID", reg.No)
			w.cbc(w.cac(ts, "TaxScheme"), "ID", taxSchemeID(reg.SchemeID))
		}
	}

	le := w.cac(party, "PartyLegalEntity")
	w.cbc(le, "RegistrationName", p.Name)
	if lo := p.LegalOrganization; lo != nil && !lo.ID.IsEmpty() && w.has(capability.LegalOrganization) {
		attr(w.cbc(le, "CompanyID", lo.ID.ID), "schemeID", lo.ID.SchemeID.Code())
	}
	if w.gate(capability.PartyDescription, p.Description != "") {
		w.cbc(le, "CompanyLegalForm", p.Description)
	}

	if c := p.Contact; w.gate(capability.PartyContact, !c.IsEmpty()) {
		ct := w.cac(party, "Contact")
		w.cbc(ct, "Name", c.Name)
		w.cbc(ct, "Telephone", c.PhoneNo)
		w.cbc(ct, "ElectronicMail", c.EmailAddress)
		if c.FaxNo != "" || c.OrgUnit != "" {
			w.logger.Debug().Msg("contact fax and department not carried in UBL, dropped")
		}
	}
}

// taxSchemeID maps a tax registration scheme to the UBL tax scheme identifier
func taxSchemeID(scheme model.TaxRegistrationSchemeID) string {
	if scheme == model.TaxRegistrationSchemeIDVA {
		return "VAT"
	}
	return scheme.Code()
}

func (w *ublWriter) writeAddress(parent *etree.Element, tag string, p *model.Party) {
	a := w.cac(parent, tag)
	w.cbc(a, "StreetName", p.Street)
	w.cbc(a, "AdditionalStreetName", p.AddressLine2)
	w.cbc(a, "CityName", p.City)
	w.cbc(a, "PostalZone", p.Postcode)
	w.cbc(a, "CountrySubentity", p.CountrySubdivision)
	if p.AddressLine3 != "" {
		w.cbc(w.cac(a, "AddressLine"), "Line", p.AddressLine3)
	}
	if p.Country != "" {
		w.cbc(w.cac(a, "Country"), "IdentificationCode", p.Country)
	}
}

func (w *ublWriter) writePaymentMeans(root *etree.Element) {
	inv := w.inv
	pm := inv.PaymentMeans
	if !w.gate(capability.PaymentMeans, pm != nil || len(inv.CreditorBankAccounts) > 0) {
		return
	}

	count := len(inv.CreditorBankAccounts)
	if count == 0 {
		count = 1
	}
	for i := 0; i < count; i++ {
		m := w.cac(root, "PaymentMeans")
		if pm != nil {
			w.cbc(m, "PaymentMeansCode", pm.TypeCode.Code())
		}
		if w.creditNote() && i == 0 {
			w.date(m, "PaymentDueDate", w.dueDate())
		}
		if w.gate(capability.PaymentReference, inv.PaymentReference != "") {
			w.cbc(m, "PaymentID", inv.PaymentReference)
		}
		if pm != nil {
			if card := pm.FinancialCard; w.gate(capability.FinancialCard, card != nil && card.ID != "") {
				ca := w.cac(m, "CardAccount")
				w.cbc(ca, "PrimaryAccountNumberID", card.ID)
				w.cbc(ca, "NetworkID", "NA")
				w.cbc(ca, "HolderName", card.CardholderName)
			}
		}
		if i < len(inv.CreditorBankAccounts) && w.has(capability.CreditorAccount) {
			acct := &inv.CreditorBankAccounts[i]
			fa := w.cac(m, "PayeeFinancialAccount")
			w.cbc(fa, "ID", firstNonEmpty(acct.IBAN, acct.ID))
			w.cbc(fa, "Name", acct.Name)
			if w.gate(capability.FinancialInstitution, acct.BIC != "") {
				w.cbc(w.cac(fa, "FinancialInstitutionBranch"), "ID", acct.BIC)
			}
		}
		if i == 0 && pm.IsDirectDebit() && w.has(capability.SEPADirectDebit) {
			mandate := w.cac(m, "PaymentMandate")
			w.cbc(mandate, "ID", pm.SEPAMandateReference)
			if len(inv.DebitorBankAccounts) > 0 && w.has(capability.DebitorAccount) {
				w.cbc(w.cac(mandate, "PayerFinancialAccount"), "ID", inv.DebitorBankAccounts[0].IBAN)
			}
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (w *ublWriter) writePaymentTerms(root *etree.Element) {
	if !w.gate(capability.PaymentTerms, len(w.inv.PaymentTerms) > 0) {
		return
	}
	text := model.JoinPaymentTerms(w.inv.PaymentTerms)
	if text == "" {
		return
	}
	note := el(w.cac(root, "PaymentTerms"), dialect.PrefixCbc, "Note")
	setBlockText(note, text, w.indent)
}

func (w *ublWriter) writeAllowanceCharges(root *etree.Element) {
	if !w.gate(capability.AllowanceCharges, len(w.inv.TradeAllowanceCharges) > 0) {
		return
	}
	for i := range w.inv.TradeAllowanceCharges {
		ac := &w.inv.TradeAllowanceCharges[i]
		a := w.writeAllowanceCharge(root, ac)
		tc := w.cac(a, "TaxCategory")
		w.cbc(tc, "ID", ac.Tax.CategoryCode.Code())
		w.cbc(tc, "Percent", dec.FormatPercent(ac.Tax.Percent))
		w.cbc(w.cac(tc, "TaxScheme"), "ID", ac.Tax.TypeCode.Code())
	}
	if len(w.inv.ServiceCharges) > 0 {
		w.gate(capability.ServiceCharges, true)
	}
}

func (w *ublWriter) writeAllowanceCharge(parent *etree.Element, ac *model.TradeAllowanceCharge) *etree.Element {
	a := w.cac(parent, "AllowanceCharge")
	w.cbc(a, "ChargeIndicator", strconv.FormatBool(ac.ChargeIndicator))
	w.cbc(a, "AllowanceChargeReasonCode", ac.ReasonCode)
	w.cbc(a, "AllowanceChargeReason", ac.Reason)
	if ac.ChargePercentage != nil {
		w.cbc(a, "MultiplierFactorNumeric", dec.FormatPercent(*ac.ChargePercentage))
	}
	w.amount(a, "Amount", ac.ActualAmount)
	w.amountPtr(a, "BaseAmount", ac.BasisAmount)
	return a
}

func (w *ublWriter) writeTaxTotal(root *etree.Element) {
	inv := w.inv
	if inv.TaxTotalAmount == nil && len(inv.Taxes) == 0 {
		return
	}
	tt := w.cac(root, "TaxTotal")

	total := inv.TaxTotalAmount
	if total == nil {
		sum := decimal.Zero
		for i := range inv.Taxes {
			sum = sum.Add(inv.Taxes[i].CalculatedAmount())
		}
		total = &sum
	}
	w.amount(tt, "TaxAmount", *total)

	if !w.has(capability.Taxes) {
		return
	}
	for i := range inv.Taxes {
		tax := &inv.Taxes[i]
		sub := w.cac(tt, "TaxSubtotal")
		w.amount(sub, "TaxableAmount", tax.BasisAmount)
		w.amount(sub, "TaxAmount", tax.CalculatedAmount())
		tc := w.cac(sub, "TaxCategory")
		w.cbc(tc, "ID", tax.CategoryCode.Code())
		w.cbc(tc, "Percent", dec.FormatPercent(tax.Percent))
		if w.has(capability.TaxExemption) {
			w.cbc(tc, "TaxExemptionReasonCode", tax.ExemptionReasonCode.Code())
			w.cbc(tc, "TaxExemptionReason", tax.ExemptionReason)
		}
		w.cbc(w.cac(tc, "TaxScheme"), "ID", tax.TypeCode.Code())
	}
}

func (w *ublWriter) writeMonetaryTotal(root *etree.Element) {
	inv := w.inv
	m := w.cac(root, "LegalMonetaryTotal")
	w.amountPtr(m, "LineExtensionAmount", inv.LineTotalAmount)
	w.amountPtr(m, "TaxExclusiveAmount", inv.TaxBasisAmount)
	w.amountPtr(m, "TaxInclusiveAmount", inv.GrandTotalAmount)
	w.amountPtr(m, "AllowanceTotalAmount", inv.AllowanceTotalAmount)
	w.amountPtr(m, "ChargeTotalAmount", inv.ChargeTotalAmount)
	w.amountPtr(m, "PrepaidAmount", inv.TotalPrepaidAmount)
	if w.gate(capability.RoundingAmount, nonZero(inv.RoundingAmount)) {
		w.amount(m, "PayableRoundingAmount", *inv.RoundingAmount)
	}
	w.amountPtr(m, "PayableAmount", inv.DuePayableAmount)
}

func (w *ublWriter) writeLines(root *etree.Element) {
	if !w.gate(capability.LineItems, len(w.inv.TradeLineItems) > 0) {
		return
	}
	for _, item := range w.inv.TradeLineItems {
		w.writeLine(root, item)
	}
}

func (w *ublWriter) writeLine(root *etree.Element, item *model.TradeLineItem) {
	ad := &item.AssociatedDocument
	line := w.cac(root, w.voc.Line)
	w.cbc(line, "ID", ad.LineID)
	if w.gate(capability.LineNotes, len(ad.Notes) > 0) {
		for _, note := range ad.Notes {
			w.cbc(line, "Note", note.Content)
		}
	}
	attr(w.cbc(line, w.voc.Quantity, dec.FormatQuantity(item.BilledQuantity)), "unitCode", item.UnitCode.Code())
	w.amount(line, "LineExtensionAmount", lineTotal(item))

	if w.gate(capability.LineAccountingAccount, len(item.ReceivableSpecifiedTradeAccountingAccounts) > 0) {
		w.cbc(line, "AccountingCost", item.ReceivableSpecifiedTradeAccountingAccounts[0].TradeAccountID)
	}
	if w.gate(capability.LineBillingPeriod, item.BillingPeriodStart != nil || item.BillingPeriodEnd != nil) {
		w.writePeriod(line, item.BillingPeriodStart, item.BillingPeriodEnd)
	}
	if ref := item.BuyerOrderReferencedDocument; w.gate(capability.LineBuyerOrderReference, ref != nil && ref.LineID != "") {
		w.cbc(w.cac(line, "OrderLineReference"), "LineID", ref.LineID)
	}
	if w.gate(capability.ParentLineID, ad.ParentLineID != "") {
		ref := w.cac(line, "DocumentReference")
		w.cbc(ref, "ID", ad.ParentLineID)
		w.cbc(ref, "DocumentType", dialect.UBLParentLineDocumentType)
	}
	if w.gate(capability.LineAllowanceCharges, len(item.SpecifiedTradeAllowanceCharges) > 0) {
		for i := range item.SpecifiedTradeAllowanceCharges {
			w.writeAllowanceCharge(line, &item.SpecifiedTradeAllowanceCharges[i])
		}
	}

	w.writeItem(line, item)
	w.writePrice(line, item)
}

func (w *ublWriter) writeItem(line *etree.Element, item *model.TradeLineItem) {
	it := w.cac(line, "Item")
	if w.gate(capability.ProductDescription, item.Description != "") {
		w.cbc(it, "Description", item.Description)
	}
	w.cbc(it, "Name", item.Name)
	if w.gate(capability.ProductBuyerAssignedID, item.BuyerAssignedID != "") {
		w.cbc(w.cac(it, "BuyersItemIdentification"), "ID", item.BuyerAssignedID)
	}
	if w.gate(capability.ProductSellerAssignedID, item.SellerAssignedID != "") {
		w.cbc(w.cac(it, "SellersItemIdentification"), "ID", item.SellerAssignedID)
	}
	if w.gate(capability.ProductGlobalID, !item.GlobalID.IsEmpty()) {
		id := w.cbc(w.cac(it, "StandardItemIdentification"), "ID", item.GlobalID.ID)
		attr(id, "schemeID", item.GlobalID.SchemeID.Code())
	}
	if w.gate(capability.ProductClassification, len(item.DesignatedProductClassifications) > 0) {
		for _, pc := range item.DesignatedProductClassifications {
			code := w.cbc(w.cac(it, "CommodityClassification"), "ItemClassificationCode", pc.ClassCode)
			attr(code, "listID", pc.ListID)
			attr(code, "listVersionID", pc.ListVersionID)
		}
	}

	tc := w.cac(it, "ClassifiedTaxCategory")
	w.cbc(tc, "ID", item.TaxCategoryCode.Code())
	w.cbc(tc, "Percent", dec.FormatPercent(item.TaxPercent))
	w.cbc(w.cac(tc, "TaxScheme"), "ID", item.TaxType.Code())

	if w.gate(capability.ProductCharacteristics, len(item.ApplicableProductCharacteristics) > 0) {
		for _, pc := range item.ApplicableProductCharacteristics {
			prop := w.cac(it, "AdditionalItemProperty")
			w.cbc(prop, "Name", pc.Description)
			w.cbc(prop, "Value", pc.Value)
		}
	}
}

func (w *ublWriter) writePrice(line *etree.Element, item *model.TradeLineItem) {
	gross := item.GrossUnitPrice
	if !w.has(capability.GrossPrice) {
		gross = nil
	}
	price := item.NetUnitPrice
	if price == nil {
		price = gross
	}
	if price == nil {
		return
	}

	p := w.cac(line, "Price")
	attr(w.cbc(p, "PriceAmount", dec.FormatPrice(*price)), "currencyID", w.inv.Currency)
	if item.UnitQuantity != nil {
		attr(w.cbc(p, "BaseQuantity", dec.FormatQuantity(*item.UnitQuantity)), "unitCode", item.UnitCode.Code())
	}
	// the gross price travels as the base of a single price discount
	if gross != nil && item.NetUnitPrice != nil && w.has(capability.GrossPriceAllowanceCharges) {
		a := w.cac(p, "AllowanceCharge")
		w.cbc(a, "ChargeIndicator", "false")
		attr(w.cbc(a, "Amount", dec.FormatPrice(gross.Sub(*item.NetUnitPrice))), "currencyID", w.inv.Currency)
		attr(w.cbc(a, "BaseAmount", dec.FormatPrice(*gross)), "currencyID", w.inv.Currency)
	}
}
