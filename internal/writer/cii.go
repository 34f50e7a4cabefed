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

type partyRole int

const (
	roleSeller partyRole = iota
	roleBuyer
	roleInvoicee
	rolePayee
	roleShipTo
	roleShipFrom
	roleUltimateShipTo
)

// ciiWriter emits CrossIndustryInvoice (2.x) and CrossIndustryDocument (1.0)
type ciiWriter struct {
	*encoder
	voc *dialect.CIIVocabulary
}

func (e *encoder) buildCII() *etree.Document {
	w := &ciiWriter{encoder: e, voc: dialect.CIIFor(e.version)}

	doc := newDocument()
	root := doc.CreateElement(dialect.PrefixRSM + ":" + w.voc.Root)
	root.CreateAttr("xmlns:"+dialect.PrefixRSM, w.voc.RSM)
	root.CreateAttr("xmlns:"+dialect.PrefixRAM, w.voc.RAM)
	root.CreateAttr("xmlns:"+dialect.PrefixUDT, w.voc.UDT)
	if w.voc.FormattedDates {
		root.CreateAttr("xmlns:"+dialect.PrefixQDT, w.voc.QDT)
	}

	w.writeContext(root)
	w.writeHeader(root)
	w.writeTransaction(root)
	return doc
}

func (w *ciiWriter) ram(parent *etree.Element, tag string) *etree.Element {
	return el(parent, dialect.PrefixRAM, tag)
}

func (w *ciiWriter) ramText(parent *etree.Element, tag, text string) *etree.Element {
	return textEl(parent, dialect.PrefixRAM, tag, text)
}

func (w *ciiWriter) amount(parent *etree.Element, tag string, d decimal.Decimal) *etree.Element {
	a := w.ramText(parent, tag, dec.FormatAmount(d))
	if w.voc.AmountCurrency {
		attr(a, "currencyID", w.inv.Currency)
	}
	return a
}

func (w *ciiWriter) amountPtr(parent *etree.Element, tag string, d *decimal.Decimal) {
	if d != nil {
		w.amount(parent, tag, *d)
	}
}

func (w *ciiWriter) price(parent *etree.Element, tag string, d decimal.Decimal) {
	p := w.ramText(parent, tag, dec.FormatPrice(d))
	if w.voc.AmountCurrency {
		attr(p, "currencyID", w.inv.Currency)
	}
}

func (w *ciiWriter) percent(parent *etree.Element, tag string, d decimal.Decimal) {
	w.ramText(parent, tag, dec.FormatPercent(d))
}

func (w *ciiWriter) quantity(parent *etree.Element, tag string, q decimal.Decimal, unit model.QuantityCode) {
	attr(w.ramText(parent, tag, dec.FormatQuantity(q)), "unitCode", unit.Code())
}

func (w *ciiWriter) dateTime(parent *etree.Element, tag string, t *time.Time) {
	if t == nil {
		return
	}
	d := w.ram(parent, tag)
	s := el(d, dialect.PrefixUDT, "DateTimeString")
	s.CreateAttr("format", "102")
	s.SetText(format102(*t))
}

func (w *ciiWriter) indicator(parent *etree.Element, tag string, value bool) {
	i := w.ram(parent, tag)
	textEl(i, dialect.PrefixUDT, "Indicator", strconv.FormatBool(value))
}

func (w *ciiWriter) writeContext(root *etree.Element) {
	ctx := el(root, dialect.PrefixRSM, w.voc.Context)
	if w.inv.IsTest {
		w.indicator(ctx, "TestIndicator", true)
	}
	if w.gate(capability.BusinessProcess, w.inv.BusinessProcess != "") {
		bp := w.ram(ctx, "BusinessProcessSpecifiedDocumentContextParameter")
		w.ramText(bp, "ID", w.inv.BusinessProcess)
	}
	id, _ := dialect.GuidelineID(w.version, w.profile)
	g := w.ram(ctx, "GuidelineSpecifiedDocumentContextParameter")
	w.ramText(g, "ID", id)
}

func (w *ciiWriter) writeHeader(root *etree.Element) {
	inv := w.inv
	h := el(root, dialect.PrefixRSM, w.voc.Header)
	w.ramText(h, "ID", inv.InvoiceNo)
	if w.gate(capability.DocumentName, inv.Name != "") {
		w.ramText(h, "Name", inv.Name)
	}
	w.ramText(h, "TypeCode", inv.Type.Code())
	w.dateTime(h, "IssueDateTime", inv.InvoiceDate)
	if w.gate(capability.Notes, len(inv.Notes) > 0) {
		w.writeNotes(h, inv.Notes)
	}
}

func (w *ciiWriter) writeNotes(parent *etree.Element, notes []model.Note) {
	for _, note := range notes {
		n := w.ram(parent, "IncludedNote")
		w.ramText(n, "ContentCode", note.ContentCode)
		w.ramText(n, "Content", note.Content)
		w.ramText(n, "SubjectCode", note.SubjectCode.Code())
	}
}

func (w *ciiWriter) writeTransaction(root *etree.Element) {
	t := el(root, dialect.PrefixRSM, w.voc.Transaction)
	if w.voc.LinesFirst {
		w.writeLines(t)
	}
	w.writeAgreement(t)
	w.writeDelivery(t)
	w.writeSettlement(t)
	if !w.voc.LinesFirst {
		w.writeLines(t)
	}
}

func (w *ciiWriter) writeAgreement(t *etree.Element) {
	inv := w.inv
	a := w.ram(t, w.voc.HeaderAgreement)

	if w.gate(capability.BuyerReference, inv.ReferenceOrderNo != "") {
		w.ramText(a, "BuyerReference", inv.ReferenceOrderNo)
	}
	w.writeParty(a, "SellerTradeParty", inv.Seller, roleSeller)
	w.writeParty(a, "BuyerTradeParty", inv.Buyer, roleBuyer)

	if ref := inv.SellerOrderReferencedDocument; w.gate(capability.SellerOrderReference, ref != nil && ref.ID != "") {
		w.writeDocRef(a, "SellerOrderReferencedDocument", docRef{id: ref.ID, date: w.refDate(ref.IssueDate)})
	}
	if ref := inv.BuyerOrderReferencedDocument; w.gate(capability.BuyerOrderReference, ref != nil && ref.ID != "") {
		w.writeDocRef(a, "BuyerOrderReferencedDocument", docRef{id: ref.ID, date: w.refDate(ref.IssueDate)})
	}
	if ref := inv.ContractReferencedDocument; w.gate(capability.ContractReference, ref != nil && ref.ID != "") {
		w.writeDocRef(a, "ContractReferencedDocument", docRef{id: ref.ID, date: w.refDate(ref.IssueDate)})
	}
	if w.gate(capability.AdditionalReferences, len(inv.AdditionalReferencedDocuments) > 0) {
		for i := range inv.AdditionalReferencedDocuments {
			w.writeAdditionalReference(a, &inv.AdditionalReferencedDocuments[i])
		}
	}
	if p := inv.SpecifiedProcuringProject; w.gate(capability.ProcuringProject, p != nil && p.ID != "") {
		pp := w.ram(a, "SpecifiedProcuringProject")
		w.ramText(pp, "ID", p.ID)
		w.ramText(pp, "Name", p.Name)
	}
}

func (w *ciiWriter) writeDelivery(t *etree.Element) {
	inv := w.inv
	d := w.ram(t, w.voc.HeaderDelivery)

	if w.gate(capability.ShipToParty, inv.ShipTo != nil) {
		w.writeParty(d, "ShipToTradeParty", inv.ShipTo, roleShipTo)
	}
	if w.gate(capability.UltimateShipToParty, inv.UltimateShipTo != nil) {
		w.writeParty(d, "UltimateShipToTradeParty", inv.UltimateShipTo, roleUltimateShipTo)
	}
	if w.gate(capability.ShipFromParty, inv.ShipFrom != nil) {
		w.writeParty(d, "ShipFromTradeParty", inv.ShipFrom, roleShipFrom)
	}
	if w.gate(capability.ActualDeliveryDate, inv.ActualDeliveryDate != nil) {
		ev := w.ram(d, "ActualDeliverySupplyChainEvent")
		w.dateTime(ev, "OccurrenceDateTime", inv.ActualDeliveryDate)
	}
	if ref := inv.DespatchAdviceReferencedDocument; w.gate(capability.DespatchAdviceReference, ref != nil && ref.ID != "") {
		w.writeDocRef(d, "DespatchAdviceReferencedDocument", docRef{id: ref.ID, date: w.refDate(ref.IssueDate)})
	}
	if ref := inv.DeliveryNoteReferencedDocument; w.gate(capability.DeliveryNoteReference, ref != nil && ref.ID != "") {
		w.writeDocRef(d, "DeliveryNoteReferencedDocument", docRef{id: ref.ID, date: w.refDate(ref.IssueDate)})
	}
}

func (w *ciiWriter) writeSettlement(t *etree.Element) {
	inv := w.inv
	s := w.ram(t, w.voc.HeaderSettlement)

	if w.directDebit() {
		w.ramText(s, "CreditorReferenceID", inv.PaymentMeans.SEPACreditorIdentifier)
	}
	if w.gate(capability.PaymentReference, inv.PaymentReference != "") {
		w.ramText(s, "PaymentReference", inv.PaymentReference)
	}
	if w.gate(capability.TaxCurrency, inv.TaxCurrency != "") {
		w.ramText(s, "TaxCurrencyCode", inv.TaxCurrency)
	}
	w.ramText(s, "InvoiceCurrencyCode", inv.Currency)

	if w.gate(capability.InvoiceeParty, inv.Invoicee != nil) {
		w.writeParty(s, "InvoiceeTradeParty", inv.Invoicee, roleInvoicee)
	}
	if w.gate(capability.PayeeParty, inv.Payee != nil) {
		w.writeParty(s, "PayeeTradeParty", inv.Payee, rolePayee)
	}
	if ce := inv.CurrencyExchange; w.gate(capability.CurrencyExchange, ce != nil) {
		x := w.ram(s, "TaxApplicableTradeCurrencyExchange")
		w.ramText(x, "SourceCurrencyCode", ce.SourceCurrency)
		w.ramText(x, "TargetCurrencyCode", ce.TargetCurrency)
		w.ramText(x, "ConversionRate", ce.ConversionRate.String())
		w.dateTime(x, "ConversionRateDateTime", ce.ConversionRateTimestamp)
	}

	w.writePaymentMeans(s)

	if w.gate(capability.Taxes, len(inv.Taxes) > 0) {
		for i := range inv.Taxes {
			w.writeTax(s, &inv.Taxes[i])
		}
	}
	if w.gate(capability.BillingPeriod, inv.BillingPeriodStart != nil || inv.BillingPeriodEnd != nil) {
		w.writePeriod(s, inv.BillingPeriodStart, inv.BillingPeriodEnd)
	}
	if w.gate(capability.AllowanceCharges, len(inv.TradeAllowanceCharges) > 0) {
		for i := range inv.TradeAllowanceCharges {
			w.writeAllowanceCharge(s, "SpecifiedTradeAllowanceCharge", &inv.TradeAllowanceCharges[i], true)
		}
	}
	if w.gate(capability.ServiceCharges, len(inv.ServiceCharges) > 0) {
		for i := range inv.ServiceCharges {
			sc := &inv.ServiceCharges[i]
			c := w.ram(s, "SpecifiedLogisticsServiceCharge")
			w.ramText(c, "Description", sc.Description)
			w.amount(c, "AppliedAmount", sc.Amount)
			tax := w.ram(c, "AppliedTradeTax")
			w.ramText(tax, "TypeCode", sc.Tax.TypeCode.Code())
			w.ramText(tax, "CategoryCode", sc.Tax.CategoryCode.Code())
			w.percent(tax, w.voc.TaxPercent, sc.Tax.Percent)
		}
	}

	w.writePaymentTerms(s)
	w.writeTotals(s)

	if ref := inv.InvoiceReferencedDocument; w.gate(capability.InvoiceReference, ref != nil && ref.ID != "") {
		w.writeDocRef(s, "InvoiceReferencedDocument", docRef{id: ref.ID, date: ref.IssueDate})
	}
}

// directDebit reports whether creditor reference and mandate are written
func (w *ciiWriter) directDebit() bool {
	return w.inv.PaymentMeans.IsDirectDebit() && w.has(capability.SEPADirectDebit)
}

func (w *ciiWriter) writePaymentMeans(s *etree.Element) {
	inv := w.inv
	pm := inv.PaymentMeans
	if !w.gate(capability.PaymentMeans, pm != nil || len(inv.CreditorBankAccounts) > 0 || len(inv.DebitorBankAccounts) > 0) {
		return
	}

	count := len(inv.CreditorBankAccounts)
	if count == 0 {
		count = 1
	}
	for i := 0; i < count; i++ {
		m := w.ram(s, "SpecifiedTradeSettlementPaymentMeans")
		if pm != nil {
			w.ramText(m, "TypeCode", pm.TypeCode.Code())
			if w.gate(capability.PaymentMeansInformation, pm.Information != "") {
				w.ramText(m, "Information", pm.Information)
			}
			if card := pm.FinancialCard; w.gate(capability.FinancialCard, card != nil && card.ID != "") {
				c := w.ram(m, "ApplicableTradeSettlementFinancialCard")
				w.ramText(c, "ID", card.ID)
				w.ramText(c, "CardholderName", card.CardholderName)
			}
		}

		var debitor *model.BankAccount
		if i == 0 && len(inv.DebitorBankAccounts) > 0 && w.has(capability.DebitorAccount) {
			debitor = &inv.DebitorBankAccounts[0]
			if debitor.IBAN != "" {
				da := w.ram(m, "PayerPartyDebtorFinancialAccount")
				w.ramText(da, "IBANID", debitor.IBAN)
			}
		}

		var creditor *model.BankAccount
		if i < len(inv.CreditorBankAccounts) && w.has(capability.CreditorAccount) {
			creditor = &inv.CreditorBankAccounts[i]
			ca := w.ram(m, "PayeePartyCreditorFinancialAccount")
			w.ramText(ca, "IBANID", creditor.IBAN)
			w.ramText(ca, "AccountName", creditor.Name)
			w.ramText(ca, "ProprietaryID", creditor.ID)
		}

		if debitor != nil && w.gate(capability.FinancialInstitution, debitor.BIC != "") {
			fi := w.ram(m, "PayerSpecifiedDebtorFinancialInstitution")
			w.ramText(fi, "BICID", debitor.BIC)
		}
		if creditor != nil && w.gate(capability.FinancialInstitution, creditor.BIC != "") {
			fi := w.ram(m, "PayeeSpecifiedCreditorFinancialInstitution")
			w.ramText(fi, "BICID", creditor.BIC)
		}
	}
}

func (w *ciiWriter) writeTax(parent *etree.Element, tax *model.Tax) {
	t := w.ram(parent, "ApplicableTradeTax")
	w.amount(t, "CalculatedAmount", tax.CalculatedAmount())
	w.ramText(t, "TypeCode", tax.TypeCode.Code())
	if w.gate(capability.TaxExemption, tax.ExemptionReason != "") {
		w.ramText(t, "ExemptionReason", tax.ExemptionReason)
	}
	w.amount(t, "BasisAmount", tax.BasisAmount)
	if w.gate(capability.TaxLineTotalBasis, tax.LineTotalBasisAmount != nil) {
		w.amount(t, "LineTotalBasisAmount", *tax.LineTotalBasisAmount)
	}
	if adjusted := tax.AdjustedBasis(); w.gate(capability.TaxAllowanceChargeBasis, adjusted != nil) {
		w.amount(t, "AllowanceChargeBasisAmount", *adjusted)
	}
	w.ramText(t, "CategoryCode", tax.CategoryCode.Code())
	if w.gate(capability.TaxExemption, tax.ExemptionReasonCode.IsKnown()) {
		w.ramText(t, "ExemptionReasonCode", tax.ExemptionReasonCode.Code())
	}
	w.percent(t, w.voc.TaxPercent, tax.Percent)
}

func (w *ciiWriter) writeAllowanceCharge(parent *etree.Element, tag string, ac *model.TradeAllowanceCharge, withTax bool) {
	a := w.ram(parent, tag)
	w.indicator(a, "ChargeIndicator", ac.ChargeIndicator)
	if ac.ChargePercentage != nil {
		w.percent(a, "CalculationPercent", *ac.ChargePercentage)
	}
	w.amountPtr(a, "BasisAmount", ac.BasisAmount)
	w.amount(a, "ActualAmount", ac.ActualAmount)
	w.ramText(a, "ReasonCode", ac.ReasonCode)
	w.ramText(a, "Reason", ac.Reason)
	if withTax {
		tax := w.ram(a, "CategoryTradeTax")
		w.ramText(tax, "TypeCode", ac.Tax.TypeCode.Code())
		w.ramText(tax, "CategoryCode", ac.Tax.CategoryCode.Code())
		w.percent(tax, w.voc.TaxPercent, ac.Tax.Percent)
	}
}

func (w *ciiWriter) writePaymentTerms(s *etree.Element) {
	inv := w.inv
	terms := inv.PaymentTerms
	mandate := ""
	if w.directDebit() {
		mandate = inv.PaymentMeans.SEPAMandateReference
	}

	switch w.support(capability.PaymentTerms) {
	case capability.Written:
		for i := range terms {
			pt := &terms[i]
			e := w.ram(s, "SpecifiedTradePaymentTerms")
			if pt.Description != "" {
				setBlockText(w.ram(e, "Description"), pt.Description, w.indent)
			}
			w.dateTime(e, "DueDateDateTime", pt.DueDate)
			if i == 0 {
				w.ramText(e, "DirectDebitMandateID", mandate)
			}
			if pt.IsStructured() {
				w.writeDiscountTerms(e, pt)
			}
		}
		if len(terms) == 0 && mandate != "" {
			w.ramText(w.ram(s, "SpecifiedTradePaymentTerms"), "DirectDebitMandateID", mandate)
		}

	case capability.Restricted:
		text := model.JoinPaymentTerms(terms)
		var due *time.Time
		for i := range terms {
			if terms[i].DueDate != nil {
				due = terms[i].DueDate
				break
			}
		}
		if text == "" && due == nil && mandate == "" {
			return
		}
		e := w.ram(s, "SpecifiedTradePaymentTerms")
		if text != "" {
			setBlockText(w.ram(e, "Description"), text, w.indent)
		}
		w.dateTime(e, "DueDateDateTime", due)
		w.ramText(e, "DirectDebitMandateID", mandate)

	default:
		if len(terms) > 0 {
			w.logger.Debug().Stringer("profile", w.profile).Msg("payment terms not carried by profile, dropped")
		}
	}
}

func (w *ciiWriter) writeDiscountTerms(parent *etree.Element, pt *model.PaymentTerms) {
	tag := "ApplicableTradePaymentDiscountTerms"
	if pt.Type == model.PaymentTermsTypeVerzug {
		tag = "ApplicableTradePaymentPenaltyTerms"
	}
	d := w.ram(parent, tag)
	attr(w.ramText(d, "BasisPeriodMeasure", strconv.Itoa(*pt.DueDays)), "unitCode", "DAY")
	w.amountPtr(d, "BasisAmount", pt.BaseAmount)
	w.percent(d, "CalculationPercent", *pt.Percentage)
}

func (w *ciiWriter) writeTotals(s *etree.Element) {
	inv := w.inv
	m := w.ram(s, w.voc.HeaderSummation)
	detailed := w.has(capability.DetailedTotals)

	if detailed {
		w.amountPtr(m, "LineTotalAmount", inv.LineTotalAmount)
		w.amountPtr(m, "ChargeTotalAmount", inv.ChargeTotalAmount)
		w.amountPtr(m, "AllowanceTotalAmount", inv.AllowanceTotalAmount)
	}
	w.amountPtr(m, "TaxBasisTotalAmount", inv.TaxBasisAmount)
	if inv.TaxTotalAmount != nil {
		total := w.amount(m, "TaxTotalAmount", *inv.TaxTotalAmount)
		if !w.voc.AmountCurrency {
			attr(total, "currencyID", inv.Currency)
		}
	}
	if w.gate(capability.RoundingAmount, nonZero(inv.RoundingAmount)) {
		w.amount(m, "RoundingAmount", *inv.RoundingAmount)
	}
	w.amountPtr(m, "GrandTotalAmount", inv.GrandTotalAmount)
	if detailed {
		w.amountPtr(m, "TotalPrepaidAmount", inv.TotalPrepaidAmount)
	}
	w.amountPtr(m, "DuePayableAmount", inv.DuePayableAmount)
}

func (w *ciiWriter) writePeriod(parent *etree.Element, start, end *time.Time) {
	p := w.ram(parent, "BillingSpecifiedPeriod")
	w.dateTime(p, "StartDateTime", start)
	w.dateTime(p, "EndDateTime", end)
}

// refDate returns date when referenced document dates are carried
func (w *ciiWriter) refDate(date *time.Time) *time.Time {
	if date == nil || !w.has(capability.ReferencedDocumentDates) {
		return nil
	}
	return date
}

type docRef struct {
	id       string
	uri      string
	lineID   string
	typeCode string
	name     string
	refType  string
	date     *time.Time
	// attachment is embedded when set
	attachment *model.AdditionalReferencedDocument
}

func (w *ciiWriter) writeDocRef(parent *etree.Element, tag string, ref docRef) {
	r := w.ram(parent, tag)

	if !w.voc.FormattedDates {
		if ref.date != nil {
			w.ramText(r, w.voc.ReferenceDate, ref.date.Format(dateTimeLayout))
		}
		w.ramText(r, "LineID", ref.lineID)
		w.ramText(r, "TypeCode", ref.typeCode)
		w.ramText(r, w.voc.ReferenceID, ref.id)
		w.ramText(r, "ReferenceTypeCode", ref.refType)
		return
	}

	w.ramText(r, w.voc.ReferenceID, ref.id)
	w.ramText(r, "URIID", ref.uri)
	w.ramText(r, "LineID", ref.lineID)
	w.ramText(r, "TypeCode", ref.typeCode)
	w.ramText(r, "Name", ref.name)
	if a := ref.attachment; a != nil {
		b := w.ramText(r, "AttachmentBinaryObject", base64.StdEncoding.EncodeToString(a.AttachmentBinaryObject))
		attr(b, "mimeCode", a.AttachmentMimeType())
		attr(b, "filename", a.Filename)
	}
	w.ramText(r, "ReferenceTypeCode", ref.refType)
	if ref.date != nil {
		d := w.ram(r, w.voc.ReferenceDate)
		s := el(d, dialect.PrefixQDT, "DateTimeString")
		s.CreateAttr("format", "102")
		s.SetText(format102(*ref.date))
	}
}

func (w *ciiWriter) writeAdditionalReference(parent *etree.Element, doc *model.AdditionalReferencedDocument) {
	ref := docRef{
		id:       doc.ID,
		uri:      doc.URIID,
		lineID:   doc.LineID,
		typeCode: doc.TypeCode.Code(),
		name:     doc.Name,
		refType:  doc.ReferenceTypeCode.Code(),
		date:     w.refDate(doc.IssueDate),
	}
	if w.gate(capability.Attachments, doc.HasAttachment()) {
		ref.attachment = doc
	}
	w.writeDocRef(parent, "AdditionalReferencedDocument", ref)
}

func (w *ciiWriter) writeParty(parent *etree.Element, tag string, p *model.Party, role partyRole) {
	if p == nil {
		return
	}
	tp := w.ram(parent, tag)

	if w.has(capability.PartyID) {
		w.ramText(tp, "ID", p.ID)
	}
	if w.has(capability.PartyGlobalID) && !p.GlobalID.IsEmpty() {
		attr(w.ramText(tp, "GlobalID", p.GlobalID.ID), "schemeID", p.GlobalID.SchemeID.Code())
	}
	w.ramText(tp, "Name", p.Name)

	// a restricted payee carries identification only
	if role == rolePayee && w.restricted(capability.PayeeParty) {
		w.writeLegalOrganization(tp, p.LegalOrganization, false)
		return
	}

	if w.gate(capability.PartyDescription, p.Description != "") {
		w.ramText(tp, "Description", p.Description)
	}
	w.writeLegalOrganization(tp, p.LegalOrganization, true)
	w.writeContact(tp, p.Contact)
	w.writeAddress(tp, p)

	if ea := p.ElectronicAddress; w.gate(capability.ElectronicAddress, ea != nil && ea.Address != "") {
		uri := w.ram(tp, "URIUniversalCommunication")
		attr(w.ramText(uri, "URIID", ea.Address), "schemeID", ea.Scheme.Code())
	}
	if w.has(capability.TaxRegistration) {
		for _, reg := range p.TaxRegistrations {
			r := w.ram(tp, "SpecifiedTaxRegistration")
			attr(w.ramText(r, "ID", reg.No), "schemeID", reg.SchemeID.Code())
		}
	}
}

func (w *ciiWriter) writeLegalOrganization(tp *etree.Element, lo *model.LegalOrganization, withName bool) {
	if lo == nil || !w.has(capability.LegalOrganization) {
		return
	}
	name := ""
	if withName && w.gate(capability.TradingBusinessName, lo.TradingBusinessName != "") {
		name = lo.TradingBusinessName
	}
	if lo.ID.IsEmpty() && name == "" {
		return
	}
	l := w.ram(tp, "SpecifiedLegalOrganization")
	if !lo.ID.IsEmpty() {
		attr(w.ramText(l, "ID", lo.ID.ID), "schemeID", lo.ID.SchemeID.Code())
	}
	w.ramText(l, "TradingBusinessName", name)
}

func (w *ciiWriter) writeContact(tp *etree.Element, c *model.Contact) {
	if !w.gate(capability.PartyContact, !c.IsEmpty()) {
		return
	}
	ct := w.ram(tp, "DefinedTradeContact")
	w.ramText(ct, "PersonName", c.Name)
	w.ramText(ct, "DepartmentName", c.OrgUnit)
	if c.PhoneNo != "" {
		w.ramText(w.ram(ct, "TelephoneUniversalCommunication"), "CompleteNumber", c.PhoneNo)
	}
	if c.FaxNo != "" && !w.restricted(capability.PartyContact) {
		w.ramText(w.ram(ct, "FaxUniversalCommunication"), "CompleteNumber", c.FaxNo)
	}
	if c.EmailAddress != "" {
		w.ramText(w.ram(ct, "EmailURIUniversalCommunication"), "URIID", c.EmailAddress)
	}
}

func (w *ciiWriter) writeAddress(tp *etree.Element, p *model.Party) {
	if !p.HasAddress() || !w.has(capability.PartyAddress) {
		return
	}
	if w.restricted(capability.PartyAddress) {
		if p.Country != "" {
			w.ramText(w.ram(tp, "PostalTradeAddress"), "CountryID", p.Country)
		}
		return
	}
	a := w.ram(tp, "PostalTradeAddress")
	w.ramText(a, "PostcodeCode", p.Postcode)
	w.ramText(a, "LineOne", p.Street)
	w.ramText(a, "LineTwo", p.AddressLine2)
	w.ramText(a, "LineThree", p.AddressLine3)
	w.ramText(a, "CityName", p.City)
	w.ramText(a, "CountryID", p.Country)
	w.ramText(a, "CountrySubDivisionName", p.CountrySubdivision)
}

func (w *ciiWriter) writeLines(t *etree.Element) {
	if !w.gate(capability.LineItems, len(w.inv.TradeLineItems) > 0) {
		return
	}
	for _, item := range w.inv.TradeLineItems {
		li := w.ram(t, w.voc.LineItem)
		w.writeLineDocument(li, item)
		if w.voc.ProductFirst {
			w.writeProduct(li, item)
		}
		w.writeLineAgreement(li, item)
		w.writeLineDelivery(li, item)
		w.writeLineSettlement(li, item)
		if !w.voc.ProductFirst {
			w.writeProduct(li, item)
		}
	}
}

func (w *ciiWriter) writeLineDocument(li *etree.Element, item *model.TradeLineItem) {
	ad := &item.AssociatedDocument
	d := w.ram(li, "AssociatedDocumentLineDocument")
	w.ramText(d, "LineID", ad.LineID)
	if w.gate(capability.ParentLineID, ad.ParentLineID != "") {
		w.ramText(d, "ParentLineID", ad.ParentLineID)
	}
	if w.gate(capability.LineStatus, ad.LineStatusCode.IsKnown()) {
		w.ramText(d, "LineStatusCode", ad.LineStatusCode.Code())
		w.ramText(d, "LineStatusReasonCode", ad.LineStatusReasonCode.Code())
	}
	if w.gate(capability.LineNotes, len(ad.Notes) > 0) {
		w.writeNotes(d, ad.Notes)
	}
}

func (w *ciiWriter) writeProduct(li *etree.Element, item *model.TradeLineItem) {
	p := w.ram(li, "SpecifiedTradeProduct")
	if w.gate(capability.ProductGlobalID, !item.GlobalID.IsEmpty()) {
		attr(w.ramText(p, "GlobalID", item.GlobalID.ID), "schemeID", item.GlobalID.SchemeID.Code())
	}
	if w.gate(capability.ProductSellerAssignedID, item.SellerAssignedID != "") {
		w.ramText(p, "SellerAssignedID", item.SellerAssignedID)
	}
	if w.gate(capability.ProductBuyerAssignedID, item.BuyerAssignedID != "") {
		w.ramText(p, "BuyerAssignedID", item.BuyerAssignedID)
	}
	w.ramText(p, "Name", item.Name)
	if w.gate(capability.ProductDescription, item.Description != "") {
		w.ramText(p, "Description", item.Description)
	}

	if w.gate(capability.ProductCharacteristics, len(item.ApplicableProductCharacteristics) > 0) {
		full := !w.restricted(capability.ProductCharacteristics)
		for _, pc := range item.ApplicableProductCharacteristics {
			c := w.ram(p, "ApplicableProductCharacteristic")
			if full {
				w.ramText(c, "TypeCode", pc.TypeCode)
			}
			w.ramText(c, "Description", pc.Description)
			if full && pc.ValueMeasure != nil {
				w.ramText(c, "ValueMeasure", dec.FormatQuantity(*pc.ValueMeasure))
			}
			w.ramText(c, "Value", pc.Value)
		}
	}
	if w.gate(capability.ProductClassification, len(item.DesignatedProductClassifications) > 0) {
		for _, pc := range item.DesignatedProductClassifications {
			c := w.ram(p, "DesignatedProductClassification")
			code := w.ramText(c, "ClassCode", pc.ClassCode)
			attr(code, "listID", pc.ListID)
			attr(code, "listVersionID", pc.ListVersionID)
			w.ramText(c, "ClassName", pc.ClassName)
		}
	}
	if w.gate(capability.IncludedReferencedProducts, len(item.IncludedReferencedProducts) > 0) {
		for _, irp := range item.IncludedReferencedProducts {
			r := w.ram(p, "IncludedReferencedProduct")
			w.ramText(r, "Name", irp.Name)
			if irp.UnitQuantity != nil {
				w.quantity(r, "UnitQuantity", *irp.UnitQuantity, irp.UnitCode)
			}
		}
	}
}

func (w *ciiWriter) writeLineAgreement(li *etree.Element, item *model.TradeLineItem) {
	a := w.ram(li, w.voc.LineAgreement)

	if ref := item.BuyerOrderReferencedDocument; w.gate(capability.LineBuyerOrderReference, ref != nil) {
		if w.restricted(capability.LineBuyerOrderReference) {
			if ref.LineID != "" {
				w.writeDocRef(a, "BuyerOrderReferencedDocument", docRef{lineID: ref.LineID})
			}
		} else if ref.ID != "" || ref.LineID != "" {
			w.writeDocRef(a, "BuyerOrderReferencedDocument", docRef{id: ref.ID, lineID: ref.LineID, date: w.refDate(ref.IssueDate)})
		}
	}
	if ref := item.ContractReferencedDocument; w.gate(capability.LineContractReference, ref != nil && ref.ID != "") {
		w.writeDocRef(a, "ContractReferencedDocument", docRef{id: ref.ID, date: w.refDate(ref.IssueDate)})
	}
	if w.gate(capability.LineAdditionalReferences, len(item.AdditionalReferencedDocuments) > 0) {
		for i := range item.AdditionalReferencedDocuments {
			w.writeAdditionalReference(a, &item.AdditionalReferencedDocuments[i])
		}
	}

	if w.gate(capability.GrossPrice, item.GrossUnitPrice != nil) {
		gp := w.ram(a, "GrossPriceProductTradePrice")
		w.price(gp, "ChargeAmount", *item.GrossUnitPrice)
		w.basisQuantity(gp, item)
		if w.gate(capability.GrossPriceAllowanceCharges, len(item.TradeAllowanceCharges) > 0) {
			for i := range item.TradeAllowanceCharges {
				w.writeAllowanceCharge(gp, "AppliedTradeAllowanceCharge", &item.TradeAllowanceCharges[i], false)
			}
		}
	}
	if item.NetUnitPrice != nil {
		np := w.ram(a, "NetPriceProductTradePrice")
		w.price(np, "ChargeAmount", *item.NetUnitPrice)
		w.basisQuantity(np, item)
	}
}

func (w *ciiWriter) basisQuantity(parent *etree.Element, item *model.TradeLineItem) {
	if item.UnitQuantity != nil {
		w.quantity(parent, "BasisQuantity", *item.UnitQuantity, item.UnitCode)
	}
}

func (w *ciiWriter) writeLineDelivery(li *etree.Element, item *model.TradeLineItem) {
	d := w.ram(li, w.voc.LineDelivery)
	w.quantity(d, "BilledQuantity", item.BilledQuantity, item.UnitCode)

	if w.gate(capability.LineShipTo, item.ShipTo != nil) {
		w.writeParty(d, "ShipToTradeParty", item.ShipTo, roleShipTo)
	}
	if w.gate(capability.LineShipTo, item.UltimateShipTo != nil) {
		w.writeParty(d, "UltimateShipToTradeParty", item.UltimateShipTo, roleUltimateShipTo)
	}
	if w.gate(capability.LineActualDeliveryDate, item.ActualDeliveryDate != nil) {
		ev := w.ram(d, "ActualDeliverySupplyChainEvent")
		w.dateTime(ev, "OccurrenceDateTime", item.ActualDeliveryDate)
	}
	if ref := item.DeliveryNoteReferencedDocument; w.gate(capability.LineDeliveryNoteReference, ref != nil && ref.ID != "") {
		w.writeDocRef(d, "DeliveryNoteReferencedDocument", docRef{id: ref.ID, lineID: ref.LineID, date: w.refDate(ref.IssueDate)})
	}
}

func (w *ciiWriter) writeLineSettlement(li *etree.Element, item *model.TradeLineItem) {
	s := w.ram(li, w.voc.LineSettlement)

	tax := w.ram(s, "ApplicableTradeTax")
	w.ramText(tax, "TypeCode", item.TaxType.Code())
	w.ramText(tax, "CategoryCode", item.TaxCategoryCode.Code())
	w.percent(tax, w.voc.TaxPercent, item.TaxPercent)

	if w.gate(capability.LineBillingPeriod, item.BillingPeriodStart != nil || item.BillingPeriodEnd != nil) {
		w.writePeriod(s, item.BillingPeriodStart, item.BillingPeriodEnd)
	}
	if w.gate(capability.LineAllowanceCharges, len(item.SpecifiedTradeAllowanceCharges) > 0) {
		for i := range item.SpecifiedTradeAllowanceCharges {
			w.writeAllowanceCharge(s, "SpecifiedTradeAllowanceCharge", &item.SpecifiedTradeAllowanceCharges[i], false)
		}
	}

	sum := w.ram(s, w.voc.LineSummation)
	w.amount(sum, "LineTotalAmount", lineTotal(item))

	if w.gate(capability.LineAccountingAccount, len(item.ReceivableSpecifiedTradeAccountingAccounts) > 0) {
		full := !w.restricted(capability.LineAccountingAccount)
		for _, acc := range item.ReceivableSpecifiedTradeAccountingAccounts {
			r := w.ram(s, "ReceivableSpecifiedTradeAccountingAccount")
			w.ramText(r, "ID", acc.TradeAccountID)
			if full {
				w.ramText(r, "TypeCode", acc.TradeAccountTypeCode.Code())
			}
		}
	}
}

// lineTotal is the stored line total, or net price times billed quantity
// per basis quantity when none is stored
func lineTotal(item *model.TradeLineItem) decimal.Decimal {
	if item.LineTotalAmount != nil {
		return *item.LineTotalAmount
	}
	if item.NetUnitPrice == nil {
		return decimal.Zero
	}
	total := item.NetUnitPrice.Mul(item.BilledQuantity)
	if item.UnitQuantity != nil && !item.UnitQuantity.IsZero() {
		total = total.Div(*item.UnitQuantity)
	}
	return total
}
