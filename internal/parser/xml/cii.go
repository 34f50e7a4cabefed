package xml

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rezonia/einvoice/internal/capability"
	"github.com/rezonia/einvoice/internal/dialect"
	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/internal/signature"
)

// CIIAdapter parses CrossIndustryInvoice (2.x) and CrossIndustryDocument
// (1.0) documents
type CIIAdapter struct {
	logger zerolog.Logger
}

// NewCIIAdapter creates a new CII adapter
func NewCIIAdapter(opts ...Option) *CIIAdapter {
	o := buildOptions(opts)
	return &CIIAdapter{logger: o.logger.With().Str("dialect", "CII").Logger()}
}

// Dialect returns model.DialectCII
func (a *CIIAdapter) Dialect() model.Dialect {
	return model.DialectCII
}

// CanParse checks the root element
func (a *CIIAdapter) CanParse(content []byte) bool {
	tag, err := signature.DetectVersion(content)
	return err == nil && tag.Dialect == model.DialectCII
}

// Parse parses CII XML into Invoice
func (a *CIIAdapter) Parse(ctx context.Context, r io.Reader) (*model.Invoice, error) {
	root, tag, err := readDocument(ctx, r, model.DialectCII)
	if err != nil {
		return nil, err
	}

	cr := &ciiReader{
		voc:    dialect.CIIFor(tag.Version),
		tag:    tag,
		logger: a.logger,
	}
	inv, err := cr.decode(node{root})
	if err != nil {
		return nil, err
	}
	if err := requireHeader(inv, model.DialectCII); err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("invoice_no", inv.InvoiceNo).
		Stringer("version", tag.Version).
		Stringer("profile", tag.Profile).
		Int("lines", len(inv.TradeLineItems)).
		Msg("invoice decoded")
	return inv, nil
}

type ciiReader struct {
	voc    *dialect.CIIVocabulary
	tag    signature.Tag
	logger zerolog.Logger
	inv    *model.Invoice
}

func (r *ciiReader) ram(n node, steps ...string) node {
	return n.path(r.voc.RAM, steps...)
}

func (r *ciiReader) ramText(n node, steps ...string) string {
	return r.ram(n, steps...).text()
}

// dateTime reads a udt or qdt DateTimeString below n, or n's own text
func (r *ciiReader) dateTime(n node) *time.Time {
	if !n.exists() {
		return nil
	}
	if s := n.child(r.voc.UDT, "DateTimeString"); s.exists() {
		return parseDate(s.text())
	}
	if s := n.child(r.voc.QDT, "DateTimeString"); s.exists() {
		return parseDate(s.text())
	}
	return parseDate(n.text())
}

func (r *ciiReader) decode(root node) (*model.Invoice, error) {
	inv := &model.Invoice{}
	r.inv = inv

	ctx := root.child(r.voc.RSM, r.voc.Context)
	inv.IsTest = r.ram(ctx, "TestIndicator").child(r.voc.UDT, "Indicator").boolean()
	inv.BusinessProcess = r.ramText(ctx, "BusinessProcessSpecifiedDocumentContextParameter", "ID")

	h := root.child(r.voc.RSM, r.voc.Header)
	inv.InvoiceNo = r.ramText(h, "ID")
	inv.Name = r.ramText(h, "Name")
	inv.Type = model.ParseInvoiceType(r.ramText(h, "TypeCode"))
	inv.InvoiceDate = r.dateTime(r.ram(h, "IssueDateTime"))
	inv.Notes = r.notes(h)

	t := root.child(r.voc.RSM, r.voc.Transaction)
	settlement := r.ram(t, r.voc.HeaderSettlement)
	// currency first: allowance charges copy it
	inv.Currency = r.ramText(settlement, "InvoiceCurrencyCode")

	if err := r.readAgreement(r.ram(t, r.voc.HeaderAgreement)); err != nil {
		return nil, err
	}
	r.readDelivery(r.ram(t, r.voc.HeaderDelivery))
	r.readSettlement(settlement)

	for _, li := range t.children(r.voc.RAM, r.voc.LineItem) {
		item, err := r.readLine(li)
		if err != nil {
			return nil, err
		}
		inv.TradeLineItems = append(inv.TradeLineItems, item)
	}
	return inv, nil
}

func (r *ciiReader) notes(parent node) []model.Note {
	var notes []model.Note
	for _, n := range parent.children(r.voc.RAM, "IncludedNote") {
		notes = append(notes, model.Note{
			Content:     n.child(r.voc.RAM, "Content").blockText(),
			SubjectCode: model.ParseSubjectCode(r.ramText(n, "SubjectCode")),
			ContentCode: r.ramText(n, "ContentCode"),
		})
	}
	return notes
}

// refFields reads the identifier, line id and date of a referenced document
func (r *ciiReader) refFields(n node) (string, string, *time.Time) {
	return r.ramText(n, r.voc.ReferenceID), r.ramText(n, "LineID"), r.dateTime(r.ram(n, r.voc.ReferenceDate))
}

func (r *ciiReader) readAgreement(a node) error {
	inv := r.inv
	inv.ReferenceOrderNo = r.ramText(a, "BuyerReference")
	inv.Seller = r.party(r.ram(a, "SellerTradeParty"))
	inv.Buyer = r.party(r.ram(a, "BuyerTradeParty"))

	if n := r.ram(a, "SellerOrderReferencedDocument"); n.exists() {
		id, _, date := r.refFields(n)
		inv.SellerOrderReferencedDocument = &model.SellerOrderReferencedDocument{ID: id, IssueDate: date}
	}
	if n := r.ram(a, "BuyerOrderReferencedDocument"); n.exists() {
		id, _, date := r.refFields(n)
		inv.BuyerOrderReferencedDocument = &model.BuyerOrderReferencedDocument{ID: id, IssueDate: date}
	}
	if n := r.ram(a, "ContractReferencedDocument"); n.exists() {
		id, _, date := r.refFields(n)
		inv.ContractReferencedDocument = &model.ContractReferencedDocument{ID: id, IssueDate: date}
	}
	for _, n := range a.children(r.voc.RAM, "AdditionalReferencedDocument") {
		doc, err := r.additionalReference(n)
		if err != nil {
			return err
		}
		inv.AdditionalReferencedDocuments = append(inv.AdditionalReferencedDocuments, doc)
	}
	if n := r.ram(a, "SpecifiedProcuringProject"); n.exists() {
		inv.SpecifiedProcuringProject = &model.SpecifiedProcuringProject{
			ID:   r.ramText(n, "ID"),
			Name: r.ramText(n, "Name"),
		}
	}
	return nil
}

func (r *ciiReader) additionalReference(n node) (model.AdditionalReferencedDocument, error) {
	id, lineID, date := r.refFields(n)
	doc := model.AdditionalReferencedDocument{
		ID:                id,
		IssueDate:         date,
		LineID:            lineID,
		TypeCode:          model.ParseAdditionalReferencedDocumentTypeCode(r.ramText(n, "TypeCode")),
		ReferenceTypeCode: model.ParseReferenceTypeCode(r.ramText(n, "ReferenceTypeCode")),
		Name:              r.ramText(n, "Name"),
		URIID:             r.ramText(n, "URIID"),
	}
	if bin := r.ram(n, "AttachmentBinaryObject"); bin.text() != "" {
		data, err := decodeBinary(bin.text())
		if err != nil {
			return doc, model.NewDocumentError("attachment of document "+id+" is not base64", err)
		}
		doc.AttachmentBinaryObject = data
		doc.Filename = bin.attr("filename")
		doc.MimeType = bin.attr("mimeCode")
		if doc.MimeType == "" {
			doc.MimeType = model.InferMimeType(doc.Filename)
		}
	}
	return doc, nil
}

func (r *ciiReader) readDelivery(d node) {
	inv := r.inv
	inv.ShipTo = r.party(r.ram(d, "ShipToTradeParty"))
	inv.UltimateShipTo = r.party(r.ram(d, "UltimateShipToTradeParty"))
	inv.ShipFrom = r.party(r.ram(d, "ShipFromTradeParty"))
	inv.ActualDeliveryDate = r.dateTime(r.ram(d, "ActualDeliverySupplyChainEvent", "OccurrenceDateTime"))

	if n := r.ram(d, "DespatchAdviceReferencedDocument"); n.exists() {
		id, _, date := r.refFields(n)
		inv.DespatchAdviceReferencedDocument = &model.DespatchAdviceReferencedDocument{ID: id, IssueDate: date}
	}
	if n := r.ram(d, "DeliveryNoteReferencedDocument"); n.exists() {
		id, _, date := r.refFields(n)
		inv.DeliveryNoteReferencedDocument = &model.DeliveryNoteReferencedDocument{ID: id, IssueDate: date}
	}
}

func (r *ciiReader) readSettlement(s node) {
	inv := r.inv
	inv.PaymentReference = r.ramText(s, "PaymentReference")
	inv.TaxCurrency = r.ramText(s, "TaxCurrencyCode")
	inv.Invoicee = r.party(r.ram(s, "InvoiceeTradeParty"))
	inv.Payee = r.party(r.ram(s, "PayeeTradeParty"))

	if x := r.ram(s, "TaxApplicableTradeCurrencyExchange"); x.exists() {
		inv.CurrencyExchange = &model.CurrencyExchange{
			SourceCurrency:          r.ramText(x, "SourceCurrencyCode"),
			TargetCurrency:          r.ramText(x, "TargetCurrencyCode"),
			ConversionRate:          r.ram(x, "ConversionRate").numberOrZero(),
			ConversionRateTimestamp: r.dateTime(r.ram(x, "ConversionRateDateTime")),
		}
	}

	r.readPaymentMeans(s)

	for _, n := range s.children(r.voc.RAM, "ApplicableTradeTax") {
		inv.Taxes = append(inv.Taxes, model.Tax{
			BasisAmount:                r.ram(n, "BasisAmount").numberOrZero(),
			Percent:                    r.ram(n, r.voc.TaxPercent).numberOrZero(),
			TaxAmount:                  r.ram(n, "CalculatedAmount").number(),
			TypeCode:                   model.ParseTaxType(r.ramText(n, "TypeCode")),
			CategoryCode:               model.ParseTaxCategoryCode(r.ramText(n, "CategoryCode")),
			ExemptionReasonCode:        model.ParseTaxExemptionReasonCode(r.ramText(n, "ExemptionReasonCode")),
			ExemptionReason:            r.ramText(n, "ExemptionReason"),
			AllowanceChargeBasisAmount: r.ram(n, "AllowanceChargeBasisAmount").number(),
			LineTotalBasisAmount:       r.ram(n, "LineTotalBasisAmount").number(),
		})
	}

	if p := r.ram(s, "BillingSpecifiedPeriod"); p.exists() {
		inv.BillingPeriodStart = r.dateTime(r.ram(p, "StartDateTime"))
		inv.BillingPeriodEnd = r.dateTime(r.ram(p, "EndDateTime"))
	}
	for _, n := range s.children(r.voc.RAM, "SpecifiedTradeAllowanceCharge") {
		inv.TradeAllowanceCharges = append(inv.TradeAllowanceCharges, r.allowanceCharge(n))
	}
	for _, n := range s.children(r.voc.RAM, "SpecifiedLogisticsServiceCharge") {
		inv.ServiceCharges = append(inv.ServiceCharges, model.ServiceCharge{
			Description: r.ramText(n, "Description"),
			Amount:      r.ram(n, "AppliedAmount").numberOrZero(),
			Tax:         r.categoryTax(r.ram(n, "AppliedTradeTax")),
		})
	}

	r.readPaymentTerms(s)
	r.readTotals(r.ram(s, r.voc.HeaderSummation))

	if n := r.ram(s, "InvoiceReferencedDocument"); n.exists() {
		id, _, date := r.refFields(n)
		inv.InvoiceReferencedDocument = &model.InvoiceReferencedDocument{ID: id, IssueDate: date}
	}
}

func (r *ciiReader) readPaymentMeans(s node) {
	inv := r.inv
	for _, m := range s.children(r.voc.RAM, "SpecifiedTradeSettlementPaymentMeans") {
		if inv.PaymentMeans == nil {
			inv.PaymentMeans = &model.PaymentMeans{
				TypeCode:    model.ParsePaymentMeansTypeCode(r.ramText(m, "TypeCode")),
				Information: r.ramText(m, "Information"),
			}
			if card := r.ram(m, "ApplicableTradeSettlementFinancialCard"); card.exists() {
				inv.PaymentMeans.FinancialCard = &model.FinancialCard{
					ID:             r.ramText(card, "ID"),
					CardholderName: r.ramText(card, "CardholderName"),
				}
			}
		}
		if da := r.ram(m, "PayerPartyDebtorFinancialAccount"); da.exists() {
			inv.DebitorBankAccounts = append(inv.DebitorBankAccounts, model.BankAccount{
				IBAN: r.ramText(da, "IBANID"),
				BIC:  r.ramText(m, "PayerSpecifiedDebtorFinancialInstitution", "BICID"),
			})
		}
		if ca := r.ram(m, "PayeePartyCreditorFinancialAccount"); ca.exists() {
			inv.CreditorBankAccounts = append(inv.CreditorBankAccounts, model.BankAccount{
				ID:   r.ramText(ca, "ProprietaryID"),
				IBAN: r.ramText(ca, "IBANID"),
				Name: r.ramText(ca, "AccountName"),
				BIC:  r.ramText(m, "PayeeSpecifiedCreditorFinancialInstitution", "BICID"),
			})
		}
	}

	if creditor := r.ramText(s, "CreditorReferenceID"); creditor != "" {
		r.paymentMeans().SEPACreditorIdentifier = creditor
	}
}

func (r *ciiReader) paymentMeans() *model.PaymentMeans {
	if r.inv.PaymentMeans == nil {
		r.inv.PaymentMeans = &model.PaymentMeans{}
	}
	return r.inv.PaymentMeans
}

// readPaymentTerms reads one entry per element where the profile carries
// structured terms, and splits the merged text of restricted profiles
func (r *ciiReader) readPaymentTerms(s node) {
	inv := r.inv
	structured := capability.Lookup(r.tag.Version, r.tag.Profile, model.DialectCII, capability.PaymentTerms) == capability.Written

	for _, n := range s.children(r.voc.RAM, "SpecifiedTradePaymentTerms") {
		if mandate := r.ramText(n, "DirectDebitMandateID"); mandate != "" {
			r.paymentMeans().SEPAMandateReference = mandate
		}
		description := r.ram(n, "Description").blockText()
		due := r.dateTime(r.ram(n, "DueDateDateTime"))

		if !structured {
			inv.PaymentTerms = append(inv.PaymentTerms, model.ParsePaymentTermsText(description, due)...)
			continue
		}

		pt := model.PaymentTerms{Description: description, DueDate: due}
		if terms := r.ram(n, "ApplicableTradePaymentDiscountTerms"); terms.exists() {
			r.readDiscountTerms(&pt, terms, model.PaymentTermsTypeSkonto)
		} else if terms := r.ram(n, "ApplicableTradePaymentPenaltyTerms"); terms.exists() {
			r.readDiscountTerms(&pt, terms, model.PaymentTermsTypeVerzug)
		}
		if pt.Description == "" && pt.DueDate == nil && !pt.IsStructured() {
			continue
		}
		inv.PaymentTerms = append(inv.PaymentTerms, pt)
	}
}

func (r *ciiReader) readDiscountTerms(pt *model.PaymentTerms, terms node, kind model.PaymentTermsType) {
	if days, err := strconv.Atoi(r.ramText(terms, "BasisPeriodMeasure")); err == nil {
		pt.DueDays = &days
	}
	pt.Percentage = r.ram(terms, "CalculationPercent").number()
	pt.BaseAmount = r.ram(terms, "BasisAmount").number()
	if pt.DueDays != nil && pt.Percentage != nil {
		pt.Type = kind
	}
}

func (r *ciiReader) readTotals(m node) {
	inv := r.inv
	inv.LineTotalAmount = r.ram(m, "LineTotalAmount").number()
	inv.ChargeTotalAmount = r.ram(m, "ChargeTotalAmount").number()
	inv.AllowanceTotalAmount = r.ram(m, "AllowanceTotalAmount").number()
	inv.TaxBasisAmount = r.ram(m, "TaxBasisTotalAmount").number()
	inv.RoundingAmount = r.ram(m, "RoundingAmount").number()
	inv.GrandTotalAmount = r.ram(m, "GrandTotalAmount").number()
	inv.TotalPrepaidAmount = r.ram(m, "TotalPrepaidAmount").number()
	inv.DuePayableAmount = r.ram(m, "DuePayableAmount").number()

	// a second tax total may be given in the tax currency
	totals := m.children(r.voc.RAM, "TaxTotalAmount")
	for _, n := range totals {
		if c := n.attr("currencyID"); c == "" || c == inv.Currency {
			inv.TaxTotalAmount = n.number()
			break
		}
	}
	if inv.TaxTotalAmount == nil && len(totals) > 0 {
		inv.TaxTotalAmount = totals[0].number()
	}
}

func (r *ciiReader) categoryTax(n node) model.Tax {
	return model.Tax{
		TypeCode:     model.ParseTaxType(r.ramText(n, "TypeCode")),
		CategoryCode: model.ParseTaxCategoryCode(r.ramText(n, "CategoryCode")),
		Percent:      r.ram(n, r.voc.TaxPercent).numberOrZero(),
	}
}

func (r *ciiReader) allowanceCharge(n node) model.TradeAllowanceCharge {
	ac := model.TradeAllowanceCharge{
		ChargeIndicator:  r.ram(n, "ChargeIndicator").child(r.voc.UDT, "Indicator").boolean(),
		BasisAmount:      r.ram(n, "BasisAmount").number(),
		ActualAmount:     r.ram(n, "ActualAmount").numberOrZero(),
		ChargePercentage: r.ram(n, "CalculationPercent").number(),
		Currency:         r.inv.Currency,
		Reason:           r.ramText(n, "Reason"),
		ReasonCode:       r.ramText(n, "ReasonCode"),
	}
	if tax := r.ram(n, "CategoryTradeTax"); tax.exists() {
		ac.Tax = r.categoryTax(tax)
	}
	return ac
}

func (r *ciiReader) party(n node) *model.Party {
	if !n.exists() {
		return nil
	}
	p := &model.Party{
		ID:          r.ramText(n, "ID"),
		Name:        r.ramText(n, "Name"),
		Description: r.ramText(n, "Description"),
	}
	if g := r.ram(n, "GlobalID"); g.text() != "" {
		p.GlobalID = model.NewGlobalID(model.ParseGlobalIDSchemeIdentifier(g.attr("schemeID")), g.text())
	}

	if lo := r.ram(n, "SpecifiedLegalOrganization"); lo.exists() {
		p.LegalOrganization = &model.LegalOrganization{TradingBusinessName: r.ramText(lo, "TradingBusinessName")}
		if id := r.ram(lo, "ID"); id.text() != "" {
			p.LegalOrganization.ID = model.NewGlobalID(model.ParseGlobalIDSchemeIdentifier(id.attr("schemeID")), id.text())
		}
	}

	if c := r.ram(n, "DefinedTradeContact"); c.exists() {
		p.Contact = &model.Contact{
			Name:         r.ramText(c, "PersonName"),
			OrgUnit:      r.ramText(c, "DepartmentName"),
			PhoneNo:      r.ramText(c, "TelephoneUniversalCommunication", "CompleteNumber"),
			FaxNo:        r.ramText(c, "FaxUniversalCommunication", "CompleteNumber"),
			EmailAddress: r.ramText(c, "EmailURIUniversalCommunication", "URIID"),
		}
	}

	if a := r.ram(n, "PostalTradeAddress"); a.exists() {
		p.Postcode = r.ramText(a, "PostcodeCode")
		p.Street = r.ramText(a, "LineOne")
		p.AddressLine2 = r.ramText(a, "LineTwo")
		p.AddressLine3 = r.ramText(a, "LineThree")
		p.City = r.ramText(a, "CityName")
		p.Country = r.ramText(a, "CountryID")
		p.CountrySubdivision = r.ramText(a, "CountrySubDivisionName")
	}

	if uri := r.ram(n, "URIUniversalCommunication", "URIID"); uri.text() != "" {
		p.ElectronicAddress = &model.ElectronicAddress{
			Scheme:  model.ParseElectronicAddressScheme(uri.attr("schemeID")),
			Address: uri.text(),
		}
	}
	for _, reg := range n.children(r.voc.RAM, "SpecifiedTaxRegistration") {
		id := r.ram(reg, "ID")
		p.AddTaxRegistration(model.ParseTaxRegistrationSchemeID(id.attr("schemeID")), id.text())
	}
	return p
}

func (r *ciiReader) readLine(li node) (*model.TradeLineItem, error) {
	item := &model.TradeLineItem{}

	doc := r.ram(li, "AssociatedDocumentLineDocument")
	item.AssociatedDocument = model.AssociatedDocument{
		LineID:               r.ramText(doc, "LineID"),
		ParentLineID:         r.ramText(doc, "ParentLineID"),
		Notes:                r.notes(doc),
		LineStatusCode:       model.ParseLineStatusCode(r.ramText(doc, "LineStatusCode")),
		LineStatusReasonCode: model.ParseLineStatusReasonCode(r.ramText(doc, "LineStatusReasonCode")),
	}

	r.readProduct(item, r.ram(li, "SpecifiedTradeProduct"))
	if err := r.readLineAgreement(item, r.ram(li, r.voc.LineAgreement)); err != nil {
		return nil, err
	}

	d := r.ram(li, r.voc.LineDelivery)
	billed := r.ram(d, "BilledQuantity")
	item.BilledQuantity = billed.numberOrZero()
	item.UnitCode = model.ParseQuantityCode(billed.attr("unitCode"))
	item.ShipTo = r.party(r.ram(d, "ShipToTradeParty"))
	item.UltimateShipTo = r.party(r.ram(d, "UltimateShipToTradeParty"))
	item.ActualDeliveryDate = r.dateTime(r.ram(d, "ActualDeliverySupplyChainEvent", "OccurrenceDateTime"))
	if n := r.ram(d, "DeliveryNoteReferencedDocument"); n.exists() {
		id, lineID, date := r.refFields(n)
		item.DeliveryNoteReferencedDocument = &model.DeliveryNoteReferencedDocument{ID: id, LineID: lineID, IssueDate: date}
	}

	s := r.ram(li, r.voc.LineSettlement)
	tax := r.categoryTax(r.ram(s, "ApplicableTradeTax"))
	item.TaxType = tax.TypeCode
	item.TaxCategoryCode = tax.CategoryCode
	item.TaxPercent = tax.Percent
	if p := r.ram(s, "BillingSpecifiedPeriod"); p.exists() {
		item.BillingPeriodStart = r.dateTime(r.ram(p, "StartDateTime"))
		item.BillingPeriodEnd = r.dateTime(r.ram(p, "EndDateTime"))
	}
	for _, n := range s.children(r.voc.RAM, "SpecifiedTradeAllowanceCharge") {
		item.SpecifiedTradeAllowanceCharges = append(item.SpecifiedTradeAllowanceCharges, r.allowanceCharge(n))
	}
	item.LineTotalAmount = r.ram(s, r.voc.LineSummation, "LineTotalAmount").number()
	for _, n := range s.children(r.voc.RAM, "ReceivableSpecifiedTradeAccountingAccount") {
		item.AddReceivableSpecifiedTradeAccountingAccount(
			r.ramText(n, "ID"),
			model.ParseAccountingAccountTypeCode(r.ramText(n, "TypeCode")),
		)
	}
	return item, nil
}

func (r *ciiReader) readProduct(item *model.TradeLineItem, p node) {
	if g := r.ram(p, "GlobalID"); g.text() != "" {
		item.GlobalID = model.NewGlobalID(model.ParseGlobalIDSchemeIdentifier(g.attr("schemeID")), g.text())
	}
	item.SellerAssignedID = r.ramText(p, "SellerAssignedID")
	item.BuyerAssignedID = r.ramText(p, "BuyerAssignedID")
	item.Name = r.ramText(p, "Name")
	item.Description = r.ramText(p, "Description")

	for _, n := range p.children(r.voc.RAM, "ApplicableProductCharacteristic") {
		item.ApplicableProductCharacteristics = append(item.ApplicableProductCharacteristics, model.ProductCharacteristic{
			TypeCode:     r.ramText(n, "TypeCode"),
			Description:  r.ramText(n, "Description"),
			ValueMeasure: r.ram(n, "ValueMeasure").number(),
			Value:        r.ramText(n, "Value"),
		})
	}
	for _, n := range p.children(r.voc.RAM, "DesignatedProductClassification") {
		code := r.ram(n, "ClassCode")
		item.AddDesignatedProductClassification(code.attr("listID"), code.attr("listVersionID"), code.text(), r.ramText(n, "ClassName"))
	}
	for _, n := range p.children(r.voc.RAM, "IncludedReferencedProduct") {
		qty := r.ram(n, "UnitQuantity")
		item.AddIncludedReferencedProduct(r.ramText(n, "Name"), qty.number(), model.ParseQuantityCode(qty.attr("unitCode")))
	}
}

func (r *ciiReader) readLineAgreement(item *model.TradeLineItem, a node) error {
	if n := r.ram(a, "BuyerOrderReferencedDocument"); n.exists() {
		id, lineID, date := r.refFields(n)
		item.BuyerOrderReferencedDocument = &model.BuyerOrderReferencedDocument{ID: id, LineID: lineID, IssueDate: date}
	}
	if n := r.ram(a, "ContractReferencedDocument"); n.exists() {
		id, _, date := r.refFields(n)
		item.ContractReferencedDocument = &model.ContractReferencedDocument{ID: id, IssueDate: date}
	}
	for _, n := range a.children(r.voc.RAM, "AdditionalReferencedDocument") {
		doc, err := r.additionalReference(n)
		if err != nil {
			return err
		}
		item.AdditionalReferencedDocuments = append(item.AdditionalReferencedDocuments, doc)
	}

	gross := r.ram(a, "GrossPriceProductTradePrice")
	item.GrossUnitPrice = r.ram(gross, "ChargeAmount").number()
	for _, n := range gross.children(r.voc.RAM, "AppliedTradeAllowanceCharge") {
		item.TradeAllowanceCharges = append(item.TradeAllowanceCharges, r.allowanceCharge(n))
	}

	net := r.ram(a, "NetPriceProductTradePrice")
	item.NetUnitPrice = r.ram(net, "ChargeAmount").number()

	basis := r.ram(net, "BasisQuantity")
	if !basis.exists() {
		basis = r.ram(gross, "BasisQuantity")
	}
	item.UnitQuantity = basis.number()
	return nil
}
