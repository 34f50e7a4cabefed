package xml

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rezonia/einvoice/internal/dialect"
	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/internal/signature"
)

// UBLAdapter parses UBL 2.1 Invoice and CreditNote documents
type UBLAdapter struct {
	logger zerolog.Logger
}

// NewUBLAdapter creates a new UBL adapter
func NewUBLAdapter(opts ...Option) *UBLAdapter {
	o := buildOptions(opts)
	return &UBLAdapter{logger: o.logger.With().Str("dialect", "UBL").Logger()}
}

// Dialect returns model.DialectUBL
func (a *UBLAdapter) Dialect() model.Dialect {
	return model.DialectUBL
}

// CanParse checks the root element
func (a *UBLAdapter) CanParse(content []byte) bool {
	tag, err := signature.DetectVersion(content)
	return err == nil && tag.Dialect == model.DialectUBL
}

// Parse parses UBL XML into Invoice
func (a *UBLAdapter) Parse(ctx context.Context, r io.Reader) (*model.Invoice, error) {
	root, tag, err := readDocument(ctx, r, model.DialectUBL)
	if err != nil {
		return nil, err
	}
	voc, ok := dialect.UBLForNamespace(tag.Namespace)
	if !ok {
		return nil, model.NewDocumentError("unknown UBL namespace "+tag.Namespace, nil)
	}

	ur := &ublReader{voc: voc}
	inv, err := ur.decode(node{root})
	if err != nil {
		return nil, err
	}
	if err := requireHeader(inv, model.DialectUBL); err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("invoice_no", inv.InvoiceNo).
		Str("root", voc.Root).
		Stringer("profile", tag.Profile).
		Int("lines", len(inv.TradeLineItems)).
		Msg("invoice decoded")
	return inv, nil
}

type ublReader struct {
	voc *dialect.UBLVocabulary
	inv *model.Invoice
}

func (r *ublReader) cac(n node, steps ...string) node {
	return n.path(dialect.NsCac, steps...)
}

func (r *ublReader) cbc(n node, tag string) node {
	return n.child(dialect.NsCbc, tag)
}

func (r *ublReader) cbcText(n node, tag string) string {
	return r.cbc(n, tag).text()
}

func (r *ublReader) date(n node, tag string) *time.Time {
	return parseDate(r.cbcText(n, tag))
}

func (r *ublReader) decode(root node) (*model.Invoice, error) {
	inv := &model.Invoice{}
	r.inv = inv

	inv.BusinessProcess = r.cbcText(root, "ProfileID")
	inv.InvoiceNo = r.cbcText(root, "ID")
	inv.InvoiceDate = r.date(root, "IssueDate")
	inv.Type = model.ParseInvoiceType(r.cbcText(root, r.voc.TypeCode))
	for _, n := range root.children(dialect.NsCbc, "Note") {
		inv.Notes = append(inv.Notes, parseNote(n.blockText()))
	}
	inv.Currency = r.cbcText(root, "DocumentCurrencyCode")
	inv.TaxCurrency = r.cbcText(root, "TaxCurrencyCode")
	inv.ReferenceOrderNo = r.cbcText(root, "BuyerReference")
	inv.BillingPeriodStart, inv.BillingPeriodEnd = r.period(r.cac(root, "InvoicePeriod"))

	if err := r.readReferences(root); err != nil {
		return nil, err
	}
	r.readParties(root)
	due := r.date(root, "DueDate")
	due = r.readPaymentMeans(root, due)
	r.readPaymentTerms(root, due)

	for _, n := range root.children(dialect.NsCac, "AllowanceCharge") {
		inv.TradeAllowanceCharges = append(inv.TradeAllowanceCharges, r.allowanceCharge(n))
	}
	r.readTaxTotal(root)
	r.readMonetaryTotal(r.cac(root, "LegalMonetaryTotal"))

	for _, n := range root.children(dialect.NsCac, r.voc.Line) {
		inv.TradeLineItems = append(inv.TradeLineItems, r.readLine(n))
	}
	return inv, nil
}

// parseNote splits the "#AAI#text" subject prefix
func parseNote(text string) model.Note {
	if strings.HasPrefix(text, "#") {
		if end := strings.Index(text[1:], "#"); end > 0 {
			if subject := model.ParseSubjectCode(text[1 : end+1]); subject.IsKnown() {
				return model.Note{Content: text[end+2:], SubjectCode: subject}
			}
		}
	}
	return model.Note{Content: text}
}

func (r *ublReader) period(p node) (*time.Time, *time.Time) {
	if !p.exists() {
		return nil, nil
	}
	return r.date(p, "StartDate"), r.date(p, "EndDate")
}

func (r *ublReader) readReferences(root node) error {
	inv := r.inv
	if o := r.cac(root, "OrderReference"); o.exists() {
		if id := r.cbcText(o, "ID"); id != "" {
			inv.BuyerOrderReferencedDocument = &model.BuyerOrderReferencedDocument{ID: id}
		}
		if id := r.cbcText(o, "SalesOrderID"); id != "" {
			inv.SellerOrderReferencedDocument = &model.SellerOrderReferencedDocument{ID: id}
		}
	}
	if ref := r.cac(root, "BillingReference", "InvoiceDocumentReference"); ref.exists() {
		inv.InvoiceReferencedDocument = &model.InvoiceReferencedDocument{
			ID:        r.cbcText(ref, "ID"),
			IssueDate: r.date(ref, "IssueDate"),
		}
	}
	if id := r.cbcText(r.cac(root, "DespatchDocumentReference"), "ID"); id != "" {
		inv.DespatchAdviceReferencedDocument = &model.DespatchAdviceReferencedDocument{ID: id}
	}
	if id := r.cbcText(r.cac(root, "ContractDocumentReference"), "ID"); id != "" {
		inv.ContractReferencedDocument = &model.ContractReferencedDocument{ID: id}
	}
	for _, n := range root.children(dialect.NsCac, "AdditionalDocumentReference") {
		doc, err := r.additionalReference(n)
		if err != nil {
			return err
		}
		inv.AdditionalReferencedDocuments = append(inv.AdditionalReferencedDocuments, doc)
	}
	if id := r.cbcText(r.cac(root, "ProjectReference"), "ID"); id != "" {
		inv.SpecifiedProcuringProject = &model.SpecifiedProcuringProject{ID: id}
	}
	return nil
}

func (r *ublReader) additionalReference(n node) (model.AdditionalReferencedDocument, error) {
	id := r.cbc(n, "ID")
	doc := model.AdditionalReferencedDocument{
		ID:                id.text(),
		ReferenceTypeCode: model.ParseReferenceTypeCode(id.attr("schemeID")),
		TypeCode:          model.ParseAdditionalReferencedDocumentTypeCode(r.cbcText(n, "DocumentTypeCode")),
		Name:              r.cbcText(n, "DocumentDescription"),
	}
	a := r.cac(n, "Attachment")
	doc.URIID = r.cbcText(r.cac(a, "ExternalReference"), "URI")
	if bin := r.cbc(a, "EmbeddedDocumentBinaryObject"); bin.text() != "" {
		data, err := decodeBinary(bin.text())
		if err != nil {
			return doc, model.NewDocumentError("attachment of document "+doc.ID+" is not base64", err)
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

func (r *ublReader) readParties(root node) {
	inv := r.inv
	seller := r.cac(root, "AccountingSupplierParty", "Party")
	inv.Seller = r.party(seller)
	inv.Buyer = r.party(r.cac(root, "AccountingCustomerParty", "Party"))

	for _, id := range r.cac(seller, "PartyIdentification").children(dialect.NsCbc, "ID") {
		if strings.EqualFold(id.attr("schemeID"), "SEPA") {
			r.paymentMeans().SEPACreditorIdentifier = id.text()
		}
	}

	if pp := r.cac(root, "PayeeParty"); pp.exists() {
		payee := &model.Party{Name: r.cbcText(r.cac(pp, "PartyName"), "Name")}
		if id := r.cbc(r.cac(pp, "PartyLegalEntity"), "CompanyID"); id.text() != "" {
			payee.LegalOrganization = &model.LegalOrganization{
				ID: model.NewGlobalID(model.ParseGlobalIDSchemeIdentifier(id.attr("schemeID")), id.text()),
			}
		}
		inv.Payee = payee
	}

	if d := r.cac(root, "Delivery"); d.exists() {
		inv.ActualDeliveryDate = r.date(d, "ActualDeliveryDate")
		address := r.cac(d, "DeliveryLocation", "Address")
		name := r.cbcText(r.cac(d, "DeliveryParty", "PartyName"), "Name")
		if address.exists() || name != "" {
			shipTo := &model.Party{Name: name}
			r.address(shipTo, address)
			inv.ShipTo = shipTo
		}
	}
}

func (r *ublReader) party(n node) *model.Party {
	if !n.exists() {
		return nil
	}
	p := &model.Party{}

	if ep := r.cbc(n, "EndpointID"); ep.text() != "" {
		p.ElectronicAddress = &model.ElectronicAddress{
			Scheme:  model.ParseElectronicAddressScheme(ep.attr("schemeID")),
			Address: ep.text(),
		}
	}
	r.address(p, r.cac(n, "PostalAddress"))

	for _, ts := range n.children(dialect.NsCac, "PartyTaxScheme") {
		scheme := model.TaxRegistrationSchemeIDFC
		if r.cbcText(r.cac(ts, "TaxScheme"), "ID") == "VAT" {
			scheme = model.TaxRegistrationSchemeIDVA
		}
		p.AddTaxRegistration(scheme, r.cbcText(ts, "CompanyID"))
	}

	tradingName := r.cbcText(r.cac(n, "PartyName"), "Name")
	le := r.cac(n, "PartyLegalEntity")
	p.Name = r.cbcText(le, "RegistrationName")
	p.Description = r.cbcText(le, "CompanyLegalForm")
	company := r.cbc(le, "CompanyID")
	if tradingName != "" || company.text() != "" {
		p.LegalOrganization = &model.LegalOrganization{TradingBusinessName: tradingName}
		if company.text() != "" {
			p.LegalOrganization.ID = model.NewGlobalID(model.ParseGlobalIDSchemeIdentifier(company.attr("schemeID")), company.text())
		}
	}

	if c := r.cac(n, "Contact"); c.exists() {
		p.Contact = &model.Contact{
			Name:         r.cbcText(c, "Name"),
			PhoneNo:      r.cbcText(c, "Telephone"),
			EmailAddress: r.cbcText(c, "ElectronicMail"),
		}
	}
	return p
}

func (r *ublReader) address(p *model.Party, a node) {
	if !a.exists() {
		return
	}
	p.Street = r.cbcText(a, "StreetName")
	p.AddressLine2 = r.cbcText(a, "AdditionalStreetName")
	p.AddressLine3 = r.cbcText(r.cac(a, "AddressLine"), "Line")
	p.City = r.cbcText(a, "CityName")
	p.Postcode = r.cbcText(a, "PostalZone")
	p.CountrySubdivision = r.cbcText(a, "CountrySubentity")
	p.Country = r.cbcText(r.cac(a, "Country"), "IdentificationCode")
}

func (r *ublReader) paymentMeans() *model.PaymentMeans {
	if r.inv.PaymentMeans == nil {
		r.inv.PaymentMeans = &model.PaymentMeans{}
	}
	return r.inv.PaymentMeans
}

// readPaymentMeans returns the due date, which credit notes carry in the
// payment means
func (r *ublReader) readPaymentMeans(root node, due *time.Time) *time.Time {
	inv := r.inv
	for i, m := range root.children(dialect.NsCac, "PaymentMeans") {
		if i == 0 {
			pm := r.paymentMeans()
			pm.TypeCode = model.ParsePaymentMeansTypeCode(r.cbcText(m, "PaymentMeansCode"))
			if card := r.cac(m, "CardAccount"); card.exists() {
				pm.FinancialCard = &model.FinancialCard{
					ID:             r.cbcText(card, "PrimaryAccountNumberID"),
					CardholderName: r.cbcText(card, "HolderName"),
				}
			}
		}
		if due == nil {
			due = r.date(m, "PaymentDueDate")
		}
		if inv.PaymentReference == "" {
			inv.PaymentReference = r.cbcText(m, "PaymentID")
		}
		if fa := r.cac(m, "PayeeFinancialAccount"); fa.exists() {
			inv.CreditorBankAccounts = append(inv.CreditorBankAccounts, model.BankAccount{
				IBAN: r.cbcText(fa, "ID"),
				Name: r.cbcText(fa, "Name"),
				BIC:  r.cbcText(r.cac(fa, "FinancialInstitutionBranch"), "ID"),
			})
		}
		if mandate := r.cac(m, "PaymentMandate"); mandate.exists() {
			r.paymentMeans().SEPAMandateReference = r.cbcText(mandate, "ID")
			if iban := r.cbcText(r.cac(mandate, "PayerFinancialAccount"), "ID"); iban != "" {
				inv.DebitorBankAccounts = append(inv.DebitorBankAccounts, model.BankAccount{IBAN: iban})
			}
		}
	}
	return due
}

func (r *ublReader) readPaymentTerms(root node, due *time.Time) {
	var text []string
	for _, n := range root.children(dialect.NsCac, "PaymentTerms") {
		if note := n.child(dialect.NsCbc, "Note").blockText(); note != "" {
			text = append(text, note)
		}
	}
	r.inv.PaymentTerms = model.ParsePaymentTermsText(strings.Join(text, "\n"), due)
}

func (r *ublReader) taxCategory(n node) model.Tax {
	return model.Tax{
		CategoryCode:        model.ParseTaxCategoryCode(r.cbcText(n, "ID")),
		Percent:             r.cbc(n, "Percent").numberOrZero(),
		ExemptionReasonCode: model.ParseTaxExemptionReasonCode(r.cbcText(n, "TaxExemptionReasonCode")),
		ExemptionReason:     r.cbcText(n, "TaxExemptionReason"),
		TypeCode:            model.ParseTaxType(r.cbcText(r.cac(n, "TaxScheme"), "ID")),
	}
}

func (r *ublReader) allowanceCharge(n node) model.TradeAllowanceCharge {
	amount := r.cbc(n, "Amount")
	ac := model.TradeAllowanceCharge{
		ChargeIndicator:  r.cbc(n, "ChargeIndicator").boolean(),
		BasisAmount:      r.cbc(n, "BaseAmount").number(),
		ActualAmount:     amount.numberOrZero(),
		ChargePercentage: r.cbc(n, "MultiplierFactorNumeric").number(),
		Currency:         amount.attr("currencyID"),
		Reason:           r.cbcText(n, "AllowanceChargeReason"),
		ReasonCode:       r.cbcText(n, "AllowanceChargeReasonCode"),
	}
	if tc := r.cac(n, "TaxCategory"); tc.exists() {
		ac.Tax = r.taxCategory(tc)
	}
	return ac
}

func (r *ublReader) readTaxTotal(root node) {
	inv := r.inv
	totals := root.children(dialect.NsCac, "TaxTotal")
	for _, tt := range totals {
		amount := r.cbc(tt, "TaxAmount")
		if c := amount.attr("currencyID"); c != "" && c != inv.Currency {
			continue
		}
		inv.TaxTotalAmount = amount.number()
		for _, sub := range tt.children(dialect.NsCac, "TaxSubtotal") {
			tax := r.taxCategory(r.cac(sub, "TaxCategory"))
			tax.BasisAmount = r.cbc(sub, "TaxableAmount").numberOrZero()
			tax.TaxAmount = r.cbc(sub, "TaxAmount").number()
			inv.Taxes = append(inv.Taxes, tax)
		}
		return
	}
}

func (r *ublReader) readMonetaryTotal(m node) {
	inv := r.inv
	inv.LineTotalAmount = r.cbc(m, "LineExtensionAmount").number()
	inv.TaxBasisAmount = r.cbc(m, "TaxExclusiveAmount").number()
	inv.GrandTotalAmount = r.cbc(m, "TaxInclusiveAmount").number()
	inv.AllowanceTotalAmount = r.cbc(m, "AllowanceTotalAmount").number()
	inv.ChargeTotalAmount = r.cbc(m, "ChargeTotalAmount").number()
	inv.TotalPrepaidAmount = r.cbc(m, "PrepaidAmount").number()
	inv.RoundingAmount = r.cbc(m, "PayableRoundingAmount").number()
	inv.DuePayableAmount = r.cbc(m, "PayableAmount").number()
}

func (r *ublReader) readLine(n node) *model.TradeLineItem {
	item := &model.TradeLineItem{}
	item.AssociatedDocument.LineID = r.cbcText(n, "ID")
	for _, note := range n.children(dialect.NsCbc, "Note") {
		item.AddNote(note.blockText())
	}

	qty := r.cbc(n, r.voc.Quantity)
	item.BilledQuantity = qty.numberOrZero()
	item.UnitCode = model.ParseQuantityCode(qty.attr("unitCode"))
	item.LineTotalAmount = r.cbc(n, "LineExtensionAmount").number()
	if account := r.cbcText(n, "AccountingCost"); account != "" {
		item.AddReceivableSpecifiedTradeAccountingAccount(account, model.AccountingAccountTypeCodeUnknown)
	}
	item.BillingPeriodStart, item.BillingPeriodEnd = r.period(r.cac(n, "InvoicePeriod"))
	if lineID := r.cbcText(r.cac(n, "OrderLineReference"), "LineID"); lineID != "" {
		item.BuyerOrderReferencedDocument = &model.BuyerOrderReferencedDocument{LineID: lineID}
	}
	for _, ref := range n.children(dialect.NsCac, "DocumentReference") {
		if r.cbcText(ref, "DocumentType") == dialect.UBLParentLineDocumentType {
			item.AssociatedDocument.ParentLineID = r.cbcText(ref, "ID")
		}
	}
	for _, ac := range n.children(dialect.NsCac, "AllowanceCharge") {
		item.SpecifiedTradeAllowanceCharges = append(item.SpecifiedTradeAllowanceCharges, r.allowanceCharge(ac))
	}

	it := r.cac(n, "Item")
	item.Description = r.cbcText(it, "Description")
	item.Name = r.cbcText(it, "Name")
	item.BuyerAssignedID = r.cbcText(r.cac(it, "BuyersItemIdentification"), "ID")
	item.SellerAssignedID = r.cbcText(r.cac(it, "SellersItemIdentification"), "ID")
	if id := r.cbc(r.cac(it, "StandardItemIdentification"), "ID"); id.text() != "" {
		item.GlobalID = model.NewGlobalID(model.ParseGlobalIDSchemeIdentifier(id.attr("schemeID")), id.text())
	}
	for _, cc := range it.children(dialect.NsCac, "CommodityClassification") {
		code := r.cbc(cc, "ItemClassificationCode")
		item.AddDesignatedProductClassification(code.attr("listID"), code.attr("listVersionID"), code.text(), "")
	}
	tax := r.taxCategory(r.cac(it, "ClassifiedTaxCategory"))
	item.TaxType = tax.TypeCode
	item.TaxCategoryCode = tax.CategoryCode
	item.TaxPercent = tax.Percent
	for _, prop := range it.children(dialect.NsCac, "AdditionalItemProperty") {
		item.AddApplicableProductCharacteristic(r.cbcText(prop, "Name"), r.cbcText(prop, "Value"))
	}

	price := r.cac(n, "Price")
	item.NetUnitPrice = r.cbc(price, "PriceAmount").number()
	item.UnitQuantity = r.cbc(price, "BaseQuantity").number()
	item.GrossUnitPrice = r.cbc(r.cac(price, "AllowanceCharge"), "BaseAmount").number()
	return item
}
