// Package capability answers which (version, profile, dialect) triples can
// be produced and, for each of them, whether an optional part of the
// invoice is written, written in a reduced form or omitted.
package capability

import (
	"github.com/rezonia/einvoice/internal/model"
)

// Support is the treatment of a feature in a given format
type Support int

const (
	Omitted Support = iota
	Written
	Restricted
)

func (s Support) String() string {
	switch s {
	case Written:
		return "written"
	case Restricted:
		return "restricted"
	default:
		return "omitted"
	}
}

// Feature is an optional part of the invoice that not every format carries
type Feature int

const (
	BusinessProcess Feature = iota
	DocumentName
	Notes
	BuyerReference

	PartyID
	PartyGlobalID
	PartyDescription
	PartyAddress
	PartyContact
	LegalOrganization
	TradingBusinessName
	ElectronicAddress
	TaxRegistration
	PartyIdentification

	InvoiceeParty
	PayeeParty
	ShipToParty
	ShipFromParty
	UltimateShipToParty

	BuyerOrderReference
	SellerOrderReference
	ContractReference
	DespatchAdviceReference
	DeliveryNoteReference
	InvoiceReference
	ReferencedDocumentDates
	AdditionalReferences
	Attachments
	ProcuringProject

	ActualDeliveryDate
	BillingPeriod
	TaxCurrency
	CurrencyExchange

	PaymentReference
	PaymentMeans
	PaymentMeansInformation
	FinancialCard
	CreditorAccount
	DebitorAccount
	FinancialInstitution
	SEPADirectDebit
	PaymentTerms

	Taxes
	TaxExemption
	TaxLineTotalBasis
	TaxAllowanceChargeBasis
	AllowanceCharges
	ServiceCharges
	DetailedTotals
	RoundingAmount

	LineItems
	LineNotes
	ParentLineID
	LineStatus
	ProductGlobalID
	ProductSellerAssignedID
	ProductBuyerAssignedID
	ProductDescription
	ProductCharacteristics
	ProductClassification
	IncludedReferencedProducts
	LineBuyerOrderReference
	LineContractReference
	LineDeliveryNoteReference
	LineAdditionalReferences
	GrossPrice
	GrossPriceAllowanceCharges
	LineShipTo
	LineActualDeliveryDate
	LineBillingPeriod
	LineAllowanceCharges
	LineAccountingAccount
)

var featureNames = map[Feature]string{
	BusinessProcess:            "BusinessProcess",
	DocumentName:               "DocumentName",
	Notes:                      "Notes",
	BuyerReference:             "BuyerReference",
	PartyID:                    "PartyID",
	PartyGlobalID:              "PartyGlobalID",
	PartyDescription:           "PartyDescription",
	PartyAddress:               "PartyAddress",
	PartyContact:               "PartyContact",
	LegalOrganization:          "LegalOrganization",
	TradingBusinessName:        "TradingBusinessName",
	ElectronicAddress:          "ElectronicAddress",
	TaxRegistration:            "TaxRegistration",
	PartyIdentification:        "PartyIdentification",
	InvoiceeParty:              "InvoiceeParty",
	PayeeParty:                 "PayeeParty",
	ShipToParty:                "ShipToParty",
	ShipFromParty:              "ShipFromParty",
	UltimateShipToParty:        "UltimateShipToParty",
	BuyerOrderReference:        "BuyerOrderReference",
	SellerOrderReference:       "SellerOrderReference",
	ContractReference:          "ContractReference",
	DespatchAdviceReference:    "DespatchAdviceReference",
	DeliveryNoteReference:      "DeliveryNoteReference",
	InvoiceReference:           "InvoiceReference",
	ReferencedDocumentDates:    "ReferencedDocumentDates",
	AdditionalReferences:       "AdditionalReferences",
	Attachments:                "Attachments",
	ProcuringProject:           "ProcuringProject",
	ActualDeliveryDate:         "ActualDeliveryDate",
	BillingPeriod:              "BillingPeriod",
	TaxCurrency:                "TaxCurrency",
	CurrencyExchange:           "CurrencyExchange",
	PaymentReference:           "PaymentReference",
	PaymentMeans:               "PaymentMeans",
	PaymentMeansInformation:    "PaymentMeansInformation",
	FinancialCard:              "FinancialCard",
	CreditorAccount:            "CreditorAccount",
	DebitorAccount:             "DebitorAccount",
	FinancialInstitution:       "FinancialInstitution",
	SEPADirectDebit:            "SEPADirectDebit",
	PaymentTerms:               "PaymentTerms",
	Taxes:                      "Taxes",
	TaxExemption:               "TaxExemption",
	TaxLineTotalBasis:          "TaxLineTotalBasis",
	TaxAllowanceChargeBasis:    "TaxAllowanceChargeBasis",
	AllowanceCharges:           "AllowanceCharges",
	ServiceCharges:             "ServiceCharges",
	DetailedTotals:             "DetailedTotals",
	RoundingAmount:             "RoundingAmount",
	LineItems:                  "LineItems",
	LineNotes:                  "LineNotes",
	ParentLineID:               "ParentLineID",
	LineStatus:                 "LineStatus",
	ProductGlobalID:            "ProductGlobalID",
	ProductSellerAssignedID:    "ProductSellerAssignedID",
	ProductBuyerAssignedID:     "ProductBuyerAssignedID",
	ProductDescription:         "ProductDescription",
	ProductCharacteristics:     "ProductCharacteristics",
	ProductClassification:      "ProductClassification",
	IncludedReferencedProducts: "IncludedReferencedProducts",
	LineBuyerOrderReference:    "LineBuyerOrderReference",
	LineContractReference:      "LineContractReference",
	LineDeliveryNoteReference:  "LineDeliveryNoteReference",
	LineAdditionalReferences:   "LineAdditionalReferences",
	GrossPrice:                 "GrossPrice",
	GrossPriceAllowanceCharges: "GrossPriceAllowanceCharges",
	LineShipTo:                 "LineShipTo",
	LineActualDeliveryDate:     "LineActualDeliveryDate",
	LineBillingPeriod:          "LineBillingPeriod",
	LineAllowanceCharges:       "LineAllowanceCharges",
	LineAccountingAccount:      "LineAccountingAccount",
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return "Feature(?)"
}

// Profile sets used by the rule table
const (
	allProfiles = model.ProfileMinimum | model.ProfileBasicWL | model.ProfileBasic | model.ProfileComfort |
		model.ProfileExtended | model.ProfileXRechnung1 | model.ProfileXRechnung | model.ProfileEReporting
	notMinimum = allProfiles &^ model.ProfileMinimum
	withLines  = notMinimum &^ model.ProfileBasicWL
	en16931    = model.ProfileComfort | model.ProfileExtended | model.ProfileXRechnung1 | model.ProfileXRechnung
	xrechnung  = model.ProfileXRechnung1 | model.ProfileXRechnung
	payable    = allProfiles &^ (model.ProfileMinimum | model.ProfileEReporting)
	extended   = model.ProfileExtended
)

// Rule describes one feature. Written and Restricted are profile masks;
// MinVersion is the first version that has the element at all. UBL is the
// treatment in the UBL dialect, which only exists for XRechnung.
type Rule struct {
	Written    model.Profile
	Restricted model.Profile
	MinVersion model.Version
	UBL        Support
}

var rules = map[Feature]Rule{
	BusinessProcess: {Written: allProfiles, MinVersion: model.Version20, UBL: Written},
	DocumentName:    {Written: extended, MinVersion: model.Version1},
	Notes:           {Written: notMinimum, MinVersion: model.Version1, UBL: Written},
	BuyerReference:  {Written: allProfiles, MinVersion: model.Version20, UBL: Written},

	PartyID:             {Written: allProfiles, MinVersion: model.Version1},
	PartyGlobalID:       {Written: allProfiles, MinVersion: model.Version1},
	PartyDescription:    {Written: en16931, MinVersion: model.Version20, UBL: Written},
	PartyAddress:        {Written: notMinimum, Restricted: model.ProfileMinimum, MinVersion: model.Version1, UBL: Written},
	PartyContact:        {Written: extended, Restricted: en16931 &^ extended, MinVersion: model.Version1, UBL: Restricted},
	LegalOrganization:   {Written: allProfiles, MinVersion: model.Version20, UBL: Written},
	TradingBusinessName: {Written: notMinimum, MinVersion: model.Version20, UBL: Written},
	ElectronicAddress:   {Written: notMinimum, MinVersion: model.Version20, UBL: Written},
	TaxRegistration:     {Written: allProfiles, MinVersion: model.Version1, UBL: Written},
	PartyIdentification: {UBL: Written},

	InvoiceeParty:       {Written: extended, MinVersion: model.Version1},
	PayeeParty:          {Written: extended, Restricted: payable &^ extended, MinVersion: model.Version1, UBL: Restricted},
	ShipToParty:         {Written: notMinimum, MinVersion: model.Version1, UBL: Restricted},
	ShipFromParty:       {Written: extended, MinVersion: model.Version1},
	UltimateShipToParty: {Written: extended, MinVersion: model.Version1},

	BuyerOrderReference:     {Written: allProfiles, MinVersion: model.Version1, UBL: Written},
	SellerOrderReference:    {Written: en16931, MinVersion: model.Version20, UBL: Written},
	ContractReference:       {Written: notMinimum, MinVersion: model.Version1, UBL: Written},
	DespatchAdviceReference: {Written: en16931, MinVersion: model.Version20, UBL: Written},
	DeliveryNoteReference:   {Written: extended, MinVersion: model.Version1},
	InvoiceReference:        {Written: notMinimum, MinVersion: model.Version20, UBL: Written},
	ReferencedDocumentDates: {Written: extended, MinVersion: model.Version1},
	AdditionalReferences:    {Written: en16931, MinVersion: model.Version1, UBL: Written},
	Attachments:             {Written: en16931, MinVersion: model.Version20, UBL: Written},
	ProcuringProject:        {Written: en16931, MinVersion: model.Version20, UBL: Written},

	ActualDeliveryDate: {Written: notMinimum, MinVersion: model.Version1, UBL: Written},
	BillingPeriod:      {Written: notMinimum, MinVersion: model.Version1, UBL: Written},
	TaxCurrency:        {Written: notMinimum, MinVersion: model.Version20, UBL: Written},
	CurrencyExchange:   {Written: extended, MinVersion: model.Version20},

	PaymentReference:        {Written: payable, MinVersion: model.Version1, UBL: Written},
	PaymentMeans:            {Written: payable, MinVersion: model.Version1, UBL: Written},
	PaymentMeansInformation: {Written: en16931, MinVersion: model.Version1},
	FinancialCard:           {Written: en16931, MinVersion: model.Version20, UBL: Written},
	CreditorAccount:         {Written: payable, MinVersion: model.Version1, UBL: Written},
	DebitorAccount:          {Written: payable, MinVersion: model.Version1, UBL: Written},
	FinancialInstitution:    {Written: en16931, MinVersion: model.Version1, UBL: Written},
	SEPADirectDebit:         {Written: payable, MinVersion: model.Version20, UBL: Written},
	PaymentTerms:            {Written: extended, Restricted: payable &^ extended, MinVersion: model.Version1, UBL: Restricted},

	Taxes:                   {Written: notMinimum, MinVersion: model.Version1, UBL: Written},
	TaxExemption:            {Written: notMinimum, MinVersion: model.Version1, UBL: Written},
	TaxLineTotalBasis:       {Written: extended, MinVersion: model.Version1},
	TaxAllowanceChargeBasis: {Written: extended, MinVersion: model.Version1},
	AllowanceCharges:        {Written: notMinimum, MinVersion: model.Version1, UBL: Written},
	ServiceCharges:          {Written: extended, MinVersion: model.Version1},
	DetailedTotals:          {Written: notMinimum, MinVersion: model.Version1, UBL: Written},
	RoundingAmount:          {Written: extended | xrechnung, MinVersion: model.Version20, UBL: Written},

	LineItems:                  {Written: withLines, MinVersion: model.Version1, UBL: Written},
	LineNotes:                  {Written: withLines, MinVersion: model.Version1, UBL: Written},
	ParentLineID:               {Written: extended | model.ProfileXRechnung, MinVersion: model.Version20, UBL: Written},
	LineStatus:                 {Written: extended | model.ProfileXRechnung, MinVersion: model.Version20},
	ProductGlobalID:            {Written: withLines, MinVersion: model.Version1, UBL: Written},
	ProductSellerAssignedID:    {Written: withLines, MinVersion: model.Version1, UBL: Written},
	ProductBuyerAssignedID:     {Written: en16931, MinVersion: model.Version1, UBL: Written},
	ProductDescription:         {Written: en16931, MinVersion: model.Version1, UBL: Written},
	ProductCharacteristics:     {Written: extended, Restricted: en16931 &^ extended, MinVersion: model.Version20, UBL: Restricted},
	ProductClassification:      {Written: en16931, MinVersion: model.Version20, UBL: Written},
	IncludedReferencedProducts: {Written: extended, MinVersion: model.Version20},
	LineBuyerOrderReference:    {Written: extended, Restricted: en16931 &^ extended, MinVersion: model.Version1, UBL: Restricted},
	LineContractReference:      {Written: extended, MinVersion: model.Version20},
	LineDeliveryNoteReference:  {Written: extended, MinVersion: model.Version1},
	LineAdditionalReferences:   {Written: extended, MinVersion: model.Version20},
	GrossPrice:                 {Written: withLines, MinVersion: model.Version1, UBL: Written},
	GrossPriceAllowanceCharges: {Written: withLines, MinVersion: model.Version1, UBL: Restricted},
	LineShipTo:                 {Written: extended, MinVersion: model.Version20},
	LineActualDeliveryDate:     {Written: extended, MinVersion: model.Version20},
	LineBillingPeriod:          {Written: en16931, MinVersion: model.Version1, UBL: Written},
	LineAllowanceCharges:       {Written: withLines, MinVersion: model.Version1, UBL: Written},
	LineAccountingAccount:      {Written: extended, Restricted: en16931 &^ extended, MinVersion: model.Version20, UBL: Restricted},
}

var supported = map[model.Dialect]map[model.Version]model.Profile{
	model.DialectCII: {
		model.Version1:  model.ProfileBasic | model.ProfileComfort | model.ProfileExtended,
		model.Version20: allProfiles &^ model.ProfileEReporting,
		model.Version23: allProfiles,
	},
	model.DialectUBL: {
		model.Version23: model.ProfileXRechnung,
	},
}

// Supported returns nil when the triple can be written, a
// *model.CombinationError otherwise
func Supported(v model.Version, p model.Profile, d model.Dialect) error {
	if set, ok := supported[d][v]; ok && p.In(set) && isSingle(p) {
		return nil
	}
	return model.NewCombinationError(v, p, d)
}

func isSingle(p model.Profile) bool {
	return p != model.ProfileUnknown && p&(p-1) == 0
}

// Lookup returns how feature f is treated for the triple. Unsupported
// triples omit everything.
func Lookup(v model.Version, p model.Profile, d model.Dialect, f Feature) Support {
	if Supported(v, p, d) != nil {
		return Omitted
	}
	r, ok := rules[f]
	if !ok {
		return Omitted
	}
	if d == model.DialectUBL {
		return r.UBL
	}
	if v < r.MinVersion {
		return Omitted
	}
	switch {
	case p.In(r.Written):
		return Written
	case p.In(r.Restricted):
		return Restricted
	}
	return Omitted
}

// Has reports whether the feature is written in any form
func Has(v model.Version, p model.Profile, d model.Dialect, f Feature) bool {
	return Lookup(v, p, d, f) != Omitted
}

// RuleFor exposes the raw rule of a feature
func RuleFor(f Feature) (Rule, bool) {
	r, ok := rules[f]
	return r, ok
}

var vatFamily = map[model.TaxType]bool{
	model.TaxTypeVAT: true,
}

// AcceptsTaxType reports whether profile p may carry tax type t. Extended
// takes every listed code, the other profiles the VAT family only.
func AcceptsTaxType(p model.Profile, t model.TaxType) bool {
	if !t.IsKnown() {
		return false
	}
	if p == model.ProfileExtended {
		return true
	}
	return vatFamily[t]
}

// Combination is one producible triple
type Combination struct {
	Version model.Version
	Profile model.Profile
	Dialect model.Dialect
}

// Combinations lists every supported triple, ordered by dialect, version
// and profile
func Combinations() []Combination {
	var out []Combination
	for _, d := range []model.Dialect{model.DialectCII, model.DialectUBL} {
		for _, v := range model.Versions {
			for _, p := range model.Profiles {
				if Supported(v, p, d) == nil {
					out = append(out, Combination{Version: v, Profile: p, Dialect: d})
				}
			}
		}
	}
	return out
}
