package model

// InvoiceType is the document type code (UNTDID 1001)
type InvoiceType int

const (
	InvoiceTypeUnknown InvoiceType = iota
	InvoiceTypeInvoice
	InvoiceTypeCreditNote
	InvoiceTypeDebitNote
	InvoiceTypeCorrection
	InvoiceTypePrepaymentInvoice
	InvoiceTypeSelfBilledInvoice
	InvoiceTypePartialInvoice
	InvoiceTypeInvoiceInformation
	InvoiceTypePartialConstructionInvoice
	InvoiceTypePartialFinalConstructionInvoice
	InvoiceTypeFinalConstructionInvoice
	InvoiceTypeSelfBilledCreditNote
	InvoiceTypeFactoredInvoice
)

var invoiceTypes = newCodeList(InvoiceTypeUnknown, "", map[InvoiceType]string{
	InvoiceTypeInvoice:                         "380",
	InvoiceTypeCreditNote:                      "381",
	InvoiceTypeDebitNote:                       "383",
	InvoiceTypeCorrection:                      "384",
	InvoiceTypePrepaymentInvoice:               "386",
	InvoiceTypeSelfBilledInvoice:               "389",
	InvoiceTypePartialInvoice:                  "326",
	InvoiceTypeInvoiceInformation:              "751",
	InvoiceTypePartialConstructionInvoice:      "875",
	InvoiceTypePartialFinalConstructionInvoice: "876",
	InvoiceTypeFinalConstructionInvoice:        "877",
	InvoiceTypeSelfBilledCreditNote:            "261",
	InvoiceTypeFactoredInvoice:                 "393",
})

// ParseInvoiceType maps a code string to its tag, InvoiceTypeUnknown if not listed
func ParseInvoiceType(code string) InvoiceType {
	return invoiceTypes.parse(code)
}

// Code returns the code string
func (i InvoiceType) Code() string {
	return invoiceTypes.code(i)
}

func (i InvoiceType) String() string {
	return invoiceTypes.code(i)
}

// IsKnown reports whether the tag is part of the code list
func (i InvoiceType) IsKnown() bool {
	return invoiceTypes.known(i)
}

func (i InvoiceType) MarshalText() ([]byte, error) {
	return []byte(invoiceTypes.code(i)), nil
}

func (i *InvoiceType) UnmarshalText(text []byte) error {
	*i = invoiceTypes.parse(string(text))
	return nil
}

// GlobalIDSchemeIdentifier is an ISO/IEC 6523 identifier scheme
type GlobalIDSchemeIdentifier int

const (
	GlobalIDSchemeIdentifierUnknown GlobalIDSchemeIdentifier = iota
	GlobalIDSchemeIdentifierSirene
	GlobalIDSchemeIdentifierSiretCode
	GlobalIDSchemeIdentifierSwift
	GlobalIDSchemeIdentifierDUNS
	GlobalIDSchemeIdentifierGLN
	GlobalIDSchemeIdentifierEAN
	GlobalIDSchemeIdentifierODETTE
	GlobalIDSchemeIdentifierCompanyNumber
)

var globalIDSchemeIdentifiers = newCodeList(GlobalIDSchemeIdentifierUnknown, "0000", map[GlobalIDSchemeIdentifier]string{
	GlobalIDSchemeIdentifierSirene:        "0002",
	GlobalIDSchemeIdentifierSiretCode:     "0009",
	GlobalIDSchemeIdentifierSwift:         "0021",
	GlobalIDSchemeIdentifierDUNS:          "0060",
	GlobalIDSchemeIdentifierGLN:           "0088",
	GlobalIDSchemeIdentifierEAN:           "0160",
	GlobalIDSchemeIdentifierODETTE:        "0177",
	GlobalIDSchemeIdentifierCompanyNumber: "0208",
})

// ParseGlobalIDSchemeIdentifier maps a code string to its tag, GlobalIDSchemeIdentifierUnknown if not listed
func ParseGlobalIDSchemeIdentifier(code string) GlobalIDSchemeIdentifier {
	return globalIDSchemeIdentifiers.parse(code)
}

// Code returns the code string
func (g GlobalIDSchemeIdentifier) Code() string {
	return globalIDSchemeIdentifiers.code(g)
}

func (g GlobalIDSchemeIdentifier) String() string {
	return globalIDSchemeIdentifiers.code(g)
}

// IsKnown reports whether the tag is part of the code list
func (g GlobalIDSchemeIdentifier) IsKnown() bool {
	return globalIDSchemeIdentifiers.known(g)
}

func (g GlobalIDSchemeIdentifier) MarshalText() ([]byte, error) {
	return []byte(globalIDSchemeIdentifiers.code(g)), nil
}

func (g *GlobalIDSchemeIdentifier) UnmarshalText(text []byte) error {
	*g = globalIDSchemeIdentifiers.parse(string(text))
	return nil
}

// TaxType is the duty/tax/fee type code (UNTDID 5153)
type TaxType int

const (
	TaxTypeUnknown TaxType = iota
	TaxTypeVAT
	TaxTypeGST
	TaxTypeVAD
	TaxTypePetroleumTax
	TaxTypeProvisionalCountervailingDutyCash
	TaxTypeProvisionalCountervailingDutyBond
	TaxTypeTobaccoTax
	TaxTypeEnergyFeeCharge
	TaxTypeCoffeeTax
	TaxTypeAntiDumpingDuty
	TaxTypeStampDuty
	TaxTypeAgriculturalLevy
	TaxTypeCarTax
	TaxTypeCustomsDuty
	TaxTypeCountervailingDuty
	TaxTypeEnvironmentalTax
	TaxTypeExciseDuty
	TaxTypeFreeTax
	TaxTypeImportLicenseFee
	TaxTypeLocalSalesTax
	TaxTypeOtherTaxes
	TaxTypeSurTax
	TaxTypeTotalTax
)

var taxTypes = newCodeList(TaxTypeUnknown, "", map[TaxType]string{
	TaxTypeVAT:                               "VAT",
	TaxTypeGST:                               "GST",
	TaxTypeVAD:                               "VAD",
	TaxTypePetroleumTax:                      "AAA",
	TaxTypeProvisionalCountervailingDutyCash: "AAB",
	TaxTypeProvisionalCountervailingDutyBond: "AAC",
	TaxTypeTobaccoTax:                        "AAD",
	TaxTypeEnergyFeeCharge:                   "AAE",
	TaxTypeCoffeeTax:                         "AAF",
	TaxTypeAntiDumpingDuty:                   "ADD",
	TaxTypeStampDuty:                         "BOL",
	TaxTypeAgriculturalLevy:                  "CAP",
	TaxTypeCarTax:                            "CAR",
	TaxTypeCustomsDuty:                       "CUD",
	TaxTypeCountervailingDuty:                "CVD",
	TaxTypeEnvironmentalTax:                  "ENV",
	TaxTypeExciseDuty:                        "EXC",
	TaxTypeFreeTax:                           "FRE",
	TaxTypeImportLicenseFee:                  "IMP",
	TaxTypeLocalSalesTax:                     "LOC",
	TaxTypeOtherTaxes:                        "OTH",
	TaxTypeSurTax:                            "SUR",
	TaxTypeTotalTax:                          "TOT",
})

// ParseTaxType maps a code string to its tag, TaxTypeUnknown if not listed
func ParseTaxType(code string) TaxType {
	return taxTypes.parse(code)
}

// Code returns the code string
func (t TaxType) Code() string {
	return taxTypes.code(t)
}

func (t TaxType) String() string {
	return taxTypes.code(t)
}

// IsKnown reports whether the tag is part of the code list
func (t TaxType) IsKnown() bool {
	return taxTypes.known(t)
}

func (t TaxType) MarshalText() ([]byte, error) {
	return []byte(taxTypes.code(t)), nil
}

func (t *TaxType) UnmarshalText(text []byte) error {
	*t = taxTypes.parse(string(text))
	return nil
}

// TaxCategoryCode is the duty/tax/fee category (UNTDID 5305)
type TaxCategoryCode int

const (
	TaxCategoryCodeUnknown TaxCategoryCode = iota
	TaxCategoryCodeA
	TaxCategoryCodeAA
	TaxCategoryCodeAB
	TaxCategoryCodeAC
	TaxCategoryCodeAD
	TaxCategoryCodeAE
	TaxCategoryCodeB
	TaxCategoryCodeC
	TaxCategoryCodeE
	TaxCategoryCodeG
	TaxCategoryCodeH
	TaxCategoryCodeIC
	TaxCategoryCodeK
	TaxCategoryCodeL
	TaxCategoryCodeM
	TaxCategoryCodeO
	TaxCategoryCodeS
	TaxCategoryCodeZ
)

var taxCategoryCodes = newCodeList(TaxCategoryCodeUnknown, "", map[TaxCategoryCode]string{
	TaxCategoryCodeA:  "A",
	TaxCategoryCodeAA: "AA",
	TaxCategoryCodeAB: "AB",
	TaxCategoryCodeAC: "AC",
	TaxCategoryCodeAD: "AD",
	TaxCategoryCodeAE: "AE",
	TaxCategoryCodeB:  "B",
	TaxCategoryCodeC:  "C",
	TaxCategoryCodeE:  "E",
	TaxCategoryCodeG:  "G",
	TaxCategoryCodeH:  "H",
	TaxCategoryCodeIC: "IC",
	TaxCategoryCodeK:  "K",
	TaxCategoryCodeL:  "L",
	TaxCategoryCodeM:  "M",
	TaxCategoryCodeO:  "O",
	TaxCategoryCodeS:  "S",
	TaxCategoryCodeZ:  "Z",
})

// ParseTaxCategoryCode maps a code string to its tag, TaxCategoryCodeUnknown if not listed
func ParseTaxCategoryCode(code string) TaxCategoryCode {
	return taxCategoryCodes.parse(code)
}

// Code returns the code string
func (t TaxCategoryCode) Code() string {
	return taxCategoryCodes.code(t)
}

func (t TaxCategoryCode) String() string {
	return taxCategoryCodes.code(t)
}

// IsKnown reports whether the tag is part of the code list
func (t TaxCategoryCode) IsKnown() bool {
	return taxCategoryCodes.known(t)
}

func (t TaxCategoryCode) MarshalText() ([]byte, error) {
	return []byte(taxCategoryCodes.code(t)), nil
}

func (t *TaxCategoryCode) UnmarshalText(text []byte) error {
	*t = taxCategoryCodes.parse(string(text))
	return nil
}

// TaxExemptionReasonCode is a VATEX exemption reason
type TaxExemptionReasonCode int

const (
	TaxExemptionReasonCodeUnknown TaxExemptionReasonCode = iota
	TaxExemptionReasonCodeVATEX_EU_79_C
	TaxExemptionReasonCodeVATEX_EU_132
	TaxExemptionReasonCodeVATEX_EU_132_1A
	TaxExemptionReasonCodeVATEX_EU_132_2
	TaxExemptionReasonCodeVATEX_EU_143
	TaxExemptionReasonCodeVATEX_EU_148
	TaxExemptionReasonCodeVATEX_EU_151
	TaxExemptionReasonCodeVATEX_EU_309
	TaxExemptionReasonCodeVATEX_EU_AE
	TaxExemptionReasonCodeVATEX_EU_D
	TaxExemptionReasonCodeVATEX_EU_F
	TaxExemptionReasonCodeVATEX_EU_G
	TaxExemptionReasonCodeVATEX_EU_I
	TaxExemptionReasonCodeVATEX_EU_IC
	TaxExemptionReasonCodeVATEX_EU_O
	TaxExemptionReasonCodeVATEX_EU_J
	TaxExemptionReasonCodeVATEX_FR_FRANCHISE
	TaxExemptionReasonCodeVATEX_FR_CNWVAT
)

var taxExemptionReasonCodes = newCodeList(TaxExemptionReasonCodeUnknown, "", map[TaxExemptionReasonCode]string{
	TaxExemptionReasonCodeVATEX_EU_79_C:      "VATEX-EU-79-C",
	TaxExemptionReasonCodeVATEX_EU_132:       "VATEX-EU-132",
	TaxExemptionReasonCodeVATEX_EU_132_1A:    "VATEX-EU-132-1A",
	TaxExemptionReasonCodeVATEX_EU_132_2:     "VATEX-EU-132-2",
	TaxExemptionReasonCodeVATEX_EU_143:       "VATEX-EU-143",
	TaxExemptionReasonCodeVATEX_EU_148:       "VATEX-EU-148",
	TaxExemptionReasonCodeVATEX_EU_151:       "VATEX-EU-151",
	TaxExemptionReasonCodeVATEX_EU_309:       "VATEX-EU-309",
	TaxExemptionReasonCodeVATEX_EU_AE:        "VATEX-EU-AE",
	TaxExemptionReasonCodeVATEX_EU_D:         "VATEX-EU-D",
	TaxExemptionReasonCodeVATEX_EU_F:         "VATEX-EU-F",
	TaxExemptionReasonCodeVATEX_EU_G:         "VATEX-EU-G",
	TaxExemptionReasonCodeVATEX_EU_I:         "VATEX-EU-I",
	TaxExemptionReasonCodeVATEX_EU_IC:        "VATEX-EU-IC",
	TaxExemptionReasonCodeVATEX_EU_O:         "VATEX-EU-O",
	TaxExemptionReasonCodeVATEX_EU_J:         "VATEX-EU-J",
	TaxExemptionReasonCodeVATEX_FR_FRANCHISE: "VATEX-FR-FRANCHISE",
	TaxExemptionReasonCodeVATEX_FR_CNWVAT:    "VATEX-FR-CNWVAT",
})

// ParseTaxExemptionReasonCode maps a code string to its tag, TaxExemptionReasonCodeUnknown if not listed
func ParseTaxExemptionReasonCode(code string) TaxExemptionReasonCode {
	return taxExemptionReasonCodes.parse(code)
}

// Code returns the code string
func (t TaxExemptionReasonCode) Code() string {
	return taxExemptionReasonCodes.code(t)
}

func (t TaxExemptionReasonCode) String() string {
	return taxExemptionReasonCodes.code(t)
}

// IsKnown reports whether the tag is part of the code list
func (t TaxExemptionReasonCode) IsKnown() bool {
	return taxExemptionReasonCodes.known(t)
}

func (t TaxExemptionReasonCode) MarshalText() ([]byte, error) {
	return []byte(taxExemptionReasonCodes.code(t)), nil
}

func (t *TaxExemptionReasonCode) UnmarshalText(text []byte) error {
	*t = taxExemptionReasonCodes.parse(string(text))
	return nil
}

// QuantityCode is a unit of measure (UN/ECE Recommendation 20)
type QuantityCode int

const (
	QuantityCodeUnknown QuantityCode = iota
	QuantityCodeH87
	QuantityCodeC62
	QuantityCodeEA
	QuantityCodeKGM
	QuantityCodeGRM
	QuantityCodeTNE
	QuantityCodeMTR
	QuantityCodeKMT
	QuantityCodeCMT
	QuantityCodeMMT
	QuantityCodeMTK
	QuantityCodeMTQ
	QuantityCodeLTR
	QuantityCodeSEC
	QuantityCodeMIN
	QuantityCodeHUR
	QuantityCodeDAY
	QuantityCodeWEE
	QuantityCodeMON
	QuantityCodeANN
	QuantityCodeKWH
	QuantityCodeSET
	QuantityCodePR
	QuantityCodeLS
	QuantityCodeP1
	QuantityCodeXPP
	QuantityCodeXPK
	QuantityCodeXBX
	QuantityCodeXCT
)

var quantityCodes = newCodeList(QuantityCodeUnknown, "", map[QuantityCode]string{
	QuantityCodeH87: "H87",
	QuantityCodeC62: "C62",
	QuantityCodeEA:  "EA",
	QuantityCodeKGM: "KGM",
	QuantityCodeGRM: "GRM",
	QuantityCodeTNE: "TNE",
	QuantityCodeMTR: "MTR",
	QuantityCodeKMT: "KMT",
	QuantityCodeCMT: "CMT",
	QuantityCodeMMT: "MMT",
	QuantityCodeMTK: "MTK",
	QuantityCodeMTQ: "MTQ",
	QuantityCodeLTR: "LTR",
	QuantityCodeSEC: "SEC",
	QuantityCodeMIN: "MIN",
	QuantityCodeHUR: "HUR",
	QuantityCodeDAY: "DAY",
	QuantityCodeWEE: "WEE",
	QuantityCodeMON: "MON",
	QuantityCodeANN: "ANN",
	QuantityCodeKWH: "KWH",
	QuantityCodeSET: "SET",
	QuantityCodePR:  "PR",
	QuantityCodeLS:  "LS",
	QuantityCodeP1:  "P1",
	QuantityCodeXPP: "XPP",
	QuantityCodeXPK: "XPK",
	QuantityCodeXBX: "XBX",
	QuantityCodeXCT: "XCT",
})

// ParseQuantityCode maps a code string to its tag, QuantityCodeUnknown if not listed
func ParseQuantityCode(code string) QuantityCode {
	return quantityCodes.parse(code)
}

// Code returns the code string
func (q QuantityCode) Code() string {
	return quantityCodes.code(q)
}

func (q QuantityCode) String() string {
	return quantityCodes.code(q)
}

// IsKnown reports whether the tag is part of the code list
func (q QuantityCode) IsKnown() bool {
	return quantityCodes.known(q)
}

func (q QuantityCode) MarshalText() ([]byte, error) {
	return []byte(quantityCodes.code(q)), nil
}

func (q *QuantityCode) UnmarshalText(text []byte) error {
	*q = quantityCodes.parse(string(text))
	return nil
}

// ReferenceTypeCode qualifies a referenced document (UNTDID 1153)
type ReferenceTypeCode int

const (
	ReferenceTypeCodeUnknown ReferenceTypeCode = iota
	ReferenceTypeCodeAAA
	ReferenceTypeCodeAAB
	ReferenceTypeCodeAAG
	ReferenceTypeCodeAAJ
	ReferenceTypeCodeAAL
	ReferenceTypeCodeAAM
	ReferenceTypeCodeAAS
	ReferenceTypeCodeAAV
	ReferenceTypeCodeABT
	ReferenceTypeCodeAFL
	ReferenceTypeCodeAGG
	ReferenceTypeCodeALO
	ReferenceTypeCodeAOU
	ReferenceTypeCodeATS
	ReferenceTypeCodeAWR
	ReferenceTypeCodeCT
	ReferenceTypeCodeDQ
	ReferenceTypeCodeIV
	ReferenceTypeCodeMG
	ReferenceTypeCodeON
	ReferenceTypeCodePK
	ReferenceTypeCodePP
	ReferenceTypeCodeVN
)

var referenceTypeCodes = newCodeList(ReferenceTypeCodeUnknown, "", map[ReferenceTypeCode]string{
	ReferenceTypeCodeAAA: "AAA",
	ReferenceTypeCodeAAB: "AAB",
	ReferenceTypeCodeAAG: "AAG",
	ReferenceTypeCodeAAJ: "AAJ",
	ReferenceTypeCodeAAL: "AAL",
	ReferenceTypeCodeAAM: "AAM",
	ReferenceTypeCodeAAS: "AAS",
	ReferenceTypeCodeAAV: "AAV",
	ReferenceTypeCodeABT: "ABT",
	ReferenceTypeCodeAFL: "AFL",
	ReferenceTypeCodeAGG: "AGG",
	ReferenceTypeCodeALO: "ALO",
	ReferenceTypeCodeAOU: "AOU",
	ReferenceTypeCodeATS: "ATS",
	ReferenceTypeCodeAWR: "AWR",
	ReferenceTypeCodeCT:  "CT",
	ReferenceTypeCodeDQ:  "DQ",
	ReferenceTypeCodeIV:  "IV",
	ReferenceTypeCodeMG:  "MG",
	ReferenceTypeCodeON:  "ON",
	ReferenceTypeCodePK:  "PK",
	ReferenceTypeCodePP:  "PP",
	ReferenceTypeCodeVN:  "VN",
})

// ParseReferenceTypeCode maps a code string to its tag, ReferenceTypeCodeUnknown if not listed
func ParseReferenceTypeCode(code string) ReferenceTypeCode {
	return referenceTypeCodes.parse(code)
}

// Code returns the code string
func (r ReferenceTypeCode) Code() string {
	return referenceTypeCodes.code(r)
}

func (r ReferenceTypeCode) String() string {
	return referenceTypeCodes.code(r)
}

// IsKnown reports whether the tag is part of the code list
func (r ReferenceTypeCode) IsKnown() bool {
	return referenceTypeCodes.known(r)
}

func (r ReferenceTypeCode) MarshalText() ([]byte, error) {
	return []byte(referenceTypeCodes.code(r)), nil
}

func (r *ReferenceTypeCode) UnmarshalText(text []byte) error {
	*r = referenceTypeCodes.parse(string(text))
	return nil
}

// AdditionalReferencedDocumentTypeCode is the type of an additional referenced document (UNTDID 1001)
type AdditionalReferencedDocumentTypeCode int

const (
	AdditionalReferencedDocumentTypeCodeUnknown AdditionalReferencedDocumentTypeCode = iota
	AdditionalReferencedDocumentTypeCodeValidationReport
	AdditionalReferencedDocumentTypeCodeInvoiceDataSheet
	AdditionalReferencedDocumentTypeCodeReferenceDocument
	AdditionalReferencedDocumentTypeCodePriceSalesCatalogueResponse
)

var additionalReferencedDocumentTypeCodes = newCodeList(AdditionalReferencedDocumentTypeCodeUnknown, "", map[AdditionalReferencedDocumentTypeCode]string{
	AdditionalReferencedDocumentTypeCodeValidationReport:            "50",
	AdditionalReferencedDocumentTypeCodeInvoiceDataSheet:            "130",
	AdditionalReferencedDocumentTypeCodeReferenceDocument:           "916",
	AdditionalReferencedDocumentTypeCodePriceSalesCatalogueResponse: "81",
})

// ParseAdditionalReferencedDocumentTypeCode maps a code string to its tag, AdditionalReferencedDocumentTypeCodeUnknown if not listed
func ParseAdditionalReferencedDocumentTypeCode(code string) AdditionalReferencedDocumentTypeCode {
	return additionalReferencedDocumentTypeCodes.parse(code)
}

// Code returns the code string
func (a AdditionalReferencedDocumentTypeCode) Code() string {
	return additionalReferencedDocumentTypeCodes.code(a)
}

func (a AdditionalReferencedDocumentTypeCode) String() string {
	return additionalReferencedDocumentTypeCodes.code(a)
}

// IsKnown reports whether the tag is part of the code list
func (a AdditionalReferencedDocumentTypeCode) IsKnown() bool {
	return additionalReferencedDocumentTypeCodes.known(a)
}

func (a AdditionalReferencedDocumentTypeCode) MarshalText() ([]byte, error) {
	return []byte(additionalReferencedDocumentTypeCodes.code(a)), nil
}

func (a *AdditionalReferencedDocumentTypeCode) UnmarshalText(text []byte) error {
	*a = additionalReferencedDocumentTypeCodes.parse(string(text))
	return nil
}

// PaymentMeansTypeCode is a payment means code (UNTDID 4461)
type PaymentMeansTypeCode int

const (
	PaymentMeansTypeCodeUnknown PaymentMeansTypeCode = iota
	PaymentMeansTypeCodeNotDefined
	PaymentMeansTypeCodeInCash
	PaymentMeansTypeCodeCheque
	PaymentMeansTypeCodeCreditTransfer
	PaymentMeansTypeCodeDebitTransfer
	PaymentMeansTypeCodePaymentToBankAccount
	PaymentMeansTypeCodeBankCard
	PaymentMeansTypeCodeDirectDebit
	PaymentMeansTypeCodeStandingAgreement
	PaymentMeansTypeCodeSEPACreditTransfer
	PaymentMeansTypeCodeSEPADirectDebit
	PaymentMeansTypeCodeClearingBetweenPartners
	PaymentMeansTypeCodeMutuallyDefined
)

var paymentMeansTypeCodes = newCodeList(PaymentMeansTypeCodeUnknown, "", map[PaymentMeansTypeCode]string{
	PaymentMeansTypeCodeNotDefined:              "1",
	PaymentMeansTypeCodeInCash:                  "10",
	PaymentMeansTypeCodeCheque:                  "20",
	PaymentMeansTypeCodeCreditTransfer:          "30",
	PaymentMeansTypeCodeDebitTransfer:           "31",
	PaymentMeansTypeCodePaymentToBankAccount:    "42",
	PaymentMeansTypeCodeBankCard:                "48",
	PaymentMeansTypeCodeDirectDebit:             "49",
	PaymentMeansTypeCodeStandingAgreement:       "57",
	PaymentMeansTypeCodeSEPACreditTransfer:      "58",
	PaymentMeansTypeCodeSEPADirectDebit:         "59",
	PaymentMeansTypeCodeClearingBetweenPartners: "97",
	PaymentMeansTypeCodeMutuallyDefined:         "ZZZ",
})

// ParsePaymentMeansTypeCode maps a code string to its tag, PaymentMeansTypeCodeUnknown if not listed
func ParsePaymentMeansTypeCode(code string) PaymentMeansTypeCode {
	return paymentMeansTypeCodes.parse(code)
}

// Code returns the code string
func (p PaymentMeansTypeCode) Code() string {
	return paymentMeansTypeCodes.code(p)
}

func (p PaymentMeansTypeCode) String() string {
	return paymentMeansTypeCodes.code(p)
}

// IsKnown reports whether the tag is part of the code list
func (p PaymentMeansTypeCode) IsKnown() bool {
	return paymentMeansTypeCodes.known(p)
}

func (p PaymentMeansTypeCode) MarshalText() ([]byte, error) {
	return []byte(paymentMeansTypeCodes.code(p)), nil
}

func (p *PaymentMeansTypeCode) UnmarshalText(text []byte) error {
	*p = paymentMeansTypeCodes.parse(string(text))
	return nil
}

// SubjectCode qualifies a free-text note (UNTDID 4451)
type SubjectCode int

const (
	SubjectCodeUnknown SubjectCode = iota
	SubjectCodeAAA
	SubjectCodeAAI
	SubjectCodeAAJ
	SubjectCodeAAK
	SubjectCodeABL
	SubjectCodeABN
	SubjectCodeACY
	SubjectCodeADU
	SubjectCodeAFM
	SubjectCodeCUS
	SubjectCodePMD
	SubjectCodePMT
	SubjectCodeREG
	SubjectCodeSUR
	SubjectCodeTXD
)

var subjectCodes = newCodeList(SubjectCodeUnknown, "", map[SubjectCode]string{
	SubjectCodeAAA: "AAA",
	SubjectCodeAAI: "AAI",
	SubjectCodeAAJ: "AAJ",
	SubjectCodeAAK: "AAK",
	SubjectCodeABL: "ABL",
	SubjectCodeABN: "ABN",
	SubjectCodeACY: "ACY",
	SubjectCodeADU: "ADU",
	SubjectCodeAFM: "AFM",
	SubjectCodeCUS: "CUS",
	SubjectCodePMD: "PMD",
	SubjectCodePMT: "PMT",
	SubjectCodeREG: "REG",
	SubjectCodeSUR: "SUR",
	SubjectCodeTXD: "TXD",
})

// ParseSubjectCode maps a code string to its tag, SubjectCodeUnknown if not listed
func ParseSubjectCode(code string) SubjectCode {
	return subjectCodes.parse(code)
}

// Code returns the code string
func (s SubjectCode) Code() string {
	return subjectCodes.code(s)
}

func (s SubjectCode) String() string {
	return subjectCodes.code(s)
}

// IsKnown reports whether the tag is part of the code list
func (s SubjectCode) IsKnown() bool {
	return subjectCodes.known(s)
}

func (s SubjectCode) MarshalText() ([]byte, error) {
	return []byte(subjectCodes.code(s)), nil
}

func (s *SubjectCode) UnmarshalText(text []byte) error {
	*s = subjectCodes.parse(string(text))
	return nil
}

// ElectronicAddressScheme is an electronic address scheme (EAS code list)
type ElectronicAddressScheme int

const (
	ElectronicAddressSchemeUnknown ElectronicAddressScheme = iota
	ElectronicAddressSchemeEMail
	ElectronicAddressSchemeGLN
	ElectronicAddressSchemeDUNS
	ElectronicAddressSchemeLeitwegID
	ElectronicAddressSchemeBelgianCompanyNumber
	ElectronicAddressSchemeGermanyVAT
	ElectronicAddressSchemeFranceVAT
	ElectronicAddressSchemeAustriaVAT
	ElectronicAddressSchemeSIRET
	ElectronicAddressSchemeAnyOther
)

var electronicAddressSchemes = newCodeList(ElectronicAddressSchemeUnknown, "", map[ElectronicAddressScheme]string{
	ElectronicAddressSchemeEMail:                "EM",
	ElectronicAddressSchemeGLN:                  "0088",
	ElectronicAddressSchemeDUNS:                 "0060",
	ElectronicAddressSchemeLeitwegID:            "0204",
	ElectronicAddressSchemeBelgianCompanyNumber: "0208",
	ElectronicAddressSchemeGermanyVAT:           "9930",
	ElectronicAddressSchemeFranceVAT:            "9957",
	ElectronicAddressSchemeAustriaVAT:           "9914",
	ElectronicAddressSchemeSIRET:                "0009",
	ElectronicAddressSchemeAnyOther:             "AQ",
})

// ParseElectronicAddressScheme maps a code string to its tag, ElectronicAddressSchemeUnknown if not listed
func ParseElectronicAddressScheme(code string) ElectronicAddressScheme {
	return electronicAddressSchemes.parse(code)
}

// Code returns the code string
func (e ElectronicAddressScheme) Code() string {
	return electronicAddressSchemes.code(e)
}

func (e ElectronicAddressScheme) String() string {
	return electronicAddressSchemes.code(e)
}

// IsKnown reports whether the tag is part of the code list
func (e ElectronicAddressScheme) IsKnown() bool {
	return electronicAddressSchemes.known(e)
}

func (e ElectronicAddressScheme) MarshalText() ([]byte, error) {
	return []byte(electronicAddressSchemes.code(e)), nil
}

func (e *ElectronicAddressScheme) UnmarshalText(text []byte) error {
	*e = electronicAddressSchemes.parse(string(text))
	return nil
}

// TaxRegistrationSchemeID distinguishes fiscal numbers from VAT ids
type TaxRegistrationSchemeID int

const (
	TaxRegistrationSchemeIDUnknown TaxRegistrationSchemeID = iota
	TaxRegistrationSchemeIDFC
	TaxRegistrationSchemeIDVA
)

var taxRegistrationSchemeIDs = newCodeList(TaxRegistrationSchemeIDUnknown, "", map[TaxRegistrationSchemeID]string{
	TaxRegistrationSchemeIDFC: "FC",
	TaxRegistrationSchemeIDVA: "VA",
})

// ParseTaxRegistrationSchemeID maps a code string to its tag, TaxRegistrationSchemeIDUnknown if not listed
func ParseTaxRegistrationSchemeID(code string) TaxRegistrationSchemeID {
	return taxRegistrationSchemeIDs.parse(code)
}

// Code returns the code string
func (t TaxRegistrationSchemeID) Code() string {
	return taxRegistrationSchemeIDs.code(t)
}

func (t TaxRegistrationSchemeID) String() string {
	return taxRegistrationSchemeIDs.code(t)
}

// IsKnown reports whether the tag is part of the code list
func (t TaxRegistrationSchemeID) IsKnown() bool {
	return taxRegistrationSchemeIDs.known(t)
}

func (t TaxRegistrationSchemeID) MarshalText() ([]byte, error) {
	return []byte(taxRegistrationSchemeIDs.code(t)), nil
}

func (t *TaxRegistrationSchemeID) UnmarshalText(text []byte) error {
	*t = taxRegistrationSchemeIDs.parse(string(text))
	return nil
}

// LineStatusCode is a line status code (UNTDID 1229)
type LineStatusCode int

const (
	LineStatusCodeUnknown LineStatusCode = iota
	LineStatusCodeNew
	LineStatusCodeDeleted
	LineStatusCodeChanged
	LineStatusCodeNoAction
	LineStatusCodeAccepted
	LineStatusCodeAcceptedWithAmendment
	LineStatusCodeNotAccepted
	LineStatusCodeCommented
	LineStatusCodeAlreadyDelivered
)

var lineStatusCodes = newCodeList(LineStatusCodeUnknown, "", map[LineStatusCode]string{
	LineStatusCodeNew:                   "1",
	LineStatusCodeDeleted:               "2",
	LineStatusCodeChanged:               "3",
	LineStatusCodeNoAction:              "4",
	LineStatusCodeAccepted:              "5",
	LineStatusCodeAcceptedWithAmendment: "6",
	LineStatusCodeNotAccepted:           "7",
	LineStatusCodeCommented:             "8",
	LineStatusCodeAlreadyDelivered:      "9",
})

// ParseLineStatusCode maps a code string to its tag, LineStatusCodeUnknown if not listed
func ParseLineStatusCode(code string) LineStatusCode {
	return lineStatusCodes.parse(code)
}

// Code returns the code string
func (l LineStatusCode) Code() string {
	return lineStatusCodes.code(l)
}

func (l LineStatusCode) String() string {
	return lineStatusCodes.code(l)
}

// IsKnown reports whether the tag is part of the code list
func (l LineStatusCode) IsKnown() bool {
	return lineStatusCodes.known(l)
}

func (l LineStatusCode) MarshalText() ([]byte, error) {
	return []byte(lineStatusCodes.code(l)), nil
}

func (l *LineStatusCode) UnmarshalText(text []byte) error {
	*l = lineStatusCodes.parse(string(text))
	return nil
}

// LineStatusReasonCode marks a line as detail, group or information line
type LineStatusReasonCode int

const (
	LineStatusReasonCodeUnknown LineStatusReasonCode = iota
	LineStatusReasonCodeDetail
	LineStatusReasonCodeGroup
	LineStatusReasonCodeInformation
)

var lineStatusReasonCodes = newCodeList(LineStatusReasonCodeUnknown, "", map[LineStatusReasonCode]string{
	LineStatusReasonCodeDetail:      "DETAIL",
	LineStatusReasonCodeGroup:       "GROUP",
	LineStatusReasonCodeInformation: "INFORMATION",
})

// ParseLineStatusReasonCode maps a code string to its tag, LineStatusReasonCodeUnknown if not listed
func ParseLineStatusReasonCode(code string) LineStatusReasonCode {
	return lineStatusReasonCodes.parse(code)
}

// Code returns the code string
func (l LineStatusReasonCode) Code() string {
	return lineStatusReasonCodes.code(l)
}

func (l LineStatusReasonCode) String() string {
	return lineStatusReasonCodes.code(l)
}

// IsKnown reports whether the tag is part of the code list
func (l LineStatusReasonCode) IsKnown() bool {
	return lineStatusReasonCodes.known(l)
}

func (l LineStatusReasonCode) MarshalText() ([]byte, error) {
	return []byte(lineStatusReasonCodes.code(l)), nil
}

func (l *LineStatusReasonCode) UnmarshalText(text []byte) error {
	*l = lineStatusReasonCodes.parse(string(text))
	return nil
}

// AccountingAccountTypeCode is the type of a receivable accounting account (UNTDID 4437)
type AccountingAccountTypeCode int

const (
	AccountingAccountTypeCodeUnknown AccountingAccountTypeCode = iota
	AccountingAccountTypeCodeFinancial
	AccountingAccountTypeCodeSubsidiary
	AccountingAccountTypeCodeBudget
	AccountingAccountTypeCodeCostAccounting
	AccountingAccountTypeCodeReceivable
	AccountingAccountTypeCodePayable
	AccountingAccountTypeCodeJobCostAccounting
)

var accountingAccountTypeCodes = newCodeList(AccountingAccountTypeCodeUnknown, "", map[AccountingAccountTypeCode]string{
	AccountingAccountTypeCodeFinancial:         "1",
	AccountingAccountTypeCodeSubsidiary:        "2",
	AccountingAccountTypeCodeBudget:            "3",
	AccountingAccountTypeCodeCostAccounting:    "4",
	AccountingAccountTypeCodeReceivable:        "5",
	AccountingAccountTypeCodePayable:           "6",
	AccountingAccountTypeCodeJobCostAccounting: "7",
})

// ParseAccountingAccountTypeCode maps a code string to its tag, AccountingAccountTypeCodeUnknown if not listed
func ParseAccountingAccountTypeCode(code string) AccountingAccountTypeCode {
	return accountingAccountTypeCodes.parse(code)
}

// Code returns the code string
func (a AccountingAccountTypeCode) Code() string {
	return accountingAccountTypeCodes.code(a)
}

func (a AccountingAccountTypeCode) String() string {
	return accountingAccountTypeCodes.code(a)
}

// IsKnown reports whether the tag is part of the code list
func (a AccountingAccountTypeCode) IsKnown() bool {
	return accountingAccountTypeCodes.known(a)
}

func (a AccountingAccountTypeCode) MarshalText() ([]byte, error) {
	return []byte(accountingAccountTypeCodes.code(a)), nil
}

func (a *AccountingAccountTypeCode) UnmarshalText(text []byte) error {
	*a = accountingAccountTypeCodes.parse(string(text))
	return nil
}

// PaymentTermsType selects the structured payment terms variant
type PaymentTermsType int

const (
	PaymentTermsTypeUnknown PaymentTermsType = iota
	PaymentTermsTypeSkonto
	PaymentTermsTypeVerzug
)

var paymentTermsTypes = newCodeList(PaymentTermsTypeUnknown, "", map[PaymentTermsType]string{
	PaymentTermsTypeSkonto: "SKONTO",
	PaymentTermsTypeVerzug: "VERZUG",
})

// ParsePaymentTermsType maps a code string to its tag, PaymentTermsTypeUnknown if not listed
func ParsePaymentTermsType(code string) PaymentTermsType {
	return paymentTermsTypes.parse(code)
}

// Code returns the code string
func (p PaymentTermsType) Code() string {
	return paymentTermsTypes.code(p)
}

func (p PaymentTermsType) String() string {
	return paymentTermsTypes.code(p)
}

// IsKnown reports whether the tag is part of the code list
func (p PaymentTermsType) IsKnown() bool {
	return paymentTermsTypes.known(p)
}

func (p PaymentTermsType) MarshalText() ([]byte, error) {
	return []byte(paymentTermsTypes.code(p)), nil
}

func (p *PaymentTermsType) UnmarshalText(text []byte) error {
	*p = paymentTermsTypes.parse(string(text))
	return nil
}

