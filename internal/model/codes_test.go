package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/einvoice/internal/model"
)

func TestGlobalIDSchemeIdentifier_Mapping(t *testing.T) {
	tests := []struct {
		scheme model.GlobalIDSchemeIdentifier
		code   string
	}{
		{model.GlobalIDSchemeIdentifierSirene, "0002"},
		{model.GlobalIDSchemeIdentifierSiretCode, "0009"},
		{model.GlobalIDSchemeIdentifierSwift, "0021"},
		{model.GlobalIDSchemeIdentifierDUNS, "0060"},
		{model.GlobalIDSchemeIdentifierGLN, "0088"},
		{model.GlobalIDSchemeIdentifierEAN, "0160"},
		{model.GlobalIDSchemeIdentifierODETTE, "0177"},
		{model.GlobalIDSchemeIdentifierCompanyNumber, "0208"},
		{model.GlobalIDSchemeIdentifierUnknown, "0000"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.scheme.Code())
			assert.Equal(t, tt.scheme, model.ParseGlobalIDSchemeIdentifier(tt.code))
		})
	}
}

func TestCodeLists_UnknownFallback(t *testing.T) {
	assert.Equal(t, model.GlobalIDSchemeIdentifierUnknown, model.ParseGlobalIDSchemeIdentifier("9999"))
	assert.Equal(t, model.TaxTypeUnknown, model.ParseTaxType("XYZ"))
	assert.Equal(t, "", model.TaxTypeUnknown.Code())
	assert.Equal(t, model.QuantityCodeUnknown, model.ParseQuantityCode(""))
	assert.False(t, model.QuantityCodeUnknown.IsKnown())
	assert.True(t, model.QuantityCodeH87.IsKnown())
	assert.Equal(t, model.ReferenceTypeCodeON, model.ParseReferenceTypeCode(" ON "))
}

func TestCodeLists_RoundTrip(t *testing.T) {
	assert.Equal(t, model.TaxCategoryCodeAE, model.ParseTaxCategoryCode(model.TaxCategoryCodeAE.Code()))
	assert.Equal(t, "VATEX-EU-132-2", model.TaxExemptionReasonCodeVATEX_EU_132_2.Code())
	assert.Equal(t, model.PaymentMeansTypeCodeSEPADirectDebit, model.ParsePaymentMeansTypeCode("59"))
	assert.Equal(t, model.LineStatusReasonCodeDetail, model.ParseLineStatusReasonCode("DETAIL"))
	assert.Equal(t, model.ElectronicAddressSchemeLeitwegID, model.ParseElectronicAddressScheme("0204"))
	assert.Equal(t, "381", model.InvoiceTypeCreditNote.Code())
}

func TestCodeLists_TextMarshaling(t *testing.T) {
	var unit model.QuantityCode
	require.NoError(t, unit.UnmarshalText([]byte("KGM")))
	assert.Equal(t, model.QuantityCodeKGM, unit)

	text, err := model.TaxTypeVAT.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "VAT", string(text))
	assert.Equal(t, "S", fmt.Sprint(model.TaxCategoryCodeS))
}

func TestFormats_Parse(t *testing.T) {
	v, err := model.ParseVersion("2.2")
	require.NoError(t, err)
	assert.Equal(t, model.Version23, v)

	_, err = model.ParseVersion("3.0")
	require.Error(t, err)

	p, err := model.ParseProfile("xrechnung")
	require.NoError(t, err)
	assert.Equal(t, model.ProfileXRechnung, p)

	p, err = model.ParseProfile("EN16931")
	require.NoError(t, err)
	assert.Equal(t, model.ProfileComfort, p)

	d, err := model.ParseDialect("ubl")
	require.NoError(t, err)
	assert.Equal(t, model.DialectUBL, d)
}

func TestProfile_In(t *testing.T) {
	set := model.ProfileComfort | model.ProfileExtended
	assert.True(t, model.ProfileComfort.In(set))
	assert.False(t, model.ProfileBasic.In(set))
	assert.False(t, model.ProfileUnknown.In(set))
	assert.Equal(t, "Comfort|Extended", set.String())
}

func TestErrors_Classification(t *testing.T) {
	var err error = model.NewCombinationError(model.Version20, model.ProfileXRechnung, model.DialectUBL)
	assert.True(t, errors.Is(err, model.ErrUnsupportedCombination))
	assert.Contains(t, err.Error(), "UBL")

	err = model.NewTaxTypeError(model.ProfileBasic, model.TaxTypeCustomsDuty, "line 1")
	assert.True(t, errors.Is(err, model.ErrUnsupportedTaxType))
	assert.Contains(t, err.Error(), "CUD")

	cause := errors.New("unexpected EOF")
	err = model.NewDocumentError("cannot parse", cause)
	assert.True(t, errors.Is(err, model.ErrMalformedDocument))
	assert.True(t, errors.Is(err, cause))

	err = model.NewFieldError("InvoiceNo", model.DialectCII)
	assert.True(t, errors.Is(err, model.ErrMissingRequiredField))
	assert.False(t, errors.Is(err, model.ErrMalformedDocument))
}
