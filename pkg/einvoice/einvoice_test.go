package einvoice_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/pkg/einvoice"
)

func newInvoice(no string) *einvoice.Invoice {
	inv := einvoice.NewInvoice(no, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), "EUR")
	inv.ReferenceOrderNo = "04011000-1234512345-35"
	inv.SetSeller(&einvoice.Party{Name: "Lieferant GmbH", City: "Hamburg", Country: "DE"})
	inv.Seller.AddTaxRegistration(model.TaxRegistrationSchemeIDVA, "DE123456789")
	inv.SetBuyer(&einvoice.Party{Name: "Kunden AG", Country: "DE"})
	inv.AddApplicableTradeTax(decimal.NewFromInt(40), decimal.NewFromInt(7), einvoice.TaxTypeVAT, model.TaxCategoryCodeS)
	price := decimal.NewFromInt(4)
	inv.AddTradeLineItem(&einvoice.TradeLineItem{
		Name:            "Zeitschrift",
		BilledQuantity:  decimal.NewFromInt(10),
		UnitCode:        model.QuantityCodeH87,
		NetUnitPrice:    &price,
		TaxType:         einvoice.TaxTypeVAT,
		TaxCategoryCode: model.TaxCategoryCodeS,
		TaxPercent:      decimal.NewFromInt(7),
	})
	inv.SetTotals(decimal.NewFromInt(40), decimal.Zero, decimal.Zero, decimal.NewFromInt(40),
		decimal.RequireFromString("2.80"), decimal.RequireFromString("42.80"), decimal.Zero, decimal.RequireFromString("42.80"))
	return inv
}

func TestEncodeDecode(t *testing.T) {
	for _, c := range einvoice.Combinations() {
		c := c
		t.Run(c.Dialect.String()+"/"+c.Version.String()+"/"+c.Profile.String(), func(t *testing.T) {
			data, err := einvoice.Encode(newInvoice("A-1"), c.Version, c.Profile, c.Dialect)
			require.NoError(t, err)

			tag, err := einvoice.DetectVersion(data)
			require.NoError(t, err)
			assert.Equal(t, c.Dialect, tag.Dialect)

			back, err := einvoice.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, "A-1", back.InvoiceNo)
			assert.Equal(t, "EUR", back.Currency)
		})
	}
}

func TestEncodeTo_DecodeFrom(t *testing.T) {
	var buf bytes.Buffer
	err := einvoice.EncodeTo(context.Background(), &buf, newInvoice("A-2"),
		einvoice.Version23, einvoice.ProfileXRechnung, einvoice.DialectUBL)
	require.NoError(t, err)

	inv, err := einvoice.DecodeFrom(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, "A-2", inv.InvoiceNo)
	require.NotNil(t, inv.Seller)
	assert.Equal(t, "Lieferant GmbH", inv.Seller.Name)
}

func TestSupported(t *testing.T) {
	assert.NoError(t, einvoice.Supported(einvoice.Version23, einvoice.ProfileXRechnung, einvoice.DialectUBL))

	err := einvoice.Supported(einvoice.Version1, einvoice.ProfileMinimum, einvoice.DialectCII)
	require.Error(t, err)
	assert.True(t, errors.Is(err, einvoice.ErrUnsupportedCombination))

	var combo *einvoice.CombinationError
	require.True(t, errors.As(err, &combo))
	assert.Equal(t, einvoice.ProfileMinimum, combo.Profile)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := einvoice.Decode([]byte("<unrelated/>"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, einvoice.ErrMalformedDocument))
}

func TestProcessor_Process(t *testing.T) {
	proc := einvoice.NewProcessor()
	data, err := proc.Encode(context.Background(), newInvoice("A-3"),
		einvoice.Version20, einvoice.ProfileBasic, einvoice.DialectCII)
	require.NoError(t, err)

	result, err := proc.Process(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "xml", result.Source)
	assert.Equal(t, einvoice.ProfileBasic, result.Tag.Profile)
	assert.Equal(t, "A-3", result.Invoice.InvoiceNo)
	assert.NotEmpty(t, result.JobID)

	_, err = proc.Process(context.Background(), strings.NewReader("plain text"))
	assert.Error(t, err)
}

func TestProcessor_Convert(t *testing.T) {
	proc := einvoice.NewProcessor(einvoice.WithIndent(-1))
	data, err := einvoice.Encode(newInvoice("A-4"), einvoice.Version23, einvoice.ProfileXRechnung, einvoice.DialectCII)
	require.NoError(t, err)

	out, result, err := proc.Convert(context.Background(), data,
		einvoice.Version23, einvoice.ProfileXRechnung, einvoice.DialectUBL)
	require.NoError(t, err)
	assert.Equal(t, einvoice.DialectCII, result.Tag.Dialect)
	assert.NotContains(t, string(out), "\n  <")

	tag, err := einvoice.DetectVersion(out)
	require.NoError(t, err)
	assert.Equal(t, einvoice.DialectUBL, tag.Dialect)
}

func TestProcessor_ProcessBatch(t *testing.T) {
	proc := einvoice.NewProcessor()

	var inputs [][]byte
	for _, no := range []string{"B-1", "B-2", "B-3", "B-4"} {
		data, err := einvoice.Encode(newInvoice(no), einvoice.Version23, einvoice.ProfileComfort, einvoice.DialectCII)
		require.NoError(t, err)
		inputs = append(inputs, data)
	}

	results, err := proc.ProcessBatch(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for i, no := range []string{"B-1", "B-2", "B-3", "B-4"} {
		require.NotNil(t, results[i])
		assert.Equal(t, no, results[i].Invoice.InvoiceNo)
	}
}

func TestProcessor_ProcessBatch_PartialFailure(t *testing.T) {
	proc := einvoice.NewProcessor()
	good, err := einvoice.Encode(newInvoice("C-1"), einvoice.Version23, einvoice.ProfileBasic, einvoice.DialectCII)
	require.NoError(t, err)

	results, err := proc.ProcessBatch(context.Background(), [][]byte{good, []byte("garbage")})
	require.Error(t, err)
	require.Len(t, results, 2)
	require.NotNil(t, results[0])
	assert.Equal(t, "C-1", results[0].Invoice.InvoiceNo)
	assert.Nil(t, results[1])
}
