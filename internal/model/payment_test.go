package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/einvoice/internal/model"
)

func TestPaymentTerms_Render(t *testing.T) {
	inv := model.NewInvoice("1", time.Now(), "EUR")
	base := decimal.RequireFromString("123.45")
	inv.AddSkontoPaymentTerms("", 14, decimal.NewFromInt(5), &base)
	inv.AddSkontoPaymentTerms("", 21, decimal.NewFromInt(1), nil)
	inv.AddTradePaymentTerms("Zahlbar sofort ohne Abzug", nil)

	assert.Equal(t, "#SKONTO#TAGE=14#PROZENT=5.00#BASISBETRAG=123.45#", inv.PaymentTerms[0].Render())
	assert.Equal(t, "#SKONTO#TAGE=21#PROZENT=1.00#", inv.PaymentTerms[1].Render())
	assert.Equal(t,
		"#SKONTO#TAGE=14#PROZENT=5.00#BASISBETRAG=123.45#\n#SKONTO#TAGE=21#PROZENT=1.00#\nZahlbar sofort ohne Abzug",
		model.JoinPaymentTerms(inv.PaymentTerms))
}

func TestParsePaymentTermsText_FreeText(t *testing.T) {
	due := time.Date(2018, 4, 4, 0, 0, 0, 0, time.UTC)
	terms := model.ParsePaymentTermsText("Zahlbar innerhalb 30 Tagen netto\nbis 04.04.2018", &due)

	require.Len(t, terms, 1)
	assert.Equal(t, "Zahlbar innerhalb 30 Tagen netto\nbis 04.04.2018", terms[0].Description)
	assert.False(t, terms[0].IsStructured())
	assert.Nil(t, terms[0].DueDays)
	require.NotNil(t, terms[0].DueDate)
	assert.True(t, terms[0].DueDate.Equal(due))
}

func TestParsePaymentTermsText_Structured(t *testing.T) {
	text := `
      3% Skonto innerhalb 10 Tagen
      #SKONTO#TAGE=10#PROZENT=3.00#BASISBETRAG=100.00#
      #VERZUG#TAGE=30#PROZENT=1.50#
      Bitte Rechnungsnummer angeben
    `
	terms := model.ParsePaymentTermsText(text, nil)
	require.Len(t, terms, 3)

	assert.Equal(t, model.PaymentTermsTypeSkonto, terms[0].Type)
	assert.Equal(t, "3% Skonto innerhalb 10 Tagen", terms[0].Description)
	require.NotNil(t, terms[0].DueDays)
	assert.Equal(t, 10, *terms[0].DueDays)
	assert.True(t, terms[0].Percentage.Equal(decimal.NewFromInt(3)))
	require.NotNil(t, terms[0].BaseAmount)
	assert.True(t, terms[0].BaseAmount.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, model.PaymentTermsTypeVerzug, terms[1].Type)
	assert.Empty(t, terms[1].Description)
	assert.Nil(t, terms[1].BaseAmount)

	assert.Equal(t, "Bitte Rechnungsnummer angeben", terms[2].Description)
	assert.False(t, terms[2].IsStructured())
}

func TestParsePaymentTermsText_RenderedEntries(t *testing.T) {
	due := time.Date(2018, 4, 4, 0, 0, 0, 0, time.UTC)
	inv := model.NewInvoice("1", time.Now(), "EUR")
	inv.AddTradePaymentTerms("Zahlbar innerhalb 30 Tagen netto", &due)
	inv.AddTradePaymentTerms("bis 04.04.2018", nil)
	inv.AddSkontoPaymentTerms("2% Skonto innerhalb 14 Tagen", 14, decimal.NewFromInt(2), nil)
	inv.AddSkontoPaymentTerms("", 28, decimal.NewFromInt(1), nil)

	terms := model.ParsePaymentTermsText(model.JoinPaymentTerms(inv.PaymentTerms), &due)
	require.Len(t, terms, 3)

	// consecutive free text entries come back as one
	assert.Equal(t, "Zahlbar innerhalb 30 Tagen netto\nbis 04.04.2018", terms[0].Description)
	assert.False(t, terms[0].IsStructured())
	require.NotNil(t, terms[0].DueDate)

	assert.Equal(t, "2% Skonto innerhalb 14 Tagen", terms[1].Description)
	require.True(t, terms[1].IsStructured())
	assert.Equal(t, 14, *terms[1].DueDays)

	assert.Empty(t, terms[2].Description)
	assert.Equal(t, 28, *terms[2].DueDays)
}

func TestParsePaymentTermsText_DescribedSkonto(t *testing.T) {
	inv := model.NewInvoice("1", time.Now(), "EUR")
	inv.AddSkontoPaymentTerms("3% Skonto innerhalb 10 Tagen", 10, decimal.NewFromInt(3), nil)

	terms := model.ParsePaymentTermsText(model.JoinPaymentTerms(inv.PaymentTerms), nil)
	require.Len(t, terms, 1)
	assert.Equal(t, "3% Skonto innerhalb 10 Tagen", terms[0].Description)
	assert.Equal(t, model.PaymentTermsTypeSkonto, terms[0].Type)
	require.NotNil(t, terms[0].Percentage)
	assert.True(t, terms[0].Percentage.Equal(decimal.NewFromInt(3)))
}

func TestParsePaymentTermsText_MalformedTokenIsFreeText(t *testing.T) {
	terms := model.ParsePaymentTermsText("#SKONTO#TAGE#14#PROZENT=5.00#BASISBETRAG=123.45#", nil)
	require.Len(t, terms, 1)
	assert.Equal(t, "#SKONTO#TAGE#14#PROZENT=5.00#BASISBETRAG=123.45#", terms[0].Description)
	assert.False(t, terms[0].IsStructured())
}

func TestParsePaymentTermsText_Empty(t *testing.T) {
	assert.Empty(t, model.ParsePaymentTermsText("   ", nil))

	due := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	terms := model.ParsePaymentTermsText("", &due)
	require.Len(t, terms, 1)
	assert.Empty(t, terms[0].Description)
	assert.NotNil(t, terms[0].DueDate)
}
