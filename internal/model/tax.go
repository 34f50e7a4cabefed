package model

import (
	"time"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/einvoice/internal/decimal"
)

// Tax is one entry of the tax breakdown
type Tax struct {
	BasisAmount                decimal.Decimal        `json:"basis_amount"`
	Percent                    decimal.Decimal        `json:"percent"`
	TaxAmount                  *decimal.Decimal       `json:"tax_amount,omitempty"`
	TypeCode                   TaxType                `json:"type_code"`
	CategoryCode               TaxCategoryCode        `json:"category_code"`
	ExemptionReasonCode        TaxExemptionReasonCode `json:"exemption_reason_code,omitempty"`
	ExemptionReason            string                 `json:"exemption_reason,omitempty"`
	AllowanceChargeBasisAmount *decimal.Decimal       `json:"allowance_charge_basis_amount,omitempty"`
	LineTotalBasisAmount       *decimal.Decimal       `json:"line_total_basis_amount,omitempty"`
}

// CalculatedAmount returns the supplied tax amount, or basis * percent / 100
func (t *Tax) CalculatedAmount() decimal.Decimal {
	if t.TaxAmount != nil {
		return *t.TaxAmount
	}
	return dec.CalculateTax(t.BasisAmount, t.Percent)
}

// AdjustedBasis returns the allowance/charge basis amount when it differs
// from the basis amount, nil otherwise
func (t *Tax) AdjustedBasis() *decimal.Decimal {
	if t.AllowanceChargeBasisAmount == nil || t.AllowanceChargeBasisAmount.Equal(t.BasisAmount) {
		return nil
	}
	return t.AllowanceChargeBasisAmount
}

// TradeAllowanceCharge is an allowance (discount) or a charge, on document
// or line level
type TradeAllowanceCharge struct {
	ChargeIndicator  bool             `json:"charge_indicator"`
	BasisAmount      *decimal.Decimal `json:"basis_amount,omitempty"`
	ActualAmount     decimal.Decimal  `json:"actual_amount"`
	ChargePercentage *decimal.Decimal `json:"charge_percentage,omitempty"`
	Currency         string           `json:"currency,omitempty"`
	Reason           string           `json:"reason,omitempty"`
	ReasonCode       string           `json:"reason_code,omitempty"`
	Tax              Tax              `json:"tax"`
}

// ServiceCharge is a logistics service charge
type ServiceCharge struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Tax         Tax             `json:"tax"`
}

// CurrencyExchange describes the conversion into the tax currency
type CurrencyExchange struct {
	SourceCurrency          string          `json:"source_currency"`
	TargetCurrency          string          `json:"target_currency"`
	ConversionRate          decimal.Decimal `json:"conversion_rate"`
	ConversionRateTimestamp *time.Time      `json:"conversion_rate_timestamp,omitempty"`
}
