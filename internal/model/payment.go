package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/einvoice/internal/decimal"
)

// FinancialCard is the card used for payment
type FinancialCard struct {
	ID             string `json:"id"`
	CardholderName string `json:"cardholder_name,omitempty"`
}

// PaymentMeans describes how the invoice is paid
type PaymentMeans struct {
	TypeCode               PaymentMeansTypeCode `json:"type_code"`
	Information            string               `json:"information,omitempty"`
	SEPACreditorIdentifier string               `json:"sepa_creditor_identifier,omitempty"`
	SEPAMandateReference   string               `json:"sepa_mandate_reference,omitempty"`
	FinancialCard          *FinancialCard       `json:"financial_card,omitempty"`
}

// IsDirectDebit reports whether the means is a (SEPA) direct debit.
// Creditor reference and mandate are only meaningful in that case.
func (pm *PaymentMeans) IsDirectDebit() bool {
	return pm != nil && (pm.TypeCode == PaymentMeansTypeCodeSEPADirectDebit || pm.TypeCode == PaymentMeansTypeCodeDirectDebit)
}

// BankAccount is a creditor or debitor account
type BankAccount struct {
	ID           string `json:"id,omitempty"`
	IBAN         string `json:"iban,omitempty"`
	BIC          string `json:"bic,omitempty"`
	Bankleitzahl string `json:"bankleitzahl,omitempty"`
	BankName     string `json:"bank_name,omitempty"`
	Name         string `json:"name,omitempty"`
}

// PaymentTerms is one payment term, either free text or a structured
// early-payment discount (Skonto) or late-payment penalty (Verzug)
type PaymentTerms struct {
	Description string           `json:"description,omitempty"`
	DueDate     *time.Time       `json:"due_date,omitempty"`
	Type        PaymentTermsType `json:"type,omitempty"`
	DueDays     *int             `json:"due_days,omitempty"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	BaseAmount  *decimal.Decimal `json:"base_amount,omitempty"`
}

// IsStructured reports whether the entry carries a discount or penalty triple
func (pt *PaymentTerms) IsStructured() bool {
	return pt.Type != PaymentTermsTypeUnknown && pt.DueDays != nil && pt.Percentage != nil
}

var paymentTermsPattern = regexp.MustCompile(`^#(SKONTO|VERZUG)#TAGE=(\d+)#PROZENT=(-?\d+(?:\.\d+)?)#(?:BASISBETRAG=(-?\d+(?:\.\d+)?)#)?$`)

// Render returns the text form of the entry used when all terms are merged
// into a single element: the description, then the structured token line
// #SKONTO#TAGE=<n>#PROZENT=<p>#[BASISBETRAG=<b>#]
func (pt *PaymentTerms) Render() string {
	var lines []string
	if pt.Description != "" {
		lines = append(lines, pt.Description)
	}
	if pt.IsStructured() {
		token := fmt.Sprintf("#%s#TAGE=%d#PROZENT=%s#", pt.Type.Code(), *pt.DueDays, dec.FormatPercent(*pt.Percentage))
		if pt.BaseAmount != nil {
			token += "BASISBETRAG=" + dec.FormatAmount(*pt.BaseAmount) + "#"
		}
		lines = append(lines, token)
	}
	return strings.Join(lines, "\n")
}

// JoinPaymentTerms merges entries into one newline separated text, in order
func JoinPaymentTerms(terms []PaymentTerms) string {
	lines := make([]string, 0, len(terms))
	for i := range terms {
		if text := terms[i].Render(); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// ParsePaymentTermsText splits merged payment terms text back into entries.
//
// Text without any token line yields one entry holding the whole text.
// Otherwise every token line becomes a structured entry whose description
// is the free text line right above it, as Render writes it. Remaining
// runs of free text lines become one description entry each, in document
// order. dueDate is attached to the first entry.
func ParsePaymentTermsText(text string, dueDate *time.Time) []PaymentTerms {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var terms []PaymentTerms
	var pending []string
	flush := func() {
		if len(pending) > 0 {
			terms = append(terms, PaymentTerms{Description: strings.Join(pending, "\n")})
			pending = nil
		}
	}

	for _, line := range lines {
		pt, ok := parsePaymentTermsToken(line)
		if !ok {
			pending = append(pending, line)
			continue
		}
		if n := len(pending); n > 0 {
			pt.Description = pending[n-1]
			pending = pending[:n-1]
		}
		flush()
		terms = append(terms, pt)
	}
	flush()

	if len(terms) == 0 && dueDate != nil {
		terms = append(terms, PaymentTerms{})
	}
	if len(terms) > 0 {
		terms[0].DueDate = dueDate
	}
	return terms
}

func parsePaymentTermsToken(line string) (PaymentTerms, bool) {
	m := paymentTermsPattern.FindStringSubmatch(line)
	if m == nil {
		return PaymentTerms{}, false
	}
	days, err := strconv.Atoi(m[2])
	if err != nil {
		return PaymentTerms{}, false
	}
	percent, err := decimal.NewFromString(m[3])
	if err != nil {
		return PaymentTerms{}, false
	}

	pt := PaymentTerms{
		Type:       ParsePaymentTermsType(m[1]),
		DueDays:    &days,
		Percentage: &percent,
	}
	if m[4] != "" {
		pt.BaseAmount = dec.ParseOptional(m[4])
	}
	return pt, true
}
