package domain

import "github.com/shopspring/decimal"

// LineItem is one audited sub-step of the restatement pipeline. The breakdown
// is diagnostic output for the summary screen and the JSON export; it is
// never parsed back as input.
type LineItem struct {
	Label        string          `yaml:"label" json:"label"`
	Formula      string          `yaml:"formula" json:"formula"`
	BaseValue    decimal.Decimal `yaml:"base_value" json:"base_value"`
	FactorOrRate decimal.Decimal `yaml:"factor_or_rate" json:"factor_or_rate"`
	Result       decimal.Decimal `yaml:"result" json:"result"`
}

// RestatementResult holds the four independently computed restatement
// components. FinalValue is always their sum; no component is ever derived
// by subtraction from a total.
type RestatementResult struct {
	RestatedPrincipal     decimal.Decimal `yaml:"restated_principal" json:"restated_principal"`
	InterestAccrued       decimal.Decimal `yaml:"interest_accrued" json:"interest_accrued"`
	PostCutoverAdjustment decimal.Decimal `yaml:"post_cutover_adjustment" json:"post_cutover_adjustment"`
	LateAdjustment        decimal.Decimal `yaml:"late_adjustment" json:"late_adjustment"`
	Breakdown             []LineItem      `yaml:"breakdown" json:"breakdown"`
}

// FinalValue sums the four components.
func (r *RestatementResult) FinalValue() decimal.Decimal {
	return r.RestatedPrincipal.
		Add(r.InterestAccrued).
		Add(r.PostCutoverAdjustment).
		Add(r.LateAdjustment)
}

// AddLine appends an audit line.
func (r *RestatementResult) AddLine(label, formula string, base, factorOrRate, result decimal.Decimal) {
	r.Breakdown = append(r.Breakdown, LineItem{
		Label:        label,
		Formula:      formula,
		BaseValue:    base,
		FactorOrRate: factorOrRate,
		Result:       result,
	})
}

// CalculationResult is the flat output record for one engine invocation.
type CalculationResult struct {
	TotalBefore decimal.Decimal   `yaml:"total_before" json:"total_before"`
	Restated    RestatementResult `yaml:"restated" json:"restated"`

	SocialContribution decimal.Decimal `yaml:"social_contribution" json:"social_contribution"`
	WithholdingTax     decimal.Decimal `yaml:"withholding_tax" json:"withholding_tax"`
	// WithholdingTaxComputed is the progressive-table figure. When a manual
	// override or exemption replaces it, this keeps what the table would have
	// withheld so the demonstrative can show both.
	WithholdingTaxComputed decimal.Decimal `yaml:"withholding_tax_computed" json:"withholding_tax_computed"`
	// TotalWithholdings is always SocialContribution + WithholdingTax,
	// never recomputed independently.
	TotalWithholdings decimal.Decimal `yaml:"total_withholdings" json:"total_withholdings"`

	NetBeforeFees decimal.Decimal `yaml:"net_before_fees" json:"net_before_fees"`
	FeeAmount     decimal.Decimal `yaml:"fee_amount" json:"fee_amount"`
	AdvanceAmount decimal.Decimal `yaml:"advance_amount" json:"advance_amount"`
	NetFinal      decimal.Decimal `yaml:"net_final" json:"net_final"`

	OfferLow  decimal.Decimal `yaml:"offer_low" json:"offer_low"`
	OfferHigh decimal.Decimal `yaml:"offer_high" json:"offer_high"`
}
