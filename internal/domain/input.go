package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationInput is the flat, immutable record the engine computes from.
// The wizard that assembles it step by step is an external collaborator; the
// engine always receives a complete record and never models partial state.
type CalculationInput struct {
	// Identification only, never used by the formulas.
	CaseID       string `yaml:"case_id" json:"case_id"`
	Claimant     string `yaml:"claimant" json:"claimant"`
	ProcessLabel string `yaml:"process_label" json:"process_label"`

	Principal        decimal.Decimal `yaml:"principal" json:"principal"`
	InterestOriginal decimal.Decimal `yaml:"interest_original" json:"interest_original"`
	PenaltyOrSelic   decimal.Decimal `yaml:"penalty_or_selic" json:"penalty_or_selic"`

	BaseDate      time.Time `yaml:"base_date" json:"base_date"`
	CalcStartDate time.Time `yaml:"calc_start_date" json:"calc_start_date"`
	CalcEndDate   time.Time `yaml:"calc_end_date" json:"calc_end_date"`

	// ExecutionMonths drives the RRA bracket apportionment. Values below 1
	// are normalized to 1 at the input boundary.
	ExecutionMonths int `yaml:"execution_months" json:"execution_months"`

	MinimumWageReference decimal.Decimal `yaml:"minimum_wage_reference" json:"minimum_wage_reference"`

	// MonthlyInterestRate overrides the statutory 0.5%/month moratory rate
	// when non-zero. Expressed as a percentage (0.5 means 0.5%).
	MonthlyInterestRate decimal.Decimal `yaml:"monthly_interest_rate" json:"monthly_interest_rate"`

	// Explicit index overrides bypassing table lookup. Each Has flag marks
	// the paired value as set; zero is a legitimate override value.
	HasStartFactorOverride    bool            `yaml:"has_start_factor_override" json:"has_start_factor_override"`
	StartFactorOverride       decimal.Decimal `yaml:"start_factor_override" json:"start_factor_override"`
	HasPostCutoverSumOverride bool            `yaml:"has_post_cutover_sum_override" json:"has_post_cutover_sum_override"`
	PostCutoverSumOverride    decimal.Decimal `yaml:"post_cutover_sum_override" json:"post_cutover_sum_override"`
	HasLatePeriodSumOverride  bool            `yaml:"has_late_period_sum_override" json:"has_late_period_sum_override"`
	LatePeriodSumOverride     decimal.Decimal `yaml:"late_period_sum_override" json:"late_period_sum_override"`

	SocialContribution SocialContributionInput `yaml:"social_contribution" json:"social_contribution"`
	WithholdingTax     WithholdingTaxInput     `yaml:"withholding_tax" json:"withholding_tax"`

	// Fee and advance both apply to the net-of-withholdings base, never
	// chained on each other.
	FeePercent     decimal.Decimal `yaml:"fee_percent" json:"fee_percent"`
	Fee            Override        `yaml:"fee" json:"fee"`
	AdvancePercent decimal.Decimal `yaml:"advance_percent" json:"advance_percent"`
	Advance        Override        `yaml:"advance" json:"advance"`

	OfferLowPercent  decimal.Decimal `yaml:"offer_low_percent" json:"offer_low_percent"`
	OfferLow         Override        `yaml:"offer_low" json:"offer_low"`
	OfferHighPercent decimal.Decimal `yaml:"offer_high_percent" json:"offer_high_percent"`
	OfferHigh        Override        `yaml:"offer_high" json:"offer_high"`
}

// SocialContributionInput configures the PSS levy.
type SocialContributionInput struct {
	Applies bool `yaml:"applies" json:"applies"`
	// OfficialValue, when positive, is the base reported on the requisition
	// and is restated through the same factors as the principal.
	OfficialValue decimal.Decimal `yaml:"official_value" json:"official_value"`
	Override      Override        `yaml:"override" json:"override"`
}

// WithholdingTaxInput configures the IRPF/RRA withholding.
type WithholdingTaxInput struct {
	Applies  bool     `yaml:"applies" json:"applies"`
	Override Override `yaml:"override" json:"override"`
}

// InterestRateOrDefault returns the caller-supplied moratory rate, falling
// back to the statutory default when unset.
func (in *CalculationInput) InterestRateOrDefault(statutory decimal.Decimal) decimal.Decimal {
	if in.MonthlyInterestRate.IsZero() {
		return statutory
	}
	return in.MonthlyInterestRate
}
