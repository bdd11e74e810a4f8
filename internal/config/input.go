package config

import (
	"fmt"
	"os"

	"github.com/matheusvprentacar-blip/precalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of calculation input files. Malformed input is
// rejected here, at the boundary; the pure calculators never fail on the
// numeric edge cases that survive validation.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a CalculationInput from a YAML (or JSON) file,
// validates it and normalizes the interactive-form edge cases.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, validates and normalizes an input document.
func (ip *InputParser) Parse(data []byte) (*domain.CalculationInput, error) {
	var input domain.CalculationInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if err := ip.Validate(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	ip.Normalize(&input)
	return &input, nil
}

// Validate rejects structurally invalid input. Temporal inconsistencies are
// not errors, since the wizard produces them while the user is still typing;
// Normalize clamps them instead.
func (ip *InputParser) Validate(input *domain.CalculationInput) error {
	if input.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if input.InterestOriginal.IsNegative() {
		return fmt.Errorf("original interest cannot be negative")
	}
	if input.PenaltyOrSelic.IsNegative() {
		return fmt.Errorf("penalty/SELIC amount cannot be negative")
	}
	if input.MinimumWageReference.IsNegative() {
		return fmt.Errorf("minimum wage reference cannot be negative")
	}
	if input.MonthlyInterestRate.IsNegative() {
		return fmt.Errorf("monthly interest rate cannot be negative")
	}
	if input.CalcStartDate.IsZero() && input.BaseDate.IsZero() {
		return fmt.Errorf("a base date or calculation start date is required")
	}

	if input.FeePercent.IsNegative() {
		return fmt.Errorf("fee percent cannot be negative")
	}
	if input.AdvancePercent.IsNegative() {
		return fmt.Errorf("advance percent cannot be negative")
	}
	if input.OfferLowPercent.IsNegative() || input.OfferHighPercent.IsNegative() {
		return fmt.Errorf("offer percents cannot be negative")
	}

	for name, o := range map[string]domain.Override{
		"social_contribution.override": input.SocialContribution.Override,
		"withholding_tax.override":     input.WithholdingTax.Override,
		"fee":                          input.Fee,
		"advance":                      input.Advance,
		"offer_low":                    input.OfferLow,
		"offer_high":                   input.OfferHigh,
	} {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	// The progressive PSS fallback divides by the minimum wage.
	sc := input.SocialContribution
	if sc.Applies && !sc.Override.IsManual() && !sc.Override.IsExempt() &&
		!sc.OfficialValue.IsPositive() && !input.MinimumWageReference.IsPositive() {
		return fmt.Errorf("minimum wage reference is required for the progressive social-contribution table")
	}

	return nil
}

// Normalize clamps the interactive-form edge cases to the nearest valid
// value: a missing start date falls back to the base date, an end date
// before the start collapses the span, and execution months below one are
// raised to one to keep the RRA division defined.
func (ip *InputParser) Normalize(input *domain.CalculationInput) {
	if input.CalcStartDate.IsZero() {
		input.CalcStartDate = input.BaseDate
	}
	if input.CalcEndDate.IsZero() || input.CalcEndDate.Before(input.CalcStartDate) {
		input.CalcEndDate = input.CalcStartDate
	}
	if input.ExecutionMonths < 1 {
		input.ExecutionMonths = 1
	}
}
