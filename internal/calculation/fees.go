package calculation

import (
	"github.com/matheusvprentacar-blip/precalc/internal/domain"
	"github.com/shopspring/decimal"
)

// FeeCalculator derives the representation fee and the advance payment.
// Both apply to the same net-of-withholdings base; the advance is never
// computed net of the fee.
type FeeCalculator struct{}

// NewFeeCalculator creates a fee calculator.
func NewFeeCalculator() *FeeCalculator { return &FeeCalculator{} }

// Calculate returns (feeAmount, advanceAmount).
func (fc *FeeCalculator) Calculate(input *domain.CalculationInput, netBeforeFees decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	fee := fc.resolve(input.Fee, netBeforeFees, input.FeePercent)
	advance := fc.resolve(input.Advance, netBeforeFees, input.AdvancePercent)
	return fee, advance
}

func (fc *FeeCalculator) resolve(o domain.Override, base, pct decimal.Decimal) decimal.Decimal {
	v := o.Resolve(domain.Percent(base, pct))
	return domain.ClampNonNegative(domain.RoundMoney(v))
}
