package calculation

import (
	"github.com/matheusvprentacar-blip/precalc/internal/domain"
	"github.com/shopspring/decimal"
)

// IRPFBracket is one row of the monthly progressive withholding table.
type IRPFBracket struct {
	Limit             decimal.Decimal // monthly base upper limit; zero = unbounded
	Rate              decimal.Decimal // percent
	DeductionPerMonth decimal.Decimal
}

// IRPFCalculator implements the lump-sum-over-multiple-periods (RRA)
// withholding: the taxable base is divided by the number of execution months
// to pick the marginal bracket, and the bracket's flat deduction is
// multiplied back by the same month count.
type IRPFCalculator struct {
	Brackets []IRPFBracket
}

// NewIRPFCalculator creates a calculator with the 2024 statutory monthly
// table.
func NewIRPFCalculator() *IRPFCalculator {
	return &IRPFCalculator{
		Brackets: []IRPFBracket{
			{decimal.NewFromFloat(2259.20), decimal.Zero, decimal.Zero},
			{decimal.NewFromFloat(2826.65), decimal.NewFromFloat(7.5), decimal.NewFromFloat(169.44)},
			{decimal.NewFromFloat(3751.05), decimal.NewFromInt(15), decimal.NewFromFloat(381.44)},
			{decimal.NewFromFloat(4664.68), decimal.NewFromFloat(22.5), decimal.NewFromFloat(662.77)},
			{decimal.Zero, decimal.NewFromFloat(27.5), decimal.NewFromFloat(896.00)},
		},
	}
}

// CalculateRRA computes the withholding due on taxableBase paid in one lump
// sum covering executionMonths. The base is clamped at zero before bracket
// selection and the result is never negative.
func (ic *IRPFCalculator) CalculateRRA(taxableBase decimal.Decimal, executionMonths int) decimal.Decimal {
	if executionMonths < 1 {
		executionMonths = 1
	}
	base := domain.ClampNonNegative(taxableBase)
	if base.IsZero() {
		return decimal.Zero
	}

	months := decimal.NewFromInt(int64(executionMonths))
	monthlyBase := base.Div(months)

	bracket := ic.Brackets[len(ic.Brackets)-1]
	for _, b := range ic.Brackets {
		if !b.Limit.IsZero() && monthlyBase.LessThanOrEqual(b.Limit) {
			bracket = b
			break
		}
	}

	tax := domain.Percent(base, bracket.Rate).Sub(bracket.DeductionPerMonth.Mul(months))
	return domain.RoundMoney(domain.ClampNonNegative(tax))
}

// Resolve applies the exemption and manual-override flags on top of the
// formula. The internally computed figure is returned separately so the
// audit line can surface it even when a manual value wins.
func (ic *IRPFCalculator) Resolve(input *domain.CalculationInput, taxableBase decimal.Decimal) (effective, computed decimal.Decimal) {
	wt := input.WithholdingTax
	if !wt.Applies {
		return decimal.Zero, decimal.Zero
	}
	computed = ic.CalculateRRA(taxableBase, input.ExecutionMonths)
	if wt.Override.IsExempt() {
		return decimal.Zero, computed
	}
	if wt.Override.IsManual() {
		return domain.ClampNonNegative(domain.RoundMoney(wt.Override.Value)), computed
	}
	return computed, computed
}
