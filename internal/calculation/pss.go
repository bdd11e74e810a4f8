package calculation

import (
	"github.com/matheusvprentacar-blip/precalc/internal/domain"
	"github.com/shopspring/decimal"
)

// PSSBracket is one band of the progressive social-contribution table, keyed
// on multiples of the reference minimum wage.
type PSSBracket struct {
	UpToWageMultiple decimal.Decimal // zero on the last bracket = unbounded
	Rate             decimal.Decimal // percent
}

// PSSCalculator computes the social-contribution levy. Three mutually
// exclusive modes: exempt, manual, automatic. Automatic prefers scaling the
// official requisition base through the restatement factors and falls back to
// the progressive wage-multiple table when no official base is supplied.
type PSSCalculator struct {
	Brackets []PSSBracket
}

// NewPSSCalculator creates a calculator with the statutory bands: amounts up
// to 5 minimum wages contribute 11%, then 8% to 10, 5% to 20, 3% to 40 and
// nothing beyond 40 wages. The bands are cumulative-marginal.
func NewPSSCalculator() *PSSCalculator {
	return &PSSCalculator{
		Brackets: []PSSBracket{
			{decimal.NewFromInt(5), decimal.NewFromInt(11)},
			{decimal.NewFromInt(10), decimal.NewFromInt(8)},
			{decimal.NewFromInt(20), decimal.NewFromInt(5)},
			{decimal.NewFromInt(40), decimal.NewFromInt(3)},
			{decimal.Zero, decimal.Zero},
		},
	}
}

// Calculate resolves the levy for one calculation run. restatedTotal is the
// full restated value; factors are the exact ratios the restatement used.
func (pc *PSSCalculator) Calculate(input *domain.CalculationInput, restatedTotal decimal.Decimal, factors RestatementFactors) decimal.Decimal {
	sc := input.SocialContribution
	if !sc.Applies || sc.Override.IsExempt() {
		return decimal.Zero
	}
	if sc.Override.IsManual() {
		return domain.ClampNonNegative(domain.RoundMoney(sc.Override.Value))
	}
	if sc.OfficialValue.IsPositive() {
		return pc.passThrough(sc.OfficialValue, factors)
	}
	return pc.progressive(input, restatedTotal)
}

// passThrough restates the official base through the same factor ratios the
// principal went through: the pre-cutover factor ratio and the post-cutover
// aggregate percentage.
func (pc *PSSCalculator) passThrough(official decimal.Decimal, factors RestatementFactors) decimal.Decimal {
	scaled := official
	if factors.PreCutover && !factors.StartFactor.IsZero() {
		scaled = scaled.Div(factors.StartFactor).Mul(factors.CeilingFactor)
	}
	scaled = scaled.Add(domain.Percent(scaled, factors.PostCutoverSum))
	return domain.RoundMoney(scaled)
}

// progressive runs the cumulative bracket computation over minimum-wage
// multiples. The contribution base is the restated total net of any manually
// fixed advance; the formula-derived advance is downstream of this levy and
// cannot participate without circularity.
func (pc *PSSCalculator) progressive(input *domain.CalculationInput, restatedTotal decimal.Decimal) decimal.Decimal {
	wage := input.MinimumWageReference
	if !wage.IsPositive() {
		return decimal.Zero
	}
	base := restatedTotal
	if input.Advance.IsManual() {
		base = base.Sub(input.Advance.Value)
	}
	base = domain.ClampNonNegative(base)

	total := decimal.Zero
	lower := decimal.Zero // band floor in currency
	for _, b := range pc.Brackets {
		var upper decimal.Decimal
		unbounded := b.UpToWageMultiple.IsZero()
		if unbounded {
			upper = base
		} else {
			upper = b.UpToWageMultiple.Mul(wage)
		}
		if base.LessThanOrEqual(lower) {
			break
		}
		inBand := decimal.Min(base, upper).Sub(lower)
		if inBand.IsPositive() {
			total = total.Add(domain.Percent(inBand, b.Rate))
		}
		lower = upper
		if unbounded {
			break
		}
	}
	return domain.RoundMoney(total)
}
