package calculation

import (
	"fmt"
	"time"

	"github.com/matheusvprentacar-blip/precalc/internal/domain"
	"github.com/matheusvprentacar-blip/precalc/internal/indices"
	"github.com/shopspring/decimal"
)

// RESTATEMENT ASSUMPTIONS:
//
// 1. Pre-cutover regime (before 2022-01-01): correction-factor table.
//    restated = principal / factor(start month) * factor(Dec 2021).
//    A missing or zero start factor degrades to "no restatement" with an
//    audit note; the engine never fails on sparse table data.
//
// 2. Moratory interest: simple interest at the statutory 0.5%/month (or the
//    caller-supplied rate) over the whole months between the calculation
//    start and the cutover. Calculations starting at or after the cutover
//    accrue no moratory interest; the accumulated-rate regime already
//    embeds interest.
//
// 3. Post-cutover regime: monthly accumulated rates summed over the span and
//    applied as one aggregate percentage to the restated principal.
//
// 4. Late-period adjustment: supplementary inflation percentages applied to
//    the ORIGINAL principal, an independent second correction layer.
//
// Month ranges are end-exclusive on the calculation-end month: an end date of
// 2026-01-01 sums rates through December 2025.

// RestatementFactors carries the factors a restatement run actually used, so
// downstream pass-through calculations (the PSS official-base scaling) apply
// the exact same ratios.
type RestatementFactors struct {
	PreCutover     bool
	StartFactor    decimal.Decimal
	CeilingFactor  decimal.Decimal
	PostCutoverSum decimal.Decimal
}

// RestatementCalculator restates a principal across the three index regimes.
type RestatementCalculator struct {
	MonthlyInterestRate decimal.Decimal // percent per month, statutory default
	Logger              Logger
}

// NewRestatementCalculator creates a calculator with the statutory defaults.
func NewRestatementCalculator() *RestatementCalculator {
	return &RestatementCalculator{MonthlyInterestRate: indices.DefaultMonthlyInterestRate}
}

// Calculate produces the four restatement components and the audit breakdown.
// Every component is rounded to the cent when emitted, so summing the
// breakdown reproduces the final value exactly.
func (rc *RestatementCalculator) Calculate(input *domain.CalculationInput) (domain.RestatementResult, RestatementFactors) {
	var result domain.RestatementResult
	var factors RestatementFactors

	start := input.CalcStartDate
	end := input.CalcEndDate
	if end.Before(start) {
		// Invalid temporal input clamps to zero elapsed time.
		end = start
	}

	principal := domain.RoundMoney(input.Principal)
	factors.PreCutover = start.Before(indices.CutoverDate)

	// Pre-cutover restatement.
	restated := principal
	if factors.PreCutover {
		startFactor := input.StartFactorOverride
		if !input.HasStartFactorOverride {
			startFactor, _ = indices.LookupCorrectionFactor(start.Year(), start.Month())
		}
		ceiling := indices.CeilingFactor()
		factors.StartFactor = startFactor
		factors.CeilingFactor = ceiling

		if startFactor.IsZero() {
			rc.warnf("no correction factor for %s; principal carried unrestated", start.Format("2006-01"))
			result.AddLine("Correção monetária",
				fmt.Sprintf("sem fator para %s, principal mantido", start.Format("2006-01")),
				principal, decimal.Zero, principal)
		} else {
			restated = domain.RoundMoney(principal.Div(startFactor).Mul(ceiling))
			result.AddLine("Correção monetária",
				fmt.Sprintf("(%s / %s) x %s", principal.StringFixed(2), startFactor.String(), ceiling.String()),
				principal, ceiling.Div(startFactor), restated)
		}
	} else {
		result.AddLine("Correção monetária",
			"início posterior ao marco legal, sem correção pré-marco",
			principal, decimal.NewFromInt(1), principal)
	}
	result.RestatedPrincipal = restated

	// Moratory interest over the pre-cutover span.
	rate := input.InterestRateOrDefault(rc.MonthlyInterestRate)
	months := 0
	if factors.PreCutover {
		months = indices.WholeMonthsBetween(start, indices.CutoverDate)
	}
	interest := domain.RoundMoney(domain.Percent(restated, rate.Mul(decimal.NewFromInt(int64(months)))))
	result.InterestAccrued = interest
	result.AddLine("Juros moratórios",
		fmt.Sprintf("%s x %s%% x %d meses", restated.StringFixed(2), rate.String(), months),
		restated, rate, interest)

	// Post-cutover aggregate applied to the restated principal.
	postSum := rc.postCutoverSum(input, start, end)
	factors.PostCutoverSum = postSum
	post := domain.RoundMoney(domain.Percent(restated, postSum))
	result.PostCutoverAdjustment = post
	result.AddLine("Atualização SELIC acumulada",
		fmt.Sprintf("%s x %s%%", restated.StringFixed(2), postSum.String()),
		restated, postSum, post)

	// Late-period adjustment applied to the original principal.
	lateSum := rc.lateSum(input, start, end)
	late := domain.RoundMoney(domain.Percent(principal, lateSum))
	result.LateAdjustment = late
	result.AddLine("Correção complementar IPCA-E",
		fmt.Sprintf("%s x %s%%", principal.StringFixed(2), lateSum.String()),
		principal, lateSum, late)

	result.AddLine("Valor atualizado",
		"correção + juros + SELIC + complementar",
		principal, decimal.Zero, result.FinalValue())

	return result, factors
}

func (rc *RestatementCalculator) postCutoverSum(input *domain.CalculationInput, start, end time.Time) decimal.Decimal {
	if input.HasPostCutoverSumOverride {
		return input.PostCutoverSumOverride
	}
	return indices.SumPostCutoverRates(indices.MaxDate(start, indices.CutoverDate), end)
}

func (rc *RestatementCalculator) lateSum(input *domain.CalculationInput, start, end time.Time) decimal.Decimal {
	if input.HasLatePeriodSumOverride {
		return input.LatePeriodSumOverride
	}
	return indices.SumLateRates(indices.MaxDate(start, indices.LateRegimeStart), end)
}

func (rc *RestatementCalculator) warnf(format string, args ...any) {
	if rc.Logger != nil {
		rc.Logger.Warnf(format, args...)
	}
}
