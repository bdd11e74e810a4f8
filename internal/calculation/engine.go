package calculation

import (
	"github.com/matheusvprentacar-blip/precalc/internal/domain"
)

// Logger is the minimal logging surface the engine needs. A nil logger
// silences everything; the engine only ever logs degradations, never errors.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Engine orchestrates the full restatement and withholding pipeline. It is a
// pure function over the input record: no I/O, no state across calls, safe
// for concurrent use.
type Engine struct {
	Restatement *RestatementCalculator
	PSS         *PSSCalculator
	IRPF        *IRPFCalculator
	Fees        *FeeCalculator
	Offers      *OfferCalculator
}

// NewEngine creates an engine with the statutory defaults.
func NewEngine() *Engine {
	return &Engine{
		Restatement: NewRestatementCalculator(),
		PSS:         NewPSSCalculator(),
		IRPF:        NewIRPFCalculator(),
		Fees:        NewFeeCalculator(),
		Offers:      NewOfferCalculator(),
	}
}

// SetLogger wires a logger into the sub-calculators that report degradations.
func (e *Engine) SetLogger(l Logger) {
	e.Restatement.Logger = l
}

// Compute runs the full pipeline in dependency order: restatement, then the
// two withholdings on the restated value, then fees on the net-of-withholdings
// base, then the offer band on the final net.
func (e *Engine) Compute(input *domain.CalculationInput) *domain.CalculationResult {
	result := &domain.CalculationResult{}

	restated, factors := e.Restatement.Calculate(input)
	result.Restated = restated

	// Carried requisition amounts (original-judgment interest and penalty)
	// enter the total at face value alongside the restated components.
	result.TotalBefore = restated.FinalValue().
		Add(domain.RoundMoney(input.InterestOriginal)).
		Add(domain.RoundMoney(input.PenaltyOrSelic))

	result.SocialContribution = e.PSS.Calculate(input, result.TotalBefore, factors)

	// Moratory interest and the late-period layer are tax exempt: the IRPF
	// base is the restated principal plus the post-cutover adjustment, net of
	// the social contribution.
	taxableBase := restated.RestatedPrincipal.
		Add(restated.PostCutoverAdjustment).
		Sub(result.SocialContribution)
	result.WithholdingTax, result.WithholdingTaxComputed = e.IRPF.Resolve(input, taxableBase)

	result.TotalWithholdings = result.SocialContribution.Add(result.WithholdingTax)
	result.NetBeforeFees = result.TotalBefore.Sub(result.TotalWithholdings)

	result.FeeAmount, result.AdvanceAmount = e.Fees.Calculate(input, result.NetBeforeFees)
	result.NetFinal = result.NetBeforeFees.Sub(result.FeeAmount).Sub(result.AdvanceAmount)

	result.OfferLow, result.OfferHigh = e.Offers.Calculate(input, result.NetFinal)

	return result
}
