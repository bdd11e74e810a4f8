package calculation

import (
	"github.com/matheusvprentacar-blip/precalc/internal/domain"
	"github.com/shopspring/decimal"
)

// OfferCalculator produces the negotiated-settlement offer band from the
// final net value. The engine does not enforce low <= high: a manual
// override is explicit user intent and band-percent sanity is a caller
// validation concern.
type OfferCalculator struct{}

// NewOfferCalculator creates an offer calculator.
func NewOfferCalculator() *OfferCalculator { return &OfferCalculator{} }

// Calculate returns (offerLow, offerHigh).
func (oc *OfferCalculator) Calculate(input *domain.CalculationInput, netFinal decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	low := domain.RoundMoney(input.OfferLow.Resolve(domain.Percent(netFinal, input.OfferLowPercent)))
	high := domain.RoundMoney(input.OfferHigh.Resolve(domain.Percent(netFinal, input.OfferHighPercent)))
	return low, high
}
