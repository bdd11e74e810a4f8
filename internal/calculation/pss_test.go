package calculation

import (
	"testing"

	"github.com/matheusvprentacar-blip/precalc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func pssInput(sc domain.SocialContributionInput, wage string) *domain.CalculationInput {
	return &domain.CalculationInput{
		SocialContribution:   sc,
		MinimumWageReference: money(wage),
	}
}

func TestPSSDoesNotApply(t *testing.T) {
	pc := NewPSSCalculator()
	input := pssInput(domain.SocialContributionInput{Applies: false}, "1500")
	got := pc.Calculate(input, money("100000"), RestatementFactors{})
	assert.True(t, got.IsZero())
}

func TestPSSExemptionDominates(t *testing.T) {
	pc := NewPSSCalculator()
	input := pssInput(domain.SocialContributionInput{
		Applies:       true,
		OfficialValue: money("5000"),
		Override:      domain.Override{Mode: domain.ModeExempt, Value: money("999")},
	}, "1500")
	got := pc.Calculate(input, money("100000"), RestatementFactors{})
	assert.True(t, got.IsZero())
}

func TestPSSManualOverride(t *testing.T) {
	pc := NewPSSCalculator()

	input := pssInput(domain.SocialContributionInput{
		Applies:  true,
		Override: domain.Manual(money("1234.56")),
	}, "1500")
	got := pc.Calculate(input, money("100000"), RestatementFactors{})
	assert.True(t, got.Equal(money("1234.56")))

	// A negative manual value clamps to zero before downstream sums.
	input.SocialContribution.Override = domain.Manual(money("-10"))
	got = pc.Calculate(input, money("100000"), RestatementFactors{})
	assert.True(t, got.IsZero())
}

func TestPSSOfficialPassThrough(t *testing.T) {
	pc := NewPSSCalculator()
	input := pssInput(domain.SocialContributionInput{
		Applies:       true,
		OfficialValue: money("500"),
	}, "1500")

	factors := RestatementFactors{
		PreCutover:     true,
		StartFactor:    money("100"),
		CeilingFactor:  money("166.6584"),
		PostCutoverSum: money("47.57"),
	}
	got := pc.Calculate(input, money("100000"), factors)
	// 500 / 100 * 166.6584 = 833.292; plus 47.57% = 1229.69.
	assert.True(t, got.Equal(money("1229.69")), "got %s", got)
}

func TestPSSOfficialPassThroughPostCutover(t *testing.T) {
	pc := NewPSSCalculator()
	input := pssInput(domain.SocialContributionInput{
		Applies:       true,
		OfficialValue: money("1000"),
	}, "1500")

	factors := RestatementFactors{PreCutover: false, PostCutoverSum: money("10")}
	got := pc.Calculate(input, money("100000"), factors)
	assert.True(t, got.Equal(money("1100.00")), "got %s", got)
}

func TestPSSProgressiveBrackets(t *testing.T) {
	tests := []struct {
		name          string
		restatedTotal string
		expected      string
	}{
		// 4 wage multiples: everything in the 11% band.
		{"within first band", "6000", "660.00"},
		// 20 multiples: 7500*11% + 7500*8% + 15000*5%.
		{"three bands", "30000", "2175.00"},
		// 60 multiples: adds 30000*3%, nothing above 40 wages.
		{"top band exempt", "90000", "3075.00"},
		{"zero base", "0", "0"},
	}

	pc := NewPSSCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := pssInput(domain.SocialContributionInput{Applies: true}, "1500")
			got := pc.Calculate(input, money(tt.restatedTotal), RestatementFactors{})
			assert.True(t, got.Equal(money(tt.expected)),
				"expected %s, got %s", tt.expected, got)
		})
	}
}

func TestPSSProgressiveSubtractsManualAdvance(t *testing.T) {
	pc := NewPSSCalculator()
	input := pssInput(domain.SocialContributionInput{Applies: true}, "1500")
	input.Advance = domain.Manual(money("24000"))

	// 30000 - 24000 = 6000 base, all at 11%.
	got := pc.Calculate(input, money("30000"), RestatementFactors{})
	assert.True(t, got.Equal(money("660.00")), "got %s", got)

	// An oversized advance clamps the base at zero.
	input.Advance = domain.Manual(money("50000"))
	got = pc.Calculate(input, money("30000"), RestatementFactors{})
	assert.True(t, got.IsZero())
}

func TestPSSProgressiveRequiresWage(t *testing.T) {
	pc := NewPSSCalculator()
	input := pssInput(domain.SocialContributionInput{Applies: true}, "0")
	got := pc.Calculate(input, money("30000"), RestatementFactors{})
	assert.True(t, got.IsZero())
}

func TestPSSNeverNegative(t *testing.T) {
	pc := NewPSSCalculator()
	bases := []string{"0", "0.01", "1500", "7500.55", "999999.99"}
	for _, b := range bases {
		input := pssInput(domain.SocialContributionInput{Applies: true}, "1500")
		got := pc.Calculate(input, money(b), RestatementFactors{})
		assert.False(t, got.IsNegative(), "base %s produced %s", b, got)
	}
}
