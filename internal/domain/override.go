package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OverrideMode selects how an overridable quantity is resolved.
type OverrideMode string

const (
	// ModeAuto resolves the quantity from its formula.
	ModeAuto OverrideMode = "auto"
	// ModeManual resolves the quantity to a user-supplied value.
	ModeManual OverrideMode = "manual"
	// ModeExempt resolves the quantity to zero regardless of formula or value.
	ModeExempt OverrideMode = "exempt"
)

// Override is a tagged variant for quantities the user may pin manually.
// Keeping mode and value in one type prevents "flag says manual but no value
// populated" desync between the wizard and the engine.
type Override struct {
	Mode  OverrideMode    `yaml:"mode" json:"mode"`
	Value decimal.Decimal `yaml:"value" json:"value"`
}

// Auto returns a formula-resolved override.
func Auto() Override { return Override{Mode: ModeAuto} }

// Manual returns an override pinned to v.
func Manual(v decimal.Decimal) Override { return Override{Mode: ModeManual, Value: v} }

// Exempt returns an override that always resolves to zero.
func Exempt() Override { return Override{Mode: ModeExempt} }

// IsManual reports whether the user pinned the value.
func (o Override) IsManual() bool { return o.Mode == ModeManual }

// IsExempt reports whether the quantity is statutorily exempt.
func (o Override) IsExempt() bool { return o.Mode == ModeExempt }

// Resolve picks the effective value given the formula-computed one.
// Exemption dominates manual values; an unset mode behaves as auto.
func (o Override) Resolve(computed decimal.Decimal) decimal.Decimal {
	switch o.Mode {
	case ModeExempt:
		return decimal.Zero
	case ModeManual:
		return o.Value
	default:
		return computed
	}
}

// Validate rejects unknown modes. An empty mode is accepted as auto so that
// omitted YAML blocks keep their zero value useful.
func (o Override) Validate() error {
	switch o.Mode {
	case "", ModeAuto, ModeManual, ModeExempt:
		return nil
	default:
		return fmt.Errorf("unknown override mode %q", o.Mode)
	}
}
