package domain

import "github.com/shopspring/decimal"

// RoundMoney rounds to the currency minor unit (2 decimal places, half up).
// Every line item and result field passes through here exactly once so that
// cross-stage sums hold to the cent.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// ClampNonNegative floors a derived value at zero. Withholdings, fees and
// advances must never surface as negative amounts.
func ClampNonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Percent applies pct (expressed as a percentage, e.g. 30 for 30%) to base.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(decimal.NewFromInt(100))
}
