// Package indices holds the statutory index tables the restatement engine
// composes: the pre-cutover monthly correction-factor table, the post-cutover
// accumulated-rate table and the supplementary late-period inflation table.
//
// Tables are built once at process start from the year-array literals in this
// package and are never mutated, so they may be shared across any number of
// concurrent calculations without locking. Lookups for months the tables do
// not cover return zero together with found=false; a missing month means "no
// adjustment for that month", never a failure.
package indices

import (
	"time"

	"github.com/shopspring/decimal"
)

// CutoverDate is the statutory date after which monetary restatement switches
// from the correction-factor table to the accumulated-rate table.
var CutoverDate = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// LateRegimeStart is the first month of the supplementary late-period
// inflation adjustment applied to the original principal.
var LateRegimeStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultMonthlyInterestRate is the statutory moratory interest rate,
// expressed as a percentage per month.
var DefaultMonthlyInterestRate = decimal.NewFromFloat(0.5)

type monthKey struct {
	year  int
	month time.Month
}

var (
	correctionByMonth  map[monthKey]decimal.Decimal
	postCutoverByMonth map[monthKey]decimal.Decimal
	lateByMonth        map[monthKey]decimal.Decimal
)

func buildTable(years map[int][12]float64) map[monthKey]decimal.Decimal {
	out := make(map[monthKey]decimal.Decimal, len(years)*12)
	for year, row := range years {
		for i, v := range row {
			out[monthKey{year, time.Month(i + 1)}] = decimal.NewFromFloat(v)
		}
	}
	return out
}

func init() {
	correctionByMonth = buildTable(correctionFactorTable)
	postCutoverByMonth = buildTable(postCutoverRateTable)
	lateByMonth = buildTable(latePeriodRateTable)
}

// LookupCorrectionFactor returns the pre-cutover index number for a month.
func LookupCorrectionFactor(year int, month time.Month) (decimal.Decimal, bool) {
	v, ok := correctionByMonth[monthKey{year, month}]
	return v, ok
}

// LookupPostCutoverRate returns the accumulated monthly rate (percent) for a
// post-cutover month.
func LookupPostCutoverRate(year int, month time.Month) (decimal.Decimal, bool) {
	v, ok := postCutoverByMonth[monthKey{year, month}]
	return v, ok
}

// LookupLateRate returns the late-period monthly inflation rate (percent).
func LookupLateRate(year int, month time.Month) (decimal.Decimal, bool) {
	v, ok := lateByMonth[monthKey{year, month}]
	return v, ok
}

// CeilingFactor is the correction factor of the cutover month (December of
// the last pre-cutover year), the fixed numerator of every pre-cutover
// restatement.
func CeilingFactor() decimal.Decimal {
	v, _ := LookupCorrectionFactor(CutoverDate.Year()-1, time.December)
	return v
}

// sumRange sums table rates month by month from the month of `from` up to,
// and excluding, the month of `until`. The calculation-end date names the
// month the requisition is drawn in, so its own month has not accrued yet.
// Months absent from the table contribute zero.
func sumRange(table map[monthKey]decimal.Decimal, from, until time.Time) decimal.Decimal {
	sum := decimal.Zero
	y, m := from.Year(), from.Month()
	for y < until.Year() || (y == until.Year() && m < until.Month()) {
		if v, ok := table[monthKey{y, m}]; ok {
			sum = sum.Add(v)
		}
		m++
		if m > time.December {
			m = time.January
			y++
		}
	}
	return sum
}

// SumPostCutoverRates aggregates the post-cutover rates for [from, until).
func SumPostCutoverRates(from, until time.Time) decimal.Decimal {
	return sumRange(postCutoverByMonth, from, until)
}

// SumLateRates aggregates the late-period rates for [from, until).
func SumLateRates(from, until time.Time) decimal.Decimal {
	return sumRange(lateByMonth, from, until)
}

// WholeMonthsBetween counts whole calendar months from a to b, clamped at
// zero when b precedes a.
func WholeMonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months < 0 {
		return 0
	}
	return months
}

// MaxDate returns the later of two dates.
func MaxDate(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
