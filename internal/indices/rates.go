package indices

// postCutoverRateTable holds the accumulated monthly rates (percent) that
// replace the correction-factor regime from January 2022 onward. The
// restatement sums the rates over the calculation span and applies the
// aggregate percentage to the restated principal. Future months are simply
// absent and contribute zero until the table is updated.
var postCutoverRateTable = map[int][12]float64{
	2022: {0.73, 0.75, 0.92, 0.83, 1.03, 1.01, 1.03, 1.17, 1.07, 1.02, 1.02, 1.12},
	2023: {1.12, 0.92, 1.17, 0.92, 1.12, 1.07, 1.07, 1.14, 0.97, 1.00, 0.92, 0.89},
	2024: {0.97, 0.80, 0.83, 0.89, 0.83, 0.79, 0.91, 0.87, 0.84, 0.93, 0.79, 0.93},
	2025: {1.01, 0.99, 0.96, 1.06, 1.14, 1.10, 1.17, 1.22, 1.13, 1.17, 1.09, 1.14},
}

// latePeriodRateTable holds the supplementary monthly inflation percentages
// applied to the original principal from the late-regime start onward. This
// is an independent correction layer on top of the accumulated-rate regime.
var latePeriodRateTable = map[int][12]float64{
	2025: {0.11, 1.23, 0.43, 0.64, 0.43, 0.36, 0.26, 0.33, 0.14, 0.48, 0.30, 0.55},
}
