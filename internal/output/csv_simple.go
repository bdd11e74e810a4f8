package output

import (
	"bytes"
	"encoding/csv"

	"github.com/matheusvprentacar-blip/precalc/internal/domain"
)

// CSVFormatter writes the breakdown lines followed by the result summary,
// one row each.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Section", "Label", "Formula", "Base", "FactorOrRate", "Value"}); err != nil {
		return nil, err
	}
	for _, line := range result.Restated.Breakdown {
		row := []string{
			"breakdown",
			line.Label,
			line.Formula,
			line.BaseValue.StringFixed(2),
			line.FactorOrRate.String(),
			line.Result.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	summary := []struct {
		label string
		value string
	}{
		{"TotalBefore", result.TotalBefore.StringFixed(2)},
		{"SocialContribution", result.SocialContribution.StringFixed(2)},
		{"WithholdingTax", result.WithholdingTax.StringFixed(2)},
		{"WithholdingTaxComputed", result.WithholdingTaxComputed.StringFixed(2)},
		{"TotalWithholdings", result.TotalWithholdings.StringFixed(2)},
		{"NetBeforeFees", result.NetBeforeFees.StringFixed(2)},
		{"FeeAmount", result.FeeAmount.StringFixed(2)},
		{"AdvanceAmount", result.AdvanceAmount.StringFixed(2)},
		{"NetFinal", result.NetFinal.StringFixed(2)},
		{"OfferLow", result.OfferLow.StringFixed(2)},
		{"OfferHigh", result.OfferHigh.StringFixed(2)},
	}
	for _, row := range summary {
		if err := w.Write([]string{"result", row.label, "", "", "", row.value}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
