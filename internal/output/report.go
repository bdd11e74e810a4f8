package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matheusvprentacar-blip/precalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders one calculation result for a consumer surface.
type Formatter interface {
	Name() string
	Format(result *domain.CalculationResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatCurrency renders a monetary value in Brazilian convention:
// R$ 1.234.567,89.
func FormatCurrency(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, strings.Join(grouped, "."), fracPart)
}

// ConsoleFormatter renders the on-screen summary with the itemized
// restatement breakdown.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "================================================================")
	fmt.Fprintln(buf, "DEMONSTRATIVO DE ATUALIZACAO E RETENCOES")
	fmt.Fprintln(buf, "================================================================")
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "MEMORIA DE CALCULO")
	fmt.Fprintln(buf, "------------------")
	for _, line := range result.Restated.Breakdown {
		fmt.Fprintf(buf, "%-32s %s\n", line.Label, FormatCurrency(line.Result))
		fmt.Fprintf(buf, "    %s\n", line.Formula)
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "RESUMO")
	fmt.Fprintln(buf, "------")
	type row struct {
		label string
		value decimal.Decimal
	}
	rows := []row{
		{"Valor bruto atualizado", result.TotalBefore},
		{"Contribuicao social (PSS)", result.SocialContribution},
		{"Imposto de renda (IRPF/RRA)", result.WithholdingTax},
	}
	// An override or exemption replaced the progressive figure: show what the
	// table would have withheld next to what was actually applied.
	if !result.WithholdingTaxComputed.Equal(result.WithholdingTax) {
		rows = append(rows, row{"IRPF apurado pela tabela", result.WithholdingTaxComputed})
	}
	rows = append(rows, []row{
		{"Total de descontos", result.TotalWithholdings},
		{"Liquido antes de honorarios", result.NetBeforeFees},
		{"Honorarios", result.FeeAmount},
		{"Adiantamento", result.AdvanceAmount},
		{"Liquido final", result.NetFinal},
		{"Proposta minima", result.OfferLow},
		{"Proposta maxima", result.OfferHigh},
	}...)
	for _, row := range rows {
		fmt.Fprintf(buf, "%-32s %s\n", row.label, FormatCurrency(row.value))
	}

	return buf.Bytes(), nil
}
