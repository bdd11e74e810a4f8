package output

import (
	"strings"
	"testing"
	"time"

	"github.com/matheusvprentacar-blip/precalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleResult() *domain.CalculationResult {
	r := &domain.CalculationResult{
		TotalBefore:        money("5111.83"),
		SocialContribution: money("562.30"),
		WithholdingTax:     money("0"),
		TotalWithholdings:  money("562.30"),
		NetBeforeFees:      money("4549.53"),
		FeeAmount:          money("454.95"),
		AdvanceAmount:      money("227.48"),
		NetFinal:           money("3867.10"),
		OfferLow:           money("2320.26"),
		OfferHigh:          money("3093.68"),
	}
	r.Restated = domain.RestatementResult{
		RestatedPrincipal:     money("1666.58"),
		InterestAccrued:       money("2599.86"),
		PostCutoverAdjustment: money("792.79"),
		LateAdjustment:        money("52.60"),
	}
	r.Restated.AddLine("Correção monetária", "(1000.00 / 100) x 166.6584",
		money("1000.00"), money("1.666584"), money("1666.58"))
	return r
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json"} {
		assert.NotNil(t, GetFormatterByName(name), "formatter %s missing", name)
	}
	assert.Nil(t, GetFormatterByName("html"))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0", "R$ 0,00"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"1000", "R$ 1.000,00"},
		{"-52.6", "-R$ 52,60"},
		{"999.99", "R$ 999,99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCurrency(money(tt.in)))
	}
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "MEMORIA DE CALCULO")
	assert.Contains(t, out, "Correção monetária")
	assert.Contains(t, out, "R$ 3.867,10")
	assert.Contains(t, out, "Total de descontos")
	// Withheld and table figures agree, so no extra audit row.
	assert.NotContains(t, out, "IRPF apurado pela tabela")
}

func TestConsoleFormatterShowsOverriddenTaxFigure(t *testing.T) {
	result := sampleResult()
	result.WithholdingTax = money("100.00")
	result.WithholdingTaxComputed = money("15.01")

	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "IRPF apurado pela tabela")
	assert.Contains(t, out, "R$ 15,01")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header, one breakdown line, eleven result rows.
	assert.Len(t, lines, 13)
	assert.Contains(t, lines[0], "FactorOrRate")
	assert.Contains(t, string(data), "WithholdingTaxComputed")
	assert.Contains(t, lines[len(lines)-1], "OfferHigh")
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2026, time.January, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, "calculo-precatorio-20260115-093045.json", ExportFilename(ts))
}

func TestExportRoundTrip(t *testing.T) {
	input := &domain.CalculationInput{
		CaseID:        "PRC-0042",
		Principal:     money("1000.00"),
		BaseDate:      time.Date(1996, time.January, 1, 0, 0, 0, 0, time.UTC),
		CalcStartDate: time.Date(1996, time.January, 1, 0, 0, 0, 0, time.UTC),
		CalcEndDate:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	doc := &ExportDocument{
		GeneratedAt: time.Date(2026, time.January, 15, 9, 30, 45, 0, time.UTC),
		Input:       input,
		Result:      sampleResult(),
	}

	payload, err := MarshalExport(doc)
	require.NoError(t, err)

	parsed, err := UnmarshalExport(payload)
	require.NoError(t, err)
	assert.Equal(t, doc.Input.CaseID, parsed.Input.CaseID)
	assert.True(t, parsed.Input.Principal.Equal(doc.Input.Principal))
	assert.True(t, parsed.Result.NetFinal.Equal(doc.Result.NetFinal))
	assert.True(t, parsed.GeneratedAt.Equal(doc.GeneratedAt))

	// Same document, same bytes: the export is reproducible.
	again, err := MarshalExport(doc)
	require.NoError(t, err)
	assert.Equal(t, payload, again)
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"net_final"`)
	assert.Contains(t, string(data), `"breakdown"`)
}
