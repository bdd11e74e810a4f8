package output

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/matheusvprentacar-blip/precalc/internal/domain"
)

// ExportDocument is the audit export persisted alongside a case: the full
// input, the full result and the generation instant. For a fixed timestamp
// and input the serialized bytes are reproducible.
type ExportDocument struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	Input       *domain.CalculationInput  `json:"input"`
	Result      *domain.CalculationResult `json:"result"`
}

// ExportFilename names the audit file for a generation instant.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("calculo-precatorio-%s.json", t.Format("20060102-150405"))
}

// MarshalExport serializes an export document.
func MarshalExport(doc *ExportDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalExport re-parses an audit export, reproducing the input/result
// pairing used to generate it.
func UnmarshalExport(data []byte) (*ExportDocument, error) {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}
	return &doc, nil
}

// JSONFormatter renders the bare result record for programmatic consumers.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
