package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/tvc-calculator/internal/domain"
	"github.com/rpgo/tvc-calculator/pkg/money"
)

// CSVSweepExporter writes one row per scenario and starting age of the breakeven sweep.
type CSVSweepExporter struct{}

func (c CSVSweepExporter) Name() string { return "csv" }

func (c CSVSweepExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "StartAge", "YearsToRetirement", "TVCFinal", "NonTVCFinal", "Difference", "IsBreakeven"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		s := sc.Sweep
		for i, age := range s.StartAges {
			row := []string{
				sc.Name,
				strconv.Itoa(age),
				strconv.Itoa(sc.Parameters.RetirementAge - age),
				money.FromFloat(s.TVCFinal[i]).String(),
				money.FromFloat(s.NonTVCFinal[i]).String(),
				money.FromFloat(s.Difference[i]).String(),
				strconv.FormatBool(s.BreakevenAge != nil && *s.BreakevenAge == age),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
