package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/tvc-calculator/internal/domain"
	"github.com/rpgo/tvc-calculator/pkg/money"
)

// CSVTrajectoryExporter writes the year-by-year growth of both vehicles for every scenario.
type CSVTrajectoryExporter struct{}

func (c CSVTrajectoryExporter) Name() string { return "trajectory-csv" }

func (c CSVTrajectoryExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Age", "Year", "TVC", "NonTVC", "Gap"}); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		g := sc.Trajectory
		for i, age := range g.Ages {
			tvc := money.FromFloat(g.TVCValues[i])
			nonTVC := money.FromFloat(g.NonTVCValues[i])
			row := []string{
				sc.Name,
				strconv.Itoa(age),
				strconv.Itoa(i),
				tvc.String(),
				nonTVC.String(),
				tvc.Sub(nonTVC).String(),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
