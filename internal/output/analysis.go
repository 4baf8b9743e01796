package output

import (
	"sort"

	"github.com/rpgo/tvc-calculator/internal/domain"
)

// Vehicle labels used in summaries
const (
	VehicleTVC    = "TVC"
	VehicleNonTVC = "Non-TVC"
	VehicleTie    = "Tie"
)

// Insight summarizes the outcome of one scenario at retirement.
type Insight struct {
	ScenarioName string
	Winner       string
	TerminalGap  float64
	BreakevenAge *int
	// YearsAfterBreakeven is how many years past the breakeven age the current age is;
	// negative means the current age is still too early for TVC to win.
	YearsAfterBreakeven int
}

// AnalyzeScenario derives the winner and breakeven context for a single scenario.
func AnalyzeScenario(sc domain.ScenarioResult) Insight {
	gap := sc.Trajectory.TerminalGap()
	winner := VehicleTie
	switch {
	case gap > 0:
		winner = VehicleTVC
	case gap < 0:
		winner = VehicleNonTVC
	}
	in := Insight{
		ScenarioName: sc.Name,
		Winner:       winner,
		TerminalGap:  gap,
		BreakevenAge: sc.Sweep.BreakevenAge,
	}
	if sc.Sweep.BreakevenAge != nil {
		in.YearsAfterBreakeven = sc.Parameters.CurrentAge - *sc.Sweep.BreakevenAge
	}
	return in
}

// Recommendation encapsulates the scenario where TVC has the largest advantage at retirement.
type Recommendation struct {
	ScenarioName string
	TerminalGap  float64
}

// AnalyzeScenarios ranks scenarios by terminal gap (TVC minus non-TVC), best first.
// Ties keep configuration order.
func AnalyzeScenarios(results *domain.ScenarioComparison) ([]Insight, Recommendation) {
	insights := make([]Insight, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		insights = append(insights, AnalyzeScenario(sc))
	}
	if len(insights) == 0 {
		return insights, Recommendation{}
	}
	ranked := append([]Insight(nil), insights...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TerminalGap > ranked[j].TerminalGap })
	best := ranked[0]
	return insights, Recommendation{ScenarioName: best.ScenarioName, TerminalGap: best.TerminalGap}
}
