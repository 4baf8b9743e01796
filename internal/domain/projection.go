package domain

import (
	"math"
	"time"
)

// GrowthTrajectory is the year-by-year balance of both vehicles from the current age to retirement
type GrowthTrajectory struct {
	Ages         []int     `json:"ages"`
	TVCValues    []float64 `json:"tvc_values"`
	NonTVCValues []float64 `json:"non_tvc_values"`
}

// FinalTVC returns the TVC balance at retirement
func (g GrowthTrajectory) FinalTVC() float64 {
	if len(g.TVCValues) == 0 {
		return 0
	}
	return g.TVCValues[len(g.TVCValues)-1]
}

// FinalNonTVC returns the non-TVC balance at retirement
func (g GrowthTrajectory) FinalNonTVC() float64 {
	if len(g.NonTVCValues) == 0 {
		return 0
	}
	return g.NonTVCValues[len(g.NonTVCValues)-1]
}

// TerminalGap is TVC minus non-TVC at the last age of the trajectory
func (g GrowthTrajectory) TerminalGap() float64 {
	return g.FinalTVC() - g.FinalNonTVC()
}

// BreakevenSweep holds the retirement-age value of both vehicles for every candidate starting age
type BreakevenSweep struct {
	StartAges   []int     `json:"start_ages"`
	TVCFinal    []float64 `json:"tvc_final"`
	NonTVCFinal []float64 `json:"non_tvc_final"`
	Difference  []float64 `json:"difference"`

	// BreakevenAge is nil when TVC never catches up within the horizon
	BreakevenAge *int `json:"breakeven_age"`
}

// HasBreakeven reports whether a breakeven starting age exists
func (s BreakevenSweep) HasBreakeven() bool {
	return s.BreakevenAge != nil
}

// MaxAbsDifference returns the largest absolute difference, or 0 for an empty sweep
func (s BreakevenSweep) MaxAbsDifference() float64 {
	max := 0.0
	for _, d := range s.Difference {
		if a := math.Abs(d); a > max {
			max = a
		}
	}
	return max
}

// IsGain reports whether TVC ends at or above non-TVC for start age index i
func (s BreakevenSweep) IsGain(i int) bool {
	return s.Difference[i] >= 0
}

func allFinite(vals ...[]float64) bool {
	for _, vs := range vals {
		for _, v := range vs {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}

// ScenarioResult bundles both views for one set of parameters
type ScenarioResult struct {
	Name       string             `json:"name"`
	Parameters ScenarioParameters `json:"parameters"`
	Trajectory GrowthTrajectory   `json:"trajectory"`
	Sweep      BreakevenSweep     `json:"sweep"`
}

// Finite reports whether every balance in both views is a finite number.
// Extreme fees overflow the compounding to ±Inf and NaN.
func (r ScenarioResult) Finite() bool {
	return allFinite(r.Trajectory.TVCValues, r.Trajectory.NonTVCValues,
		r.Sweep.TVCFinal, r.Sweep.NonTVCFinal, r.Sweep.Difference)
}

// ScenarioComparison is the report envelope handed to formatters
type ScenarioComparison struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Scenarios   []ScenarioResult `json:"scenarios"`
}
