package output

import (
	"testing"

	"github.com/rpgo/tvc-calculator/internal/domain"
)

func resultWithGap(name string, tvc, nonTVC float64, currentAge int, breakeven *int) domain.ScenarioResult {
	return domain.ScenarioResult{
		Name:       name,
		Parameters: domain.ScenarioParameters{CurrentAge: currentAge, RetirementAge: 65},
		Trajectory: domain.GrowthTrajectory{
			Ages:         []int{currentAge, 65},
			TVCValues:    []float64{1, tvc},
			NonTVCValues: []float64{1, nonTVC},
		},
		Sweep: domain.BreakevenSweep{BreakevenAge: breakeven},
	}
}

func TestAnalyzeScenario_Winner(t *testing.T) {
	be := 41
	cases := []struct {
		res    domain.ScenarioResult
		winner string
		years  int
	}{
		{resultWithGap("tvc", 200, 100, 50, &be), VehicleTVC, 9},
		{resultWithGap("non", 100, 200, 30, &be), VehicleNonTVC, -11},
		{resultWithGap("tie", 100, 100, 30, nil), VehicleTie, 0},
	}
	for _, c := range cases {
		in := AnalyzeScenario(c.res)
		if in.Winner != c.winner {
			t.Fatalf("%s: winner %q, want %q", c.res.Name, in.Winner, c.winner)
		}
		if in.YearsAfterBreakeven != c.years {
			t.Fatalf("%s: years after breakeven %d, want %d", c.res.Name, in.YearsAfterBreakeven, c.years)
		}
	}
}

func TestAnalyzeScenarios_SelectsLargestTVCAdvantage(t *testing.T) {
	comparison := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioResult{
			resultWithGap("Scenario A", 100, 150, 25, nil),
			resultWithGap("Scenario B", 300, 100, 60, nil),
			resultWithGap("Scenario C", 200, 100, 55, nil),
		},
	}

	insights, rec := AnalyzeScenarios(comparison)
	if len(insights) != 3 || insights[0].ScenarioName != "Scenario A" {
		t.Fatalf("insights must keep configuration order: %+v", insights)
	}
	if rec.ScenarioName != "Scenario B" {
		t.Fatalf("expected Scenario B, got %q", rec.ScenarioName)
	}
	if rec.TerminalGap != 200 {
		t.Fatalf("expected gap 200, got %v", rec.TerminalGap)
	}
}

func TestAnalyzeScenarios_Empty(t *testing.T) {
	insights, rec := AnalyzeScenarios(&domain.ScenarioComparison{})
	if len(insights) != 0 || rec.ScenarioName != "" {
		t.Fatalf("expected empty analysis")
	}
}
