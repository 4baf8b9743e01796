package calculation

import (
	"math"

	"github.com/rpgo/tvc-calculator/internal/domain"
)

// ComputeGrowthTrajectory projects both vehicles year by year from the current age to retirement.
// Balances are advanced with a forward recurrence so both series share the same per-year
// rounding; the result has Years()+1 points, or a single point when Years() <= 0.
func ComputeGrowthTrajectory(params domain.ScenarioParameters) domain.GrowthTrajectory {
	years := params.Years()
	if years < 0 {
		years = 0
	}

	ages := make([]int, years+1)
	tvc := make([]float64, years+1)
	nonTVC := make([]float64, years+1)

	ages[0] = params.CurrentAge
	tvc[0] = params.InitialTVC()
	nonTVC[0] = params.InitialNonTVC()

	growthTVC := params.NetGrowthTVC()
	growthNonTVC := params.NetGrowthNonTVC()

	for i := 1; i <= years; i++ {
		ages[i] = params.CurrentAge + i
		tvc[i] = tvc[i-1] * growthTVC
		nonTVC[i] = nonTVC[i-1] * growthNonTVC
	}

	return domain.GrowthTrajectory{
		Ages:         ages,
		TVCValues:    tvc,
		NonTVCValues: nonTVC,
	}
}

// ComputeBreakevenSweep computes the retirement-age value of both vehicles for every starting
// age in [CurrentAge, RetirementAge) using the closed-form compound value, and locates the
// breakeven starting age. The sweep is empty when CurrentAge >= RetirementAge.
func ComputeBreakevenSweep(params domain.ScenarioParameters) domain.BreakevenSweep {
	n := params.Years()
	if n < 0 {
		n = 0
	}

	sweep := domain.BreakevenSweep{
		StartAges:   make([]int, 0, n),
		TVCFinal:    make([]float64, 0, n),
		NonTVCFinal: make([]float64, 0, n),
		Difference:  make([]float64, 0, n),
	}

	growthTVC := params.NetGrowthTVC()
	growthNonTVC := params.NetGrowthNonTVC()

	for startAge := params.CurrentAge; startAge < params.RetirementAge; startAge++ {
		years := float64(params.RetirementAge - startAge)
		tvcValue := FinalValue(params.InitialTVC(), growthTVC, years)
		nonTVCValue := FinalValue(params.InitialNonTVC(), growthNonTVC, years)

		sweep.StartAges = append(sweep.StartAges, startAge)
		sweep.TVCFinal = append(sweep.TVCFinal, tvcValue)
		sweep.NonTVCFinal = append(sweep.NonTVCFinal, nonTVCValue)
		sweep.Difference = append(sweep.Difference, tvcValue-nonTVCValue)
	}

	sweep.BreakevenAge = FindBreakevenAge(sweep.StartAges, sweep.Difference)
	return sweep
}

// FinalValue is the closed-form compounded value of initial after years at the given growth factor
func FinalValue(initial, growth, years float64) float64 {
	return initial * math.Pow(growth, years)
}
