package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/tvc-calculator/internal/domain"
)

// DefaultScenarioName labels the scenario built from configuration defaults when none are listed
const DefaultScenarioName = "Default"

// ErrNonFiniteProjection is returned when the parameters overflow the projected balances
var ErrNonFiniteProjection = errors.New("projection overflowed to non-finite values")

// CalculationEngine orchestrates trajectory and breakeven calculations
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario calculates both the growth trajectory and the breakeven sweep for one set of parameters
func (ce *CalculationEngine) RunScenario(ctx context.Context, name string, params domain.ScenarioParameters) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ce.Logger.Debugf("scenario %q: return=%.4f fee_tvc=%.4f tax_saving=%.4f ages=%d..%d base=%.2f",
		name, params.ExpectedReturn, params.FeeTVC, params.TaxSavingPercent,
		params.CurrentAge, params.RetirementAge, params.BaseInvestment)

	trajectory := ComputeGrowthTrajectory(params)
	sweep := ComputeBreakevenSweep(params)

	result := &domain.ScenarioResult{
		Name:       name,
		Parameters: params,
		Trajectory: trajectory,
		Sweep:      sweep,
	}
	if !result.Finite() {
		ce.Logger.Warnf("scenario %q: balances overflow with return=%g fee_tvc=%g", name, params.ExpectedReturn, params.FeeTVC)
		return nil, fmt.Errorf("scenario %q: %w", name, ErrNonFiniteProjection)
	}

	if params.Years() <= 0 {
		ce.Logger.Warnf("scenario %q: current age %d is not before retirement age %d; no growth years",
			name, params.CurrentAge, params.RetirementAge)
	}

	if ce.Debug {
		for i, age := range trajectory.Ages {
			ce.Logger.Debugf("  age %d: tvc=%.2f non_tvc=%.2f", age, trajectory.TVCValues[i], trajectory.NonTVCValues[i])
		}
	}

	if sweep.BreakevenAge != nil {
		ce.Logger.Infof("scenario %q: breakeven at starting age %d", name, *sweep.BreakevenAge)
	} else {
		ce.Logger.Infof("scenario %q: TVC does not break even before retirement", name)
	}

	return result, nil
}

// RunScenarios runs every configured scenario against the configuration defaults.
// A configuration with no scenarios runs the defaults alone.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := config.Scenarios
	if len(scenarios) == 0 {
		scenarios = []domain.NamedScenario{{Name: DefaultScenarioName}}
	}

	results := make([]domain.ScenarioResult, len(scenarios))
	for i, scenario := range scenarios {
		result, err := ce.RunScenario(ctx, scenario.Name, scenario.Resolve(config.Defaults))
		if err != nil {
			return nil, fmt.Errorf("RunScenario %q failed: %w", scenario.Name, err)
		}
		results[i] = *result
	}

	return &domain.ScenarioComparison{
		GeneratedAt: nowFunc(),
		Scenarios:   results,
	}, nil
}
