package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/tvc-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidParameters is wrapped by every parameter bounds violation
var ErrInvalidParameters = errors.New("invalid scenario parameters")

// MaxExpectedReturn is the upper bound of the expected annual return (fraction)
const MaxExpectedReturn = 0.15

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML (JSON is accepted as a YAML subset). Keys absent from the
// document keep the dashboard defaults.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{Defaults: domain.DefaultScenarioParameters()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the defaults and every resolved scenario
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateParameters(config.Defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: scenario name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		if err := ip.ValidateParameters(scenario.Resolve(config.Defaults)); err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
	}

	return nil
}

// ValidateParameters checks basic numeric bounds. A current age at or past the
// retirement age is accepted; the engine produces empty sweeps for it.
func (ip *InputParser) ValidateParameters(p domain.ScenarioParameters) error {
	if p.ExpectedReturn < 0 || p.ExpectedReturn > MaxExpectedReturn {
		return fmt.Errorf("%w: expected return must be between 0 and 15%%, got %.4f", ErrInvalidParameters, p.ExpectedReturn)
	}
	if p.FeeTVC < 0 {
		return fmt.Errorf("%w: TVC fee cannot be negative, got %.4f", ErrInvalidParameters, p.FeeTVC)
	}
	if p.TaxSavingPercent < 0 || p.TaxSavingPercent > 1 {
		return fmt.Errorf("%w: tax saving percent must be between 0 and 1, got %.4f", ErrInvalidParameters, p.TaxSavingPercent)
	}
	if p.CurrentAge < 0 {
		return fmt.Errorf("%w: current age cannot be negative, got %d", ErrInvalidParameters, p.CurrentAge)
	}
	if p.RetirementAge <= 0 {
		return fmt.Errorf("%w: retirement age must be positive, got %d", ErrInvalidParameters, p.RetirementAge)
	}
	if p.BaseInvestment <= 0 {
		return fmt.Errorf("%w: base investment must be positive, got %.2f", ErrInvalidParameters, p.BaseInvestment)
	}
	return nil
}

// ParametersFromPercent builds parameters from dashboard-style percentage inputs
// (7 means 7%). Retirement age and base investment use the fixed defaults.
func ParametersFromPercent(returnPct, feePct, taxSavingPct float64, currentAge int) domain.ScenarioParameters {
	return domain.ScenarioParameters{
		ExpectedReturn:   returnPct / 100,
		FeeTVC:           feePct / 100,
		TaxSavingPercent: taxSavingPct / 100,
		CurrentAge:       currentAge,
		RetirementAge:    domain.DefaultRetirementAge,
		BaseInvestment:   domain.BaseInvestment,
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	lateStart := 45
	noTaxSaving := 0.0
	lowFee := 0.002

	return &domain.Configuration{
		Defaults: domain.DefaultScenarioParameters(),
		Scenarios: []domain.NamedScenario{
			{Name: "Start at 25"},
			{Name: "Start at 45", CurrentAge: &lateStart},
			{Name: "Low-fee TVC", FeeTVC: &lowFee},
			{Name: "No tax saving", TaxSavingPercent: &noTaxSaving},
		},
	}
}
