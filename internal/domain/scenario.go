package domain

// BaseInvestment is the initial contribution modeled for both vehicles
const BaseInvestment = 60000.0

// DefaultRetirementAge is the age at which all projections terminate
const DefaultRetirementAge = 65

// FeeNonTVC is the annual fee of the non-TVC vehicle. It is zero by construction
// and is intentionally not configurable.
const FeeNonTVC = 0.0

// Dashboard defaults (fractions, not percentages)
const (
	DefaultExpectedReturn   = 0.07
	DefaultFeeTVC           = 0.008
	DefaultTaxSavingPercent = 0.17
	DefaultCurrentAge       = 25
)

// ScenarioParameters holds the financial inputs of a single TVC vs non-TVC comparison
type ScenarioParameters struct {
	ExpectedReturn   float64 `yaml:"expected_return" json:"expected_return"`
	FeeTVC           float64 `yaml:"fee_tvc" json:"fee_tvc"`
	TaxSavingPercent float64 `yaml:"tax_saving_percent" json:"tax_saving_percent"`
	CurrentAge       int     `yaml:"current_age" json:"current_age"`
	RetirementAge    int     `yaml:"retirement_age" json:"retirement_age"`
	BaseInvestment   float64 `yaml:"base_investment" json:"base_investment"`
}

// DefaultScenarioParameters returns the parameters the dashboard opens with
func DefaultScenarioParameters() ScenarioParameters {
	return ScenarioParameters{
		ExpectedReturn:   DefaultExpectedReturn,
		FeeTVC:           DefaultFeeTVC,
		TaxSavingPercent: DefaultTaxSavingPercent,
		CurrentAge:       DefaultCurrentAge,
		RetirementAge:    DefaultRetirementAge,
		BaseInvestment:   BaseInvestment,
	}
}

// Years returns the number of growth years until retirement. It may be zero or negative.
func (p ScenarioParameters) Years() int {
	return p.RetirementAge - p.CurrentAge
}

// InitialTVC is the starting TVC balance
func (p ScenarioParameters) InitialTVC() float64 {
	return p.BaseInvestment
}

// InitialNonTVC is the starting non-TVC balance after the tax haircut
func (p ScenarioParameters) InitialNonTVC() float64 {
	return p.BaseInvestment * (1 - p.TaxSavingPercent)
}

// NetGrowthTVC is the per-year growth factor of the TVC vehicle
func (p ScenarioParameters) NetGrowthTVC() float64 {
	return 1 + p.ExpectedReturn - p.FeeTVC
}

// NetGrowthNonTVC is the per-year growth factor of the non-TVC vehicle
func (p ScenarioParameters) NetGrowthNonTVC() float64 {
	return 1 + p.ExpectedReturn - FeeNonTVC
}

// NamedScenario is a configured scenario. Nil fields inherit from Configuration.Defaults.
type NamedScenario struct {
	Name             string   `yaml:"name" json:"name"`
	ExpectedReturn   *float64 `yaml:"expected_return,omitempty" json:"expected_return,omitempty"`
	FeeTVC           *float64 `yaml:"fee_tvc,omitempty" json:"fee_tvc,omitempty"`
	TaxSavingPercent *float64 `yaml:"tax_saving_percent,omitempty" json:"tax_saving_percent,omitempty"`
	CurrentAge       *int     `yaml:"current_age,omitempty" json:"current_age,omitempty"`
	RetirementAge    *int     `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty"`
}

// Resolve merges the scenario overrides onto defaults
func (ns NamedScenario) Resolve(defaults ScenarioParameters) ScenarioParameters {
	p := defaults
	if ns.ExpectedReturn != nil {
		p.ExpectedReturn = *ns.ExpectedReturn
	}
	if ns.FeeTVC != nil {
		p.FeeTVC = *ns.FeeTVC
	}
	if ns.TaxSavingPercent != nil {
		p.TaxSavingPercent = *ns.TaxSavingPercent
	}
	if ns.CurrentAge != nil {
		p.CurrentAge = *ns.CurrentAge
	}
	if ns.RetirementAge != nil {
		p.RetirementAge = *ns.RetirementAge
	}
	return p
}

// Configuration is the top-level YAML document
type Configuration struct {
	Defaults  ScenarioParameters `yaml:"defaults" json:"defaults"`
	Scenarios []NamedScenario    `yaml:"scenarios" json:"scenarios"`
}
