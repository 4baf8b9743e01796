package api

import (
	"github.com/rpgo/tvc-calculator/internal/domain"
)

// ProjectionResponse is returned by the projection endpoints.
type ProjectionResponse struct {
	Parameters  domain.ScenarioParameters `json:"parameters"`
	Trajectory  domain.GrowthTrajectory   `json:"trajectory"`
	Sweep       domain.BreakevenSweep     `json:"sweep"`
	TerminalGap float64                   `json:"terminal_gap"`
	Winner      string                    `json:"winner"`
}

// DefaultsResponse describes the dashboard defaults both as fractions and as widget percentages.
type DefaultsResponse struct {
	Parameters domain.ScenarioParameters `json:"parameters"`
	Percent    PercentInputs             `json:"percent"`
	FeeNonTVC  float64                   `json:"fee_non_tvc"`
}

// PercentInputs mirrors the dashboard widgets (7 means 7%).
type PercentInputs struct {
	ExpectedReturn float64 `json:"expected_return"`
	FeeTVC         float64 `json:"fee_tvc"`
	TaxSaving      float64 `json:"tax_saving"`
	CurrentAge     int     `json:"current_age"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
