package output

import (
	"fmt"

	"github.com/rpgo/tvc-calculator/internal/domain"
)

// DefaultAssumptions lists modeling simplifications rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Non-TVC vehicle carries no ongoing fee",
	"Tax saving is applied once, to the non-TVC initial contribution only",
	"Single lump-sum contribution, no further deposits",
	"Constant annual return; no inflation adjustment",
	"No tax-code modeling on withdrawals",
}

// ParameterLines describes the inputs of one scenario in display form
func ParameterLines(p domain.ScenarioParameters) []string {
	return []string{
		fmt.Sprintf("Expected annual return before fees: %s", FormatPercentage(p.ExpectedReturn)),
		fmt.Sprintf("TVC annual fee: %s", FormatPercentage(p.FeeTVC)),
		fmt.Sprintf("Tax saving on non-TVC initial contribution: %s", FormatPercentage(p.TaxSavingPercent)),
		fmt.Sprintf("Initial investment: %s (non-TVC after tax: %s)", FormatCurrency(p.InitialTVC()), FormatCurrency(p.InitialNonTVC())),
		fmt.Sprintf("Current age %d, retirement age %d", p.CurrentAge, p.RetirementAge),
	}
}

// GenerateAssumptions creates the parameter list for one scenario followed by DefaultAssumptions
func GenerateAssumptions(p domain.ScenarioParameters) []string {
	return append(ParameterLines(p), DefaultAssumptions...)
}
