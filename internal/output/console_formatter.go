package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/tvc-calculator/internal/domain"
)

// ConsoleFormatter renders both views of every scenario as plain-text tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "TVC VS NON-TVC PROJECTION")
	fmt.Fprintln(&buf, "================================")

	for _, sc := range results.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Scenario: %s\n", sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("-", 10+len(sc.Name)))
		for _, a := range ParameterLines(sc.Parameters) {
			fmt.Fprintf(&buf, "  %s\n", a)
		}

		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Fund growth from current age to retirement")
		fmt.Fprintf(&buf, "%5s %18s %18s %18s\n", "Age", "TVC", "Non-TVC", "Gap")
		g := sc.Trajectory
		for i, age := range g.Ages {
			fmt.Fprintf(&buf, "%5d %18s %18s %18s\n", age,
				FormatCurrency(g.TVCValues[i]),
				FormatCurrency(g.NonTVCValues[i]),
				FormatCurrency(g.TVCValues[i]-g.NonTVCValues[i]))
		}
		if len(g.Ages) > 0 {
			fmt.Fprintf(&buf, "Gap at age %d: %s\n", g.Ages[len(g.Ages)-1], FormatCurrencyWhole(g.TerminalGap()))
		}

		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Portfolio value at age %d vs initial investment age\n", sc.Parameters.RetirementAge)
		s := sc.Sweep
		if len(s.StartAges) == 0 {
			fmt.Fprintln(&buf, "  (no starting ages before retirement)")
		} else {
			fmt.Fprintf(&buf, "%5s %18s %18s %18s\n", "Start", "TVC Final", "Non-TVC Final", "Difference")
			for i, age := range s.StartAges {
				marker := "-"
				if s.IsGain(i) {
					marker = "+"
				}
				fmt.Fprintf(&buf, "%5d %18s %18s %18s %s\n", age,
					FormatCurrency(s.TVCFinal[i]),
					FormatCurrency(s.NonTVCFinal[i]),
					FormatCurrency(s.Difference[i]),
					marker)
			}
		}
		if s.BreakevenAge != nil {
			fmt.Fprintf(&buf, "Breakeven at age %d\n", *s.BreakevenAge)
		} else {
			fmt.Fprintln(&buf, "No breakeven: TVC does not catch up before retirement")
		}
	}
	return buf.Bytes(), nil
}

// SummaryFormatter provides a concise one-line-per-scenario summary.
type SummaryFormatter struct{}

func (s SummaryFormatter) Name() string { return "summary" }

func (s SummaryFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "TVC SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	insights, rec := AnalyzeScenarios(results)
	for _, in := range insights {
		fmt.Fprintf(&buf, "%s: Winner=%s Gap=%s Breakeven=%s\n",
			in.ScenarioName, in.Winner, FormatCurrency(in.TerminalGap), FormatAge(in.BreakevenAge))
	}
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best TVC outcome: %s (gap %s)\n", rec.ScenarioName, FormatCurrency(rec.TerminalGap))
	}
	return buf.Bytes(), nil
}
