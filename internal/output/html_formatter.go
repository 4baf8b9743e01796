package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"strconv"

	calc "github.com/rpgo/tvc-calculator/internal/calculation"
	"github.com/rpgo/tvc-calculator/internal/domain"
)

// HTMLFormatter produces a self-contained HTML dashboard with growth and breakeven charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"currWhole": FormatCurrencyWhole,
	"pct":       FormatPercentage,
	"age":       FormatAge,
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}).Parse(htmlTemplateSource))

// point is an x/y pair in Chart.js linear-axis form
type point struct {
	X int     `json:"x"`
	Y float64 `json:"y"`
}

// chartData carries everything the page script needs to draw one scenario
type chartData struct {
	ID             string    `json:"id"`
	TVCGrowth      []point   `json:"tvc_growth"`
	NonTVCGrowth   []point   `json:"non_tvc_growth"`
	GapLine        []point   `json:"gap_line"`
	GapLabel       string    `json:"gap_label"`
	StartAges      []int     `json:"start_ages"`
	TVCFinal       []float64 `json:"tvc_final"`
	NonTVCFinal    []float64 `json:"non_tvc_final"`
	Difference     []float64 `json:"difference"`
	BarColors      []string  `json:"bar_colors"`
	DiffLimit      float64   `json:"diff_limit"`
	BreakevenIndex int       `json:"breakeven_index"`
	BreakevenLabel string    `json:"breakeven_label"`
	RetirementAge  int       `json:"retirement_age"`
}

type htmlScenario struct {
	domain.ScenarioResult
	Insight     Insight
	Assumptions []string
	Chart       chartData
}

func buildChartData(i int, sc domain.ScenarioResult) chartData {
	g := sc.Trajectory
	s := sc.Sweep
	cd := chartData{
		ID:             "scenario-" + strconv.Itoa(i),
		StartAges:      s.StartAges,
		TVCFinal:       s.TVCFinal,
		NonTVCFinal:    s.NonTVCFinal,
		Difference:     s.Difference,
		DiffLimit:      s.MaxAbsDifference() * 1.2,
		BreakevenIndex: calc.BreakevenIndex(s.StartAges, s.BreakevenAge),
		RetirementAge:  sc.Parameters.RetirementAge,
	}
	for j, age := range g.Ages {
		cd.TVCGrowth = append(cd.TVCGrowth, point{age, g.TVCValues[j]})
		cd.NonTVCGrowth = append(cd.NonTVCGrowth, point{age, g.NonTVCValues[j]})
	}
	if n := len(g.Ages); n > 0 {
		last := g.Ages[n-1]
		cd.GapLine = []point{{last, g.FinalNonTVC()}, {last, g.FinalTVC()}}
		cd.GapLabel = FormatCurrencyWhole(g.TerminalGap())
	}
	for j := range s.Difference {
		if s.IsGain(j) {
			cd.BarColors = append(cd.BarColors, "rgba(0,128,0,0.6)")
		} else {
			cd.BarColors = append(cd.BarColors, "rgba(220,0,0,0.6)")
		}
	}
	if s.BreakevenAge != nil {
		cd.BreakevenLabel = "Breakeven at age " + strconv.Itoa(*s.BreakevenAge)
	}
	return cd
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	insights, rec := AnalyzeScenarios(results)

	scenarios := make([]htmlScenario, len(results.Scenarios))
	for i, sc := range results.Scenarios {
		scenarios[i] = htmlScenario{
			ScenarioResult: sc,
			Insight:        insights[i],
			Assumptions:    ParameterLines(sc.Parameters),
			Chart:          buildChartData(i, sc),
		}
	}

	data := struct {
		*domain.ScenarioComparison
		Views          []htmlScenario
		Recommendation Recommendation
		Assumptions    []string
	}{results, scenarios, rec, DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
