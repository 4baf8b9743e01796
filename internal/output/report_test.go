package output_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/tvc-calculator/internal/calculation"
	"github.com/rpgo/tvc-calculator/internal/config"
	"github.com/rpgo/tvc-calculator/internal/domain"
	"github.com/rpgo/tvc-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	p := domain.DefaultScenarioParameters()
	res, err := calculation.NewCalculationEngine().RunScenario(context.Background(), "Baseline", p)
	require.NoError(t, err)
	return &domain.ScenarioComparison{
		GeneratedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Scenarios:   []domain.ScenarioResult{*res},
	}
}

func TestGenerateReport_Writer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(sampleComparison(t), "json", &buf))
	assert.Contains(t, buf.String(), `"name": "Baseline"`)

	buf.Reset()
	require.NoError(t, output.GenerateReport(sampleComparison(t), "text", &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "TVC VS NON-TVC PROJECTION"))
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	err := output.GenerateReport(&domain.ScenarioComparison{}, "definitely-not-a-format", &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	msg := err.Error()
	assert.Contains(t, msg, "unsupported report format")
	assert.Contains(t, msg, "Try one of:")
	assert.Contains(t, msg, "trajectory-csv")
}

func TestGenerateReportFiles_Single(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	paths, err := output.GenerateReportFiles(sampleComparison(t), "csv", dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "tvc_report_20250101_120000_csv.csv"), paths[0])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Scenario,StartAge"))
}

func TestGenerateReportFiles_All(t *testing.T) {
	dir := t.TempDir()
	paths, err := output.GenerateReportFiles(sampleComparison(t), output.FormatAll, dir)
	require.NoError(t, err)
	assert.Len(t, paths, len(output.AvailableFormatterNames()))

	exts := map[string]int{}
	for _, p := range paths {
		_, err := os.Stat(p)
		require.NoError(t, err)
		exts[filepath.Ext(p)]++
	}
	assert.Equal(t, map[string]int{".txt": 2, ".csv": 2, ".json": 1, ".html": 1}, exts)
}

func TestGenerateReportFiles_Unsupported(t *testing.T) {
	_, err := output.GenerateReportFiles(sampleComparison(t), "pdf", t.TempDir())
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestSaveConfiguration(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
