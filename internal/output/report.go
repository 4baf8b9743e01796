package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpgo/tvc-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// FormatAll is the pseudo-format that writes every registered formatter to disk.
const FormatAll = "all"

// GenerateReport renders results in the named format to w.
func GenerateReport(results *domain.ScenarioComparison, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("tvc_report_%s_%s.%s", results.GeneratedAt.Format("20060102_150405"), strings.ReplaceAll(f.Name(), "-", "_"), ExtensionFor(f))
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateReportFiles writes the named format (or FormatAll) into dir and returns the written paths.
func GenerateReportFiles(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == FormatAll {
		formatters = builtInFormatters
	} else if f := GetFormatterByName(format); f != nil {
		formatters = []Formatter{f}
	} else {
		return nil, unsupported(format)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(formatters))
	for _, f := range formatters {
		p, err := WriteFormatted(f, results, dir)
		if err != nil {
			return paths, fmt.Errorf("%s formatter: %w", f.Name(), err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// enrich error with available formatters and aliases
func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
