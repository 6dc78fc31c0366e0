package reportconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser"
)

var _ parser.ParserConfig = (*Config)(nil)
var _ IReportConfiguration = (*Config)(nil)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gapreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{ReportTypeTextSummary}, cfg.ReportTypes())
	assert.Equal(t, analyzer.OrderByCoverage, cfg.Order())
	assert.Equal(t, analyzer.DefaultOptions(), cfg.AnalyzerOptions())
	assert.Equal(t, logging.Info, cfg.VerbosityLevel())
	assert.Equal(t, ".", cfg.TargetDirectory())
	assert.Equal(t, "coverage-summary.json", cfg.JSONOutputPath())
	assert.True(t, cfg.PackageFilters().IsElementIncludedInReport("anything"))
	assert.Empty(t, cfg.SourceDirectories())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
reports:
  - module-a/target/site/jacoco/jacoco.xml
project_root: /work/app
report_types: [TextSummary, Html]
output_dir: out
min_line_coverage: 80
rank_order: name
top: 5
package_filters: ["+com.acme.*", "-com.acme.gen"]
class_filters: ["-*Test"]
summary_zero_total: complete
ranked_zero_total: empty
verbosity: warning
title: Acme
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"module-a/target/site/jacoco/jacoco.xml"}, cfg.ReportFiles())
	assert.Equal(t, []string{ReportTypeTextSummary, ReportTypeHTML}, cfg.ReportTypes())
	assert.Equal(t, "out", cfg.TargetDirectory())
	assert.Equal(t, filepath.Join("out", "coverage-summary.json"), cfg.JSONOutputPath())
	assert.Equal(t, 80.0, cfg.MinLineCoverage)
	assert.Equal(t, analyzer.OrderByName, cfg.Order())
	assert.Equal(t, 5, cfg.Top)
	assert.Equal(t, analyzer.Options{SummaryZeroTotal: model.ZeroAsComplete, RankedZeroTotal: model.ZeroAsEmpty}, cfg.AnalyzerOptions())
	assert.Equal(t, logging.Warning, cfg.VerbosityLevel())
	assert.Equal(t, "Acme", cfg.Title())
	assert.Equal(t, []string{filepath.Join("/work/app", "src", "main", "java")}, cfg.SourceDirectories())

	assert.True(t, cfg.PackageFilters().IsElementIncludedInReport("com.acme.util"))
	assert.False(t, cfg.PackageFilters().IsElementIncludedInReport("com.acme.gen"))
	assert.False(t, cfg.ClassFilters().IsElementIncludedInReport("com.acme.FooTest"))
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "title: Only a title\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Only a title", cfg.Title())
	assert.Equal(t, analyzer.DefaultOptions(), cfg.AnalyzerOptions())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))

	_, err = Load(writeConfig(t, "reports: [unterminated\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"threshold above 100", func(c *Config) { c.MinLineCoverage = 101 }},
		{"negative threshold", func(c *Config) { c.MinLineCoverage = -1 }},
		{"unknown order", func(c *Config) { c.RankOrder = "size" }},
		{"negative top", func(c *Config) { c.Top = -2 }},
		{"unknown report type", func(c *Config) { c.Types = []string{"Pdf"} }},
		{"unknown zero-total convention", func(c *Config) { c.RankedZeroTotal = "maybe" }},
		{"bad verbosity", func(c *Config) { c.Verbosity = "loud" }},
		{"bad filter", func(c *Config) { c.ClassFilterSet = []string{"noprefix"} }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
