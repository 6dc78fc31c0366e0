package reportconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser/filtering"
)

// DefaultFileName is read from the working directory when no config file is named.
const DefaultFileName = "gapreport.yaml"

// Report type names accepted in ReportTypes.
const (
	ReportTypeTextSummary = "TextSummary"
	ReportTypeJSONSummary = "JsonSummary"
	ReportTypeHTML        = "Html"
)

// Sentinel errors for configuration loading.
var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrInvalidYAML   = errors.New("config: invalid YAML syntax")
)

var validate = validator.New()

// IReportConfiguration defines the configuration the reporters read.
type IReportConfiguration interface {
	ReportFiles() []string
	TargetDirectory() string
	SourceDirectories() []string
	ReportTypes() []string
	VerbosityLevel() logging.VerbosityLevel
	Title() string
}

// Config is the gapreport configuration. Values come from the defaults, then
// the YAML file, then command-line flags.
type Config struct {
	Reports          []string `yaml:"reports"`
	ProjectRoot      string   `yaml:"project_root"`
	SourceDirs       []string `yaml:"source_dirs"`
	Types            []string `yaml:"report_types" validate:"dive,oneof=TextSummary JsonSummary Html"`
	OutputDir        string   `yaml:"output_dir"`
	JSONOut          string   `yaml:"json_out"`
	MinLineCoverage  float64  `yaml:"min_line_coverage" validate:"gte=0,lte=100"`
	RankOrder        string   `yaml:"rank_order" validate:"oneof=coverage name"`
	Top              int      `yaml:"top" validate:"gte=0"`
	PackageFilterSet []string `yaml:"package_filters"`
	ClassFilterSet   []string `yaml:"class_filters"`
	SummaryZeroTotal string   `yaml:"summary_zero_total" validate:"oneof=empty complete"`
	RankedZeroTotal  string   `yaml:"ranked_zero_total" validate:"oneof=empty complete"`
	Verbosity        string   `yaml:"verbosity"`
	ReportTitle      string   `yaml:"title"`
	GitHubOutput     string   `yaml:"github_output"`

	verbosity     logging.VerbosityLevel
	packageFilter filtering.IFilter
	classFilter   filtering.IFilter
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Types:            []string{ReportTypeTextSummary},
		RankOrder:        string(analyzer.OrderByCoverage),
		SummaryZeroTotal: model.ZeroAsEmpty.String(),
		RankedZeroTotal:  model.ZeroAsComplete.String(),
		Verbosity:        logging.Info.String(),
		ReportTitle:      "Coverage Gap Report",
		verbosity:        logging.Info,
		packageFilter:    filtering.MustNoFilter(),
		classFilter:      filtering.MustNoFilter(),
	}
}

// Load reads path over the defaults. An empty path reads DefaultFileName
// when it exists. A named file that does not exist is a model.KindNotFound
// error. The result is not validated; call Validate after applying flags.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, model.NotFound(path, err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return cfg, nil
}

// Validate checks the field constraints, parses the verbosity and compiles
// the filters. It must be called before the accessors are used.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	level, err := logging.ParseVerbosity(c.Verbosity)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.verbosity = level

	if c.packageFilter, err = filtering.NewDefaultFilter(c.PackageFilterSet); err != nil {
		return fmt.Errorf("%w: package filters: %v", ErrInvalidConfig, err)
	}
	if c.classFilter, err = filtering.NewDefaultFilter(c.ClassFilterSet); err != nil {
		return fmt.Errorf("%w: class filters: %v", ErrInvalidConfig, err)
	}
	return nil
}

// PackageFilters implements parser.ParserConfig.
func (c *Config) PackageFilters() filtering.IFilter {
	if c.packageFilter == nil {
		return filtering.MustNoFilter()
	}
	return c.packageFilter
}

// ClassFilters implements parser.ParserConfig.
func (c *Config) ClassFilters() filtering.IFilter {
	if c.classFilter == nil {
		return filtering.MustNoFilter()
	}
	return c.classFilter
}

// AnalyzerOptions returns the zero-total conventions of both aggregate views.
func (c *Config) AnalyzerOptions() analyzer.Options {
	opts := analyzer.DefaultOptions()
	if p, err := model.ParseZeroTotalPolicy(c.SummaryZeroTotal); err == nil {
		opts.SummaryZeroTotal = p
	}
	if p, err := model.ParseZeroTotalPolicy(c.RankedZeroTotal); err == nil {
		opts.RankedZeroTotal = p
	}
	return opts
}

// Order returns the configured rank order.
func (c *Config) Order() analyzer.RankOrder {
	order, err := analyzer.ParseRankOrder(c.RankOrder)
	if err != nil {
		return analyzer.OrderByCoverage
	}
	return order
}

func (c *Config) ReportFiles() []string { return c.Reports }

// TargetDirectory returns the output directory, "." when unset.
func (c *Config) TargetDirectory() string {
	if c.OutputDir == "" {
		return "."
	}
	return c.OutputDir
}

// SourceDirectories returns the configured source directories, or the main
// source directory of the project root when none are configured.
func (c *Config) SourceDirectories() []string {
	if len(c.SourceDirs) > 0 || c.ProjectRoot == "" {
		return c.SourceDirs
	}
	return []string{filepath.Join(c.ProjectRoot, "src", "main", "java")}
}

func (c *Config) ReportTypes() []string                  { return c.Types }
func (c *Config) VerbosityLevel() logging.VerbosityLevel { return c.verbosity }
func (c *Config) Title() string                          { return c.ReportTitle }

// JSONOutputPath returns where the JSON summary is written.
func (c *Config) JSONOutputPath() string {
	if c.JSONOut != "" {
		return c.JSONOut
	}
	return filepath.Join(c.TargetDirectory(), "coverage-summary.json")
}
