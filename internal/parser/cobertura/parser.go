// Package cobertura builds the coverage model from Cobertura XML reports.
//
// Cobertura records hit counts per line rather than instruction counts, so
// each line is mapped to a single instruction: covered when hits > 0, missed
// otherwise.
package cobertura

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser"
)

// CoberturaParser implements the parser.IParser interface for Cobertura XML reports.
type CoberturaParser struct {
}

// NewCoberturaParser creates a new CoberturaParser.
func NewCoberturaParser() parser.IParser {
	return &CoberturaParser{}
}

func init() {
	parser.RegisterParser(NewCoberturaParser())
}

// Name returns the name of the parser.
func (cp *CoberturaParser) Name() string {
	return "Cobertura"
}

// SupportsRootElement accepts documents rooted at <coverage>.
func (cp *CoberturaParser) SupportsRootElement(name string) bool {
	return name == "coverage"
}

// Parse processes the Cobertura XML document and transforms it into the coverage model.
func (cp *CoberturaParser) Parse(data []byte, resource string, config parser.ParserConfig) (*parser.ParserResult, error) {
	var rawReport inputxml.CoberturaRoot
	if err := parser.DecodeXML(data, &rawReport); err != nil {
		return nil, model.Malformed(resource, err)
	}
	if config == nil {
		config = parser.NoFilters
	}

	report := &model.CoverageReport{
		Instructions: model.CoverageCounter{Type: model.CounterInstruction},
		Branches:     model.CoverageCounter{Type: model.CounterBranch},
	}
	for _, pkgXML := range rawReport.Packages.Package {
		cp.processPackageXML(pkgXML, report, config)
	}
	slog.Debug("Parsed Cobertura report", "resource", resource, "classes", len(report.Classes))

	var timestamp *time.Time
	if ts := cp.processTimestamp(rawReport.Timestamp); ts > 0 {
		t := time.Unix(ts, 0)
		timestamp = &t
	}

	return &parser.ParserResult{
		Report:                 report,
		SourceDirectories:      rawReport.Sources.Source,
		SupportsBranchCoverage: true,
		ParserName:             cp.Name(),
		Timestamp:              timestamp,
	}, nil
}

// processTimestamp accepts seconds or milliseconds since the epoch.
func (cp *CoberturaParser) processTimestamp(rawTimestamp string) int64 {
	if rawTimestamp == "" {
		return 0
	}
	parsedTs, err := strconv.ParseInt(rawTimestamp, 10, 64)
	if err != nil {
		return 0
	}
	// Anything past the year 5000 in seconds is a millisecond value.
	if parsedTs > 95617584000 {
		parsedTs /= 1000
	}
	return parsedTs
}
