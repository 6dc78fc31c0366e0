// Package jacoco builds the coverage model from JaCoCo XML reports.
package jacoco

import (
	"log/slog"
	"time"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser"
)

// JacocoParser implements the parser.IParser interface for JaCoCo XML reports.
type JacocoParser struct{}

// NewJacocoParser creates a new JacocoParser.
func NewJacocoParser() parser.IParser {
	return &JacocoParser{}
}

func init() {
	parser.RegisterParser(NewJacocoParser())
}

// Name returns the name of the parser.
func (jp *JacocoParser) Name() string {
	return "JaCoCo"
}

// SupportsRootElement accepts documents rooted at <report>.
func (jp *JacocoParser) SupportsRootElement(name string) bool {
	return name == "report"
}

// Parse decodes the report and builds the coverage model.
func (jp *JacocoParser) Parse(data []byte, resource string, config parser.ParserConfig) (*parser.ParserResult, error) {
	var raw inputxml.JacocoReport
	if err := parser.DecodeXML(data, &raw); err != nil {
		return nil, model.Malformed(resource, err)
	}

	report := newReportBuilder(config).build(&raw)
	slog.Debug("Parsed JaCoCo report",
		"resource", resource,
		"classes", len(report.Classes),
		"instructions", report.Instructions.Total(),
		"branches", report.Branches.Total())

	return &parser.ParserResult{
		Report:                 report,
		SupportsBranchCoverage: true,
		ParserName:             jp.Name(),
		Timestamp:              sessionStart(raw.Sessions),
	}, nil
}

// sessionStart returns the earliest session start, or nil without sessions.
func sessionStart(sessions []inputxml.JacocoSessionInfo) *time.Time {
	var earliest int64
	for _, s := range sessions {
		if s.Start > 0 && (earliest == 0 || s.Start < earliest) {
			earliest = s.Start
		}
	}
	if earliest == 0 {
		return nil
	}
	t := time.UnixMilli(earliest)
	return &t
}
