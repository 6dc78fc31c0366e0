package parser

import (
	"time"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// ParserResult holds the model built from a single coverage report.
type ParserResult struct {
	Report                 *model.CoverageReport
	SourceDirectories      []string
	SupportsBranchCoverage bool
	ParserName             string
	Timestamp              *time.Time
}

// IParser defines the contract for all coverage report parsers.
type IParser interface {
	Name() string
	// SupportsRootElement reports whether the parser handles documents whose
	// root element has the given local name.
	SupportsRootElement(name string) bool
	// Parse builds the coverage model from the raw report. resource names the
	// input in error messages.
	Parse(data []byte, resource string, config ParserConfig) (*ParserResult, error)
}
