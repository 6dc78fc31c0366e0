// Package jsonreport writes the coverage summary as a JSON file.
package jsonreport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reporting"
)

// Document is the JSON layout. The line fields sit at the top level so
// scripts reading only those keep working.
type Document struct {
	analyzer.LineSummary
	Summary analyzer.Summary        `json:"summary"`
	Classes []analyzer.ClassSummary `json:"classes"`
	Gaps    *analyzer.GapReport     `json:"gaps,omitempty"`
}

// JsonReportBuilder writes a Document to a file.
type JsonReportBuilder struct {
	OutputPath string
}

func NewJsonReportBuilder(outputPath string) *JsonReportBuilder {
	return &JsonReportBuilder{OutputPath: outputPath}
}

func (b *JsonReportBuilder) ReportType() string { return "JsonSummary" }

// NewDocument collects the document from the context.
func NewDocument(ctx reporting.IReportContext) Document {
	var line analyzer.LineSummary
	if result := ctx.ParserResult(); result != nil {
		line = analyzer.LineSummaryOf(result.Report)
	}
	return Document{
		LineSummary: line,
		Summary:     ctx.Summary(),
		Classes:     ctx.Ranked(),
		Gaps:        ctx.Gaps(),
	}
}

// CreateReport writes the document, creating the parent directory.
func (b *JsonReportBuilder) CreateReport(ctx reporting.IReportContext) error {
	data, err := json.MarshalIndent(NewDocument(ctx), "", "  ")
	if err != nil {
		return fmt.Errorf("encode json summary: %w", err)
	}
	if dir := filepath.Dir(b.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(b.OutputPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write json summary %s: %w", b.OutputPath, err)
	}
	return nil
}
