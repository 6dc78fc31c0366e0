// Package quality runs a fixed battery of pattern-based detectors over source
// text: code smells, security patterns, style violations and a naive
// complexity count. It never looks at coverage data.
package quality

import (
	"fmt"
	"log/slog"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/filereader"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/language"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// Source is the input shared by all detectors.
type Source struct {
	File    string
	Text    string
	Lines   []string
	Members []model.MemberDeclaration
}

// NewSource splits text into lines and recovers its member declarations.
func NewSource(file, text string) *Source {
	return &Source{
		File:    file,
		Text:    text,
		Lines:   filereader.SplitLines(text),
		Members: language.ScanMembers(text),
	}
}

// Detector is one pattern check. Detect may return any number of findings.
type Detector struct {
	Name   string
	Detect func(src *Source) []model.QualityFinding
}

// DefaultDetectors is the battery run by Analyze.
var DefaultDetectors = []Detector{
	{Name: RuleLongMethod, Detect: detectLongMethods},
	{Name: RuleMagicNumbers, Detect: detectMagicNumbers},
	{Name: RuleSQLInjection, Detect: detectSQLInjection},
	{Name: RuleHardcodedCredentials, Detect: detectHardcodedCredentials},
	{Name: RuleLineTooLong, Detect: detectLongLines},
	{Name: RuleMissingDocumentation, Detect: detectMissingDocumentation},
}

// Summary counts findings by severity.
type Summary struct {
	Total      int                    `json:"total_issues"`
	BySeverity map[model.Severity]int `json:"by_severity"`
}

// Report is the quality analysis of one file.
type Report struct {
	File       string                 `json:"file"`
	Findings   []model.QualityFinding `json:"findings"`
	Complexity int                    `json:"cyclomatic_complexity"`
	Summary    Summary                `json:"summary"`
}

// CodeSmells returns the code smell findings.
func (r *Report) CodeSmells() []model.QualityFinding {
	return r.byKind(model.CodeSmell)
}

// SecurityIssues returns the security findings.
func (r *Report) SecurityIssues() []model.QualityFinding {
	return r.byKind(model.SecurityIssue)
}

// StyleViolations returns the style findings.
func (r *Report) StyleViolations() []model.QualityFinding {
	return r.byKind(model.StyleViolation)
}

// BySeverity returns the findings of one severity tier.
func (r *Report) BySeverity(severity model.Severity) []model.QualityFinding {
	var out []model.QualityFinding
	for _, f := range r.Findings {
		if f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) byKind(kind model.FindingKind) []model.QualityFinding {
	var out []model.QualityFinding
	for _, f := range r.Findings {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

// Analyze runs DefaultDetectors and the complexity count over text.
func Analyze(file, text string) Report {
	return AnalyzeWith(file, text, DefaultDetectors)
}

// AnalyzeWith runs the given detectors over text. A detector that panics is
// logged and contributes no findings; the others still run.
func AnalyzeWith(file, text string, detectors []Detector) Report {
	src := NewSource(file, text)
	report := Report{File: file, Findings: []model.QualityFinding{}}

	for _, d := range detectors {
		report.Findings = append(report.Findings, runDetector(d, src)...)
	}
	report.Complexity = ComplexityProxy(src.Lines)
	report.Summary = summarize(report.Findings)
	return report
}

// ScanFile reads the file at path tolerantly and analyzes it. A missing file
// yields a model.KindNotFound error.
func ScanFile(path string) (Report, error) {
	return ScanFileWith(filereader.DiskReader{}, path)
}

// ScanFileWith is ScanFile over an arbitrary reader.
func ScanFileWith(reader filereader.FileReader, path string) (Report, error) {
	text, err := reader.ReadFile(path)
	if err != nil {
		return Report{File: path}, err
	}
	return Analyze(path, text), nil
}

func runDetector(d Detector, src *Source) (findings []model.QualityFinding) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Quality detector failed; skipping it.", "detector", d.Name, "file", src.File, "panic", fmt.Sprint(r))
			findings = nil
		}
	}()
	return d.Detect(src)
}

func summarize(findings []model.QualityFinding) Summary {
	summary := Summary{Total: len(findings), BySeverity: make(map[model.Severity]int, len(model.Severities))}
	for _, s := range model.Severities {
		summary.BySeverity[s] = 0
	}
	for _, f := range findings {
		summary.BySeverity[f.Severity]++
	}
	return summary
}
