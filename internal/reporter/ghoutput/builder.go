// Package ghoutput appends the line coverage summary to a GitHub Actions
// step output file.
package ghoutput

import (
	"fmt"
	"os"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reporting"
)

// EnvVar names the output file in a workflow step.
const EnvVar = "GITHUB_OUTPUT"

// OutputName is the step output the summary is stored under.
const OutputName = "summary"

type GitHubOutputBuilder struct {
	Path string
}

// NewGitHubOutputBuilder uses path, or the EnvVar file when path is empty.
func NewGitHubOutputBuilder(path string) *GitHubOutputBuilder {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	return &GitHubOutputBuilder{Path: path}
}

func (b *GitHubOutputBuilder) ReportType() string { return "GitHubOutput" }

// Enabled reports whether there is a file to write to.
func (b *GitHubOutputBuilder) Enabled() bool { return b.Path != "" }

// CreateReport appends "summary=<line summary>". It does nothing when no
// output file is configured.
func (b *GitHubOutputBuilder) CreateReport(ctx reporting.IReportContext) error {
	if !b.Enabled() {
		return nil
	}
	var line analyzer.LineSummary
	if result := ctx.ParserResult(); result != nil {
		line = analyzer.LineSummaryOf(result.Report)
	}

	f, err := os.OpenFile(b.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", b.Path, err)
	}
	if _, err := fmt.Fprintf(f, "%s=%s\n", OutputName, line); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", b.Path, err)
	}
	return f.Close()
}
