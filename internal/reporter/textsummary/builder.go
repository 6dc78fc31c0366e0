// Package textsummary renders the coverage summary for a terminal.
package textsummary

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reporting"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/utils"
)

// MaxMissedLines is the number of missed lines printed per class.
const MaxMissedLines = 10

// DefaultTop is the number of classes listed when Top is not set.
const DefaultTop = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	lowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	midStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706"))
	highStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#059669"))
)

// TextReportBuilder writes a plain or coloured text summary.
type TextReportBuilder struct {
	out   io.Writer
	color bool
	// Top caps the uncovered class listing; 0 uses DefaultTop, negative lists all.
	Top int
}

// NewTextReportBuilder writes to out, with colour when out is a terminal.
func NewTextReportBuilder(out io.Writer) *TextReportBuilder {
	return &TextReportBuilder{out: out, color: isTerminal(out)}
}

// WithColor forces colour on or off.
func (b *TextReportBuilder) WithColor(color bool) *TextReportBuilder {
	b.color = color
	return b
}

func (b *TextReportBuilder) ReportType() string { return "TextSummary" }

func (b *TextReportBuilder) CreateReport(ctx reporting.IReportContext) error {
	var sb strings.Builder
	summary := ctx.Summary()

	title := "Coverage Summary"
	if cfg := ctx.ReportConfiguration(); cfg != nil && cfg.Title() != "" {
		title = cfg.Title()
	}
	sb.WriteString(b.paint(titleStyle, title) + "\n")

	if summary.ReportName != "" {
		b.row(&sb, "Report:", summary.ReportName)
	}
	b.row(&sb, "Line coverage:", fmt.Sprintf("%s (%d of %d instructions)",
		b.percent(summary.LineCoveragePercentage), summary.CoveredInstructions, summary.TotalInstructions))
	if summary.TotalBranches > 0 {
		b.row(&sb, "Branch coverage:", fmt.Sprintf("%s (%d of %d branches)",
			b.percent(summary.BranchCoveragePercentage), summary.CoveredBranches, summary.TotalBranches))
	}
	b.row(&sb, "Classes:", fmt.Sprintf("%d (%d with missed lines)", summary.TotalClasses, summary.TotalUncoveredClasses))

	b.writeTopUncovered(&sb, summary, ctx.Ranked())
	if gaps := ctx.Gaps(); gaps != nil {
		b.writeGaps(&sb, gaps)
	}

	_, err := io.WriteString(b.out, sb.String())
	return err
}

func (b *TextReportBuilder) writeTopUncovered(sb *strings.Builder, summary analyzer.Summary, ranked []analyzer.ClassSummary) {
	summary.UncoveredClasses = withMissedLines(ranked)
	top := b.Top
	if top == 0 {
		top = DefaultTop
	}
	classes := analyzer.TopUncovered(summary, top, MaxMissedLines)
	if len(classes) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n%s\n", b.paint(titleStyle, fmt.Sprintf("Top %d uncovered classes:", len(classes))))
	width := 0
	for _, c := range classes {
		width = max(width, len(c.FullName()))
	}
	for i, c := range classes {
		lines := make([]string, len(c.MissedLines))
		for j, nr := range c.MissedLines {
			lines[j] = strconv.Itoa(nr)
		}
		fmt.Fprintf(sb, "%3d. %-*s %s  %s %s\n", i+1, width, c.FullName(),
			b.percent(c.CoveragePercentage), b.paint(labelStyle, "missed lines:"), strings.Join(lines, ", "))
	}
}

func (b *TextReportBuilder) writeGaps(sb *strings.Builder, gaps *analyzer.GapReport) {
	if len(gaps.Classes) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s\n", b.paint(titleStyle, "Likely uncovered members:"))
	for _, cls := range gaps.Classes {
		fmt.Fprintf(sb, "  %s\n", cls.Class.FullName())
		if cls.Error != "" {
			fmt.Fprintf(sb, "    %s %s\n", b.paint(lowStyle, "source unavailable:"), cls.Error)
			continue
		}
		if len(cls.Members) == 0 {
			fmt.Fprintf(sb, "    %s\n", b.paint(labelStyle, "no member near a missed line"))
			continue
		}
		for _, m := range cls.Members {
			fmt.Fprintf(sb, "    line %-5d %s %s\n", m.Member.Line, utils.ShortSignature(m.Member.Signature),
				b.paint(labelStyle, fmt.Sprintf("(missed line %d)", m.NearestMissedLine)))
		}
	}
	if gaps.MissingSources > 0 {
		fmt.Fprintf(sb, "  %d source file(s) not found\n", gaps.MissingSources)
	}
}

func (b *TextReportBuilder) row(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "  %s %s\n", b.paint(labelStyle, fmt.Sprintf("%-17s", label)), value)
}

func (b *TextReportBuilder) percent(p float64) string {
	text := fmt.Sprintf("%6.2f%%", p)
	switch {
	case p < 50:
		return b.paint(lowStyle, text)
	case p < 80:
		return b.paint(midStyle, text)
	default:
		return b.paint(highStyle, text)
	}
}

func (b *TextReportBuilder) paint(style lipgloss.Style, s string) string {
	if !b.color {
		return s
	}
	return style.Render(s)
}

func withMissedLines(classes []analyzer.ClassSummary) []analyzer.ClassSummary {
	out := make([]analyzer.ClassSummary, 0, len(classes))
	for _, c := range classes {
		if len(c.MissedLines) > 0 {
			out = append(out, c)
		}
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
