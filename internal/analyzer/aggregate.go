package analyzer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// RankOrder selects the ordering of RankedSummary.
type RankOrder string

const (
	// OrderByCoverage sorts ascending by coverage percentage; equal
	// percentages keep discovery order.
	OrderByCoverage RankOrder = "coverage"
	// OrderByName sorts by (package, class).
	OrderByName RankOrder = "name"
)

// ParseRankOrder converts a user-supplied order name.
func ParseRankOrder(s string) (RankOrder, error) {
	switch RankOrder(strings.ToLower(strings.TrimSpace(s))) {
	case OrderByCoverage, "":
		return OrderByCoverage, nil
	case OrderByName:
		return OrderByName, nil
	}
	return "", fmt.Errorf("unknown rank order %q (want %q or %q)", s, OrderByCoverage, OrderByName)
}

// Options names the zero-total convention of each aggregate view. The two
// views disagree for classes without instructions, so neither is implied.
type Options struct {
	// SummaryZeroTotal applies to the per-class percentages of Summarize.
	SummaryZeroTotal model.ZeroTotalPolicy
	// RankedZeroTotal applies to the per-class percentages of RankedSummary.
	RankedZeroTotal model.ZeroTotalPolicy
}

// DefaultOptions reports 0% for empty classes in the summary and 100% in the
// ranked list.
func DefaultOptions() Options {
	return Options{
		SummaryZeroTotal: model.ZeroAsEmpty,
		RankedZeroTotal:  model.ZeroAsComplete,
	}
}

// ClassSummary is the per-class entry of both aggregate views.
type ClassSummary struct {
	Package             string  `json:"package"`
	Class               string  `json:"class"`
	SourceFile          string  `json:"source_file"`
	MissedLines         []int   `json:"missed_lines"`
	CoveragePercentage  float64 `json:"coverage_percentage"`
	TotalInstructions   int     `json:"total_instructions"`
	CoveredInstructions int     `json:"covered_instructions"`
}

// FullName returns "package.Class".
func (c ClassSummary) FullName() string {
	if c.Package == "" {
		return c.Class
	}
	return c.Package + "." + c.Class
}

// Summary is the report-wide aggregate with the list of classes that have at
// least one fully missed line.
type Summary struct {
	ReportName               string         `json:"report_name,omitempty"`
	TotalInstructions        int            `json:"total_instructions"`
	CoveredInstructions      int            `json:"covered_instructions"`
	MissedInstructions       int            `json:"missed_instructions"`
	LineCoveragePercentage   float64        `json:"line_coverage_percentage"`
	TotalBranches            int            `json:"total_branches"`
	CoveredBranches          int            `json:"covered_branches"`
	BranchCoveragePercentage float64        `json:"branch_coverage_percentage"`
	TotalClasses             int            `json:"total_classes"`
	UncoveredClasses         []ClassSummary `json:"uncovered_classes"`
	TotalUncoveredClasses    int            `json:"total_uncovered_classes"`
}

// OverallLineCoverage returns covered/total instructions in percent, 0 when
// the report has no instructions.
func OverallLineCoverage(report *model.CoverageReport) float64 {
	if report == nil {
		return 0
	}
	return report.Instructions.Percent(model.ZeroAsEmpty)
}

// BranchCoverage returns the covered share of branches in percent, 0 when the
// report has no branches.
func BranchCoverage(report *model.CoverageReport) float64 {
	if report == nil {
		return 0
	}
	return report.Branches.Percent(model.ZeroAsEmpty)
}

// LineCounterCoverage returns the LINE counter of the report: the report-level
// counter when present, else the sum of the class-level ones. ok is false
// when neither exists.
func LineCounterCoverage(report *model.CoverageReport) (counter model.CoverageCounter, ok bool) {
	if report == nil {
		return model.CoverageCounter{Type: model.CounterLine}, false
	}
	if c, found := report.Counter(model.CounterLine); found {
		return c, true
	}
	counter = model.CoverageCounter{Type: model.CounterLine}
	for i := range report.Classes {
		if c, found := report.Classes[i].Counter(model.CounterLine); found {
			counter = counter.Add(c)
			ok = true
		}
	}
	return counter, ok
}

// Summarize reduces the report to totals and the list of uncovered classes.
// Classes without fully missed lines still count towards the totals.
func Summarize(report *model.CoverageReport, opts Options) Summary {
	summary := Summary{UncoveredClasses: []ClassSummary{}}
	if report == nil {
		return summary
	}

	summary.ReportName = report.Name
	summary.TotalInstructions = report.Instructions.Total()
	summary.CoveredInstructions = report.Instructions.Covered
	summary.MissedInstructions = report.Instructions.Missed
	summary.LineCoveragePercentage = OverallLineCoverage(report)
	summary.TotalBranches = report.Branches.Total()
	summary.CoveredBranches = report.Branches.Covered
	summary.BranchCoveragePercentage = BranchCoverage(report)
	summary.TotalClasses = len(report.Classes)

	for i := range report.Classes {
		cls := &report.Classes[i]
		if !cls.HasMissedLines() {
			continue
		}
		summary.UncoveredClasses = append(summary.UncoveredClasses, newClassSummary(cls, opts.SummaryZeroTotal))
	}
	summary.TotalUncoveredClasses = len(summary.UncoveredClasses)
	return summary
}

// RankedSummary lists every class of the report, fully covered ones included,
// in the requested order.
func RankedSummary(report *model.CoverageReport, order RankOrder, opts Options) ([]ClassSummary, error) {
	if order != OrderByCoverage && order != OrderByName {
		return nil, fmt.Errorf("unknown rank order %q", order)
	}
	if report == nil {
		return []ClassSummary{}, nil
	}

	ranked := make([]ClassSummary, 0, len(report.Classes))
	for i := range report.Classes {
		ranked = append(ranked, newClassSummary(&report.Classes[i], opts.RankedZeroTotal))
	}

	switch order {
	case OrderByCoverage:
		slices.SortStableFunc(ranked, func(a, b ClassSummary) int {
			return cmp.Compare(a.CoveragePercentage, b.CoveragePercentage)
		})
	case OrderByName:
		slices.SortStableFunc(ranked, func(a, b ClassSummary) int {
			if c := strings.Compare(a.Package, b.Package); c != 0 {
				return c
			}
			return strings.Compare(a.Class, b.Class)
		})
	}
	return ranked, nil
}

// TopUncovered returns at most n entries of the summary's uncovered classes,
// each limited to its first maxLines missed lines. n <= 0 keeps all classes.
func TopUncovered(summary Summary, n, maxLines int) []ClassSummary {
	classes := summary.UncoveredClasses
	if n > 0 && len(classes) > n {
		classes = classes[:n]
	}
	top := make([]ClassSummary, len(classes))
	for i, c := range classes {
		if maxLines > 0 && len(c.MissedLines) > maxLines {
			c.MissedLines = c.MissedLines[:maxLines]
		}
		top[i] = c
	}
	return top
}

func newClassSummary(cls *model.ClassCoverage, policy model.ZeroTotalPolicy) ClassSummary {
	missed := cls.MissedLines()
	if missed == nil {
		missed = []int{}
	}
	return ClassSummary{
		Package:             cls.Package,
		Class:               cls.Name,
		SourceFile:          cls.SourceFile,
		MissedLines:         missed,
		CoveragePercentage:  cls.CoveragePercent(policy),
		TotalInstructions:   cls.TotalInstructions(),
		CoveredInstructions: cls.CoveredInstructions(),
	}
}
