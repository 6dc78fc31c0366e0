package analyzer

import (
	"fmt"
	"strconv"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// LineSummary is the line coverage used by the coverage gate.
type LineSummary struct {
	Covered int     `json:"covered"`
	Missed  int     `json:"missed"`
	Total   int     `json:"total"`
	Percent float64 `json:"line_coverage_percent"`
	// FromLineCounters is false when the report had no LINE counters and the
	// instruction totals were used instead.
	FromLineCounters bool `json:"-"`
}

// LineSummaryOf reads the LINE counters of the report, falling back to the
// instruction totals when there are none.
func LineSummaryOf(report *model.CoverageReport) LineSummary {
	counter, ok := LineCounterCoverage(report)
	if !ok && report != nil {
		counter = report.Instructions
	}
	return LineSummary{
		Covered:          counter.Covered,
		Missed:           counter.Missed,
		Total:            counter.Total(),
		Percent:          counter.Percent(model.ZeroAsEmpty),
		FromLineCounters: ok,
	}
}

// String formats the summary as a single line.
func (s LineSummary) String() string {
	return fmt.Sprintf("Line coverage: %s%% (covered=%d missed=%d total=%d)",
		strconv.FormatFloat(s.Percent, 'f', -1, 64), s.Covered, s.Missed, s.Total)
}

// Below reports whether the coverage misses threshold. A threshold of 0
// never fails.
func (s LineSummary) Below(threshold float64) bool {
	return threshold > 0 && s.Percent < threshold
}
