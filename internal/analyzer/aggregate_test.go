package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

func line(nr, mi, ci int) model.CoverageLine {
	return model.CoverageLine{Number: nr, MissedInstructions: mi, CoveredInstructions: ci}
}

// newReport builds a report and its instruction totals from classes, the way
// the parsers do.
func newReport(classes ...model.ClassCoverage) *model.CoverageReport {
	report := &model.CoverageReport{
		Classes:      classes,
		Instructions: model.CoverageCounter{Type: model.CounterInstruction},
		Branches:     model.CoverageCounter{Type: model.CounterBranch},
	}
	for i := range classes {
		report.Instructions = report.Instructions.Add(classes[i].Instructions())
		if b, ok := classes[i].Counter(model.CounterBranch); ok {
			report.Branches = report.Branches.Add(b)
		}
	}
	return report
}

func fooClass() model.ClassCoverage {
	return model.ClassCoverage{
		Package:    "pkg",
		Name:       "Foo",
		SourceFile: "Foo.java",
		Lines:      []model.CoverageLine{line(5, 0, 3), line(6, 2, 0), line(7, 0, 4)},
		Counters:   []model.CoverageCounter{{Type: model.CounterBranch, Missed: 1, Covered: 3}},
	}
}

func sampleReport() *model.CoverageReport {
	return newReport(
		model.ClassCoverage{Package: "pkg.b", Name: "Zed", SourceFile: "Zed.java",
			Lines: []model.CoverageLine{line(1, 0, 5)}},
		fooClass(),
		model.ClassCoverage{Package: "pkg.a", Name: "Bar", SourceFile: "Bar.java",
			Lines: []model.CoverageLine{line(1, 4, 0), line(2, 1, 1)}},
		model.ClassCoverage{Package: "pkg.a", Name: "Empty", SourceFile: "Empty.java"},
		model.ClassCoverage{Package: "pkg", Name: "Alpha", SourceFile: "Alpha.java",
			Lines: []model.CoverageLine{line(3, 1, 0), line(4, 0, 1)}},
	)
}

func TestOverallLineCoverage(t *testing.T) {
	assert.Equal(t, 0.0, OverallLineCoverage(nil))
	assert.Equal(t, 0.0, OverallLineCoverage(newReport()))
	assert.Equal(t, 77.78, OverallLineCoverage(newReport(fooClass())))

	pct := OverallLineCoverage(sampleReport())
	assert.GreaterOrEqual(t, pct, 0.0)
	assert.LessOrEqual(t, pct, 100.0)
}

func TestBranchCoverage(t *testing.T) {
	assert.Equal(t, 75.0, BranchCoverage(newReport(fooClass())))
	assert.Equal(t, 0.0, BranchCoverage(newReport()))
}

func TestLineCounterCoverage(t *testing.T) {
	report := newReport(fooClass())
	_, ok := LineCounterCoverage(report)
	assert.False(t, ok)

	withClassCounters := newReport(
		model.ClassCoverage{Name: "A", Counters: []model.CoverageCounter{{Type: model.CounterLine, Missed: 1, Covered: 3}}},
		model.ClassCoverage{Name: "B", Counters: []model.CoverageCounter{{Type: model.CounterLine, Missed: 1, Covered: 0}}},
	)
	counter, ok := LineCounterCoverage(withClassCounters)
	require.True(t, ok)
	assert.Equal(t, model.CoverageCounter{Type: model.CounterLine, Missed: 2, Covered: 3}, counter)

	withClassCounters.Counters = []model.CoverageCounter{{Type: model.CounterLine, Missed: 9, Covered: 1}}
	counter, ok = LineCounterCoverage(withClassCounters)
	require.True(t, ok)
	assert.Equal(t, 10.0, counter.Percent(model.ZeroAsEmpty), "the report-level counter wins")
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleReport(), DefaultOptions())

	assert.Equal(t, 22, summary.TotalInstructions)
	assert.Equal(t, 14, summary.CoveredInstructions)
	assert.Equal(t, 8, summary.MissedInstructions)
	assert.Equal(t, 63.64, summary.LineCoveragePercentage)
	assert.Equal(t, 75.0, summary.BranchCoveragePercentage)
	assert.Equal(t, 5, summary.TotalClasses)

	var names []string
	for _, c := range summary.UncoveredClasses {
		names = append(names, c.Class)
	}
	assert.Equal(t, []string{"Foo", "Bar", "Alpha"}, names, "only classes with fully missed lines, in discovery order")
	assert.Equal(t, 3, summary.TotalUncoveredClasses)

	want := ClassSummary{
		Package:             "pkg",
		Class:               "Foo",
		SourceFile:          "Foo.java",
		MissedLines:         []int{6},
		CoveragePercentage:  77.78,
		TotalInstructions:   9,
		CoveredInstructions: 7,
	}
	if diff := cmp.Diff(want, summary.UncoveredClasses[0]); diff != "" {
		t.Errorf("Foo summary mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1}, summary.UncoveredClasses[1].MissedLines, "partially covered line 2 is not missed")
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(newReport(), DefaultOptions())
	assert.Equal(t, 0.0, summary.LineCoveragePercentage)
	assert.NotNil(t, summary.UncoveredClasses)
	assert.Empty(t, summary.UncoveredClasses)

	assert.Empty(t, Summarize(nil, DefaultOptions()).UncoveredClasses)
}

func TestRankedSummary_ByCoverage(t *testing.T) {
	ranked, err := RankedSummary(sampleReport(), OrderByCoverage, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, ranked, 5, "all classes, fully covered ones included")

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].CoveragePercentage, ranked[i].CoveragePercentage)
	}

	var names []string
	for _, c := range ranked {
		names = append(names, c.Class)
	}
	// Bar 16.67, Alpha 50, Foo 77.78, then Zed and Empty at 100 in discovery order.
	assert.Equal(t, []string{"Bar", "Alpha", "Foo", "Zed", "Empty"}, names)
}

func TestRankedSummary_ByName(t *testing.T) {
	ranked, err := RankedSummary(sampleReport(), OrderByName, DefaultOptions())
	require.NoError(t, err)

	var names []string
	for _, c := range ranked {
		names = append(names, c.FullName())
	}
	assert.Equal(t, []string{"pkg.Alpha", "pkg.Foo", "pkg.a.Bar", "pkg.a.Empty", "pkg.b.Zed"}, names)
}

func TestRankedSummary_UnknownOrder(t *testing.T) {
	_, err := RankedSummary(sampleReport(), RankOrder("size"), DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, model.KindOther, model.KindOf(err))
}

func TestZeroTotalConventions(t *testing.T) {
	// A class whose only line has no instructions at all.
	report := newReport(model.ClassCoverage{Name: "Blank", Lines: []model.CoverageLine{line(1, 0, 0)}})

	ranked, err := RankedSummary(report, OrderByCoverage, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 100.0, ranked[0].CoveragePercentage, "ranked view treats nothing-to-cover as complete")

	ranked, err = RankedSummary(report, OrderByCoverage, Options{RankedZeroTotal: model.ZeroAsEmpty})
	require.NoError(t, err)
	assert.Equal(t, 0.0, ranked[0].CoveragePercentage)

	assert.Equal(t, 0.0, OverallLineCoverage(report))
}

func TestZeroTotalConventions_Summary(t *testing.T) {
	cls := model.ClassCoverage{Name: "Odd", Lines: []model.CoverageLine{line(1, 0, 0)}}
	assert.Equal(t, 0.0, newClassSummary(&cls, DefaultOptions().SummaryZeroTotal).CoveragePercentage)
	assert.Equal(t, 100.0, newClassSummary(&cls, model.ZeroAsComplete).CoveragePercentage)
}

func TestParseRankOrder(t *testing.T) {
	testCases := []struct {
		in      string
		want    RankOrder
		wantErr bool
	}{
		{"coverage", OrderByCoverage, false},
		{" NAME ", OrderByName, false},
		{"", OrderByCoverage, false},
		{"size", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseRankOrder(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestTopUncovered(t *testing.T) {
	missed := make([]int, 15)
	for i := range missed {
		missed[i] = i + 1
	}
	summary := Summary{UncoveredClasses: []ClassSummary{
		{Class: "A", MissedLines: missed},
		{Class: "B", MissedLines: []int{3}},
		{Class: "C", MissedLines: []int{4}},
	}}

	top := TopUncovered(summary, 2, 10)
	require.Len(t, top, 2)
	assert.Len(t, top[0].MissedLines, 10)
	assert.Len(t, summary.UncoveredClasses[0].MissedLines, 15, "input is not modified")

	assert.Len(t, TopUncovered(summary, 0, 0), 3)
}
