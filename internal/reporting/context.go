package reporting

import (
	"fmt"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reportconfig"
)

// IReportContext is what every report builder reads.
type IReportContext interface {
	ReportConfiguration() reportconfig.IReportConfiguration
	ParserResult() *parser.ParserResult
	Summary() analyzer.Summary
	Ranked() []analyzer.ClassSummary
	// Gaps is nil when no gap analysis was run.
	Gaps() *analyzer.GapReport
}

// ReportContext is the default IReportContext.
type ReportContext struct {
	Cfg           reportconfig.IReportConfiguration
	Result        *parser.ParserResult
	Sum           analyzer.Summary
	RankedClasses []analyzer.ClassSummary
	GapReport     *analyzer.GapReport
}

func (rc *ReportContext) ReportConfiguration() reportconfig.IReportConfiguration { return rc.Cfg }
func (rc *ReportContext) ParserResult() *parser.ParserResult                    { return rc.Result }
func (rc *ReportContext) Summary() analyzer.Summary                             { return rc.Sum }
func (rc *ReportContext) Ranked() []analyzer.ClassSummary                       { return rc.RankedClasses }
func (rc *ReportContext) Gaps() *analyzer.GapReport                             { return rc.GapReport }

// NewReportContext computes the summary and the ranked list of result.
func NewReportContext(cfg reportconfig.IReportConfiguration, result *parser.ParserResult, order analyzer.RankOrder, opts analyzer.Options) (*ReportContext, error) {
	if result == nil || result.Report == nil {
		return nil, fmt.Errorf("report context: no coverage data")
	}
	ranked, err := analyzer.RankedSummary(result.Report, order, opts)
	if err != nil {
		return nil, fmt.Errorf("report context: %w", err)
	}
	return &ReportContext{
		Cfg:           cfg,
		Result:        result,
		Sum:           analyzer.Summarize(result.Report, opts),
		RankedClasses: ranked,
	}, nil
}

// WithGaps attaches a gap analysis.
func (rc *ReportContext) WithGaps(gaps analyzer.GapReport) *ReportContext {
	rc.GapReport = &gaps
	return rc
}
