package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reportconfig"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reporter/ghoutput"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reporter/htmlreport"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reporter/jsonreport"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reporter/textsummary"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reporting"
)

// HTMLDirName is the directory under the output directory holding the HTML report.
const HTMLDirName = "html"

type reportBuilder interface {
	ReportType() string
	CreateReport(ctx reporting.IReportContext) error
}

func (a *app) newSummaryCmd() *cobra.Command {
	var withGaps bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize coverage and enforce the line coverage threshold",
		Long: `Summarize parses the coverage reports, writes the configured report types
and exits with status 2 when line coverage is below --min-line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			result, err := loadCoverage(cfg, cmd.InOrStdin())
			if err != nil {
				return err
			}
			ctx, err := reporting.NewReportContext(cfg, result, cfg.Order(), cfg.AnalyzerOptions())
			if err != nil {
				return err
			}
			if withGaps {
				ctx.WithGaps(analyzer.AnalyzeGaps(result.Report, gapOptions(cfg)))
			}

			for _, builder := range a.builders(cmd, cfg) {
				slog.Debug("Generating report.", "type", builder.ReportType())
				if err := builder.CreateReport(ctx); err != nil {
					return fmt.Errorf("%s report: %w", builder.ReportType(), err)
				}
			}
			if gh := ghoutput.NewGitHubOutputBuilder(cfg.GitHubOutput); gh.Enabled() {
				if err := gh.CreateReport(ctx); err != nil {
					slog.Warn("Could not write the GitHub step output.", "path", gh.Path, "error", err)
				}
			}

			line := analyzer.LineSummaryOf(result.Report)
			if line.Below(cfg.MinLineCoverage) {
				fmt.Fprintf(cmd.OutOrStdout(), "Coverage %.2f%% is below threshold %.2f%%\n", line.Percent, cfg.MinLineCoverage)
				return fmt.Errorf("%w: %.2f%% < %.2f%%", ErrBelowThreshold, line.Percent, cfg.MinLineCoverage)
			}
			return nil
		},
	}
	addCoverageFlags(cmd)
	addSourceFlags(cmd)
	f := cmd.Flags()
	f.StringSlice("type", nil, "report types: TextSummary, JsonSummary, Html")
	f.String("output", "", "output directory for file reports")
	f.String("json-out", "", "JSON summary path (default <output>/coverage-summary.json)")
	f.Float64("min-line", 0, "minimum line coverage in percent; 0 disables the gate")
	f.Int("top", 0, "uncovered classes listed in the text summary")
	f.String("github-output", "", "step output file (default $"+ghoutput.EnvVar+")")
	f.String("title", "", "report title")
	f.BoolVar(&withGaps, "gaps", false, "correlate missed lines with source members")
	return cmd
}

func (a *app) builders(cmd *cobra.Command, cfg *reportconfig.Config) []reportBuilder {
	var builders []reportBuilder
	for _, t := range cfg.ReportTypes() {
		switch t {
		case reportconfig.ReportTypeTextSummary:
			text := textsummary.NewTextReportBuilder(cmd.OutOrStdout())
			text.Top = cfg.Top
			builders = append(builders, text)
		case reportconfig.ReportTypeJSONSummary:
			builders = append(builders, jsonreport.NewJsonReportBuilder(cfg.JSONOutputPath()))
		case reportconfig.ReportTypeHTML:
			builders = append(builders, htmlreport.NewHtmlReportBuilder(filepath.Join(cfg.TargetDirectory(), HTMLDirName)))
		}
	}
	return builders
}

func gapOptions(cfg *reportconfig.Config) analyzer.GapOptions {
	return analyzer.GapOptions{
		Options:           cfg.AnalyzerOptions(),
		SourceDirectories: cfg.SourceDirectories(),
		Limit:             cfg.Top,
	}
}
