// Package htmlreport writes a static HTML coverage gap report: a summary page
// listing every class and one detail page per class.
package htmlreport

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reporting"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/utils"
)

// IndexFile is the name of the summary page.
const IndexFile = "index.html"

type HtmlReportBuilder struct {
	OutputDir string

	reportTitle    string
	classFilenames map[string]string
	classes        map[string]*model.ClassCoverage
	gaps           map[string]*analyzer.ClassGaps
}

func NewHtmlReportBuilder(outputDir string) *HtmlReportBuilder {
	return &HtmlReportBuilder{OutputDir: outputDir}
}

func (b *HtmlReportBuilder) ReportType() string { return "Html" }

func (b *HtmlReportBuilder) CreateReport(ctx reporting.IReportContext) error {
	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", b.OutputDir, err)
	}
	b.prepare(ctx)

	for _, cls := range ctx.Ranked() {
		if err := b.generateClassDetailHTML(cls); err != nil {
			return err
		}
	}
	return b.generateSummaryHTML(ctx)
}

func (b *HtmlReportBuilder) prepare(ctx reporting.IReportContext) {
	b.reportTitle = "Coverage Report"
	if cfg := ctx.ReportConfiguration(); cfg != nil && cfg.Title() != "" {
		b.reportTitle = cfg.Title()
	}

	b.classes = make(map[string]*model.ClassCoverage)
	if result := ctx.ParserResult(); result != nil && result.Report != nil {
		for i := range result.Report.Classes {
			cls := &result.Report.Classes[i]
			if _, seen := b.classes[cls.FullName()]; !seen {
				b.classes[cls.FullName()] = cls
			}
		}
	}

	b.gaps = make(map[string]*analyzer.ClassGaps)
	if gaps := ctx.Gaps(); gaps != nil {
		for i := range gaps.Classes {
			b.gaps[gaps.Classes[i].Class.FullName()] = &gaps.Classes[i]
		}
	}

	existing := map[string]struct{}{strings.ToLower(IndexFile): {}}
	b.classFilenames = make(map[string]string)
	for _, cls := range ctx.Ranked() {
		if _, done := b.classFilenames[cls.FullName()]; done {
			continue
		}
		b.classFilenames[cls.FullName()] = generateUniqueFilename(cls.Package, cls.Class, existing)
	}
}

func (b *HtmlReportBuilder) generateSummaryHTML(ctx reporting.IReportContext) error {
	summary := ctx.Summary()
	doc, body := newDocument(b.reportTitle)

	appendAll(body, withText(atom.H1, b.reportTitle))
	if result := ctx.ParserResult(); result != nil {
		info := fmt.Sprintf("Parser: %s", result.ParserName)
		if summary.ReportName != "" {
			info = fmt.Sprintf("Report: %s, parser: %s", summary.ReportName, result.ParserName)
		}
		if result.Timestamp != nil {
			info += ", generated " + result.Timestamp.Format("2006-01-02 15:04:05")
		}
		appendAll(body, withText(atom.P, info))
	}

	cards := element(atom.Div, attr("class", "cards"))
	appendAll(cards,
		card("Line coverage", percentText(summary.LineCoveragePercentage),
			fmt.Sprintf("%d of %d instructions", summary.CoveredInstructions, summary.TotalInstructions)),
		card("Branch coverage", percentText(summary.BranchCoveragePercentage),
			fmt.Sprintf("%d of %d branches", summary.CoveredBranches, summary.TotalBranches)),
		card("Classes", strconv.Itoa(summary.TotalClasses),
			fmt.Sprintf("%d with missed lines", summary.TotalUncoveredClasses)),
	)
	appendAll(body, cards)

	tbl, tbody := table("Class", "Source file", "Coverage", "", "Covered", "Total", "Missed lines")
	for _, cls := range ctx.Ranked() {
		appendAll(tbody, tableRow(
			link(b.classFilenames[cls.FullName()], cls.FullName()),
			textNode(cls.SourceFile),
			coverageBar(cls.CoveragePercentage),
			withText(atom.Td, percentText(cls.CoveragePercentage), attr("class", "right")),
			withText(atom.Td, strconv.Itoa(cls.CoveredInstructions), attr("class", "right")),
			withText(atom.Td, strconv.Itoa(cls.TotalInstructions), attr("class", "right")),
			withText(atom.Td, strconv.Itoa(len(cls.MissedLines)), attr("class", "right")),
		))
	}
	appendAll(body, withText(atom.H1, "Classes"), tbl)

	return writeDocument(filepath.Join(b.OutputDir, IndexFile), doc)
}

func (b *HtmlReportBuilder) generateClassDetailHTML(cls analyzer.ClassSummary) error {
	name := cls.FullName()
	doc, body := newDocument(name + " - " + b.reportTitle)

	appendAll(body,
		appendAll(element(atom.P), link(IndexFile, "< Summary")),
		withText(atom.H1, name),
	)

	info, infoBody := table("Property", "Value")
	appendAll(infoBody,
		tableRow(textNode("Package"), textNode(cls.Package)),
		tableRow(textNode("Source file"), textNode(cls.SourceFile)),
		tableRow(textNode("Line coverage"), textNode(percentText(cls.CoveragePercentage))),
		tableRow(textNode("Instructions"), textNode(fmt.Sprintf("%d of %d covered", cls.CoveredInstructions, cls.TotalInstructions))),
	)
	appendAll(body, info)

	if gaps, ok := b.gaps[name]; ok {
		appendAll(body, b.buildGapSection(gaps)...)
	}
	if coverage, ok := b.classes[name]; ok && len(coverage.Lines) > 0 {
		appendAll(body, b.buildLineSection(coverage)...)
	}

	return writeDocument(filepath.Join(b.OutputDir, b.classFilenames[name]), doc)
}

func (b *HtmlReportBuilder) buildGapSection(gaps *analyzer.ClassGaps) []*html.Node {
	heading := withText(atom.H2, "Likely uncovered members")
	if gaps.Error != "" {
		return []*html.Node{heading, withText(atom.P, "Source unavailable: "+gaps.Error)}
	}
	if len(gaps.Members) == 0 {
		return []*html.Node{heading, withText(atom.P, "No member declared near a missed line.")}
	}

	tbl, tbody := table("Line", "Member", "Visibility", "Nearest missed line")
	for _, m := range gaps.Members {
		appendAll(tbody, tableRow(
			withText(atom.Td, strconv.Itoa(m.Member.Line), attr("class", "right")),
			withText(atom.Td, utils.ShortSignature(m.Member.Signature), attr("title", m.Member.Signature)),
			textNode(string(m.Member.Visibility)),
			withText(atom.Td, strconv.Itoa(m.NearestMissedLine), attr("class", "right")),
		))
	}
	nodes := []*html.Node{heading}
	if gaps.SourcePath != "" {
		nodes = append(nodes, withText(atom.P, gaps.SourcePath))
	}
	return append(nodes, tbl)
}

func (b *HtmlReportBuilder) buildLineSection(cls *model.ClassCoverage) []*html.Node {
	tbl, tbody := table("Line", "Missed instructions", "Covered instructions")
	for _, l := range cls.Lines {
		row := tableRow(
			withText(atom.Td, strconv.Itoa(l.Number), attr("class", "right")),
			withText(atom.Td, strconv.Itoa(l.MissedInstructions), attr("class", "right")),
			withText(atom.Td, strconv.Itoa(l.CoveredInstructions), attr("class", "right")),
		)
		row.Attr = append(row.Attr, attr("class", lineVisitStatusToString(determineLineVisitStatus(l))))
		appendAll(tbody, row)
	}
	return []*html.Node{withText(atom.H2, "Lines"), tbl}
}

func card(header, value, detail string) *html.Node {
	return appendAll(element(atom.Div, attr("class", "card")),
		withText(atom.Div, header, attr("class", "header")),
		withText(atom.Div, value, attr("class", "value")),
		withText(atom.Div, detail),
	)
}

func coverageBar(p float64) *html.Node {
	inner := element(atom.Span, attr("style", fmt.Sprintf("width: %d%%", coverageBarWidth(p))))
	return appendAll(element(atom.Span, attr("class", "bar"), attr("title", percentText(p))), inner)
}
