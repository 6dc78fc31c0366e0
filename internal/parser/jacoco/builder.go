package jacoco

import (
	"strings"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser"
)

// reportBuilder accumulates one CoverageReport from a decoded JaCoCo document.
//
// Line data is read from <class><line> first. Reports written by the JaCoCo
// tooling keep lines under <package><sourcefile> instead; for a class without
// its own lines, the lines of the source file it names are attributed to a
// single owner class so nothing is counted twice. The owner is the class whose
// simple name matches the file name, else the first class naming the file.
type reportBuilder struct {
	config parser.ParserConfig
	report *model.CoverageReport
}

func newReportBuilder(config parser.ParserConfig) *reportBuilder {
	if config == nil {
		config = parser.NoFilters
	}
	return &reportBuilder{
		config: config,
		report: &model.CoverageReport{
			Instructions: model.CoverageCounter{Type: model.CounterInstruction},
			Branches:     model.CoverageCounter{Type: model.CounterBranch},
		},
	}
}

func (b *reportBuilder) build(raw *inputxml.JacocoReport) *model.CoverageReport {
	b.report.Name = raw.Name
	b.report.Counters = convertCounters(raw.Counters)

	for _, pkg := range collectPackages(raw.Packages, raw.Groups) {
		b.addPackage(pkg)
	}
	return b.report
}

// collectPackages flattens nested groups, depth first.
func collectPackages(packages []inputxml.JacocoPackage, groups []inputxml.JacocoGroup) []inputxml.JacocoPackage {
	all := append([]inputxml.JacocoPackage(nil), packages...)
	for _, g := range groups {
		all = append(all, collectPackages(g.Packages, g.Groups)...)
	}
	return all
}

func (b *reportBuilder) addPackage(pkg inputxml.JacocoPackage) {
	packageName := strings.ReplaceAll(pkg.Name, "/", ".")
	if !b.config.PackageFilters().IsElementIncludedInReport(packageName) {
		return
	}

	sourceLines := make(map[string][]inputxml.JacocoLine, len(pkg.SourceFiles))
	for _, sf := range pkg.SourceFiles {
		sourceLines[sf.Name] = sf.Lines
	}
	owners := sourceFileOwners(pkg.Classes)

	for i, classXML := range pkg.Classes {
		lines := classXML.Lines
		if owner, ok := owners[classXML.SourceFileName]; ok && owner == i {
			lines = sourceLines[classXML.SourceFileName]
		}

		cls := model.ClassCoverage{
			Package:    packageName,
			Name:       simpleClassName(classXML.Name),
			SourceFile: classXML.SourceFileName,
			Counters:   convertCounters(classXML.Counters),
		}
		if !b.config.ClassFilters().IsElementIncludedInReport(cls.FullName()) {
			continue
		}
		b.addClass(cls, lines)
	}
}

func (b *reportBuilder) addClass(cls model.ClassCoverage, lines []inputxml.JacocoLine) {
	cls.Lines = make([]model.CoverageLine, 0, len(lines))
	for _, l := range lines {
		cls.Lines = append(cls.Lines, model.CoverageLine{
			Number:              l.Nr,
			MissedInstructions:  l.Mi,
			CoveredInstructions: l.Ci,
		})
		b.report.Instructions.Missed += l.Mi
		b.report.Instructions.Covered += l.Ci
	}

	if branch, ok := cls.Counter(model.CounterBranch); ok {
		b.report.Branches = b.report.Branches.Add(branch)
	}

	b.report.Classes = append(b.report.Classes, cls)
}

// sourceFileOwners maps each source file name to the index of the class that
// receives its <sourcefile> lines.
func sourceFileOwners(classes []inputxml.JacocoClass) map[string]int {
	owners := make(map[string]int)
	for i, c := range classes {
		if c.SourceFileName == "" || len(c.Lines) > 0 {
			continue
		}
		current, seen := owners[c.SourceFileName]
		if !seen {
			owners[c.SourceFileName] = i
			continue
		}
		topLevel := model.ClassNameFromPath(c.SourceFileName)
		if simpleClassName(c.Name) == topLevel && simpleClassName(classes[current].Name) != topLevel {
			owners[c.SourceFileName] = i
		}
	}
	return owners
}

// simpleClassName keeps the last '/'-separated segment of a VM class name.
func simpleClassName(vmName string) string {
	if i := strings.LastIndex(vmName, "/"); i >= 0 {
		return vmName[i+1:]
	}
	return vmName
}

func convertCounters(raw []inputxml.JacocoCounter) []model.CoverageCounter {
	if len(raw) == 0 {
		return nil
	}
	counters := make([]model.CoverageCounter, 0, len(raw))
	for _, c := range raw {
		counters = append(counters, model.CoverageCounter{
			Type:    model.CounterType(c.Type),
			Missed:  c.Missed,
			Covered: c.Covered,
		})
	}
	return counters
}
