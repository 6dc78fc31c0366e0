package cobertura

import (
	"log/slog"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser"
)

// conditionCoverageRegex matches the "(covered/total)" tail of the
// condition-coverage attribute, e.g. "50% (1/2)".
var conditionCoverageRegex = regexp.MustCompile(`\((?P<NumberOfCoveredBranches>\d+)/(?P<NumberOfTotalBranches>\d+)\)$`)

func (cp *CoberturaParser) processPackageXML(pkgXML inputxml.PackageXML, report *model.CoverageReport, config parser.ParserConfig) {
	if !config.PackageFilters().IsElementIncludedInReport(pkgXML.Name) {
		return
	}

	for _, classXML := range pkgXML.Classes.Class {
		cls := model.ClassCoverage{
			Package:    pkgXML.Name,
			Name:       simpleClassName(classXML.Name, pkgXML.Name),
			SourceFile: path.Base(strings.ReplaceAll(classXML.Filename, `\`, "/")),
		}
		if !config.ClassFilters().IsElementIncludedInReport(cls.FullName()) {
			continue
		}

		branches := model.CoverageCounter{Type: model.CounterBranch}
		for _, lineXML := range classXML.Lines.Line {
			line, ok := cp.processLineXML(lineXML)
			if !ok {
				slog.Warn("Skipping Cobertura line with invalid number.", "class", classXML.Name, "number", lineXML.Number)
				continue
			}
			cls.Lines = append(cls.Lines, line)
			report.Instructions.Missed += line.MissedInstructions
			report.Instructions.Covered += line.CoveredInstructions

			if strings.EqualFold(lineXML.Branch, "true") {
				branches = branches.Add(cp.processBranches(lineXML, line))
			}
		}

		if branches.Total() > 0 {
			cls.Counters = append(cls.Counters, branches)
			report.Branches = report.Branches.Add(branches)
		}
		report.Classes = append(report.Classes, cls)
	}
}

// processLineXML maps one Cobertura line to a single-instruction CoverageLine.
func (cp *CoberturaParser) processLineXML(lineXML inputxml.LineXML) (model.CoverageLine, bool) {
	number, err := strconv.Atoi(strings.TrimSpace(lineXML.Number))
	if err != nil || number <= 0 {
		return model.CoverageLine{}, false
	}
	line := model.CoverageLine{Number: number}
	// Hits may exceed the int range; only the sign is read.
	if hits, err := strconv.ParseFloat(strings.TrimSpace(lineXML.Hits), 64); err == nil && hits > 0 {
		line.CoveredInstructions = 1
	} else {
		line.MissedInstructions = 1
	}
	return line, true
}

// processBranches reads "(covered/total)" from condition-coverage. Without a
// readable ratio the line counts as a single branch, covered when it was hit.
func (cp *CoberturaParser) processBranches(lineXML inputxml.LineXML, line model.CoverageLine) model.CoverageCounter {
	counter := model.CoverageCounter{Type: model.CounterBranch}

	matches := conditionCoverageRegex.FindStringSubmatch(strings.TrimSpace(lineXML.ConditionCoverage))
	if matches != nil {
		covered, errC := strconv.Atoi(matches[conditionCoverageRegex.SubexpIndex("NumberOfCoveredBranches")])
		total, errT := strconv.Atoi(matches[conditionCoverageRegex.SubexpIndex("NumberOfTotalBranches")])
		if errC == nil && errT == nil && total > 0 && covered <= total {
			counter.Covered = covered
			counter.Missed = total - covered
			return counter
		}
	}

	if line.CoveredInstructions > 0 {
		counter.Covered = 1
	} else {
		counter.Missed = 1
	}
	return counter
}

// simpleClassName strips the package prefix from a dotted class name.
func simpleClassName(fullName, packageName string) string {
	if packageName != "" && strings.HasPrefix(fullName, packageName+".") {
		return fullName[len(packageName)+1:]
	}
	if i := strings.LastIndexAny(fullName, "./"); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
