package analyzer

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser"
)

// MergeParserResults combines the results of several report files (for example
// one JaCoCo report per module of a multi-module build) into a single result.
// Classes are keyed by package and name in order of first appearance; lines
// of the same number and counters of the same type are summed, so a line
// missed in one run and covered in another ends up partially covered.
func MergeParserResults(results []*parser.ParserResult) (*parser.ParserResult, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no parser results to merge")
	}
	if len(results) == 1 {
		return results[0], nil
	}

	merged := &parser.ParserResult{
		Report: &model.CoverageReport{
			Instructions: model.CoverageCounter{Type: model.CounterInstruction},
			Branches:     model.CoverageCounter{Type: model.CounterBranch},
		},
		SupportsBranchCoverage: true,
	}

	mergedClassesMap := make(map[string]int)
	parserNames := make(map[string]struct{})
	seenDirs := make(map[string]struct{})
	var names []string
	var earliest *time.Time

	for _, res := range results {
		if res == nil || res.Report == nil {
			continue
		}
		if res.ParserName != "" {
			parserNames[res.ParserName] = struct{}{}
			merged.ParserName = res.ParserName
		}
		if res.Timestamp != nil && (earliest == nil || res.Timestamp.Before(*earliest)) {
			earliest = res.Timestamp
		}
		for _, dir := range res.SourceDirectories {
			if _, ok := seenDirs[dir]; !ok {
				seenDirs[dir] = struct{}{}
				merged.SourceDirectories = append(merged.SourceDirectories, dir)
			}
		}
		merged.SupportsBranchCoverage = merged.SupportsBranchCoverage && res.SupportsBranchCoverage

		report := res.Report
		if report.Name != "" {
			names = append(names, report.Name)
		}
		for _, cls := range report.Classes {
			key := cls.FullName()
			if idx, ok := mergedClassesMap[key]; ok {
				mergeClass(&merged.Report.Classes[idx], cls)
				continue
			}
			mergedClassesMap[key] = len(merged.Report.Classes)
			merged.Report.Classes = append(merged.Report.Classes, copyClass(cls))
		}
		merged.Report.Instructions = merged.Report.Instructions.Add(report.Instructions)
		merged.Report.Branches = merged.Report.Branches.Add(report.Branches)
		merged.Report.Counters = sumCounters(merged.Report.Counters, report.Counters)
	}

	switch len(parserNames) {
	case 0:
		merged.ParserName = "Unknown"
	case 1:
	default:
		merged.ParserName = "MultiReport"
	}
	if len(names) == 1 {
		merged.Report.Name = names[0]
	} else if len(names) > 1 {
		merged.Report.Name = fmt.Sprintf("%s (+%d)", names[0], len(names)-1)
	}
	merged.Timestamp = earliest
	return merged, nil
}

func copyClass(cls model.ClassCoverage) model.ClassCoverage {
	cls.Lines = slices.Clone(cls.Lines)
	cls.Counters = slices.Clone(cls.Counters)
	return cls
}

// mergeClass adds the lines and counters of other to into. Line numbers new
// to into are inserted in line order.
func mergeClass(into *model.ClassCoverage, other model.ClassCoverage) {
	if into.SourceFile == "" {
		into.SourceFile = other.SourceFile
	}
	byNumber := make(map[int]int, len(into.Lines))
	for i, l := range into.Lines {
		byNumber[l.Number] = i
	}
	added := false
	for _, l := range other.Lines {
		if i, ok := byNumber[l.Number]; ok {
			into.Lines[i].MissedInstructions += l.MissedInstructions
			into.Lines[i].CoveredInstructions += l.CoveredInstructions
			continue
		}
		byNumber[l.Number] = len(into.Lines)
		into.Lines = append(into.Lines, l)
		added = true
	}
	if added {
		slices.SortStableFunc(into.Lines, func(a, b model.CoverageLine) int {
			return cmp.Compare(a.Number, b.Number)
		})
	}
	into.Counters = sumCounters(into.Counters, other.Counters)
}

// sumCounters adds each counter of add to the counter of the same type in
// into, appending counter types not seen before.
func sumCounters(into, add []model.CoverageCounter) []model.CoverageCounter {
	for _, c := range add {
		found := false
		for i := range into {
			if into[i].Type == c.Type {
				into[i] = into[i].Add(c)
				found = true
				break
			}
		}
		if !found {
			into = append(into, c)
		}
	}
	return into
}
