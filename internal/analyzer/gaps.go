package analyzer

import (
	"cmp"
	"errors"
	"log/slog"
	"slices"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/filereader"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/language"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/utils"

	_ "github.com/IgorBayerl/ReportGenerator/gapreport/internal/language/default"
	_ "github.com/IgorBayerl/ReportGenerator/gapreport/internal/language/java"
)

// ToleranceWindow is the largest line distance between a declaration and a
// missed line for the declaration to count as uncovered. A method whose only
// missed lines lie deeper in its body is not flagged, and a miss just above a
// signature flags it.
const ToleranceWindow = 2

// Correlate finds the members of structure that are likely uncovered in
// report. The class is resolved by simple name from the file name; when
// several classes share the name, the one in structure.Package wins, else the
// first one with missed lines, else the first. No matching class, or a class without missed lines, yields an empty
// result.
func Correlate(structure model.SourceStructure, report *model.CoverageReport) []model.UncoveredMember {
	cls := resolveClass(structure, report)
	if cls == nil {
		return []model.UncoveredMember{}
	}
	return CorrelateClass(structure.Members, cls)
}

// CorrelateClass checks members against the fully missed lines of cls.
func CorrelateClass(members []model.MemberDeclaration, cls *model.ClassCoverage) []model.UncoveredMember {
	uncovered := []model.UncoveredMember{}
	missed := cls.MissedLines()
	if len(missed) == 0 {
		return uncovered
	}

	for _, member := range members {
		nearest, distance, found := 0, 0, false
		for _, line := range missed {
			d := abs(member.Line - line)
			if d > ToleranceWindow {
				continue
			}
			if !found || d < distance || (d == distance && line < nearest) {
				nearest, distance, found = line, d, true
			}
		}
		if found {
			uncovered = append(uncovered, model.UncoveredMember{
				Member:            member,
				NearestMissedLine: nearest,
				Distance:          distance,
			})
		}
	}
	return uncovered
}

func resolveClass(structure model.SourceStructure, report *model.CoverageReport) *model.ClassCoverage {
	if report == nil {
		return nil
	}
	name := language.ClassName(structure.Path)
	if name == "" {
		return nil
	}

	var first, firstMissed *model.ClassCoverage
	for i := range report.Classes {
		cls := &report.Classes[i]
		if cls.Name != name {
			continue
		}
		if structure.Package != "" && cls.Package == structure.Package {
			return cls
		}
		if first == nil {
			first = cls
		}
		if firstMissed == nil && cls.HasMissedLines() {
			firstMissed = cls
		}
	}
	if firstMissed != nil {
		return firstMissed
	}
	return first
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// GapOptions configures AnalyzeGaps.
type GapOptions struct {
	Options
	// SourceDirectories are searched in order for "<package path>/<source file>".
	SourceDirectories []string
	// Limit caps the number of classes analysed; 0 means all.
	Limit int
	// Reader reads source files; nil reads from disk.
	Reader filereader.FileReader
}

// ClassGaps is the gap analysis of one uncovered class.
type ClassGaps struct {
	Class      ClassSummary            `json:"class"`
	SourcePath string                  `json:"source_path,omitempty"`
	Members    []model.UncoveredMember `json:"uncovered_methods"`
	// Error is set when the source could not be read; the class is still listed.
	Error string `json:"error,omitempty"`
}

// GapReport is the result of AnalyzeGaps.
type GapReport struct {
	Classes        []ClassGaps `json:"classes"`
	MissingSources int         `json:"missing_sources"`
}

// AnalyzeGaps correlates every class with fully missed lines, lowest coverage
// first, against its source file. A missing source is recorded on the class
// and does not stop the analysis.
func AnalyzeGaps(report *model.CoverageReport, opts GapOptions) GapReport {
	result := GapReport{Classes: []ClassGaps{}}
	if report == nil {
		return result
	}
	reader := opts.Reader
	if reader == nil {
		reader = filereader.DiskReader{}
	}

	var targets []*model.ClassCoverage
	for i := range report.Classes {
		if report.Classes[i].HasMissedLines() {
			targets = append(targets, &report.Classes[i])
		}
	}
	slices.SortStableFunc(targets, func(a, b *model.ClassCoverage) int {
		return cmp.Compare(a.CoveragePercent(opts.RankedZeroTotal), b.CoveragePercent(opts.RankedZeroTotal))
	})
	if opts.Limit > 0 && len(targets) > opts.Limit {
		targets = targets[:opts.Limit]
	}

	for _, cls := range targets {
		gaps := ClassGaps{
			Class:   newClassSummary(cls, opts.RankedZeroTotal),
			Members: []model.UncoveredMember{},
		}

		path, text, err := readClassSource(reader, cls, opts.SourceDirectories)
		if err != nil {
			slog.Warn("Source file for class not available.", "class", cls.FullName(), "error", err)
			gaps.Error = err.Error()
			result.MissingSources++
			result.Classes = append(result.Classes, gaps)
			continue
		}

		structure := language.FindProcessorForFile(path).Scan(path, text)
		gaps.SourcePath = path
		gaps.Members = CorrelateClass(structure.Members, cls)
		result.Classes = append(result.Classes, gaps)
	}
	return result
}

func readClassSource(reader filereader.FileReader, cls *model.ClassCoverage, dirs []string) (string, string, error) {
	candidates := utils.SourceCandidates(cls.Package, cls.SourceFile, dirs)
	if len(candidates) == 0 {
		return "", "", model.NotFound(cls.FullName()+" source", nil)
	}
	for _, candidate := range candidates {
		text, err := reader.ReadFile(candidate)
		if err == nil {
			return candidate, text, nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return "", "", err
		}
	}
	return "", "", model.NotFound(candidates[0], nil)
}
