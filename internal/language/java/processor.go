package java

import (
	"regexp"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/filereader"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/language"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

var packageRegex = regexp.MustCompile(`^\s*package\s+([\w.]+)\s*;`)

// JavaProcessor implements the language.Processor interface for Java sources.
type JavaProcessor struct{}

func init() {
	language.RegisterProcessor(NewJavaProcessor())
}

// NewJavaProcessor creates a new, stateless JavaProcessor.
func NewJavaProcessor() language.Processor {
	return &JavaProcessor{}
}

// Name returns the unique, human-readable name of the processor.
func (p *JavaProcessor) Name() string {
	return "Java"
}

// Detect checks if the file path has a .java extension.
func (p *JavaProcessor) Detect(filePath string) bool {
	return strings.HasSuffix(strings.ToLower(filePath), ".java")
}

// ClassName returns the public top-level class name, which Java ties to the file name.
func (p *JavaProcessor) ClassName(filePath string) string {
	return model.ClassNameFromPath(filePath)
}

// Scan recovers members with the shared heuristic and the package from the
// first package declaration.
func (p *JavaProcessor) Scan(filePath, text string) model.SourceStructure {
	return model.SourceStructure{
		Path:    filePath,
		Package: PackageName(text),
		Members: language.ScanMembers(text),
	}
}

// PackageName returns the package declared by the first "package x.y;" line,
// or "" for the default package.
func PackageName(text string) string {
	for _, line := range filereader.SplitLines(text) {
		if m := packageRegex.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}
