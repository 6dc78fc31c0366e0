package defaultprocessor

import (
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/language"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// DefaultProcessor implements the language.Processor interface.
// It serves as a fallback for languages that are not explicitly handled:
// members are recovered with the shared heuristic and no package is read.
type DefaultProcessor struct{}

func init() {
	// Register this default processor with the central factory.
	language.RegisterProcessor(NewDefaultProcessor())
}

// NewDefaultProcessor creates a new, stateless DefaultProcessor.
func NewDefaultProcessor() language.Processor {
	return &DefaultProcessor{}
}

// Name returns the unique, human-readable name of the processor.
func (p *DefaultProcessor) Name() string {
	return "Default"
}

// Detect always returns false. The factory logic is responsible for choosing
// this processor as a fallback if no other specific processor detects a match.
func (p *DefaultProcessor) Detect(filePath string) bool {
	return false
}

// ClassName returns the file name without its extension.
func (p *DefaultProcessor) ClassName(filePath string) string {
	return model.ClassNameFromPath(filePath)
}

func (p *DefaultProcessor) Scan(filePath, text string) model.SourceStructure {
	return model.SourceStructure{
		Path:    filePath,
		Members: language.ScanMembers(text),
	}
}
