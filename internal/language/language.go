package language

import (
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/filereader"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// Processor defines the contract for all language-specific logic.
type Processor interface {
	// Name returns the unique, human-readable name of the processor (e.g., "Java").
	Name() string

	// Detect checks if this processor should be used for a given source file path.
	Detect(filePath string) bool

	// ClassName derives the name of the top-level type declared by the file.
	ClassName(filePath string) string

	// Scan recovers the member declarations from the file text.
	Scan(filePath, text string) model.SourceStructure
}

var registeredProcessors []Processor

// RegisterProcessor adds a processor to the list of available processors.
// This should be called by each processor implementation in its init() function.
func RegisterProcessor(p Processor) {
	registeredProcessors = append(registeredProcessors, p)
}

// FindProcessorForFile iterates through registered processors to find one that
// can handle the given file path. It is guaranteed to return a valid processor,
// falling back to the "Default" processor.
func FindProcessorForFile(filePath string) Processor {
	var defaultProcessor Processor

	for _, p := range registeredProcessors {
		if p.Name() == "Default" {
			defaultProcessor = p
			continue
		}
		if p.Detect(filePath) {
			return p
		}
	}

	if defaultProcessor != nil {
		return defaultProcessor
	}

	panic("FATAL: Default language processor was not registered.")
}

// ClassName derives the top-level type name of filePath with the processor
// registered for it.
func ClassName(filePath string) string {
	return FindProcessorForFile(filePath).ClassName(filePath)
}

// ScanFile reads the file at filePath tolerantly and scans it with the
// processor registered for its extension. A missing file yields a
// model.KindNotFound error.
func ScanFile(filePath string) (model.SourceStructure, error) {
	return ScanFileWith(filereader.DiskReader{}, filePath)
}

// ScanFileWith is ScanFile over an arbitrary reader.
func ScanFileWith(reader filereader.FileReader, filePath string) (model.SourceStructure, error) {
	text, err := reader.ReadFile(filePath)
	if err != nil {
		return model.SourceStructure{Path: filePath}, err
	}
	return FindProcessorForFile(filePath).Scan(filePath, text), nil
}
