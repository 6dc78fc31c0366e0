package parser

import "github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser/filtering"

// ParserConfig defines the lean configuration required by a parser.
// This consumer-defined interface decouples parsers from the main report configuration.
type ParserConfig interface {
	PackageFilters() filtering.IFilter
	ClassFilters() filtering.IFilter
}

type noFilterConfig struct{}

func (noFilterConfig) PackageFilters() filtering.IFilter { return filtering.MustNoFilter() }
func (noFilterConfig) ClassFilters() filtering.IFilter   { return filtering.MustNoFilter() }

// NoFilters is a ParserConfig that keeps every package and class.
var NoFilters ParserConfig = noFilterConfig{}
