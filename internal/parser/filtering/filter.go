// Package filtering implements the +include/-exclude name filters applied to
// packages and classes while a coverage report is built.
package filtering

import (
	"fmt"
	"regexp"
	"strings"
)

// IFilter decides whether a package or class name is kept in the model.
type IFilter interface {
	IsElementIncludedInReport(name string) bool
	HasCustomFilters() bool
}

// DefaultFilter is the default implementation of IFilter.
// Exclusions win over inclusions; with no inclusions everything is included.
type DefaultFilter struct {
	includeFilters []*regexp.Regexp
	excludeFilters []*regexp.Regexp
}

// NewDefaultFilter compiles filters of the form "+pattern" or "-pattern",
// where '*' matches any run of characters and '?' a single one. Matching is
// case-insensitive and anchored. Empty entries are ignored.
func NewDefaultFilter(filters []string) (IFilter, error) {
	df := &DefaultFilter{}
	var errs []string

	for _, f := range filters {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		re, err := compileFilter(f)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if f[0] == '+' {
			df.includeFilters = append(df.includeFilters, re)
		} else {
			df.excludeFilters = append(df.excludeFilters, re)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid filters: %s", strings.Join(errs, "; "))
	}
	return df, nil
}

// MustNoFilter returns a filter that includes every name.
func MustNoFilter() IFilter {
	return &DefaultFilter{}
}

// IsElementIncludedInReport checks name against the exclusions, then the inclusions.
func (df *DefaultFilter) IsElementIncludedInReport(name string) bool {
	for _, re := range df.excludeFilters {
		if re.MatchString(name) {
			return false
		}
	}
	if len(df.includeFilters) == 0 {
		return true
	}
	for _, re := range df.includeFilters {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// HasCustomFilters returns true if any include or exclude filters were specified.
func (df *DefaultFilter) HasCustomFilters() bool {
	return len(df.includeFilters) > 0 || len(df.excludeFilters) > 0
}

func compileFilter(filter string) (*regexp.Regexp, error) {
	if len(filter) < 2 || (filter[0] != '+' && filter[0] != '-') {
		return nil, fmt.Errorf("filter '%s' must start with '+' or '-' followed by a pattern", filter)
	}

	var sb strings.Builder
	sb.WriteString("(?i)^")
	for _, r := range filter[1:] {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("filter '%s': %w", filter, err)
	}
	return re, nil
}
