package model

import (
	"fmt"
	"math"
	"strings"
)

// CounterType names a JaCoCo counter kind. Values other than the constants
// below are accepted and kept as-is.
type CounterType string

const (
	CounterInstruction CounterType = "INSTRUCTION"
	CounterBranch      CounterType = "BRANCH"
	CounterLine        CounterType = "LINE"
	CounterComplexity  CounterType = "COMPLEXITY"
	CounterMethod      CounterType = "METHOD"
	CounterClass       CounterType = "CLASS"
)

// ZeroTotalPolicy decides what a coverage percentage is when there is nothing
// to cover. The aggregate views do not agree on this, so each view names the
// policy it uses instead of relying on an implicit default.
type ZeroTotalPolicy int

const (
	// ZeroAsEmpty reports 0% for a unit without instructions.
	ZeroAsEmpty ZeroTotalPolicy = iota
	// ZeroAsComplete reports 100% ("nothing to cover").
	ZeroAsComplete
)

// String returns the config spelling of the policy.
func (p ZeroTotalPolicy) String() string {
	if p == ZeroAsComplete {
		return "complete"
	}
	return "empty"
}

// CoverageLine is a single instrumented source line.
type CoverageLine struct {
	Number              int `json:"nr"`
	MissedInstructions  int `json:"mi"`
	CoveredInstructions int `json:"ci"`
}

// IsFullyMissed reports whether the line has missed instructions and no covered ones.
// Partially covered lines are not fully missed.
func (l CoverageLine) IsFullyMissed() bool {
	return l.MissedInstructions > 0 && l.CoveredInstructions == 0
}

// CoverageCounter is a missed/covered pair for one counter kind.
type CoverageCounter struct {
	Type    CounterType `json:"type"`
	Missed  int         `json:"missed"`
	Covered int         `json:"covered"`
}

// Total returns Missed + Covered.
func (c CoverageCounter) Total() int {
	return c.Missed + c.Covered
}

// Percent returns the covered share of the counter in percent, rounded to two
// decimal places, applying policy when the total is zero.
func (c CoverageCounter) Percent(policy ZeroTotalPolicy) float64 {
	return Percent(c.Covered, c.Total(), policy)
}

// Add returns the sum of two counters of the same kind.
func (c CoverageCounter) Add(other CoverageCounter) CoverageCounter {
	c.Missed += other.Missed
	c.Covered += other.Covered
	return c
}

// ClassCoverage is the coverage of one compiled class.
type ClassCoverage struct {
	Package    string            `json:"package"`
	Name       string            `json:"class"`
	SourceFile string            `json:"source_file"`
	Lines      []CoverageLine    `json:"lines,omitempty"`
	Counters   []CoverageCounter `json:"counters,omitempty"`
}

// FullName returns "package.Class", or just the class name for the default package.
func (c *ClassCoverage) FullName() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// MissedInstructions sums the missed instructions over all lines.
func (c *ClassCoverage) MissedInstructions() int {
	total := 0
	for _, l := range c.Lines {
		total += l.MissedInstructions
	}
	return total
}

// CoveredInstructions sums the covered instructions over all lines.
func (c *ClassCoverage) CoveredInstructions() int {
	total := 0
	for _, l := range c.Lines {
		total += l.CoveredInstructions
	}
	return total
}

// TotalInstructions is always CoveredInstructions() + MissedInstructions().
func (c *ClassCoverage) TotalInstructions() int {
	return c.CoveredInstructions() + c.MissedInstructions()
}

// Instructions returns the line-derived instruction totals as a counter.
func (c *ClassCoverage) Instructions() CoverageCounter {
	return CoverageCounter{
		Type:    CounterInstruction,
		Missed:  c.MissedInstructions(),
		Covered: c.CoveredInstructions(),
	}
}

// MissedLines returns the numbers of all fully missed lines in report order.
func (c *ClassCoverage) MissedLines() []int {
	var missed []int
	for _, l := range c.Lines {
		if l.IsFullyMissed() {
			missed = append(missed, l.Number)
		}
	}
	return missed
}

// HasMissedLines reports whether at least one line is fully missed.
func (c *ClassCoverage) HasMissedLines() bool {
	for _, l := range c.Lines {
		if l.IsFullyMissed() {
			return true
		}
	}
	return false
}

// Counter returns the class-scoped counter of the given kind. The zero
// counter is returned when the report carried none.
func (c *ClassCoverage) Counter(kind CounterType) (CoverageCounter, bool) {
	for _, counter := range c.Counters {
		if counter.Type == kind {
			return counter, true
		}
	}
	return CoverageCounter{Type: kind}, false
}

// CoveragePercent returns the instruction coverage of the class in percent,
// rounded to two decimal places.
func (c *ClassCoverage) CoveragePercent(policy ZeroTotalPolicy) float64 {
	return Percent(c.CoveredInstructions(), c.TotalInstructions(), policy)
}

// CoverageReport is the normalized result of ingesting one coverage report.
// It is built once and never mutated afterwards.
type CoverageReport struct {
	Name string `json:"name,omitempty"`
	// Classes in discovery order.
	Classes      []ClassCoverage   `json:"classes"`
	Instructions CoverageCounter   `json:"instructions"`
	Branches     CoverageCounter   `json:"branches"`
	Counters     []CoverageCounter `json:"counters,omitempty"`
}

// Counter returns the report-level counter of the given kind, if the report declared one.
func (r *CoverageReport) Counter(kind CounterType) (CoverageCounter, bool) {
	for _, counter := range r.Counters {
		if counter.Type == kind {
			return counter, true
		}
	}
	return CoverageCounter{Type: kind}, false
}

// Percent computes covered/total*100 rounded to two decimals.
func Percent(covered, total int, policy ZeroTotalPolicy) float64 {
	if total <= 0 {
		if policy == ZeroAsComplete {
			return 100
		}
		return 0
	}
	return Round2(float64(covered) / float64(total) * 100)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseZeroTotalPolicy accepts "empty" (or "zero") and "complete" (or "full").
func ParseZeroTotalPolicy(s string) (ZeroTotalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "zero", "0":
		return ZeroAsEmpty, nil
	case "complete", "full", "100":
		return ZeroAsComplete, nil
	}
	return ZeroAsEmpty, fmt.Errorf("invalid zero-total convention %q (want \"empty\" or \"complete\")", s)
}
