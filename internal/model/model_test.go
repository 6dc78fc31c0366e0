package model

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageLine_IsFullyMissed(t *testing.T) {
	testCases := []struct {
		name string
		line CoverageLine
		want bool
	}{
		{"missed only", CoverageLine{Number: 1, MissedInstructions: 2}, true},
		{"covered only", CoverageLine{Number: 2, CoveredInstructions: 3}, false},
		{"partially covered", CoverageLine{Number: 3, MissedInstructions: 1, CoveredInstructions: 1}, false},
		{"nothing", CoverageLine{Number: 4}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.line.IsFullyMissed())
		})
	}
}

func TestClassCoverage_Totals(t *testing.T) {
	cls := ClassCoverage{
		Package:    "pkg",
		Name:       "Foo",
		SourceFile: "Foo.java",
		Lines: []CoverageLine{
			{Number: 5, CoveredInstructions: 3},
			{Number: 6, MissedInstructions: 2},
			{Number: 7, CoveredInstructions: 4},
		},
	}

	assert.Equal(t, 9, cls.TotalInstructions())
	assert.Equal(t, 7, cls.CoveredInstructions())
	assert.Equal(t, 2, cls.MissedInstructions())
	assert.Equal(t, cls.TotalInstructions(), cls.CoveredInstructions()+cls.MissedInstructions())
	assert.Equal(t, 77.78, cls.CoveragePercent(ZeroAsEmpty))
	assert.Equal(t, []int{6}, cls.MissedLines())
	assert.True(t, cls.HasMissedLines())
	assert.Equal(t, "pkg.Foo", cls.FullName())
}

func TestClassCoverage_ZeroTotalPolicy(t *testing.T) {
	empty := ClassCoverage{Name: "Empty"}

	assert.Equal(t, 0.0, empty.CoveragePercent(ZeroAsEmpty))
	assert.Equal(t, 100.0, empty.CoveragePercent(ZeroAsComplete))
	assert.False(t, empty.HasMissedLines())
	assert.Empty(t, empty.MissedLines())
}

func TestClassCoverage_Counter(t *testing.T) {
	cls := ClassCoverage{Counters: []CoverageCounter{{Type: CounterBranch, Missed: 1, Covered: 3}}}

	branch, ok := cls.Counter(CounterBranch)
	assert.True(t, ok)
	assert.Equal(t, 4, branch.Total())

	line, ok := cls.Counter(CounterLine)
	assert.False(t, ok)
	assert.Equal(t, CoverageCounter{Type: CounterLine}, line)
}

func TestClassNameFromPath(t *testing.T) {
	assert.Equal(t, "Foo", ClassNameFromPath("src/main/java/pkg/Foo.java"))
	assert.Equal(t, "Foo", ClassNameFromPath(`C:\work\src\Foo.java`))
	assert.Equal(t, "Makefile", ClassNameFromPath("Makefile"))
	assert.Equal(t, "", ClassNameFromPath(""))
}

func TestError_Kinds(t *testing.T) {
	notFound := NotFound("jacoco.xml", fs.ErrNotExist)
	wrapped := fmt.Errorf("loading report: %w", notFound)

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrMalformedInput))
	assert.True(t, errors.Is(wrapped, fs.ErrNotExist))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Contains(t, notFound.Error(), "jacoco.xml not found")

	malformed := Malformed("jacoco.xml", errors.New("unexpected EOF"))
	assert.True(t, errors.Is(malformed, ErrMalformedInput))
	assert.Equal(t, KindMalformedInput, KindOf(malformed))
	assert.Equal(t, "error parsing jacoco.xml: unexpected EOF", malformed.Error())

	assert.Equal(t, KindOther, KindOf(errors.New("boom")))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, Percent(1, 2, ZeroAsEmpty))
	assert.Equal(t, 33.33, Percent(1, 3, ZeroAsEmpty))
	assert.Equal(t, 66.67, Percent(2, 3, ZeroAsEmpty))
	assert.Equal(t, 0.0, Percent(0, 0, ZeroAsEmpty))
	assert.Equal(t, 100.0, Percent(0, 0, ZeroAsComplete))
}
