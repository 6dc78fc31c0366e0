package jacoco

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser/filtering"
)

const fooReport = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<!DOCTYPE report PUBLIC "-//JACOCO//DTD Report 1.1//EN" "report.dtd">
<report name="demo">
  <sessioninfo id="host-1" start="1700000000000" dump="1700000005000"/>
  <package name="pkg">
    <class name="pkg/Foo" sourcefilename="Foo.java">
      <line nr="5" mi="0" ci="3"/>
      <line nr="6" mi="2" ci="0"/>
      <line nr="7" mi="0" ci="4"/>
      <counter type="INSTRUCTION" missed="2" covered="7"/>
      <counter type="BRANCH" missed="1" covered="1"/>
    </class>
  </package>
  <counter type="LINE" missed="1" covered="2"/>
</report>`

// mockParserConfig implements the parser.ParserConfig interface for testing.
type mockParserConfig struct {
	packageFilter filtering.IFilter
	classFilter   filtering.IFilter
}

func (m *mockParserConfig) PackageFilters() filtering.IFilter { return m.packageFilter }
func (m *mockParserConfig) ClassFilters() filtering.IFilter   { return m.classFilter }

func newFilterConfig(t *testing.T, packageFilters, classFilters []string) *mockParserConfig {
	t.Helper()
	pf, err := filtering.NewDefaultFilter(packageFilters)
	require.NoError(t, err)
	cf, err := filtering.NewDefaultFilter(classFilters)
	require.NoError(t, err)
	return &mockParserConfig{packageFilter: pf, classFilter: cf}
}

func parse(t *testing.T, xmlText string, config parser.ParserConfig) *model.CoverageReport {
	t.Helper()
	result, err := NewJacocoParser().Parse([]byte(xmlText), "test.xml", config)
	require.NoError(t, err)
	require.NotNil(t, result.Report)
	return result.Report
}

func TestParse_SingleClass(t *testing.T) {
	result, err := NewJacocoParser().Parse([]byte(fooReport), "jacoco.xml", nil)
	require.NoError(t, err)

	report := result.Report
	require.Len(t, report.Classes, 1)
	foo := report.Classes[0]

	want := model.ClassCoverage{
		Package:    "pkg",
		Name:       "Foo",
		SourceFile: "Foo.java",
		Lines: []model.CoverageLine{
			{Number: 5, MissedInstructions: 0, CoveredInstructions: 3},
			{Number: 6, MissedInstructions: 2, CoveredInstructions: 0},
			{Number: 7, MissedInstructions: 0, CoveredInstructions: 4},
		},
		Counters: []model.CoverageCounter{
			{Type: model.CounterInstruction, Missed: 2, Covered: 7},
			{Type: model.CounterBranch, Missed: 1, Covered: 1},
		},
	}
	if diff := cmp.Diff(want, foo); diff != "" {
		t.Errorf("class mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 9, foo.TotalInstructions())
	assert.Equal(t, 7, foo.CoveredInstructions())
	assert.Equal(t, 77.78, foo.CoveragePercent(model.ZeroAsEmpty))
	assert.Equal(t, []int{6}, foo.MissedLines())

	assert.Equal(t, model.CoverageCounter{Type: model.CounterInstruction, Missed: 2, Covered: 7}, report.Instructions)
	assert.Equal(t, model.CoverageCounter{Type: model.CounterBranch, Missed: 1, Covered: 1}, report.Branches)
	assert.Equal(t, "demo", report.Name)

	lineCounter, ok := report.Counter(model.CounterLine)
	require.True(t, ok)
	assert.Equal(t, 3, lineCounter.Total())

	assert.Equal(t, "JaCoCo", result.ParserName)
	require.NotNil(t, result.Timestamp)
	assert.Equal(t, int64(1700000000000), result.Timestamp.UnixMilli())
}

func TestParse_NamesAndBranches(t *testing.T) {
	report := parse(t, `<report name="r">
  <package name="org/acme/util">
    <class name="org/acme/util/Strings" sourcefilename="Strings.java">
      <line nr="1" mi="1" ci="1"/>
    </class>
    <class name="org/acme/util/Empty" sourcefilename="Empty.java">
      <counter type="METHOD" missed="0" covered="1"/>
    </class>
  </package>
</report>`, nil)

	require.Len(t, report.Classes, 2)
	assert.Equal(t, "org.acme.util", report.Classes[0].Package)
	assert.Equal(t, "Strings", report.Classes[0].Name)
	assert.Empty(t, report.Classes[0].MissedLines(), "partially covered lines are not fully missed")
	assert.Equal(t, 0, report.Branches.Total(), "missing BRANCH counters contribute zero")
	assert.Equal(t, 0, report.Classes[1].TotalInstructions())
}

func TestParse_SourceFileLinesFallback(t *testing.T) {
	report := parse(t, `<report name="r">
  <package name="pkg">
    <class name="pkg/Foo$Inner" sourcefilename="Foo.java">
      <counter type="BRANCH" missed="2" covered="0"/>
    </class>
    <class name="pkg/Foo" sourcefilename="Foo.java">
      <counter type="BRANCH" missed="1" covered="3"/>
    </class>
    <class name="pkg/Bar" sourcefilename="Bar.java"/>
    <sourcefile name="Foo.java">
      <line nr="3" mi="4" ci="0"/>
      <line nr="4" mi="0" ci="6"/>
    </sourcefile>
    <sourcefile name="Bar.java">
      <line nr="10" mi="0" ci="1"/>
    </sourcefile>
  </package>
</report>`, nil)

	require.Len(t, report.Classes, 3)
	inner, foo, bar := report.Classes[0], report.Classes[1], report.Classes[2]

	assert.Empty(t, inner.Lines, "inner class must not receive the top-level class lines")
	assert.Equal(t, []int{3}, foo.MissedLines())
	assert.Equal(t, 10, foo.TotalInstructions())
	assert.Equal(t, 1, bar.TotalInstructions())

	assert.Equal(t, 11, report.Instructions.Total())
	assert.Equal(t, 4, report.Instructions.Missed)
	assert.Equal(t, model.CoverageCounter{Type: model.CounterBranch, Missed: 3, Covered: 3}, report.Branches)
}

func TestParse_Groups(t *testing.T) {
	report := parse(t, `<report name="multi">
  <group name="module-a">
    <package name="a"><class name="a/A" sourcefilename="A.java"><line nr="1" mi="1" ci="0"/></class></package>
    <group name="nested">
      <package name="b"><class name="b/B" sourcefilename="B.java"><line nr="2" mi="0" ci="1"/></class></package>
    </group>
  </group>
</report>`, nil)

	require.Len(t, report.Classes, 2)
	assert.Equal(t, "a.A", report.Classes[0].FullName())
	assert.Equal(t, "b.B", report.Classes[1].FullName())
	assert.Equal(t, 2, report.Instructions.Total())
}

func TestParse_Filters(t *testing.T) {
	const xmlText = `<report name="r">
  <package name="org/acme"><class name="org/acme/Foo" sourcefilename="Foo.java"><line nr="1" mi="1" ci="0"/></class>
    <class name="org/acme/FooTest" sourcefilename="FooTest.java"><line nr="1" mi="5" ci="0"/></class></package>
  <package name="org/gen"><class name="org/gen/Gen" sourcefilename="Gen.java"><line nr="1" mi="9" ci="0"/></class></package>
</report>`

	report := parse(t, xmlText, newFilterConfig(t, []string{"-org.gen"}, []string{"-*Test"}))

	require.Len(t, report.Classes, 1)
	assert.Equal(t, "Foo", report.Classes[0].Name)
	assert.Equal(t, 1, report.Instructions.Total(), "filtered classes do not count towards totals")
}

func TestParse_Invariant(t *testing.T) {
	report := parse(t, fooReport, nil)
	assert.Equal(t, report.Instructions.Total(), report.Instructions.Covered+report.Instructions.Missed)
	for _, cls := range report.Classes {
		assert.Equal(t, cls.TotalInstructions(), cls.CoveredInstructions()+cls.MissedInstructions())
	}
}

func TestParse_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		xml  string
	}{
		{"truncated document", `<report name="r"><package name="p">`},
		{"non numeric attribute", `<report><package name="p"><class name="p/A"><line nr="x" mi="1" ci="0"/></class></package></report>`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewJacocoParser().Parse([]byte(tc.xml), "broken.xml", nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrMalformedInput))
			assert.False(t, errors.Is(err, model.ErrNotFound))
			assert.Contains(t, err.Error(), "broken.xml")
		})
	}
}

func TestParseFile_ThroughRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jacoco.xml")
	require.NoError(t, os.WriteFile(path, []byte(fooReport), 0o644))

	result, err := parser.ParseFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "JaCoCo", result.ParserName)
	assert.Len(t, result.Report.Classes, 1)

	_, err = parser.ParseFile(filepath.Join(dir, "missing.xml"), nil)
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))

	garbage := filepath.Join(dir, "garbage.xml")
	require.NoError(t, os.WriteFile(garbage, []byte("not xml at all"), 0o644))
	_, err = parser.ParseFile(garbage, nil)
	require.Error(t, err)
	assert.Equal(t, model.KindMalformedInput, model.KindOf(err))
}

func TestParse_Latin1Prolog(t *testing.T) {
	data := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<report name=\"caf\xe9\"><package name=\"p\"/></report>")
	result, err := parser.ParseBytes(data, "latin1.xml", nil)
	require.NoError(t, err)
	assert.Equal(t, "café", result.Report.Name)
}
