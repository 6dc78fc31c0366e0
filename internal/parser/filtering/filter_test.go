package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFilter(t *testing.T) {
	testCases := []struct {
		name     string
		filters  []string
		included []string
		excluded []string
	}{
		{
			name:     "no filters includes everything",
			filters:  nil,
			included: []string{"org.acme", "Foo", ""},
		},
		{
			name:     "include wildcard",
			filters:  []string{"+org.acme.*"},
			included: []string{"org.acme.util", "ORG.ACME.core"},
			excluded: []string{"org.other", "org.acme"},
		},
		{
			name:     "exclusion wins over inclusion",
			filters:  []string{"+org.acme.*", "-*.generated"},
			included: []string{"org.acme.core"},
			excluded: []string{"org.acme.generated"},
		},
		{
			name:     "question mark matches one character",
			filters:  []string{"-Foo?"},
			included: []string{"Foo", "Foo12"},
			excluded: []string{"Foo1", "FooX"},
		},
		{
			name:     "dots are literal",
			filters:  []string{"+a.b"},
			included: []string{"a.b"},
			excluded: []string{"axb"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewDefaultFilter(tc.filters)
			require.NoError(t, err)
			for _, name := range tc.included {
				assert.True(t, f.IsElementIncludedInReport(name), "expected %q to be included", name)
			}
			for _, name := range tc.excluded {
				assert.False(t, f.IsElementIncludedInReport(name), "expected %q to be excluded", name)
			}
			assert.Equal(t, len(tc.filters) > 0, f.HasCustomFilters())
		})
	}
}

func TestNewDefaultFilter_Invalid(t *testing.T) {
	_, err := NewDefaultFilter([]string{"org.acme", "+"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "org.acme")
}

func TestMustNoFilter(t *testing.T) {
	f := MustNoFilter()
	assert.True(t, f.IsElementIncludedInReport("anything"))
	assert.False(t, f.HasCustomFilters())
}
