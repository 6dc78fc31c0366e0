package filereader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want string
	}{
		{"plain utf8", []byte("int x = 1;"), "int x = 1;"},
		{"utf8 bom is stripped", []byte("\xef\xbb\xbfclass A {}"), "class A {}"},
		{"utf16 little endian", []byte{0xff, 0xfe, 'h', 0, 'i', 0}, "hi"},
		{"utf16 big endian", []byte{0xfe, 0xff, 0, 'h', 0, 'i'}, "hi"},
		{"invalid bytes are replaced", []byte("a\xffb"), "a�b"},
		{"empty", nil, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Decode(tc.data))
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("a\nb\r\nc\n"))
	assert.Equal(t, []string{"", "x"}, SplitLines("\nx"))
	assert.Nil(t, SplitLines(""))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.java")
	require.NoError(t, os.WriteFile(path, []byte("line1\nline2\n"), 0o644))

	text, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"line1", "line2"}, SplitLines(text))

	_, err = DiskReader{}.ReadFile(filepath.Join(dir, "Missing.java"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
