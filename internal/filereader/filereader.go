// Package filereader reads source files tolerantly: a UTF-8 or UTF-16 byte
// order mark selects the decoding, and bytes that do not decode are replaced
// with U+FFFD instead of failing the read.
package filereader

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// FileReader defines an interface for reading source files. Production code
// reads from disk; tests use an in-memory map.
type FileReader interface {
	// ReadFile returns the decoded text of the file at path.
	ReadFile(path string) (string, error)
}

// DiskReader reads files from the local filesystem.
type DiskReader struct{}

// ReadFile implements FileReader. A missing file yields a model.KindNotFound error.
func (DiskReader) ReadFile(path string) (string, error) {
	return ReadFile(path)
}

// ReadFile reads and decodes the file at path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", model.NotFound(path, err)
		}
		return "", &model.Error{Kind: model.KindOther, Resource: path, Err: err}
	}
	return Decode(data), nil
}

// Decode converts raw file bytes to text. It never fails.
func Decode(data []byte) string {
	decoder := transform.Chain(
		unicode.BOMOverride(unicode.UTF8.NewDecoder()),
		runes.ReplaceIllFormed(),
	)
	text, _, err := transform.Bytes(decoder, data)
	if err != nil {
		// The chain above only fails on internal buffer errors; fall back to
		// Go's own replacement of invalid sequences.
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(text)
}

// SplitLines splits text into lines, accepting "\n" and "\r\n" endings.
// A trailing newline does not produce an empty last line.
func SplitLines(text string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
