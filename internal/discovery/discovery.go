// Package discovery locates the inputs of an analysis under an explicit
// project root: main source files with their expected test files, and the
// coverage report written by the build.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// Conventional Maven layout, relative to the project root.
var (
	MainSourceDir = filepath.Join("src", "main", "java")
	TestSourceDir = filepath.Join("src", "test", "java")

	// ReportLocations are probed in order by FindReport.
	ReportLocations = []string{
		filepath.Join("target", "site", "jacoco", "jacoco.xml"),
		filepath.Join("target", "jacoco", "jacoco.xml"),
	}
)

// DefaultIncludePatterns selects the files FindSourceFiles returns.
var DefaultIncludePatterns = []string{"**/*.java"}

// SourceFile is one main source file and where its test is expected.
type SourceFile struct {
	Path         string `json:"file_path"`
	RelativePath string `json:"relative_path"`
	Package      string `json:"package"`
	ClassName    string `json:"class_name"`
	TestPath     string `json:"test_path"`
	HasTest      bool   `json:"has_test"`
}

// Options narrows FindSourceFiles. Patterns use doublestar syntax and are
// matched against the path relative to the main source directory; a pattern
// without a slash is also tried against the base name.
type Options struct {
	Include []string
	Exclude []string
	FS      filesystem.Filesystem
}

// FindSourceFiles lists the main source files under root in lexical order.
// A project without a main source directory has no source files.
func FindSourceFiles(root string, opts Options) ([]SourceFile, error) {
	if root == "" {
		return nil, errors.New("project root is required")
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.DefaultFS{}
	}
	include := opts.Include
	if len(include) == 0 {
		include = DefaultIncludePatterns
	}

	srcDir := filepath.Join(root, MainSourceDir)
	if !filesystem.DirExists(fsys, srcDir) {
		return []SourceFile{}, nil
	}

	rels, err := globFiles(fsys.DirFS(srcDir), include)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", srcDir, err)
	}

	files := []SourceFile{}
	for _, slashRel := range rels {
		if matchAny(slashRel, opts.Exclude) {
			continue
		}
		rel := filepath.FromSlash(slashRel)
		sf := newSourceFile(root, filepath.Join(srcDir, rel), rel)
		sf.HasTest = TestExists(fsys, sf.TestPath)
		files = append(files, sf)
	}
	return files, nil
}

// globFiles returns the slash-separated paths of the files in fsys matching
// any of patterns, sorted and without duplicates. A pattern without a slash
// matches base names at any depth.
func globFiles(fsys fs.FS, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var rels []string
	for _, pattern := range patterns {
		if !strings.Contains(pattern, "/") {
			pattern = "**/" + pattern
		}
		err := doublestar.GlobWalk(fsys, pattern, func(path string, _ fs.DirEntry) error {
			if _, dup := seen[path]; !dup {
				seen[path] = struct{}{}
				rels = append(rels, path)
			}
			return nil
		}, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
	}
	slices.Sort(rels)
	return rels, nil
}

func newSourceFile(root, path, rel string) SourceFile {
	dir := filepath.Dir(rel)
	pkg := ""
	if dir != "." {
		pkg = strings.ReplaceAll(filepath.ToSlash(dir), "/", ".")
	}
	ext := filepath.Ext(rel)
	return SourceFile{
		Path:         path,
		RelativePath: rel,
		Package:      pkg,
		ClassName:    strings.TrimSuffix(filepath.Base(rel), ext),
		TestPath:     filepath.Join(root, TestSourceDir, strings.TrimSuffix(rel, ext)+"Test"+ext),
	}
}

// TestExists reports whether the test file at testPath exists.
func TestExists(fsys filesystem.Filesystem, testPath string) bool {
	if fsys == nil {
		fsys = filesystem.DefaultFS{}
	}
	return filesystem.FileExists(fsys, testPath)
}

// FindReport returns the first existing report under root from
// ReportLocations. When none exists the error is KindNotFound and names the
// preferred location.
func FindReport(fsys filesystem.Filesystem, root string) (string, error) {
	if fsys == nil {
		fsys = filesystem.DefaultFS{}
	}
	for _, loc := range ReportLocations {
		candidate := filepath.Join(root, loc)
		if filesystem.FileExists(fsys, candidate) {
			return candidate, nil
		}
	}
	expected := filepath.Join(root, ReportLocations[0])
	return "", model.NotFound(expected, errors.New("coverage report missing; run the tests with coverage first"))
}

func matchAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if matched, err := doublestar.Match(pattern, filepath.Base(relPath)); err == nil && matched {
				return true
			}
		}
	}
	return false
}
