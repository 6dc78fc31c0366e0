package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/discovery"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reportconfig"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/utils"

	_ "github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser/cobertura"
	_ "github.com/IgorBayerl/ReportGenerator/gapreport/internal/parser/jacoco"
)

// StdinReport as a report path reads the report from standard input.
const StdinReport = "-"

// resolveReportFiles expands the configured report patterns. Without any, the
// JaCoCo report is located under the project root, or the working directory.
// A pattern matching nothing is kept as-is so parsing reports it as not found.
func resolveReportFiles(fsys filesystem.Filesystem, cfg *reportconfig.Config) ([]string, error) {
	if len(cfg.ReportFiles()) == 0 {
		root := cfg.ProjectRoot
		if root == "" {
			wd, err := fsys.Getwd()
			if err != nil {
				return nil, fmt.Errorf("working directory: %w", err)
			}
			root = wd
		}
		path, err := discovery.FindReport(fsys, root)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	var files []string
	seen := make(map[string]struct{})
	add := func(path string) {
		key, err := fsys.Abs(path)
		if err != nil {
			key = filepath.Clean(path)
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		files = append(files, path)
	}

	for _, value := range cfg.ReportFiles() {
		for _, pattern := range utils.SplitThatEnsuresGlobsAreSafe(value, []rune{';'}) {
			if pattern == StdinReport {
				add(pattern)
				continue
			}
			matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("report pattern %q: %w", pattern, err)
			}
			if len(matches) == 0 {
				slog.Warn("No files found for report pattern.", "pattern", pattern)
				add(pattern)
				continue
			}
			for _, m := range matches {
				add(m)
			}
		}
	}
	return files, nil
}

// loadCoverage parses and merges every configured report. When no source
// directory is configured, the ones named by the reports are adopted.
func loadCoverage(cfg *reportconfig.Config, stdin io.Reader) (*parser.ParserResult, error) {
	files, err := resolveReportFiles(filesystem.DefaultFS{}, cfg)
	if err != nil {
		return nil, err
	}

	results := make([]*parser.ParserResult, 0, len(files))
	for _, file := range files {
		slog.Info("Processing coverage report.", "file", file)
		var result *parser.ParserResult
		if file == StdinReport {
			result, err = parser.ParseReader(stdin, "stdin", cfg)
		} else {
			result, err = parser.ParseFile(file, cfg)
		}
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	merged, err := analyzer.MergeParserResults(results)
	if err != nil {
		return nil, err
	}
	if len(cfg.SourceDirectories()) == 0 && len(merged.SourceDirectories) > 0 {
		slog.Info("Using source directories named by the report.", "dirs", merged.SourceDirectories)
		cfg.SourceDirs = merged.SourceDirectories
	}
	return merged, nil
}
