package utils

import (
	"path/filepath"
	"strings"
)

// PackagePath converts a dotted package name to a relative directory path.
func PackagePath(packageName string) string {
	if packageName == "" {
		return ""
	}
	return filepath.FromSlash(strings.ReplaceAll(packageName, ".", "/"))
}

// SourceCandidates lists the paths where the source file of a class may live,
// in lookup order: "<dir>/<package path>/<file>" for every source directory,
// then "<dir>/<file>" for every source directory. No directories or no file
// name yield no candidates.
func SourceCandidates(packageName, sourceFile string, sourceDirs []string) []string {
	if sourceFile == "" || len(sourceDirs) == 0 {
		return nil
	}
	sourceFile = filepath.FromSlash(strings.ReplaceAll(sourceFile, `\`, "/"))
	pkgPath := PackagePath(packageName)

	seen := make(map[string]struct{})
	var candidates []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		candidates = append(candidates, p)
	}
	for _, dir := range sourceDirs {
		add(filepath.Join(dir, pkgPath, sourceFile))
	}
	for _, dir := range sourceDirs {
		add(filepath.Join(dir, sourceFile))
	}
	return candidates
}
