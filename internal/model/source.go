package model

import (
	"path"
	"strings"
)

// Visibility is the access modifier recovered from a declaration line.
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
	Private   Visibility = "private"
)

// MemberDeclaration is a method or constructor signature found by the
// structure scanner.
type MemberDeclaration struct {
	Line       int        `json:"line"`
	Signature  string     `json:"signature"`
	Name       string     `json:"name,omitempty"`
	Visibility Visibility `json:"visibility"`
	IsStatic   bool       `json:"is_static"`
	// IsConstructor is never set: the line heuristic cannot tell a
	// constructor from a method without the class name.
	IsConstructor bool `json:"is_constructor"`
}

// SourceStructure is the ordered list of members recovered from one file.
type SourceStructure struct {
	Path    string              `json:"file_path"`
	Package string              `json:"package,omitempty"`
	Members []MemberDeclaration `json:"methods"`
}

// ClassNameFromPath returns the base name of path without its extension.
// Both slash styles are accepted.
func ClassNameFromPath(filePath string) string {
	base := path.Base(strings.ReplaceAll(filePath, `\`, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// UncoveredMember is a member judged likely uncovered by the gap correlator.
type UncoveredMember struct {
	Member            MemberDeclaration `json:"member"`
	NearestMissedLine int               `json:"nearest_missed_line"`
	// Distance is |Member.Line - NearestMissedLine|, between 0 and the tolerance window.
	Distance int `json:"distance"`
}
