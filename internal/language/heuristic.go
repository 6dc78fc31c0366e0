package language

import (
	"strings"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/filereader"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// ScanMembers applies the member-declaration heuristic to text. Each line is
// run through the following predicates, in order:
//
//  1. a line containing "/*" enters a block comment;
//  2. a line containing "*/" leaves it and is skipped;
//  3. lines inside a block comment, or starting with "//", are skipped;
//  4. a line is a member when it contains "public ", "protected " or
//     "private ", contains "(", and does not start with "class " or
//     "interface ".
//
// This is not a parser. Known misses: code following "*/" on the same line,
// and a one-line "/* ... */" comment, are skipped. Known false positives: a
// call or string literal containing a visibility keyword and a parenthesis.
// Constructors are reported as ordinary members.
func ScanMembers(text string) []model.MemberDeclaration {
	var members []model.MemberDeclaration
	inComment := false

	for i, line := range filereader.SplitLines(text) {
		trimmed := strings.TrimSpace(line)

		if strings.Contains(trimmed, "/*") {
			inComment = true
		}
		if strings.Contains(trimmed, "*/") {
			inComment = false
			continue
		}
		if inComment || strings.HasPrefix(trimmed, "//") {
			continue
		}

		visibility, ok := DeclaredVisibility(trimmed)
		if !ok || !strings.Contains(trimmed, "(") {
			continue
		}
		if strings.HasPrefix(trimmed, "class ") || strings.HasPrefix(trimmed, "interface ") {
			continue
		}

		members = append(members, model.MemberDeclaration{
			Line:       i + 1,
			Signature:  trimmed,
			Name:       MemberName(trimmed),
			Visibility: visibility,
			IsStatic:   strings.Contains(trimmed, "static "),
		})
	}
	return members
}

// DeclaredVisibility returns the first visibility keyword found in line,
// checking public, then protected, then private.
func DeclaredVisibility(line string) (model.Visibility, bool) {
	switch {
	case strings.Contains(line, "public "):
		return model.Public, true
	case strings.Contains(line, "protected "):
		return model.Protected, true
	case strings.Contains(line, "private "):
		return model.Private, true
	}
	return "", false
}

// MemberName returns the identifier directly before the first "(" of a
// signature, or "" when there is none.
func MemberName(signature string) string {
	open := strings.Index(signature, "(")
	if open < 0 {
		return ""
	}
	head := strings.TrimRight(signature[:open], " \t")
	end := len(head)
	start := end
	for start > 0 && isIdentifierByte(head[start-1]) {
		start--
	}
	return head[start:end]
}

func isIdentifierByte(b byte) bool {
	return b == '_' || b == '$' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
