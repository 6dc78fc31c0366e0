package utils

import (
	"regexp"
	"strings"
)

// SplitThatEnsuresGlobsAreSafe splits a string by any of the given separators,
// but does not split within brace-delimited glob patterns like {group1,group2}.
// Empty parts are dropped.
func SplitThatEnsuresGlobsAreSafe(s string, separators []rune) []string {
	if len(separators) == 0 {
		return []string{s}
	}

	var parts []string
	var currentPart strings.Builder
	braceLevel := 0

	isSeparator := func(r rune) bool {
		for _, sep := range separators {
			if r == sep {
				return true
			}
		}
		return false
	}
	flush := func() {
		if part := strings.TrimSpace(currentPart.String()); part != "" {
			parts = append(parts, part)
		}
		currentPart.Reset()
	}

	for _, char := range s {
		switch {
		case char == '{':
			braceLevel++
			currentPart.WriteRune(char)
		case char == '}':
			if braceLevel > 0 { // Only decrement if we are inside braces
				braceLevel--
			}
			currentPart.WriteRune(char)
		case isSeparator(char) && braceLevel == 0:
			flush()
		default:
			currentPart.WriteRune(char)
		}
	}
	flush()

	return parts
}

var invalidPathCharsRegex = regexp.MustCompile(`[^\w\.\-]+`)

// ReplaceInvalidPathChars replaces characters in a path that are not word characters, dots, or hyphens with an underscore.
func ReplaceInvalidPathChars(path string) string {
	return invalidPathCharsRegex.ReplaceAllString(path, "_")
}

// ShortSignature creates a shorter, display-friendly version of a member signature.
// Modifiers and the return type are dropped and parameter lists are collapsed.
// E.g., "public int add(int a, int b) {" becomes "add(...)".
// E.g., "public void run() {" becomes "run()".
// E.g., "private int count;" is returned trimmed (no parentheses were present).
func ShortSignature(signature string) string {
	signature = strings.TrimSpace(signature)
	indexOpen := strings.Index(signature, "(")
	if indexOpen <= 0 {
		return signature
	}

	head := strings.TrimRight(signature[:indexOpen], " \t")
	if i := strings.LastIndexAny(head, " \t>"); i >= 0 {
		head = head[i+1:]
	}

	indexClose := strings.Index(signature[indexOpen:], ")")
	if indexClose == -1 {
		return head + "(...)"
	}
	if indexClose > 1 && strings.TrimSpace(signature[indexOpen+1:indexOpen+indexClose]) != "" {
		return head + "(...)"
	}
	return head + "()"
}
