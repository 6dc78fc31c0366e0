package quality

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

// Rule names, as reported in QualityFinding.Rule.
const (
	RuleLongMethod           = "Long Method"
	RuleMagicNumbers         = "Magic Numbers"
	RuleSQLInjection         = "SQL Injection Risk"
	RuleHardcodedCredentials = "Hardcoded Credentials"
	RuleLineTooLong          = "Line Too Long"
	RuleMissingDocumentation = "Missing Documentation"
)

// Thresholds of the detectors.
const (
	MaxMethodLines  = 50
	MaxMagicNumbers = 5
	MaxLineLength   = 120
)

var (
	magicNumberRegex = regexp.MustCompile(`\b\d{2,}\b`)

	sqlExecutionRegex = regexp.MustCompile(
		`\.(?:executeQuery|executeUpdate|executeLargeUpdate|execute|addBatch)\s*\(|\bcreateStatement\s*\(|\bcreate(?:Native)?Query\s*\(\s*"[^"]*"\s*\+`)

	credentialRegex = regexp.MustCompile(
		`(?i)\b\w*(?:password|passwd|pwd|secret|api[_-]?key|apikey|access[_-]?token)\w*\s*=\s*"[^"]*"`)

	documentedMemberRegex = regexp.MustCompile(
		`\*/\s*(?:@[\w.]+(?:\([^)]*\))?\s*)*public\s+[^(;{]*?([\w$]+)\s*\(`)

	decisionKeywordRegex = regexp.MustCompile(`\b(?:if|else|while|for|switch|case|catch)\b`)
)

// detectLongMethods pairs each signature line with the line where a brace
// depth counter, started at the signature, returns to zero.
func detectLongMethods(src *Source) []model.QualityFinding {
	var findings []model.QualityFinding
	for _, m := range src.Members {
		span := methodSpan(src.Lines, m.Line-1)
		if span <= MaxMethodLines {
			continue
		}
		findings = append(findings, model.QualityFinding{
			Kind:        model.CodeSmell,
			Rule:        RuleLongMethod,
			Severity:    model.SeverityMedium,
			File:        src.File,
			Line:        m.Line,
			Member:      m.Name,
			Description: fmt.Sprintf("Method '%s' is %d lines long (limit %d)", m.Name, span, MaxMethodLines),
			Suggestion:  "Split the method into smaller, focused methods",
		})
	}
	return findings
}

// methodSpan returns the number of lines from start up to the line that
// closes the first opened brace. A method that never closes spans to the end
// of the file; a declaration without a body spans one line.
func methodSpan(lines []string, start int) int {
	depth := 0
	opened := false
	for i := start; i < len(lines); i++ {
		opens := strings.Count(lines[i], "{")
		depth += opens - strings.Count(lines[i], "}")
		if opens > 0 {
			opened = true
		}
		if opened && depth <= 0 {
			return i - start + 1
		}
		if !opened && strings.Contains(lines[i], ";") {
			return 1
		}
	}
	if !opened {
		return 1
	}
	return len(lines) - start
}

func detectMagicNumbers(src *Source) []model.QualityFinding {
	count := len(magicNumberRegex.FindAllStringIndex(src.Text, -1))
	if count <= MaxMagicNumbers {
		return nil
	}
	return []model.QualityFinding{{
		Kind:        model.CodeSmell,
		Rule:        RuleMagicNumbers,
		Severity:    model.SeverityLow,
		File:        src.File,
		Description: fmt.Sprintf("Found %d numeric literals with two or more digits", count),
		Suggestion:  "Replace magic numbers with named constants",
	}}
}

func detectSQLInjection(src *Source) []model.QualityFinding {
	line, ok := firstMatchingLine(src.Lines, sqlExecutionRegex)
	if !ok {
		return nil
	}
	return []model.QualityFinding{{
		Kind:        model.SecurityIssue,
		Rule:        RuleSQLInjection,
		Severity:    model.SeverityHigh,
		File:        src.File,
		Line:        line,
		Description: "SQL statements are executed directly",
		Suggestion:  "Use PreparedStatement with bound parameters",
	}}
}

func detectHardcodedCredentials(src *Source) []model.QualityFinding {
	line, ok := firstMatchingLine(src.Lines, credentialRegex)
	if !ok {
		return nil
	}
	return []model.QualityFinding{{
		Kind:        model.SecurityIssue,
		Rule:        RuleHardcodedCredentials,
		Severity:    model.SeverityCritical,
		File:        src.File,
		Line:        line,
		Description: "A credential is assigned a string literal",
		Suggestion:  "Load secrets from the environment or a secret store",
	}}
}

func detectLongLines(src *Source) []model.QualityFinding {
	var findings []model.QualityFinding
	for i, l := range src.Lines {
		length := utf8.RuneCountInString(l)
		if length <= MaxLineLength {
			continue
		}
		findings = append(findings, model.QualityFinding{
			Kind:        model.StyleViolation,
			Rule:        RuleLineTooLong,
			Severity:    model.SeverityLow,
			File:        src.File,
			Line:        i + 1,
			Description: fmt.Sprintf("Line is %d characters long (limit %d)", length, MaxLineLength),
			Suggestion:  "Break the line up",
		})
	}
	return findings
}

// detectMissingDocumentation flags public members whose name never follows a
// block comment anywhere in the file. The lookup is by name over the whole
// file, so one documented overload suppresses the finding for all overloads
// of that name.
func detectMissingDocumentation(src *Source) []model.QualityFinding {
	documented := make(map[string]struct{})
	for _, m := range documentedMemberRegex.FindAllStringSubmatch(src.Text, -1) {
		documented[m[1]] = struct{}{}
	}

	var findings []model.QualityFinding
	for _, m := range src.Members {
		if m.Visibility != model.Public || m.Name == "" {
			continue
		}
		if _, ok := documented[m.Name]; ok {
			continue
		}
		findings = append(findings, model.QualityFinding{
			Kind:        model.StyleViolation,
			Rule:        RuleMissingDocumentation,
			Severity:    model.SeverityLow,
			File:        src.File,
			Line:        m.Line,
			Member:      m.Name,
			Description: fmt.Sprintf("Public method '%s' has no documentation comment", m.Name),
			Suggestion:  "Add a Javadoc comment",
		})
	}
	return findings
}

// ComplexityProxy counts decision keywords (if, else, while, for, switch,
// case, catch) and the operators && and || over all lines. It is a file-wide
// count, not a control-flow metric.
func ComplexityProxy(lines []string) int {
	total := 0
	for _, l := range lines {
		total += len(decisionKeywordRegex.FindAllStringIndex(l, -1))
		total += strings.Count(l, "&&") + strings.Count(l, "||")
	}
	return total
}

func firstMatchingLine(lines []string, re *regexp.Regexp) (int, bool) {
	for i, l := range lines {
		if re.MatchString(l) {
			return i + 1, true
		}
	}
	return 0, false
}
