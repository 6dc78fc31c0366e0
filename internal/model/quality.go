package model

// FindingKind groups quality findings.
type FindingKind string

const (
	CodeSmell      FindingKind = "code_smell"
	SecurityIssue  FindingKind = "security_issue"
	StyleViolation FindingKind = "style_violation"
)

// Severity of a quality finding, from low to critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities lists all severity tiers in ascending order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// QualityFinding is one result of a quality detector. Findings from different
// detectors are never merged or deduplicated.
type QualityFinding struct {
	Kind     FindingKind `json:"kind"`
	Rule     string      `json:"type"`
	Severity Severity    `json:"severity"`
	File     string      `json:"file"`
	// Line is 0 for file-level findings.
	Line        int    `json:"line,omitempty"`
	Member      string `json:"method,omitempty"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}
