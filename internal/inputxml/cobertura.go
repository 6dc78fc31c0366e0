package inputxml

import "encoding/xml"

// CoberturaRoot is the <coverage> root of a Cobertura XML report.
type CoberturaRoot struct {
	XMLName   xml.Name          `xml:"coverage"`
	Timestamp string            `xml:"timestamp,attr"`
	Sources   SourcesXML        `xml:"sources"`
	Packages  CoberturaPackages `xml:"packages"`
}

// SourcesXML lists the source roots declared by the report.
type SourcesXML struct {
	Source []string `xml:"source"`
}

// CoberturaPackages wraps the <package> list.
type CoberturaPackages struct {
	Package []PackageXML `xml:"package"`
}

// PackageXML is a Cobertura <package>. Names are dot-separated.
type PackageXML struct {
	Name    string     `xml:"name,attr"`
	Classes ClassesXML `xml:"classes"`
}

// ClassesXML wraps the <class> list.
type ClassesXML struct {
	Class []ClassXML `xml:"class"`
}

// ClassXML is a Cobertura <class>; Name is fully qualified.
type ClassXML struct {
	Name     string   `xml:"name,attr"`
	Filename string   `xml:"filename,attr"`
	Lines    LinesXML `xml:"lines"`
}

// LinesXML wraps the <line> list.
type LinesXML struct {
	Line []LineXML `xml:"line"`
}

// LineXML is a Cobertura <line>. Attributes are kept as strings because
// generators disagree on number formatting.
type LineXML struct {
	Number            string `xml:"number,attr"`
	Hits              string `xml:"hits,attr"`
	Branch            string `xml:"branch,attr"`
	ConditionCoverage string `xml:"condition-coverage,attr"`
}
