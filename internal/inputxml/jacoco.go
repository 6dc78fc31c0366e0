// Package inputxml holds the raw XML shapes of the supported coverage report
// formats. The parsers translate them into the model package.
package inputxml

import "encoding/xml"

// JacocoReport is the <report> root of a JaCoCo XML report.
type JacocoReport struct {
	XMLName  xml.Name            `xml:"report"`
	Name     string              `xml:"name,attr"`
	Sessions []JacocoSessionInfo `xml:"sessioninfo"`
	Groups   []JacocoGroup       `xml:"group"`
	Packages []JacocoPackage     `xml:"package"`
	Counters []JacocoCounter     `xml:"counter"`
}

// JacocoSessionInfo records one execution data session; times are epoch milliseconds.
type JacocoSessionInfo struct {
	ID    string `xml:"id,attr"`
	Start int64  `xml:"start,attr"`
	Dump  int64  `xml:"dump,attr"`
}

// JacocoGroup nests packages (and other groups) for multi-module reports.
type JacocoGroup struct {
	Name     string          `xml:"name,attr"`
	Groups   []JacocoGroup   `xml:"group"`
	Packages []JacocoPackage `xml:"package"`
	Counters []JacocoCounter `xml:"counter"`
}

// JacocoPackage is a <package> element. Package names use '/' as separator.
type JacocoPackage struct {
	Name        string             `xml:"name,attr"`
	Classes     []JacocoClass      `xml:"class"`
	SourceFiles []JacocoSourceFile `xml:"sourcefile"`
	Counters    []JacocoCounter    `xml:"counter"`
}

// JacocoClass is a <class> element. Name is the VM name, e.g. "org/acme/Foo".
type JacocoClass struct {
	Name           string          `xml:"name,attr"`
	SourceFileName string          `xml:"sourcefilename,attr"`
	Methods        []JacocoMethod  `xml:"method"`
	Lines          []JacocoLine    `xml:"line"`
	Counters       []JacocoCounter `xml:"counter"`
}

// JacocoMethod is a <method> element.
type JacocoMethod struct {
	Name     string          `xml:"name,attr"`
	Desc     string          `xml:"desc,attr"`
	Line     int             `xml:"line,attr"`
	Counters []JacocoCounter `xml:"counter"`
}

// JacocoSourceFile is a <sourcefile> element carrying the per-line data in
// reports produced by the JaCoCo tooling.
type JacocoSourceFile struct {
	Name     string          `xml:"name,attr"`
	Lines    []JacocoLine    `xml:"line"`
	Counters []JacocoCounter `xml:"counter"`
}

// JacocoLine is a <line> element: nr, missed/covered instructions and branches.
type JacocoLine struct {
	Nr int `xml:"nr,attr"`
	Mi int `xml:"mi,attr"`
	Ci int `xml:"ci,attr"`
	Mb int `xml:"mb,attr"`
	Cb int `xml:"cb,attr"`
}

// JacocoCounter is a <counter> element.
type JacocoCounter struct {
	Type    string `xml:"type,attr"`
	Missed  int    `xml:"missed,attr"`
	Covered int    `xml:"covered,attr"`
}
