package htmlreport

import (
	"fmt"
	"math"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/utils"
)

type lineVisitStatus int

const (
	lineCovered lineVisitStatus = iota
	lineNotCovered
	linePartiallyCovered
)

const maxFilenameLengthBase = 95

func determineLineVisitStatus(l model.CoverageLine) lineVisitStatus {
	switch {
	case l.IsFullyMissed():
		return lineNotCovered
	case l.MissedInstructions > 0:
		return linePartiallyCovered
	default:
		return lineCovered
	}
}

func lineVisitStatusToString(status lineVisitStatus) string {
	switch status {
	case lineNotCovered:
		return "red"
	case linePartiallyCovered:
		return "orange"
	default:
		return "green"
	}
}

// coverageBarWidth is the covered share of the bar, 0 to 100.
func coverageBarWidth(p float64) int {
	return int(math.Max(0, math.Min(100, math.Round(p))))
}

// generateUniqueFilename creates a sanitized and unique HTML filename for a class.
// The existingFilenames map is modified by this function.
func generateUniqueFilename(packageName, className string, existingFilenames map[string]struct{}) string {
	baseName := className
	if packageName != "" {
		baseName = packageName + "." + className
	}
	sanitizedName := utils.ReplaceInvalidPathChars(baseName)
	if sanitizedName == "" {
		sanitizedName = "class"
	}

	if len(sanitizedName) > maxFilenameLengthBase {
		sanitizedName = sanitizedName[:50] + sanitizedName[len(sanitizedName)-(maxFilenameLengthBase-50):]
	}

	fileName := sanitizedName + ".html"
	counter := 1
	_, exists := existingFilenames[strings.ToLower(fileName)]
	for exists {
		counter++
		fileName = fmt.Sprintf("%s%d.html", sanitizedName, counter)
		_, exists = existingFilenames[strings.ToLower(fileName)]
	}

	existingFilenames[strings.ToLower(fileName)] = struct{}{}
	return fileName
}
