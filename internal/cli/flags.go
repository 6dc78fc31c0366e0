package cli

import (
	"github.com/spf13/cobra"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reportconfig"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/utils"
)

var filterSeparators = []rune{';', ','}

// addCoverageFlags registers the flags of every command that reads reports.
func addCoverageFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArray("report", nil, "coverage report file or glob, repeatable (default: located under --root)")
	f.String("root", "", "project root used to locate the report and sources")
	f.String("package-filter", "", `package filters, e.g. "+com.acme.*;-com.acme.gen"`)
	f.String("class-filter", "", `class filters, e.g. "-*Test"`)
	f.String("summary-zero-total", "", "percentage of empty classes in the summary: empty or complete")
	f.String("ranked-zero-total", "", "percentage of empty classes in the ranked list: empty or complete")
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("source-dir", nil, "source directory, repeatable (default: <root>/src/main/java)")
}

// applyFlags copies the flags the user set onto cfg. Flags a command does not
// define are never reported as changed.
func applyFlags(cmd *cobra.Command, cfg *reportconfig.Config) error {
	f := cmd.Flags()
	var err error
	if f.Changed("report") {
		if cfg.Reports, err = f.GetStringArray("report"); err != nil {
			return err
		}
	}
	if f.Changed("root") {
		if cfg.ProjectRoot, err = f.GetString("root"); err != nil {
			return err
		}
	}
	if f.Changed("source-dir") {
		if cfg.SourceDirs, err = f.GetStringArray("source-dir"); err != nil {
			return err
		}
	}
	if f.Changed("package-filter") {
		v, _ := f.GetString("package-filter")
		cfg.PackageFilterSet = utils.SplitThatEnsuresGlobsAreSafe(v, filterSeparators)
	}
	if f.Changed("class-filter") {
		v, _ := f.GetString("class-filter")
		cfg.ClassFilterSet = utils.SplitThatEnsuresGlobsAreSafe(v, filterSeparators)
	}
	if f.Changed("summary-zero-total") {
		cfg.SummaryZeroTotal, _ = f.GetString("summary-zero-total")
	}
	if f.Changed("ranked-zero-total") {
		cfg.RankedZeroTotal, _ = f.GetString("ranked-zero-total")
	}
	if f.Changed("type") {
		if cfg.Types, err = f.GetStringSlice("type"); err != nil {
			return err
		}
	}
	if f.Changed("output") {
		cfg.OutputDir, _ = f.GetString("output")
	}
	if f.Changed("json-out") {
		cfg.JSONOut, _ = f.GetString("json-out")
	}
	if f.Changed("min-line") {
		if cfg.MinLineCoverage, err = f.GetFloat64("min-line"); err != nil {
			return err
		}
	}
	if f.Changed("top") {
		if cfg.Top, err = f.GetInt("top"); err != nil {
			return err
		}
	}
	if f.Changed("order") {
		cfg.RankOrder, _ = f.GetString("order")
	}
	if f.Changed("github-output") {
		cfg.GitHubOutput, _ = f.GetString("github-output")
	}
	if f.Changed("title") {
		cfg.ReportTitle, _ = f.GetString("title")
	}
	return nil
}
