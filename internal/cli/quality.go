package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/quality"
)

func (a *app) newQualityCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "quality FILE...",
		Short: "Run the pattern-based quality checks on source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]quality.Report, 0, len(args))
			for _, path := range args {
				report, err := quality.ScanFile(path)
				if err != nil {
					return err
				}
				reports = append(reports, report)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			for _, r := range reports {
				writeQuality(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeQuality(out io.Writer, r quality.Report) {
	fmt.Fprintf(out, "%s: %d issue(s), complexity %d\n", r.File, r.Summary.Total, r.Complexity)
	for _, sev := range model.Severities {
		if n := r.Summary.BySeverity[sev]; n > 0 {
			fmt.Fprintf(out, "  %s: %d\n", sev, n)
		}
	}
	for _, f := range r.Findings {
		location := r.File
		if f.Line > 0 {
			location = fmt.Sprintf("%s:%d", r.File, f.Line)
		}
		fmt.Fprintf(out, "  [%s] %s %s: %s\n", f.Severity, location, f.Rule, f.Description)
	}
}
