package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/utils"
)

func (a *app) newGapsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Name the members likely left uncovered, lowest coverage first",
		Long: `Gaps reads the source of every class with fully missed lines and lists
the members declared within two lines of a missed line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := loadCoverage(a.cfg, cmd.InOrStdin())
			if err != nil {
				return err
			}
			gaps := analyzer.AnalyzeGaps(result.Report, gapOptions(a.cfg))
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), gaps)
			}
			return writeGaps(cmd.OutOrStdout(), gaps)
		},
	}
	addCoverageFlags(cmd)
	addSourceFlags(cmd)
	cmd.Flags().Int("top", 0, "number of classes analysed; 0 analyses all")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeGaps(out io.Writer, gaps analyzer.GapReport) error {
	for _, cls := range gaps.Classes {
		fmt.Fprintf(out, "%s (%.2f%%)\n", cls.Class.FullName(), cls.Class.CoveragePercentage)
		switch {
		case cls.Error != "":
			fmt.Fprintf(out, "  source unavailable: %s\n", cls.Error)
		case len(cls.Members) == 0:
			fmt.Fprintln(out, "  no member near a missed line")
		}
		for _, m := range cls.Members {
			fmt.Fprintf(out, "  %s:%d %s (missed line %d)\n", cls.SourcePath, m.Member.Line,
				utils.ShortSignature(m.Member.Signature), m.NearestMissedLine)
		}
	}
	if gaps.MissingSources > 0 {
		fmt.Fprintf(out, "%d source file(s) not found\n", gaps.MissingSources)
	}
	return nil
}
