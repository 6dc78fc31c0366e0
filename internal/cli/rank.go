package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/analyzer"
)

func (a *app) newRankCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "List every class ordered by coverage or name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			result, err := loadCoverage(cfg, cmd.InOrStdin())
			if err != nil {
				return err
			}
			ranked, err := analyzer.RankedSummary(result.Report, cfg.Order(), cfg.AnalyzerOptions())
			if err != nil {
				return err
			}
			if cfg.Top > 0 && len(ranked) > cfg.Top {
				ranked = ranked[:cfg.Top]
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), ranked)
			}
			return writeRanked(cmd.OutOrStdout(), ranked)
		},
	}
	addCoverageFlags(cmd)
	cmd.Flags().String("order", "", "coverage (ascending) or name")
	cmd.Flags().Int("top", 0, "number of classes listed; 0 lists all")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeRanked(out io.Writer, ranked []analyzer.ClassSummary) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tCOVERAGE\tCOVERED\tTOTAL\tMISSED LINES")
	for _, c := range ranked {
		fmt.Fprintf(tw, "%s\t%.2f%%\t%d\t%d\t%d\n", c.FullName(), c.CoveragePercentage,
			c.CoveredInstructions, c.TotalInstructions, len(c.MissedLines))
	}
	return tw.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
