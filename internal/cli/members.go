package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/language"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

func (a *app) newMembersCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "members FILE...",
		Short: "List the method declarations found in source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			structures := make([]model.SourceStructure, 0, len(args))
			for _, path := range args {
				structure, err := language.ScanFile(path)
				if err != nil {
					return err
				}
				structures = append(structures, structure)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), structures)
			}
			for _, s := range structures {
				writeMembers(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeMembers(out io.Writer, s model.SourceStructure) {
	header := s.Path
	if s.Package != "" {
		header = fmt.Sprintf("%s (%s.%s)", s.Path, s.Package, language.ClassName(s.Path))
	}
	fmt.Fprintln(out, header)
	for _, m := range s.Members {
		fmt.Fprintf(out, "  %d: %s\n", m.Line, m.Signature)
	}
}
