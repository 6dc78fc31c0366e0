package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/discovery"
)

func (a *app) newDiscoverCmd() *cobra.Command {
	var (
		root    string
		include []string
		exclude []string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List the main source files under a project root and whether each has a test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if root == "" {
				root = a.cfg.ProjectRoot
			}
			if root == "" {
				root = "."
			}
			files, err := discovery.FindSourceFiles(root, discovery.Options{Include: include, Exclude: exclude})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), files)
			}
			writeDiscovered(cmd.OutOrStdout(), files)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&root, "root", "", "project root (default: configured project_root, else .)")
	f.StringArrayVar(&include, "include", nil, "glob of source files to keep, relative to src/main/java")
	f.StringArrayVar(&exclude, "exclude", nil, "glob of source files to skip")
	f.BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeDiscovered(out io.Writer, files []discovery.SourceFile) {
	tested := 0
	for _, file := range files {
		mark := "no test"
		if file.HasTest {
			mark = "tested"
			tested++
		}
		fmt.Fprintf(out, "%-8s %s\n", mark, file.RelativePath)
	}
	fmt.Fprintf(out, "%d source file(s), %d with a test\n", len(files), tested)
}
