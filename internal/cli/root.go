// Package cli wires the gapreport commands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/reportconfig"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitBelowThreshold = 2
)

// ErrBelowThreshold is returned when line coverage misses --min-line.
var ErrBelowThreshold = errors.New("line coverage below threshold")

type app struct {
	configPath string
	verbosity  string
	cfg        *reportconfig.Config
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gapreport",
		Short: "Coverage-driven test gap analysis for Java projects",
		Long: `gapreport reads JaCoCo (or Cobertura) XML coverage reports, summarizes and
ranks classes by coverage, correlates missed lines with member declarations
in the source tree and runs pattern-based quality checks on source files.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default ./"+reportconfig.DefaultFileName+" when present)")
	root.PersistentFlags().StringVar(&a.verbosity, "verbosity", "", "log level: Verbose, Info, Warning, Error, Off")

	root.AddCommand(
		a.newSummaryCmd(),
		a.newRankCmd(),
		a.newGapsCmd(),
		a.newMembersCmd(),
		a.newQualityCmd(),
		a.newDiscoverCmd(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, ErrBelowThreshold) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return ExitCode(err)
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrBelowThreshold):
		return ExitBelowThreshold
	default:
		return ExitFailure
	}
}

// setup loads the configuration, applies the command's flags over it and
// installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := reportconfig.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbosity != "" {
		cfg.Verbosity = a.verbosity
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	slog.SetDefault(logging.NewLogger(cmd.ErrOrStderr(), cfg.VerbosityLevel()))
	slog.Debug("Configuration loaded.", "config", a.configPath, "reports", cfg.ReportFiles())
	return nil
}
