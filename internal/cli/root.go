package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"toolboxmenu/internal/menu"
	"toolboxmenu/internal/store"
	"toolboxmenu/internal/system"
	"toolboxmenu/internal/toolbox"
	"toolboxmenu/internal/ui"
	"toolboxmenu/internal/version"
)

// Process exit codes.
const (
	exitOK       = 0
	exitFailure  = 1 // launcher files missing or unreadable, bad invocation
	exitRegistry = 2 // registry read/write failed
)

var rootCmd = &cobra.Command{
	Use:   "toolboxmenu",
	Short: "toolboxmenu – Explorer \"Open with Toolbox\" menus for JetBrains IDEs",
	Long: "toolboxmenu reads the tools installed by JetBrains Toolbox and rewrites the\n" +
		"per-user folder and folder-background context menus so each IDE can open\n" +
		"the clicked folder. Run it again after installing or removing an IDE.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), store.NewRegistry())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		system.Logger.Error(err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	var pe *store.PathError
	if errors.As(err, &pe) {
		return exitRegistry
	}
	return exitFailure
}

// run performs one locate, load, synchronize and report cycle against tree.
func run(out io.Writer, tree store.Tree) error {
	log := system.Logger
	log.Debug("starting", "version", version.AppVersion)

	inst, err := toolbox.Locate(tree)
	if errors.Is(err, toolbox.ErrNotInstalled) {
		log.Info("JetBrains Toolbox is not installed, nothing to do")
		return nil
	}
	if err != nil {
		return fmt.Errorf("locate toolbox: %w", err)
	}
	if err := inst.Verify(); err != nil {
		return err
	}

	tools, err := toolbox.LoadState(inst.StateFile)
	var perr *toolbox.ParseError
	switch {
	case errors.As(err, &perr):
		// still synchronize: an empty list clears stale entries
		log.Warn("state file not fully understood", "path", perr.Path, "reason", perr.Reason, "tools", len(tools))
	case err != nil:
		return err
	}
	log.Debug("loaded tools", "state", inst.StateFile, "count", len(tools))

	rep := ui.NewReport(out)
	s := menu.New(tree, menu.WithReporter(rep.Entry), menu.WithLogger(log))
	if err := s.Synchronize(inst.Executable, tools); err != nil {
		return fmt.Errorf("update context menu: %w", err)
	}
	rep.Summary(len(tools))
	return nil
}
