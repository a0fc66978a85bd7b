package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/daily/internal/logging"
	"github.com/idilsaglam/daily/internal/model"
	"github.com/idilsaglam/daily/internal/tui"
)

func (a *app) tuiCmd() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list (default)",
		Args:  nargs(0, 0, "daily tui [--filter all|active|completed]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.startTUI(cmd, model.ParseFilter(filter))
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "starting filter")
	return cmd
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	return a.startTUI(cmd, model.FilterAll)
}

func (a *app) startTUI(cmd *cobra.Command, f model.Filter) error {
	// The TUI owns the terminal; logs go to the configured file, if any.
	logger, closer, err := logging.ForTUI(a.cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	st, closeFn, err := a.openStore(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer closeFn()

	return tui.Run(st, tui.Options{Filter: f})
}
