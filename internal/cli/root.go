// Package cli wires daily's subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/daily/internal/config"
	"github.com/idilsaglam/daily/internal/logging"
	"github.com/idilsaglam/daily/internal/slot"
	"github.com/idilsaglam/daily/internal/store"
	"github.com/idilsaglam/daily/internal/ui"
)

// Exit codes: 0 ok, 1 runtime error, 2 usage error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad input; it maps to exit code 2.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	theme      string
	group      bool
	ephemeral  bool

	cfg config.Config
}

// NewRootCmd builds the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "daily",
		Short: "daily - a tiny todo list",
		Long: `daily keeps a short todo list in a durable slot.

Run without a subcommand to open the interactive list.`,
		Example: `  daily add "Buy milk"
  daily ls --filter active
  daily done 2
  daily edit #1736935200123 "Buy oat milk"
  daily rm 3`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runTUI,
	}
	root.Args = func(_ *cobra.Command, rest []string) error {
		if len(rest) > 0 {
			return usagef("unknown subcommand: %s", rest[0])
		}
		return nil
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $DAILY_CONFIG or <user config dir>/daily/config.toml)")
	pf.StringVar(&a.theme, "theme", "", "color theme: classic, neon, mono")
	pf.BoolVar(&a.group, "group", false, "group output by pending/done")
	pf.BoolVar(&a.ephemeral, "ephemeral", false, "keep todos in memory only")

	root.AddCommand(
		a.addCmd(),
		a.lsCmd(),
		a.doneCmd(),
		a.rmCmd(),
		a.editCmd(),
		a.clearCmd(),
		a.tuiCmd(),
		a.configCmd(),
	)
	return root
}

// Execute runs daily with args and returns the process exit code.
func Execute(args []string) int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	return exitError
}

// nargs checks the positional count and reports a usage line otherwise.
func nargs(min, max int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, got []string) error {
		if len(got) < min || (max >= 0 && len(got) > max) {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.theme != "" {
		cfg.UI.Theme = a.theme
	}
	if a.group {
		cfg.UI.Group = true
	}
	if a.ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{msg: err.Error()}
	}
	ui.SetTheme(cfg.UI.Theme)
	a.cfg = cfg
	return nil
}

// openStore opens the configured slot and restores the list from it.
func (a *app) openStore(ctx context.Context, logger *log.Logger) (*store.Store, func(), error) {
	openCtx, cancel := context.WithTimeout(ctx, a.cfg.Storage.Timeout.Duration())
	defer cancel()
	s, err := slot.Open(openCtx, a.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	st := store.Open(s, store.Options{
		Logger:  logger,
		Timeout: a.cfg.Storage.Timeout.Duration(),
	})
	closeFn := func() {
		if err := s.Close(); err != nil {
			logger.Warn("close storage", "err", err)
		}
	}
	return st, closeFn, nil
}

// withStore runs fn against the store using a stderr logger.
func (a *app) withStore(cmd *cobra.Command, fn func(*store.Store) error) error {
	logger := logging.New(a.cfg.Log, a.stderr)
	st, closeFn, err := a.openStore(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(st)
}
