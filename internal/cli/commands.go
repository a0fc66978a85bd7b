package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/daily/internal/model"
	"github.com/idilsaglam/daily/internal/store"
	"github.com/idilsaglam/daily/internal/ui"
)

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new task (text can be multiple words)",
		Args:  nargs(1, -1, "daily add <text...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if model.Blank(text) {
				return usagef("add: empty text")
			}
			return a.withStore(cmd, func(st *store.Store) error {
				if _, err := st.Add(text); err != nil {
					return fmt.Errorf("save: %w", err)
				}
				ui.OK(a.stdout, "added")
				return nil
			})
		},
	}
}

func (a *app) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <row|#id>",
		Short: "Toggle done for a task",
		Args:  nargs(1, 1, "daily done <row|#id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(st *store.Store) error {
				id, err := resolveRef(args[0], st.Todos())
				if err != nil {
					return err
				}
				if _, err := st.Toggle(id); err != nil {
					return fmt.Errorf("save: %w", err)
				}
				ui.OK(a.stdout, "toggled")
				return nil
			})
		},
	}
}

func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <row|#id>",
		Aliases: []string{"delete"},
		Short:   "Remove a task",
		Args:    nargs(1, 1, "daily rm <row|#id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(st *store.Store) error {
				id, err := resolveRef(args[0], st.Todos())
				if err != nil {
					return err
				}
				if _, err := st.Delete(id); err != nil {
					return fmt.Errorf("save: %w", err)
				}
				ui.OK(a.stdout, "removed")
				return nil
			})
		},
	}
}

func (a *app) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <row|#id> <text...>",
		Short: "Replace the text of a task",
		Args:  nargs(2, -1, "daily edit <row|#id> <text...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			return a.withStore(cmd, func(st *store.Store) error {
				id, err := resolveRef(args[0], st.Todos())
				if err != nil {
					return err
				}
				changed, err := st.Edit(id, text)
				if err != nil {
					return fmt.Errorf("save: %w", err)
				}
				if !changed {
					ui.Warn(a.stdout, "blank text, task left unchanged")
					return nil
				}
				ui.OK(a.stdout, "edited")
				return nil
			})
		},
	}
}

func (a *app) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every completed task",
		Args:  nargs(0, 0, "daily clear"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, func(st *store.Store) error {
				n, err := st.ClearCompleted()
				if err != nil {
					return fmt.Errorf("save: %w", err)
				}
				ui.OK(a.stdout, fmt.Sprintf("cleared %d", n))
				return nil
			})
		},
	}
}
