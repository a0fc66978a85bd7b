package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/daily/internal/model"
	"github.com/idilsaglam/daily/internal/store"
	"github.com/idilsaglam/daily/internal/ui"
	"github.com/idilsaglam/daily/internal/view"
)

// row is a todo with its 1-based position in the full list, which is what
// done/rm/edit accept.
type row struct {
	n    int
	todo model.Todo
}

func (a *app) lsCmd() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List tasks",
		Args:  nargs(0, 0, "daily ls [--filter all|active|completed]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := model.ParseFilter(filter)
			return a.withStore(cmd, func(st *store.Store) error {
				ui.Panel(a.stdout, listLines(st.Todos(), f, a.cfg.UI.Group))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "all, active or completed")
	return cmd
}

func listLines(todos []model.Todo, f model.Filter, group bool) []string {
	t := ui.Current()
	d, p := view.Stats(todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(todos),
	)

	lines := []string{
		header,
		t.Muted.Render(ui.ProgressBar(d, d+p, 28)),
	}
	if f != model.FilterAll {
		lines = append(lines, t.Accent.Render(f.Label()))
	}
	lines = append(lines, "")

	rows := numbered(todos, f)
	if group {
		lines = append(lines, groupLines(rows)...)
	} else {
		lines = append(lines, flatLines(rows)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `daily add \"Buy milk\"`"))
	return lines
}

// numbered keeps the rows matching f, numbered by their place in todos.
func numbered(todos []model.Todo, f model.Filter) []row {
	keep := make(map[int64]bool)
	for _, td := range view.Project(todos, f) {
		keep[td.ID] = true
	}
	var rows []row
	for i, td := range todos {
		if keep[td.ID] {
			rows = append(rows, row{n: i + 1, todo: td})
		}
	}
	return rows
}

func flatLines(rows []row) []string {
	t := ui.Current()
	if len(rows) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		idx := fmt.Sprintf("%2d.", r.n)
		box, style := t.BoxUnchecked, t.Muted
		text := r.todo.Text
		if len([]rune(text)) > 80 {
			text = string([]rune(text)[:77]) + "..."
		}
		if r.todo.Completed {
			box, style = t.BoxChecked, t.Success
			text = t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Help.Render(idx), style.Render(box), text))
	}
	return out
}

func groupLines(rows []row) []string {
	t := ui.Current()
	var pend, done []row
	for _, r := range rows {
		if r.todo.Completed {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	section := func(title string, rs []row) []string {
		lines := []string{t.Accent.Render(title)}
		if len(rs) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, flatLines(rs)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
