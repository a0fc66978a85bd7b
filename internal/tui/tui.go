// Package tui is the interactive todo list.
//
// The model never keeps its own copy of todo state: every key that changes
// something calls the store, then rebuilds the visible rows from
// view.Project(store.Todos(), filter).
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/daily/internal/model"
	"github.com/idilsaglam/daily/internal/store"
	"github.com/idilsaglam/daily/internal/ui"
	"github.com/idilsaglam/daily/internal/view"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

type Options struct {
	// Filter is the starting filter; empty means all.
	Filter model.Filter
	// Clipboard receives copied text. Nil uses the system clipboard.
	Clipboard func(string) error
}

type Model struct {
	store  *store.Store
	filter model.Filter
	keys   keyMap

	list  list.Model
	input textinput.Model

	mode   mode
	editID int64

	status     string
	statusWarn bool

	width, height int
	clipboard     func(string) error
}

// New builds the model over st.
func New(st *store.Store, opts Options) Model {
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(true)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("task", "tasks")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 500

	m := Model{
		store:     st,
		filter:    model.ParseFilter(string(opts.Filter)),
		keys:      keys,
		list:      l,
		input:     ti,
		width:     80,
		height:    24,
		clipboard: opts.Clipboard,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if err := st.RestoreErr(); err != nil {
		m.warn("saved list unreadable, starting empty: " + err.Error())
	}
	m.refresh()
	m.resize()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(st *store.Store, opts Options) error {
	_, err := tea.NewProgram(New(st, opts), tea.WithAltScreen()).Run()
	return err
}

// Filter is the current filter mode.
func (m Model) Filter() model.Filter { return m.filter }

// Visible returns the rows currently listed.
func (m Model) Visible() []model.Todo {
	items := m.list.Items()
	out := make([]model.Todo, 0, len(items))
	for _, it := range items {
		if li, ok := it.(listItem); ok {
			out = append(out, li.todo)
		}
	}
	return out
}

// Status returns the status line text and whether it is a warning.
func (m Model) Status() (string, bool) { return m.status, m.statusWarn }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeEdit:
		return m.updateEdit(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Add):
		return m.openInput(modeAdd, 0, "")

	case key.Matches(km, m.keys.Edit):
		if t, ok := m.selected(); ok {
			return m.openInput(modeEdit, t.ID, t.Text)
		}
		return m, nil

	case key.Matches(km, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			_, err := m.store.Toggle(t.ID)
			m.afterChange(err, "")
		}
		return m, nil

	case key.Matches(km, m.keys.Delete):
		if t, ok := m.selected(); ok {
			_, err := m.store.Delete(t.ID)
			m.afterChange(err, "deleted")
		}
		return m, nil

	case key.Matches(km, m.keys.Clear):
		n, err := m.store.ClearCompleted()
		if n > 0 || err != nil {
			m.afterChange(err, fmt.Sprintf("cleared %d completed", n))
		}
		return m, nil

	case key.Matches(km, m.keys.Yank):
		if t, ok := m.selected(); ok {
			if err := m.clipboard(t.Text); err != nil {
				m.warn("copy failed: " + err.Error())
			} else {
				m.info("copied")
			}
		}
		return m, nil

	case key.Matches(km, m.keys.NextFilter):
		m.setFilter(m.filter.Next())
		return m, nil
	case key.Matches(km, m.keys.All):
		m.setFilter(model.FilterAll)
		return m, nil
	case key.Matches(km, m.keys.Active):
		m.setFilter(model.FilterActive)
		return m, nil
	case key.Matches(km, m.keys.Completed):
		m.setFilter(model.FilterCompleted)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Submit):
			// Blank input is ignored and the prompt stays open.
			changed, err := m.store.Add(m.input.Value())
			if changed {
				m.input.SetValue("")
				m.list.Select(0)
				m.afterChange(err, "added")
			}
			return m, nil
		case key.Matches(km, m.keys.Cancel):
			return m.closeInput(), nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Submit):
			// Blank text discards the edit.
			changed, err := m.store.Edit(m.editID, m.input.Value())
			m = m.closeInput()
			if changed {
				m.afterChange(err, "")
			}
			return m, nil
		case key.Matches(km, m.keys.Cancel):
			return m.closeInput(), nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) openInput(md mode, id int64, value string) (Model, tea.Cmd) {
	m.mode = md
	m.editID = id
	m.input.SetValue(value)
	m.input.CursorEnd()
	if md == modeAdd {
		m.input.Placeholder = "type your task here to add"
	} else {
		m.input.Placeholder = "edit task..."
	}
	cmd := m.input.Focus()
	m.resize()
	return m, cmd
}

func (m Model) closeInput() Model {
	m.mode = modeBrowse
	m.editID = 0
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
	return m
}

func (m Model) selected() (model.Todo, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return li.todo, true
}

func (m *Model) setFilter(f model.Filter) {
	m.filter = f
	m.list.Select(0)
	m.refresh()
}

// afterChange rebuilds the rows and reports a failed write as a warning.
func (m *Model) afterChange(err error, done string) {
	m.refresh()
	switch {
	case err != nil:
		m.warn("not saved: " + err.Error())
	case done != "":
		m.info(done)
	default:
		m.status, m.statusWarn = "", false
	}
}

func (m *Model) refresh() {
	todos := m.store.Todos()
	shown := view.Project(todos, m.filter)
	items := make([]list.Item, 0, len(shown))
	for _, t := range shown {
		items = append(items, listItem{todo: t})
	}
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}

	t := ui.Current()
	done, pending := view.Stats(todos)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		"kapanaki daily",
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(todos),
	)
}

func (m *Model) resize() {
	// frame (2) + tabs (2) + status (1), plus the input box when open
	chrome := 5
	if m.mode != modeBrowse {
		chrome += 4
	}
	w, h := m.width-4, m.height-chrome
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
	m.input.Width = w - 4
}

func (m *Model) info(s string) { m.status, m.statusWarn = s, false }
func (m *Model) warn(s string) { m.status, m.statusWarn = s, true }

func (m Model) View() string {
	t := ui.Current()

	var tabs []string
	for _, f := range model.Filters {
		label := f.Label()
		if f == m.filter {
			tabs = append(tabs, t.Selected.Render(" "+label+" "))
		} else {
			tabs = append(tabs, t.Muted.Render(" "+label+" "))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(tabs, t.Muted.Render("│")))
	b.WriteString("\n\n")
	b.WriteString(m.list.View())

	if m.mode != modeBrowse {
		title := "Add task"
		if m.mode == modeEdit {
			title = "Edit task"
		}
		b.WriteString("\n")
		b.WriteString(ui.Frame(t.Accent.Render(title) + "\n" + m.input.View()))
	}

	b.WriteString("\n")
	switch {
	case m.status == "":
	case m.statusWarn:
		b.WriteString(t.Error.Render(t.SymWarn + " " + m.status))
	default:
		b.WriteString(t.Success.Render(t.SymOK + " " + m.status))
	}
	return ui.Frame(b.String())
}
