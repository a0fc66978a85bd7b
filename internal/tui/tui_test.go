package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/daily/internal/model"
	"github.com/idilsaglam/daily/internal/slot"
	"github.com/idilsaglam/daily/internal/store"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func newModel(t *testing.T, texts ...string) (Model, *store.Store) {
	t.Helper()
	st := store.Open(slot.NewMemory(), store.Options{})
	// added oldest first so the list reads texts[len-1] ... texts[0]
	for _, s := range texts {
		if _, err := st.Add(s); err != nil {
			t.Fatal(err)
		}
	}
	return New(st, Options{Clipboard: func(string) error { return nil }}), st
}

func texts(todos []model.Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.Text
	}
	return out
}

func TestAddFlow(t *testing.T) {
	m, st := newModel(t)

	m = press(t, m, runes("a"), runes("buy milk"), enter)
	if st.Len() != 1 || st.Todos()[0].Text != "buy milk" {
		t.Fatalf("store after add: %+v", st.Todos())
	}
	if m.mode != modeAdd {
		t.Error("prompt should stay open for the next task")
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}

	// blank submit is a no-op
	m = press(t, m, runes("   "), enter)
	if st.Len() != 1 {
		t.Errorf("blank submit added a todo: %+v", st.Todos())
	}

	m = press(t, m, esc)
	if m.mode != modeBrowse {
		t.Error("esc should close the prompt")
	}
	if got := texts(m.Visible()); len(got) != 1 || got[0] != "buy milk" {
		t.Errorf("visible: %v", got)
	}
}

func TestToggleAndFilters(t *testing.T) {
	m, st := newModel(t, "one", "two", "three")

	// cursor on "three" (index 0); complete it
	m = press(t, m, space)
	if got, _ := st.Get(st.Todos()[0].ID); !got.Completed {
		t.Fatal("space should toggle the selected todo")
	}

	m = press(t, m, tab)
	if m.Filter() != model.FilterActive {
		t.Fatalf("filter: got %s, want active", m.Filter())
	}
	if got := texts(m.Visible()); strings.Join(got, ",") != "two,one" {
		t.Errorf("active rows: %v", got)
	}

	m = press(t, m, tab)
	if got := texts(m.Visible()); strings.Join(got, ",") != "three" {
		t.Errorf("completed rows: %v", got)
	}

	m = press(t, m, runes("1"))
	if m.Filter() != model.FilterAll || len(m.Visible()) != 3 {
		t.Errorf("all filter: %s %v", m.Filter(), texts(m.Visible()))
	}
}

func TestEditFlow(t *testing.T) {
	m, st := newModel(t, "old")

	m = press(t, m, runes("e"))
	if m.mode != modeEdit || m.input.Value() != "old" {
		t.Fatalf("edit prompt: mode=%v value=%q", m.mode, m.input.Value())
	}

	// clear the field and submit: edit is discarded
	m.input.SetValue("")
	m = press(t, m, enter)
	if st.Todos()[0].Text != "old" {
		t.Errorf("blank edit changed text to %q", st.Todos()[0].Text)
	}
	if m.mode != modeBrowse {
		t.Error("submit should close the edit prompt")
	}

	m = press(t, m, enter) // enter also opens edit
	m.input.SetValue("new")
	m = press(t, m, enter)
	if st.Todos()[0].Text != "new" {
		t.Errorf("text: got %q, want new", st.Todos()[0].Text)
	}
}

func TestDeleteAndClear(t *testing.T) {
	m, st := newModel(t, "one", "two", "three")

	m = press(t, m, down, runes("d"))
	if got := texts(st.Todos()); strings.Join(got, ",") != "three,one" {
		t.Fatalf("after delete: %v", got)
	}

	m = press(t, m, space) // cursor stays on index 1 -> "one"
	m = press(t, m, runes("c"))
	if got := texts(st.Todos()); strings.Join(got, ",") != "three" {
		t.Errorf("after clear: %v", got)
	}
	if s, warn := m.Status(); warn || !strings.Contains(s, "cleared 1") {
		t.Errorf("status: %q warn=%v", s, warn)
	}
}

func TestYank(t *testing.T) {
	st := store.Open(slot.NewMemory(), store.Options{})
	st.Add("copy me")
	var got string
	m := New(st, Options{Clipboard: func(s string) error { got = s; return nil }})

	m = press(t, m, runes("y"))
	if got != "copy me" {
		t.Errorf("clipboard: got %q", got)
	}

	m = New(st, Options{Clipboard: func(string) error { return errors.New("no display") }})
	m = press(t, m, runes("y"))
	if s, warn := m.Status(); !warn || !strings.Contains(s, "no display") {
		t.Errorf("status: %q warn=%v", s, warn)
	}
}

type readOnlySlot struct{ *slot.Memory }

func (readOnlySlot) Set(context.Context, string, []byte) error {
	return errors.New("read-only")
}

func TestPersistFailureShowsWarning(t *testing.T) {
	st := store.Open(readOnlySlot{slot.NewMemory()}, store.Options{})
	m := New(st, Options{Clipboard: func(string) error { return nil }})

	m = press(t, m, runes("a"), runes("still here"), enter)
	if st.Len() != 1 {
		t.Fatalf("todo should be kept in memory, len=%d", st.Len())
	}
	if s, warn := m.Status(); !warn || !strings.Contains(s, "read-only") {
		t.Errorf("status: %q warn=%v", s, warn)
	}
}

func TestRestoreErrorShownAtStart(t *testing.T) {
	mem := slot.NewMemory()
	mem.Set(context.Background(), store.Key, []byte("not json"))
	m := New(store.Open(mem, store.Options{}), Options{})
	if s, warn := m.Status(); !warn || !strings.Contains(s, "unreadable") {
		t.Errorf("status: %q warn=%v", s, warn)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewRendersTabsAndRows(t *testing.T) {
	m, _ := newModel(t, "write report")
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	out := m.View()
	for _, want := range []string{"all tasks", "active tasks", "complete tasks", "write report", "kapanaki daily"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
