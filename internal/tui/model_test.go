package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"chartodo/internal/model"
	"chartodo/internal/mutate"

	tea "github.com/charmbracelet/bubbletea"
)

type memLists struct {
	lists map[model.Kind]*model.TaskList
	saves int
	fail  error
}

func (m *memLists) Load(_ context.Context, kind model.Kind) (*model.TaskList, error) {
	if l, ok := m.lists[kind]; ok {
		return l.Clone(), nil
	}
	return model.NewTaskList(), nil
}

func (m *memLists) Save(_ context.Context, kind model.Kind, l *model.TaskList) error {
	if m.fail != nil {
		return m.fail
	}
	m.saves++
	m.lists[kind] = l.Clone()
	return nil
}

func fixedEngine(kind model.Kind) *mutate.Engine {
	e := mutate.New(kind)
	e.Now = func() time.Time { return time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local) }
	return e
}

func newTestModel(t *testing.T, store *memLists, start model.Kind) viewModel {
	t.Helper()
	m, err := newViewModel(context.Background(), Options{Lists: store, Engine: fixedEngine, Start: start})
	if err != nil {
		t.Fatalf("newViewModel: %v", err)
	}
	return m
}

func press(t *testing.T, m viewModel, msgs ...tea.KeyMsg) viewModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		vm, ok := next.(viewModel)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		m = vm
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func plainStore(todo ...string) *memLists {
	l := model.NewTaskList()
	for _, s := range todo {
		l.Todo = append(l.Todo, model.Task{Task: s})
	}
	return &memLists{lists: map[model.Kind]*model.TaskList{model.KindPlain: l}}
}

func TestView_CompleteSelectedRow(t *testing.T) {
	store := plainStore("a", "b", "c")
	m := newTestModel(t, store, model.KindPlain)

	m = press(t, m, runes("j"), runes("d"))

	got := store.lists[model.KindPlain]
	if len(got.Todo) != 2 || got.Todo[0].Task != "a" || got.Todo[1].Task != "c" {
		t.Fatalf("unexpected todo after done: %+v", got.Todo)
	}
	if len(got.Done) != 1 || got.Done[0].Task != "b" {
		t.Fatalf("unexpected done: %+v", got.Done)
	}
	if m.cursor != 1 {
		t.Fatalf("cursor=%d, want 1", m.cursor)
	}
}

func TestView_ReverseAndRemoveOnDonePane(t *testing.T) {
	store := plainStore("a")
	store.lists[model.KindPlain].Done = []model.Task{{Task: "x"}, {Task: "y"}}
	m := newTestModel(t, store, model.KindPlain)

	m = press(t, m, tab, runes("d"))
	got := store.lists[model.KindPlain]
	if len(got.Todo) != 2 || got.Todo[1].Task != "x" {
		t.Fatalf("notdone did not move x back: %+v", got.Todo)
	}

	m = press(t, m, runes("x"))
	got = store.lists[model.KindPlain]
	if len(got.Done) != 0 {
		t.Fatalf("rmdone left %+v", got.Done)
	}
	if m.cursor != 0 {
		t.Fatalf("cursor=%d on empty pane", m.cursor)
	}
}

func TestView_AddPlain(t *testing.T) {
	store := plainStore()
	m := newTestModel(t, store, model.KindPlain)

	m = press(t, m, runes("a"), runes("buy milk"), enter)

	got := store.lists[model.KindPlain]
	if len(got.Todo) != 1 || got.Todo[0].Task != "buy milk" {
		t.Fatalf("unexpected todo %+v", got.Todo)
	}
	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode after enter")
	}
}

func TestView_AddDeadlineKeepsOrder(t *testing.T) {
	store := &memLists{lists: map[model.Kind]*model.TaskList{
		model.KindDeadline: {Todo: []model.Task{{Task: "later", Date: "2024-05-01", Time: "09:00"}}, Done: []model.Task{}},
	}}
	m := newTestModel(t, store, model.KindDeadline)

	press(t, m, runes("a"), runes("pay rent 2024-04-01 09:00"), enter)

	got := store.lists[model.KindDeadline]
	if len(got.Todo) != 2 || got.Todo[0].Task != "pay rent" || got.Todo[1].Task != "later" {
		t.Fatalf("unexpected deadline order %+v", got.Todo)
	}
}

func TestView_AddInvalidShowsStatus(t *testing.T) {
	store := &memLists{lists: map[model.Kind]*model.TaskList{}}
	m := newTestModel(t, store, model.KindDeadline)

	m = press(t, m, runes("a"), runes("x 2023-02-29 09:00"), enter)

	if store.saves != 0 {
		t.Fatalf("invalid add was saved")
	}
	if !strings.Contains(m.status, "2023-02-29") {
		t.Fatalf("status %q does not mention the bad date", m.status)
	}
}

func TestView_AddRepeating(t *testing.T) {
	store := &memLists{lists: map[model.Kind]*model.TaskList{}}
	m := newTestModel(t, store, model.KindRepeating)

	press(t, m, runes("a"), runes("water plants 3 days"), enter)

	got := store.lists[model.KindRepeating]
	if got == nil || len(got.Todo) != 1 {
		t.Fatalf("repeating task not saved: %+v", got)
	}
	task := got.Todo[0]
	if task.Task != "water plants" || task.Date != "2024-03-13" || task.Time != "09:30" || task.RepeatUnit != model.UnitDays {
		t.Fatalf("unexpected repeating task %+v", task)
	}
}

func TestView_EditAndEscape(t *testing.T) {
	store := plainStore("old")
	m := newTestModel(t, store, model.KindPlain)

	m = press(t, m, runes("e"), esc)
	if m.mode != modeBrowse || store.saves != 0 {
		t.Fatalf("escape should cancel without saving")
	}

	m = press(t, m, runes("e"), runes("er"), enter)
	if got := store.lists[model.KindPlain].Todo[0].Task; got != "older" {
		t.Fatalf("edit produced %q", got)
	}
}

func TestView_SwitchKindsAndSaveFailure(t *testing.T) {
	store := plainStore("a")
	m := newTestModel(t, store, model.KindPlain)

	m = press(t, m, runes("l"))
	if m.kind() != model.KindDeadline {
		t.Fatalf("kind=%s, want deadline", m.kind())
	}
	m = press(t, m, runes("h"), runes("h"))
	if m.kind() != model.KindRepeating {
		t.Fatalf("kind=%s, want repeating", m.kind())
	}

	m = press(t, m, runes("l"))
	store.fail = errors.New("disk full")
	m = press(t, m, runes("d"))
	if !strings.Contains(m.status, "disk full") {
		t.Fatalf("status %q", m.status)
	}
	if len(m.list.Todo) != 1 {
		t.Fatalf("failed save must keep the shown list")
	}
}

func TestView_RendersHeadersAndHelp(t *testing.T) {
	store := plainStore("a")
	m := newTestModel(t, store, model.KindPlain)
	out := m.View()
	for _, want := range []string{"CHARTODO", "DONE", "1: a", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}
