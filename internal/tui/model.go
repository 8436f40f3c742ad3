package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"chartodo/internal/model"
	"chartodo/internal/mutate"
	"chartodo/internal/render"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type pane int

const (
	paneTodo pane = iota
	paneDone
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

type statusDoneMsg struct{ seq int }

type viewModel struct {
	ctx    context.Context
	lists  Lists
	engine func(model.Kind) *mutate.Engine

	kinds   []model.Kind
	kindIdx int
	list    *model.TaskList

	pane   pane
	cursor int

	mode  mode
	input textinput.Model

	keys keyMap
	help help.Model

	status    string
	statusSeq int

	width  int
	height int
}

func newViewModel(ctx context.Context, opts Options) (viewModel, error) {
	eng := opts.Engine
	if eng == nil {
		eng = mutate.New
	}
	m := viewModel{
		ctx:    ctx,
		lists:  opts.Lists,
		engine: eng,
		kinds:  model.Kinds(),
		keys:   defaultKeys(),
		help:   help.New(),
	}
	for i, k := range m.kinds {
		if k == opts.Start {
			m.kindIdx = i
		}
	}

	m.input = textinput.New()
	m.input.CharLimit = 200
	m.input.Width = 60

	if err := m.load(); err != nil {
		return m, err
	}
	return m, nil
}

func (m viewModel) kind() model.Kind { return m.kinds[m.kindIdx] }

func (m *viewModel) load() error {
	l, err := m.lists.Load(m.ctx, m.kind())
	if err != nil {
		return err
	}
	m.list = l
	m.pane = paneTodo
	m.cursor = 0
	m.keys.Reset.SetEnabled(m.kind() == model.KindRepeating)
	return nil
}

func (m viewModel) rows() []model.Task {
	if m.pane == paneDone {
		return m.list.Done
	}
	return m.list.Todo
}

func (m *viewModel) clamp() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// apply runs fn against a copy of the current list and persists it on
// success. Refusals and failures only set the status line.
func (m *viewModel) apply(fn func(e *mutate.Engine, l *model.TaskList) error) tea.Cmd {
	next := m.list.Clone()
	if err := fn(m.engine(m.kind()), next); err != nil {
		return m.flash(err.Error())
	}
	if err := m.lists.Save(m.ctx, m.kind(), next); err != nil {
		return m.flash("save failed: " + err.Error())
	}
	m.list = next
	m.clamp()
	return nil
}

func (m *viewModel) flash(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg { return statusDoneMsg{seq: seq} })
}

func (m viewModel) position() []string {
	return []string{strconv.Itoa(m.cursor + 1)}
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case statusDoneMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m viewModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Pane):
		if m.pane == paneTodo {
			m.pane = paneDone
		} else {
			m.pane = paneTodo
		}
		m.clamp()
	case key.Matches(msg, m.keys.NextKind), key.Matches(msg, m.keys.PrevKind):
		step := 1
		if key.Matches(msg, m.keys.PrevKind) {
			step = len(m.kinds) - 1
		}
		m.kindIdx = (m.kindIdx + step) % len(m.kinds)
		if err := m.load(); err != nil {
			return m, m.flash(err.Error())
		}
	case key.Matches(msg, m.keys.Toggle):
		if len(m.rows()) == 0 {
			return m, nil
		}
		pos := m.position()
		if m.pane == paneTodo {
			return m, m.apply(func(e *mutate.Engine, l *model.TaskList) error { return e.Complete(l, pos) })
		}
		return m, m.apply(func(e *mutate.Engine, l *model.TaskList) error { return e.Reverse(l, pos) })
	case key.Matches(msg, m.keys.Remove):
		if len(m.rows()) == 0 {
			return m, nil
		}
		pos := m.position()
		if m.pane == paneTodo {
			return m, m.apply(func(e *mutate.Engine, l *model.TaskList) error { return e.RemoveTodo(l, pos) })
		}
		return m, m.apply(func(e *mutate.Engine, l *model.TaskList) error { return e.RemoveDone(l, pos) })
	case key.Matches(msg, m.keys.Reset):
		if m.pane != paneDone || len(m.rows()) == 0 {
			return m, nil
		}
		pos := m.position()
		return m, m.apply(func(e *mutate.Engine, l *model.TaskList) error { return e.Reset(l, pos) })
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Placeholder = addPrompt(m.kind())
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Edit):
		if m.pane != paneTodo || len(m.rows()) == 0 {
			return m, nil
		}
		m.mode = modeEdit
		m.input.Placeholder = "New text"
		m.input.SetValue(m.list.Todo[m.cursor].Task)
		m.input.CursorEnd()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m viewModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		md := m.mode
		m.mode = modeBrowse
		m.input.Blur()
		if md == modeEdit {
			pos := m.position()[0]
			return m, m.apply(func(e *mutate.Engine, l *model.TaskList) error { return e.Edit(l, pos, value) })
		}
		kind := m.kind()
		cmd := m.apply(func(e *mutate.Engine, l *model.TaskList) error {
			t, err := buildTask(e, kind, value)
			if err != nil {
				return err
			}
			res, err := e.Add(l, []model.Task{t})
			if err == nil && res.Dropped > 0 {
				return mutate.ErrTodoFull
			}
			return err
		})
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func addPrompt(kind model.Kind) string {
	switch kind {
	case model.KindDeadline:
		return "task YYYY-MM-DD HH:MM"
	case model.KindRepeating:
		return "task <n> <unit>"
	default:
		return "task"
	}
}

// buildTask reads the add prompt. For dated kinds the trailing two words are
// the schedule and everything before them is the description.
func buildTask(e *mutate.Engine, kind model.Kind, line string) (model.Task, error) {
	if kind == model.KindPlain {
		return e.NewTask(line)
	}
	words := splitShellWords(line)
	if len(words) < 3 {
		return model.Task{}, &mutate.ValidationError{Msg: "expected: " + addPrompt(kind)}
	}
	text := strings.Join(words[:len(words)-2], " ")
	a, b := words[len(words)-2], words[len(words)-1]
	if kind == model.KindDeadline {
		return e.NewDeadline(text, a, b)
	}
	return e.NewRepeating(text, a, b)
}

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Reverse(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "27", Dark: "62"})
	selectedStyle  = lipgloss.NewStyle().Reverse(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "243"})
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)

func (m viewModel) View() string {
	var b strings.Builder

	tabs := make([]string, 0, len(m.kinds))
	for i, k := range m.kinds {
		st := tabStyle
		if i == m.kindIdx {
			st = activeTabStyle
		}
		tabs = append(tabs, st.Render(string(k)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	kind := m.kind()
	b.WriteString(headerStyle.Render(render.TodoHeader(kind)) + "\n")
	m.writeRows(&b, kind, m.list.Todo, paneTodo)
	b.WriteString(dimStyle.Render(render.Separator) + "\n")
	b.WriteString(headerStyle.Render(render.DoneHeader) + "\n")
	m.writeRows(&b, kind, m.list.Done, paneDone)
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("add: " + m.input.View() + "\n")
	case modeEdit:
		b.WriteString("edit " + strconv.Itoa(m.cursor+1) + ": " + m.input.View() + "\n")
	default:
		if m.status != "" {
			b.WriteString(statusStyle.Render(m.status) + "\n")
		}
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m viewModel) writeRows(b *strings.Builder, kind model.Kind, ts []model.Task, p pane) {
	for i, t := range ts {
		line := render.Line(kind, i+1, t)
		if m.width > 2 {
			line = ansi.Truncate(line, m.width-2, "…")
		}
		switch {
		case p == m.pane && i == m.cursor:
			b.WriteString("> " + selectedStyle.Render(line))
		case p == paneDone:
			b.WriteString("  " + dimStyle.Render(line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
}
