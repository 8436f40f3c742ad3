package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"chartodo/internal/model"

	"github.com/charmbracelet/x/ansi"
)

func scenario() *model.TaskList {
	mk := func(ns ...string) []model.Task {
		out := []model.Task{}
		for _, n := range ns {
			out = append(out, model.Task{Task: n})
		}
		return out
	}
	return &model.TaskList{
		Todo: mk("this", "is", "the", "todo", "list"),
		Done: mk("this", "is", "the", "done"),
	}
}

func TestText_Plain(t *testing.T) {
	got := Text(model.KindPlain, scenario())
	want := strings.Join([]string{
		"CHARTODO",
		"1: this",
		"2: is",
		"3: the",
		"4: todo",
		"5: list",
		"-----",
		"DONE",
		"1: this",
		"2: is",
		"3: the",
		"4: done",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected render:\n%s\nwant:\n%s", got, want)
	}
}

func TestText_Empty(t *testing.T) {
	got := Text(model.KindDeadline, model.NewTaskList())
	if got != "DEADLINES\n-----\nDONE\n" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestText_Idempotent(t *testing.T) {
	l := scenario()
	if a, b := Text(model.KindPlain, l), Text(model.KindPlain, l); a != b {
		t.Fatalf("render not idempotent")
	}
}

func TestLine_Details(t *testing.T) {
	dl := model.Task{Task: "pay rent", Date: "2024-04-01", Time: "09:00"}
	if got := Line(model.KindDeadline, 2, dl); got != "2: pay rent (due: 2024-04-01 09:00)" {
		t.Fatalf("deadline line %q", got)
	}
	rp := model.Task{Task: "water", Date: "2024-04-03", Time: "18:00", RepeatNumber: 1, RepeatUnit: model.UnitWeeks}
	if got := Line(model.KindRepeating, 1, rp); got != "1: water (due: 2024-04-03 18:00, every 1 week)" {
		t.Fatalf("repeating line %q", got)
	}
	rp.RepeatNumber = 3
	if got := Line(model.KindRepeating, 1, rp); got != "1: water (due: 2024-04-03 18:00, every 3 weeks)" {
		t.Fatalf("repeating plural line %q", got)
	}
	// Plain lists never show schedule details.
	if got := Line(model.KindPlain, 1, dl); got != "1: pay rent" {
		t.Fatalf("plain line %q", got)
	}
}

func TestStyled_NeverMatchesText(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyled(&buf, ColorNever)
	s.Now = func() time.Time { return time.Date(2024, 4, 2, 0, 0, 0, 0, time.Local) }
	l := &model.TaskList{
		Todo: []model.Task{
			{Task: "overdue", Date: "2024-04-01", Time: "09:00"},
			{Task: "upcoming", Date: "2024-05-01", Time: "09:00"},
		},
		Done: []model.Task{{Task: "old", Date: "2024-03-01", Time: "09:00"}},
	}
	got := ansi.Strip(s.Render(model.KindDeadline, l))
	if got != Text(model.KindDeadline, l) {
		t.Fatalf("styled (stripped) differs from text:\n%s\nvs\n%s", got, Text(model.KindDeadline, l))
	}
	if again := ansi.Strip(s.Render(model.KindDeadline, l)); again != got {
		t.Fatalf("styled render not idempotent")
	}
}

func TestStyled_Truncates(t *testing.T) {
	s := NewStyled(&bytes.Buffer{}, ColorNever)
	s.Width = 12
	l := &model.TaskList{Todo: []model.Task{{Task: "a very long description indeed"}}, Done: []model.Task{}}
	out := ansi.Strip(s.Render(model.KindPlain, l))
	lines := strings.Split(out, "\n")
	if ansi.StringWidth(lines[1]) > 12 {
		t.Fatalf("row not truncated: %q", lines[1])
	}
	if !strings.HasPrefix(lines[1], "1: a very") || !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("unexpected truncated row %q", lines[1])
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("ALWAYS") != ColorAlways || ParseColorMode("never") != ColorNever || ParseColorMode("") != ColorAuto || ParseColorMode("junk") != ColorAuto {
		t.Fatalf("unexpected color mode parsing")
	}
}
