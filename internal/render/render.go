// Package render formats task lists for display.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"chartodo/internal/model"
)

const (
	DoneHeader = "DONE"
	Separator  = "-----"
)

// TodoHeader is the literal printed above each kind's todo column.
func TodoHeader(kind model.Kind) string {
	switch kind {
	case model.KindDeadline:
		return "DEADLINES"
	case model.KindRepeating:
		return "REPEATING"
	default:
		return "CHARTODO"
	}
}

// Line renders one numbered entry: "{n}: {task}" plus schedule details for
// date-bearing kinds.
func Line(kind model.Kind, n int, t model.Task) string {
	return strconv.Itoa(n) + ": " + t.Task + Details(kind, t)
}

// Details is the suffix after the description ("" for plain tasks).
func Details(kind model.Kind, t model.Task) string {
	if !kind.Dated() || !t.HasSchedule() {
		return ""
	}
	due := strings.TrimSpace(t.Date + " " + t.Time)
	if kind == model.KindRepeating && t.Repeats() {
		return fmt.Sprintf(" (due: %s, every %d %s)", due, t.RepeatNumber, t.RepeatUnit.Label(t.RepeatNumber))
	}
	return fmt.Sprintf(" (due: %s)", due)
}

// Text is the plain, uncolored rendering. It is a pure function of its
// inputs.
func Text(kind model.Kind, l *model.TaskList) string {
	var b strings.Builder
	b.WriteString(TodoHeader(kind) + "\n")
	for i, t := range l.Todo {
		b.WriteString(Line(kind, i+1, t) + "\n")
	}
	b.WriteString(Separator + "\n")
	b.WriteString(DoneHeader + "\n")
	for i, t := range l.Done {
		b.WriteString(Line(kind, i+1, t) + "\n")
	}
	return b.String()
}
