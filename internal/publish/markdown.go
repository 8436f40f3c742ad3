package publish

import (
	"bytes"
	"strings"

	"chartodo/internal/model"
	"chartodo/internal/render"
)

var titles = map[model.Kind]string{
	model.KindPlain:     "Todo",
	model.KindDeadline:  "Deadlines",
	model.KindRepeating: "Repeating",
}

// RenderListMarkdown renders one list as a GitHub-style task list. Todo rows
// are unchecked, done rows checked; numbering matches the CLI positions.
func RenderListMarkdown(kind model.Kind, l *model.TaskList) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + titles[kind])
	writeLn("")

	writeLn("## Todo")
	writeLn("")
	if len(l.Todo) == 0 {
		writeLn("_empty_")
	}
	for _, t := range l.Todo {
		writeLn("- [ ] " + escape(t.Task) + render.Details(kind, t))
	}
	writeLn("")

	writeLn("## Done")
	writeLn("")
	if len(l.Done) == 0 {
		writeLn("_empty_")
	}
	for _, t := range l.Done {
		writeLn("- [x] " + escape(t.Task) + render.Details(kind, t))
	}

	return buf.String()
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

func escape(s string) string {
	return mdEscaper.Replace(s)
}
