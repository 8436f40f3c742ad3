package render

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"chartodo/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// ColorMode is the --color setting.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) ColorMode {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ColorAlways:
		return ColorAlways
	case ColorNever:
		return ColorNever
	default:
		return ColorAuto
	}
}

// Styled renders lists with lipgloss for a specific output.
type Styled struct {
	r     *lipgloss.Renderer
	Width int
	Now   func() time.Time
}

func NewStyled(w io.Writer, mode ColorMode) *Styled {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	default:
		if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return &Styled{r: r, Now: time.Now}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorAccent  = ac("27", "62")
	colorMuted   = ac("240", "243")
	colorOverdue = ac("160", "203")
	colorDue     = ac("94", "179")
)

func (s *Styled) header() lipgloss.Style {
	return s.r.NewStyle().Bold(true).Foreground(colorAccent)
}

func (s *Styled) muted() lipgloss.Style {
	st := s.r.NewStyle().Foreground(colorMuted)
	if s.r.HasDarkBackground() {
		st = st.Faint(true)
	}
	return st
}

func (s *Styled) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Render produces the same rows as Text, styled. Overdue todo deadlines are
// highlighted; done rows are muted. Rows longer than Width are truncated.
func (s *Styled) Render(kind model.Kind, l *model.TaskList) string {
	var b strings.Builder
	b.WriteString(s.header().Render(TodoHeader(kind)) + "\n")
	now := s.now()
	for i, t := range l.Todo {
		b.WriteString(s.row(kind, i+1, t, false, now) + "\n")
	}
	b.WriteString(s.muted().Render(Separator) + "\n")
	b.WriteString(s.header().Render(DoneHeader) + "\n")
	for i, t := range l.Done {
		b.WriteString(s.row(kind, i+1, t, true, now) + "\n")
	}
	return b.String()
}

func (s *Styled) row(kind model.Kind, n int, t model.Task, done bool, now time.Time) string {
	num := strconv.Itoa(n) + ": "
	text := t.Task
	details := Details(kind, t)
	if s.Width > 0 {
		full := ansi.Truncate(num+text+details, s.Width, "…")
		// Keep the split between description and details after truncation.
		if strings.HasPrefix(full, num+text) {
			details = strings.TrimPrefix(full, num+text)
		} else {
			text, details = strings.TrimPrefix(full, num), ""
		}
	}
	if done {
		return s.muted().Render(num + text + details)
	}
	detailStyle := s.r.NewStyle().Foreground(colorDue)
	if due, ok := t.Due(); ok && kind.Dated() && due.Before(now) {
		detailStyle = s.r.NewStyle().Bold(true).Foreground(colorOverdue)
	}
	return s.muted().Render(num) + text + detailStyle.Render(details)
}
