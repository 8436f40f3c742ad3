package docs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

//go:embed content/*.md
var contentFS embed.FS

func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	var topics []string
	for _, path := range entries {
		base := filepath.Base(path)
		topic := strings.TrimSuffix(base, filepath.Ext(base))
		if topic != "" {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

func Get(topic string) (string, bool) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", false
	}
	topic = strings.ToLower(topic)
	b, err := contentFS.ReadFile("content/" + topic + ".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}

var (
	renderMu sync.Mutex
	// keyed by style + wrap width
	renderers = map[string]*glamour.TermRenderer{}
)

// Render formats markdown for a terminal of the given width. On any renderer
// failure the markdown is returned unchanged.
func Render(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 80
	}
	if style == "" {
		style = Style()
	}

	key := style + ":" + strconv.Itoa(width)
	renderMu.Lock()
	r := renderers[key]
	if r == nil {
		// WithAutoStyle can block on terminal background queries.
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			renderMu.Unlock()
			return md
		}
		renderers[key] = rr
		r = rr
	}
	renderMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}

// Style picks a glamour standard style: CHARTODO_DOCS_STYLE wins, NO_COLOR
// forces plain output, dark otherwise.
func Style() string {
	switch v := strings.ToLower(strings.TrimSpace(os.Getenv("CHARTODO_DOCS_STYLE"))); v {
	case "light", "dark", "notty", "ascii":
		return v
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return "notty"
	}
	return "dark"
}
