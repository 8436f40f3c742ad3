package publish

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chartodo/internal/model"
)

func TestRenderListMarkdown(t *testing.T) {
	t.Parallel()

	l := &model.TaskList{
		Todo: []model.Task{{Task: "pay *rent*", Date: "2024-04-01", Time: "09:00"}},
		Done: []model.Task{{Task: "dentist", Date: "2024-03-01", Time: "10:30"}},
	}
	md := RenderListMarkdown(model.KindDeadline, l)
	for _, want := range []string{
		"# Deadlines\n",
		"- [ ] pay \\*rent\\* (due: 2024-04-01 09:00)\n",
		"- [x] dentist (due: 2024-03-01 10:30)\n",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}

	empty := RenderListMarkdown(model.KindPlain, model.NewTaskList())
	if strings.Count(empty, "_empty_") != 2 {
		t.Fatalf("expected empty markers:\n%s", empty)
	}
}

func TestWriteLists_Overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lists := map[model.Kind]*model.TaskList{
		model.KindPlain:     {Todo: []model.Task{{Task: "a"}}, Done: []model.Task{}},
		model.KindRepeating: model.NewTaskList(),
	}

	res, err := WriteLists(lists, dir, WriteOptions{})
	if err != nil {
		t.Fatalf("WriteLists: %v", err)
	}
	want := []string{filepath.Join(dir, "plain.md"), filepath.Join(dir, "repeating.md")}
	if len(res.Written) != 2 || res.Written[0] != want[0] || res.Written[1] != want[1] {
		t.Fatalf("written=%v, want %v", res.Written, want)
	}
	b, err := os.ReadFile(want[0])
	if err != nil || !strings.Contains(string(b), "- [ ] a\n") {
		t.Fatalf("plain.md: %q (%v)", b, err)
	}

	if _, err := WriteLists(lists, dir, WriteOptions{}); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if _, err := WriteLists(lists, dir, WriteOptions{Overwrite: true}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if _, err := WriteLists(lists, " ", WriteOptions{}); err == nil {
		t.Fatalf("expected missing --to error")
	}
}
