package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"chartodo/internal/model"
)

type WriteOptions struct {
	Overwrite bool
}

type WriteResult struct {
	Written []string `json:"written" yaml:"written"`
}

// WriteLists writes <kind>.md for each list under toDir.
func WriteLists(lists map[model.Kind]*model.TaskList, toDir string, opt WriteOptions) (WriteResult, error) {
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toDir = filepath.Clean(toDir)
	if err := os.MkdirAll(toDir, 0o755); err != nil {
		return WriteResult{}, err
	}

	res := WriteResult{Written: []string{}}
	for _, kind := range model.Kinds() {
		l, ok := lists[kind]
		if !ok {
			continue
		}
		p := filepath.Join(toDir, string(kind)+".md")
		if err := writeFile(p, []byte(RenderListMarkdown(kind, l)), opt.Overwrite); err != nil {
			return res, err
		}
		res.Written = append(res.Written, p)
	}
	return res, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
