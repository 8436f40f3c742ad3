package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"chartodo/internal/format"
	"chartodo/internal/model"
	"chartodo/internal/mutate"

	"github.com/charmbracelet/log"
)

type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return BackendJSON, nil
	case "sqlite":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown backend %q (expected json|sqlite)", s)
	}
}

const legacyFileName = "chartodo.txt"

// Store persists one TaskList per kind under Dir. Every command does one
// Load and at most one Save; nothing is locked, so concurrent processes race
// and the last writer wins.
type Store struct {
	Dir     string
	Backend Backend
	Log     *log.Logger
}

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store: data dir is not set")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) logger() *log.Logger {
	if s.Log == nil {
		return log.New(io.Discard)
	}
	return s.Log
}

func fileName(kind model.Kind) string {
	switch kind {
	case model.KindDeadline:
		return "deadline.json"
	case model.KindRepeating:
		return "repeating.json"
	default:
		return "chartodo.json"
	}
}

func (s Store) jsonPath(kind model.Kind) string {
	return filepath.Join(s.Dir, fileName(kind))
}

func (s Store) legacyPath() string {
	return filepath.Join(s.Dir, legacyFileName)
}

// Load reads the list for kind, creating an empty document if none exists.
func (s Store) Load(ctx context.Context, kind model.Kind) (*model.TaskList, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	var (
		l   *model.TaskList
		err error
	)
	switch s.Backend {
	case BackendSQLite:
		l, err = s.loadSQLite(ctx, kind)
	default:
		l, err = s.loadJSON(kind)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s list: %w", kind, err)
	}
	return l, nil
}

// Save replaces the whole persisted document for kind.
func (s Store) Save(ctx context.Context, kind model.Kind, l *model.TaskList) error {
	if l == nil {
		return errors.New("nil task list")
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	var err error
	switch s.Backend {
	case BackendSQLite:
		err = s.saveSQLite(ctx, kind, l)
	default:
		err = s.saveJSON(kind, l)
	}
	if err != nil {
		return fmt.Errorf("save %s list: %w", kind, err)
	}
	s.logger().Debug("saved list", "kind", kind, "backend", s.backendName(), "todo", len(l.Todo), "done", len(l.Done))
	return nil
}

func (s Store) backendName() Backend {
	if s.Backend == "" {
		return BackendJSON
	}
	return s.Backend
}

func (s Store) loadJSON(kind model.Kind) (*model.TaskList, error) {
	l, ok, err := s.readJSONFile(kind)
	if err != nil {
		return nil, err
	}
	if ok {
		return l, nil
	}

	l, err = s.initialList(kind)
	if err != nil {
		return nil, err
	}
	if err := s.saveJSON(kind, l); err != nil {
		return nil, err
	}
	return l, nil
}

// readJSONFile returns ok=false when the document does not exist yet.
func (s Store) readJSONFile(kind model.Kind) (*model.TaskList, bool, error) {
	path := s.jsonPath(kind)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	l, err := decodeDocument(path, b)
	if err != nil {
		return nil, false, err
	}
	s.logger().Debug("loaded list", "path", path, "todo", len(l.Todo), "done", len(l.Done))
	return l, true, nil
}

// initialList seeds a missing plain document from the legacy text file, if
// present; otherwise it is empty.
func (s Store) initialList(kind model.Kind) (*model.TaskList, error) {
	if kind != model.KindPlain {
		return model.NewTaskList(), nil
	}
	b, err := os.ReadFile(s.legacyPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewTaskList(), nil
		}
		return nil, err
	}
	raw, err := format.DecodeLegacy(b)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", s.legacyPath(), err)
	}
	l, res := mutate.New(kind).Import(raw)
	if res.Skipped > 0 || res.Dropped > 0 {
		s.logger().Warn("legacy list did not fit", "path", s.legacyPath(), "skipped", res.Skipped, "dropped", res.Dropped)
	}
	s.logger().Info("imported legacy list", "path", s.legacyPath(), "todo", len(l.Todo), "done", len(l.Done))
	return l, nil
}

func (s Store) saveJSON(kind model.Kind, l *model.TaskList) error {
	b, err := encodeDocument(l)
	if err != nil {
		return err
	}
	return os.WriteFile(s.jsonPath(kind), b, 0o644)
}

func decodeDocument(path string, b []byte) (*model.TaskList, error) {
	if err := validateDocument(path, b); err != nil {
		return nil, err
	}
	var l model.TaskList
	if err := json.Unmarshal(b, &l); err != nil {
		return nil, err
	}
	if l.Todo == nil {
		l.Todo = []model.Task{}
	}
	if l.Done == nil {
		l.Done = []model.Task{}
	}
	return &l, nil
}

func encodeDocument(l *model.TaskList) ([]byte, error) {
	out := *l
	if out.Todo == nil {
		out.Todo = []model.Task{}
	}
	if out.Done == nil {
		out.Done = []model.Task{}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
