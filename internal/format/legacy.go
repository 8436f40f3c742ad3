package format

import (
	"bufio"
	"bytes"
	"errors"
	"strings"

	"chartodo/internal/model"
)

// Legacy plain-list text layout:
//
//	CHARTODO
//	<todo item>...
//	-----
//	DONE
//	<done item>...
const (
	LegacyTodoHeader = "CHARTODO"
	LegacyDoneHeader = "DONE"
	LegacySeparator  = "-----"
)

var ErrLegacyNoSeparator = errors.New("legacy list: missing ----- separator line")

// DecodeLegacy parses the line-oriented plain list format. Blank lines are
// skipped; the first remaining line of each section is dropped when it is that
// section's header. Lines are not validated here.
func DecodeLegacy(b []byte) (*model.TaskList, error) {
	l := model.NewTaskList()
	sc := bufio.NewScanner(bytes.NewReader(b))

	inDone := false
	sawSeparator := false
	first := true
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == LegacySeparator && !inDone {
			inDone = true
			sawSeparator = true
			first = true
			continue
		}
		if trimmed == "" {
			continue
		}
		if first {
			first = false
			if (!inDone && trimmed == LegacyTodoHeader) || (inDone && trimmed == LegacyDoneHeader) {
				continue
			}
		}
		if inDone {
			l.Done = append(l.Done, model.Task{Task: trimmed})
		} else {
			l.Todo = append(l.Todo, model.Task{Task: trimmed})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawSeparator {
		return nil, ErrLegacyNoSeparator
	}
	return l, nil
}

// EncodeLegacy writes l in the legacy layout. Schedule and repeat fields are
// not representable and are dropped.
func EncodeLegacy(l *model.TaskList) []byte {
	var buf bytes.Buffer
	buf.WriteString(LegacyTodoHeader + "\n")
	for _, t := range l.Todo {
		buf.WriteString(t.Task + "\n")
	}
	buf.WriteString(LegacySeparator + "\n")
	buf.WriteString(LegacyDoneHeader + "\n")
	for _, t := range l.Done {
		buf.WriteString(t.Task + "\n")
	}
	return buf.Bytes()
}
