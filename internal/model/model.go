package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Kind selects one of the three independent task lists.
type Kind string

const (
	KindPlain     Kind = "plain"
	KindDeadline  Kind = "deadline"
	KindRepeating Kind = "repeating"
)

func Kinds() []Kind {
	return []Kind{KindPlain, KindDeadline, KindRepeating}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "todo", "chartodo":
		return KindPlain, nil
	case "deadline", "dl":
		return KindDeadline, nil
	case "repeating", "rp":
		return KindRepeating, nil
	default:
		return "", fmt.Errorf("unknown list kind: %q", s)
	}
}

// Dated reports whether tasks of this kind carry a due date and time.
func (k Kind) Dated() bool {
	return k == KindDeadline || k == KindRepeating
}

type RepeatUnit string

const (
	UnitMinutes RepeatUnit = "minutes"
	UnitHours   RepeatUnit = "hours"
	UnitDays    RepeatUnit = "days"
	UnitWeeks   RepeatUnit = "weeks"
	UnitMonths  RepeatUnit = "months"
	UnitYears   RepeatUnit = "years"
)

// ParseRepeatUnit accepts singular and plural spellings and returns the plural form.
func ParseRepeatUnit(s string) (RepeatUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minute", "minutes":
		return UnitMinutes, true
	case "hour", "hours":
		return UnitHours, true
	case "day", "days":
		return UnitDays, true
	case "week", "weeks":
		return UnitWeeks, true
	case "month", "months":
		return UnitMonths, true
	case "year", "years":
		return UnitYears, true
	default:
		return "", false
	}
}

// Add returns t advanced by n units. Months and years use calendar arithmetic.
func (u RepeatUnit) Add(t time.Time, n int) time.Time {
	switch u {
	case UnitMinutes:
		return t.Add(time.Duration(n) * time.Minute)
	case UnitHours:
		return t.Add(time.Duration(n) * time.Hour)
	case UnitDays:
		return t.AddDate(0, 0, n)
	case UnitWeeks:
		return t.AddDate(0, 0, 7*n)
	case UnitMonths:
		return t.AddDate(0, n, 0)
	case UnitYears:
		return t.AddDate(n, 0, 0)
	default:
		return t
	}
}

// Label is the unit name to show after n: "day" for 1, "days" otherwise.
func (u RepeatUnit) Label(n int) string {
	if n == 1 {
		return strings.TrimSuffix(string(u), "s")
	}
	return string(u)
}

type Task struct {
	Task string `json:"task" yaml:"task"`

	// Deadline and repeating only. Both or neither.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
	Time string `json:"time,omitempty" yaml:"time,omitempty"`

	RepeatNumber       int        `json:"repeat_number,omitempty" yaml:"repeat_number,omitempty"`
	RepeatUnit         RepeatUnit `json:"repeat_unit,omitempty" yaml:"repeat_unit,omitempty"`
	RepeatDone         bool       `json:"repeat_done,omitempty" yaml:"repeat_done,omitempty"`
	RepeatOriginalDate string     `json:"repeat_original_date,omitempty" yaml:"repeat_original_date,omitempty"`
	RepeatOriginalTime string     `json:"repeat_original_time,omitempty" yaml:"repeat_original_time,omitempty"`
}

func (t Task) HasSchedule() bool {
	return t.Date != "" || t.Time != ""
}

func (t Task) Repeats() bool {
	return t.RepeatNumber > 0
}

// Due combines Date and Time in the local zone.
func (t Task) Due() (time.Time, bool) {
	if t.Date == "" || t.Time == "" {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(DateLayout+" "+TimeLayout, t.Date+" "+t.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// SetDue stores ts as the task's Date/Time pair.
func (t *Task) SetDue(ts time.Time) {
	t.Date = ts.Format(DateLayout)
	t.Time = ts.Format(TimeLayout)
}

// Anchor stores ts as the moment the current repeat occurrence started.
func (t *Task) Anchor(ts time.Time) {
	t.RepeatOriginalDate = ts.Format(DateLayout)
	t.RepeatOriginalTime = ts.Format(TimeLayout)
}

type TaskList struct {
	Todo []Task `json:"todo" yaml:"todo"`
	Done []Task `json:"done" yaml:"done"`
}

func NewTaskList() *TaskList {
	return &TaskList{Todo: []Task{}, Done: []Task{}}
}

// Clone returns a deep copy so callers can mutate without touching the original.
func (l *TaskList) Clone() *TaskList {
	if l == nil {
		return NewTaskList()
	}
	out := &TaskList{
		Todo: make([]Task, len(l.Todo)),
		Done: make([]Task, len(l.Done)),
	}
	copy(out.Todo, l.Todo)
	copy(out.Done, l.Done)
	return out
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a 24-hour HH:MM time.
func ValidTime(s string) bool {
	if len(s) != len(TimeLayout) {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
