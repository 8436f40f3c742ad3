package model

import (
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"":          KindPlain,
		"plain":     KindPlain,
		"DL":        KindDeadline,
		"deadline":  KindDeadline,
		"rp":        KindRepeating,
		"Repeating": KindRepeating,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q)=%q,%v want %q", in, got, err, want)
		}
	}
	if _, err := ParseKind("weekly"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestRepeatUnit(t *testing.T) {
	u, ok := ParseRepeatUnit(" Day ")
	if !ok || u != UnitDays {
		t.Fatalf("ParseRepeatUnit(day)=%q,%v", u, ok)
	}
	if _, ok := ParseRepeatUnit("fortnight"); ok {
		t.Fatalf("fortnight is not a unit")
	}
	if UnitWeeks.Label(1) != "week" || UnitWeeks.Label(2) != "weeks" {
		t.Fatalf("unexpected labels %q %q", UnitWeeks.Label(1), UnitWeeks.Label(2))
	}

	base := time.Date(2024, 1, 31, 23, 30, 0, 0, time.UTC)
	tests := []struct {
		u    RepeatUnit
		n    int
		want time.Time
	}{
		{UnitMinutes, 45, time.Date(2024, 2, 1, 0, 15, 0, 0, time.UTC)},
		{UnitHours, 2, time.Date(2024, 2, 1, 1, 30, 0, 0, time.UTC)},
		{UnitDays, 1, time.Date(2024, 2, 1, 23, 30, 0, 0, time.UTC)},
		{UnitWeeks, 1, time.Date(2024, 2, 7, 23, 30, 0, 0, time.UTC)},
		// Calendar arithmetic normalizes Feb 31 to Mar 2 in a leap year.
		{UnitMonths, 1, time.Date(2024, 3, 2, 23, 30, 0, 0, time.UTC)},
		{UnitYears, 1, time.Date(2025, 1, 31, 23, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := tt.u.Add(base, tt.n); !got.Equal(tt.want) {
			t.Fatalf("%s.Add(%d)=%s want %s", tt.u, tt.n, got, tt.want)
		}
	}
}

func TestValidDateTime(t *testing.T) {
	for _, s := range []string{"2024-02-29", "1999-12-31"} {
		if !ValidDate(s) {
			t.Fatalf("ValidDate(%q) = false", s)
		}
	}
	for _, s := range []string{"2023-02-29", "2024-13-01", "2024-1-01", "20240101", ""} {
		if ValidDate(s) {
			t.Fatalf("ValidDate(%q) = true", s)
		}
	}
	for _, s := range []string{"00:00", "23:59", "09:05"} {
		if !ValidTime(s) {
			t.Fatalf("ValidTime(%q) = false", s)
		}
	}
	for _, s := range []string{"24:00", "9:05", "12:60", "noon"} {
		if ValidTime(s) {
			t.Fatalf("ValidTime(%q) = true", s)
		}
	}
}

func TestTaskDueAndAnchor(t *testing.T) {
	var task Task
	if _, ok := task.Due(); ok {
		t.Fatalf("unscheduled task has no due moment")
	}
	ts := time.Date(2024, 4, 1, 9, 0, 0, 0, time.Local)
	task.SetDue(ts)
	task.Anchor(ts.AddDate(0, 0, -1))
	if task.Date != "2024-04-01" || task.Time != "09:00" {
		t.Fatalf("SetDue stored %s %s", task.Date, task.Time)
	}
	if task.RepeatOriginalDate != "2024-03-31" || task.RepeatOriginalTime != "09:00" {
		t.Fatalf("Anchor stored %s %s", task.RepeatOriginalDate, task.RepeatOriginalTime)
	}
	due, ok := task.Due()
	if !ok || !due.Equal(ts) {
		t.Fatalf("Due()=%s,%v want %s", due, ok, ts)
	}
}

func TestCloneIsDeep(t *testing.T) {
	l := &TaskList{Todo: []Task{{Task: "a"}}, Done: []Task{}}
	c := l.Clone()
	c.Todo[0].Task = "changed"
	if l.Todo[0].Task != "a" {
		t.Fatalf("Clone shares backing arrays")
	}
	var nilList *TaskList
	if got := nilList.Clone(); got.Todo == nil || got.Done == nil {
		t.Fatalf("Clone of nil should be an empty list")
	}
}
