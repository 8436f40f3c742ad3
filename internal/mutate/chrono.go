package mutate

import (
	"sort"

	"chartodo/internal/model"
)

// Normalize re-sorts both sequences of a date-bearing list by (date, time).
// Dates and times are fixed-width ISO strings, so lexical order is
// chronological. Ties keep insertion order. Plain lists are left untouched.
func Normalize(kind model.Kind, l *model.TaskList) {
	if l == nil || !kind.Dated() {
		return
	}
	sortChronological(l.Todo)
	sortChronological(l.Done)
}

func sortChronological(ts []model.Task) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].Date != ts[j].Date {
			return ts[i].Date < ts[j].Date
		}
		return ts[i].Time < ts[j].Time
	})
}
