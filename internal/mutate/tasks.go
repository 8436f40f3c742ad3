package mutate

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"chartodo/internal/model"
)

const separatorLine = "-----"

func (e *Engine) checkText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyTask
	}
	if text == separatorLine {
		return "", ErrReservedTask
	}
	if limit := e.Policy.MaxTaskLen; limit > 0 && utf8.RuneCountInString(text) > limit {
		return "", invalid("task %q is over %d characters.", text, limit)
	}
	return text, nil
}

func checkDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !model.ValidDate(s) {
		return "", invalid("invalid date %q: use a real calendar date as YYYY-MM-DD.", s)
	}
	return s, nil
}

func checkTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !model.ValidTime(s) {
		return "", invalid("invalid time %q: use 24-hour HH:MM.", s)
	}
	return s, nil
}

// MaxRepeatInterval bounds the interval count so minute and hour arithmetic
// stays within time.Duration.
const MaxRepeatInterval = 1_000_000

func checkInterval(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || strings.HasPrefix(s, "+") {
		return 0, invalid("invalid repeat interval %q: use a positive whole number.", s)
	}
	if n > MaxRepeatInterval {
		return 0, invalid("invalid repeat interval %q: at most %d.", s, MaxRepeatInterval)
	}
	return n, nil
}

// dueAfter is anchor advanced by n units, refused when it leaves the
// four-digit year range dates are stored in.
func dueAfter(u model.RepeatUnit, anchor time.Time, n int) (time.Time, error) {
	due := u.Add(anchor, n)
	if due.Year() > 9999 || !due.After(anchor) {
		return time.Time{}, invalid("invalid repeat interval %d %s: the due date would be past year 9999.", n, u.Label(n))
	}
	return due, nil
}

func checkUnit(s string) (model.RepeatUnit, error) {
	u, ok := model.ParseRepeatUnit(s)
	if !ok {
		return "", invalid("invalid repeat unit %q: use minute(s), hour(s), day(s), week(s), month(s) or year(s).", s)
	}
	return u, nil
}

// NewTask builds a plain task.
func (e *Engine) NewTask(text string) (model.Task, error) {
	text, err := e.checkText(text)
	if err != nil {
		return model.Task{}, err
	}
	return model.Task{Task: text}, nil
}

// NewDeadline builds a deadline task due at date and clock time.
func (e *Engine) NewDeadline(text, date, clock string) (model.Task, error) {
	t, err := e.NewTask(text)
	if err != nil {
		return t, err
	}
	if t.Date, err = checkDate(date); err != nil {
		return model.Task{}, err
	}
	if t.Time, err = checkTime(clock); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// NewDeadlineDate builds a deadline task due at midnight of date.
func (e *Engine) NewDeadlineDate(text, date string) (model.Task, error) {
	return e.NewDeadline(text, date, "00:00")
}

// NewDeadlineTime builds a deadline task due today at clock.
func (e *Engine) NewDeadlineTime(text, clock string) (model.Task, error) {
	return e.NewDeadline(text, e.now().Format(model.DateLayout), clock)
}

// NewRepeating builds a repeating task anchored now and due one interval later.
func (e *Engine) NewRepeating(text, interval, unit string) (model.Task, error) {
	return e.newRepeating(text, interval, unit, e.now())
}

// NewRepeatingFrom is NewRepeating with an explicit anchor.
func (e *Engine) NewRepeatingFrom(text, interval, unit, date, clock string) (model.Task, error) {
	d, err := checkDate(date)
	if err != nil {
		return model.Task{}, err
	}
	c, err := checkTime(clock)
	if err != nil {
		return model.Task{}, err
	}
	anchor, ok := model.Task{Date: d, Time: c}.Due()
	if !ok {
		return model.Task{}, invalid("invalid start %s %s.", d, c)
	}
	return e.newRepeating(text, interval, unit, anchor)
}

func (e *Engine) newRepeating(text, interval, unit string, anchor time.Time) (model.Task, error) {
	t, err := e.NewTask(text)
	if err != nil {
		return t, err
	}
	n, err := checkInterval(interval)
	if err != nil {
		return model.Task{}, err
	}
	u, err := checkUnit(unit)
	if err != nil {
		return model.Task{}, err
	}
	due, err := dueAfter(u, anchor, n)
	if err != nil {
		return model.Task{}, err
	}
	t.RepeatNumber = n
	t.RepeatUnit = u
	t.RepeatDone = false
	t.Anchor(anchor)
	t.SetDue(due)
	return t, nil
}
