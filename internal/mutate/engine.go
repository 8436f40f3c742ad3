package mutate

import (
	"time"

	"chartodo/internal/model"
)

// Engine applies validated mutations to one kind of TaskList.
//
// Every method validates first and only then touches the list, so a returned
// error always means the list is unchanged. Date-bearing lists are
// re-normalized after each successful mutation.
type Engine struct {
	Kind   model.Kind
	Policy Policy
	Now    func() time.Time
}

func New(kind model.Kind) *Engine {
	return &Engine{Kind: kind, Policy: DefaultPolicy(kind), Now: time.Now}
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

type AddResult struct {
	Added   int
	Dropped int
}

// Add appends already-built tasks. Under DropOnOverflow the tasks that do not
// fit are discarded and counted in Dropped.
func (e *Engine) Add(l *model.TaskList, tasks []model.Task) (AddResult, error) {
	if len(tasks) == 0 {
		return AddResult{}, ErrNothingToAdd
	}
	for _, t := range tasks {
		if err := e.checkShape(t); err != nil {
			return AddResult{}, err
		}
	}

	room := e.Policy.Todo.room(len(l.Todo))
	res := AddResult{}
	for _, t := range tasks {
		if res.Added >= room {
			res.Dropped++
			continue
		}
		l.Todo = append(l.Todo, t)
		res.Added++
	}
	e.normalize(l)
	return res, nil
}

// checkShape rejects tasks whose optional fields don't match the engine kind.
func (e *Engine) checkShape(t model.Task) error {
	if _, err := e.checkText(t.Task); err != nil {
		return err
	}
	if !e.Kind.Dated() {
		if t.HasSchedule() || t.Repeats() {
			return invalid("plain tasks can't carry a date or repeat interval.")
		}
		return nil
	}
	if _, err := checkDate(t.Date); err != nil {
		return err
	}
	if _, err := checkTime(t.Time); err != nil {
		return err
	}
	if e.Kind == model.KindRepeating {
		if t.RepeatNumber <= 0 || t.RepeatNumber > MaxRepeatInterval {
			return invalid("repeating task %q needs an interval between 1 and %d.", t.Task, MaxRepeatInterval)
		}
		if _, ok := model.ParseRepeatUnit(string(t.RepeatUnit)); !ok {
			return invalid("repeating task %q has an invalid unit %q.", t.Task, t.RepeatUnit)
		}
	}
	return nil
}

type ImportResult struct {
	Skipped int
	Dropped int
}

// Import rebuilds src under the engine's rules. Tasks that fail validation are
// skipped, todo tasks past capacity are dropped and done follows its
// overflow rule.
func (e *Engine) Import(src *model.TaskList) (*model.TaskList, ImportResult) {
	l := model.NewTaskList()
	res := ImportResult{}
	for _, t := range src.Todo {
		if e.checkShape(t) != nil {
			res.Skipped++
			continue
		}
		if e.Policy.Todo.room(len(l.Todo)) == 0 {
			res.Dropped++
			continue
		}
		l.Todo = append(l.Todo, t)
	}
	for _, t := range src.Done {
		if e.checkShape(t) != nil {
			res.Skipped++
			continue
		}
		before := len(l.Done)
		l.Done = e.Policy.Done.admit(l.Done)
		res.Dropped += before - len(l.Done)
		l.Done = append(l.Done, t)
	}
	e.normalize(l)
	return l, res
}

func (e *Engine) RemoveTodo(l *model.TaskList, raw []string) error {
	if len(l.Todo) == 0 {
		return ErrTodoEmpty
	}
	ps, err := e.positions(OpRemoveTodo, raw, len(l.Todo))
	if err != nil {
		return err
	}
	for _, p := range ps {
		l.Todo = removeAt(l.Todo, p-1)
	}
	e.normalize(l)
	return nil
}

func (e *Engine) RemoveDone(l *model.TaskList, raw []string) error {
	if len(l.Done) == 0 {
		return ErrDoneEmpty
	}
	ps, err := e.positions(OpRemoveDone, raw, len(l.Done))
	if err != nil {
		return err
	}
	for _, p := range ps {
		l.Done = removeAt(l.Done, p-1)
	}
	e.normalize(l)
	return nil
}

// Complete moves todo positions to done, highest position first.
func (e *Engine) Complete(l *model.TaskList, raw []string) error {
	if len(l.Todo) == 0 {
		return ErrTodoEmpty
	}
	ps, err := e.positions(OpComplete, raw, len(l.Todo))
	if err != nil {
		return err
	}
	for _, p := range ps {
		t := l.Todo[p-1]
		l.Todo = removeAt(l.Todo, p-1)
		e.markDone(&t)
		l.Done = e.Policy.Done.admit(l.Done)
		l.Done = append(l.Done, t)
	}
	e.normalize(l)
	return nil
}

// Reverse moves done positions back to todo, highest position first.
func (e *Engine) Reverse(l *model.TaskList, raw []string) error {
	if len(l.Done) == 0 {
		return ErrDoneEmpty
	}
	ps, err := e.positions(OpReverse, raw, len(l.Done))
	if err != nil {
		return err
	}
	if len(ps) > e.Policy.Todo.room(len(l.Todo)) {
		return ErrTodoFull
	}
	for _, p := range ps {
		t := l.Done[p-1]
		l.Done = removeAt(l.Done, p-1)
		t.RepeatDone = false
		l.Todo = append(l.Todo, t)
	}
	e.normalize(l)
	return nil
}

// Reset starts a new occurrence for completed repeating tasks: the anchor
// becomes now, the due moment moves one interval ahead and the task returns
// to todo.
func (e *Engine) Reset(l *model.TaskList, raw []string) error {
	if e.Kind != model.KindRepeating {
		return invalid("reset only applies to repeating tasks.")
	}
	if len(l.Done) == 0 {
		return ErrDoneEmpty
	}
	ps, err := e.positions(OpReset, raw, len(l.Done))
	if err != nil {
		return err
	}
	now := e.now()
	next := make([]model.Task, len(ps))
	for i, p := range ps {
		if next[i], err = e.reanchor(l.Done[p-1], now); err != nil {
			return err
		}
	}
	for i, p := range ps {
		l.Done = removeAt(l.Done, p-1)
		l.Todo = append(l.Todo, next[i])
	}
	e.normalize(l)
	return nil
}

func (e *Engine) ResetAll(l *model.TaskList) error {
	if e.Kind != model.KindRepeating {
		return invalid("reset only applies to repeating tasks.")
	}
	if len(l.Done) == 0 {
		return ErrDoneEmpty
	}
	now := e.now()
	next := make([]model.Task, 0, len(l.Done))
	for _, t := range l.Done {
		r, err := e.reanchor(t, now)
		if err != nil {
			return err
		}
		next = append(next, r)
	}
	l.Todo = append(l.Todo, next...)
	l.Done = []model.Task{}
	e.normalize(l)
	return nil
}

func (e *Engine) reanchor(t model.Task, now time.Time) (model.Task, error) {
	due, err := dueAfter(t.RepeatUnit, now, t.RepeatNumber)
	if err != nil {
		return model.Task{}, err
	}
	t.RepeatDone = false
	t.Anchor(now)
	t.SetDue(due)
	return t, nil
}

// Edit replaces the description of one todo task.
func (e *Engine) Edit(l *model.TaskList, rawPos, text string) error {
	if len(l.Todo) == 0 {
		return ErrTodoEmpty
	}
	p, err := FilterPosition(rawPos, len(l.Todo))
	if err != nil {
		return err
	}
	text, err = e.checkText(text)
	if err != nil {
		return err
	}
	l.Todo[p-1].Task = text
	e.normalize(l)
	return nil
}

// EditDate changes the due date of one todo task.
func (e *Engine) EditDate(l *model.TaskList, rawPos, date string) error {
	return e.editSchedule(l, rawPos, func(t *model.Task) error {
		d, err := checkDate(date)
		if err != nil {
			return err
		}
		t.Date = d
		return nil
	})
}

// EditTime changes the due time of one todo task.
func (e *Engine) EditTime(l *model.TaskList, rawPos, clock string) error {
	return e.editSchedule(l, rawPos, func(t *model.Task) error {
		c, err := checkTime(clock)
		if err != nil {
			return err
		}
		t.Time = c
		return nil
	})
}

func (e *Engine) editSchedule(l *model.TaskList, rawPos string, set func(*model.Task) error) error {
	if !e.Kind.Dated() {
		return invalid("plain tasks have no date or time to edit.")
	}
	if len(l.Todo) == 0 {
		return ErrTodoEmpty
	}
	p, err := FilterPosition(rawPos, len(l.Todo))
	if err != nil {
		return err
	}
	t := l.Todo[p-1]
	if err := set(&t); err != nil {
		return err
	}
	l.Todo[p-1] = t
	e.normalize(l)
	return nil
}

func (e *Engine) ClearTodo(l *model.TaskList) error {
	if len(l.Todo) == 0 {
		return ErrTodoEmpty
	}
	l.Todo = []model.Task{}
	return nil
}

func (e *Engine) ClearDone(l *model.TaskList) error {
	if len(l.Done) == 0 {
		return ErrDoneEmpty
	}
	l.Done = []model.Task{}
	return nil
}

func (e *Engine) ClearAll(l *model.TaskList) error {
	if len(l.Todo) == 0 && len(l.Done) == 0 {
		return invalid("todo and done lists are already empty.")
	}
	l.Todo = []model.Task{}
	l.Done = []model.Task{}
	return nil
}

// CompleteAll moves every todo task to done in list order, applying the done
// capacity before each append exactly like Complete.
func (e *Engine) CompleteAll(l *model.TaskList) error {
	if len(l.Todo) == 0 {
		return ErrTodoEmpty
	}
	for _, t := range l.Todo {
		e.markDone(&t)
		l.Done = e.Policy.Done.admit(l.Done)
		l.Done = append(l.Done, t)
	}
	l.Todo = []model.Task{}
	e.normalize(l)
	return nil
}

// ReverseAll moves every done task back to todo in list order.
func (e *Engine) ReverseAll(l *model.TaskList) error {
	if len(l.Done) == 0 {
		return ErrDoneEmpty
	}
	if len(l.Done) > e.Policy.Todo.room(len(l.Todo)) {
		return ErrTodoFull
	}
	for _, t := range l.Done {
		t.RepeatDone = false
		l.Todo = append(l.Todo, t)
	}
	l.Done = []model.Task{}
	e.normalize(l)
	return nil
}

func (e *Engine) markDone(t *model.Task) {
	if e.Kind == model.KindRepeating {
		t.RepeatDone = true
	}
}

func (e *Engine) positions(op Op, raw []string, n int) ([]int, error) {
	ps, err := FilterPositions(raw, n)
	if err != nil {
		return nil, err
	}
	if err := Guard(op, len(ps), n, e.Policy.Thresholds); err != nil {
		return nil, err
	}
	return ps, nil
}

func (e *Engine) normalize(l *model.TaskList) {
	Normalize(e.Kind, l)
}

func removeAt(ts []model.Task, i int) []model.Task {
	out := make([]model.Task, 0, len(ts)-1)
	out = append(out, ts[:i]...)
	return append(out, ts[i+1:]...)
}
