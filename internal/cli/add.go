package cli

import (
	"fmt"

	"chartodo/internal/model"
	"chartodo/internal/mutate"

	"github.com/spf13/cobra"
)

// builder turns one group of positionals into a task.
type builder func(e *mutate.Engine, group []string) (model.Task, error)

func newAddCmds(app *App, kind model.Kind) []*cobra.Command {
	switch kind {
	case model.KindDeadline:
		return []*cobra.Command{
			addCmd(app, kind, "add <task> <YYYY-MM-DD> <HH:MM>...", "a", "Add deadline tasks", 3, "task date time",
				func(e *mutate.Engine, g []string) (model.Task, error) { return e.NewDeadline(g[0], g[1], g[2]) }),
			addCmd(app, kind, "add-date <task> <YYYY-MM-DD>...", "ad", "Add deadline tasks due at midnight", 2, "task date",
				func(e *mutate.Engine, g []string) (model.Task, error) { return e.NewDeadlineDate(g[0], g[1]) }),
			addCmd(app, kind, "add-time <task> <HH:MM>...", "at", "Add deadline tasks due today", 2, "task time",
				func(e *mutate.Engine, g []string) (model.Task, error) { return e.NewDeadlineTime(g[0], g[1]) }),
		}
	case model.KindRepeating:
		return []*cobra.Command{
			addCmd(app, kind, "add <task> <interval> <unit>...", "a", "Add repeating tasks starting now", 3, "task interval unit",
				func(e *mutate.Engine, g []string) (model.Task, error) { return e.NewRepeating(g[0], g[1], g[2]) }),
			addCmd(app, kind, "add-start <task> <interval> <unit> <YYYY-MM-DD> <HH:MM>...", "as", "Add repeating tasks from an explicit start", 5, "task interval unit date time",
				func(e *mutate.Engine, g []string) (model.Task, error) {
					return e.NewRepeatingFrom(g[0], g[1], g[2], g[3], g[4])
				}),
		}
	default:
		return []*cobra.Command{
			addCmd(app, kind, "add <task...>", "a", "Add tasks, one per argument", 1, "task",
				func(e *mutate.Engine, g []string) (model.Task, error) { return e.NewTask(g[0]) }),
		}
	}
}

func addCmd(app *App, kind model.Kind, use, alias, short string, size int, what string, build builder) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: []string{alias},
		Short:   short,
		Args:    requireGroups(size, what),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.change(cmd, kind, func(e *mutate.Engine, l *model.TaskList) (string, error) {
				tasks := make([]model.Task, 0, len(args)/size)
				for i := 0; i+size <= len(args); i += size {
					t, err := build(e, args[i:i+size])
					if err != nil {
						return "", err
					}
					tasks = append(tasks, t)
				}
				res, err := e.Add(l, tasks)
				if err != nil {
					return "", err
				}
				return droppedNote(e, res), nil
			})
		},
	}
}

func droppedNote(e *mutate.Engine, res mutate.AddResult) string {
	if res.Dropped == 0 {
		return ""
	}
	noun := "tasks"
	if res.Dropped == 1 {
		noun = "task"
	}
	return fmt.Sprintf("todo list holds at most %d tasks: %d %s not added.", e.Policy.Todo.Limit, res.Dropped, noun)
}
