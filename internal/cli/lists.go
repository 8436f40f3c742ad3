package cli

import (
	"fmt"
	"strings"

	"chartodo/internal/model"
	"chartodo/internal/mutate"

	"github.com/spf13/cobra"
)

// addListCommands registers the verbs every kind shares, plus the kind's own
// add/edit/reset variants, under parent.
func addListCommands(parent *cobra.Command, app *App, kind model.Kind) {
	parent.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "Show the todo and done lists",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.list(cmd, kind)
		},
	})

	for _, c := range newAddCmds(app, kind) {
		parent.AddCommand(c)
	}

	parent.AddCommand(positionsCmd(app, kind, "done <pos...>", "d", "Mark todo tasks done by position",
		func(e *mutate.Engine, l *model.TaskList, args []string) error { return e.Complete(l, args) }))
	parent.AddCommand(positionsCmd(app, kind, "rmtodo <pos...>", "rmt", "Remove todo tasks by position",
		func(e *mutate.Engine, l *model.TaskList, args []string) error { return e.RemoveTodo(l, args) }))
	parent.AddCommand(positionsCmd(app, kind, "rmdone <pos...>", "rmd", "Remove done tasks by position",
		func(e *mutate.Engine, l *model.TaskList, args []string) error { return e.RemoveDone(l, args) }))
	parent.AddCommand(positionsCmd(app, kind, "notdone <pos...>", "nd", "Move done tasks back to todo by position",
		func(e *mutate.Engine, l *model.TaskList, args []string) error { return e.Reverse(l, args) }))

	parent.AddCommand(bulkCmd(app, kind, "cleartodo", "ct", "Remove every todo task", (*mutate.Engine).ClearTodo))
	parent.AddCommand(bulkCmd(app, kind, "cleardone", "cd", "Remove every done task", (*mutate.Engine).ClearDone))
	parent.AddCommand(bulkCmd(app, kind, "clearall", "ca", "Remove every task", (*mutate.Engine).ClearAll))
	parent.AddCommand(bulkCmd(app, kind, "doneall", "da", "Mark every todo task done", (*mutate.Engine).CompleteAll))
	parent.AddCommand(bulkCmd(app, kind, "notdoneall", "nda", "Move every done task back to todo", (*mutate.Engine).ReverseAll))

	parent.AddCommand(&cobra.Command{
		Use:     "edit <pos> <text...>",
		Aliases: []string{"e"},
		Short:   "Replace the text of one todo task",
		Args:    requireArgs(2, "position and new text"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.change(cmd, kind, func(e *mutate.Engine, l *model.TaskList) (string, error) {
				return "", e.Edit(l, args[0], strings.Join(args[1:], " "))
			})
		},
	})

	if kind.Dated() {
		parent.AddCommand(&cobra.Command{
			Use:     "edit-date <pos> <YYYY-MM-DD>",
			Aliases: []string{"ed"},
			Short:   "Change the due date of one todo task",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.change(cmd, kind, func(e *mutate.Engine, l *model.TaskList) (string, error) {
					return "", e.EditDate(l, args[0], args[1])
				})
			},
		})
		parent.AddCommand(&cobra.Command{
			Use:     "edit-time <pos> <HH:MM>",
			Aliases: []string{"et"},
			Short:   "Change the due time of one todo task",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.change(cmd, kind, func(e *mutate.Engine, l *model.TaskList) (string, error) {
					return "", e.EditTime(l, args[0], args[1])
				})
			},
		})
	}

	if kind == model.KindRepeating {
		parent.AddCommand(positionsCmd(app, kind, "reset <pos...>", "rs", "Start the next occurrence of done tasks",
			func(e *mutate.Engine, l *model.TaskList, args []string) error { return e.Reset(l, args) }))
		parent.AddCommand(bulkCmd(app, kind, "resetall", "rsa", "Start the next occurrence of every done task", (*mutate.Engine).ResetAll))
	}
}

func positionsCmd(app *App, kind model.Kind, use, alias, short string, fn func(*mutate.Engine, *model.TaskList, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: []string{alias},
		Short:   short,
		Args:    requireArgs(1, "position"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.change(cmd, kind, func(e *mutate.Engine, l *model.TaskList) (string, error) {
				return "", fn(e, l, args)
			})
		},
	}
}

func bulkCmd(app *App, kind model.Kind, use, alias, short string, fn func(*mutate.Engine, *model.TaskList) error) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: []string{alias},
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.change(cmd, kind, func(e *mutate.Engine, l *model.TaskList) (string, error) {
				return "", fn(e, l)
			})
		},
	}
}

func newListAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "listall",
		Aliases: []string{"la"},
		Short:   "Show all three lists",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Format == "legacy" {
				return fmt.Errorf("listall has no legacy layout; use \"chartodo list --format legacy\"")
			}
			if app.Format != "" && app.Format != "text" {
				all := map[string]*model.TaskList{}
				for _, kind := range model.Kinds() {
					l, err := app.store().Load(cmdContext(cmd), kind)
					if err != nil {
						return err
					}
					all[string(kind)] = l
				}
				return writeOut(cmd, app, all)
			}
			for i, kind := range model.Kinds() {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := app.list(cmd, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
