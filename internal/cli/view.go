package cli

import (
	"fmt"

	"chartodo/internal/model"
	"chartodo/internal/tui"

	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse and edit the lists interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(start)
			if err != nil {
				return err
			}
			if app.Format != "" && app.Format != "text" {
				return fmt.Errorf("view is interactive; --format %s is not supported", app.Format)
			}
			return tui.Run(cmdContext(cmd), tui.Options{
				Lists:  app.store(),
				Engine: app.engine,
				Start:  kind,
			})
		},
	}

	cmd.Flags().StringVar(&start, "list", string(model.KindPlain), "List shown first (plain|deadline|repeating)")

	return cmd
}
