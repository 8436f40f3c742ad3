package cli

import (
	"fmt"
	"strings"

	"chartodo/internal/docs"
	"chartodo/internal/render"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := docs.Topics()
				if app.Format == "json" || app.Format == "yaml" || app.Format == "yml" {
					return writeOut(cmd, app, map[string]any{"topics": topics})
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(topics, "\n"))
				return err
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return fmt.Errorf("unknown docs topic: %q (run `chartodo docs` to list topics)", topic)
			}

			switch {
			case app.Format == "json" || app.Format == "yaml" || app.Format == "yml":
				return writeOut(cmd, app, map[string]any{"topic": topic, "markdown": body})
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}

			style := ""
			if render.ParseColorMode(app.Color) == render.ColorNever {
				style = "notty"
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), docs.Render(body, terminalWidth(), style))
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")

	return cmd
}
