package cli

import (
	"fmt"

	"chartodo/internal/model"
	"chartodo/internal/publish"

	"github.com/spf13/cobra"
)

func newPublishCmd(app *App) *cobra.Command {
	var to string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "publish [plain|deadline|repeating...]",
		Short: "Write lists as markdown task lists",
		Long:  "Write <kind>.md files under --to. With no arguments all three lists are written.",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := model.Kinds()
			if len(args) > 0 {
				kinds = kinds[:0:0]
				for _, a := range args {
					k, err := model.ParseKind(a)
					if err != nil {
						return err
					}
					kinds = append(kinds, k)
				}
			}

			lists := map[model.Kind]*model.TaskList{}
			st := app.store()
			for _, k := range kinds {
				l, err := st.Load(cmdContext(cmd), k)
				if err != nil {
					return err
				}
				lists[k] = l
			}

			res, err := publish.WriteLists(lists, to, publish.WriteOptions{Overwrite: overwrite})
			if err != nil {
				return err
			}
			if app.Format == "json" || app.Format == "yaml" || app.Format == "yml" {
				return writeOut(cmd, app, res)
			}
			for _, p := range res.Written {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Output directory")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing files")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
