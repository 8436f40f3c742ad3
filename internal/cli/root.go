package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"chartodo/internal/format"
	"chartodo/internal/model"
	"chartodo/internal/mutate"
	"chartodo/internal/render"
	"chartodo/internal/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// App carries the resolved global flags shared by every command.
type App struct {
	Dir     string
	Backend string
	Format  string
	Color   string
	Verbose bool
	Pretty  bool

	cfg *store.Config
	log *log.Logger
	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	app := &App{now: time.Now}

	cmd := &cobra.Command{
		Use:          "chartodo",
		Short:        "Todo lists on the command line: plain, deadline and repeating",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Plain list
  chartodo add "buy milk" "call mom"
  chartodo done 1
  chartodo list

  # Deadlines
  chartodo deadline add "pay rent" 2024-04-01 09:00
  chartodo dl-a "file taxes" 2024-04-15 23:59

  # Repeating tasks
  chartodo repeating add "water plants" 3 days
  chartodo rp reset 1
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.init(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("CHARTODO_DIR", ""), "Directory holding the list files (overrides data_dir in config.toml)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("CHARTODO_BACKEND", ""), "Storage backend (json|sqlite)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("CHARTODO_FORMAT", "text"), "Output format (text|json|yaml|legacy)")
	cmd.PersistentFlags().StringVar(&app.Color, "color", envOr("CHARTODO_COLOR", ""), "Color output (auto|always|never)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")

	addListCommands(cmd, app, model.KindPlain)
	cmd.AddCommand(newKindCmd(app, model.KindDeadline, "deadline", "dl", "Deadline-bound tasks, kept in due order"))
	cmd.AddCommand(newKindCmd(app, model.KindRepeating, "repeating", "rp", "Repeating tasks, due one interval after they start"))
	cmd.AddCommand(newListAllCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newPublishCmd(app))

	return cmd
}

func newKindCmd(app *App, kind model.Kind, use, alias, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Aliases: []string{alias},
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.list(cmd, kind)
		},
	}
	addListCommands(cmd, app, kind)
	return cmd
}

// init resolves config with precedence flag > env > config.toml > default.
func (app *App) init(cmd *cobra.Command) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	app.cfg = cfg

	level := log.WarnLevel
	if v := firstNonEmpty(os.Getenv("CHARTODO_LOG_LEVEL"), cfg.LogLevel); v != "" {
		if lvl, err := log.ParseLevel(v); err == nil {
			level = lvl
		}
	}
	if app.Verbose {
		level = log.DebugLevel
	}
	app.log = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "chartodo", Level: level})

	if app.Dir == "" {
		app.Dir = cfg.DataDir
	}
	if app.Dir == "" {
		d, err := store.DefaultDataDir()
		if err != nil {
			return err
		}
		app.Dir = d
	}
	if app.Backend == "" {
		app.Backend = cfg.Backend
	}
	if _, err := store.ParseBackend(app.Backend); err != nil {
		return err
	}
	if app.Color == "" {
		app.Color = cfg.Color
	}
	switch app.Format {
	case "", "text", "json", "yaml", "yml", "legacy":
	default:
		return fmt.Errorf("unknown format: %s (expected text|json|yaml|legacy)", app.Format)
	}
	app.log.Debug("resolved config", "dir", app.Dir, "backend", app.Backend, "format", app.Format)
	return nil
}

func (app *App) store() store.Store {
	b, _ := store.ParseBackend(app.Backend)
	return store.Store{Dir: app.Dir, Backend: b, Log: app.log}
}

func (app *App) engine(kind model.Kind) *mutate.Engine {
	e := mutate.New(kind)
	e.Now = app.now
	if app.cfg != nil {
		for op, n := range app.cfg.Guard {
			e.Policy.Thresholds[mutate.Op(op)] = n
		}
	}
	return e
}

// change runs one load → mutate → save cycle. User-facing refusals are
// printed to stdout and leave the stored list untouched; everything else is
// returned as a failure.
func (app *App) change(cmd *cobra.Command, kind model.Kind, fn func(e *mutate.Engine, l *model.TaskList) (string, error)) error {
	if err := app.checkFormat(kind); err != nil {
		return err
	}
	ctx := cmdContext(cmd)
	st := app.store()
	l, err := st.Load(ctx, kind)
	if err != nil {
		return err
	}

	note, err := fn(app.engine(kind), l)
	if err != nil {
		if mutate.IsUserFacing(err) {
			app.log.Debug("refused", "kind", kind, "cmd", cmd.Name(), "reason", err)
			_, werr := fmt.Fprintln(cmd.OutOrStdout(), err.Error())
			return werr
		}
		return err
	}

	if err := st.Save(ctx, kind, l); err != nil {
		return err
	}
	if note != "" {
		fmt.Fprintln(cmd.OutOrStdout(), note)
	}
	return app.show(cmd, kind, l)
}

func (app *App) list(cmd *cobra.Command, kind model.Kind) error {
	if err := app.checkFormat(kind); err != nil {
		return err
	}
	l, err := app.store().Load(cmdContext(cmd), kind)
	if err != nil {
		return err
	}
	return app.show(cmd, kind, l)
}

// checkFormat runs before any load so an unprintable result is never saved.
func (app *App) checkFormat(kind model.Kind) error {
	if app.Format == "legacy" && kind != model.KindPlain {
		return fmt.Errorf("legacy format only applies to the plain list")
	}
	return nil
}

func (app *App) show(cmd *cobra.Command, kind model.Kind, l *model.TaskList) error {
	out := cmd.OutOrStdout()
	switch app.Format {
	case "json", "yaml", "yml":
		return format.Write(out, l, app.Format, app.Pretty)
	case "legacy":
		if err := app.checkFormat(kind); err != nil {
			return err
		}
		_, err := out.Write(format.EncodeLegacy(l))
		return err
	default:
		s := render.NewStyled(out, render.ParseColorMode(app.Color))
		s.Now = app.now
		s.Width = terminalWidth()
		_, err := fmt.Fprint(out, s.Render(kind, l))
		return err
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func terminalWidth() int {
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && n > 0 {
		return n
	}
	return 0
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	f := app.Format
	if f == "" || f == "text" {
		f = "json"
	}
	return format.Write(cmd.OutOrStdout(), v, f, app.Pretty || app.Format == "text")
}
