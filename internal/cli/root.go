package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"datefield/internal/format"
	"datefield/internal/tui"
)

// App holds the resolved persistent flags.
type App struct {
	Locale       string
	Pattern      string
	MaxDetail    string
	Return       string
	Min          string
	Max          string
	Value        string
	LeadingZeros bool
	Required     bool
	Disabled     bool
	Output       string
	Pretty       bool
	LogFile      string
	Debug        bool
	ConfigFile   string
	AltScreen    bool

	v       *viper.Viper
	closers []io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{v: viper.New()}

	cmd := &cobra.Command{
		Use:          "datefield",
		Short:        "Locale-aware segmented date input for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Ask for a date (prints JSON on enter)
  datefield --locale de --value 2017-09-30

  # Month-and-year entry returning the whole month
  datefield --max-detail year --return range

  # Inspect the layout a locale produces
  datefield pattern --locale fr
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := app.load(cmd); err != nil {
			return writeErr(cmd, err)
		}
		ctx, err := app.setupLogging(cmd.Context())
		if err != nil {
			return writeErr(cmd, err)
		}
		cmd.SetContext(ctx)
		ctxlog.Logger(ctx).Debug("command", "path", cmd.CommandPath(), "args", args)
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	app.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(newPatternCmd(app))
	cmd.AddCommand(newBoundsCmd(app))
	cmd.AddCommand(newDecomposeCmd(app))
	cmd.AddCommand(newComposeCmd(app))
	cmd.AddCommand(newLocalesCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func (app *App) addFlags(f *pflag.FlagSet) {
	f.StringVar(&app.ConfigFile, "config", "", "Config file (yaml|toml|json)")
	f.String("locale", "", "BCP-47 locale for the layout and month names (default: from the environment)")
	f.String("pattern", "", "Explicit layout, e.g. \"dd.MM.y\" (overrides the locale layout)")
	f.String("max-detail", "month", "Finest unit shown: century|decade|year|month")
	f.String("return", "start", "Reported value: start|end|range")
	f.String("min", "", "Earliest selectable date")
	f.String("max", "", "Latest selectable date")
	f.String("value", "", "Initial value (date or from..to)")
	f.Bool("leading-zeros", false, "Pad single-digit day and month with a zero")
	f.Bool("required", false, "Treat empty segments as invalid")
	f.Bool("disabled", false, "Show the field without accepting edits")
	f.StringP("output", "o", "json", "Output format (json|edn)")
	f.Bool("pretty", false, "Pretty-print output")
	f.String("log-file", "", "Write JSON logs to this file")
	f.Bool("debug", false, "Log at debug level")
	f.Bool("alt-screen", false, "Run the field in the alternate screen")
}

// load merges flags, DATEFIELD_* environment variables and the config file,
// in that order of precedence.
func (app *App) load(cmd *cobra.Command) error {
	v := app.v
	v.SetEnvPrefix("DATEFIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	app.ConfigFile = v.GetString("config")
	if app.ConfigFile == "" {
		app.ConfigFile = defaultConfigFile()
	}
	if app.ConfigFile != "" {
		v.SetConfigFile(app.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return &configFileError{path: app.ConfigFile, err: err}
		}
	}

	app.Locale = v.GetString("locale")
	app.Pattern = v.GetString("pattern")
	app.MaxDetail = v.GetString("max-detail")
	app.Return = v.GetString("return")
	app.Min = v.GetString("min")
	app.Max = v.GetString("max")
	app.Value = v.GetString("value")
	app.LeadingZeros = v.GetBool("leading-zeros")
	app.Required = v.GetBool("required")
	app.Disabled = v.GetBool("disabled")
	app.Output = v.GetString("output")
	app.Pretty = v.GetBool("pretty")
	app.LogFile = v.GetString("log-file")
	app.Debug = v.GetBool("debug")
	app.AltScreen = v.GetBool("alt-screen")
	if !format.Valid(app.Output) {
		return &invalidFlagError{flag: "output", value: app.Output, err: &format.UnknownFormatError{Format: app.Output}}
	}
	return nil
}

// defaultConfigFile is $XDG_CONFIG_HOME/datefield/config.yaml (or the OS
// equivalent) when it exists.
func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "datefield", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// setupLogging installs a JSON logger on ctx when --log-file is set. Without
// it ctxlog hands out a discarding logger.
func (app *App) setupLogging(ctx context.Context) (context.Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if app.LogFile == "" {
		return ctx, nil
	}
	f, err := os.OpenFile(app.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return ctx, fmt.Errorf("open log file: %w", err)
	}
	app.closers = append(app.closers, f)
	level := slog.LevelInfo
	if app.Debug {
		level = slog.LevelDebug
	}
	return ctxlog.NewJSONLogger(ctx, f, &slog.HandlerOptions{Level: level}), nil
}

func (app *App) close() error {
	var first error
	for _, c := range app.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	app.closers = nil
	return first
}

func runTUI(cmd *cobra.Command, app *App) error {
	s, err := app.settings()
	if err != nil {
		return writeErr(cmd, err)
	}
	ctx := cmd.Context()
	ctxlog.Logger(ctx).Info("start", "pid", os.Getpid(), "locale", s.cfg.Locale.String(), "maxDetail", s.cfg.MaxDetail, "pattern", s.cfg.Format)

	res, err := tui.Run(ctx, tui.Options{
		Config:    s.cfg,
		Value:     s.value,
		Env:       s.env,
		AltScreen: app.AltScreen,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	if res.Canceled {
		return writeErr(cmd, errCanceled)
	}
	return writeOut(cmd, app, map[string]any{"data": resultOut{
		Value:   encodeValue(res.Value, s.cfg.MaxDetail),
		Invalid: res.Invalid,
	}})
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Output, app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
