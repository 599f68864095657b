// Command calc evaluates arithmetic expressions from arguments, files, or an
// interactive editor.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc/internal/config"
	"github.com/zephyrtronium/calc/internal/logs"
)

// app is the state shared by every subcommand, set up before any of them
// runs.
type app struct {
	cfg   config.Config
	log   *logs.Logger
	color bool
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "calc [expression ...]",
		Short: "Evaluate arithmetic expressions",
		Long: `calc evaluates arithmetic expressions with + - * / ^, decimal commas or
periods, and scientific notation. Results are rounded to five decimal places.

With expression arguments, calc evaluates them. With none, it starts the
interactive editor if standard input is a terminal and evaluates each line
of standard input otherwise.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.log == nil {
				return nil
			}
			return a.log.Close()
		},
		RunE: a.runRoot,
	}

	root.PersistentFlags().String("config", "", "configuration file (default $XDG_CONFIG_HOME/calc/calc.toml)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("log-level", "warn", "minimum log level (debug|info|warn|error)")
	root.PersistentFlags().String("log-file", "", "also write JSON logs to this file")
	addEvalFlags(root)

	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newEditCmd(a))
	return root
}

// setup loads configuration, applies flag overrides, and creates the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, loaded, err := config.Resolve(path)
	if err != nil {
		return err
	}
	if flags.Changed("color") {
		cfg.Display.Color, _ = flags.GetString("color")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logs.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	l, err := logs.New(logs.Options{Level: level, Terminal: cmd.ErrOrStderr(), File: cfg.Log.File})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = l
	a.color = useColor(cfg.Display.Color, cmd.OutOrStdout())
	if loaded != "" {
		l.Debug("loaded configuration", "path", loaded)
	}
	return nil
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return a.runEval(cmd, args)
	}
	if isTerminal(cmd.InOrStdin()) {
		return a.runEdit(cmd, args)
	}
	return a.evalSources(cmd, nil, cmd.InOrStdin())
}

// useColor decides whether output to w is colorized for a color mode.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(w)
	}
}

// isTerminal reports whether v is a file connected to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
