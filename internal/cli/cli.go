// Package cli builds the tabtray-control command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/tabtray-control/internal/app"
	"github.com/atomicstack/tabtray-control/internal/config"
	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Options customises the command tree.
type Options struct {
	// OnConfig runs once flags are resolved and logging is configured.
	OnConfig func(config.Config)
	// Run starts the console. Defaults to app.Run.
	Run    func(context.Context, app.Config) error
	Out    io.Writer
	ErrOut io.Writer
	// Version information printed by the version command.
	Version string
	Commit  string
	Date    string
}

type runtime struct {
	opts Options
	cfg  config.Config
	args []string
}

// configError marks failures that happen before any command runs.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

// New returns the root command. Without a subcommand it opens the tray.
func New(opts Options) *cobra.Command {
	return newRuntime(opts).command()
}

func newRuntime(opts Options) *runtime {
	if opts.Run == nil {
		opts.Run = app.Run
	}
	if opts.Out == nil {
		opts.Out = color.Output
	}
	if opts.ErrOut == nil {
		opts.ErrOut = color.Error
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Commit == "" {
		opts.Commit = "none"
	}
	if opts.Date == "" {
		opts.Date = "unknown"
	}
	return &runtime{opts: opts}
}

func (rt *runtime) command() *cobra.Command {
	opts := rt.opts
	cmd := &cobra.Command{
		Use:   "tabtray-control",
		Short: "Browse, close and restore saved browser tabs from the terminal.",
		Example: `
tabtray-control
tabtray-control --private
tabtray-control list
tabtray-control settings
tabtray-control replay session.jsonl
`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.load,
		RunE:              rt.tray,
	}
	config.Register(cmd.PersistentFlags())
	cmd.SetOut(opts.Out)
	cmd.SetErr(opts.ErrOut)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err}
	})

	addCommands(cmd, rt)
	return cmd
}

func addCommands(topLevel *cobra.Command, rt *runtime) {
	addTray(topLevel, rt)
	addList(topLevel, rt)
	addReplay(topLevel, rt)
	addSettings(topLevel, rt)
	addVersion(topLevel, rt)
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	rt := newRuntime(opts)
	rt.args = append([]string(nil), args...)
	cmd := rt.command()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	errOut := cmd.ErrOrStderr()
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(errOut, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Configuration error:"), cfgErr.err)
		return 2
	}
	logging.Error(err)
	fmt.Fprintf(errOut, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
	return 1
}

func (rt *runtime) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromFlags(cmd.Root().PersistentFlags())
	if err != nil {
		return configError{err}
	}
	if err := config.Validate(cfg); err != nil {
		return configError{err}
	}
	cfg.Args = rt.args
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	rt.cfg = cfg
	if rt.opts.OnConfig != nil {
		rt.opts.OnConfig(cfg)
	}
	return nil
}

func (rt *runtime) tray(cmd *cobra.Command, _ []string) error {
	return rt.opts.Run(cmd.Context(), rt.cfg.App)
}
