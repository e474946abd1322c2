package cli

import (
	"fmt"
	"log/slog"

	"github.com/kcaldas/dbgconsole/cmd/tui"
	"github.com/kcaldas/dbgconsole/internal/di"
	"github.com/kcaldas/dbgconsole/pkg/config"
	"github.com/kcaldas/dbgconsole/pkg/logging"
	"github.com/kcaldas/dbgconsole/pkg/session"
	"github.com/kcaldas/dbgconsole/pkg/version"
	"github.com/spf13/cobra"
)

// TUIRunner shows a session interactively until the user quits.
type TUIRunner func(s *session.Session) error

// options holds the global flags and the configuration they produce.
type options struct {
	configPath      string
	historyCapacity int
	outputCapacity  int
	prompt          string
	verbose         bool
	quiet           bool

	config   config.Config
	logLevel slog.Level
}

// NewRootCommand creates the dbgconsole command tree. Without a subcommand it
// starts runTUI.
func NewRootCommand(runTUI TUIRunner) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "dbgconsole",
		Short:   "Interactive debug console",
		Long:    `dbgconsole is a line-editing command console with history recall.`,
		Version: version.Version,
		Args:    cobra.NoArgs,
		// Execute reports errors itself.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the UI from here on.
			logging.SetGlobalLogger(logging.NewFileLoggerFromEnv("dbgconsole.log", opts.logLevel))

			s, err := opts.newSession()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := runTUI(s); err != nil {
				logging.Error("console UI failed", "session", s.ID(), "error", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.dbgconsole/config.yaml)")
	flags.IntVar(&opts.historyCapacity, "history", config.DefaultHistoryCapacity, "number of command lines kept in history")
	flags.IntVar(&opts.outputCapacity, "output", config.DefaultOutputCapacity, "number of command outputs kept")
	flags.StringVar(&opts.prompt, "prompt", config.DefaultPrompt, "prompt shown before the command line")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug level)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "quiet output (errors only)")

	cmd.SetVersionTemplate(version.GetInfo().String())

	cmd.AddCommand(
		newExecCommand(opts),
		newCommandsCommand(opts),
	)

	return cmd
}

// load reads the configuration, applies explicit flags on top of it and
// configures the global logger.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.NewLoader(o.configPath).Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("history") {
		cfg.HistoryCapacity = o.historyCapacity
	}
	if flags.Changed("output") {
		cfg.OutputCapacity = o.outputCapacity
	}
	if flags.Changed("prompt") {
		cfg.Prompt = o.prompt
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	o.config = cfg

	level := logging.ParseLevel(cfg.LogLevel)
	switch {
	case o.quiet:
		level = slog.LevelError
	case o.verbose:
		level = slog.LevelDebug
	}
	o.logLevel = level
	logging.SetGlobalLogger(logging.NewLogger(logging.Config{
		Level:  level,
		Format: logging.FormatText,
		Output: cmd.ErrOrStderr(),
	}))

	logging.Debug("configuration loaded",
		"history_capacity", cfg.HistoryCapacity,
		"output_capacity", cfg.OutputCapacity)
	return nil
}

// newSession builds a console session from the loaded configuration.
func (o *options) newSession() (*session.Session, error) {
	s, err := di.InitializeSession(o.config)
	if err != nil {
		return nil, fmt.Errorf("failed to start console: %w", err)
	}
	return s, nil
}

// RootCmd is the command run by main.
var RootCmd = NewRootCommand(tui.Run)
