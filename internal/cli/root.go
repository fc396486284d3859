package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tasklist/internal/app"
	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/logging"
	"github.com/idilsaglam/tasklist/internal/tui"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// Options holds the persistent flags plus the state opened for a command.
type Options struct {
	ConfigPath string
	DataDir    string
	Backend    string
	Theme      string
	LogLevel   string

	app     *app.App
	logger  *log.Logger
	logFile *os.File
}

// skipStorage marks commands that run without opening the task storage.
const skipStorage = "tasklist/skip-storage"

func NewRootCmd() *cobra.Command {
	return newRootCmd(&Options{})
}

func newRootCmd(opt *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tasklist",
		Short:         "Deadline-aware to-do list (TUI + CLI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  tasklist

  # Scriptable commands
  tasklist add "Buy milk" --deadline 2024-05-01
  tasklist ls --group
  tasklist done 2
  tasklist up 3
  tasklist profile set --username ada --job engineer
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), opt.app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return opt.open(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return opt.close()
	}

	cmd.PersistentFlags().StringVar(&opt.ConfigPath, "config", "", "Path to config.toml (default ~/.tasklist/config.toml, env "+config.EnvConfig+")")
	cmd.PersistentFlags().StringVar(&opt.DataDir, "data-dir", "", "Directory holding tasks and profile (env "+config.EnvDataDir+")")
	cmd.PersistentFlags().StringVar(&opt.Backend, "backend", "", "Storage backend: file|sqlite|memory (env "+config.EnvBackend+")")
	cmd.PersistentFlags().StringVar(&opt.Theme, "theme", "", "Color theme: "+strings.Join(ui.Names(), "|")+" (env "+config.EnvTheme+")")
	cmd.PersistentFlags().StringVar(&opt.LogLevel, "log-level", "", "Log level: debug|info|warn|error (env "+config.EnvLogLevel+")")

	cmd.AddCommand(newAddCmd(opt))
	cmd.AddCommand(newListCmd(opt))
	cmd.AddCommand(newDoneCmd(opt))
	cmd.AddCommand(newRemoveCmd(opt))
	cmd.AddCommand(newMoveCmd(opt, "up"))
	cmd.AddCommand(newMoveCmd(opt, "down"))
	cmd.AddCommand(newClearCmd(opt))
	cmd.AddCommand(newProfileCmd(opt))
	cmd.AddCommand(newClockCmd(opt))

	closeOnError(cmd, opt)
	return cmd
}

// closeOnError wraps every RunE in the tree so a failed command still
// releases storage; cobra does not run PersistentPostRunE after an error.
func closeOnError(cmd *cobra.Command, opt *Options) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)
			if err != nil {
				_ = opt.close()
			}
			return err
		}
	}
	for _, sub := range cmd.Commands() {
		closeOnError(sub, opt)
	}
}

func (o *Options) open(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Override(o.DataDir, o.Backend, o.Theme, o.LogLevel); err != nil {
		return err
	}
	ui.SetTheme(cfg.Theme)

	lopts := logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat}
	var logger *log.Logger
	if cmd.Parent() == nil {
		// The TUI owns the terminal; keep logs out of the alt screen.
		logger, o.logFile, err = logging.OpenFile(cfg.DataDir, lopts)
		if err != nil {
			return err
		}
	} else {
		logger = logging.New(cmd.ErrOrStderr(), lopts)
	}
	o.logger = logger
	if cmd.Annotations[skipStorage] == "true" {
		return nil
	}

	a, err := app.Open(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	o.app = a
	return nil
}

func (o *Options) close() error {
	var err error
	if o.app != nil {
		err = o.app.Close()
		o.app = nil
	}
	if o.logFile != nil {
		_ = o.logFile.Close()
		o.logFile = nil
	}
	o.logger = nil
	return err
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	ui.Fail(cmd.ErrOrStderr(), err.Error())
	return 1
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("usage: "+format, args...)
}
