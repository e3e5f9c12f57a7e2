// Package cli wires configuration, logging and the TUI behind the cobra root
// command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/visioncraft/internal/app"
	"github.com/riordanpawley/visioncraft/internal/config"
	"github.com/riordanpawley/visioncraft/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=..."
var Version = "dev"

// Runner runs the TUI until it exits or ctx is cancelled
type Runner func(ctx context.Context, model tea.Model) error

// RunProgram runs model full screen with mouse motion reporting, which the
// avatar needs to follow the pointer
func RunProgram(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

// NewRootCommand builds the visioncraft command around run
func NewRootCommand(run Runner) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "visioncraft [flags]",
		Short: "Sign in and sign up forms in the terminal.",
		Long: `VisionCraft shows a sign in form and a sign up form, one at a time.

Switch between them with Ctrl+T or by clicking the tabs, press F1 for every
shortcut. Submissions are validated locally; no request leaves the machine.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if err := bindFlagsToConfig(cmd.Flags(), cfg); err != nil {
				return fmt.Errorf("failed to parse flags: %w", err)
			}

			level, err := logger.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			log, err := logger.New(level, cfg.Log.File)
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			log.Info("starting",
				zap.String("version", Version),
				zap.String("mode", cfg.App.InitialMode),
				zap.Bool("avatar", cfg.Avatar.Enabled),
			)

			model := app.New(cfg, app.Dependencies{Logger: log})
			if err := run(cmd.Context(), model); err != nil {
				log.Error("program exited with error", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is %s.yaml in the working or home directory)",
			config.DefaultConfigName))

	flags := cmd.Flags()
	flags.StringP("mode", "m", "", "form shown at start: login or signup")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-file", "", "file the log is written to")
	flags.Bool("no-avatar", false, "hide the avatar above the form")

	return cmd
}

// bindFlagsToConfig applies the flags given on the command line over cfg
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("mode"); flag != nil && flag.Changed {
		cfg.App.InitialMode, _ = flags.GetString("mode")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("log-file"); flag != nil && flag.Changed {
		cfg.Log.File, _ = flags.GetString("log-file")
	}

	if flag := flags.Lookup("no-avatar"); flag != nil && flag.Changed {
		noAvatar, _ := flags.GetBool("no-avatar")
		cfg.Avatar.Enabled = !noAvatar
	}

	return cfg.Validate()
}

// Execute runs the root command until the program quits or the process is
// signalled
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(RunProgram).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
