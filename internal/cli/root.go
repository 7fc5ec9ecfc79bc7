package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mnightingale/morse/internal/config"
	"github.com/mnightingale/morse/internal/logging"
)

// app holds the state shared by every command of one invocation.
type app struct {
	cfgFile  string
	logLevel string

	cfg config.Config
	log zerolog.Logger
}

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(version, commit).ExecuteContext(ctx)
}

// NewRootCommand builds the morse command tree.
func NewRootCommand(version, commit string) *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:          "morse",
		Short:        "Translate text to and from 2-bit packed Morse code",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/morse/config.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "trace, debug, info, warn, error or disabled")

	root.AddCommand(
		newTextToMorseCommand(a),
		newMorseToTextCommand(a),
		newAlphabetCommand(),
		newCompletionCommand(root),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), level, cfg.NoColor)
	return nil
}
