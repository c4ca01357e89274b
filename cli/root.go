package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hangman/config"
)

var (
	cfg        config.Config
	configPath string
	logLevel   string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hangman",
		Short: "Hangman guessing simulator with a character n-gram model",
		Long: `hangman trains character n-gram tables on a word list and uses them to
play hangman, comparing the interpolated n-gram strategy against simpler baselines.

Configuration is read from an optional YAML file, a .env file and HANGMAN_*
environment variables, in that order of precedence.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			return setupLogging(cfg.LogLevel)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (env: HANGMAN_LOG_LEVEL)")

	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newTableCmd())

	return rootCmd
}

func setupLogging(level string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
