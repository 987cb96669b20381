package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/five82/missionctl/internal/app"
	"github.com/five82/missionctl/internal/config"
	"github.com/five82/missionctl/internal/logtail"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "missionctl: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "missionctl",
		Short: "Terminal mission control dashboard",
		Long: `missionctl shows a live starfield, UTC and local clocks, a countdown to
the next orbital launch, the latest spaceflight headlines and a comms
channel to mission control.

When the launch schedule is unreachable the countdown runs a simulated
mission. When the chat backend is unreachable mission control answers
from a small set of canned replies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/missionctl/config.toml)")
	flags.BoolVar(&opts.Offline, "offline", false, "answer chat from local replies only")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/missionctl/prefs.toml)")
	root.Flags().IntVar(&opts.Stars, "stars", 0, "number of stars (negative disables the starfield)")
	root.Flags().Int64Var(&opts.Seed, "seed", 0, "starfield random seed (0 uses the clock)")

	root.AddCommand(newStatusCmd(&opts), newConfigCmd(&opts), newLogsCmd(&opts))
	return root
}

func newStatusCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Probe the launch, news and chat endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := app.Setup(*opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			services := app.NewServices(cfg, logger, os.Getenv)
			timeout := time.Duration(cfg.Chat.TimeoutSeconds) * time.Second
			results := app.Probe(cmd.Context(), services, timeout, logger)
			return app.WriteStatus(cmd.OutOrStdout(), results)
		},
	}
}

func newConfigCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := app.Setup(*opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			out, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newLogsCmd(opts *app.Options) *cobra.Command {
	var (
		lines int
		level string
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the tail of the missionctl log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			minLevel, err := zapcore.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("parse --level: %w", err)
			}
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			entries, err := logtail.Tail(cfg.Log.File, lines, minLevel)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintln(out, logtail.Format(e))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 40, "number of entries to show (0 for all)")
	cmd.Flags().StringVar(&level, "level", "info", "minimum level to show")
	return cmd
}
