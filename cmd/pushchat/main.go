package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushchat-client/internal/app"
	"github.com/vovakirdan/pushchat-client/internal/config"
	"github.com/vovakirdan/pushchat-client/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath   string
		serverURL string
		username  string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:          "pushchat",
		Short:        "Terminal client for the pushchat server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrapLog := log.New("info")
			cfg, cfgFile, err := config.Load(bootstrapLog, cfgPath)
			if err != nil {
				return err
			}

			// Flags win over config file and env.
			if serverURL != "" {
				cfg.ServerURL = serverURL
			}
			if username != "" {
				cfg.Username = username
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			logger := log.New(cfg.LogLevel)
			logger.Info().Str("config", cfgFile).Str("server_url", cfg.ServerURL).Msg("starting pushchat client")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application := app.New(cfg, logger)

			go func() {
				defer stop()
				runREPL(ctx, application.Sync(), os.Stdin, os.Stdout)
			}()

			return application.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&serverURL, "server-url", "", "WebSocket server URL")
	cmd.Flags().StringVar(&username, "username", "", "display name to announce")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}
