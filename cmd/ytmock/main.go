package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	clientcmd "github.com/yuge42/yt-api-mock/internal/cmd/client"
	serverrun "github.com/yuge42/yt-api-mock/internal/cmd/server"
	cfgpkg "github.com/yuge42/yt-api-mock/internal/config"
	pebblestore "github.com/yuge42/yt-api-mock/internal/storage/pebble"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ytmock",
		Short: "YouTube Data API mock CLI",
		Long:  "ytmock runs a mock of the YouTube Data API v3 live chat and video endpoints for integration testing, and provides client commands to seed and inspect it.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start the mock server (API and health endpoints)",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			restAddr, _ := cmd.Flags().GetString("rest")
			healthAddr, _ := cmd.Flags().GetString("health")
			fsyncMode, _ := cmd.Flags().GetString("fsync")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")
			noSeed, _ := cmd.Flags().GetBool("no-seed")

			mode := pebblestore.FsyncModeAlways
			switch fsyncMode {
			case "never":
				mode = pebblestore.FsyncModeNever
			case "always":
				mode = pebblestore.FsyncModeAlways
			default:
				return fmt.Errorf("invalid --fsync; use always|never")
			}

			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfgpkg.FromEnv(&cfg)
			if restAddr != "" {
				cfg.RESTBindAddress = restAddr
			}
			if healthAddr != "" {
				cfg.HealthBindAddress = healthAddr
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}
			if noSeed {
				cfg.SeedFixtures = false
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{
				DataDir: dataDir,
				Fsync:   mode,
				Config:  cfg,
			}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	serverStartCmd.Flags().String("config", "", "Path to a JSON config file")
	serverStartCmd.Flags().String("data-dir", "", "Data directory (empty keeps everything in memory)")
	serverStartCmd.Flags().String("rest", "", "API listen address (default [::1]:8080)")
	serverStartCmd.Flags().String("health", "", "Health/metrics listen address (default [::1]:8081)")
	serverStartCmd.Flags().String("fsync", "always", "Fsync mode for durable storage: always|never")
	serverStartCmd.Flags().String("log-level", os.Getenv("YTMOCK_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", os.Getenv("YTMOCK_LOG_FORMAT"), "Log format: text|json (default text)")
	serverStartCmd.Flags().Bool("no-seed", false, "Skip seeding the baseline video and chat fixtures")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// client commands
	rootCmd.AddCommand(clientcmd.NewChatCommand(apiURL))
	rootCmd.AddCommand(clientcmd.NewVideoCommand(apiURL))
	rootCmd.AddCommand(clientcmd.NewTokenCommand(apiURL))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func apiURL() string {
	if v := os.Getenv("YTMOCK_HTTP"); v != "" {
		return v
	}
	return "http://[::1]:8080"
}
