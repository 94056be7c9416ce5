package cmd

import (
	"fmt"
	"os"

	"static-server/core/config"
	"static-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	portFlag int
	rootFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "static-server",
	Short: "Static file HTTP server",
	Long: `static-server serves files from a document root over HTTP.
Requests for "/" and "/test" are answered with frontend_test.html.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable timestamps for CLI errors.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// loadRuntime loads the configuration, applies any flags set on the command
// line and builds the logger.
func loadRuntime(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port = portFlag
	}
	if cmd.Flags().Changed("root") {
		cfg.Server.Root = rootFlag
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

func init() {
	RootCmd.PersistentFlags().IntVarP(&portFlag, "port", "p", 8080, "TCP port to listen on (overrides SERVER_PORT)")
	RootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "/home/user/webapp", "document root (overrides SERVER_ROOT)")
}
