package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"static-server/core/loader"
	"static-server/core/middleware/access"
	"static-server/core/middleware/rayid"
	"static-server/core/server"
	"static-server/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the document root over HTTP",
	Long:  `Validates the document root, binds the listen port on all interfaces and serves files until terminated.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := cfg.Server.Validate(); err != nil {
			return fmt.Errorf("invalid server configuration: %w", err)
		}

		ln, err := server.Listen(cfg.Server)
		if err != nil {
			return err
		}

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(stop)

		return runServer(ln, cfg.Server.Root, logg, stop)
	},
}

// newApp builds the Fiber application serving root.
func newApp(root string, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later entry can be correlated.
	app.Use(rayid.New())
	app.Use(access.New(logg))

	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(root, logg))
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

// runServer serves root on ln until stop fires or the listener fails.
func runServer(ln net.Listener, root string, logg *zap.Logger, stop <-chan os.Signal) error {
	app, err := newApp(root, logg)
	if err != nil {
		ln.Close()
		return err
	}

	port := ln.Addr().(*net.TCPAddr).Port
	logg.Info(fmt.Sprintf("Serving at port %d", port), zap.String("root", root))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listener(ln)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server stopped: %w", err)
	case sig := <-stop:
		logg.Info("Received signal, exiting", zap.String("signal", sig.String()))
		return app.Shutdown()
	}
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
