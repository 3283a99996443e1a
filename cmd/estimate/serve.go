package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kegliz/qre/internal/app"
	"github.com/kegliz/qre/internal/config"
)

var (
	serveConfigFile string
	serveVersion     = "dev"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resource estimator over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(serveConfigFile)
		if err != nil {
			return err
		}

		srv, err := app.NewServer(app.ServerOptions{C: c, Version: serveVersion})
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Listen(c.GetInt("port"), c.GetBool("localOnly"))
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sigCh:
			return srv.Shutdown(context.Background())
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigFile, "serve-config", "", "path to the service config file (yaml/json/toml)")
}
