package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/guardian/github-lens/pkg/controller/server"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		addr     string
		runToken types.RunToken
		cfg      appConfig
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REPOCOP_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "run-token",
			Usage:       "Bearer token required by the run endpoints (open when empty)",
			Sources:     cli.EnvVars("REPOCOP_RUN_TOKEN"),
			Destination: (*string)(&runToken),
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode, runs are triggered over HTTP",
		Flags:   slice.Flatten(serveFlags, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Bool("RunToken.set", runToken != ""),
			)
			if runToken == "" {
				logging.Default().Warn("run endpoints are not protected by a token")
			}

			uc, cleanup, err := cfg.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := server.New(uc, server.WithRunToken(runToken))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
