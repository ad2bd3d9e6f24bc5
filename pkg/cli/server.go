package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
)

const (
	serverShutdownWaitSeconds = 5
	serverTimeoutSeconds      = 30
	serverMaxHeaderBytes      = 20
)

const (
	portFlag = "port"
	hostFlag = "host"

	hostDefault = "127.0.0.1"
)

func newServerCmd() *cli.Command {
	return &cli.Command{
		Name:            "server",
		Aliases:         []string{"serve"},
		Usage:           "Start local HTTP server exposing the scoring API",
		HideHelpCommand: true,
		Action:          cmdStartServer,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    portFlag,
				Usage:   "Port on which the server will listen (default: from config)",
				Sources: cli.EnvVars(envPrefix + "PORT"),
			},
			&cli.StringFlag{
				Name:  hostFlag,
				Usage: "Address on which the server will listen",
				Value: hostDefault,
			},
		},
	}
}

func cmdStartServer(ctx context.Context, cmd *cli.Command) error {
	cfg := getConfig(ctx)

	port := cfg.Port
	if cmd.IsSet(portFlag) {
		port = cmd.Int(portFlag)
	}
	address := fmt.Sprintf("%s:%d", cmd.String(hostFlag), port)

	s := &http.Server{
		Addr:           address,
		Handler:        makeRouter(cfg),
		ReadTimeout:    serverTimeoutSeconds * time.Second,
		WriteTimeout:   serverTimeoutSeconds * time.Second,
		MaxHeaderBytes: 1 << serverMaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	slog.Info("server started", "address", fmt.Sprintf("http://%s", address))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownWaitSeconds*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("error shutting down server", "error", err)
	}
	slog.Info("server stopped")
	return nil
}

func makeRouter(cfg *appConfig) *http.ServeMux {
	opts := cfg.matchOptions()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler)

	// Scoring API
	mux.HandleFunc("GET /api/match", matchQueryAPIHandler(opts))
	mux.HandleFunc("POST /api/match", matchBodyAPIHandler(opts))
	mux.HandleFunc("GET /api/strokes", strokesAPIHandler(cfg.Normalize))

	return mux
}
