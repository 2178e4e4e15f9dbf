package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gaschecker/internal/http/handler"
	"gaschecker/internal/http/handler/middleware"
	"gaschecker/internal/http/server"
	"gaschecker/pkg/telemetry"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, a.config.OTLPEndpoint)
	if err != nil {
		a.logs.Warnw("tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			a.logs.Errorw("failed to flush traces", "error", err)
		}
	}()

	gasHlr := handler.NewGasHandler(a.logs, a.checker)

	// register routes
	mux := http.NewServeMux()
	gasHlr.Register(mux)

	// middleware
	hdlr := middleware.NewLoggingMiddleware(a.logs).Logging(mux)
	hdlr = middleware.NewCORSMiddleware(a.config.CORSOrigins).CORS(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(a.logs, hdlr, a.config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
