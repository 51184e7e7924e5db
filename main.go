package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}
	defer server.logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", server.Port),
		Handler:           server.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		server.logger.Info("server starting", zap.String("addr", fmt.Sprintf("localhost:%s", server.Port)))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			server.logger.Error("graceful shutdown failed", zap.Error(err))
		}
		if err := server.connections.Close(shutdownCtx); err != nil {
			server.logger.Error("could not close connections", zap.Error(err))
		}
		server.logger.Info("server stopped")
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			server.logger.Fatal("could not start server", zap.Error(err))
		}
	}
}
