package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 30 * time.Second

// Run starts the HTTP server and all background subscribers, then blocks until shutdown signal.
//  1. Map HTTP handlers and routes
//  2. Start event subscribers
//  3. Start HTTP server
//  4. Wait for shutdown signal, stop subscribers, the server, then drain pending alerts
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	// 1. Map handlers
	if err := srv.mapHandlers(); err != nil {
		srv.logger.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	// 2. Start subscribers
	for _, sub := range srv.subscribers {
		if err := sub.Start(ctx); err != nil {
			srv.logger.Errorf(ctx, "Failed to start subscriber: %v", err)
			return err
		}
	}

	// 3. Start HTTP server in background
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	// 4. Wait for shutdown signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	var runErr error
	select {
	case sig := <-ch:
		srv.logger.Infof(ctx, "Received signal %s, shutting down", sig)
	case runErr = <-serveErr:
		srv.logger.Errorf(ctx, "HTTP server error: %v", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	for _, sub := range srv.subscribers {
		if err := sub.Shutdown(shutdownCtx); err != nil {
			srv.logger.Errorf(ctx, "Subscriber shutdown error: %v", err)
		}
	}
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "HTTP server shutdown error: %v", err)
	}
	if err := srv.fanoutUC.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "Fan-out shutdown error: %v", err)
	}

	return runErr
}
