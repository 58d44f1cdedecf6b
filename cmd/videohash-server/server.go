package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func newListener(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}

const shutdownTimeout = 5 * time.Second

// serve starts the HTTP server and blocks until shutdown: bind, signal to
// readyCh, accept until a signal arrives, then drain in-flight work under a
// timeout via net/http.Server.Shutdown.
func (app *application) serve() error {
	srv := &http.Server{
		Addr:    app.cfg.BindAddress,
		Handler: app.router,
	}

	ln, err := newListener(srv.Addr)
	if err != nil {
		return err
	}
	app.listener = ln

	if app.readyCh != nil {
		close(app.readyCh)
	}

	shutdownError := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("caught signal", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("server listening", "address", ln.Addr().String())

	err = srv.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownError; err != nil {
		app.logger.Error("server stopped with error", "error", err)
		return err
	}

	app.logger.Info("server stopped gracefully")
	return nil
}
