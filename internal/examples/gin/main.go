package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	lambdaioc "github.com/Coder-Spirit/lambda-ioc"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/infra"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/setup"
	log "github.com/sirupsen/logrus"
)

// Some of this code was taken from the GIN graceful shutdown example
// and adapted to run with the lambda-ioc container
// https://github.com/gin-gonic/examples/blob/9fd0db1d6a7cdfd8dd1e0b163146674ea9d4ecfd/graceful-shutdown/graceful-shutdown/notify-with-context/server.go
func main() {
	config, err := infra.LoadConfig(".env")
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	// Registration returns a new container every time, so the whole
	// application is described by chaining the setup functions. Keeping them
	// in separate functions lets the tests reuse them.
	c := setup.RegisterHttpServer(setup.RegisterServices(lambdaioc.New(), config))

	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := setup.CheckBindings(ctx, c); err != nil {
		log.WithError(err).Fatal("invalid bindings")
	}

	server, err := lambdaioc.Resolve[*http.Server](c, setup.KeyServer)
	if err != nil {
		log.WithError(err).Fatal("failed to build the server")
	}

	go func() {
		log.WithField("addr", server.Addr).Info("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	// Listen for the interrupt signal.
	<-ctx.Done()

	// Restore default behavior on the interrupt signal and notify user of shutdown.
	stop()
	log.Info("shutting down gracefully, press Ctrl+C again to force")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	if err := setup.CloseDB(ctx, c); err != nil {
		log.WithError(err).Error("failed to close the database")
	}

	log.Info("Server exiting")
}
