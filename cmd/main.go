package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/profiler"

	"github.com/doitintl/hello/account-onboarding/cmd/api"
	"github.com/doitintl/hello/account-onboarding/common"
	"github.com/doitintl/hello/account-onboarding/framework/connection"
	"github.com/doitintl/hello/account-onboarding/logger"
)

const (
	defaultAddr = "0.0.0.0:8082"

	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run() error {
	// Profiler initialization, best done as early as possible.
	if common.Production {
		if err := profiler.Start(profiler.Config{}); err != nil {
			log.Printf("main: could not start profiler: %v", err)
		}
	}

	ctx := context.Background()

	logging, err := logger.NewLogging(ctx)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}

	settings, err := common.NewSettingsFromEnv()
	if err != nil {
		log.Printf("main: could not load settings. error %s", err)
		return err
	}

	conn, err := connection.NewConnection(ctx, logging)
	if err != nil {
		log.Printf("main: could not initialize db connections. error %s", err)
		return err
	}

	// =================
	// Start API Service
	log.Print("started: initializing api support")

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Inject needed functionality into the api.
	a := api.NewAPI(shutdown, logging, conn, settings)

	addr := common.GetEnv("ADDR", defaultAddr)

	server := http.Server{
		Addr:    addr,
		Handler: a.Build(),
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("listening on %s", addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		log.Printf("main: %v: start shutdown", sig)

		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("main: graceful shutdown did not complete in %v: %v", shutdownTimeout, err)
			return server.Close()
		}
	}

	return nil
}
