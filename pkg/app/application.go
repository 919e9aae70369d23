package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"innkeep/pkg/config"
	"innkeep/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

// Handler is anything that can attach its routes to a router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

type Application struct {
	cfg              *config.Config
	server           *http.Server
	idempotencyStore *middleware.InMemoryIdempotencyStore
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp wires the health handler behind a minimal middleware chain and
// the application handler behind the full one, then builds the server.
func (a *Application) SetApp(healthHandler, appHandler Handler) {
	healthRouter := httprouter.New()
	healthHandler.RegisterRoutes(healthRouter)

	var healthHTTP http.Handler = healthRouter
	healthHTTP = middleware.RequestLogging(a.cfg.Log)(healthHTTP)
	healthHTTP = middleware.Recovery(a.cfg.Log)(healthHTTP)

	appRouter := httprouter.New()
	appHandler.RegisterRoutes(appRouter)

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(a.cfg.IdempotencyTTL)

	var appHTTP http.Handler = appRouter
	appHTTP = middleware.Idempotency(a.idempotencyStore, "Idempotency-Key")(appHTTP)
	appHTTP = middleware.RequestTimeout(a.cfg.RequestTimeout)(appHTTP)
	appHTTP = middleware.ContentTypeValidation(a.cfg.Log)(appHTTP)
	appHTTP = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(appHTTP)
	appHTTP = middleware.RequestLogging(a.cfg.Log)(appHTTP)
	appHTTP = middleware.Recovery(a.cfg.Log)(appHTTP)

	mux := http.NewServeMux()
	mux.Handle("/health", healthHTTP)
	mux.Handle("/ready", healthHTTP)
	mux.Handle("/", appHTTP)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig.String())
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.idempotencyStore.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Server stopped gracefully")
}
