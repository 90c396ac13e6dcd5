package server

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"WavePull/pkg/config"
	xhttp "WavePull/pkg/http"
	"WavePull/pkg/queue"
)

// App encapsulates the application lifecycle: the HTTP surface, the worker
// pool behind it, and graceful shutdown on signal.
type App struct {
	cfg        *config.Config
	httpServer *xhttp.Server
	pool       *queue.Pool
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, handler xhttp.Handler, pool *queue.Pool) *App {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	srv := xhttp.NewServer(handler,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)
	return &App{cfg: cfg, httpServer: srv, pool: pool}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.pool.Start(ctx)

	if err := a.httpServer.Start(); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	cancel()
	a.pool.Stop()

	return nil
}
