package di

import (
	"fmt"

	"WavePull/internal/domain/repository"
	"WavePull/internal/handler/api"
	internalrepo "WavePull/internal/repository"
	"WavePull/internal/usecase"
	"WavePull/pkg/config"
	xhttp "WavePull/pkg/http"
	"WavePull/pkg/logger"
	"WavePull/pkg/metrics"
	"WavePull/pkg/queue"
	"WavePull/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideTraceReader creates the archive file reader.
func ProvideTraceReader() repository.TraceReader {
	return internalrepo.NewSACReader()
}

// ProvideRemoteFetcher creates the remote waveform service client.
func ProvideRemoteFetcher(cfg *config.Config) repository.RemoteFetcher {
	return internalrepo.NewWaveformService(cfg.Remote.BaseURL, cfg.Remote.Timeout)
}

// ProvideAcquirer creates the acquisition use case.
func ProvideAcquirer(cfg *config.Config, reader repository.TraceReader, remote repository.RemoteFetcher, m repository.Metrics, l *logger.Logger) *usecase.Acquirer {
	return usecase.NewAcquirer(cfg, reader, remote, m, l)
}

// ProvidePool creates the acquisition worker pool.
func ProvidePool(cfg *config.Config) *queue.Pool {
	return queue.NewPool(queue.Config{Workers: cfg.Pool.Workers, QueueSize: cfg.Pool.QueueSize})
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(l *logger.Logger, acq *usecase.Acquirer) xhttp.Handler {
	return api.NewAcquireEchoHandler(l, acq)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, pool *queue.Pool) *server.App {
	return server.New(cfg, handler, pool)
}
