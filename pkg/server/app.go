package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AgriPulse/internal/usecase"
	pkgch "AgriPulse/pkg/clickhouse"
	"AgriPulse/pkg/config"
	xhttp "AgriPulse/pkg/http"
	pkgkafka "AgriPulse/pkg/kafka"
	applogger "AgriPulse/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg         *config.Config
	logger      *applogger.Logger
	gen         *usecase.ReadingGenerator
	processor   *usecase.ReadingProcessor
	consumer    *pkgkafka.Consumer
	kh          pkgkafka.MessageHandler
	chClient    *pkgch.Client
	httpServer  *xhttp.Server
	httpHandler xhttp.Handler
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	gen *usecase.ReadingGenerator,
	processor *usecase.ReadingProcessor,
	consumer *pkgkafka.Consumer,
	kh pkgkafka.MessageHandler,
	chClient *pkgch.Client,
) *App {
	return &App{
		cfg:       cfg,
		logger:    logger,
		gen:       gen,
		processor: processor,
		consumer:  consumer,
		kh:        kh,
		chClient:  chClient,
	}
}

// SetHTTPHandler allows DI to inject an HTTP handler.
func (a *App) SetHTTPHandler(h xhttp.Handler) { a.httpHandler = h }

// Run starts the generation loop and blocks until interrupted. The first
// round runs immediately; later rounds follow the configured interval.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := a.logger

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	// Start consumer if configured
	if a.consumer != nil && a.kh != nil {
		a.consumer.RegisterHandler(a.kh)
		if err := a.consumer.Start(); err != nil {
			l.Error("kafka consumer start error", applogger.Error(err))
			return err
		}
		l.Info("kafka consumer started", applogger.String("topic", a.kh.Topic()))
	}

	if err := a.httpServer.Start(); err != nil {
		l.Error("http server start error", applogger.Error(err))
		return err
	}

	go a.generationLoop(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	l.Info("shutdown signal received")
	return a.shutdown(ctx)
}

func (a *App) generationLoop(ctx context.Context) {
	l := a.logger

	l.Info("generation loop started",
		applogger.Duration("interval", a.cfg.Generator.Interval),
		applogger.Duration("status_interval", a.cfg.Generator.StatusInterval))

	runRound := func() {
		roundCtx, cancel := context.WithTimeout(ctx, a.cfg.Generator.Interval)
		defer cancel()
		if err := a.gen.RunRound(roundCtx); err != nil {
			l.Error("generation round failed", applogger.Error(err))
		}
	}

	runRound()

	roundTicker := time.NewTicker(a.cfg.Generator.Interval)
	defer roundTicker.Stop()
	statusTicker := time.NewTicker(a.cfg.Generator.StatusInterval)
	defer statusTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-roundTicker.C:
			runRound()
		case <-statusTicker.C:
			a.logStatus(ctx)
		}
	}
}

func (a *App) logStatus(ctx context.Context) {
	statusCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sum := a.gen.ReportStatus(statusCtx)
	a.logger.Info("generation status",
		applogger.String("scenario", string(sum.Scenario)),
		applogger.Int("sensors", sum.Sensors),
		applogger.Int64("readings", sum.Readings),
		applogger.Int64("stored_records", sum.StoredRecords),
		applogger.Any("by_status", sum.ByStatus))
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	l := a.logger
	l.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		l.Error("http shutdown error", applogger.Error(err))
	}

	if a.consumer != nil {
		if err := a.consumer.Stop(shutdownCtx); err != nil {
			l.Warn("kafka consumer stop error", applogger.Error(err))
		}
	}

	// Close publisher/storage before the shared ClickHouse connection.
	if a.processor != nil {
		a.processor.Close()
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			l.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	l.Info("shutdown complete")
	return nil
}
