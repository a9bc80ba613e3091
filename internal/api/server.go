package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/internal/api/handler"
	"github.com/vfg2006/sales-forecast/internal/api/handler/router"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/metrics"
	"github.com/vfg2006/sales-forecast/internal/scheduler"
	"github.com/vfg2006/sales-forecast/internal/usecases/authenticating"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/internal/usecases/loading"
	"github.com/vfg2006/sales-forecast/pkg/middleware"
)

// Dependencies agrupa os serviços expostos pela API
type Dependencies struct {
	Loader        loading.Loader
	Runner        forecasting.Runner
	Forecaster    forecasting.Forecaster
	Authenticator authenticating.Authenticator
	Retraining    *scheduler.RetrainingService
	Pinger        handler.Pinger
	Metrics       *metrics.Metrics
	Gatherer      prometheus.Gatherer
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Pinger)...),
		router.WithRoutes(router.Route{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}),
		}),
		router.WithRoutes(handler.Datasets(deps.Loader)...),
		router.WithRoutes(handler.Forecasts(deps.Runner, deps.Forecaster)...),
		router.WithRoutes(handler.TrainingRuns(deps.Forecaster)...),
		router.WithRoutes(handler.CronJobs(deps.Retraining)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(deps.Metrics),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler retorna a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
