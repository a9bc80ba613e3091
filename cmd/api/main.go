package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/kaggle"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/kaggle/kaggleclient"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor/forecastclient"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor/localengine"
	"github.com/vfg2006/sales-forecast/infrastructure/repository"
	"github.com/vfg2006/sales-forecast/internal/api"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/metrics"
	"github.com/vfg2006/sales-forecast/internal/scheduler"
	"github.com/vfg2006/sales-forecast/internal/usecases/authenticating"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/internal/usecases/loading"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

const backendHTTP = "http"

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	kaggleIntegrator := kaggle.New(cfg, kaggleclient.NewClient(cfg))
	loader := loading.NewService(cfg, kaggleIntegrator, m)

	forecastService, err := forecasting.NewService(cfg, newEngine(cfg), m)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de previsão")
	}

	deps := api.Dependencies{
		Loader:        loader,
		Forecaster:    forecastService,
		Authenticator: authenticating.NewService(cfg),
		Metrics:       m,
		Gatherer:      registry,
	}

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		forecastService.WithHistory(
			repository.NewTrainingRunRepository(pgConn),
			repository.NewForecastRepository(pgConn),
		)
		deps.Pinger = pgConn
	} else {
		logrus.Info("Banco de dados desabilitado, histórico de treinos indisponível")
	}

	workflow := forecasting.NewWorkflow(loader, forecastService)
	deps.Runner = workflow

	retrainingService := scheduler.NewRetrainingService(workflow, cfg)
	if err := retrainingService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retreino")
	} else {
		logrus.Info("Agendador de retreino iniciado com sucesso")
	}
	deps.Retraining = retrainingService

	server, err := api.New(cfg, deps)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newEngine escolhe o engine de previsão conforme FORECASTER_BACKEND
func newEngine(cfg *config.Config) predictor.Engine {
	if cfg.Forecaster.Backend == backendHTTP {
		logrus.WithField("url", cfg.Forecaster.URL).Info("Usando serviço de previsão remoto")
		return forecastclient.NewEngine(cfg)
	}

	logrus.Info("Usando engine de previsão local")
	return localengine.New()
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
