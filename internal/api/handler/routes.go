package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecast/internal/api/handler/router"
	"github.com/vfg2006/sales-forecast/internal/scheduler"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/internal/usecases/loading"
	"github.com/vfg2006/sales-forecast/pkg/middleware"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
	}
}

func Datasets(loader loading.Loader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets",
			Method:      http.MethodGet,
			Handler:     ListDatasets(loader),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasets/download",
			Method:      http.MethodPost,
			Handler:     DownloadDatasets(loader),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/datasets/:name",
			Method:      http.MethodGet,
			Handler:     PreviewDataset(loader),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Forecasts(runner forecasting.Runner, forecaster forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecasts/train",
			Method:      http.MethodPost,
			Handler:     TrainPredictor(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/forecasts/predict",
			Method:      http.MethodPost,
			Handler:     Predict(runner, forecaster),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/v1/forecasts/defaults",
			Method:      http.MethodGet,
			Handler:     GetTrainDefaults(forecaster),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/forecasts/batches/:id",
			Method:      http.MethodGet,
			Handler:     GetForecastBatch(forecaster),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

func TrainingRuns(forecaster forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/training-runs",
			Method:      http.MethodGet,
			Handler:     ListTrainingRuns(forecaster),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/v1/training-runs/:id",
			Method:      http.MethodGet,
			Handler:     GetTrainingRun(forecaster),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

func CronJobs(retraining *scheduler.RetrainingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/retraining/run",
			Method:      http.MethodPost,
			Handler:     RunRetraining(retraining),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(retraining),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
