package handler

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
	"github.com/vfg2006/sales-forecast/internal/api/handler/router"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/scheduler"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	forecastingmocks "github.com/vfg2006/sales-forecast/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/sales-forecast/internal/usecases/loading"
	loadingmocks "github.com/vfg2006/sales-forecast/internal/usecases/loading/mocks"
	"github.com/vfg2006/sales-forecast/pkg/log"
	"github.com/vfg2006/sales-forecast/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func withRole(r *http.Request, role int) *http.Request {
	claims := &domain.Claims{UserID: "u1", UserName: "tester", UserRoleID: role}
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTrainPredictor(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := forecastingmocks.NewMockRunner(ctrl)

	runner.EXPECT().
		TrainFromRaw(gomock.Any(), domain.TrainParams{
			PredictionLength: 7,
			TimeLimit:        60 * time.Second,
			Presets:          domain.PresetFastTraining,
			EvalMetric:       "MAE",
		}).
		Return(&forecasting.TrainResult{
			Info:        domain.PredictorInfo{Path: "models/sales_predictor", BestModel: "Naive", PredictionLength: 7},
			SeriesCount: 2,
			RowCount:    40,
		}, nil)

	body := `{"prediction_length":7,"time_limit_seconds":60,"presets":"fast_training","eval_metric":"MAE"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/train", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	TrainPredictor(runner).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, float64(2), resp["series_count"])
	assert.Equal(t, "Naive", resp["predictor"].(map[string]any)["best_model"])
}

func TestTrainPredictor_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := forecastingmocks.NewMockRunner(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/train", bytes.NewBufferString(`{"eval_metric":"WQL","prediction_length":0}`))
	rec := httptest.NewRecorder()

	TrainPredictor(runner).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "VAL_001", resp["code"])

	details := resp["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "eval_metric", details[0].(map[string]any)["field"])
	assert.Equal(t, "oneof", details[0].(map[string]any)["rule"])
}

func TestTrainPredictor_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := forecastingmocks.NewMockRunner(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/train", bytes.NewBufferString(`{"prediction_length":`))
	rec := httptest.NewRecorder()

	TrainPredictor(runner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrainPredictor_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "arquivo de treino ausente",
			err:    &loading.DatasetError{Err: loading.ErrDatasetNotFound, Dataset: domain.DatasetTrain, Path: "data/raw/train.csv"},
			status: http.StatusNotFound,
			code:   "FCT_001",
		},
		{
			name:   "coluna ausente",
			err:    &forecasting.PrepareError{Err: forecasting.ErrColumnNotFound, Column: "sales"},
			status: http.StatusBadRequest,
			code:   "VAL_003",
		},
		{
			name:   "dados vazios",
			err:    predictor.ErrEmptyData,
			status: http.StatusBadRequest,
			code:   "VAL_001",
		},
		{
			name:   "timeout",
			err:    context.DeadlineExceeded,
			status: http.StatusServiceUnavailable,
			code:   "SRV_004",
		},
		{
			name:   "erro inesperado",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   "SRV_001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := forecastingmocks.NewMockRunner(ctrl)
			runner.EXPECT().TrainFromRaw(gomock.Any(), domain.TrainParams{}).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/train", nil)
			rec := httptest.NewRecorder()

			TrainPredictor(runner).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeBody(t, rec)["code"])
		})
	}
}

func TestPredict_InlineSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := forecastingmocks.NewMockRunner(ctrl)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)

	runner.EXPECT().
		PredictSeries(gomock.Any(), "models/custom", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, series domain.SeriesTable) ([]domain.Forecast, error) {
			require.Len(t, series, 2)
			assert.Equal(t, "1-GROCERY", series[0].ItemID)
			assert.Equal(t, 3.5, series[0].Target)
			assert.True(t, math.IsNaN(series[1].Target))
			return []domain.Forecast{
				{ItemID: "1-GROCERY", Timestamp: time.Date(2017, 8, 16, 0, 0, 0, 0, time.UTC), Mean: 4},
			}, nil
		})

	body := `{"model_path":"models/custom","series":[
		{"item_id":"1-GROCERY","timestamp":"2017-08-14","target":3.5},
		{"item_id":"1-GROCERY","timestamp":"2017-08-15"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/predict", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	Predict(runner, forecaster).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "models/custom", resp["model_path"])
	assert.Equal(t, float64(1), resp["count"])
}

func TestPredict_DefaultsToTrainHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := forecastingmocks.NewMockRunner(ctrl)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)

	runner.EXPECT().PredictFromRaw(gomock.Any(), "").Return([]domain.Forecast{}, nil)
	forecaster.EXPECT().Defaults().Return(domain.TrainParams{ModelPath: "models/sales_predictor"})

	req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/predict", nil)
	rec := httptest.NewRecorder()

	Predict(runner, forecaster).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "models/sales_predictor", resp["model_path"])
	assert.Equal(t, float64(0), resp["count"])
}

func TestPredict_FromDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := forecastingmocks.NewMockRunner(ctrl)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)

	runner.EXPECT().
		PredictFromDataset(gomock.Any(), "models/x", domain.DatasetTest).
		Return(nil, &forecasting.PrepareError{Err: forecasting.ErrColumnNotFound, Column: "sales"})

	req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/predict", bytes.NewBufferString(`{"model_path":"models/x","dataset":"test"}`))
	rec := httptest.NewRecorder()

	Predict(runner, forecaster).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_003", decodeBody(t, rec)["code"])
}

func TestPredict_RejectsDatasetWithSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := forecastingmocks.NewMockRunner(ctrl)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)

	body := `{"dataset":"train","series":[{"item_id":"a","timestamp":"2017-01-01","target":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/predict", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	Predict(runner, forecaster).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", decodeBody(t, rec)["code"])
}

func TestPredict_InvalidSeriesRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := forecastingmocks.NewMockRunner(ctrl)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)

	t.Run("item_id ausente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/predict", bytes.NewBufferString(`{"series":[{"timestamp":"2017-01-01"}]}`))
		rec := httptest.NewRecorder()

		Predict(runner, forecaster).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		details := decodeBody(t, rec)["details"].([]any)
		assert.Equal(t, "series[0].item_id", details[0].(map[string]any)["field"])
	})

	t.Run("timestamp inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/predict", bytes.NewBufferString(`{"series":[{"item_id":"a","timestamp":"ontem"}]}`))
		rec := httptest.NewRecorder()

		Predict(runner, forecaster).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_003", decodeBody(t, rec)["code"])
	})
}

func TestPredict_PredictorErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: predictor.ErrArtifactMissing, status: http.StatusNotFound, code: "FCT_002"},
		{err: predictor.ErrNotFitted, status: http.StatusConflict, code: "FCT_003"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := forecastingmocks.NewMockRunner(ctrl)
			forecaster := forecastingmocks.NewMockForecaster(ctrl)
			runner.EXPECT().PredictFromRaw(gomock.Any(), "models/missing").Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/forecasts/predict", bytes.NewBufferString(`{"model_path":"models/missing"}`))
			rec := httptest.NewRecorder()

			Predict(runner, forecaster).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeBody(t, rec)["code"])
		})
	}
}

func TestGetTrainDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)
	forecaster.EXPECT().Defaults().Return(domain.TrainParams{
		PredictionLength: 16,
		ModelPath:        "models/sales_predictor",
		TimeLimit:        10 * time.Minute,
		Presets:          domain.PresetMediumQuality,
		EvalMetric:       "MASE",
	})

	rec := httptest.NewRecorder()
	GetTrainDefaults(forecaster).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts/defaults", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, float64(600), resp["time_limit_seconds"])
	assert.Equal(t, "MASE", resp["eval_metric"])
}

func TestPreviewDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := loadingmocks.NewMockLoader(ctrl)

	loader.EXPECT().Preview(domain.DatasetOil, 2).Return(&domain.Table{
		Columns: []domain.Column{{Name: "date", Kind: domain.KindTime}, {Name: "dcoilwtico", Kind: domain.KindFloat}},
		Rows: [][]any{
			{time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC), math.NaN()},
			{time.Date(2013, 1, 2, 0, 0, 0, 0, time.UTC), 93.14},
		},
	}, 1218, nil)

	rt := router.New(router.WithRoutes(Datasets(loader)...))
	req := withRole(httptest.NewRequest(http.MethodGet, "/v1/datasets/oil?limit=2", nil), middleware.RoleViewer)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, float64(1218), resp["total_rows"])

	rows := resp["rows"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, []any{"2013-01-01", nil}, rows[0])
	assert.Equal(t, []any{"2013-01-02", 93.14}, rows[1])
}

func TestPreviewDataset_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := loadingmocks.NewMockLoader(ctrl)
	rt := router.New(router.WithRoutes(Datasets(loader)...))

	t.Run("limit inválido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/datasets/oil?limit=0", nil), middleware.RoleAdmin))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("dataset desconhecido", func(t *testing.T) {
		loader.EXPECT().Preview(domain.DatasetName("weather"), defaultPreviewLimit).
			Return(nil, 0, &loading.DatasetError{Err: loading.ErrUnknownDataset, Dataset: "weather"})

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/datasets/weather", nil), middleware.RoleAdmin))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sem autenticação", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/datasets/oil", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDownloadDatasets_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := loadingmocks.NewMockLoader(ctrl)
	rt := router.New(router.WithRoutes(Datasets(loader)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodPost, "/v1/datasets/download", nil), middleware.RoleAnalyst))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	loader.EXPECT().Download(gomock.Any()).Return([]string{"data/raw/train.csv"}, nil)
	loader.EXPECT().RawDir().Return("data/raw")

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodPost, "/v1/datasets/download", nil), middleware.RoleAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"data/raw/train.csv"}, decodeBody(t, rec)["files"])
}

func TestListDatasets(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := loadingmocks.NewMockLoader(ctrl)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/train.csv", []byte("id\n"), 0o600))
	loader.EXPECT().RawDir().Return(dir).AnyTimes()

	rec := httptest.NewRecorder()
	ListDatasets(loader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/datasets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	datasets := decodeBody(t, rec)["datasets"].([]any)
	require.Len(t, datasets, len(domain.Datasets()))
	assert.Equal(t, true, datasets[0].(map[string]any)["available"])
	assert.Equal(t, false, datasets[1].(map[string]any)["available"])
}

func TestListTrainingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)

	forecaster.EXPECT().
		TrainingRuns(gomock.Any(), domain.TrainingRunFilters{Status: domain.TrainingRunFailed, Limit: 5}).
		Return([]*domain.TrainingRun{{ID: "run1", Status: domain.TrainingRunFailed}}, nil)

	rec := httptest.NewRecorder()
	ListTrainingRuns(forecaster).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/training-runs?status=FAILED&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, float64(1), resp["count"])
}

func TestListTrainingRuns_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)

	rec := httptest.NewRecorder()
	ListTrainingRuns(forecaster).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/training-runs?status=DONE", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	forecaster.EXPECT().TrainingRuns(gomock.Any(), gomock.Any()).Return(nil, forecasting.ErrHistoryDisabled)

	rec = httptest.NewRecorder()
	ListTrainingRuns(forecaster).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/training-runs", nil))
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, "FCT_005", decodeBody(t, rec)["code"])
}

func TestGetTrainingRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)
	rt := router.New(router.WithRoutes(TrainingRuns(forecaster)...))

	forecaster.EXPECT().TrainingRun(gomock.Any(), "run1").
		Return(&domain.TrainingRun{ID: "run1", Status: domain.TrainingRunSucceeded}, nil)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/training-runs/run1", nil), middleware.RoleAnalyst))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "run1", resp["id"])
	assert.Equal(t, "SUCCEEDED", resp["status"])
}

func TestGetTrainingRun_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)
	rt := router.New(router.WithRoutes(TrainingRuns(forecaster)...))

	t.Run("inexistente", func(t *testing.T) {
		forecaster.EXPECT().TrainingRun(gomock.Any(), "nada").Return(nil, forecasting.ErrTrainingRunNotFound)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/training-runs/nada", nil), middleware.RoleAdmin))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "FCT_006", decodeBody(t, rec)["code"])
	})

	t.Run("sem banco", func(t *testing.T) {
		forecaster.EXPECT().TrainingRun(gomock.Any(), "run1").Return(nil, forecasting.ErrHistoryDisabled)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/training-runs/run1", nil), middleware.RoleAdmin))
		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})

	t.Run("perfil sem permissão", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/training-runs/run1", nil), middleware.RoleViewer))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetForecastBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	forecaster := forecastingmocks.NewMockForecaster(ctrl)
	rt := router.New(router.WithRoutes(Forecasts(forecastingmocks.NewMockRunner(ctrl), forecaster)...))

	forecaster.EXPECT().ForecastBatch(gomock.Any(), "batch1").Return(&domain.ForecastBatch{
		ID:        "batch1",
		ModelPath: "models/sales_predictor",
		CreatedAt: time.Date(2017, 8, 15, 10, 0, 0, 0, time.UTC),
		Forecasts: []domain.Forecast{
			{ItemID: "1-AUTOMOTIVE", Timestamp: time.Date(2017, 8, 16, 0, 0, 0, 0, time.UTC), Mean: 4},
			{ItemID: "1-BEVERAGES", Timestamp: time.Date(2017, 8, 16, 0, 0, 0, 0, time.UTC), Mean: 2},
		},
	}, nil)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/forecasts/batches/batch1", nil), middleware.RoleAnalyst))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "batch1", resp["batch_id"])
	assert.Equal(t, "models/sales_predictor", resp["model_path"])
	assert.Equal(t, float64(2), resp["count"])

	forecaster.EXPECT().ForecastBatch(gomock.Any(), "nada").Return(nil, forecasting.ErrForecastBatchNotFound)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, withRole(httptest.NewRequest(http.MethodGet, "/v1/forecasts/batches/nada", nil), middleware.RoleAnalyst))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FCT_006", decodeBody(t, rec)["code"])
}

type blockingTrainer struct {
	release chan struct{}
}

func (b *blockingTrainer) TrainFromRaw(ctx context.Context, params domain.TrainParams) (*forecasting.TrainResult, error) {
	<-b.release
	return &forecasting.TrainResult{Info: domain.PredictorInfo{BestModel: "Naive"}}, nil
}

func TestRunRetraining(t *testing.T) {
	trainer := &blockingTrainer{release: make(chan struct{})}
	retraining := scheduler.NewRetrainingService(trainer, &config.Config{})

	rec := httptest.NewRecorder()
	RunRetraining(retraining).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/retraining/run", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Eventually(t, retraining.IsRunning, time.Second, 10*time.Millisecond)

	rec = httptest.NewRecorder()
	RunRetraining(retraining).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/retraining/run", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "FCT_004", decodeBody(t, rec)["code"])

	rec = httptest.NewRecorder()
	GetCronStatus(retraining).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["retraining"].(map[string]any)["running"])

	close(trainer.release)
	require.Eventually(t, func() bool { return !retraining.IsRunning() }, time.Second, 10*time.Millisecond)
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])

	rec = httptest.NewRecorder()
	HealthcheckHandler(stubPinger{err: errors.New("connection refused")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", decodeBody(t, rec)["status"])
}

func TestRouter_NotFound(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(nil)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "VAL_004", decodeBody(t, rec)["code"])

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthcheck", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
