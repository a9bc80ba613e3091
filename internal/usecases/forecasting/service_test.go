package forecasting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
	predictormocks "github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor/mocks"
	repomocks "github.com/vfg2006/sales-forecast/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/metrics"
	"github.com/vfg2006/sales-forecast/pkg/log"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Forecast: config.Forecast{
			ModelPath:        "models/sales_predictor",
			PredictionLength: 16,
			TimeLimit:        600 * time.Second,
			Presets:          domain.PresetMediumQuality,
			EvalMetric:       "MASE",
			CacheSize:        2,
		},
	}
}

func sampleSeries() domain.SeriesTable {
	return domain.SeriesTable{
		{ItemID: "1-AUTOMOTIVE", Timestamp: date(1), Target: 1},
		{ItemID: "1-AUTOMOTIVE", Timestamp: date(2), Target: 2},
		{ItemID: "1-BEVERAGES", Timestamp: date(1), Target: 3},
	}
}

func newTestService(t *testing.T, engine predictor.Engine) (*Service, *metrics.Metrics) {
	t.Helper()
	log.SetupTestLogger()
	m := metrics.New(prometheus.NewRegistry())
	s, err := NewService(testConfig(), engine, m)
	require.NoError(t, err)
	return s, m
}

func TestService_TrainUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := predictormocks.NewMockEngine(ctrl)
	p := predictormocks.NewMockPredictor(ctrl)
	s, m := newTestService(t, engine)
	data := sampleSeries()

	engine.EXPECT().
		NewPredictor(predictor.Options{
			PredictionLength: 16,
			Path:             "models/sales_predictor",
			Target:           "target",
			EvalMetric:       "MASE",
		}).
		Return(p, nil)
	p.EXPECT().
		Fit(gomock.Any(), data, predictor.FitOptions{TimeLimit: 600 * time.Second, Presets: "medium_quality"}).
		Return(nil)
	p.EXPECT().Info().Return(domain.PredictorInfo{BestModel: "Naive"})

	got, err := s.Train(context.Background(), data, domain.TrainParams{})
	require.NoError(t, err)
	assert.Same(t, p, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrainingRuns.WithLabelValues("ok")))

	// o predictor treinado fica disponível em cache para o mesmo caminho
	loaded, err := s.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Same(t, p, loaded)
}

func TestService_TrainOverridesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := predictormocks.NewMockEngine(ctrl)
	p := predictormocks.NewMockPredictor(ctrl)
	s, _ := newTestService(t, engine)

	engine.EXPECT().
		NewPredictor(predictor.Options{PredictionLength: 7, Path: "/tmp/m", Target: "target", EvalMetric: "MAE"}).
		Return(p, nil)
	p.EXPECT().
		Fit(gomock.Any(), gomock.Any(), predictor.FitOptions{TimeLimit: time.Minute, Presets: "fast_training"}).
		Return(nil)
	p.EXPECT().Info().Return(domain.PredictorInfo{})

	_, err := s.Train(context.Background(), sampleSeries(), domain.TrainParams{
		PredictionLength: 7,
		ModelPath:        "/tmp/m",
		TimeLimit:        time.Minute,
		Presets:          "fast_training",
		EvalMetric:       "MAE",
	})
	require.NoError(t, err)
}

func TestService_TrainPropagatesEngineErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := predictormocks.NewMockEngine(ctrl)
	p := predictormocks.NewMockPredictor(ctrl)
	s, m := newTestService(t, engine)
	fitErr := errors.New("out of memory")

	engine.EXPECT().NewPredictor(gomock.Any()).Return(p, nil)
	p.EXPECT().Fit(gomock.Any(), gomock.Any(), gomock.Any()).Return(fitErr)

	_, err := s.Train(context.Background(), sampleSeries(), domain.TrainParams{})
	assert.Same(t, fitErr, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrainingRuns.WithLabelValues("error")))

	engine.EXPECT().NewPredictor(gomock.Any()).Return(nil, predictor.ErrUnknownMetric)
	_, err = s.Train(context.Background(), sampleSeries(), domain.TrainParams{EvalMetric: "WQL"})
	assert.ErrorIs(t, err, predictor.ErrUnknownMetric)
}

func TestService_TrainRecordsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := predictormocks.NewMockEngine(ctrl)
	p := predictormocks.NewMockPredictor(ctrl)
	runs := repomocks.NewMockTrainingRunRepository(ctrl)
	s, _ := newTestService(t, engine)
	s.WithHistory(runs, nil)

	var created *domain.TrainingRun
	runs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run *domain.TrainingRun) error {
		created = run
		assert.Equal(t, domain.TrainingRunRunning, run.Status)
		assert.Equal(t, 2, run.SeriesCount)
		assert.Equal(t, 3, run.RowCount)
		assert.Equal(t, 600, run.TimeLimitSeconds)
		assert.NotEmpty(t, run.ID)
		return nil
	})
	engine.EXPECT().NewPredictor(gomock.Any()).Return(p, nil)
	p.EXPECT().Fit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	p.EXPECT().Info().Return(domain.PredictorInfo{BestModel: "SeasonalNaive(7)", ValidationScore: 0.8})
	runs.EXPECT().Finish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run *domain.TrainingRun) error {
		assert.Same(t, created, run)
		assert.Equal(t, domain.TrainingRunSucceeded, run.Status)
		require.NotNil(t, run.BestModel)
		assert.Equal(t, "SeasonalNaive(7)", *run.BestModel)
		require.NotNil(t, run.ValidationScore)
		assert.Equal(t, 0.8, *run.ValidationScore)
		assert.NotNil(t, run.CompletedAt)
		return nil
	})

	_, err := s.Train(context.Background(), sampleSeries(), domain.TrainParams{})
	require.NoError(t, err)
}

func TestService_TrainRecordsFailedRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := predictormocks.NewMockEngine(ctrl)
	p := predictormocks.NewMockPredictor(ctrl)
	runs := repomocks.NewMockTrainingRunRepository(ctrl)
	s, _ := newTestService(t, engine)
	s.WithHistory(runs, nil)

	runs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	engine.EXPECT().NewPredictor(gomock.Any()).Return(p, nil)
	p.EXPECT().Fit(gomock.Any(), gomock.Any(), gomock.Any()).Return(predictor.ErrEmptyData)
	runs.EXPECT().Finish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run *domain.TrainingRun) error {
		assert.Equal(t, domain.TrainingRunFailed, run.Status)
		require.NotNil(t, run.Error)
		assert.Equal(t, predictor.ErrEmptyData.Error(), *run.Error)
		return nil
	})

	_, err := s.Train(context.Background(), nil, domain.TrainParams{})
	assert.ErrorIs(t, err, predictor.ErrEmptyData)
}

func TestService_LoadCachesPredictors(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := predictormocks.NewMockEngine(ctrl)
	p := predictormocks.NewMockPredictor(ctrl)
	s, m := newTestService(t, engine)

	engine.EXPECT().Load(gomock.Any(), "models/sales_predictor").Return(p, nil).Times(1)

	for range 3 {
		got, err := s.Load(context.Background(), "")
		require.NoError(t, err)
		assert.Same(t, p, got)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PredictorCacheHits.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PredictorCacheHits.WithLabelValues("miss")))
}

func TestService_LoadPropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := predictormocks.NewMockEngine(ctrl)
	s, _ := newTestService(t, engine)

	engine.EXPECT().Load(gomock.Any(), "missing").Return(nil, predictor.ErrArtifactMissing).Times(2)

	for range 2 {
		_, err := s.Load(context.Background(), "missing")
		assert.ErrorIs(t, err, predictor.ErrArtifactMissing)
	}
}

func TestService_Predict(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := predictormocks.NewMockPredictor(ctrl)
	s, m := newTestService(t, predictormocks.NewMockEngine(ctrl))

	want := []domain.Forecast{{ItemID: "1-AUTOMOTIVE", Timestamp: date(3), Mean: 2}}
	p.EXPECT().Predict(gomock.Any(), sampleSeries()).Return(want, nil)

	got, err := s.Predict(context.Background(), p, sampleSeries())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ForecastRows))

	p.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(nil, predictor.ErrNotFitted)
	_, err = s.Predict(context.Background(), p, sampleSeries())
	assert.ErrorIs(t, err, predictor.ErrNotFitted)
}

func TestService_PredictPersistsForecasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := predictormocks.NewMockPredictor(ctrl)
	forecasts := repomocks.NewMockForecastRepository(ctrl)
	s, _ := newTestService(t, predictormocks.NewMockEngine(ctrl))
	s.persistForecasts = true
	s.WithHistory(nil, forecasts)

	want := []domain.Forecast{{ItemID: "1-AUTOMOTIVE", Timestamp: date(3), Mean: 2}}
	p.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(want, nil)
	p.EXPECT().Info().Return(domain.PredictorInfo{Path: "models/sales_predictor"})
	forecasts.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, batch *domain.ForecastBatch) error {
		assert.Equal(t, "models/sales_predictor", batch.ModelPath)
		assert.Equal(t, want, batch.Forecasts)
		assert.NotEmpty(t, batch.ID)
		return errors.New("connection refused")
	})

	// falha ao salvar não afeta o resultado da previsão
	got, err := s.Predict(context.Background(), p, sampleSeries())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_TrainingRunsRequiresHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newTestService(t, predictormocks.NewMockEngine(ctrl))

	_, err := s.TrainingRuns(context.Background(), domain.TrainingRunFilters{})
	assert.ErrorIs(t, err, ErrHistoryDisabled)

	runs := repomocks.NewMockTrainingRunRepository(ctrl)
	s.WithHistory(runs, nil)
	runs.EXPECT().List(gomock.Any(), domain.TrainingRunFilters{Limit: 10}).Return([]*domain.TrainingRun{{ID: "a"}}, nil)

	got, err := s.TrainingRuns(context.Background(), domain.TrainingRunFilters{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_TrainingRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newTestService(t, predictormocks.NewMockEngine(ctrl))

	_, err := s.TrainingRun(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrHistoryDisabled)

	runs := repomocks.NewMockTrainingRunRepository(ctrl)
	s.WithHistory(runs, nil)

	runs.EXPECT().GetByID(gomock.Any(), "abc").Return(&domain.TrainingRun{ID: "abc", Status: domain.TrainingRunSucceeded}, nil)
	got, err := s.TrainingRun(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingRunSucceeded, got.Status)

	runs.EXPECT().GetByID(gomock.Any(), "nada").Return(nil, nil)
	_, err = s.TrainingRun(context.Background(), "nada")
	assert.ErrorIs(t, err, ErrTrainingRunNotFound)

	runs.EXPECT().GetByID(gomock.Any(), "x").Return(nil, errors.New("conexão perdida"))
	_, err = s.TrainingRun(context.Background(), "x")
	assert.ErrorContains(t, err, "conexão perdida")
}

func TestService_ForecastBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newTestService(t, predictormocks.NewMockEngine(ctrl))

	_, err := s.ForecastBatch(context.Background(), "batch1")
	assert.ErrorIs(t, err, ErrHistoryDisabled)

	forecasts := repomocks.NewMockForecastRepository(ctrl)
	s.WithHistory(nil, forecasts)

	want := &domain.ForecastBatch{
		ID:        "batch1",
		ModelPath: "models/sales_predictor",
		Forecasts: []domain.Forecast{{ItemID: "1-AUTOMOTIVE", Timestamp: date(3), Mean: 2}},
	}
	forecasts.EXPECT().GetBatch(gomock.Any(), "batch1").Return(want, nil)
	got, err := s.ForecastBatch(context.Background(), "batch1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	forecasts.EXPECT().GetBatch(gomock.Any(), "nada").Return(nil, nil)
	_, err = s.ForecastBatch(context.Background(), "nada")
	assert.ErrorIs(t, err, ErrForecastBatchNotFound)
}
