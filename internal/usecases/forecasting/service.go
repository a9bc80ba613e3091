package forecasting

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
	"github.com/vfg2006/sales-forecast/infrastructure/repository"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/metrics"
	"github.com/vfg2006/sales-forecast/pkg/log"
	"github.com/vfg2006/sales-forecast/pkg/utils"
)

var (
	ErrHistoryDisabled       = errors.New("training history requires the database")
	ErrTrainingRunNotFound   = errors.New("training run not found")
	ErrForecastBatchNotFound = errors.New("forecast batch not found")
)

// Forecaster encaminha treino, carga e previsão para o engine configurado
type Forecaster interface {
	Train(ctx context.Context, data domain.SeriesTable, params domain.TrainParams) (predictor.Predictor, error)
	Load(ctx context.Context, path string) (predictor.Predictor, error)
	Predict(ctx context.Context, p predictor.Predictor, data domain.SeriesTable) ([]domain.Forecast, error)

	// Defaults retorna os parâmetros de treino configurados
	Defaults() domain.TrainParams

	TrainingRuns(ctx context.Context, filters domain.TrainingRunFilters) ([]*domain.TrainingRun, error)
	TrainingRun(ctx context.Context, id string) (*domain.TrainingRun, error)

	// ForecastBatch retorna um lote de previsões salvo por Predict
	ForecastBatch(ctx context.Context, id string) (*domain.ForecastBatch, error)
}

type Service struct {
	defaults         domain.TrainParams
	engine           predictor.Engine
	cache            *lru.Cache[string, predictor.Predictor]
	metrics          *metrics.Metrics
	runRepository    repository.TrainingRunRepository
	forecastRepo     repository.ForecastRepository
	persistForecasts bool
}

// NewService cria o adaptador de previsão com os padrões de cfg
func NewService(cfg *config.Config, engine predictor.Engine, m *metrics.Metrics) (*Service, error) {
	size := cfg.Forecast.CacheSize
	if size <= 0 {
		size = 8
	}

	cache, err := lru.New[string, predictor.Predictor](size)
	if err != nil {
		return nil, err
	}

	return &Service{
		defaults: domain.TrainParams{
			PredictionLength: cfg.Forecast.PredictionLength,
			ModelPath:        cfg.Forecast.ModelPath,
			TimeLimit:        cfg.Forecast.TimeLimit,
			Presets:          cfg.Forecast.Presets,
			EvalMetric:       cfg.Forecast.EvalMetric,
		},
		engine:           engine,
		cache:            cache,
		metrics:          m,
		persistForecasts: cfg.Forecast.PersistForecasts,
	}, nil
}

// WithHistory habilita o registro de execuções de treino e previsões
func (s *Service) WithHistory(
	runRepo repository.TrainingRunRepository,
	forecastRepo repository.ForecastRepository,
) *Service {
	s.runRepository = runRepo
	s.forecastRepo = forecastRepo
	return s
}

func (s *Service) Defaults() domain.TrainParams {
	return s.defaults
}

func (s *Service) withDefaults(params domain.TrainParams) domain.TrainParams {
	if params.PredictionLength == 0 {
		params.PredictionLength = s.defaults.PredictionLength
	}
	if params.ModelPath == "" {
		params.ModelPath = s.defaults.ModelPath
	}
	if params.TimeLimit == 0 {
		params.TimeLimit = s.defaults.TimeLimit
	}
	if params.Presets == "" {
		params.Presets = s.defaults.Presets
	}
	if params.EvalMetric == "" {
		params.EvalMetric = s.defaults.EvalMetric
	}
	return params
}

// Train constrói um predictor em params.ModelPath e o treina com data.
// Erros do engine são retornados sem alteração.
func (s *Service) Train(ctx context.Context, data domain.SeriesTable, params domain.TrainParams) (predictor.Predictor, error) {
	params = s.withDefaults(params)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"model_path":        params.ModelPath,
		"prediction_length": params.PredictionLength,
		"presets":           params.Presets,
		"eval_metric":       params.EvalMetric,
	})

	run := s.startRun(ctx, data, params)
	start := time.Now()

	p, err := s.engine.NewPredictor(predictor.Options{
		PredictionLength: params.PredictionLength,
		Path:             params.ModelPath,
		Target:           domain.SeriesTargetColumn,
		EvalMetric:       params.EvalMetric,
	})
	if err == nil {
		err = p.Fit(ctx, data, predictor.FitOptions{
			TimeLimit: params.TimeLimit,
			Presets:   params.Presets,
		})
	}

	s.metrics.ObserveTraining(start, err)
	s.cache.Remove(params.ModelPath)

	if err != nil {
		logger.WithError(err).Error("Erro ao treinar o predictor")
		s.finishRun(ctx, run, nil, err)
		return nil, err
	}

	s.cache.Add(params.ModelPath, p)
	info := p.Info()
	s.finishRun(ctx, run, &info, nil)

	logger.WithFields(log.Fields{
		"best_model": info.BestModel,
		"duration":   time.Since(start).String(),
	}).Info("Predictor treinado")

	return p, nil
}

// Load carrega o predictor salvo em path. Path vazio usa o caminho padrão.
func (s *Service) Load(ctx context.Context, path string) (predictor.Predictor, error) {
	if path == "" {
		path = s.defaults.ModelPath
	}

	if p, ok := s.cache.Get(path); ok {
		s.metrics.ObserveCache(true)
		return p, nil
	}
	s.metrics.ObserveCache(false)

	p, err := s.engine.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	s.cache.Add(path, p)
	log.ForContext(ctx).WithField("model_path", path).Debug("Predictor carregado")

	return p, nil
}

// Predict gera as previsões usando data como contexto histórico
func (s *Service) Predict(ctx context.Context, p predictor.Predictor, data domain.SeriesTable) ([]domain.Forecast, error) {
	forecasts, err := p.Predict(ctx, data)
	s.metrics.ObservePrediction(len(forecasts), err)
	if err != nil {
		return nil, err
	}

	if s.persistForecasts && s.forecastRepo != nil {
		s.saveForecasts(ctx, p.Info().Path, forecasts)
	}

	return forecasts, nil
}

func (s *Service) TrainingRuns(ctx context.Context, filters domain.TrainingRunFilters) ([]*domain.TrainingRun, error) {
	if s.runRepository == nil {
		return nil, ErrHistoryDisabled
	}
	return s.runRepository.List(ctx, filters)
}

func (s *Service) TrainingRun(ctx context.Context, id string) (*domain.TrainingRun, error) {
	if s.runRepository == nil {
		return nil, ErrHistoryDisabled
	}

	run, err := s.runRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, ErrTrainingRunNotFound
	}
	return run, nil
}

func (s *Service) ForecastBatch(ctx context.Context, id string) (*domain.ForecastBatch, error) {
	if s.forecastRepo == nil {
		return nil, ErrHistoryDisabled
	}

	batch, err := s.forecastRepo.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrForecastBatchNotFound
	}
	return batch, nil
}

func (s *Service) startRun(ctx context.Context, data domain.SeriesTable, params domain.TrainParams) *domain.TrainingRun {
	if s.runRepository == nil {
		return nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível gerar o ID da execução de treino")
		return nil
	}

	run := &domain.TrainingRun{
		ID:               id,
		ModelPath:        params.ModelPath,
		PredictionLength: params.PredictionLength,
		EvalMetric:       params.EvalMetric,
		Presets:          params.Presets,
		TimeLimitSeconds: int(params.TimeLimit.Seconds()),
		SeriesCount:      data.ItemCount(),
		RowCount:         len(data),
		Status:           domain.TrainingRunRunning,
		StartedAt:        time.Now().UTC(),
	}

	if err := s.runRepository.Create(ctx, run); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao registrar execução de treino")
		return nil
	}

	return run
}

func (s *Service) finishRun(ctx context.Context, run *domain.TrainingRun, info *domain.PredictorInfo, fitErr error) {
	if run == nil {
		return
	}

	completed := time.Now().UTC()
	run.CompletedAt = &completed

	if fitErr != nil {
		msg := fitErr.Error()
		run.Status = domain.TrainingRunFailed
		run.Error = &msg
	} else {
		run.Status = domain.TrainingRunSucceeded
		if info.BestModel != "" {
			run.BestModel = &info.BestModel
		}
		if info.ValidationScore != 0 {
			score := info.ValidationScore
			run.ValidationScore = &score
		}
	}

	// o treino já terminou; o registro não deve ser cancelado junto com a requisição
	if err := s.runRepository.Finish(context.WithoutCancel(ctx), run); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao finalizar execução de treino")
	}
}

func (s *Service) saveForecasts(ctx context.Context, path string, forecasts []domain.Forecast) {
	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível gerar o ID do lote de previsões")
		return
	}

	batch := &domain.ForecastBatch{
		ID:        id,
		ModelPath: path,
		CreatedAt: time.Now().UTC(),
		Forecasts: forecasts,
	}

	if err := s.forecastRepo.SaveBatch(ctx, batch); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao salvar previsões")
		return
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"batch_id": id,
		"rows":     len(forecasts),
	}).Info("Previsões salvas")
}
