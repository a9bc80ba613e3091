package handler

import (
	"math"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/pkg/log"
	"github.com/vfg2006/sales-forecast/pkg/utils"
)

type trainRequest struct {
	PredictionLength int    `json:"prediction_length" validate:"omitempty,min=1"`
	ModelPath        string `json:"model_path"`
	TimeLimitSeconds int    `json:"time_limit_seconds" validate:"omitempty,min=1"`
	Presets          string `json:"presets" validate:"omitempty,oneof=fast_training medium_quality best_quality"`
	EvalMetric       string `json:"eval_metric" validate:"omitempty,oneof=MASE MAE RMSE SMAPE"`
}

func (req trainRequest) params() domain.TrainParams {
	return domain.TrainParams{
		PredictionLength: req.PredictionLength,
		ModelPath:        req.ModelPath,
		TimeLimit:        time.Duration(req.TimeLimitSeconds) * time.Second,
		Presets:          req.Presets,
		EvalMetric:       req.EvalMetric,
	}
}

type seriesInput struct {
	ItemID    string   `json:"item_id" validate:"required"`
	Timestamp string   `json:"timestamp" validate:"required"`
	Target    *float64 `json:"target"`
}

type predictRequest struct {
	ModelPath string        `json:"model_path"`
	Dataset   string        `json:"dataset" validate:"omitempty,oneof=train test,excluded_with=Series"`
	Series    []seriesInput `json:"series" validate:"omitempty,dive"`
}

// seriesTable converte as linhas enviadas no corpo para a tabela de séries.
// Targets ausentes viram NaN.
func (req predictRequest) seriesTable() (domain.SeriesTable, error) {
	series := make(domain.SeriesTable, 0, len(req.Series))
	for i, in := range req.Series {
		ts, err := utils.ParseDate(in.Timestamp)
		if err != nil {
			return nil, &forecasting.PrepareError{
				Err:    forecasting.ErrInvalidCell,
				Column: domain.SeriesTimestampColumn,
				Row:    i,
				Value:  in.Timestamp,
			}
		}

		target := math.NaN()
		if in.Target != nil {
			target = *in.Target
		}

		series = append(series, domain.SeriesRow{
			ItemID:    in.ItemID,
			Timestamp: ts,
			Target:    target,
		})
	}
	return series, nil
}

// TrainPredictor treina um predictor a partir do train.csv do diretório raw
func TrainPredictor(runner forecasting.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - TrainPredictor")

		var req trainRequest
		if err := decodeAndValidate(r, w, &req); err != nil {
			writeError(w, r, err)
			return
		}

		result, err := runner.TrainFromRaw(r.Context(), req.params())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// Predict gera previsões a partir de séries enviadas no corpo ou de um
// dataset do diretório raw
func Predict(runner forecasting.Runner, forecaster forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - Predict")

		var req predictRequest
		if err := decodeAndValidate(r, w, &req); err != nil {
			writeError(w, r, err)
			return
		}

		var (
			forecasts []domain.Forecast
			err       error
		)

		switch {
		case len(req.Series) > 0:
			var series domain.SeriesTable
			series, err = req.seriesTable()
			if err == nil {
				forecasts, err = runner.PredictSeries(r.Context(), req.ModelPath, series)
			}
		case req.Dataset != "":
			forecasts, err = runner.PredictFromDataset(r.Context(), req.ModelPath, domain.DatasetName(req.Dataset))
		default:
			forecasts, err = runner.PredictFromRaw(r.Context(), req.ModelPath)
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		modelPath := req.ModelPath
		if modelPath == "" {
			modelPath = forecaster.Defaults().ModelPath
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"model_path": modelPath,
			"count":      len(forecasts),
			"forecasts":  forecasts,
		})
	}
}

// GetTrainDefaults retorna os parâmetros de treino configurados
func GetTrainDefaults(forecaster forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetTrainDefaults")

		defaults := forecaster.Defaults()
		writeJSON(w, r, http.StatusOK, map[string]any{
			"prediction_length":  defaults.PredictionLength,
			"model_path":         defaults.ModelPath,
			"time_limit_seconds": int(defaults.TimeLimit.Seconds()),
			"presets":            defaults.Presets,
			"eval_metric":        defaults.EvalMetric,
		})
	}
}

// GetForecastBatch retorna as previsões salvas de uma chamada de predict
func GetForecastBatch(forecaster forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("batch_id", id).Info("INIT - GetForecastBatch")

		batch, err := forecaster.ForecastBatch(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"batch_id":   batch.ID,
			"model_path": batch.ModelPath,
			"created_at": batch.CreatedAt,
			"count":      len(batch.Forecasts),
			"forecasts":  batch.Forecasts,
		})
	}
}
