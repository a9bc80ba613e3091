package domain

import "time"

// Presets aceitos pelo predictor
const (
	PresetFastTraining  = "fast_training"
	PresetMediumQuality = "medium_quality"
	PresetBestQuality   = "best_quality"
)

// QuantileLevels são os quantis retornados junto com a média
var QuantileLevels = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

// Forecast é uma linha prevista para um item em um timestamp futuro
type Forecast struct {
	ItemID    string             `json:"item_id"`
	Timestamp time.Time          `json:"timestamp"`
	Mean      float64            `json:"mean"`
	Quantiles map[string]float64 `json:"quantiles,omitempty"`
}

// TrainParams são os parâmetros de treino. Campos zerados recebem os padrões
// configurados.
type TrainParams struct {
	PredictionLength int
	ModelPath        string
	TimeLimit        time.Duration
	Presets          string
	EvalMetric       string
}

// PredictorInfo resume um predictor treinado
type PredictorInfo struct {
	Path             string    `json:"path"`
	PredictionLength int       `json:"prediction_length"`
	Target           string    `json:"target"`
	EvalMetric       string    `json:"eval_metric"`
	BestModel        string    `json:"best_model,omitempty"`
	ValidationScore  float64   `json:"validation_score,omitempty"`
	TrainedAt        time.Time `json:"trained_at"`
}

// ForecastBatch agrupa as previsões de uma chamada de predict
type ForecastBatch struct {
	ID        string     `json:"batch_id"`
	ModelPath string     `json:"model_path"`
	CreatedAt time.Time  `json:"created_at"`
	Forecasts []Forecast `json:"forecasts"`
}
