package domain

import "time"

type TrainingRunStatus string

const (
	TrainingRunRunning   TrainingRunStatus = "RUNNING"
	TrainingRunSucceeded TrainingRunStatus = "SUCCEEDED"
	TrainingRunFailed    TrainingRunStatus = "FAILED"
)

// TrainingRun registra uma execução de treino
type TrainingRun struct {
	ID               string            `json:"id"`
	ModelPath        string            `json:"model_path"`
	PredictionLength int               `json:"prediction_length"`
	EvalMetric       string            `json:"eval_metric"`
	Presets          string            `json:"presets"`
	TimeLimitSeconds int               `json:"time_limit_seconds"`
	BestModel        *string           `json:"best_model"`
	ValidationScore  *float64          `json:"validation_score"`
	SeriesCount      int               `json:"series_count"`
	RowCount         int               `json:"row_count"`
	Status           TrainingRunStatus `json:"status"`
	Error            *string           `json:"error"`
	StartedAt        time.Time         `json:"started_at"`
	CompletedAt      *time.Time        `json:"completed_at"`
}

// TrainingRunFilters filtra a listagem de execuções
type TrainingRunFilters struct {
	Status    TrainingRunStatus
	ModelPath string
	Limit     int
}
