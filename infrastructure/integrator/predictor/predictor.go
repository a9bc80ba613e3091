// Package predictor define a superfície do componente externo de previsão:
// construir, treinar, carregar e prever.
package predictor

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/sales-forecast/internal/domain"
)

var (
	ErrNotFitted       = errors.New("predictor is not fitted")
	ErrArtifactMissing = errors.New("predictor artifact not found")
	ErrEmptyData       = errors.New("series table is empty")
	ErrUnknownMetric   = errors.New("unknown eval metric")
	ErrUnknownPresets  = errors.New("unknown presets")
)

// Options são os parâmetros de construção do predictor
type Options struct {
	PredictionLength int
	Path             string
	Target           string
	EvalMetric       string
}

// FitOptions são os parâmetros de treino
type FitOptions struct {
	TimeLimit time.Duration
	Presets   string
}

type Predictor interface {
	Fit(ctx context.Context, data domain.SeriesTable, opts FitOptions) error
	Predict(ctx context.Context, data domain.SeriesTable) ([]domain.Forecast, error)
	Info() domain.PredictorInfo
}

type Engine interface {
	NewPredictor(opts Options) (Predictor, error)
	Load(ctx context.Context, path string) (Predictor, error)
}
