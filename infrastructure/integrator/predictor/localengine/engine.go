// Package localengine é um engine de previsão em processo com modelos de
// base (naive, sazonal, médias). O melhor modelo é escolhido pela métrica
// de avaliação sobre a janela final de cada série.
package localengine

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

type Engine struct{}

func New() predictor.Engine {
	return &Engine{}
}

func (e *Engine) NewPredictor(opts predictor.Options) (predictor.Predictor, error) {
	if opts.PredictionLength <= 0 {
		return nil, fmt.Errorf("prediction_length deve ser positivo: %d", opts.PredictionLength)
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("path do predictor é obrigatório")
	}
	if opts.Target == "" {
		opts.Target = domain.SeriesTargetColumn
	}
	if _, ok := newScorer(opts.EvalMetric); !ok {
		return nil, fmt.Errorf("%w: %s", predictor.ErrUnknownMetric, opts.EvalMetric)
	}
	opts.EvalMetric = strings.ToUpper(opts.EvalMetric)

	return &Predictor{opts: opts}, nil
}

func (e *Engine) Load(ctx context.Context, path string) (predictor.Predictor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state, err := loadArtifact(path)
	if err != nil {
		return nil, err
	}

	if _, err := state.Model.build(); err != nil {
		return nil, err
	}

	return &Predictor{
		opts: predictor.Options{
			PredictionLength: state.PredictionLength,
			Path:             path,
			Target:           state.Target,
			EvalMetric:       state.EvalMetric,
		},
		state: state,
	}, nil
}
