package forecastclient

import (
	"context"

	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

// Predictor é um handle para um predictor mantido pelo serviço remoto
type Predictor struct {
	engine *Engine
	opts   predictor.Options
	info   domain.PredictorInfo
	fitted bool
}

func (p *Predictor) Fit(ctx context.Context, data domain.SeriesTable, opts predictor.FitOptions) error {
	if len(data) == 0 {
		return predictor.ErrEmptyData
	}

	req := fitRequest{
		Path:             p.opts.Path,
		PredictionLength: p.opts.PredictionLength,
		Target:           p.opts.Target,
		EvalMetric:       p.opts.EvalMetric,
		TimeLimitSeconds: opts.TimeLimit.Seconds(),
		Presets:          opts.Presets,
		Data:             toWire(data),
	}

	var info domain.PredictorInfo
	if err := p.engine.post(ctx, fitPath, req, &info); err != nil {
		return err
	}

	p.info = info
	p.fitted = true
	return nil
}

func (p *Predictor) Predict(ctx context.Context, data domain.SeriesTable) ([]domain.Forecast, error) {
	if !p.fitted {
		return nil, predictor.ErrNotFitted
	}
	if len(data) == 0 {
		return nil, predictor.ErrEmptyData
	}

	var resp predictResponse
	if err := p.engine.post(ctx, predictPath, predictRequest{Path: p.opts.Path, Data: toWire(data)}, &resp); err != nil {
		return nil, err
	}

	return resp.Forecasts, nil
}

func (p *Predictor) Info() domain.PredictorInfo {
	info := p.info
	info.Path = p.opts.Path
	if info.PredictionLength == 0 {
		info.PredictionLength = p.opts.PredictionLength
	}
	if info.Target == "" {
		info.Target = p.opts.Target
	}
	if info.EvalMetric == "" {
		info.EvalMetric = p.opts.EvalMetric
	}
	return info
}
