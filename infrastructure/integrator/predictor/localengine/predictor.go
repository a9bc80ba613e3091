package localengine

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

// z-scores da normal padrão para domain.QuantileLevels
var quantileZ = map[float64]float64{
	0.1: -1.2816,
	0.2: -0.8416,
	0.3: -0.5244,
	0.4: -0.2533,
	0.5: 0,
	0.6: 0.2533,
	0.7: 0.5244,
	0.8: 0.8416,
	0.9: 1.2816,
}

type Predictor struct {
	opts  predictor.Options
	state *artifact
}

func (p *Predictor) Info() domain.PredictorInfo {
	info := domain.PredictorInfo{
		Path:             p.opts.Path,
		PredictionLength: p.opts.PredictionLength,
		Target:           p.opts.Target,
		EvalMetric:       p.opts.EvalMetric,
	}
	if p.state != nil {
		info.BestModel = p.state.ModelName
		info.TrainedAt = p.state.TrainedAt
		if p.state.ValidationScore != nil {
			info.ValidationScore = *p.state.ValidationScore
		}
	}
	return info
}

// Fit avalia os modelos candidatos do preset e persiste o melhor em Path.
// Ao atingir o TimeLimit a avaliação para e o melhor modelo até ali é mantido.
func (p *Predictor) Fit(ctx context.Context, data domain.SeriesTable, opts predictor.FitOptions) error {
	if len(data) == 0 {
		return predictor.ErrEmptyData
	}

	presets := opts.Presets
	if presets == "" {
		presets = domain.PresetMediumQuality
	}

	all := group(data)
	step := inferStep(all)
	season := seasonFor(step)

	specs, err := candidates(presets, season)
	if err != nil {
		return fmt.Errorf("%w: %v", predictor.ErrUnknownPresets, err)
	}

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	logger := logrus.WithFields(logrus.Fields{
		"path":    p.opts.Path,
		"series":  len(all),
		"rows":    len(data),
		"presets": presets,
		"step":    step.String(),
	})
	logger.Info("Iniciando treino do predictor local")

	var (
		board     []leaderboardEntry
		bestIdx   = -1
		bestScore float64
	)

	for i, spec := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 && !deadline.IsZero() && time.Now().After(deadline) {
			logger.WithField("evaluated", i).Warn("Tempo limite de treino atingido, mantendo o melhor modelo avaliado")
			break
		}

		m, err := spec.build()
		if err != nil {
			return err
		}

		started := time.Now()
		score, ok := p.validate(m, all, season)
		entry := leaderboardEntry{Model: m.name(), FitTime: time.Since(started).Seconds()}
		if ok {
			entry.Score = &score
			if bestIdx < 0 || board[bestIdx].Score == nil || score < bestScore {
				bestIdx, bestScore = i, score
			}
		} else if bestIdx < 0 {
			bestIdx = i
		}
		board = append(board, entry)
	}

	chosen := specs[bestIdx]
	m, _ := chosen.build()
	sigma, global := p.residualSigma(m, all)

	state := &artifact{
		Version:          artifactVersion,
		PredictionLength: p.opts.PredictionLength,
		Target:           p.opts.Target,
		EvalMetric:       p.opts.EvalMetric,
		Presets:          presets,
		Model:            chosen,
		ModelName:        m.name(),
		Step:             step,
		Season:           season,
		Leaderboard:      board,
		ValidationScore:  board[bestIdx].Score,
		Sigma:            sigma,
		GlobalSigma:      global,
		TrainedAt:        time.Now().UTC(),
	}

	if err := saveArtifact(p.opts.Path, state); err != nil {
		return err
	}
	p.state = state

	logger.WithField("best_model", state.ModelName).Info("Predictor local treinado")
	return nil
}

// validate pontua o modelo nas últimas PredictionLength observações de cada série
func (p *Predictor) validate(m model, all []*series, season int) (float64, bool) {
	sc, _ := newScorer(p.opts.EvalMetric)
	h := p.opts.PredictionLength

	for _, s := range all {
		n := len(s.values)
		if n-h < m.minHistory() || n-h < 1 {
			continue
		}
		train, actual := s.values[:n-h], s.values[n-h:]
		sc.add(train, actual, m.forecast(train, h), season)
	}

	return sc.score()
}

// residualSigma calcula o desvio dos resíduos de validação por item
func (p *Predictor) residualSigma(m model, all []*series) (map[string]float64, float64) {
	h := p.opts.PredictionLength
	sigma := make(map[string]float64)

	var sumSq float64
	var count int
	for _, s := range all {
		n := len(s.values)
		if n-h < m.minHistory() || n-h < 1 {
			continue
		}
		train, actual := s.values[:n-h], s.values[n-h:]
		pred := m.forecast(train, h)

		var itemSq float64
		for i := range actual {
			r := actual[i] - pred[i]
			itemSq += r * r
		}
		sigma[s.itemID] = math.Sqrt(itemSq / float64(h))
		sumSq += itemSq
		count += h
	}

	var global float64
	if count > 0 {
		global = math.Sqrt(sumSq / float64(count))
	}
	return sigma, global
}

// Predict gera PredictionLength passos futuros para cada item de data,
// usando data como histórico.
func (p *Predictor) Predict(ctx context.Context, data domain.SeriesTable) ([]domain.Forecast, error) {
	if p.state == nil {
		return nil, predictor.ErrNotFitted
	}
	if len(data) == 0 {
		return nil, predictor.ErrEmptyData
	}

	chosen, err := p.state.Model.build()
	if err != nil {
		return nil, err
	}
	fallback := naive{}

	h := p.state.PredictionLength
	all := group(data)
	out := make([]domain.Forecast, 0, len(all)*h)

	for _, s := range all {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(s.values) == 0 {
			continue
		}

		var m model = chosen
		if len(s.values) < m.minHistory() {
			m = fallback
		}

		sigma, ok := p.state.Sigma[s.itemID]
		if !ok {
			sigma = p.state.GlobalSigma
		}

		means := m.forecast(s.values, h)
		last := s.last()
		for k, mean := range means {
			out = append(out, domain.Forecast{
				ItemID:    s.itemID,
				Timestamp: advance(last, p.state.Step, k+1),
				Mean:      mean,
				Quantiles: quantiles(mean, sigma*math.Sqrt(float64(k+1))),
			})
		}
	}

	return out, nil
}

func quantiles(mean, sigma float64) map[string]float64 {
	q := make(map[string]float64, len(domain.QuantileLevels))
	for _, level := range domain.QuantileLevels {
		q[strconv.FormatFloat(level, 'f', -1, 64)] = mean + quantileZ[level]*sigma
	}
	return q
}
