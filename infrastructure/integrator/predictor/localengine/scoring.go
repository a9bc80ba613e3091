package localengine

import (
	"math"
	"strings"
)

// scorer agrega o erro de validação de várias séries. Menor é melhor.
type scorer interface {
	add(train, actual, predicted []float64, season int)
	score() (float64, bool)
}

func newScorer(metric string) (scorer, bool) {
	switch strings.ToUpper(metric) {
	case "MASE":
		return &maseScorer{}, true
	case "MAE":
		return &pointScorer{fn: func(a, p float64) float64 { return math.Abs(a - p) }}, true
	case "RMSE":
		return &pointScorer{fn: func(a, p float64) float64 { return (a - p) * (a - p) }, sqrt: true}, true
	case "SMAPE":
		return &pointScorer{fn: smape}, true
	default:
		return nil, false
	}
}

func smape(a, p float64) float64 {
	denom := math.Abs(a) + math.Abs(p)
	if denom == 0 {
		return 0
	}
	return 2 * math.Abs(a-p) / denom
}

type pointScorer struct {
	fn    func(actual, predicted float64) float64
	sqrt  bool
	sum   float64
	count int
}

func (s *pointScorer) add(_, actual, predicted []float64, _ int) {
	for i := range actual {
		s.sum += s.fn(actual[i], predicted[i])
		s.count++
	}
}

func (s *pointScorer) score() (float64, bool) {
	if s.count == 0 {
		return 0, false
	}
	v := s.sum / float64(s.count)
	if s.sqrt {
		v = math.Sqrt(v)
	}
	return v, true
}

// maseScorer escala o MAE de cada série pelo erro do naive sazonal no treino
type maseScorer struct {
	sum   float64
	count int
}

func (s *maseScorer) add(train, actual, predicted []float64, season int) {
	m := season
	if m < 1 || len(train) <= m {
		m = 1
	}
	if len(train) <= m {
		return
	}

	var scale float64
	for t := m; t < len(train); t++ {
		scale += math.Abs(train[t] - train[t-m])
	}
	scale /= float64(len(train) - m)
	if scale == 0 {
		return
	}

	var mae float64
	for i := range actual {
		mae += math.Abs(actual[i] - predicted[i])
	}
	mae /= float64(len(actual))

	s.sum += mae / scale
	s.count++
}

func (s *maseScorer) score() (float64, bool) {
	if s.count == 0 {
		return 0, false
	}
	return s.sum / float64(s.count), true
}
