package localengine

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-forecast/internal/domain"
)

// model é um método de previsão sobre o histórico de uma série
type model interface {
	name() string
	minHistory() int
	forecast(history []float64, h int) []float64
}

// modelSpec é a forma serializada de um modelo no artefato
type modelSpec struct {
	Kind   string `json:"kind"`
	Season int    `json:"season,omitempty"`
	Window int    `json:"window,omitempty"`
	Cycles int    `json:"cycles,omitempty"`
}

func (s modelSpec) build() (model, error) {
	switch s.Kind {
	case "naive":
		return naive{}, nil
	case "seasonal_naive":
		return seasonalNaive{season: s.Season}, nil
	case "moving_average":
		return movingAverage{window: s.Window}, nil
	case "seasonal_average":
		return seasonalAverage{season: s.Season, cycles: s.Cycles}, nil
	case "drift":
		return drift{}, nil
	default:
		return nil, fmt.Errorf("modelo desconhecido no artefato: %q", s.Kind)
	}
}

// candidates retorna os modelos avaliados para cada preset, na ordem de avaliação
func candidates(presets string, season int) ([]modelSpec, error) {
	fast := []modelSpec{{Kind: "naive"}}
	medium := append(fast,
		modelSpec{Kind: "seasonal_naive", Season: season},
		modelSpec{Kind: "moving_average", Window: 4 * season},
	)

	switch presets {
	case domain.PresetFastTraining:
		return fast, nil
	case domain.PresetMediumQuality:
		return medium, nil
	case domain.PresetBestQuality:
		return append(medium,
			modelSpec{Kind: "seasonal_average", Season: season, Cycles: 4},
			modelSpec{Kind: "drift"},
		), nil
	default:
		return nil, fmt.Errorf("%q", presets)
	}
}

// seasonFor retorna o período sazonal para o passo da série
func seasonFor(step time.Duration) int {
	switch {
	case step == time.Hour:
		return 24
	case step == 24*time.Hour:
		return 7
	case step == 7*24*time.Hour:
		return 52
	case step >= 28*24*time.Hour && step <= 31*24*time.Hour:
		return 12
	default:
		return 1
	}
}

type naive struct{}

func (naive) name() string    { return "Naive" }
func (naive) minHistory() int { return 1 }

func (naive) forecast(history []float64, h int) []float64 {
	out := make([]float64, h)
	last := history[len(history)-1]
	for i := range out {
		out[i] = last
	}
	return out
}

type seasonalNaive struct {
	season int
}

func (m seasonalNaive) name() string    { return fmt.Sprintf("SeasonalNaive(%d)", m.season) }
func (m seasonalNaive) minHistory() int { return m.season }

func (m seasonalNaive) forecast(history []float64, h int) []float64 {
	n := len(history)
	out := make([]float64, h)
	for k := range out {
		out[k] = history[n-m.season+(k%m.season)]
	}
	return out
}

type movingAverage struct {
	window int
}

func (m movingAverage) name() string    { return fmt.Sprintf("MovingAverage(%d)", m.window) }
func (m movingAverage) minHistory() int { return 1 }

func (m movingAverage) forecast(history []float64, h int) []float64 {
	w := m.window
	if w > len(history) || w <= 0 {
		w = len(history)
	}

	var sum float64
	for _, v := range history[len(history)-w:] {
		sum += v
	}
	mean := sum / float64(w)

	out := make([]float64, h)
	for i := range out {
		out[i] = mean
	}
	return out
}

type seasonalAverage struct {
	season int
	cycles int
}

func (m seasonalAverage) name() string {
	return fmt.Sprintf("SeasonalAverage(%d,%d)", m.season, m.cycles)
}

func (m seasonalAverage) minHistory() int { return m.season }

func (m seasonalAverage) forecast(history []float64, h int) []float64 {
	n := len(history)
	out := make([]float64, h)
	for k := range out {
		var sum float64
		var count int
		for j := 1; j <= m.cycles; j++ {
			idx := n - j*m.season + (k % m.season)
			if idx < 0 {
				break
			}
			sum += history[idx]
			count++
		}
		out[k] = sum / float64(count)
	}
	return out
}

type drift struct{}

func (drift) name() string    { return "Drift" }
func (drift) minHistory() int { return 2 }

func (drift) forecast(history []float64, h int) []float64 {
	n := len(history)
	slope := (history[n-1] - history[0]) / float64(n-1)
	out := make([]float64, h)
	for k := range out {
		out[k] = history[n-1] + float64(k+1)*slope
	}
	return out
}
