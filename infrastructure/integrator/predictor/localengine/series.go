package localengine

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/sales-forecast/internal/domain"
)

// series é o histórico ordenado de um item
type series struct {
	itemID string
	times  []time.Time
	values []float64
}

// group separa a tabela por item, preservando a ordem de primeira aparição.
// Cada série é ordenada por timestamp; valores NaN são descartados e
// timestamps repetidos são agregados pela média.
func group(data domain.SeriesTable) []*series {
	index := make(map[string]*series)
	ordered := make([]*series, 0)

	for _, row := range data {
		s, ok := index[row.ItemID]
		if !ok {
			s = &series{itemID: row.ItemID}
			index[row.ItemID] = s
			ordered = append(ordered, s)
		}
		if math.IsNaN(row.Target) {
			continue
		}
		s.times = append(s.times, row.Timestamp)
		s.values = append(s.values, row.Target)
	}

	for _, s := range ordered {
		s.sortAndDedupe()
	}

	return ordered
}

func (s *series) sortAndDedupe() {
	idx := make([]int, len(s.times))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.times[idx[a]].Before(s.times[idx[b]])
	})

	times := make([]time.Time, 0, len(idx))
	values := make([]float64, 0, len(idx))
	counts := make([]int, 0, len(idx))

	for _, i := range idx {
		n := len(times)
		if n > 0 && times[n-1].Equal(s.times[i]) {
			values[n-1] += s.values[i]
			counts[n-1]++
			continue
		}
		times = append(times, s.times[i])
		values = append(values, s.values[i])
		counts = append(counts, 1)
	}

	for i := range values {
		values[i] /= float64(counts[i])
	}

	s.times = times
	s.values = values
}

func (s *series) last() time.Time {
	return s.times[len(s.times)-1]
}

// inferStep retorna o intervalo positivo mais frequente entre observações
func inferStep(all []*series) time.Duration {
	counts := make(map[time.Duration]int)
	for _, s := range all {
		for i := 1; i < len(s.times); i++ {
			if d := s.times[i].Sub(s.times[i-1]); d > 0 {
				counts[d]++
			}
		}
	}

	step := 24 * time.Hour
	best := 0
	for d, c := range counts {
		if c > best || (c == best && d < step) {
			step, best = d, c
		}
	}
	return step
}

// advance calcula o k-ésimo timestamp após t. Passos mensais seguem o calendário.
func advance(t time.Time, step time.Duration, k int) time.Time {
	if step >= 28*24*time.Hour && step <= 31*24*time.Hour {
		return t.AddDate(0, k, 0)
	}
	return t.Add(time.Duration(k) * step)
}
