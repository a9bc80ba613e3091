package domain

import "time"

// Nomes das colunas da tabela de séries
const (
	SeriesItemIDColumn    = "item_id"
	SeriesTimestampColumn = "timestamp"
	SeriesTargetColumn    = "target"
)

// SeriesRow é uma observação (item, timestamp, target)
type SeriesRow struct {
	ItemID    string    `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
	Target    float64   `json:"target"`
}

// SeriesTable é a tabela de três colunas consumida pelo predictor.
// A ordem das linhas é a da tabela de origem.
type SeriesTable []SeriesRow

// Columns retorna as colunas lógicas da tabela
func (s SeriesTable) Columns() []string {
	return []string{SeriesItemIDColumn, SeriesTimestampColumn, SeriesTargetColumn}
}

// ItemCount retorna o número de séries distintas
func (s SeriesTable) ItemCount() int {
	seen := make(map[string]struct{})
	for _, r := range s {
		seen[r.ItemID] = struct{}{}
	}
	return len(seen)
}
