package forecasting

import (
	"math"
	"strings"
	"time"

	"github.com/vfg2006/sales-forecast/internal/domain"
)

// Valores padrão para o dataset de vendas
const (
	DefaultTargetColumn    = "sales"
	DefaultTimestampColumn = "date"
	DefaultSeparator       = "-"
)

// DefaultItemIDColumns identifica uma série pela loja e família de produto
var DefaultItemIDColumns = []string{"store_nbr", "family"}

// PrepareOptions configura a transformação. Campos vazios recebem os padrões.
type PrepareOptions struct {
	ItemIDColumns   []string
	TargetColumn    string
	TimestampColumn string
	Separator       string
}

func (o PrepareOptions) withDefaults() PrepareOptions {
	if len(o.ItemIDColumns) == 0 {
		o.ItemIDColumns = DefaultItemIDColumns
	}
	if o.TargetColumn == "" {
		o.TargetColumn = DefaultTargetColumn
	}
	if o.TimestampColumn == "" {
		o.TimestampColumn = DefaultTimestampColumn
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	return o
}

// PrepareTimeSeries converte uma tabela de vendas na tabela de séries
// (item_id, timestamp, target), preservando a ordem das linhas.
// O item_id é a forma textual das colunas identificadoras unida pelo separador.
func PrepareTimeSeries(table *domain.Table, opts PrepareOptions) (domain.SeriesTable, error) {
	opts = opts.withDefaults()

	idIdx := make([]int, len(opts.ItemIDColumns))
	for i, name := range opts.ItemIDColumns {
		idx, err := columnIndex(table, name)
		if err != nil {
			return nil, err
		}
		idIdx[i] = idx
	}

	tsIdx, err := columnIndex(table, opts.TimestampColumn)
	if err != nil {
		return nil, err
	}
	targetIdx, err := columnIndex(table, opts.TargetColumn)
	if err != nil {
		return nil, err
	}

	out := make(domain.SeriesTable, 0, table.Len())
	parts := make([]string, len(idIdx))

	for r, row := range table.Rows {
		for i, idx := range idIdx {
			parts[i] = domain.CellText(row[idx])
		}

		ts, ok := row[tsIdx].(time.Time)
		if !ok {
			return nil, &PrepareError{Err: ErrInvalidCell, Column: opts.TimestampColumn, Row: r, Value: row[tsIdx]}
		}

		target, ok := numeric(row[targetIdx])
		if !ok {
			return nil, &PrepareError{Err: ErrInvalidCell, Column: opts.TargetColumn, Row: r, Value: row[targetIdx]}
		}

		out = append(out, domain.SeriesRow{
			ItemID:    strings.Join(parts, opts.Separator),
			Timestamp: ts,
			Target:    target,
		})
	}

	return out, nil
}

func columnIndex(table *domain.Table, name string) (int, error) {
	idx := table.ColumnIndex(name)
	if idx < 0 {
		return -1, &PrepareError{Err: ErrColumnNotFound, Column: name}
	}
	return idx, nil
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return math.NaN(), true
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
