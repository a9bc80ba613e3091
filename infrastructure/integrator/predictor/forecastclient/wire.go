package forecastclient

import (
	"math"
	"time"

	"github.com/vfg2006/sales-forecast/internal/domain"
)

// seriesRow usa ponteiro no target porque JSON não representa NaN
type seriesRow struct {
	ItemID    string    `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
	Target    *float64  `json:"target"`
}

type fitRequest struct {
	Path             string      `json:"path"`
	PredictionLength int         `json:"prediction_length"`
	Target           string      `json:"target"`
	EvalMetric       string      `json:"eval_metric"`
	TimeLimitSeconds float64     `json:"time_limit_seconds,omitempty"`
	Presets          string      `json:"presets,omitempty"`
	Data             []seriesRow `json:"data"`
}

type loadRequest struct {
	Path string `json:"path"`
}

type predictRequest struct {
	Path string      `json:"path"`
	Data []seriesRow `json:"data"`
}

type predictResponse struct {
	Forecasts []domain.Forecast `json:"forecasts"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toWire(data domain.SeriesTable) []seriesRow {
	rows := make([]seriesRow, len(data))
	for i, r := range data {
		rows[i] = seriesRow{ItemID: r.ItemID, Timestamp: r.Timestamp}
		if !math.IsNaN(r.Target) {
			v := r.Target
			rows[i].Target = &v
		}
	}
	return rows
}
