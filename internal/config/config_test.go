package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("data", "raw"), cfg.Data.RawDir)
	assert.Equal(t, filepath.Join("models", "sales_predictor"), cfg.Forecast.ModelPath)
	assert.Equal(t, 16, cfg.Forecast.PredictionLength)
	assert.Equal(t, 600*time.Second, cfg.Forecast.TimeLimit)
	assert.Equal(t, "medium_quality", cfg.Forecast.Presets)
	assert.Equal(t, "MASE", cfg.Forecast.EvalMetric)
	assert.Equal(t, "local", cfg.Forecaster.Backend)
	assert.Equal(t, "store-sales-time-series-forecasting", cfg.Kaggle.Competition)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATA_DIR", "/srv/sales")
	t.Setenv("MODELS_DIR", "/srv/models")
	t.Setenv("FORECAST_PREDICTION_LENGTH", "28")
	t.Setenv("FORECAST_TIME_LIMIT", "2m")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/srv/sales/raw", cfg.Data.RawDir)
	assert.Equal(t, "/srv/models/sales_predictor", cfg.Forecast.ModelPath)
	assert.Equal(t, 28, cfg.Forecast.PredictionLength)
	assert.Equal(t, 2*time.Minute, cfg.Forecast.TimeLimit)
}
