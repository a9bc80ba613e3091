package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

func TestInsertTrainingRunQuery(t *testing.T) {
	run := &domain.TrainingRun{
		ID:        "abc123",
		ModelPath: "models/sales_predictor",
		Status:    domain.TrainingRunRunning,
		StartedAt: time.Now(),
	}

	query, args, err := insertTrainingRunQuery(run).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO training_runs")
	assert.Contains(t, query, "$14")
	assert.Len(t, args, len(trainingRunColumns))
	assert.Equal(t, "abc123", args[0])
}

func TestFinishTrainingRunQuery(t *testing.T) {
	model := "SeasonalNaive(7)"
	run := &domain.TrainingRun{ID: "abc123", BestModel: &model, Status: domain.TrainingRunSucceeded}

	query, args, err := finishTrainingRunQuery(run).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE training_runs SET")
	assert.Contains(t, query, "WHERE id = $8")
	assert.Equal(t, "abc123", args[len(args)-1])
}

func TestListTrainingRunsQuery(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.TrainingRunFilters
		contains []string
		args     int
	}{
		{
			name:     "sem filtros usa limite padrão",
			filters:  domain.TrainingRunFilters{},
			contains: []string{"ORDER BY started_at DESC", "LIMIT 50"},
		},
		{
			name:     "filtra por status e modelo",
			filters:  domain.TrainingRunFilters{Status: domain.TrainingRunFailed, ModelPath: "models/x", Limit: 5},
			contains: []string{"status = $1", "model_path = $2", "LIMIT 5"},
			args:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listTrainingRunsQuery(tt.filters).ToSql()
			require.NoError(t, err)
			for _, c := range tt.contains {
				assert.Contains(t, query, c)
			}
			assert.Len(t, args, tt.args)
		})
	}
}

func TestInsertForecastsQuery(t *testing.T) {
	batch := &domain.ForecastBatch{ID: "batch1", ModelPath: "models/sales_predictor"}
	rows := []domain.Forecast{
		{ItemID: "1-AUTOMOTIVE", Timestamp: time.Date(2017, 8, 16, 0, 0, 0, 0, time.UTC), Mean: 4, Quantiles: map[string]float64{"0.5": 4}},
		{ItemID: "1-BEVERAGES", Timestamp: time.Date(2017, 8, 16, 0, 0, 0, 0, time.UTC), Mean: 2},
	}

	builder, err := insertForecastsQuery(batch, rows, time.Now())
	require.NoError(t, err)

	query, args, err := builder.ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO forecasts")
	assert.Len(t, args, 14)
	assert.Equal(t, `{"0.5":4}`, args[5])
	assert.Equal(t, "null", args[12])
}

func TestGetTrainingRunQuery(t *testing.T) {
	query, args, err := getTrainingRunQuery("abc123").ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM training_runs WHERE id = $1")
	assert.Equal(t, []interface{}{"abc123"}, args)
}

func TestBatchForecastsQuery(t *testing.T) {
	query, args, err := batchForecastsQuery("batch1").ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT model_path, created_at, item_id")
	assert.Contains(t, query, "WHERE batch_id = $1 ORDER BY id ASC")
	assert.Equal(t, []interface{}{"batch1"}, args)
}
