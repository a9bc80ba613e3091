package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-forecast/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	forecastTable = "forecasts"

	// limite de linhas por INSERT, abaixo do máximo de parâmetros do Postgres
	forecastBatchSize = 1000
)

type ForecastRepository interface {
	SaveBatch(ctx context.Context, batch *domain.ForecastBatch) error
	GetBatch(ctx context.Context, batchID string) (*domain.ForecastBatch, error)
}

type forecastRepository struct {
	conn postgres.Conn
}

func NewForecastRepository(conn postgres.Conn) ForecastRepository {
	return &forecastRepository{
		conn: conn,
	}
}

func insertForecastsQuery(batch *domain.ForecastBatch, rows []domain.Forecast, createdAt time.Time) (squirrel.InsertBuilder, error) {
	query := squirrel.
		Insert(forecastTable).
		Columns("batch_id", "model_path", "item_id", "timestamp", "mean", "quantiles", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, f := range rows {
		quantiles, err := json.Marshal(f.Quantiles)
		if err != nil {
			return query, fmt.Errorf("erro ao serializar quantis: %w", err)
		}
		query = query.Values(batch.ID, batch.ModelPath, f.ItemID, f.Timestamp, f.Mean, string(quantiles), createdAt)
	}

	return query, nil
}

// SaveBatch grava as previsões em lotes dentro de uma única transação
func (r *forecastRepository) SaveBatch(ctx context.Context, batch *domain.ForecastBatch) error {
	if len(batch.Forecasts) == 0 {
		return nil
	}

	createdAt := batch.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		for start := 0; start < len(batch.Forecasts); start += forecastBatchSize {
			end := min(start+forecastBatchSize, len(batch.Forecasts))

			builder, err := insertForecastsQuery(batch, batch.Forecasts[start:end], createdAt)
			if err != nil {
				return err
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção: %w", err)
			}

			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir previsões: %w", err)
			}
		}
		return nil
	})
}

func batchForecastsQuery(batchID string) squirrel.SelectBuilder {
	return squirrel.
		Select("model_path", "created_at", "item_id", "timestamp", "mean", "quantiles").
		From(forecastTable).
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// GetBatch retorna o lote com suas previsões ou nil quando o lote não existe
func (r *forecastRepository) GetBatch(ctx context.Context, batchID string) (*domain.ForecastBatch, error) {
	query, args, err := batchForecastsQuery(batchID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	batch := &domain.ForecastBatch{ID: batchID, Forecasts: make([]domain.Forecast, 0)}
	for rows.Next() {
		var (
			f         domain.Forecast
			quantiles []byte
		)
		if err := rows.Scan(&batch.ModelPath, &batch.CreatedAt, &f.ItemID, &f.Timestamp, &f.Mean, &quantiles); err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
		}
		if len(quantiles) > 0 {
			if err := json.Unmarshal(quantiles, &f.Quantiles); err != nil {
				return nil, fmt.Errorf("erro ao decodificar quantis: %w", err)
			}
		}
		batch.Forecasts = append(batch.Forecasts, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(batch.Forecasts) == 0 {
		return nil, nil
	}

	return batch, nil
}
