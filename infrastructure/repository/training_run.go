// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-forecast/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

const (
	trainingRunTable = "training_runs"
)

var trainingRunColumns = []string{
	"id",
	"model_path",
	"prediction_length",
	"eval_metric",
	"presets",
	"time_limit_seconds",
	"best_model",
	"validation_score",
	"series_count",
	"row_count",
	"status",
	"error",
	"started_at",
	"completed_at",
}

type TrainingRunRepository interface {
	Create(ctx context.Context, run *domain.TrainingRun) error
	Finish(ctx context.Context, run *domain.TrainingRun) error
	GetByID(ctx context.Context, id string) (*domain.TrainingRun, error)
	List(ctx context.Context, filters domain.TrainingRunFilters) ([]*domain.TrainingRun, error)
}

type trainingRunRepository struct {
	conn postgres.Queryer
}

func NewTrainingRunRepository(conn postgres.Queryer) TrainingRunRepository {
	return &trainingRunRepository{
		conn: conn,
	}
}

func insertTrainingRunQuery(run *domain.TrainingRun) squirrel.InsertBuilder {
	return squirrel.
		Insert(trainingRunTable).
		Columns(trainingRunColumns...).
		Values(
			run.ID,
			run.ModelPath,
			run.PredictionLength,
			run.EvalMetric,
			run.Presets,
			run.TimeLimitSeconds,
			run.BestModel,
			run.ValidationScore,
			run.SeriesCount,
			run.RowCount,
			run.Status,
			run.Error,
			run.StartedAt,
			run.CompletedAt,
		).
		PlaceholderFormat(squirrel.Dollar)
}

func finishTrainingRunQuery(run *domain.TrainingRun) squirrel.UpdateBuilder {
	return squirrel.
		Update(trainingRunTable).
		SetMap(map[string]interface{}{
			"best_model":       run.BestModel,
			"validation_score": run.ValidationScore,
			"series_count":     run.SeriesCount,
			"row_count":        run.RowCount,
			"status":           run.Status,
			"error":            run.Error,
			"completed_at":     run.CompletedAt,
		}).
		Where(squirrel.Eq{"id": run.ID}).
		PlaceholderFormat(squirrel.Dollar)
}

func listTrainingRunsQuery(filters domain.TrainingRunFilters) squirrel.SelectBuilder {
	query := squirrel.
		Select(trainingRunColumns...).
		From(trainingRunTable).
		OrderBy("started_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Status != "" {
		query = query.Where(squirrel.Eq{"status": filters.Status})
	}
	if filters.ModelPath != "" {
		query = query.Where(squirrel.Eq{"model_path": filters.ModelPath})
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	return query.Limit(uint64(limit))
}

func (r *trainingRunRepository) Create(ctx context.Context, run *domain.TrainingRun) error {
	query, args, err := insertTrainingRunQuery(run).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir execução de treino: %w", err)
	}

	return nil
}

func (r *trainingRunRepository) Finish(ctx context.Context, run *domain.TrainingRun) error {
	query, args, err := finishTrainingRunQuery(run).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar execução de treino: %w", err)
	}

	return nil
}

func getTrainingRunQuery(id string) squirrel.SelectBuilder {
	return squirrel.
		Select(trainingRunColumns...).
		From(trainingRunTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)
}

// GetByID retorna nil quando a execução não existe
func (r *trainingRunRepository) GetByID(ctx context.Context, id string) (*domain.TrainingRun, error) {
	query, args, err := getTrainingRunQuery(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	run, err := scanTrainingRun(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear execução de treino: %w", err)
	}

	return run, nil
}

func (r *trainingRunRepository) List(ctx context.Context, filters domain.TrainingRunFilters) ([]*domain.TrainingRun, error) {
	query, args, err := listTrainingRunsQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.TrainingRun, 0)
	for rows.Next() {
		run, err := scanTrainingRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução de treino: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTrainingRun(row scanner) (*domain.TrainingRun, error) {
	run := &domain.TrainingRun{}

	err := row.Scan(
		&run.ID,
		&run.ModelPath,
		&run.PredictionLength,
		&run.EvalMetric,
		&run.Presets,
		&run.TimeLimitSeconds,
		&run.BestModel,
		&run.ValidationScore,
		&run.SeriesCount,
		&run.RowCount,
		&run.Status,
		&run.Error,
		&run.StartedAt,
		&run.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return run, nil
}
