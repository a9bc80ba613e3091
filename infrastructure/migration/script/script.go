package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecast/internal/config"
)

// migrations são aplicadas em ordem dentro de uma única transação
var migrations = []struct {
	name      string
	statement string
}{
	{
		name: "training_runs",
		statement: `CREATE TABLE IF NOT EXISTS training_runs (
			id                 VARCHAR(32) PRIMARY KEY,
			model_path         TEXT        NOT NULL,
			prediction_length  INTEGER     NOT NULL,
			eval_metric        VARCHAR(16) NOT NULL,
			presets            VARCHAR(32) NOT NULL,
			time_limit_seconds INTEGER     NOT NULL,
			best_model         TEXT,
			validation_score   DOUBLE PRECISION,
			series_count       INTEGER     NOT NULL DEFAULT 0,
			row_count          INTEGER     NOT NULL DEFAULT 0,
			status             VARCHAR(16) NOT NULL,
			error              TEXT,
			started_at         TIMESTAMPTZ NOT NULL,
			completed_at       TIMESTAMPTZ
		)`,
	},
	{
		name:      "training_runs_started_at_idx",
		statement: `CREATE INDEX IF NOT EXISTS training_runs_started_at_idx ON training_runs (started_at DESC)`,
	},
	{
		name: "forecasts",
		statement: `CREATE TABLE IF NOT EXISTS forecasts (
			id         BIGSERIAL PRIMARY KEY,
			batch_id   VARCHAR(32)      NOT NULL,
			model_path TEXT             NOT NULL,
			item_id    TEXT             NOT NULL,
			timestamp  TIMESTAMPTZ      NOT NULL,
			mean       DOUBLE PRECISION NOT NULL,
			quantiles  JSONB,
			created_at TIMESTAMPTZ      NOT NULL
		)`,
	},
	{
		name:      "forecasts_batch_id_idx",
		statement: `CREATE INDEX IF NOT EXISTS forecasts_batch_id_idx ON forecasts (batch_id)`,
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		for _, m := range migrations {
			if _, err := tx.Exec(ctx, m.statement); err != nil {
				logrus.WithError(err).WithField("migration", m.name).Error("Erro ao aplicar migração")
				return err
			}
			logrus.WithField("migration", m.name).Info("Migração aplicada")
		}
		return nil
	})
	if err != nil {
		logrus.Fatal("Migração abortada, nenhuma alteração foi aplicada")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
