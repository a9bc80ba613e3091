package forecasting

import (
	"context"

	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/usecases/loading"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

// Runner é a superfície de treino e previsão exposta à API e ao agendador
type Runner interface {
	TrainFromRaw(ctx context.Context, params domain.TrainParams) (*TrainResult, error)
	PredictFromRaw(ctx context.Context, path string) ([]domain.Forecast, error)
	PredictFromDataset(ctx context.Context, path string, name domain.DatasetName) ([]domain.Forecast, error)
	PredictSeries(ctx context.Context, path string, series domain.SeriesTable) ([]domain.Forecast, error)
}

// Workflow encadeia leitura, transformação e previsão sobre o diretório raw
type Workflow struct {
	loader     loading.Loader
	forecaster Forecaster
	prepare    PrepareOptions
}

func NewWorkflow(loader loading.Loader, forecaster Forecaster) *Workflow {
	return &Workflow{
		loader:     loader,
		forecaster: forecaster,
	}
}

// TrainResult resume um treino disparado a partir dos arquivos raw
type TrainResult struct {
	Info        domain.PredictorInfo `json:"predictor"`
	SeriesCount int                  `json:"series_count"`
	RowCount    int                  `json:"row_count"`
}

// TrainFromRaw lê train.csv, monta as séries e treina um predictor
func (w *Workflow) TrainFromRaw(ctx context.Context, params domain.TrainParams) (*TrainResult, error) {
	series, err := w.series(ctx, domain.DatasetTrain)
	if err != nil {
		return nil, err
	}

	p, err := w.forecaster.Train(ctx, series, params)
	if err != nil {
		return nil, err
	}

	return &TrainResult{
		Info:        p.Info(),
		SeriesCount: series.ItemCount(),
		RowCount:    len(series),
	}, nil
}

// PredictFromRaw prevê a partir do predictor em path usando o histórico de treino como contexto
func (w *Workflow) PredictFromRaw(ctx context.Context, path string) ([]domain.Forecast, error) {
	return w.PredictFromDataset(ctx, path, domain.DatasetTrain)
}

// PredictFromDataset prevê usando o dataset informado como contexto
func (w *Workflow) PredictFromDataset(ctx context.Context, path string, name domain.DatasetName) ([]domain.Forecast, error) {
	series, err := w.series(ctx, name)
	if err != nil {
		return nil, err
	}

	return w.PredictSeries(ctx, path, series)
}

// PredictSeries prevê a partir de uma tabela de séries já preparada
func (w *Workflow) PredictSeries(ctx context.Context, path string, series domain.SeriesTable) ([]domain.Forecast, error) {
	p, err := w.forecaster.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	return w.forecaster.Predict(ctx, p, series)
}

func (w *Workflow) series(ctx context.Context, name domain.DatasetName) (domain.SeriesTable, error) {
	table, err := w.loader.Load(name)
	if err != nil {
		return nil, err
	}

	series, err := PrepareTimeSeries(table, w.prepare)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset": name,
		"rows":    len(series),
		"series":  series.ItemCount(),
	}).Info("Séries preparadas")

	return series, nil
}
