package loading

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vfg2006/sales-forecast/infrastructure/filestore"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/kaggle"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/metrics"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

// Loader lê os arquivos do dataset de vendas a partir do diretório raw
type Loader interface {
	LoadTrain() (*domain.Table, error)
	LoadTest() (*domain.Table, error)
	LoadStores() (*domain.Table, error)
	LoadOil() (*domain.Table, error)
	LoadHolidays() (*domain.Table, error)
	LoadTransactions() (*domain.Table, error)

	// Load lê um dataset pelo nome lógico
	Load(name domain.DatasetName) (*domain.Table, error)

	// Preview lê as primeiras linhas de um dataset e o total de linhas do arquivo
	Preview(name domain.DatasetName, limit int) (*domain.Table, int, error)

	// Download baixa o dataset da competição para o diretório raw
	Download(ctx context.Context) ([]string, error)

	RawDir() string
}

// primary são os datasets que verificam a existência do arquivo antes da leitura
var primary = map[domain.DatasetName]bool{
	domain.DatasetTrain: true,
	domain.DatasetTest:  true,
}

type Service struct {
	rawDir     string
	integrator kaggle.KaggleIntegrator
	metrics    *metrics.Metrics
}

func NewService(cfg *config.Config, integrator kaggle.KaggleIntegrator, m *metrics.Metrics) Loader {
	return &Service{
		rawDir:     cfg.Data.RawDir,
		integrator: integrator,
		metrics:    m,
	}
}

func (s *Service) RawDir() string {
	return s.rawDir
}

func (s *Service) LoadTrain() (*domain.Table, error) {
	return s.Load(domain.DatasetTrain)
}

func (s *Service) LoadTest() (*domain.Table, error) {
	return s.Load(domain.DatasetTest)
}

func (s *Service) LoadStores() (*domain.Table, error) {
	return s.Load(domain.DatasetStores)
}

func (s *Service) LoadOil() (*domain.Table, error) {
	return s.Load(domain.DatasetOil)
}

func (s *Service) LoadHolidays() (*domain.Table, error) {
	return s.Load(domain.DatasetHolidays)
}

func (s *Service) LoadTransactions() (*domain.Table, error) {
	return s.Load(domain.DatasetTransactions)
}

func (s *Service) Load(name domain.DatasetName) (*domain.Table, error) {
	schema, path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	table, err := filestore.ReadCSV(path, schema)
	s.metrics.ObserveDatasetLoad(string(name), start, err)
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"dataset": name,
		"rows":    table.Len(),
		"path":    path,
	}).Debug("Dataset carregado")

	return table, nil
}

func (s *Service) Preview(name domain.DatasetName, limit int) (*domain.Table, int, error) {
	schema, path, err := s.resolve(name)
	if err != nil {
		return nil, 0, err
	}

	table, total, err := filestore.ReadCSVHead(path, schema, limit)
	if err != nil {
		return nil, 0, err
	}

	log.L.WithFields(log.Fields{
		"dataset": name,
		"rows":    table.Len(),
		"total":   total,
	}).Debug("Prévia do dataset lida")

	return table, total, nil
}

// resolve devolve o schema e o caminho do arquivo de um dataset
func (s *Service) resolve(name domain.DatasetName) (domain.Schema, string, error) {
	schema, ok := domain.SchemaFor(name)
	if !ok {
		return domain.Schema{}, "", &DatasetError{Err: ErrUnknownDataset, Dataset: name}
	}

	path := filepath.Join(s.rawDir, schema.FileName)
	if primary[name] {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			s.metrics.ObserveDatasetLoad(string(name), time.Now(), err)
			return domain.Schema{}, "", &DatasetError{Err: ErrDatasetNotFound, Dataset: name, Path: path}
		}
	}

	return schema, path, nil
}

func (s *Service) Download(ctx context.Context) ([]string, error) {
	files, err := s.integrator.DownloadCompetition(ctx, s.rawDir)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).Infof("Dados baixados em %s", s.rawDir)
	return files, nil
}
