package kaggle

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/kaggle/kaggleclient"
	"github.com/vfg2006/sales-forecast/internal/config"
)

type KaggleIntegrator interface {
	// DownloadCompetition baixa e descompacta os arquivos da competição em destDir
	DownloadCompetition(ctx context.Context, destDir string) ([]string, error)
}

type KaggleService struct {
	cfg    *config.Config
	Client kaggleclient.Client
}

func New(cfg *config.Config, client kaggleclient.Client) KaggleIntegrator {
	return &KaggleService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *KaggleService) DownloadCompetition(ctx context.Context, destDir string) ([]string, error) {
	creds, err := kaggleclient.LoadCredentials(s.cfg.Kaggle)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar o diretório %s", destDir)
	}

	archive, err := os.CreateTemp("", "kaggle-*.zip")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	defer func() {
		archive.Close()
		os.Remove(archive.Name())
	}()

	size, err := s.Client.DownloadCompetitionFiles(ctx, s.cfg.Kaggle.Competition, creds, archive)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"competition": s.cfg.Kaggle.Competition,
		"bytes":       size,
	}).Debug("Arquivo da competição baixado")

	files, err := unzip(archive, size, destDir)
	if err != nil {
		return nil, err
	}

	return files, nil
}
