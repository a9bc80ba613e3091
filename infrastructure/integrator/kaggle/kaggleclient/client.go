package kaggleclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/sales-forecast/internal/config"
)

type Client interface {
	DownloadCompetitionFiles(ctx context.Context, competition string, creds Credentials, w io.Writer) (int64, error)
}

type KaggleClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria um cliente para a API pública do Kaggle
func NewClient(cfg *config.Config) Client {
	return &KaggleClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Minute,
		},
		baseURL: cfg.Kaggle.URL,
	}
}
