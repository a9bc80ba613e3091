package kaggleclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vfg2006/sales-forecast/internal/config"
)

var ErrMissingCredentials = errors.New("kaggle credentials not configured")

type Credentials struct {
	Username string `json:"username"`
	Key      string `json:"key"`
}

// LoadCredentials usa KAGGLE_USERNAME/KAGGLE_KEY e, na ausência deles, o
// arquivo kaggle.json em KAGGLE_CONFIG_DIR ou ~/.kaggle.
func LoadCredentials(cfg config.Kaggle) (Credentials, error) {
	if cfg.Username != "" && cfg.Key != "" {
		return Credentials{Username: cfg.Username, Key: cfg.Key}, nil
	}

	dir := cfg.ConfigDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Credentials{}, fmt.Errorf("%w: %v", ErrMissingCredentials, err)
		}
		dir = filepath.Join(home, ".kaggle")
	}

	path := filepath.Join(dir, "kaggle.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrMissingCredentials, err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("erro ao decodificar %s: %w", path, err)
	}

	if creds.Username == "" || creds.Key == "" {
		return Credentials{}, fmt.Errorf("%w: %s sem username ou key", ErrMissingCredentials, path)
	}

	return creds, nil
}
