package localengine

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	artifactFile    = "predictor.json"
	artifactVersion = 1
)

type leaderboardEntry struct {
	Model   string   `json:"model"`
	Score   *float64 `json:"score"`
	FitTime float64  `json:"fit_time_seconds"`
}

// artifact é o estado persistido de um predictor treinado
type artifact struct {
	Version          int                `json:"version"`
	PredictionLength int                `json:"prediction_length"`
	Target           string             `json:"target"`
	EvalMetric       string             `json:"eval_metric"`
	Presets          string             `json:"presets"`
	Model            modelSpec          `json:"model"`
	ModelName        string             `json:"model_name"`
	Step             time.Duration      `json:"step"`
	Season           int                `json:"season"`
	Leaderboard      []leaderboardEntry `json:"leaderboard"`
	ValidationScore  *float64           `json:"validation_score"`
	Sigma            map[string]float64 `json:"sigma"`
	GlobalSigma      float64            `json:"global_sigma"`
	TrainedAt        time.Time          `json:"trained_at"`
}

func saveArtifact(dir string, a *artifact) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pkgerrors.Wrapf(err, "erro ao criar o diretório do modelo %s", dir)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao serializar o predictor")
	}

	tmp, err := os.CreateTemp(dir, artifactFile+".*")
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao criar arquivo temporário")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return pkgerrors.Wrap(err, "erro ao gravar o predictor")
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(dir, artifactFile))
}

func loadArtifact(dir string) (*artifact, error) {
	path := filepath.Join(dir, artifactFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pkgerrors.Wrapf(predictor.ErrArtifactMissing, "%s", path)
		}
		return nil, pkgerrors.Wrapf(err, "erro ao ler %s", path)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, pkgerrors.Wrapf(err, "erro ao decodificar %s", path)
	}

	if a.Version != artifactVersion {
		return nil, pkgerrors.Errorf("versão de artefato não suportada: %d", a.Version)
	}

	return &a, nil
}
