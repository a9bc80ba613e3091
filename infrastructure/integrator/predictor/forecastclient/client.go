// Package forecastclient encaminha as operações do predictor para um
// serviço de previsão remoto via HTTP/JSON.
package forecastclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	fitPath     = "/v1/predictors/fit"
	loadPath    = "/v1/predictors/load"
	predictPath = "/v1/predictors/predict"
)

type Engine struct {
	httpClient *http.Client
	baseURL    string
}

func NewEngine(cfg *config.Config) predictor.Engine {
	timeout := cfg.Forecaster.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Minute
	}

	return &Engine{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Forecaster.URL,
	}
}

func (e *Engine) NewPredictor(opts predictor.Options) (predictor.Predictor, error) {
	if opts.PredictionLength <= 0 {
		return nil, fmt.Errorf("prediction_length deve ser positivo: %d", opts.PredictionLength)
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("path do predictor é obrigatório")
	}
	if opts.Target == "" {
		opts.Target = domain.SeriesTargetColumn
	}

	return &Predictor{engine: e, opts: opts}, nil
}

func (e *Engine) Load(ctx context.Context, modelPath string) (predictor.Predictor, error) {
	var info domain.PredictorInfo
	if err := e.post(ctx, loadPath, loadRequest{Path: modelPath}, &info); err != nil {
		return nil, err
	}

	return &Predictor{
		engine: e,
		opts: predictor.Options{
			PredictionLength: info.PredictionLength,
			Path:             modelPath,
			Target:           info.Target,
			EvalMetric:       info.EvalMetric,
		},
		info:   info,
		fitted: true,
	}, nil
}

// post envia body como JSON e decodifica a resposta em out
func (e *Engine) post(ctx context.Context, route string, body, out any) error {
	endpoint, err := url.Parse(e.baseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, route)

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// StatusError é retornado quando o serviço responde com status diferente de 200
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("serviço de previsão respondeu %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("serviço de previsão respondeu %d", e.StatusCode)
}

// Unwrap traduz os códigos do serviço para os erros do predictor
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case "not_fitted":
		return predictor.ErrNotFitted
	case "artifact_missing":
		return predictor.ErrArtifactMissing
	case "empty_data":
		return predictor.ErrEmptyData
	case "unknown_metric":
		return predictor.ErrUnknownMetric
	case "unknown_presets":
		return predictor.ErrUnknownPresets
	}
	if e.StatusCode == http.StatusNotFound {
		return predictor.ErrArtifactMissing
	}
	return nil
}

func newStatusError(resp *http.Response) error {
	statusErr := &StatusError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil {
		statusErr.Code = body.Code
		statusErr.Message = body.Message
	} else {
		statusErr.Message = string(raw)
	}

	return statusErr
}
