package handler

import (
	"context"
	"errors"
	"io/fs"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/kaggle/kaggleclient"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor"
	"github.com/vfg2006/sales-forecast/infrastructure/integrator/predictor/forecastclient"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/internal/usecases/loading"
	"github.com/vfg2006/sales-forecast/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

// writeError traduz os erros dos casos de uso para os códigos da API
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErrs validator.ValidationErrors
		reqErr         *requestError
		kaggleErr      *kaggleclient.StatusError
		forecasterErr  *forecastclient.StatusError
	)

	code, message := apiErrors.ErrInternalServer, "Erro interno ao processar a requisição"
	var details any

	switch {
	case errors.As(err, &validationErrs):
		code, message, details = apiErrors.ErrInvalidRequest, "Parâmetros inválidos", validationDetails(validationErrs)
	case errors.As(err, &reqErr):
		code, message = apiErrors.ErrInvalidRequest, reqErr.Error()

	case errors.Is(err, loading.ErrDatasetNotFound), errors.Is(err, fs.ErrNotExist):
		code, message = apiErrors.ErrDatasetNotFound, err.Error()
	case errors.Is(err, loading.ErrUnknownDataset):
		code, message = apiErrors.ErrInvalidRequest, err.Error()

	case errors.Is(err, forecasting.ErrColumnNotFound), errors.Is(err, forecasting.ErrInvalidCell):
		code, message = apiErrors.ErrInvalidFormat, err.Error()
	case errors.Is(err, forecasting.ErrHistoryDisabled):
		code, message = apiErrors.ErrFeatureDisabled, "Histórico de treinos e previsões requer DATABASE_ENABLED=true"
	case errors.Is(err, forecasting.ErrTrainingRunNotFound), errors.Is(err, forecasting.ErrForecastBatchNotFound):
		code, message = apiErrors.ErrHistoryNotFound, err.Error()

	case errors.Is(err, predictor.ErrArtifactMissing):
		code, message = apiErrors.ErrPredictorNotFound, err.Error()
	case errors.Is(err, predictor.ErrNotFitted):
		code, message = apiErrors.ErrPredictorNotFitted, err.Error()
	case errors.Is(err, predictor.ErrEmptyData),
		errors.Is(err, predictor.ErrUnknownMetric),
		errors.Is(err, predictor.ErrUnknownPresets):
		code, message = apiErrors.ErrInvalidRequest, err.Error()

	case errors.Is(err, kaggleclient.ErrMissingCredentials):
		code, message = apiErrors.ErrMissingRequiredData, err.Error()
	case errors.As(err, &kaggleErr):
		code, message = apiErrors.ErrExternalService, err.Error()
	case errors.As(err, &forecasterErr):
		code, message = apiErrors.ErrExternalService, err.Error()

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		code, message = apiErrors.ErrCommunication, err.Error()
	}

	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
	} else {
		logger.Warn(message)
	}

	apiErrors.WriteError(w, code, message, details)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}
