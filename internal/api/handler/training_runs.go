package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

const maxTrainingRunsLimit = 500

type trainingRunsQuery struct {
	Status    string `json:"status" validate:"omitempty,oneof=RUNNING SUCCEEDED FAILED"`
	ModelPath string `json:"model_path"`
}

// ListTrainingRuns lista o histórico de treinos, do mais recente para o mais antigo
func ListTrainingRuns(forecaster forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - ListTrainingRuns")

		query := trainingRunsQuery{
			Status:    r.URL.Query().Get("status"),
			ModelPath: r.URL.Query().Get("model_path"),
		}
		if err := validate.Struct(query); err != nil {
			writeError(w, r, err)
			return
		}

		limit, err := parseLimit(r, 0, maxTrainingRunsLimit)
		if err != nil {
			writeError(w, r, &requestError{err: err})
			return
		}

		runs, err := forecaster.TrainingRuns(r.Context(), domain.TrainingRunFilters{
			Status:    domain.TrainingRunStatus(query.Status),
			ModelPath: query.ModelPath,
			Limit:     limit,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		if runs == nil {
			runs = []*domain.TrainingRun{}
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"count":         len(runs),
			"training_runs": runs,
		})
	}
}

// GetTrainingRun retorna uma execução de treino pelo ID
func GetTrainingRun(forecaster forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("training_run_id", id).Info("INIT - GetTrainingRun")

		run, err := forecaster.TrainingRun(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, run)
	}
}
