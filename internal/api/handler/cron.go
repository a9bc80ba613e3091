package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecast/internal/scheduler"
	"github.com/vfg2006/sales-forecast/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

// RunRetraining dispara o retreino fora do agendamento
func RunRetraining(retraining *scheduler.RetrainingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunRetraining")

		if retraining == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retreino não disponível", nil)
			return
		}

		if !retraining.TriggerManualRetraining() {
			apiErrors.WriteError(w, apiErrors.ErrRetrainingInProgress, "Já existe um retreino em andamento", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Retreino iniciado com sucesso",
			"type":    "retraining",
		})
	}
}

// GetCronStatus retorna o status do agendador de retreino
func GetCronStatus(retraining *scheduler.RetrainingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetCronStatus")

		if retraining == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retreino não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"retraining": retraining.GetStatus(),
		})
	}
}
