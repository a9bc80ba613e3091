package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-forecast/pkg/log"
)

// Pinger verifica a disponibilidade de uma dependência
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(pinger Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		response := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC(),
		}

		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := pinger.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Banco de dados indisponível no healthcheck")
				status = http.StatusServiceUnavailable
				response["status"] = "degraded"
				response["database"] = "unavailable"
			} else {
				response["database"] = "ok"
			}
		}

		writeJSON(w, r, status, response)
	})
}
