package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/shelf-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shelf-manager-api/pkg/log"
)

// GetCriticalSlots retorna o retrato atual dos slots abaixo do limiar de
// alerta da loja. O limiar é o de "estoque baixo", não o de ruptura.
func GetCriticalSlots(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("store_id", storeID).Info("reports: fetching critical slots")

		var threshold *float64
		if raw := r.URL.Query().Get("threshold"); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil || value < 0 || value > 1 {
				logger.WithFields(log.Fields{
					"store_id":  storeID,
					"threshold": raw,
				}).Warn("reports: invalid threshold parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "threshold deve ser um número entre 0 e 1", nil)
				return
			}
			threshold = &value
		}

		response, err := service.CriticalSlots(r.Context(), storeID, threshold)
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id": storeID,
				"error":    err.Error(),
			}).Error("reports: failed to fetch critical slots")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar slots críticos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
		}
	})
}
