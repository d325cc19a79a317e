package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/shelf-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shelf-manager-api/pkg/log"
	"github.com/vfg2006/shelf-manager-api/pkg/utils"
)

// GetLostRevenueRanking retorna o ranking de produtos por receita perdida em
// rupturas fechadas dentro da janela (padrão: últimos 30 dias)
func GetLostRevenueRanking(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("store_id", storeID).Info("reports: fetching lost revenue ranking")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id":   storeID,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("reports: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id": storeID,
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("reports: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
		}

		filters := &domain.LostRevenueFilters{
			StartDate: startDate,
			EndDate:   endDate,
			Limit:     limit,
		}

		response, err := service.LostRevenueRanking(r.Context(), storeID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id": storeID,
				"error":    err.Error(),
			}).Error("reports: failed to fetch lost revenue ranking")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de perda de receita", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
		}
	})
}
