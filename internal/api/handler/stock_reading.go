package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/ingesting"
	"github.com/vfg2006/shelf-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shelf-manager-api/pkg/log"
	"github.com/vfg2006/shelf-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IngestReading recebe uma leitura de ocupação de gôndola (contagem manual,
// app do promotor ou visão computacional) e aciona a detecção de ruptura
func IngestReading(service ingesting.Ingestor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.NewStockReading
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).Warn("readings: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if input.StoreID == "" || input.SlotID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "store_id e slot_id são obrigatórios", nil)
			return
		}

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || !claims.CanAccessStore(input.StoreID) {
			apiErrors.WriteError(w, apiErrors.ErrStoreAccessDenied, "Loja fora da lista de acesso do token", nil)
			return
		}

		logger.WithFields(log.Fields{
			"store_id": input.StoreID,
			"slot_id":  input.SlotID,
			"source":   string(input.Source),
		}).Info("readings: ingesting stock reading")

		reading, err := service.Ingest(r.Context(), input)
		if err != nil {
			var ingestErr *ingesting.IngestError
			if errors.As(err, &ingestErr) {
				logger.WithFields(log.Fields{
					"slot_id": ingestErr.SlotID,
					"code":    ingestErr.Code,
					"error":   err.Error(),
				}).Warn("readings: ingestion rejected")

				apiErrors.WriteError(w, ingestErr.Code, ingestErr.Err.Error(), nil)
				return
			}

			logger.WithError(err).Error("readings: failed to ingest stock reading")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar leitura", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(reading); err != nil {
			logger.WithError(err).Error("readings: failed to encode response")
		}
	})
}
