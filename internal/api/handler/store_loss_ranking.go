package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/shelf-manager-api/pkg/apiErrors"
)

// GetStoreLossRanking retorna o snapshot diário do ranking de perda de
// receita por loja, materializado pelo agendador
func GetStoreLossRanking(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranking, err := service.GetStoreLossRanking(r.Context())
		if err != nil {
			logrus.Error("Erro ao buscar ranking de perda por loja:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de perda por loja", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(ranking)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
