package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guard-api/internal/usecases/listing"
	"github.com/vfg2006/campaign-guard-api/pkg/apiErrors"
)

// CampaignList lista todas as campanhas para o dashboard, ordenadas pelos
// parâmetros sort e order da query string
func CampaignList(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CampaignList")

		query := r.URL.Query()
		sortParam := query.Get("sort")
		orderParam := query.Get("order")

		campaigns, err := service.ListCampaigns(r.Context(), sortParam, orderParam)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar campanhas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de campanhas")
		}
	}
}
