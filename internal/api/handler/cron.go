package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/internal/scheduler"
	"github.com/dealerhub/dealer-ops-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCampaignCompletion = "campaign-completion"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	CampaignCompletionService *scheduler.CampaignCompletionService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCampaignCompletion:
			if services.CampaignCompletionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de conclusão de campanhas não disponível", nil)
				return
			}
			services.CampaignCompletionService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: campaign-completion", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"campaign-completion": services.CampaignCompletionService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
