package handler

import (
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/campaigning"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/pushing"
	"github.com/dealerhub/dealer-ops-api/pkg/apiErrors"
	"github.com/dealerhub/dealer-ops-api/pkg/middleware"
)

// Limite de upload de criativos: 10 MB, alinhado com o aceito pela plataforma
// de anúncios para imagens.
const maxCreativeUploadBytes = 10 << 20

type ChangeCampaignStatusRequest struct {
	Status domain.CampaignStatus `json:"status"`
	Note   string                `json:"note,omitempty"`
}

type CreateCampaignResponse struct {
	Campaign    *domain.CampaignRequest   `json:"campaign"`
	BudgetCheck *domain.BudgetCheckResult `json:"budget_check,omitempty"`
}

func claimsFromContext(r *http.Request) *domain.Claims {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}

// CreateCampaign registra uma nova solicitação de campanha. O resultado da
// checagem de verba volta junto na resposta como orientação ao aprovador.
func CreateCampaign(service campaigning.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, budgetCheck, err := service.Create(r.Context(), &req, claimsFromContext(r))
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateCampaignResponse{
			Campaign:    campaign,
			BudgetCheck: budgetCheck,
		})
	}
}

func GetCampaign(service campaigning.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.Get(r.Context(), id, claimsFromContext(r))
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(campaign)
	}
}

func ListCampaigns(service campaigning.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := repository.CampaignFilter{
			DealerID: r.URL.Query().Get("dealer_id"),
			Status:   domain.CampaignStatus(r.URL.Query().Get("status")),
		}

		campaigns, err := service.List(r.Context(), filter, claimsFromContext(r))
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(campaigns)
	}
}

// ChangeCampaignStatus aplica uma transição do fluxo de aprovação
// (aprovar, rejeitar, concluir). Transições fora da máquina de estados
// voltam como VAL_001.
func ChangeCampaignStatus(service campaigning.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req ChangeCampaignStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := service.ChangeStatus(r.Context(), id, req.Status, req.Note, claimsFromContext(r))
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(campaign)
	}
}

func GetCampaignActivity(service campaigning.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entries, err := service.Activity(r.Context(), id, claimsFromContext(r))
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

// PushCampaign dispara a publicação da campanha na plataforma de anúncios.
// Pré-condição violada volta como 400 sem nenhum efeito colateral; falha no
// meio da cadeia volta como 502 com o estado de push gravado na campanha.
func PushCampaign(service pushing.Pusher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.PushToFacebook(r.Context(), id, claimsFromContext(r))
		if err != nil {
			handlePushError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(campaign)
	}
}

// CheckCampaignFBStatus consulta o status remoto da campanha já publicada.
func CheckCampaignFBStatus(service pushing.Pusher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		status, err := service.CheckRemoteStatus(r.Context(), id, claimsFromContext(r))
		if err != nil {
			handlePushError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

// UploadCampaignFile recebe o arquivo de criativo via multipart. O tipo
// (post ou story) vem no campo file_type do formulário.
func UploadCampaignFile(service campaigning.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := r.ParseMultipartForm(maxCreativeUploadBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo file é obrigatório", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxCreativeUploadBytes+1))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler o arquivo enviado", nil)
			return
		}
		if len(data) > maxCreativeUploadBytes {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo excede o tamanho máximo de 10MB", nil)
			return
		}

		fileType := domain.CreativeFileType(r.FormValue("file_type"))
		contentType := header.Header.Get("Content-Type")

		created, err := service.UploadCreative(r.Context(), campaignID, header.Filename, fileType, contentType, data, claimsFromContext(r))
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func ListCampaignFiles(service campaigning.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		files, err := service.ListCreatives(r.Context(), campaignID, claimsFromContext(r))
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(files)
	}
}

func DeleteCampaignFile(service campaigning.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		campaignID := params.ByName("id")
		fileID := params.ByName("file_id")

		if err := service.DeleteCreative(r.Context(), campaignID, fileID, claimsFromContext(r)); err != nil {
			handleCampaignError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCampaignError(w http.ResponseWriter, err error) {
	var validationErr *campaigning.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Reason, nil)

	case errors.Is(err, campaigning.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)

	case errors.Is(err, campaigning.ErrForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta campanha", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar a campanha", nil)
	}
}

func handlePushError(w http.ResponseWriter, err error) {
	var preconditionErr *pushing.PreconditionError
	var pushErr *pushing.PushError
	switch {
	case errors.As(err, &preconditionErr):
		apiErrors.WriteError(w, apiErrors.ErrCampaignPrecondition, preconditionErr.Reason, nil)

	case errors.Is(err, pushing.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)

	case errors.As(err, &pushErr):
		// A falha já foi persistida na campanha; a resposta carrega o passo
		// que falhou e o estado final do push.
		apiErrors.WriteError(w, apiErrors.ErrExternalService, pushErr.Error(), map[string]any{
			"fb_push_status": string(domain.PushStatusFailed),
			"step":           pushErr.Step,
		})

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao publicar a campanha", nil)
	}
}
