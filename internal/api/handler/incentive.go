package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/incentives"
	"github.com/dealerhub/dealer-ops-api/pkg/apiErrors"
)

type DecideIncentiveRequest struct {
	Status domain.IncentiveStatus `json:"status"`
	Note   string                 `json:"note,omitempty"`
}

func CreateIncentive(service incentives.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateIncentiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		incentive, err := service.Create(r.Context(), &req, claimsFromContext(r))
		if err != nil {
			handleIncentiveError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(incentive)
	}
}

func GetIncentive(service incentives.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		incentive, err := service.Get(r.Context(), id, claimsFromContext(r))
		if err != nil {
			handleIncentiveError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(incentive)
	}
}

func ListIncentives(service incentives.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := &repository.IncentiveFilter{
			DealerID: r.URL.Query().Get("dealer_id"),
			Status:   domain.IncentiveStatus(r.URL.Query().Get("status")),
		}

		list, err := service.List(r.Context(), filter, claimsFromContext(r))
		if err != nil {
			handleIncentiveError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}

// DecideIncentive aprova ou rejeita uma solicitação pendente. A nota do
// administrador é opcional e fica registrada junto da decisão.
func DecideIncentive(service incentives.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req DecideIncentiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		incentive, err := service.Decide(r.Context(), id, req.Status, req.Note)
		if err != nil {
			handleIncentiveError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(incentive)
	}
}

func handleIncentiveError(w http.ResponseWriter, err error) {
	var validationErr *incentives.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Reason, nil)

	case errors.Is(err, incentives.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrIncentiveNotFound, "Solicitação de incentivo não encontrada", nil)

	case errors.Is(err, incentives.ErrForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta solicitação", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar a solicitação de incentivo", nil)
	}
}
