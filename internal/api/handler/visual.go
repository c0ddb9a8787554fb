package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/visuals"
	"github.com/dealerhub/dealer-ops-api/pkg/apiErrors"
)

type ChangeVisualStatusRequest struct {
	Status     domain.VisualRequestStatus `json:"status"`
	Note       string                     `json:"note,omitempty"`
	AssignedTo *domain.VisualAssignee     `json:"assigned_to,omitempty"`
}

func CreateVisualRequest(service visuals.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateVisualRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		visual, err := service.Create(r.Context(), &req, claimsFromContext(r))
		if err != nil {
			handleVisualError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(visual)
	}
}

func GetVisualRequest(service visuals.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		visual, err := service.Get(r.Context(), id, claimsFromContext(r))
		if err != nil {
			handleVisualError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(visual)
	}
}

func ListVisualRequests(service visuals.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := &repository.VisualRequestFilter{
			DealerID:   r.URL.Query().Get("dealer_id"),
			Status:     domain.VisualRequestStatus(r.URL.Query().Get("status")),
			AssignedTo: domain.VisualAssignee(r.URL.Query().Get("assigned_to")),
		}

		list, err := service.List(r.Context(), filter, claimsFromContext(r))
		if err != nil {
			handleVisualError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)
	}
}

// ChangeVisualRequestStatus move o pedido pelo fluxo de produção, com nota e
// atribuição de unidade opcionais.
func ChangeVisualRequestStatus(service visuals.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req ChangeVisualStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		visual, err := service.ChangeStatus(r.Context(), id, req.Status, req.Note, req.AssignedTo)
		if err != nil {
			handleVisualError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(visual)
	}
}

func handleVisualError(w http.ResponseWriter, err error) {
	var validationErr *visuals.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Reason, nil)

	case errors.Is(err, visuals.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrVisualRequestNotFound, "Pedido de material não encontrado", nil)

	case errors.Is(err, visuals.ErrForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a este pedido", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar o pedido de material", nil)
	}
}
