package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/internal/tenant"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/budgeting"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/dealering"
	"github.com/dealerhub/dealer-ops-api/pkg/apiErrors"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

type CreateBudgetPlanRequest struct {
	DealerID    string          `json:"dealer_id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	TotalBudget decimal.Decimal `json:"total_budget"`
}

// RegisterDealer é o cadastro público de dealers. Não há token, então a marca
// vem no corpo e define em qual banco o dealer será criado.
func RegisterDealer(service dealering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterDealerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		brand, err := tenant.ParseBrand(req.Brand)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Marca inválida, use ford ou tofas", nil)
			return
		}
		ctx := tenant.WithBrand(r.Context(), brand)

		dealer, err := service.Register(ctx, &req)
		if err != nil {
			handleDealerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dealer)
	}
}

func ListDealers(service dealering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealers, err := service.List(r.Context())
		if err != nil {
			handleDealerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dealers)
	}
}

func GetDealer(service dealering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dealer, err := service.Get(r.Context(), id, claimsFromContext(r))
		if err != nil {
			handleDealerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dealer)
	}
}

// UpdateDealer atualiza o cadastro do dealer. Mudar o status para active
// também ativa o usuário vinculado; é a aprovação do onboarding.
func UpdateDealer(service dealering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateDealerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		dealer, err := service.Update(r.Context(), &req)
		if err != nil {
			handleDealerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dealer)
	}
}

// CheckBudget valida a verba de um período contra os planos do dealer, sem
// criar nada. É a mesma checagem executada na criação da campanha.
func CheckBudget(service budgeting.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.BudgetCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.DealerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "dealer_id é obrigatório", nil)
			return
		}

		start, err := utils.ParseDate(req.StartDate)
		if err != nil || start.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		end, err := utils.ParseDate(req.EndDate)
		if err != nil || end.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		result, err := service.Check(r.Context(), req.DealerID, *start, *end, req.BudgetAmount)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao checar a verba", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func ListBudgetPlans(service budgeting.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		plans, err := service.ListPlans(r.Context(), dealerID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar planos de verba", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(plans)
	}
}

func CreateBudgetPlan(service budgeting.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBudgetPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.DealerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "dealer_id é obrigatório", nil)
			return
		}

		start, err := utils.ParseDate(req.StartDate)
		if err != nil || start.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		end, err := utils.ParseDate(req.EndDate)
		if err != nil || end.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		if end.Before(*start) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date não pode ser anterior a start_date", nil)
			return
		}
		if req.TotalBudget.LessThanOrEqual(decimal.Zero) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "total_budget deve ser maior que zero", nil)
			return
		}

		plan := &domain.BudgetPlan{
			DealerID:    req.DealerID,
			StartDate:   *start,
			EndDate:     *end,
			TotalBudget: req.TotalBudget,
		}

		if err := service.CreatePlan(r.Context(), plan); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar plano de verba", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(plan)
	}
}

func handleDealerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dealering.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDealerNotFound, "Dealer não encontrado", nil)

	case errors.Is(err, dealering.ErrDuplicate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dealer já cadastrado com este código ou e-mail", nil)

	case errors.Is(err, dealering.ErrForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a este dealer", nil)

	case errors.Is(err, dealering.ErrInvalidInput):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados de cadastro inválidos", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar o dealer", nil)
	}
}
