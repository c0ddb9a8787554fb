package handler

import (
	"net/http"

	"github.com/dealerhub/dealer-ops-api/internal/api/handler/router"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/authenticating"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/budgeting"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/campaigning"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/dealering"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/incentives"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/pushing"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/visuals"
	"github.com/dealerhub/dealer-ops-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaigning.Manager, pusher pushing.Pusher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/status",
			Method:      http.MethodPut,
			Handler:     ChangeCampaignStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/campaigns/:id/activity",
			Method:      http.MethodGet,
			Handler:     GetCampaignActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/push-to-facebook",
			Method:      http.MethodPost,
			Handler:     PushCampaign(pusher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/campaigns/:id/check-fb-status",
			Method:      http.MethodGet,
			Handler:     CheckCampaignFBStatus(pusher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/files",
			Method:      http.MethodPost,
			Handler:     UploadCampaignFile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/files",
			Method:      http.MethodGet,
			Handler:     ListCampaignFiles(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/files/:file_id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaignFile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dealers(service dealering.Manager, budget budgeting.Checker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dealers/register",
			Method:  http.MethodPost,
			Handler: RegisterDealer(service),
		},
		{
			Path:        "/v1/dealers",
			Method:      http.MethodGet,
			Handler:     ListDealers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/dealers/:id",
			Method:      http.MethodGet,
			Handler:     GetDealer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dealers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDealer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/dealers/:id/budget-plans",
			Method:      http.MethodGet,
			Handler:     ListBudgetPlans(budget),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		// httprouter não aceita segmento estático e :id no mesmo nível da
		// árvore de POST, então a criação de planos vive fora de /dealers e o
		// dealer vem no corpo.
		{
			Path:        "/v1/budget-plans",
			Method:      http.MethodPost,
			Handler:     CreateBudgetPlan(budget),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/dealers/check-budget",
			Method:      http.MethodPost,
			Handler:     CheckBudget(budget),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Incentives(service incentives.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/incentives",
			Method:      http.MethodPost,
			Handler:     CreateIncentive(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/incentives",
			Method:      http.MethodGet,
			Handler:     ListIncentives(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/incentives/:id",
			Method:      http.MethodGet,
			Handler:     GetIncentive(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/incentives/:id/decide",
			Method:      http.MethodPut,
			Handler:     DecideIncentive(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
	}
}

func Visuals(service visuals.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/visuals",
			Method:      http.MethodPost,
			Handler:     CreateVisualRequest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/visuals",
			Method:      http.MethodGet,
			Handler:     ListVisualRequests(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/visuals/:id",
			Method:      http.MethodGet,
			Handler:     GetVisualRequest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/visuals/:id/status",
			Method:      http.MethodPut,
			Handler:     ChangeVisualRequestStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
