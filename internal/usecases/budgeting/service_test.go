package budgeting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository/mocks"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := mocks.NewMockBudgetPlanRepository(ctrl)
	service := NewService(mockPlanRepo)

	ctx := context.Background()

	date := func(value string) time.Time {
		parsed, err := time.Parse(time.DateOnly, value)
		assert.NoError(t, err)
		return parsed
	}

	// Plano de janeiro: 100000 no total, 20000 já consumidos.
	januaryPlan := &domain.BudgetPlan{
		ID:          "PLN001",
		DealerID:    "DLR001",
		StartDate:   date("2025-01-01"),
		EndDate:     date("2025-01-31"),
		TotalBudget: decimal.NewFromInt(100000),
		UsedBudget:  decimal.NewFromInt(20000),
	}

	// Plano trimestral mais largo cobrindo o mesmo período.
	quarterPlan := &domain.BudgetPlan{
		ID:          "PLN002",
		DealerID:    "DLR001",
		StartDate:   date("2025-01-01"),
		EndDate:     date("2025-03-31"),
		TotalBudget: decimal.NewFromInt(500000),
		UsedBudget:  decimal.Zero,
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		amount   decimal.Decimal
		setup    func()
		validate func(t *testing.T, result *domain.BudgetCheckResult)
	}{
		{
			name:   "Plano cobre o período e a verba é suficiente",
			start:  date("2025-01-10"),
			end:    date("2025-01-20"),
			amount: decimal.NewFromInt(30000),
			setup: func() {
				mockPlanRepo.EXPECT().
					ListOverlapping(ctx, "DLR001", date("2025-01-10"), date("2025-01-20")).
					Return([]*domain.BudgetPlan{januaryPlan}, nil)
			},
			validate: func(t *testing.T, result *domain.BudgetCheckResult) {
				assert.True(t, result.Valid)
				assert.True(t, result.HasPlan)
				assert.False(t, result.Warning)
				assert.Equal(t, "PLN001", result.PlanID)
				assert.True(t, result.AvailableBudget.Equal(decimal.NewFromInt(80000)))
				assert.NotNil(t, result.RemainingAfter)
				assert.True(t, result.RemainingAfter.Equal(decimal.NewFromInt(50000)))
			},
		},
		{
			name:   "Verba insuficiente no plano que cobre o período",
			start:  date("2025-01-10"),
			end:    date("2025-01-20"),
			amount: decimal.NewFromInt(90000),
			setup: func() {
				mockPlanRepo.EXPECT().
					ListOverlapping(ctx, "DLR001", date("2025-01-10"), date("2025-01-20")).
					Return([]*domain.BudgetPlan{januaryPlan}, nil)
			},
			validate: func(t *testing.T, result *domain.BudgetCheckResult) {
				assert.False(t, result.Valid)
				assert.True(t, result.HasPlan)
				assert.Contains(t, result.WarningMessage, "Verba insuficiente")
				assert.NotNil(t, result.RemainingAfter)
				assert.True(t, result.RemainingAfter.Equal(decimal.NewFromInt(-10000)))
			},
		},
		{
			name:   "Dois planos cobrem o período - vence o mais estreito",
			start:  date("2025-01-10"),
			end:    date("2025-01-20"),
			amount: decimal.NewFromInt(30000),
			setup: func() {
				mockPlanRepo.EXPECT().
					ListOverlapping(ctx, "DLR001", date("2025-01-10"), date("2025-01-20")).
					Return([]*domain.BudgetPlan{quarterPlan, januaryPlan}, nil)
			},
			validate: func(t *testing.T, result *domain.BudgetCheckResult) {
				assert.True(t, result.Valid)
				assert.Equal(t, "PLN001", result.PlanID)
				assert.True(t, result.AvailableBudget.Equal(decimal.NewFromInt(80000)))
			},
		},
		{
			name:   "Sobreposição parcial nunca é válida e gera warning",
			start:  date("2025-01-20"),
			end:    date("2025-02-10"),
			amount: decimal.NewFromInt(10000),
			setup: func() {
				mockPlanRepo.EXPECT().
					ListOverlapping(ctx, "DLR001", date("2025-01-20"), date("2025-02-10")).
					Return([]*domain.BudgetPlan{januaryPlan}, nil)
			},
			validate: func(t *testing.T, result *domain.BudgetCheckResult) {
				assert.False(t, result.Valid)
				assert.True(t, result.HasPlan)
				assert.True(t, result.Warning)
				assert.Equal(t, "PLN001", result.PlanID)
				assert.Equal(t, "2025-01-01", result.PlanStartDate)
				assert.Equal(t, "2025-01-31", result.PlanEndDate)
				assert.Contains(t, result.WarningMessage, "parcialmente")
				assert.Nil(t, result.RemainingAfter)
			},
		},
		{
			name:   "Sobreposição parcial com vários planos cita o de maior interseção",
			start:  date("2025-01-25"),
			end:    date("2025-02-20"),
			amount: decimal.NewFromInt(10000),
			setup: func() {
				februaryPlan := &domain.BudgetPlan{
					ID:          "PLN003",
					DealerID:    "DLR001",
					StartDate:   date("2025-02-01"),
					EndDate:     date("2025-02-28"),
					TotalBudget: decimal.NewFromInt(70000),
					UsedBudget:  decimal.Zero,
				}
				// O plano de janeiro vem primeiro na listagem, mas cobre só 7
				// dias do período pedido; o de fevereiro cobre 20.
				mockPlanRepo.EXPECT().
					ListOverlapping(ctx, "DLR001", date("2025-01-25"), date("2025-02-20")).
					Return([]*domain.BudgetPlan{januaryPlan, februaryPlan}, nil)
			},
			validate: func(t *testing.T, result *domain.BudgetCheckResult) {
				assert.False(t, result.Valid)
				assert.True(t, result.Warning)
				assert.Equal(t, "PLN003", result.PlanID)
				assert.Equal(t, "2025-02-01", result.PlanStartDate)
				assert.Equal(t, "2025-02-28", result.PlanEndDate)
				assert.True(t, result.AvailableBudget.Equal(decimal.NewFromInt(70000)))
			},
		},
		{
			name:   "Nenhum plano cobre o período",
			start:  date("2025-06-01"),
			end:    date("2025-06-30"),
			amount: decimal.NewFromInt(10000),
			setup: func() {
				mockPlanRepo.EXPECT().
					ListOverlapping(ctx, "DLR001", date("2025-06-01"), date("2025-06-30")).
					Return([]*domain.BudgetPlan{}, nil)
			},
			validate: func(t *testing.T, result *domain.BudgetCheckResult) {
				assert.False(t, result.Valid)
				assert.False(t, result.HasPlan)
				assert.False(t, result.Warning)
				assert.Contains(t, result.WarningMessage, "Nenhum plano de verba")
				assert.True(t, result.AvailableBudget.Equal(decimal.Zero))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.Check(ctx, "DLR001", tt.start, tt.end, tt.amount)

			assert.NoError(t, err)
			assert.NotNil(t, result)
			tt.validate(t, result)
		})
	}
}

func TestService_CreatePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlanRepo := mocks.NewMockBudgetPlanRepository(ctrl)
	service := NewService(mockPlanRepo)

	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Plano com data final anterior à inicial é recusado", func(t *testing.T) {
		err := service.CreatePlan(ctx, &domain.BudgetPlan{
			DealerID:    "DLR001",
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, -1),
			TotalBudget: decimal.NewFromInt(1000),
		})

		assert.Error(t, err)
	})

	t.Run("Plano com verba zero é recusado", func(t *testing.T) {
		err := service.CreatePlan(ctx, &domain.BudgetPlan{
			DealerID:    "DLR001",
			StartDate:   start,
			EndDate:     start.AddDate(0, 1, 0),
			TotalBudget: decimal.Zero,
		})

		assert.Error(t, err)
	})

	t.Run("Plano válido é persistido", func(t *testing.T) {
		plan := &domain.BudgetPlan{
			DealerID:    "DLR001",
			StartDate:   start,
			EndDate:     start.AddDate(0, 1, 0),
			TotalBudget: decimal.NewFromInt(50000),
		}

		mockPlanRepo.EXPECT().Create(ctx, plan).Return(nil)

		assert.NoError(t, service.CreatePlan(ctx, plan))
	})
}
