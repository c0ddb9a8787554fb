package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository/mocks"
	"github.com/dealerhub/dealer-ops-api/internal/config"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/internal/tenant"
	"go.uber.org/mock/gomock"
)

func TestCampaignCompletionService_CompleteExpiredCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRequestRepository(ctrl)
	mockActivityRepo := mocks.NewMockActivityLogRepository(ctrl)

	service := NewCampaignCompletionService(mockCampaignRepo, mockActivityRepo, &config.Config{})

	// A varredura roda uma vez por marca, cada uma com o brand explícito no
	// contexto. Ford conclui uma campanha; tofas não tem nenhuma expirada.
	mockCampaignRepo.EXPECT().
		CompleteExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time) ([]string, error) {
			brand, err := tenant.FromContext(ctx)
			assert.NoError(t, err)
			assert.Equal(t, tenant.BrandFord, brand)
			return []string{"CMP001"}, nil
		})

	mockActivityRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *domain.ActivityLogEntry) error {
			brand, err := tenant.FromContext(ctx)
			assert.NoError(t, err)
			assert.Equal(t, tenant.BrandFord, brand)

			assert.Equal(t, "CMP001", entry.CampaignID)
			assert.Equal(t, domain.ActivityStatusChanged, entry.Kind)
			assert.Equal(t, "live", entry.Detail["from"])
			assert.Equal(t, "completed", entry.Detail["to"])
			assert.Nil(t, entry.ActorID)
			return nil
		})

	mockCampaignRepo.EXPECT().
		CompleteExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time) ([]string, error) {
			brand, err := tenant.FromContext(ctx)
			assert.NoError(t, err)
			assert.Equal(t, tenant.BrandTofas, brand)
			return nil, nil
		})

	service.CompleteExpiredCampaigns()

	status := service.GetStatus()
	assert.False(t, status["last_run_at"].(time.Time).IsZero())
}
