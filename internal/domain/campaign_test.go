package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from CampaignStatus
		to   CampaignStatus
		want bool
	}{
		{
			name: "Rascunho pode ir para aprovação pendente",
			from: CampaignStatusDraft,
			to:   CampaignStatusPendingApproval,
			want: true,
		},
		{
			name: "Rascunho não pode ser aprovado diretamente",
			from: CampaignStatusDraft,
			to:   CampaignStatusApproved,
			want: false,
		},
		{
			name: "Pendente pode ser aprovada",
			from: CampaignStatusPendingApproval,
			to:   CampaignStatusApproved,
			want: true,
		},
		{
			name: "Pendente pode ser rejeitada",
			from: CampaignStatusPendingApproval,
			to:   CampaignStatusRejected,
			want: true,
		},
		{
			name: "Pendente não pode ir direto para live",
			from: CampaignStatusPendingApproval,
			to:   CampaignStatusLive,
			want: false,
		},
		{
			name: "Aprovada pode entrar no ar",
			from: CampaignStatusApproved,
			to:   CampaignStatusLive,
			want: true,
		},
		{
			name: "Aprovada ainda pode ser rejeitada",
			from: CampaignStatusApproved,
			to:   CampaignStatusRejected,
			want: true,
		},
		{
			name: "Campanha no ar pode ser concluída",
			from: CampaignStatusLive,
			to:   CampaignStatusCompleted,
			want: true,
		},
		{
			name: "Campanha no ar não pode voltar para aprovada",
			from: CampaignStatusLive,
			to:   CampaignStatusApproved,
			want: false,
		},
		{
			name: "Concluída é terminal",
			from: CampaignStatusCompleted,
			to:   CampaignStatusLive,
			want: false,
		},
		{
			name: "Rejeitada é terminal",
			from: CampaignStatusRejected,
			to:   CampaignStatusPendingApproval,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestValidCampaignStatus(t *testing.T) {
	for _, status := range []CampaignStatus{
		CampaignStatusDraft, CampaignStatusPendingApproval, CampaignStatusApproved,
		CampaignStatusRejected, CampaignStatusLive, CampaignStatusCompleted,
	} {
		assert.True(t, ValidCampaignStatus(status), "status %s deveria ser válido", status)
	}

	assert.False(t, ValidCampaignStatus("archived"))
	assert.False(t, ValidCampaignStatus(""))
}
