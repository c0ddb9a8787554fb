package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
)

func TestBuildBeginPushQuery(t *testing.T) {
	querySQL, args, err := buildBeginPushQuery("CMP001")
	assert.NoError(t, err)

	t.Run("CAS exige campanha aprovada e nenhum push concluído", func(t *testing.T) {
		assert.Contains(t, querySQL, "UPDATE campaign_requests")
		assert.Contains(t, querySQL, "fb_push_status NOT IN")
		assert.Contains(t, args, "CMP001")
		assert.Contains(t, args, domain.CampaignStatusApproved)
		assert.Contains(t, args, domain.PushStatusSucceeded)
	})

	t.Run("Push abandonado em pushing é retomado após o intervalo", func(t *testing.T) {
		// Sem essa cláusula, uma falha ao gravar o resultado (ou um processo
		// morto no meio da cadeia) deixaria a linha em 'pushing' e nenhuma
		// nova tentativa passaria pelo guard.
		assert.Contains(t, querySQL, "updated_at < NOW() - INTERVAL '15 minutes'")
		assert.Contains(t, querySQL, " OR ")
	})
}
