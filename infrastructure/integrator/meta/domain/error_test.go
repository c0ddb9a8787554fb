package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_IsInvalidInstagramActor(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want bool
	}{
		{
			name: "Código 100 com blame_field_specs apontando instagram_actor_id",
			err: &APIError{
				Code:    100,
				Message: "Invalid parameter",
				ErrorData: &ErrorData{
					BlameFieldSpecs: [][]string{{"instagram_actor_id"}},
				},
			},
			want: true,
		},
		{
			name: "Código 100 com o campo apenas na mensagem",
			err: &APIError{
				Code:    100,
				Message: "The instagram_actor_id is not linked to the page",
			},
			want: true,
		},
		{
			name: "Código 100 com o campo na mensagem do usuário",
			err: &APIError{
				Code:         100,
				Message:      "Invalid parameter",
				ErrorUserMsg: "O instagram_actor_id informado não pertence à página",
			},
			want: true,
		},
		{
			name: "Código 100 culpando outro campo",
			err: &APIError{
				Code:    100,
				Message: "Invalid parameter",
				ErrorData: &ErrorData{
					BlameFieldSpecs: [][]string{{"daily_budget"}},
				},
			},
			want: false,
		},
		{
			name: "Outro código nunca classifica, mesmo citando o campo",
			err: &APIError{
				Code:    190,
				Message: "instagram_actor_id mencionado em erro de token",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.IsInvalidInstagramActor())
		})
	}
}

func TestAPIError_IsTokenExpired(t *testing.T) {
	assert.True(t, (&APIError{Code: 190}).IsTokenExpired())
	assert.True(t, (&APIError{Type: "OAuthException", ErrorSubcode: 463}).IsTokenExpired())
	assert.False(t, (&APIError{Code: 100}).IsTokenExpired())
}
