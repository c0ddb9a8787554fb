package metadomain

import (
	"fmt"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// APIError contém os detalhes de erro da API do Meta. Implementa error para
// que os usecases possam classificar a falha via errors.As, sem inspecionar
// strings de mensagem.
type APIError struct {
	Message        string     `json:"message"`
	Type           string     `json:"type"`
	Code           int        `json:"code"`
	ErrorSubcode   int        `json:"error_subcode,omitempty"`
	ErrorUserTitle string     `json:"error_user_title,omitempty"`
	ErrorUserMsg   string     `json:"error_user_msg,omitempty"`
	FBTraceID      string     `json:"fbtrace_id"`
	ErrorData      *ErrorData `json:"error_data,omitempty"`

	// Status HTTP da resposta que carregou o erro.
	HTTPStatus int `json:"-"`
}

// ErrorData aponta os campos culpados pelo erro de validação.
type ErrorData struct {
	BlameFieldSpecs [][]string `json:"blame_field_specs,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta api error (code %d, subcode %d, type %s): %s",
		e.Code, e.ErrorSubcode, e.Type, e.Message)
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *APIError) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

// IsInvalidInstagramActor classifica o erro de parâmetro inválido causado pelo
// instagram_actor_id do object_story_spec. O código 100 é "Invalid parameter";
// o campo culpado vem em error_data.blame_field_specs ou, em versões antigas
// da API, apenas na mensagem estruturada do erro.
func (e *APIError) IsInvalidInstagramActor() bool {
	if e.Code != 100 {
		return false
	}

	if e.ErrorData != nil {
		for _, spec := range e.ErrorData.BlameFieldSpecs {
			for _, field := range spec {
				if field == "instagram_actor_id" {
					return true
				}
			}
		}
	}

	return strings.Contains(e.Message, "instagram_actor_id") ||
		strings.Contains(e.ErrorUserMsg, "instagram_actor_id")
}
