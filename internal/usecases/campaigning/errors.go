package campaigning

import "github.com/pkg/errors"

var (
	ErrNotFound  = errors.New("campanha não encontrada")
	ErrForbidden = errors.New("acesso negado a esta campanha")
)

// ValidationError é devolvido antes de qualquer persistência: requisição
// inválida nunca vira linha no banco.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
