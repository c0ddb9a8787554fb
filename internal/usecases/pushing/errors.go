package pushing

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("campanha não encontrada")

// PreconditionError indica que o push foi recusado antes de qualquer chamada
// externa. Nenhum efeito colateral acontece: nem escrita no banco, nem
// entrada de auditoria.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// PushError carrega o passo que falhou durante a criação dos objetos na
// plataforma de anúncios. O handler traduz para a resposta 502 com
// fb_push_status = failed.
type PushError struct {
	Step string
	Err  error
}

func (e *PushError) Error() string {
	return fmt.Sprintf("falha no passo %s: %v", e.Step, e.Err)
}

func (e *PushError) Unwrap() error {
	return e.Err
}
