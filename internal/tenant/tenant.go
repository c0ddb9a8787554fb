package tenant

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Brand identifica um tenant. Cada brand possui um banco de dados isolado;
// nenhuma query pode ser executada sem um brand explícito no contexto.
type Brand string

const (
	BrandFord  Brand = "ford"
	BrandTofas Brand = "tofas"
)

// ErrNoBrand indica que uma operação de persistência foi chamada sem brand no
// contexto. Isso é um erro de configuração fatal para a requisição: nunca
// fazemos fallback para um brand padrão, porque uma query roteada para o
// tenant errado corrompe dados silenciosamente.
var ErrNoBrand = errors.New(
	"tenant: brand not set in context; call tenant.WithBrand before any database operation",
)

type contextKey string

const brandContextKey contextKey = "tenant_brand"

// Brands retorna todos os brands conhecidos, na ordem usada por jobs offline.
func Brands() []Brand {
	return []Brand{BrandFord, BrandTofas}
}

// ParseBrand valida um brand vindo de fora (claim JWT, body de login, flag de
// linha de comando).
func ParseBrand(s string) (Brand, error) {
	switch Brand(s) {
	case BrandFord, BrandTofas:
		return Brand(s), nil
	}
	return "", fmt.Errorf("tenant: unknown brand %q", s)
}

// WithBrand registra o brand da unidade de trabalho atual no contexto.
// O escopo do contexto garante a limpeza no fim da requisição, inclusive em
// caminhos de erro.
func WithBrand(ctx context.Context, brand Brand) context.Context {
	return context.WithValue(ctx, brandContextKey, brand)
}

// FromContext retorna o brand da unidade de trabalho atual. Falha com
// ErrNoBrand quando ausente.
func FromContext(ctx context.Context) (Brand, error) {
	brand, ok := ctx.Value(brandContextKey).(Brand)
	if !ok || brand == "" {
		return "", ErrNoBrand
	}
	return brand, nil
}

func (b Brand) String() string {
	return string(b)
}
