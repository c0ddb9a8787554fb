package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/internal/tenant"
	"github.com/dealerhub/dealer-ops-api/pkg/apiErrors"
)

// BrandMiddleware propaga a marca do claim do token para o contexto. Roda
// depois do AuthMiddleware; rotas públicas (que não têm claims) definem a
// marca explicitamente a partir do corpo da requisição.
//
// Sem marca não há banco de dados: token autenticado sem o claim é erro de
// configuração, nunca cai num default.
func BrandMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				// Rota pública: o handler resolve a marca sozinho.
				next.ServeHTTP(w, r)
				return
			}

			brand, err := tenant.ParseBrand(claims.Brand)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": claims.UserID,
					"brand":   claims.Brand,
				}).Error("Token sem marca válida no claim")
				apiErrors.WriteError(w, apiErrors.ErrMissingTenant, "Marca do token inválida ou ausente", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(tenant.WithBrand(r.Context(), brand)))
		})
	}
}
