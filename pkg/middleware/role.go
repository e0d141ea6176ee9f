package middleware

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// Roles carregados no token de acesso
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleSeller     = 3
)

// RequireRoles restringe a rota aos roles informados. Exige AuthMiddleware antes na cadeia.
func RequireRoles(roles ...int) func(http.Handler) http.Handler {
	allowed := make(map[int]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logger.Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if _, ok := allowed[claims.UserRoleID]; !ok {
				logger.WithFields(log.Fields{
					"user_id":      claims.UserID,
					"user_role_id": claims.UserRoleID,
					"path":         r.URL.Path,
				}).Warn("Acesso negado ao relatório")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOrSupervisor permite acesso para administradores e supervisores
func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin, RoleSupervisor)
}
