package middleware

import (
	"net/http"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/auth"
	"github.com/JL1365/hr3-backoffice-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		// service tokens from the attendance-sync job bypass the role check
		if tokenType, ok := claims["type"].(string); ok && tokenType == "service" {
			next.ServeHTTP(w, r)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
