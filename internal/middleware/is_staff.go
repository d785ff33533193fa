package middleware

import (
	"net/http"

	"droneworks/hangar/internal/auth"
	"droneworks/hangar/internal/common"
)

func IsStaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil || !claims.IsStaff() {
				common.RespondPermissionDenied(w, "staff")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
