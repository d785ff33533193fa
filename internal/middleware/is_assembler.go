package middleware

import (
	"net/http"

	"droneworks/hangar/internal/auth"
	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
)

// IsAssemblerMiddleware restricts install/uninstall to the assembly crew.
// Staff bypass the team check.
func IsAssemblerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil {
				common.RespondPermissionDenied(w, "assembly team")
				return
			}

			if claims.TeamName() != constants.TeamAssembly && !claims.IsStaff() {
				common.RespondPermissionDenied(w, "assembly team")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
