package middleware

import (
	"net/http"
	"strings"

	"droneworks/hangar/internal/auth"
	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/db/repositories"
)

// AuthMiddleware accepts either a Bearer login token or the factory bot's
// API key. Both paths end with UserClaims in the request context; team and
// role checks happen in the gates further down the chain.
func AuthMiddleware(tokenSvc *common.TokenService, personnelRepo *repositories.PersonnelRepository, teamRepo *repositories.TeamRepository, keysRepo *repositories.KeysRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get(constants.HeaderAPIKey)

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				tokenString := strings.TrimPrefix(authHeader, "Bearer ")

				token, err := tokenSvc.Validate(r.Context(), tokenString)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}

				claims = &auth.JWTClaims{
					UserUUID:    token.UserID,
					UsernameVal: token.Username,
					TeamUUID:    token.TeamID,
					TeamNameVal: token.TeamName,
					RoleValue:   token.Role,
				}

			case apiKey != "":
				operatorID := r.Header.Get(constants.HeaderUsername)

				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}

				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}

				claims = auth.MakeClaimsFromApi(r.Context(), personnelRepo, teamRepo, operatorID)

			default:
				http.Error(w, "Unauthorized. Missing credentials", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
