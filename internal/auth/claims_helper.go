package auth

import (
	"context"

	"droneworks/hangar/internal/db/repositories"
	"droneworks/hangar/internal/logging"
)

// MakeClaimsFromApi builds claims for the API-key path. The factory bot
// acts on behalf of an operator identified by the X-Operator-Id header;
// unknown operators still get claims, just with no team attached, and the
// gates downstream reject them.
func MakeClaimsFromApi(ctx context.Context, personnelRepo *repositories.PersonnelRepository, teamRepo *repositories.TeamRepository, username string) UserClaims {
	claims := &APIKeyClaims{UsernameVal: username}

	person, err := personnelRepo.GetByUsername(ctx, username)
	if err != nil || person == nil {
		logging.Warn("API key request for unknown operator", "username", username)
		return claims
	}

	claims.UserUUID = person.ID
	claims.RoleValue = person.Role

	if person.TeamID != nil {
		claims.TeamUUID = *person.TeamID
		if team, err := teamRepo.GetByID(ctx, *person.TeamID); err == nil && team != nil {
			claims.TeamNameVal = team.Name
		}
	}

	return claims
}
