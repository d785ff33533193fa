package auth

import "droneworks/hangar/internal/constants"

// UserClaims is the acting identity every handler sees, regardless of
// whether it arrived over a login token or the factory bot's API key.
type UserClaims interface {
	UserID() string
	Username() string
	TeamID() string
	TeamName() string
	Role() string
	Source() string
	IsStaff() bool
}

type JWTClaims struct {
	UserUUID    string
	UsernameVal string
	TeamUUID    string
	TeamNameVal string
	RoleValue   string
}

func (c *JWTClaims) UserID() string   { return c.UserUUID }
func (c *JWTClaims) Username() string { return c.UsernameVal }
func (c *JWTClaims) TeamID() string   { return c.TeamUUID }
func (c *JWTClaims) TeamName() string { return c.TeamNameVal }
func (c *JWTClaims) Role() string     { return c.RoleValue }
func (c *JWTClaims) Source() string   { return "JWT" }
func (c *JWTClaims) IsStaff() bool    { return c.RoleValue == constants.RoleStaff }

type APIKeyClaims struct {
	UserUUID    string
	UsernameVal string
	TeamUUID    string
	TeamNameVal string
	RoleValue   string
}

func (c *APIKeyClaims) UserID() string   { return c.UserUUID }
func (c *APIKeyClaims) Username() string { return c.UsernameVal }
func (c *APIKeyClaims) TeamID() string   { return c.TeamUUID }
func (c *APIKeyClaims) TeamName() string { return c.TeamNameVal }
func (c *APIKeyClaims) Role() string     { return c.RoleValue }
func (c *APIKeyClaims) Source() string   { return "API_KEY" }
func (c *APIKeyClaims) IsStaff() bool    { return c.RoleValue == constants.RoleStaff }
