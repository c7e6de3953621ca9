package auth

import "vattours/server/internal/constants"

// UserClaims is the caller identity the middleware places in the request
// context. Handlers authorize against the role, never against raw headers.
type UserClaims interface {
	UserID() string
	Role() constants.Role
	Source() string
	SessionID() string
}

// SessionClaims is the claims shape carried by a session token
type SessionClaims struct {
	UserUUID   string
	RoleValue  constants.Role
	SessionUID string
}

func (c *SessionClaims) UserID() string        { return c.UserUUID }
func (c *SessionClaims) Role() constants.Role  { return c.RoleValue }
func (c *SessionClaims) Source() string        { return "SESSION" }
func (c *SessionClaims) SessionID() string     { return c.SessionUID }
