package constants

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Role mirrors the Postgres ENUM 'user_role'
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
	RoleOwner     Role = "owner"
)

// ErrInvalidRole is returned when a role name is not part of the hierarchy
var ErrInvalidRole = errors.New("invalid role")

var roleLevels = map[Role]int{
	RoleUser:      0,
	RoleModerator: 1,
	RoleAdmin:     2,
	RoleOwner:     3,
}

// ParseRole constructs a Role from its name, rejecting unknown values
func ParseRole(name string) (Role, error) {
	r := Role(name)
	if _, ok := roleLevels[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, name)
	}
	return r, nil
}

// Level returns the integer rank of the role within the hierarchy.
// Unknown roles rank below 'user' so a corrupted value never gains access.
func (r Role) Level() int {
	if lvl, ok := roleLevels[r]; ok {
		return lvl
	}
	return -1
}

// IsAtLeast reports whether r ranks equal to or above other
func (r Role) IsAtLeast(other Role) bool { return r.Level() >= other.Level() }

// IsLessThan reports whether r ranks strictly below other
func (r Role) IsLessThan(other Role) bool { return r.Level() < other.Level() }

// Equals reports whether r and other are the same rank
func (r Role) Equals(other Role) bool { return r.Level() == other.Level() }

// Stringer ­– convenient for fmt / logs
func (r Role) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
