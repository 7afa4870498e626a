package domain

import "time"

// Role tags an account's authorization level.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// Tier tags an account's subscription level.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// User is the account record; email acts as the external natural key.
type User struct {
	ID        string
	Name      string
	Email     string
	PhotoURL  *string
	Role      Role
	Tier      Tier
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the account carries the elevated role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
