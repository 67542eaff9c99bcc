package domain

import (
	"context"
	"time"
)

// Role is the user's permission level
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Capability is something a role may be allowed to do
type Capability string

const (
	CapabilityShop          Capability = "shop"
	CapabilityManageCatalog Capability = "manage_catalog"
)

var grants = map[Role][]Capability{
	RoleUser:  {CapabilityShop},
	RoleAdmin: {CapabilityShop, CapabilityManageCatalog},
}

// Can reports whether role grants capability
func Can(role Role, capability Capability) bool {
	for _, c := range grants[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// User represents the account entity. The cart and the purchase history
// are reached through their own stores by buyer id.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"not null"`
	LastName  string    `json:"lastName" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      Role      `json:"role" gorm:"type:varchar(16);not null;default:USER"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// Can reports whether the user's role grants capability
func (u *User) Can(capability Capability) bool {
	return Can(u.Role, capability)
}

// Messages
const (
	MsgInvalidUser        = "Invalid user"
	MsgInvalidUsername    = "Invalid username"
	MsgInvalidEmail       = "Invalid email"
	MsgUsernameInUse      = "Username already in use"
	MsgEmailInUse         = "Email already in use"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUserNotFound       = "User not found"
)

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// SessionStore keeps server-side sessions. Sessions expire on their own
// after their TTL.
type SessionStore interface {
	Create(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	Resolve(ctx context.Context, sessionID string) (uint, error)
	Delete(ctx context.Context, sessionID string) error
}
