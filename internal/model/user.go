package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account status values. Login only ever matches active accounts.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Theme preference values stored per user.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User represents an admin-panel account.
type User struct {
	BaseModel
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string `gorm:"type:varchar(255)" json:"-"` // stored hash; see auth service for why login ignores it
	Name     string `gorm:"type:varchar(255)" json:"name" validate:"required"`
	RoleCode string `gorm:"type:varchar(50);not null" json:"role" validate:"required,oneof=admin manager user"`
	Status   string `gorm:"type:varchar(20);default:active" json:"status" validate:"omitempty,oneof=active inactive"`
	Theme    string `gorm:"type:varchar(10);default:light" json:"theme"`

	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"` // bumped on login/logout to retire old tokens
}

// SetPassword hashes and stores the credential. It is kept for the
// reset-password tool and future hardening; Login does not consult it.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// HasPermission checks the static role table for this user's role.
func (u *User) HasPermission(p Permission) bool {
	return RoleHasPermission(u.RoleCode, p)
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	RoleCode  string    `json:"role"`
	Status    string    `json:"status"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		RoleCode:  u.RoleCode,
		Status:    u.Status,
		Theme:     u.Theme,
		CreatedAt: u.CreatedAt,
	}
}

// DefaultUsers seeds the accounts the dashboard ships with. Login matches
// these until real accounts are created.
var DefaultUsers = []User{
	{
		BaseModel: BaseModel{ID: uuid.MustParse("6f1f7a3a-0001-4a8e-9f65-2e9a1c3d5e70")},
		Email:     "admin@myers.security",
		Name:      "Myers Admin",
		RoleCode:  RoleAdmin,
		Status:    StatusActive,
		Theme:     ThemeLight,
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("6f1f7a3a-0002-4a8e-9f65-2e9a1c3d5e70")},
		Email:     "manager@myers.security",
		Name:      "Operations Manager",
		RoleCode:  RoleManager,
		Status:    StatusActive,
		Theme:     ThemeLight,
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("6f1f7a3a-0003-4a8e-9f65-2e9a1c3d5e70")},
		Email:     "viewer@myers.security",
		Name:      "Front Desk",
		RoleCode:  RoleUser,
		Status:    StatusInactive,
		Theme:     ThemeDark,
	},
}
