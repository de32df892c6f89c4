package model

// Role represents user roles in the system. The permission set for each role
// lives in the static table in permission.go, not in the database; the rows
// here exist so the roles list endpoint has something to serve.
type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // admin, manager, user
	Name        string `gorm:"type:varchar(100)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// Role codes as constants
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// DefaultRoles defines the default roles in the system
var DefaultRoles = []Role{
	{
		Code:        RoleAdmin,
		Name:        "Administrator",
		Description: "Full access to every collection and user management",
	},
	{
		Code:        RoleManager,
		Name:        "Manager",
		Description: "Manages dispensaries, service requests and invoices",
	},
	{
		Code:        RoleUser,
		Name:        "User",
		Description: "Read access plus service request intake",
	},
}

// Permissions resolves the role's permission tokens from the static table.
func (r Role) Permissions() []string {
	return PermissionTokens(r.Code)
}
