package entity

import "time"

// Roles conocidos. Admin..Support se siembran al arrancar.
const (
	RoleAdmin       = "Admin"
	RoleManager     = "Manager"
	RoleEmployee    = "Employee"
	RoleSalesPerson = "SalesPerson"
	RoleSupport     = "Support"
	RoleCustomer    = "Customer"
	RoleBaseUser    = "BaseUser"
)

// SeedRoles roles que deben existir siempre.
var SeedRoles = []string{RoleAdmin, RoleManager, RoleEmployee, RoleSalesPerson, RoleSupport}

// User credencial de acceso. Los roles viven en user_roles.
type User struct {
	ID                  string
	Email               string
	FirstName           string
	LastName            string
	PasswordHash        string // bcrypt
	ResetToken          *string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           *time.Time
	DeletedAt           *time.Time
}

func (u *User) IsDeleted() bool { return u.DeletedAt != nil }

// Role rol con nombre único.
type Role struct {
	ID   string
	Name string
}
