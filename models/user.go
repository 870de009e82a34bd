package models

import "time"

// Role is the authorization level of an account.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Department is a fixed organisational unit code. DepartmentAll is a
// synthetic value used only for admin broadcasts and must never be stored
// on a profile row.
type Department string

const (
	DepartmentLS      Department = "LS"
	DepartmentOffice  Department = "Office"
	DepartmentHouse   Department = "House"
	DepartmentManager Department = "Manager"
	DepartmentAllBoss Department = "All Boss"
	DepartmentElNido  Department = "El Nido"
	DepartmentAll     Department = "All Departments"
)

// DefaultDepartment is assigned when registration metadata omits the
// department and when a user is synthesised from a bare session email.
const DefaultDepartment = DepartmentOffice

// Departments lists every assignable department, in display order.
// DepartmentAll is excluded: it is a broadcast target, not an assignment.
func Departments() []Department {
	return []Department{
		DepartmentLS,
		DepartmentOffice,
		DepartmentHouse,
		DepartmentManager,
		DepartmentAllBoss,
		DepartmentElNido,
	}
}

// IsAssignable reports whether d may be stored on a profile or task row.
func (d Department) IsAssignable() bool {
	for _, known := range Departments() {
		if d == known {
			return true
		}
	}
	return false
}

// User is the application-facing view of an authenticated person. It is
// derived from a Session plus a Profile row and is replaced wholesale on
// every reconciliation pass, never merged in place.
type User struct {
	// ID is the stable subject identifier issued by the auth backend.
	ID string `json:"id"`

	// Name is the display name, taken from the profile row or synthesised
	// from the session email's local part when no profile row exists.
	Name string `json:"name"`

	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Department Department `json:"department"`
}

// Profile is the durable per-user record held by the backend. It is created
// by the auth service when an identity is first registered; clients only
// read it and update the role field.
type Profile struct {
	// ID equals the auth subject identifier of the owning account.
	ID string `json:"id"`

	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Department Department `json:"department"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName returns the name of the database table backing the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// Account is the credential-bearing identity record owned by the auth
// backend. Sensitive fields must never leave the server process.
type Account struct {
	// ID is the UUID assigned at registration; it doubles as the JWT
	// subject and the profile primary key.
	ID string `json:"id"`

	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// EmailConfirmed reports whether the account has completed the
	// confirmation flow. Unconfirmed accounts cannot sign in while the
	// server runs with confirmation required.
	EmailConfirmed bool `json:"email_confirmed"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing the Account model.
func (a Account) TableName() string {
	return "users"
}
