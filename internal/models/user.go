package models

import "fmt"

// User roles. Role is carried on the token but has no enforcement effect yet.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a staff account. Password holds the bcrypt hash and never
// appears in JSON.
type User struct {
	Record
	Email    string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password;not null" json:"-"`
	Role     string `gorm:"column:role" json:"role"`
}

func (User) TableName() string { return "users" }

// Validate applies defaults and checks required fields and enums.
func (u *User) Validate() error {
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if u.Password == "" {
		return fmt.Errorf("password is required")
	}
	if !oneOf(u.Role, RoleUser, RoleAdmin) {
		return fmt.Errorf("role must be one of %s, %s", RoleUser, RoleAdmin)
	}
	return nil
}
