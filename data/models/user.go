package models

// User roles. Anything other than admin registers as a student.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User lives in the directory, keyed by email with case-sensitive exact
// match. The password is stored as plaintext, matching the source system;
// it must never cross the directory boundary, so every caller-facing path
// goes through Safe().
type User struct {
	Name     string `json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// SafeUser is the caller-facing view of a User, with the password stripped.
type SafeUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (u User) Safe() SafeUser {
	return SafeUser{Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role}
}
