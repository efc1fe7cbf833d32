package models

// Role of a portal account.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleCustomer Role = "customer"
)

// User is a portal account, employee or customer. The JSON field names match
// the records already sitting in existing stores, so they must not change.
// Email doubles as the login key but is not enforced unique.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Phone string `json:"phone,omitempty"`
}
