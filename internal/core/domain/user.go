package domain

import "time"

// Role is the access profile a user holds in the decoration workflow.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleClient    Role = "client"
	RoleDecorator Role = "decorator"
	RoleLogistics Role = "logistics"
	RoleManager   Role = "manager"
)

// CollectionUsers is the document collection user records are written to.
const CollectionUsers = "users"

// User models a seeded account. ID doubles as the document ID.
type User struct {
	ID        string    `json:"id" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Name      string    `json:"name" validate:"required"`
	Phone     string    `json:"phone" validate:"required"`
	Role      Role      `json:"role" validate:"required,oneof=admin client decorator logistics manager"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Document returns the payload stored under the user's document ID.
func (u User) Document() map[string]any {
	return map[string]any{
		"email":     u.Email,
		"name":      u.Name,
		"phone":     u.Phone,
		"role":      string(u.Role),
		"createdAt": ToWireTimestamp(u.CreatedAt),
	}
}
