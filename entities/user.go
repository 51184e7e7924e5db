package entities

import (
	"github.com/sedtender/tender_portal/config/role"
)

// User is the struct to store the signed in user as reported by the API
type User struct {
	ID       interface{}   `json:"id,omitempty"`
	FullName string        `json:"full_name"`
	Email    string        `json:"email,omitempty"`
	Role     role.UserRole `json:"role"`
}

// RegisterRequest is the payload sent to the API to create a user
type RegisterRequest struct {
	FullName string        `json:"full_name"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Role     role.UserRole `json:"role"`
}

// Credentials is the payload sent to the API to log a user in
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
