package role

import (
	"fmt"
	"strings"
)

type UserRole string

const Admin UserRole = "admin"
const SME UserRole = "sme"
const Collaborator UserRole = "collaborator"

// Default is the role assigned on registration when none is chosen
const Default = Collaborator

// Roles lists the roles a user can pick when registering
var Roles = []UserRole{SME, Collaborator, Admin}

// Valid reports whether the role is one the API knows about
func (r UserRole) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Label is the text shown on the user's role badge
func (r UserRole) Label() string {
	return strings.ToUpper(string(r))
}

// BadgeClass is the CSS class list of the user's role badge
func (r UserRole) BadgeClass() string {
	return fmt.Sprintf("role-badge role-%s", r)
}
