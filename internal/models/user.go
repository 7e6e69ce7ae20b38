package models

// Role describes the permission tier of a signed-in user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents the current signed-in identity.
//
// There is no credential material here: sign-in never verifies a password,
// so a User carries only what the dashboard needs to attribute actions.
type User struct {
	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// Email is the unique identity key, always stored lowercase.
	Email string `json:"email"`

	// Role is either RoleAdmin or RoleUser.
	Role Role `json:"role"`
}
