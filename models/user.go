package models

import "time"

// User is the account aggregate: identity fields, the password hash and the
// profile value owned by the account.
// Relationship sets (connections, pending requests) are not carried on the
// struct; they live in the relation store and are loaded on demand.
type User struct {
	// ID is the immutable identifier assigned at registration (UUIDv7).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Username is the unique public handle (e.g. "john-doe").
	Username string `json:"username"`

	// Email is stored lowercased and trimmed; unique across all users.
	Email string `json:"email"`

	// PasswordHash is the bcrypt output. It is never serialized.
	PasswordHash string `json:"-"`

	// Profile is the descriptive part of the account, replaced as a whole
	// on every write.
	Profile Profile `json:"profile"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the read-only view of u that authenticated handlers
// receive through the request context.
func (u User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Avatar:   u.Profile.Avatar,
	}
}

// RegisterRequest carries the fields required to create an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest identifies a user either by Email or by Username.
// When both are present, Email is used.
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  PublicProfile `json:"user"`
	Token string        `json:"token"`
}
