package models

// Identity is the caller as seen by everything behind the auth gate.
// It never carries the password hash or relationship sets.
type Identity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// PublicProfile is what one user is allowed to see about another.
type PublicProfile struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Profile   Profile `json:"profile"`
	AvatarURL string  `json:"avatar_url,omitempty"`
}

// PublicProfileOf projects u onto a [PublicProfile] without a resolved
// avatar URL.
func PublicProfileOf(u User) PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Profile:  u.Profile,
	}
}
