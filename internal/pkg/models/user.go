package models

// User is the backend-owned account record. The client only ever holds a
// read-only cached copy inside the session.
type User struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the cached role is admin. The backend re-validates
// the role on every admin endpoint; this only drives client-side redirects.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
