package domain

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// User is the profile snapshot returned by the bookstore API on login or
// registration and mirrored into the client store.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Session pairs the credential token with the user it belongs to. A token
// without a user snapshot (or the reverse) means logged out; the session
// service never produces one half without the other.
type Session struct {
	Token string `json:"-"`
	User  User   `json:"user"`
}

// IsAdmin reports whether the session belongs to an ADMIN user.
// A nil session (logged out) is never admin.
func (s *Session) IsAdmin() bool {
	return s != nil && s.User.Role == RoleAdmin
}
