package domain

import "time"

// Role represents a user's role in the application.
type Role string

const (
	RoleUser      Role = "User"
	RoleModerator Role = "Moderator"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleModerator
}

// User represents a registered account.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID          int64
	Email       string
	Nickname    string
	Password    string
	Role        Role
	JokeBalance int
}

// Joke represents a joke owned by a user. Rating is the running
// merged rating, 0 until the first rating arrives.
type Joke struct {
	ID      int64
	Title   string
	Body    string
	OwnerID int64
	Created time.Time
	Rating  float64
}

// Identity is the authenticated principal attached to a request.
// It is populated once per request by the session middleware and
// passed explicitly into every service call that needs it.
type Identity struct {
	UserID      int64
	Email       string
	Nickname    string
	Role        Role
	JokeBalance int
}

// IsModerator reports whether the identity carries the moderator role.
func (id Identity) IsModerator() bool {
	return id.Role == RoleModerator
}
