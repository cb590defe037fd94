package domain

import "time"

// Roles the remote API assigns to users. Authorization decisions
// compare against these values only.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the authenticated identity returned by the whoami endpoint.
// Owned by the session store while a session is active.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
