package domain

import "time"

// Profile is the cached operator profile stored next to the session
// token. It mirrors what a real authentication service would return.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the explicit session object returned by the gate. It is
// an advisory, client-side artifact only; it carries no server-side
// validity and must not be treated as a security boundary.
type Session struct {
	Token     string    `json:"token"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
}
