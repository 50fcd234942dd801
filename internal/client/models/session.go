// Package models defines the data types exchanged between the Rapihin client
// components: the session, staged files, format requests and results, and
// read-only server projections.
package models

// User is the authenticated user's profile as returned by the server.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Session is the current authentication state. User is present iff Credential
// is present and was accepted by the server.
type Session struct {
	Credential string
	User       *User
}

// Authenticated reports whether the session holds a credential.
func (s Session) Authenticated() bool {
	return s.Credential != ""
}
