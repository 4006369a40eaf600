// Package models defines the portal's persisted data models: user accounts,
// the login session, and shipment records.
package models

// User is a registered account. Users are created by registration and
// mutated by profile updates; they are never deleted.
//
// Email is unique across all users (case-sensitive exact match).
// Password is stored and compared as plaintext; this portal deliberately
// has no real authentication security.
type User struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}

// Session is the subset of a User persisted while logged in. It is written
// wholesale on each login and removed on logout; at most one session exists
// at a time.
type Session struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	LoggedInAt string `json:"loggedInAt"`
}

// UserUpdate is a partial update of a User. Nil fields are left unchanged.
type UserUpdate struct {
	FullName *string
	Email    *string
	Password *string
}

// Apply merges the non-nil fields of the update into u.
func (upd UserUpdate) Apply(u *User) {
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
}
