package models

import "time"

// Registration is identified by its (UserID, EventID) pair; there is no
// separate lifecycle state, a registration either exists or it does not.
type Registration struct {
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `json:"user,omitempty"`
	Event     *Event    `json:"event,omitempty"`
}

// UserIdentity is the tagged request shape for register: either an existing
// user id, or a name/email pair that creates the user on first sight.
type UserIdentity struct {
	UserID string
	Name   string
	Email  string
}

func (u UserIdentity) ByID() bool {
	return u.UserID != ""
}
