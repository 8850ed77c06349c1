// Package user holds the User entity and its value objects.
package user

import (
	"time"
)

// User is a registered account. Users are immutable once created.
type User struct {
	id        ID
	email     Email
	createdAt time.Time
}

// New creates a User for the given raw email address.
func New(email string) (*User, error) {
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &User{
		id:        NewID(),
		email:     e,
		createdAt: time.Now().UTC(),
	}, nil
}

// ID returns the user identifier.
func (u *User) ID() ID { return u.id }

// Email returns the normalized email.
func (u *User) Email() Email { return u.email }

// CreatedAt returns the registration time.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Snapshot is the persisted form of a User.
type Snapshot struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Snapshot exports the user's state for storage.
func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:        u.id.String(),
		Email:     u.email.String(),
		CreatedAt: u.createdAt,
	}
}

// Rehydrate rebuilds a User from stored state, re-checking its invariants.
func Rehydrate(s Snapshot) (*User, error) {
	id, err := ParseID(s.ID)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	return &User{id: id, email: email, createdAt: s.CreatedAt.UTC()}, nil
}
