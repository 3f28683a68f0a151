// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system. Email is unique and doubles as the
// login identifier. PasswordHash stores the bcrypt digest and is never
// serialized into a response.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

// AuthorRef is the compact author representation embedded in post and comment
// responses.
type AuthorRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ref returns the embeddable author reference for this user.
func (u *User) Ref() *AuthorRef {
	return &AuthorRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
