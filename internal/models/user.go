// Package models contains data structures for the application's domain models.
package models

import "time"

// Account is the authentication core of a user: identity and credentials.
type Account struct {
	Username string `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;size:254;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

// Profile holds the application-specific attributes collected at sign-up.
type Profile struct {
	Age int `gorm:"not null" json:"age"`
}

// User represents a registered author in the Newsroom application.
type User struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	Account   `gorm:"embedded"`
	Profile   `gorm:"embedded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
