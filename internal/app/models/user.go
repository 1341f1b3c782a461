package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Siti Rahma"`                      // Display name
	Email     string    `json:"email" db:"email" example:"siti@example.com"`              // Unique login email
	Password  string    `json:"-" db:"password_hash"`                                     // bcrypt hash, never serialized
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Registration time
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-01T10:00:00Z"`
}
