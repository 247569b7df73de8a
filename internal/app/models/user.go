package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID            string     `json:"id" db:"id" example:"5f0c1a4e-83dc-4c27-92a5-2f3a1f1f6d10"`
	Email         string     `json:"email" db:"email" example:"user@fitpulse.app"`
	Password      string     `json:"-" db:"password"` // Hashed, never serialized
	FirstName     string     `json:"firstName" db:"first_name" example:"John"`
	LastName      string     `json:"lastName" db:"last_name" example:"Doe"`
	Role          UserRole   `json:"role" db:"role" example:"client"`
	Status        UserStatus `json:"status" db:"status" example:"active"`
	EmailVerified bool       `json:"emailVerified" db:"email_verified" example:"false"`
	TotalPoints   int        `json:"totalPoints" db:"total_points" example:"150"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
