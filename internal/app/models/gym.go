package models

import "time"

// Gym defines the gym model based on the 'gyms' table
type Gym struct {
	ID                       string    `json:"id" db:"id"`
	Name                     string    `json:"name" db:"name"`
	Description              string    `json:"description" db:"description"`
	Address                  string    `json:"address" db:"address"`
	City                     string    `json:"city" db:"city"`
	Phone                    string    `json:"phone" db:"phone"`
	Email                    string    `json:"email" db:"email"`
	Capacity                 int       `json:"capacity" db:"capacity"`
	Equipment                []string  `json:"equipment" db:"equipment"`
	SpecializedExerciseTypes []string  `json:"specializedExerciseTypes" db:"specialized_exercise_types"`
	Status                   GymStatus `json:"status" db:"status"`
	OwnerID                  string    `json:"ownerId" db:"owner_id"`
	CreatedAt                time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt                time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Owner *User `json:"owner,omitempty"`
}
