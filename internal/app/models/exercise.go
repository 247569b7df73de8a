package models

import "time"

// Exercise defines the exercise model based on the 'exercises' table
type Exercise struct {
	ID                string             `json:"id" db:"id"`
	Name              string             `json:"name" db:"name"`
	Description       string             `json:"description" db:"description"`
	MuscleGroups      []string           `json:"muscleGroups" db:"muscle_groups"`
	Difficulty        ExerciseDifficulty `json:"difficulty" db:"difficulty"`
	CaloriesPerMinute float64            `json:"caloriesPerMinute" db:"calories_per_minute"`
	Instructions      *string            `json:"instructions,omitempty" db:"instructions"`
	VideoURL          *string            `json:"videoUrl,omitempty" db:"video_url"`
	ImageURL          *string            `json:"imageUrl,omitempty" db:"image_url"`
	CreatedByID       string             `json:"createdById" db:"created_by_id"`
	CreatedAt         time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time          `json:"updatedAt" db:"updated_at"`

	// Related entities
	CreatedBy *User `json:"createdBy,omitempty"`
}
