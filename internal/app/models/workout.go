package models

import "time"

// Workout defines a completed workout session based on the 'workouts' table
type Workout struct {
	ID              string     `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	CompletionDate  *time.Time `json:"completionDate,omitempty" db:"completion_date"`
	Duration        int        `json:"duration" db:"duration"` // minutes
	Difficulty      string     `json:"difficulty" db:"difficulty"`
	CaloriesBurned  int        `json:"caloriesBurned" db:"calories_burned"`
	UserID          string     `json:"userId" db:"user_id"`
	ParticipationID *string    `json:"participationId,omitempty" db:"participation_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}
