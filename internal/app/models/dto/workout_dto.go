package dto

import "github.com/oguzk/fitpulse/internal/app/models"

// CreateWorkoutRequest is the payload for recording a workout. When
// ParticipationID is set the workout also advances that challenge
// participation's progress.
type CreateWorkoutRequest struct {
	Name            string  `json:"name" binding:"required" example:"Morning Run"`
	Duration        int     `json:"duration" binding:"required,min=1" example:"45"`
	Difficulty      string  `json:"difficulty,omitempty" example:"medium"`
	CaloriesBurned  int     `json:"caloriesBurned,omitempty" example:"380"`
	CompletionDate  *string `json:"completionDate,omitempty" example:"2026-08-28T07:30:00Z"`
	ParticipationID *string `json:"participationId,omitempty"`
}

// WorkoutListResponse wraps a workout listing with its count
type WorkoutListResponse struct {
	Count    int               `json:"count"`
	Workouts []*models.Workout `json:"workouts"`
}
