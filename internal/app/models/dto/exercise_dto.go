package dto

import "github.com/oguzk/fitpulse/internal/app/models"

// CreateExerciseRequest is the payload for adding an exercise to the catalog
type CreateExerciseRequest struct {
	Name              string                    `json:"name" binding:"required" example:"Barbell Squat"`
	Description       string                    `json:"description,omitempty"`
	MuscleGroups      []string                  `json:"muscleGroups" binding:"required"`
	Difficulty        models.ExerciseDifficulty `json:"difficulty" binding:"required" example:"intermediate"`
	CaloriesPerMinute float64                   `json:"caloriesPerMinute,omitempty" example:"8.5"`
	Instructions      *string                   `json:"instructions,omitempty"`
	VideoURL          *string                   `json:"videoUrl,omitempty"`
	ImageURL          *string                   `json:"imageUrl,omitempty"`
}

// UpdateExerciseRequest carries the mutable exercise fields. Nil fields
// are left unchanged.
type UpdateExerciseRequest struct {
	Name              *string                    `json:"name,omitempty"`
	Description       *string                    `json:"description,omitempty"`
	MuscleGroups      []string                   `json:"muscleGroups,omitempty"`
	Difficulty        *models.ExerciseDifficulty `json:"difficulty,omitempty"`
	CaloriesPerMinute *float64                   `json:"caloriesPerMinute,omitempty"`
	Instructions      *string                    `json:"instructions,omitempty"`
	VideoURL          *string                    `json:"videoUrl,omitempty"`
	ImageURL          *string                    `json:"imageUrl,omitempty"`
}

// ExerciseFilter narrows catalog listings
type ExerciseFilter struct {
	Difficulty  models.ExerciseDifficulty `form:"difficulty"`
	MuscleGroup string                    `form:"muscleGroup"`
	Search      string                    `form:"search"`
}
