package models

import "time"

// ChallengeObjectives holds the optional numeric targets a challenge defines
// for completion. Stored as a JSONB document, not normalized columns.
type ChallengeObjectives struct {
	TargetDuration *int `json:"targetDuration,omitempty"` // minutes
	TargetCalories *int `json:"targetCalories,omitempty"`
	TargetWorkouts *int `json:"targetWorkouts,omitempty"`
}

// HasTargets reports whether at least one objective target is set.
func (o ChallengeObjectives) HasTargets() bool {
	return o.TargetDuration != nil || o.TargetCalories != nil || o.TargetWorkouts != nil
}

// Challenge defines the challenge model based on the 'challenges' table
type Challenge struct {
	ID              string              `json:"id" db:"id"`
	Title           string              `json:"title" db:"title"`
	Description     string              `json:"description" db:"description"`
	Type            ChallengeType       `json:"type" db:"type"`
	Difficulty      ChallengeDifficulty `json:"difficulty" db:"difficulty"`
	Status          ChallengeStatus     `json:"status" db:"status"`
	Objectives      ChallengeObjectives `json:"objectives" db:"objectives"`
	StartDate       time.Time           `json:"startDate" db:"start_date"`
	EndDate         time.Time           `json:"endDate" db:"end_date"`
	MaxParticipants *int                `json:"maxParticipants,omitempty" db:"max_participants"`
	PointsReward    int                 `json:"pointsReward" db:"points_reward"`
	IsPublic        bool                `json:"isPublic" db:"is_public"`
	CreatorID       string              `json:"creatorId" db:"creator_id"`
	GymID           *string             `json:"gymId,omitempty" db:"gym_id"`
	CreatedAt       time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time           `json:"updatedAt" db:"updated_at"`

	// Related entities
	Creator              *User       `json:"creator,omitempty"`
	Gym                  *Gym        `json:"gym,omitempty"`
	RecommendedExercises []*Exercise `json:"recommendedExercises,omitempty"`

	// ParticipantCount is the number of non-abandoned participations.
	// Computed, not stored.
	ParticipantCount int `json:"participantCount"`
}
