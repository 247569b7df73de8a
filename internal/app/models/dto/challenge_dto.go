package dto

import "github.com/oguzk/fitpulse/internal/app/models"

// CreateChallengeRequest is the payload for creating a challenge. Dates
// are RFC 3339 strings. Pointer fields let the service distinguish an
// absent field from a zero value.
type CreateChallengeRequest struct {
	Title                  string                      `json:"title" example:"30 Day Cardio Blast"`
	Description            string                      `json:"description,omitempty"`
	Type                   models.ChallengeType        `json:"type" example:"individual"`
	Difficulty             models.ChallengeDifficulty  `json:"difficulty" example:"medium"`
	Objectives             *models.ChallengeObjectives `json:"objectives,omitempty"`
	StartDate              string                      `json:"startDate" example:"2026-09-01T00:00:00Z"`
	EndDate                string                      `json:"endDate" example:"2026-09-30T23:59:59Z"`
	PointsReward           *int                        `json:"pointsReward" example:"500"`
	MaxParticipants        *int                        `json:"maxParticipants,omitempty" example:"50"`
	IsPublic               *bool                       `json:"isPublic,omitempty"`
	GymID                  *string                     `json:"gymId,omitempty"`
	RecommendedExerciseIDs []string                    `json:"recommendedExerciseIds,omitempty"`
}

// UpdateChallengeRequest carries the mutable challenge fields. Nil
// fields are left unchanged.
type UpdateChallengeRequest struct {
	Title           *string                     `json:"title,omitempty"`
	Description     *string                     `json:"description,omitempty"`
	Difficulty      *models.ChallengeDifficulty `json:"difficulty,omitempty"`
	Objectives      *models.ChallengeObjectives `json:"objectives,omitempty"`
	EndDate         *string                     `json:"endDate,omitempty"`
	MaxParticipants *int                        `json:"maxParticipants,omitempty"`
	Status          *models.ChallengeStatus     `json:"status,omitempty"`
}

// ChallengeFilter narrows challenge listings. Listings always restrict
// to active challenges; status is not a caller-facing filter.
type ChallengeFilter struct {
	Type       models.ChallengeType       `form:"type"`
	Difficulty models.ChallengeDifficulty `form:"difficulty"`
	GymID      string                     `form:"gymId"`
	IsPublic   *bool                      `form:"isPublic"`
}

// ChallengeListResponse wraps a challenge listing with its count
type ChallengeListResponse struct {
	Count      int                 `json:"count"`
	Challenges []*models.Challenge `json:"challenges"`
}

// ParticipationListResponse wraps a participation listing with its count
type ParticipationListResponse struct {
	Count          int                     `json:"count"`
	Participations []*models.Participation `json:"participations"`
}
