package models

import "time"

// ChallengeProgress holds a participation's running totals against the
// challenge objectives. Stored as a JSONB document.
type ChallengeProgress struct {
	CurrentWorkouts      int     `json:"currentWorkouts"`
	CurrentCalories      int     `json:"currentCalories"`
	CurrentDuration      int     `json:"currentDuration"` // minutes
	CompletionPercentage float64 `json:"completionPercentage"`
}

// Participation links one user to one challenge. At most one row exists per
// (user, challenge) pair; re-joining after abandonment reactivates the row.
type Participation struct {
	ID           string              `json:"id" db:"id"`
	Status       ParticipationStatus `json:"status" db:"status"`
	Progress     ChallengeProgress   `json:"progress" db:"progress"`
	JoinedAt     time.Time           `json:"joinedAt" db:"joined_at"`
	CompletedAt  *time.Time          `json:"completedAt,omitempty" db:"completed_at"`
	PointsEarned int                 `json:"pointsEarned" db:"points_earned"`
	UserID       string              `json:"userId" db:"user_id"`
	ChallengeID  string              `json:"challengeId" db:"challenge_id"`

	// Related entities
	User      *User      `json:"user,omitempty"`
	Challenge *Challenge `json:"challenge,omitempty"`
}
