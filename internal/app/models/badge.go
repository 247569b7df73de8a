package models

import "time"

// Badge defines an achievement users can earn
type Badge struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"` // emoji or icon identifier
	PointsValue int       `json:"pointsValue" db:"points_value"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Badge rule types evaluated against a user's lifetime stats.
const (
	BadgeRuleChallengesCompleted = "challenges_completed"
	BadgeRuleTotalPoints         = "total_points"
	BadgeRuleTotalWorkouts       = "total_workouts"
)

// BadgeRule defines a condition that awards a badge when satisfied
type BadgeRule struct {
	ID          string `json:"id" db:"id"`
	RuleType    string `json:"ruleType" db:"rule_type"`
	Operator    string `json:"operator" db:"operator"` // one of >=, >, =, <, <=
	TargetValue int    `json:"targetValue" db:"target_value"`
	Description string `json:"description" db:"description"`
	BadgeID     string `json:"badgeId" db:"badge_id"`
}

// UserBadge records a badge awarded to a user
type UserBadge struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	BadgeID   string    `json:"badgeId" db:"badge_id"`
	AwardedAt time.Time `json:"awardedAt" db:"awarded_at"`

	// Related entities
	Badge *Badge `json:"badge,omitempty"`
}
