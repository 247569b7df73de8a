package dto

// UpdateProfileRequest carries the mutable profile fields. Nil fields are
// left unchanged.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" example:"Jane"`
	LastName  *string `json:"lastName,omitempty" example:"Doe"`
}

// ChangePasswordRequest is the payload for rotating a password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserStatsResponse summarizes a user's accumulated activity
type UserStatsResponse struct {
	UserID              string `json:"userId"`
	TotalPoints         int    `json:"totalPoints"`
	CompletedChallenges int    `json:"completedChallenges"`
	ActiveChallenges    int    `json:"activeChallenges"`
	TotalWorkouts       int    `json:"totalWorkouts"`
	BadgeCount          int    `json:"badgeCount"`
}
