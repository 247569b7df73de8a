package models

// UserRole defines the user role type
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleGymOwner   UserRole = "gym_owner"
	RoleClient     UserRole = "client"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleGymOwner, RoleClient:
		return true
	}
	return false
}

// UserStatus defines the account status
type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// GymStatus defines the gym approval state
type GymStatus string

const (
	GymStatusPending  GymStatus = "pending"
	GymStatusApproved GymStatus = "approved"
	GymStatusRejected GymStatus = "rejected"
)

// ChallengeType defines how a challenge is played
type ChallengeType string

const (
	ChallengeTypeIndividual ChallengeType = "individual"
	ChallengeTypeTeam       ChallengeType = "team"
	ChallengeTypeSocial     ChallengeType = "social"
)

// IsValid reports whether the type is one of the known challenge types.
func (t ChallengeType) IsValid() bool {
	switch t {
	case ChallengeTypeIndividual, ChallengeTypeTeam, ChallengeTypeSocial:
		return true
	}
	return false
}

// ChallengeDifficulty defines how hard a challenge is
type ChallengeDifficulty string

const (
	DifficultyEasy    ChallengeDifficulty = "easy"
	DifficultyMedium  ChallengeDifficulty = "medium"
	DifficultyHard    ChallengeDifficulty = "hard"
	DifficultyExtreme ChallengeDifficulty = "extreme"
)

// IsValid reports whether the difficulty is one of the known levels.
func (d ChallengeDifficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme:
		return true
	}
	return false
}

// ChallengeStatus defines the challenge lifecycle state
type ChallengeStatus string

const (
	ChallengeStatusActive    ChallengeStatus = "active"
	ChallengeStatusCompleted ChallengeStatus = "completed"
	ChallengeStatusCancelled ChallengeStatus = "cancelled"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s ChallengeStatus) IsValid() bool {
	switch s {
	case ChallengeStatusActive, ChallengeStatusCompleted, ChallengeStatusCancelled:
		return true
	}
	return false
}

// ParticipationStatus defines a user's state within a challenge
type ParticipationStatus string

const (
	ParticipationJoined     ParticipationStatus = "joined"
	ParticipationInProgress ParticipationStatus = "in_progress"
	ParticipationCompleted  ParticipationStatus = "completed"
	ParticipationAbandoned  ParticipationStatus = "abandoned"
)

// ExerciseDifficulty defines how demanding an exercise is
type ExerciseDifficulty string

const (
	ExerciseBeginner     ExerciseDifficulty = "beginner"
	ExerciseIntermediate ExerciseDifficulty = "intermediate"
	ExerciseAdvanced     ExerciseDifficulty = "advanced"
	ExerciseExpert       ExerciseDifficulty = "expert"
)

// IsValid reports whether the difficulty is one of the known levels.
func (d ExerciseDifficulty) IsValid() bool {
	switch d {
	case ExerciseBeginner, ExerciseIntermediate, ExerciseAdvanced, ExerciseExpert:
		return true
	}
	return false
}

// NotificationType defines the kind of event a notification describes
type NotificationType string

const (
	NotificationFriendRequest      NotificationType = "friend_request"
	NotificationChallengeInvite    NotificationType = "challenge_invite"
	NotificationBadgeAwarded       NotificationType = "badge_awarded"
	NotificationChallengeCompleted NotificationType = "challenge_completed"
	NotificationGymApproved        NotificationType = "gym_approved"
	NotificationGymRejected        NotificationType = "gym_rejected"
)
