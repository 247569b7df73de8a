package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	GymRepository           *GymRepository
	ExerciseRepository      *ExerciseRepository
	ChallengeRepository     *ChallengeRepository
	ParticipationRepository *ParticipationRepository
	WorkoutRepository       *WorkoutRepository
	BadgeRepository         *BadgeRepository
	NotificationRepository  *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		GymRepository:           NewGymRepository(db),
		ExerciseRepository:      NewExerciseRepository(db),
		ChallengeRepository:     NewChallengeRepository(db),
		ParticipationRepository: NewParticipationRepository(db),
		WorkoutRepository:       NewWorkoutRepository(db),
		BadgeRepository:         NewBadgeRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
	}
}
