package services

import (
	"github.com/rs/zerolog"
	"github.com/oguzk/fitpulse/internal/app/repositories"
	"github.com/oguzk/fitpulse/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService         AuthService
	UserService         UserService
	GymService          GymService
	ExerciseService     ExerciseService
	ChallengeService    ChallengeService
	WorkoutService      WorkoutService
	NotificationService NotificationService
	BadgeService        BadgeService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	notificationService := NewNotificationService(repos.NotificationRepository, logger)
	badgeService := NewBadgeService(
		repos.BadgeRepository,
		repos.UserRepository,
		repos.ParticipationRepository,
		repos.WorkoutRepository,
		notificationService,
		logger,
	)
	challengeService := NewChallengeService(
		repos.ChallengeRepository,
		repos.ParticipationRepository,
		repos.UserRepository,
		repos.GymRepository,
		repos.ExerciseRepository,
		notificationService,
		badgeService,
		logger,
	)

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, jwtService, logger),
		UserService:         NewUserService(repos.UserRepository, repos.ParticipationRepository, repos.WorkoutRepository, repos.BadgeRepository, logger),
		GymService:          NewGymService(repos.GymRepository, repos.UserRepository, notificationService, logger),
		ExerciseService:     NewExerciseService(repos.ExerciseRepository, logger),
		ChallengeService:    challengeService,
		WorkoutService:      NewWorkoutService(repos.WorkoutRepository, challengeService, logger),
		NotificationService: notificationService,
		BadgeService:        badgeService,
	}
}
