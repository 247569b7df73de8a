package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/repositories"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
	"github.com/oguzk/fitpulse/internal/pkg/auth"
)

// UserService defines the interface for user profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
	GetStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo          repositories.IUserRepository
	participationRepo repositories.IParticipationRepository
	workoutRepo       repositories.IWorkoutRepository
	badgeRepo         repositories.IBadgeRepository
	logger            zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	participationRepo repositories.IParticipationRepository,
	workoutRepo repositories.IWorkoutRepository,
	badgeRepo repositories.IBadgeRepository,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:          userRepo,
		participationRepo: participationRepo,
		workoutRepo:       workoutRepo,
		badgeRepo:         badgeRepo,
		logger:            logger,
	}
}

// GetProfile retrieves a user's profile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields of the request to the profile
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	firstName := user.FirstName
	lastName := user.LastName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}
	if firstName == "" || lastName == "" {
		return nil, apperrors.NewValidationError("Name fields cannot be empty")
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, firstName, lastName); err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	return user, nil
}

// ChangePassword verifies the current password and replaces it
func (s *userServiceImpl) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("userId", userID).Msg("Password changed")
	return nil
}

// GetStats aggregates a user's lifetime activity
func (s *userServiceImpl) GetStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.participationRepo.CountByUserIDAndStatus(ctx, userID, models.ParticipationCompleted)
	if err != nil {
		return nil, err
	}

	joined, err := s.participationRepo.CountByUserIDAndStatus(ctx, userID, models.ParticipationJoined)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.participationRepo.CountByUserIDAndStatus(ctx, userID, models.ParticipationInProgress)
	if err != nil {
		return nil, err
	}

	workouts, err := s.workoutRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	badges, err := s.badgeRepo.CountUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserStatsResponse{
		UserID:              user.ID,
		TotalPoints:         user.TotalPoints,
		CompletedChallenges: completed,
		ActiveChallenges:    joined + inProgress,
		TotalWorkouts:       workouts,
		BadgeCount:          badges,
	}, nil
}
