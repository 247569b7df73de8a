package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/repositories"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// WorkoutService defines the interface for workout operations
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID string, req *dto.CreateWorkoutRequest) (*models.Workout, error)
	GetMyWorkouts(ctx context.Context, userID string) (*dto.WorkoutListResponse, error)
	DeleteWorkout(ctx context.Context, workoutID, userID string) error
}

// workoutServiceImpl implements WorkoutService
type workoutServiceImpl struct {
	workoutRepo repositories.IWorkoutRepository
	challenges  ChallengeService
	logger      zerolog.Logger
}

// NewWorkoutService creates a new WorkoutService
func NewWorkoutService(workoutRepo repositories.IWorkoutRepository, challenges ChallengeService, logger zerolog.Logger) WorkoutService {
	return &workoutServiceImpl{
		workoutRepo: workoutRepo,
		challenges:  challenges,
		logger:      logger,
	}
}

// CreateWorkout records a workout. When the workout targets a challenge
// participation it also advances that participation's progress.
func (s *workoutServiceImpl) CreateWorkout(ctx context.Context, userID string, req *dto.CreateWorkoutRequest) (*models.Workout, error) {
	if req.Duration <= 0 {
		return nil, apperrors.NewValidationError("Duration must be positive")
	}
	if req.CaloriesBurned < 0 {
		return nil, apperrors.NewValidationError("Calories burned cannot be negative")
	}

	var completionDate *time.Time
	if req.CompletionDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.CompletionDate)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid date format")
		}
		completionDate = &parsed
	}

	workout := &models.Workout{
		ID:              uuid.New().String(),
		Name:            req.Name,
		CompletionDate:  completionDate,
		Duration:        req.Duration,
		Difficulty:      req.Difficulty,
		CaloriesBurned:  req.CaloriesBurned,
		UserID:          userID,
		ParticipationID: req.ParticipationID,
	}

	// Progress is applied before the workout row is written so that an
	// invalid participation rejects the whole request.
	if req.ParticipationID != nil {
		if _, err := s.challenges.ApplyWorkout(ctx, userID, *req.ParticipationID, req.Duration, req.CaloriesBurned); err != nil {
			return nil, err
		}
	}

	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("workoutId", workout.ID).
		Str("userId", userID).
		Int("duration", workout.Duration).
		Msg("Workout recorded")
	return workout, nil
}

// GetMyWorkouts lists a user's workouts, newest first
func (s *workoutServiceImpl) GetMyWorkouts(ctx context.Context, userID string) (*dto.WorkoutListResponse, error) {
	workouts, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = []*models.Workout{}
	}
	return &dto.WorkoutListResponse{Count: len(workouts), Workouts: workouts}, nil
}

// DeleteWorkout removes a workout. Only the owner may delete it. Progress
// already applied to a participation is not rolled back.
func (s *workoutServiceImpl) DeleteWorkout(ctx context.Context, workoutID, userID string) error {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return err
	}
	if workout.UserID != userID {
		return apperrors.NewForbiddenError("Workout belongs to another user")
	}
	return s.workoutRepo.Delete(ctx, workoutID)
}
