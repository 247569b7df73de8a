package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/repositories"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// ExerciseService defines the interface for exercise catalog operations
type ExerciseService interface {
	CreateExercise(ctx context.Context, creatorID string, req *dto.CreateExerciseRequest) (*models.Exercise, error)
	GetExercises(ctx context.Context, filter *dto.ExerciseFilter) ([]*models.Exercise, error)
	GetExerciseByID(ctx context.Context, id string) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, exerciseID, requesterID string, requesterRole models.UserRole, req *dto.UpdateExerciseRequest) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID, requesterID string, requesterRole models.UserRole) error
}

// exerciseServiceImpl implements ExerciseService
type exerciseServiceImpl struct {
	exerciseRepo repositories.IExerciseRepository
	logger       zerolog.Logger
}

// NewExerciseService creates a new ExerciseService
func NewExerciseService(exerciseRepo repositories.IExerciseRepository, logger zerolog.Logger) ExerciseService {
	return &exerciseServiceImpl{
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

// CreateExercise adds an exercise to the catalog
func (s *exerciseServiceImpl) CreateExercise(ctx context.Context, creatorID string, req *dto.CreateExerciseRequest) (*models.Exercise, error) {
	if !req.Difficulty.IsValid() {
		return nil, apperrors.NewValidationError("Invalid difficulty")
	}
	if len(req.MuscleGroups) == 0 {
		return nil, apperrors.NewValidationError("At least one muscle group is required")
	}
	if req.CaloriesPerMinute < 0 {
		return nil, apperrors.NewValidationError("Calories per minute cannot be negative")
	}

	exercise := &models.Exercise{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Description:       req.Description,
		MuscleGroups:      req.MuscleGroups,
		Difficulty:        req.Difficulty,
		CaloriesPerMinute: req.CaloriesPerMinute,
		Instructions:      req.Instructions,
		VideoURL:          req.VideoURL,
		ImageURL:          req.ImageURL,
		CreatedByID:       creatorID,
	}

	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}

	s.logger.Info().Str("exerciseId", exercise.ID).Str("name", exercise.Name).Msg("Exercise created")
	return exercise, nil
}

// GetExercises lists catalog exercises matching the filter
func (s *exerciseServiceImpl) GetExercises(ctx context.Context, filter *dto.ExerciseFilter) ([]*models.Exercise, error) {
	if filter.Difficulty != "" && !filter.Difficulty.IsValid() {
		return nil, apperrors.NewValidationError("Invalid difficulty")
	}

	exercises, err := s.exerciseRepo.GetAll(ctx, filter.Difficulty, filter.MuscleGroup, filter.Search)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []*models.Exercise{}
	}
	return exercises, nil
}

// GetExerciseByID retrieves a catalog exercise
func (s *exerciseServiceImpl) GetExerciseByID(ctx context.Context, id string) (*models.Exercise, error) {
	return s.exerciseRepo.GetByID(ctx, id)
}

// UpdateExercise applies the non-nil fields of the request. Only the
// creator or an administrator may update an exercise.
func (s *exerciseServiceImpl) UpdateExercise(ctx context.Context, exerciseID, requesterID string, requesterRole models.UserRole, req *dto.UpdateExerciseRequest) (*models.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	if exercise.CreatedByID != requesterID && requesterRole != models.RoleSuperAdmin {
		return nil, apperrors.NewForbiddenError("Only the creator can update this exercise")
	}

	if req.Name != nil {
		exercise.Name = *req.Name
	}
	if req.Description != nil {
		exercise.Description = *req.Description
	}
	if req.MuscleGroups != nil {
		exercise.MuscleGroups = req.MuscleGroups
	}
	if req.Difficulty != nil {
		if !req.Difficulty.IsValid() {
			return nil, apperrors.NewValidationError("Invalid difficulty")
		}
		exercise.Difficulty = *req.Difficulty
	}
	if req.CaloriesPerMinute != nil {
		if *req.CaloriesPerMinute < 0 {
			return nil, apperrors.NewValidationError("Calories per minute cannot be negative")
		}
		exercise.CaloriesPerMinute = *req.CaloriesPerMinute
	}
	if req.Instructions != nil {
		exercise.Instructions = req.Instructions
	}
	if req.VideoURL != nil {
		exercise.VideoURL = req.VideoURL
	}
	if req.ImageURL != nil {
		exercise.ImageURL = req.ImageURL
	}

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// DeleteExercise removes an exercise from the catalog. Only the creator
// or an administrator may delete.
func (s *exerciseServiceImpl) DeleteExercise(ctx context.Context, exerciseID, requesterID string, requesterRole models.UserRole) error {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		return err
	}

	if exercise.CreatedByID != requesterID && requesterRole != models.RoleSuperAdmin {
		return apperrors.NewForbiddenError("Only the creator can delete this exercise")
	}

	return s.exerciseRepo.Delete(ctx, exerciseID)
}
