package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/repositories"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
	"github.com/oguzk/fitpulse/internal/pkg/dberrors"
)

// ChallengeService defines the interface for challenge operations
type ChallengeService interface {
	CreateChallenge(ctx context.Context, creatorID string, req *dto.CreateChallengeRequest) (*models.Challenge, error)
	GetChallenges(ctx context.Context, requesterRole models.UserRole, filter *dto.ChallengeFilter) (*dto.ChallengeListResponse, error)
	GetChallengeByID(ctx context.Context, id string) (*models.Challenge, error)
	GetMyChallenges(ctx context.Context, creatorID string) (*dto.ChallengeListResponse, error)
	UpdateChallenge(ctx context.Context, challengeID, requesterID string, requesterRole models.UserRole, req *dto.UpdateChallengeRequest) (*models.Challenge, error)
	CancelChallenge(ctx context.Context, challengeID, requesterID string, requesterRole models.UserRole) error
	JoinChallenge(ctx context.Context, challengeID, userID string) (*models.Participation, error)
	LeaveChallenge(ctx context.Context, challengeID, userID string) (*models.Participation, error)
	GetParticipants(ctx context.Context, challengeID string) (*dto.ParticipationListResponse, error)
	GetMyParticipations(ctx context.Context, userID string) (*dto.ParticipationListResponse, error)
	ApplyWorkout(ctx context.Context, userID, participationID string, duration, calories int) (*models.Participation, error)
}

// challengeServiceImpl implements ChallengeService
type challengeServiceImpl struct {
	challengeRepo     repositories.IChallengeRepository
	participationRepo repositories.IParticipationRepository
	userRepo          repositories.IUserRepository
	gymRepo           repositories.IGymRepository
	exerciseRepo      repositories.IExerciseRepository
	notifications     NotificationService
	badges            BadgeService
	now               func() time.Time
	logger            zerolog.Logger
}

// NewChallengeService creates a new ChallengeService
func NewChallengeService(
	challengeRepo repositories.IChallengeRepository,
	participationRepo repositories.IParticipationRepository,
	userRepo repositories.IUserRepository,
	gymRepo repositories.IGymRepository,
	exerciseRepo repositories.IExerciseRepository,
	notifications NotificationService,
	badges BadgeService,
	logger zerolog.Logger,
) ChallengeService {
	return &challengeServiceImpl{
		challengeRepo:     challengeRepo,
		participationRepo: participationRepo,
		userRepo:          userRepo,
		gymRepo:           gymRepo,
		exerciseRepo:      exerciseRepo,
		notifications:     notifications,
		badges:            badges,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateChallenge validates and persists a new challenge in active status
func (s *challengeServiceImpl) CreateChallenge(ctx context.Context, creatorID string, req *dto.CreateChallengeRequest) (*models.Challenge, error) {
	if req.Title == "" || req.Description == "" || req.Type == "" || req.Difficulty == "" ||
		req.Objectives == nil || req.StartDate == "" || req.EndDate == "" || req.PointsReward == nil {
		return nil, apperrors.NewValidationError("Missing required fields")
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("Invalid challenge type")
	}
	if !req.Difficulty.IsValid() {
		return nil, apperrors.NewValidationError("Invalid difficulty level")
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date format")
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date format")
	}
	if !endDate.After(startDate) {
		return nil, apperrors.NewValidationError("End date must be after start date")
	}
	if startDate.Before(s.now()) {
		return nil, apperrors.NewValidationError("Start date cannot be in the past")
	}

	if *req.PointsReward < 0 {
		return nil, apperrors.NewValidationError("Points reward cannot be negative")
	}
	if req.MaxParticipants != nil && *req.MaxParticipants <= 0 {
		return nil, apperrors.NewValidationError("Maximum participants must be positive")
	}

	if _, err := s.userRepo.GetByID(ctx, creatorID); err != nil {
		return nil, err
	}

	if req.GymID != nil {
		gym, err := s.gymRepo.GetByID(ctx, *req.GymID)
		if err != nil {
			return nil, err
		}
		if gym.Status != models.GymStatusApproved {
			return nil, apperrors.NewConflictError("Gym must be approved to create challenges")
		}
	}

	var exercises []*models.Exercise
	if len(req.RecommendedExerciseIDs) > 0 {
		exercises, err = s.exerciseRepo.GetByIDs(ctx, req.RecommendedExerciseIDs)
		if err != nil {
			return nil, err
		}
		if len(exercises) != len(req.RecommendedExerciseIDs) {
			return nil, apperrors.ErrExerciseNotFound
		}
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	challenge := &models.Challenge{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		Difficulty:      req.Difficulty,
		Status:          models.ChallengeStatusActive,
		Objectives:      *req.Objectives,
		StartDate:       startDate,
		EndDate:         endDate,
		MaxParticipants: req.MaxParticipants,
		PointsReward:    *req.PointsReward,
		IsPublic:        isPublic,
		CreatorID:       creatorID,
		GymID:           req.GymID,
	}

	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	if len(req.RecommendedExerciseIDs) > 0 {
		if err := s.challengeRepo.SetRecommendedExercises(ctx, challenge.ID, req.RecommendedExerciseIDs); err != nil {
			return nil, err
		}
		challenge.RecommendedExercises = exercises
	}

	s.logger.Info().
		Str("challengeId", challenge.ID).
		Str("creatorId", creatorID).
		Str("type", string(challenge.Type)).
		Msg("Challenge created")
	return challenge, nil
}

// GetChallenges lists active challenges with their creator and gym
// inlined. Administrators see private challenges as well; everyone else
// only sees public ones.
func (s *challengeServiceImpl) GetChallenges(ctx context.Context, requesterRole models.UserRole, filter *dto.ChallengeFilter) (*dto.ChallengeListResponse, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, apperrors.NewValidationError("Invalid challenge type")
	}
	if filter.Difficulty != "" && !filter.Difficulty.IsValid() {
		return nil, apperrors.NewValidationError("Invalid difficulty level")
	}

	challenges, err := s.challengeRepo.GetAll(ctx, repositories.ChallengeFilter{
		Type:       filter.Type,
		Difficulty: filter.Difficulty,
		Status:     models.ChallengeStatusActive,
		GymID:      filter.GymID,
		IsPublic:   filter.IsPublic,
		PublicOnly: requesterRole != models.RoleSuperAdmin,
	})
	if err != nil {
		return nil, err
	}

	for _, challenge := range challenges {
		if creator, err := s.userRepo.GetByID(ctx, challenge.CreatorID); err == nil {
			challenge.Creator = creator
		}
		if challenge.GymID != nil {
			if gym, err := s.gymRepo.GetByID(ctx, *challenge.GymID); err == nil {
				challenge.Gym = gym
			}
		}
	}

	if challenges == nil {
		challenges = []*models.Challenge{}
	}
	return &dto.ChallengeListResponse{Count: len(challenges), Challenges: challenges}, nil
}

// GetChallengeByID retrieves a challenge with its creator, gym,
// recommended exercises and current participant count
func (s *challengeServiceImpl) GetChallengeByID(ctx context.Context, id string) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if creator, err := s.userRepo.GetByID(ctx, challenge.CreatorID); err == nil {
		challenge.Creator = creator
	}
	if challenge.GymID != nil {
		if gym, err := s.gymRepo.GetByID(ctx, *challenge.GymID); err == nil {
			challenge.Gym = gym
		}
	}

	exerciseIDs, err := s.challengeRepo.GetRecommendedExerciseIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(exerciseIDs) > 0 {
		exercises, err := s.exerciseRepo.GetByIDs(ctx, exerciseIDs)
		if err != nil {
			return nil, err
		}
		challenge.RecommendedExercises = exercises
	}

	count, err := s.participationRepo.CountActiveByChallengeID(ctx, id)
	if err != nil {
		return nil, err
	}
	challenge.ParticipantCount = count

	return challenge, nil
}

// GetMyChallenges lists the challenges a user created
func (s *challengeServiceImpl) GetMyChallenges(ctx context.Context, creatorID string) (*dto.ChallengeListResponse, error) {
	challenges, err := s.challengeRepo.GetByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if challenges == nil {
		challenges = []*models.Challenge{}
	}
	return &dto.ChallengeListResponse{Count: len(challenges), Challenges: challenges}, nil
}

// UpdateChallenge applies the non-nil fields of the request. Only the
// creator or an administrator may update a challenge.
func (s *challengeServiceImpl) UpdateChallenge(ctx context.Context, challengeID, requesterID string, requesterRole models.UserRole, req *dto.UpdateChallengeRequest) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	if challenge.CreatorID != requesterID && requesterRole != models.RoleSuperAdmin {
		return nil, apperrors.NewForbiddenError("Only the creator can update this challenge")
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperrors.NewValidationError("Title cannot be empty")
		}
		challenge.Title = *req.Title
	}
	if req.Description != nil {
		challenge.Description = *req.Description
	}
	if req.Difficulty != nil {
		if !req.Difficulty.IsValid() {
			return nil, apperrors.NewValidationError("Invalid difficulty level")
		}
		challenge.Difficulty = *req.Difficulty
	}
	if req.Objectives != nil {
		challenge.Objectives = *req.Objectives
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid date format")
		}
		if !endDate.After(challenge.StartDate) {
			return nil, apperrors.NewValidationError("End date must be after start date")
		}
		challenge.EndDate = endDate
	}
	if req.MaxParticipants != nil {
		if *req.MaxParticipants <= 0 {
			return nil, apperrors.NewValidationError("Maximum participants must be positive")
		}
		challenge.MaxParticipants = req.MaxParticipants
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("Invalid status")
		}
		// A closed challenge stays closed.
		if challenge.Status != models.ChallengeStatusActive && *req.Status != challenge.Status {
			return nil, apperrors.NewConflictError("Challenge is no longer active")
		}
		challenge.Status = *req.Status
	}

	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

// CancelChallenge marks a challenge as cancelled. Only the creator or an
// administrator may cancel. Cancelling is the destructive path; rows are
// kept for participation history.
func (s *challengeServiceImpl) CancelChallenge(ctx context.Context, challengeID, requesterID string, requesterRole models.UserRole) error {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return err
	}

	if challenge.CreatorID != requesterID && requesterRole != models.RoleSuperAdmin {
		return apperrors.NewForbiddenError("Only the creator can cancel this challenge")
	}
	if challenge.Status != models.ChallengeStatusActive {
		return apperrors.NewConflictError("Challenge is no longer active")
	}

	if err := s.challengeRepo.UpdateStatus(ctx, challengeID, models.ChallengeStatusCancelled); err != nil {
		return err
	}

	s.logger.Info().Str("challengeId", challengeID).Msg("Challenge cancelled")
	return nil
}

// JoinChallenge enrolls a user in a challenge. A user who previously
// abandoned the challenge is re-activated with progress kept. A
// challenge whose start date is still in the future can be joined;
// one whose end date has passed cannot.
func (s *challengeServiceImpl) JoinChallenge(ctx context.Context, challengeID, userID string) (*models.Participation, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.Status != models.ChallengeStatusActive {
		return nil, apperrors.NewConflictError("Challenge is no longer active")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.participationRepo.GetByUserAndChallenge(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status != models.ParticipationAbandoned {
			return nil, apperrors.NewConflictError("User is already participating in this challenge")
		}
		return s.reactivateParticipation(ctx, existing)
	}

	if challenge.MaxParticipants != nil {
		count, err := s.participationRepo.CountByChallengeIDAndStatus(ctx, challengeID, models.ParticipationJoined)
		if err != nil {
			return nil, err
		}
		if count >= *challenge.MaxParticipants {
			return nil, apperrors.NewConflictError("Challenge has reached maximum participants")
		}
	}

	if challenge.EndDate.Before(s.now()) {
		return nil, apperrors.NewConflictError("Challenge has already ended")
	}

	participation := &models.Participation{
		ID:          uuid.New().String(),
		Status:      models.ParticipationJoined,
		UserID:      user.ID,
		ChallengeID: challenge.ID,
	}

	if err := s.participationRepo.Create(ctx, participation); err != nil {
		// Lost a race against a concurrent join of the same user.
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("User is already participating in this challenge")
		}
		return nil, err
	}

	s.logger.Info().
		Str("challengeId", challengeID).
		Str("userId", userID).
		Msg("User joined challenge")
	return participation, nil
}

// reactivateParticipation puts an abandoned row back into joined status
// with a fresh join timestamp. Accumulated progress survives the
// round-trip.
func (s *challengeServiceImpl) reactivateParticipation(ctx context.Context, participation *models.Participation) (*models.Participation, error) {
	participation.Status = models.ParticipationJoined
	participation.JoinedAt = s.now()

	if err := s.participationRepo.Update(ctx, participation); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("participationId", participation.ID).
		Str("userId", participation.UserID).
		Msg("Abandoned participation reactivated")
	return participation, nil
}

// LeaveChallenge abandons a user's participation. Completed
// participations cannot be left.
func (s *challengeServiceImpl) LeaveChallenge(ctx context.Context, challengeID, userID string) (*models.Participation, error) {
	if _, err := s.challengeRepo.GetByID(ctx, challengeID); err != nil {
		return nil, err
	}

	participation, err := s.participationRepo.GetByUserAndChallenge(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}
	if participation == nil {
		return nil, apperrors.NewResourceNotFoundError("Not participating in this challenge")
	}
	if participation.Status == models.ParticipationCompleted {
		return nil, apperrors.NewConflictError("Cannot leave a completed challenge")
	}

	participation.Status = models.ParticipationAbandoned
	if err := s.participationRepo.Update(ctx, participation); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("challengeId", challengeID).
		Str("userId", userID).
		Msg("User left challenge")
	return participation, nil
}

// GetParticipants lists a challenge's participations, oldest join first
func (s *challengeServiceImpl) GetParticipants(ctx context.Context, challengeID string) (*dto.ParticipationListResponse, error) {
	if _, err := s.challengeRepo.GetByID(ctx, challengeID); err != nil {
		return nil, err
	}

	participations, err := s.participationRepo.GetByChallengeID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	for _, p := range participations {
		if user, err := s.userRepo.GetByID(ctx, p.UserID); err == nil {
			p.User = user
		}
	}

	if participations == nil {
		participations = []*models.Participation{}
	}
	return &dto.ParticipationListResponse{Count: len(participations), Participations: participations}, nil
}

// GetMyParticipations lists a user's participations, newest join first
func (s *challengeServiceImpl) GetMyParticipations(ctx context.Context, userID string) (*dto.ParticipationListResponse, error) {
	participations, err := s.participationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, p := range participations {
		challenge, err := s.challengeRepo.GetByID(ctx, p.ChallengeID)
		if err != nil {
			continue
		}
		if challenge.GymID != nil {
			if gym, err := s.gymRepo.GetByID(ctx, *challenge.GymID); err == nil {
				challenge.Gym = gym
			}
		}
		p.Challenge = challenge
	}

	if participations == nil {
		participations = []*models.Participation{}
	}
	return &dto.ParticipationListResponse{Count: len(participations), Participations: participations}, nil
}

// ApplyWorkout advances a participation's progress with a recorded
// workout. Crossing 100% completion finishes the participation, pays out
// the challenge's points reward, notifies the user and re-evaluates
// badge rules. Applying a workout to an already completed participation
// is a no-op.
func (s *challengeServiceImpl) ApplyWorkout(ctx context.Context, userID, participationID string, duration, calories int) (*models.Participation, error) {
	participation, err := s.participationRepo.GetByID(ctx, participationID)
	if err != nil {
		return nil, err
	}
	if participation.UserID != userID {
		return nil, apperrors.NewForbiddenError("Participation belongs to another user")
	}
	if participation.Status == models.ParticipationCompleted {
		return participation, nil
	}
	if participation.Status == models.ParticipationAbandoned {
		return nil, apperrors.NewConflictError("Cannot record progress on an abandoned participation")
	}

	challenge, err := s.challengeRepo.GetByID(ctx, participation.ChallengeID)
	if err != nil {
		return nil, err
	}

	participation.Progress.CurrentWorkouts++
	participation.Progress.CurrentDuration += duration
	participation.Progress.CurrentCalories += calories
	participation.Progress.CompletionPercentage = completionPercentage(challenge.Objectives, participation.Progress)
	participation.Status = models.ParticipationInProgress

	completed := challenge.Objectives.HasTargets() && participation.Progress.CompletionPercentage >= 100
	if completed {
		now := s.now()
		participation.Status = models.ParticipationCompleted
		participation.CompletedAt = &now
		participation.PointsEarned = challenge.PointsReward
	}

	if err := s.participationRepo.Update(ctx, participation); err != nil {
		return nil, err
	}

	if completed {
		if err := s.userRepo.AddPoints(ctx, userID, challenge.PointsReward); err != nil {
			return nil, err
		}

		if err := s.notifications.Notify(ctx, userID, models.NotificationChallengeCompleted,
			"Challenge completed",
			fmt.Sprintf("You completed %q and earned %d points!", challenge.Title, challenge.PointsReward)); err != nil {
			s.logger.Warn().Err(err).
				Str("participationId", participationID).
				Msg("Challenge completed but notification failed")
		}

		if _, err := s.badges.EvaluateForUser(ctx, userID); err != nil {
			s.logger.Warn().Err(err).
				Str("userId", userID).
				Msg("Badge evaluation failed after challenge completion")
		}

		s.logger.Info().
			Str("participationId", participationID).
			Str("challengeId", challenge.ID).
			Int("points", challenge.PointsReward).
			Msg("Challenge completed")
	}

	return participation, nil
}

// completionPercentage averages coverage over the targets the challenge
// defines. Each target contributes at most 100%, so overshooting one
// objective cannot compensate for another.
func completionPercentage(objectives models.ChallengeObjectives, progress models.ChallengeProgress) float64 {
	var total float64
	var targets int

	if objectives.TargetWorkouts != nil && *objectives.TargetWorkouts > 0 {
		total += coverage(progress.CurrentWorkouts, *objectives.TargetWorkouts)
		targets++
	}
	if objectives.TargetDuration != nil && *objectives.TargetDuration > 0 {
		total += coverage(progress.CurrentDuration, *objectives.TargetDuration)
		targets++
	}
	if objectives.TargetCalories != nil && *objectives.TargetCalories > 0 {
		total += coverage(progress.CurrentCalories, *objectives.TargetCalories)
		targets++
	}

	if targets == 0 {
		return 0
	}
	return total / float64(targets)
}

func coverage(current, target int) float64 {
	pct := float64(current) / float64(target) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
