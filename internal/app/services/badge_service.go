package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/repositories"
	"github.com/oguzk/fitpulse/internal/pkg/dberrors"
)

// BadgeService defines the interface for badge operations
type BadgeService interface {
	GetAllBadges(ctx context.Context) (*dto.BadgeListResponse, error)
	GetUserBadges(ctx context.Context, userID string) (*dto.UserBadgeListResponse, error)
	EvaluateForUser(ctx context.Context, userID string) ([]*models.Badge, error)
}

// badgeServiceImpl implements BadgeService
type badgeServiceImpl struct {
	badgeRepo         repositories.IBadgeRepository
	userRepo          repositories.IUserRepository
	participationRepo repositories.IParticipationRepository
	workoutRepo       repositories.IWorkoutRepository
	notifications     NotificationService
	logger            zerolog.Logger
}

// NewBadgeService creates a new BadgeService
func NewBadgeService(
	badgeRepo repositories.IBadgeRepository,
	userRepo repositories.IUserRepository,
	participationRepo repositories.IParticipationRepository,
	workoutRepo repositories.IWorkoutRepository,
	notifications NotificationService,
	logger zerolog.Logger,
) BadgeService {
	return &badgeServiceImpl{
		badgeRepo:         badgeRepo,
		userRepo:          userRepo,
		participationRepo: participationRepo,
		workoutRepo:       workoutRepo,
		notifications:     notifications,
		logger:            logger,
	}
}

// GetAllBadges retrieves the badge catalog
func (s *badgeServiceImpl) GetAllBadges(ctx context.Context) (*dto.BadgeListResponse, error) {
	badges, err := s.badgeRepo.GetAllBadges(ctx)
	if err != nil {
		return nil, err
	}
	if badges == nil {
		badges = []*models.Badge{}
	}
	return &dto.BadgeListResponse{Count: len(badges), Badges: badges}, nil
}

// GetUserBadges retrieves the badges a user has earned
func (s *badgeServiceImpl) GetUserBadges(ctx context.Context, userID string) (*dto.UserBadgeListResponse, error) {
	earned, err := s.badgeRepo.GetUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	if earned == nil {
		earned = []*models.UserBadge{}
	}
	return &dto.UserBadgeListResponse{Count: len(earned), Badges: earned}, nil
}

// EvaluateForUser checks every award rule against the user's current
// metrics and awards any badge whose threshold is now met. Returns the
// badges awarded by this evaluation.
func (s *badgeServiceImpl) EvaluateForUser(ctx context.Context, userID string) ([]*models.Badge, error) {
	rules, err := s.badgeRepo.GetActiveRules(ctx)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}

	metrics, err := s.collectMetrics(ctx, userID)
	if err != nil {
		return nil, err
	}

	var awarded []*models.Badge
	for _, rule := range rules {
		value, ok := metrics[rule.RuleType]
		if !ok || !ruleSatisfied(value, rule.Operator, rule.TargetValue) {
			continue
		}

		has, err := s.badgeRepo.HasBadge(ctx, userID, rule.BadgeID)
		if err != nil {
			return awarded, err
		}
		if has {
			continue
		}

		badge, err := s.awardBadge(ctx, userID, rule.BadgeID)
		if err != nil {
			return awarded, err
		}
		if badge != nil {
			awarded = append(awarded, badge)
		}
	}
	return awarded, nil
}

func ruleSatisfied(value int, operator string, target int) bool {
	switch operator {
	case ">=", "":
		return value >= target
	case ">":
		return value > target
	case "=", "==":
		return value == target
	case "<":
		return value < target
	case "<=":
		return value <= target
	default:
		return false
	}
}

func (s *badgeServiceImpl) collectMetrics(ctx context.Context, userID string) (map[string]int, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.participationRepo.CountByUserIDAndStatus(ctx, userID, models.ParticipationCompleted)
	if err != nil {
		return nil, err
	}

	workouts, err := s.workoutRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		models.BadgeRuleChallengesCompleted: completed,
		models.BadgeRuleTotalPoints:         user.TotalPoints,
		models.BadgeRuleTotalWorkouts:       workouts,
	}, nil
}

func (s *badgeServiceImpl) awardBadge(ctx context.Context, userID, badgeID string) (*models.Badge, error) {
	userBadge := &models.UserBadge{
		ID:      uuid.New().String(),
		UserID:  userID,
		BadgeID: badgeID,
	}

	if err := s.badgeRepo.AwardBadge(ctx, userBadge); err != nil {
		// A concurrent evaluation may have awarded this badge already.
		if dberrors.IsUniqueViolation(err) {
			return nil, nil
		}
		return nil, err
	}

	badge, err := s.badgeRepo.GetBadgeByID(ctx, badgeID)
	if err != nil {
		return nil, err
	}

	if err := s.notifications.Notify(ctx, userID, models.NotificationBadgeAwarded,
		"Badge earned", fmt.Sprintf("You earned the %q badge!", badge.Name)); err != nil {
		s.logger.Warn().Err(err).
			Str("userId", userID).
			Str("badgeId", badgeID).
			Msg("Badge awarded but notification failed")
	}

	s.logger.Info().
		Str("userId", userID).
		Str("badge", badge.Name).
		Msg("Badge awarded")
	return badge, nil
}
