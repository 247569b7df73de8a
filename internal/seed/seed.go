package seed

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/repositories"
	"github.com/oguzk/fitpulse/internal/pkg/auth"
)

const defaultAdminEmail = "admin@fitpulse.app"

// CreateDefaultData provisions the default administrator account and the
// built-in badge catalog. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	if err := createDefaultAdmin(ctx, repos.UserRepository, lgr); err != nil {
		return err
	}
	if err := createDefaultBadges(ctx, repos.BadgeRepository, lgr); err != nil {
		return err
	}
	return nil
}

func createDefaultAdmin(ctx context.Context, userRepo repositories.IUserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	password := os.Getenv("FITPULSE_ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		lgr.Warn().Msg("FITPULSE_ADMIN_PASSWORD not set, default admin created with a well-known password")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:            uuid.New().String(),
		Email:         defaultAdminEmail,
		Password:      hash,
		FirstName:     "Platform",
		LastName:      "Admin",
		Role:          models.RoleSuperAdmin,
		Status:        models.UserStatusActive,
		EmailVerified: true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}

type badgeSeed struct {
	name        string
	description string
	icon        string
	points      int
	ruleType    string
	target      int
}

var defaultBadges = []badgeSeed{
	{"First Steps", "Complete your first challenge", "🏁", 50, models.BadgeRuleChallengesCompleted, 1},
	{"Challenger", "Complete 5 challenges", "🏆", 200, models.BadgeRuleChallengesCompleted, 5},
	{"Unstoppable", "Complete 25 challenges", "🔥", 1000, models.BadgeRuleChallengesCompleted, 25},
	{"Point Collector", "Earn 1000 points", "💎", 100, models.BadgeRuleTotalPoints, 1000},
	{"Point Hoarder", "Earn 10000 points", "👑", 500, models.BadgeRuleTotalPoints, 10000},
	{"Regular", "Record 10 workouts", "💪", 100, models.BadgeRuleTotalWorkouts, 10},
	{"Iron Will", "Record 100 workouts", "🦾", 500, models.BadgeRuleTotalWorkouts, 100},
}

func createDefaultBadges(ctx context.Context, badgeRepo repositories.IBadgeRepository, lgr zerolog.Logger) error {
	for _, seed := range defaultBadges {
		exists, err := badgeRepo.BadgeExistsByName(ctx, seed.name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		badge := &models.Badge{
			ID:          uuid.New().String(),
			Name:        seed.name,
			Description: seed.description,
			Icon:        seed.icon,
			PointsValue: seed.points,
			IsActive:    true,
		}
		if err := badgeRepo.CreateBadge(ctx, badge); err != nil {
			return err
		}

		rule := &models.BadgeRule{
			ID:          uuid.New().String(),
			RuleType:    seed.ruleType,
			Operator:    ">=",
			TargetValue: seed.target,
			Description: seed.description,
			BadgeID:     badge.ID,
		}
		if err := badgeRepo.CreateRule(ctx, rule); err != nil {
			return err
		}

		lgr.Info().Str("badge", seed.name).Msg("Default badge created")
	}
	return nil
}
