package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/oguzk/fitpulse/internal/app/models"
)

type badgeTestEnv struct {
	service        *badgeServiceImpl
	badgeRepo      *fakeBadgeRepo
	users          *fakeUserRepo
	participations *fakeParticipationRepo
	workouts       *fakeWorkoutRepo
	notifier       *fakeNotifier
}

func newBadgeTestEnv() *badgeTestEnv {
	env := &badgeTestEnv{
		badgeRepo:      newFakeBadgeRepo(),
		users:          newFakeUserRepo(),
		participations: newFakeParticipationRepo(),
		workouts:       newFakeWorkoutRepo(),
		notifier:       &fakeNotifier{},
	}
	env.service = NewBadgeService(
		env.badgeRepo,
		env.users,
		env.participations,
		env.workouts,
		env.notifier,
		zerolog.Nop(),
	).(*badgeServiceImpl)
	return env
}

func (env *badgeTestEnv) seedBadge(id, name, ruleType string, target int) *models.Badge {
	badge := &models.Badge{ID: id, Name: name, IsActive: true}
	env.badgeRepo.badges[id] = badge
	env.badgeRepo.rules = append(env.badgeRepo.rules, &models.BadgeRule{
		ID:          "rule-" + id,
		RuleType:    ruleType,
		Operator:    ">=",
		TargetValue: target,
		BadgeID:     id,
	})
	return badge
}

func TestEvaluateForUserAwardsOnThreshold(t *testing.T) {
	env := newBadgeTestEnv()
	env.users.users["u-1"] = &models.User{ID: "u-1", TotalPoints: 1200}
	env.seedBadge("b-points", "Point Collector", models.BadgeRuleTotalPoints, 1000)
	env.seedBadge("b-challenges", "Challenger", models.BadgeRuleChallengesCompleted, 5)

	awarded, err := env.service.EvaluateForUser(context.Background(), "u-1")
	require.NoError(t, err)

	require.Len(t, awarded, 1)
	assert.Equal(t, "Point Collector", awarded[0].Name)

	notifications := env.notifier.byType(models.NotificationBadgeAwarded)
	require.Len(t, notifications, 1)
	assert.Equal(t, "u-1", notifications[0].UserID)
}

func TestEvaluateForUserCountsCompletedParticipations(t *testing.T) {
	env := newBadgeTestEnv()
	env.users.users["u-1"] = &models.User{ID: "u-1"}
	env.seedBadge("b-first", "First Steps", models.BadgeRuleChallengesCompleted, 1)

	env.participations.participations = append(env.participations.participations,
		&models.Participation{ID: "p-1", UserID: "u-1", ChallengeID: "c-1", Status: models.ParticipationCompleted},
		&models.Participation{ID: "p-2", UserID: "u-1", ChallengeID: "c-2", Status: models.ParticipationAbandoned},
	)

	awarded, err := env.service.EvaluateForUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, awarded, 1)
	assert.Equal(t, "First Steps", awarded[0].Name)
}

func TestEvaluateForUserNeverAwardsTwice(t *testing.T) {
	env := newBadgeTestEnv()
	env.users.users["u-1"] = &models.User{ID: "u-1", TotalPoints: 5000}
	env.seedBadge("b-points", "Point Collector", models.BadgeRuleTotalPoints, 1000)

	awarded, err := env.service.EvaluateForUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, awarded, 1)

	awarded, err = env.service.EvaluateForUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Empty(t, awarded)
	assert.Len(t, env.notifier.byType(models.NotificationBadgeAwarded), 1)
}

func TestEvaluateForUserSkipsInactiveBadges(t *testing.T) {
	env := newBadgeTestEnv()
	env.users.users["u-1"] = &models.User{ID: "u-1", TotalPoints: 5000}
	badge := env.seedBadge("b-retired", "Retired Badge", models.BadgeRuleTotalPoints, 1000)
	badge.IsActive = false

	awarded, err := env.service.EvaluateForUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Empty(t, awarded)
}

func TestEvaluateForUserConcurrentAwardIsNoOp(t *testing.T) {
	env := newBadgeTestEnv()
	env.users.users["u-1"] = &models.User{ID: "u-1", TotalPoints: 5000}
	env.seedBadge("b-points", "Point Collector", models.BadgeRuleTotalPoints, 1000)

	// Another evaluation won the race; the unique constraint makes the
	// duplicate award a silent no-op.
	env.badgeRepo.earned = append(env.badgeRepo.earned,
		&models.UserBadge{ID: "ub-1", UserID: "u-1", BadgeID: "b-points"})

	awarded, err := env.service.EvaluateForUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Empty(t, awarded)
	assert.Empty(t, env.notifier.sent)
}

func TestRuleSatisfied(t *testing.T) {
	tests := []struct {
		value    int
		operator string
		target   int
		want     bool
	}{
		{10, ">=", 10, true},
		{9, ">=", 10, false},
		{10, "", 10, true}, // empty operator defaults to >=
		{11, ">", 10, true},
		{10, ">", 10, false},
		{10, "=", 10, true},
		{10, "==", 10, true},
		{11, "==", 10, false},
		{9, "<", 10, true},
		{10, "<=", 10, true},
		{10, "!?", 10, false}, // unknown operator never matches
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ruleSatisfied(tt.value, tt.operator, tt.target),
			"ruleSatisfied(%d, %q, %d)", tt.value, tt.operator, tt.target)
	}
}
