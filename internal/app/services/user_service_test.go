package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
	"github.com/oguzk/fitpulse/internal/pkg/auth"
)

type userTestEnv struct {
	service        UserService
	users          *fakeUserRepo
	participations *fakeParticipationRepo
	workouts       *fakeWorkoutRepo
	badges         *fakeBadgeRepo
}

func newUserTestEnv() *userTestEnv {
	env := &userTestEnv{
		users:          newFakeUserRepo(),
		participations: newFakeParticipationRepo(),
		workouts:       newFakeWorkoutRepo(),
		badges:         newFakeBadgeRepo(),
	}
	env.service = NewUserService(env.users, env.participations, env.workouts, env.badges, zerolog.Nop())
	return env
}

func TestUpdateProfile(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["u-1"] = &models.User{ID: "u-1", FirstName: "Jane", LastName: "Doe"}

	user, err := env.service.UpdateProfile(context.Background(), "u-1", &dto.UpdateProfileRequest{
		FirstName: strPtr("Janet"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Janet", user.FirstName)
	assert.Equal(t, "Doe", user.LastName, "omitted fields are kept")
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["u-1"] = &models.User{ID: "u-1", FirstName: "Jane", LastName: "Doe"}

	_, err := env.service.UpdateProfile(context.Background(), "u-1", &dto.UpdateProfileRequest{
		FirstName: strPtr(""),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestChangePassword(t *testing.T) {
	env := newUserTestEnv()
	hash, err := auth.HashPassword("OldPassword1!")
	require.NoError(t, err)
	env.users.users["u-1"] = &models.User{ID: "u-1", Password: hash}

	err = env.service.ChangePassword(context.Background(), "u-1", &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword1!",
	})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	err = env.service.ChangePassword(context.Background(), "u-1", &dto.ChangePasswordRequest{
		CurrentPassword: "OldPassword1!",
		NewPassword:     "NewPassword1!",
	})
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(env.users.users["u-1"].Password, "NewPassword1!"))
}

func TestGetStats(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["u-1"] = &models.User{ID: "u-1", TotalPoints: 1500}

	env.participations.participations = append(env.participations.participations,
		&models.Participation{ID: "p-1", UserID: "u-1", ChallengeID: "c-1", Status: models.ParticipationCompleted},
		&models.Participation{ID: "p-2", UserID: "u-1", ChallengeID: "c-2", Status: models.ParticipationJoined},
		&models.Participation{ID: "p-3", UserID: "u-1", ChallengeID: "c-3", Status: models.ParticipationInProgress},
		&models.Participation{ID: "p-4", UserID: "u-1", ChallengeID: "c-4", Status: models.ParticipationAbandoned},
	)
	env.workouts.workouts["w-1"] = &models.Workout{ID: "w-1", UserID: "u-1"}
	env.workouts.workouts["w-2"] = &models.Workout{ID: "w-2", UserID: "u-1"}
	env.badges.earned = append(env.badges.earned, &models.UserBadge{ID: "ub-1", UserID: "u-1", BadgeID: "b-1"})

	stats, err := env.service.GetStats(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, 1500, stats.TotalPoints)
	assert.Equal(t, 1, stats.CompletedChallenges)
	assert.Equal(t, 2, stats.ActiveChallenges, "joined and in-progress participations count as active")
	assert.Equal(t, 2, stats.TotalWorkouts)
	assert.Equal(t, 1, stats.BadgeCount)
}
