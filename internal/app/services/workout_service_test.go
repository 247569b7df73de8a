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
)

type workoutTestEnv struct {
	*challengeTestEnv
	service  WorkoutService
	workouts *fakeWorkoutRepo
}

func newWorkoutTestEnv() *workoutTestEnv {
	challengeEnv := newChallengeTestEnv()
	workouts := newFakeWorkoutRepo()
	return &workoutTestEnv{
		challengeTestEnv: challengeEnv,
		workouts:         workouts,
		service:          NewWorkoutService(workouts, challengeEnv.service, zerolog.Nop()),
	}
}

func TestCreateWorkout(t *testing.T) {
	env := newWorkoutTestEnv()

	workout, err := env.service.CreateWorkout(context.Background(), "u-1", &dto.CreateWorkoutRequest{
		Name:           "Morning run",
		Duration:       45,
		Difficulty:     "intermediate",
		CaloriesBurned: 400,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, workout.ID)
	assert.Equal(t, "u-1", workout.UserID)
	assert.Len(t, env.workouts.workouts, 1)
}

func TestCreateWorkoutValidation(t *testing.T) {
	env := newWorkoutTestEnv()

	_, err := env.service.CreateWorkout(context.Background(), "u-1", &dto.CreateWorkoutRequest{Duration: 0})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = env.service.CreateWorkout(context.Background(), "u-1", &dto.CreateWorkoutRequest{
		Duration:       30,
		CaloriesBurned: -5,
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = env.service.CreateWorkout(context.Background(), "u-1", &dto.CreateWorkoutRequest{
		Duration:       30,
		CompletionDate: strPtr("yesterday"),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreateWorkoutAdvancesParticipation(t *testing.T) {
	env := newWorkoutTestEnv()
	env.seedUser("u-1")
	env.seedChallenge("c-1", func(c *models.Challenge) {
		c.Objectives = models.ChallengeObjectives{TargetDuration: intPtr(100)}
	})
	participation := env.seedParticipation("p-1", "u-1", "c-1", models.ParticipationJoined)

	_, err := env.service.CreateWorkout(context.Background(), "u-1", &dto.CreateWorkoutRequest{
		Name:            "Leg day",
		Duration:        50,
		CaloriesBurned:  300,
		ParticipationID: strPtr("p-1"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.ParticipationInProgress, participation.Status)
	assert.Equal(t, 50, participation.Progress.CurrentDuration)
	assert.InDelta(t, 50.0, participation.Progress.CompletionPercentage, 0.001)
}

func TestCreateWorkoutRejectedWhenParticipationInvalid(t *testing.T) {
	env := newWorkoutTestEnv()
	env.seedUser("u-1")
	env.seedChallenge("c-1")
	env.seedParticipation("p-1", "u-1", "c-1", models.ParticipationAbandoned)

	_, err := env.service.CreateWorkout(context.Background(), "u-1", &dto.CreateWorkoutRequest{
		Name:            "Leg day",
		Duration:        50,
		ParticipationID: strPtr("p-1"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Empty(t, env.workouts.workouts, "no workout row is written when progress is rejected")
}

func TestDeleteWorkoutOwnerOnly(t *testing.T) {
	env := newWorkoutTestEnv()
	env.workouts.workouts["w-1"] = &models.Workout{ID: "w-1", UserID: "u-1"}

	err := env.service.DeleteWorkout(context.Background(), "w-1", "u-2")
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	require.NoError(t, env.service.DeleteWorkout(context.Background(), "w-1", "u-1"))
	assert.Empty(t, env.workouts.workouts)
}
