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

type gymTestEnv struct {
	service  GymService
	gyms     *fakeGymRepo
	users    *fakeUserRepo
	notifier *fakeNotifier
}

func newGymTestEnv() *gymTestEnv {
	env := &gymTestEnv{
		gyms:     newFakeGymRepo(),
		users:    newFakeUserRepo(),
		notifier: &fakeNotifier{},
	}
	env.service = NewGymService(env.gyms, env.users, env.notifier, zerolog.Nop())
	return env
}

func (env *gymTestEnv) seedGym(id, ownerID string, status models.GymStatus) *models.Gym {
	gym := &models.Gym{ID: id, Name: "Iron Temple", City: "Istanbul", Status: status, OwnerID: ownerID}
	env.gyms.gyms[id] = gym
	return gym
}

func TestCreateGymStartsPending(t *testing.T) {
	env := newGymTestEnv()

	gym, err := env.service.CreateGym(context.Background(), "owner-1", &dto.CreateGymRequest{
		Name:     "Iron Temple",
		Address:  "Main St 1",
		City:     "Istanbul",
		Phone:    "+90 212 555 0101",
		Email:    "info@irontemple.com",
		Capacity: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, models.GymStatusPending, gym.Status)
	assert.Equal(t, "owner-1", gym.OwnerID)
	assert.Equal(t, "+90 212 555 0101", gym.Phone)
	assert.Equal(t, "info@irontemple.com", gym.Email)
	assert.Equal(t, 120, gym.Capacity)
}

func TestGetGymsFiltersByRole(t *testing.T) {
	env := newGymTestEnv()
	env.seedGym("g-1", "owner-1", models.GymStatusApproved)
	env.seedGym("g-2", "owner-1", models.GymStatusPending)

	gyms, err := env.service.GetGyms(context.Background(), models.RoleClient, "")
	require.NoError(t, err)
	require.Len(t, gyms, 1)
	assert.Equal(t, "g-1", gyms[0].ID)

	gyms, err = env.service.GetGyms(context.Background(), models.RoleSuperAdmin, "")
	require.NoError(t, err)
	assert.Len(t, gyms, 2)
}

func TestUpdateGymOwnerOnly(t *testing.T) {
	env := newGymTestEnv()
	env.seedGym("g-1", "owner-1", models.GymStatusApproved)

	_, err := env.service.UpdateGym(context.Background(), "g-1", "stranger", models.RoleClient,
		&dto.UpdateGymRequest{Name: strPtr("Taken Over")})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	gym, err := env.service.UpdateGym(context.Background(), "g-1", "owner-1", models.RoleGymOwner,
		&dto.UpdateGymRequest{Name: strPtr("Iron Temple II"), Phone: strPtr("+90 212 555 0202"), Capacity: intPtr(80)})
	require.NoError(t, err)
	assert.Equal(t, "Iron Temple II", gym.Name)
	assert.Equal(t, "+90 212 555 0202", gym.Phone)
	assert.Equal(t, 80, gym.Capacity)
}

func TestApproveGym(t *testing.T) {
	env := newGymTestEnv()
	env.seedGym("g-1", "owner-1", models.GymStatusPending)

	gym, err := env.service.ApproveGym(context.Background(), "g-1")
	require.NoError(t, err)
	assert.Equal(t, models.GymStatusApproved, gym.Status)

	notifications := env.notifier.byType(models.NotificationGymApproved)
	require.Len(t, notifications, 1)
	assert.Equal(t, "owner-1", notifications[0].UserID)

	_, err = env.service.ApproveGym(context.Background(), "g-1")
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestRejectGymWithReason(t *testing.T) {
	env := newGymTestEnv()
	env.seedGym("g-1", "owner-1", models.GymStatusPending)

	gym, err := env.service.RejectGym(context.Background(), "g-1", "Missing safety certificate")
	require.NoError(t, err)
	assert.Equal(t, models.GymStatusRejected, gym.Status)

	notifications := env.notifier.byType(models.NotificationGymRejected)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "Missing safety certificate")
}

func TestDeleteGymOwnerOrAdmin(t *testing.T) {
	env := newGymTestEnv()
	env.seedGym("g-1", "owner-1", models.GymStatusApproved)

	err := env.service.DeleteGym(context.Background(), "g-1", "stranger", models.RoleClient)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	require.NoError(t, env.service.DeleteGym(context.Background(), "g-1", "admin", models.RoleSuperAdmin))
	assert.Empty(t, env.gyms.gyms)
}
