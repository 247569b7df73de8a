package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/repositories"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// In-memory repository fakes. They mimic the Postgres-backed
// implementations closely enough for service-level tests, including the
// unique violation on duplicate participation inserts.

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, userID string, firstName, lastName string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.FirstName = firstName
	user.LastName = lastName
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID string, passwordHash string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = passwordHash
	return nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, userID string, status models.UserStatus) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Status = status
	return nil
}

func (f *fakeUserRepo) AddPoints(_ context.Context, userID string, points int) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.TotalPoints += points
	return nil
}

type fakeChallengeRepo struct {
	challenges  map[string]*models.Challenge
	recommended map[string][]string
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{
		challenges:  make(map[string]*models.Challenge),
		recommended: make(map[string][]string),
	}
}

func (f *fakeChallengeRepo) Create(_ context.Context, challenge *models.Challenge) error {
	challenge.CreatedAt = time.Now()
	challenge.UpdatedAt = challenge.CreatedAt
	f.challenges[challenge.ID] = challenge
	return nil
}

func (f *fakeChallengeRepo) GetByID(_ context.Context, id string) (*models.Challenge, error) {
	challenge, ok := f.challenges[id]
	if !ok {
		return nil, apperrors.ErrChallengeNotFound
	}
	return challenge, nil
}

func (f *fakeChallengeRepo) GetAll(_ context.Context, filter repositories.ChallengeFilter) ([]*models.Challenge, error) {
	var out []*models.Challenge
	for _, c := range f.challenges {
		if filter.PublicOnly && !c.IsPublic {
			continue
		}
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		if filter.Difficulty != "" && c.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.GymID != "" && (c.GymID == nil || *c.GymID != filter.GymID) {
			continue
		}
		if filter.IsPublic != nil && c.IsPublic != *filter.IsPublic {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeChallengeRepo) GetByCreatorID(_ context.Context, creatorID string) ([]*models.Challenge, error) {
	var out []*models.Challenge
	for _, c := range f.challenges {
		if c.CreatorID == creatorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeChallengeRepo) Update(_ context.Context, challenge *models.Challenge) error {
	if _, ok := f.challenges[challenge.ID]; !ok {
		return apperrors.ErrChallengeNotFound
	}
	f.challenges[challenge.ID] = challenge
	return nil
}

func (f *fakeChallengeRepo) UpdateStatus(_ context.Context, id string, status models.ChallengeStatus) error {
	challenge, ok := f.challenges[id]
	if !ok {
		return apperrors.ErrChallengeNotFound
	}
	challenge.Status = status
	return nil
}

func (f *fakeChallengeRepo) SetRecommendedExercises(_ context.Context, challengeID string, exerciseIDs []string) error {
	f.recommended[challengeID] = exerciseIDs
	return nil
}

func (f *fakeChallengeRepo) GetRecommendedExerciseIDs(_ context.Context, challengeID string) ([]string, error) {
	return f.recommended[challengeID], nil
}

type fakeParticipationRepo struct {
	participations []*models.Participation
}

func newFakeParticipationRepo() *fakeParticipationRepo {
	return &fakeParticipationRepo{}
}

func (f *fakeParticipationRepo) Create(_ context.Context, participation *models.Participation) error {
	for _, p := range f.participations {
		if p.UserID == participation.UserID && p.ChallengeID == participation.ChallengeID {
			return uniqueViolation("uq_participation_user_challenge")
		}
	}
	participation.JoinedAt = time.Now()
	f.participations = append(f.participations, participation)
	return nil
}

func (f *fakeParticipationRepo) GetByID(_ context.Context, id string) (*models.Participation, error) {
	for _, p := range f.participations {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.ErrParticipationNotFound
}

func (f *fakeParticipationRepo) GetByUserAndChallenge(_ context.Context, userID, challengeID string) (*models.Participation, error) {
	for _, p := range f.participations {
		if p.UserID == userID && p.ChallengeID == challengeID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeParticipationRepo) GetByChallengeID(_ context.Context, challengeID string) ([]*models.Participation, error) {
	var out []*models.Participation
	for _, p := range f.participations {
		if p.ChallengeID == challengeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (f *fakeParticipationRepo) GetByUserID(_ context.Context, userID string) ([]*models.Participation, error) {
	var out []*models.Participation
	for _, p := range f.participations {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.After(out[j].JoinedAt) })
	return out, nil
}

func (f *fakeParticipationRepo) CountActiveByChallengeID(_ context.Context, challengeID string) (int, error) {
	count := 0
	for _, p := range f.participations {
		if p.ChallengeID == challengeID && p.Status != models.ParticipationAbandoned {
			count++
		}
	}
	return count, nil
}

func (f *fakeParticipationRepo) CountByChallengeIDAndStatus(_ context.Context, challengeID string, status models.ParticipationStatus) (int, error) {
	count := 0
	for _, p := range f.participations {
		if p.ChallengeID == challengeID && p.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeParticipationRepo) CountByUserIDAndStatus(_ context.Context, userID string, status models.ParticipationStatus) (int, error) {
	count := 0
	for _, p := range f.participations {
		if p.UserID == userID && p.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeParticipationRepo) Update(_ context.Context, participation *models.Participation) error {
	for i, p := range f.participations {
		if p.ID == participation.ID {
			f.participations[i] = participation
			return nil
		}
	}
	return apperrors.ErrParticipationNotFound
}

type fakeGymRepo struct {
	gyms map[string]*models.Gym
}

func newFakeGymRepo() *fakeGymRepo {
	return &fakeGymRepo{gyms: make(map[string]*models.Gym)}
}

func (f *fakeGymRepo) Create(_ context.Context, gym *models.Gym) error {
	gym.CreatedAt = time.Now()
	f.gyms[gym.ID] = gym
	return nil
}

func (f *fakeGymRepo) GetByID(_ context.Context, id string) (*models.Gym, error) {
	gym, ok := f.gyms[id]
	if !ok {
		return nil, apperrors.ErrGymNotFound
	}
	return gym, nil
}

func (f *fakeGymRepo) GetAll(_ context.Context, status models.GymStatus, city string) ([]*models.Gym, error) {
	var out []*models.Gym
	for _, g := range f.gyms {
		if status != "" && g.Status != status {
			continue
		}
		if city != "" && g.City != city {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGymRepo) GetByOwnerID(_ context.Context, ownerID string) ([]*models.Gym, error) {
	var out []*models.Gym
	for _, g := range f.gyms {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGymRepo) Update(_ context.Context, gym *models.Gym) error {
	if _, ok := f.gyms[gym.ID]; !ok {
		return apperrors.ErrGymNotFound
	}
	f.gyms[gym.ID] = gym
	return nil
}

func (f *fakeGymRepo) UpdateStatus(_ context.Context, id string, status models.GymStatus) error {
	gym, ok := f.gyms[id]
	if !ok {
		return apperrors.ErrGymNotFound
	}
	gym.Status = status
	return nil
}

func (f *fakeGymRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.gyms[id]; !ok {
		return apperrors.ErrGymNotFound
	}
	delete(f.gyms, id)
	return nil
}

type fakeExerciseRepo struct {
	exercises map[string]*models.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[string]*models.Exercise)}
}

func (f *fakeExerciseRepo) Create(_ context.Context, exercise *models.Exercise) error {
	exercise.CreatedAt = time.Now()
	f.exercises[exercise.ID] = exercise
	return nil
}

func (f *fakeExerciseRepo) GetByID(_ context.Context, id string) (*models.Exercise, error) {
	exercise, ok := f.exercises[id]
	if !ok {
		return nil, apperrors.ErrExerciseNotFound
	}
	return exercise, nil
}

func (f *fakeExerciseRepo) GetByIDs(_ context.Context, ids []string) ([]*models.Exercise, error) {
	var out []*models.Exercise
	for _, id := range ids {
		if e, ok := f.exercises[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExerciseRepo) GetAll(_ context.Context, difficulty models.ExerciseDifficulty, muscleGroup, search string) ([]*models.Exercise, error) {
	var out []*models.Exercise
	for _, e := range f.exercises {
		if difficulty != "" && e.Difficulty != difficulty {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeExerciseRepo) Update(_ context.Context, exercise *models.Exercise) error {
	if _, ok := f.exercises[exercise.ID]; !ok {
		return apperrors.ErrExerciseNotFound
	}
	f.exercises[exercise.ID] = exercise
	return nil
}

func (f *fakeExerciseRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.exercises[id]; !ok {
		return apperrors.ErrExerciseNotFound
	}
	delete(f.exercises, id)
	return nil
}

type fakeWorkoutRepo struct {
	workouts map[string]*models.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[string]*models.Workout)}
}

func (f *fakeWorkoutRepo) Create(_ context.Context, workout *models.Workout) error {
	workout.CreatedAt = time.Now()
	f.workouts[workout.ID] = workout
	return nil
}

func (f *fakeWorkoutRepo) GetByID(_ context.Context, id string) (*models.Workout, error) {
	workout, ok := f.workouts[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return workout, nil
}

func (f *fakeWorkoutRepo) GetByUserID(_ context.Context, userID string) ([]*models.Workout, error) {
	var out []*models.Workout
	for _, w := range f.workouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) CountByUserID(_ context.Context, userID string) (int, error) {
	count := 0
	for _, w := range f.workouts {
		if w.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeWorkoutRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.workouts[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.workouts, id)
	return nil
}

type fakeBadgeRepo struct {
	badges map[string]*models.Badge
	rules  []*models.BadgeRule
	earned []*models.UserBadge
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	return &fakeBadgeRepo{badges: make(map[string]*models.Badge)}
}

func (f *fakeBadgeRepo) CreateBadge(_ context.Context, badge *models.Badge) error {
	badge.CreatedAt = time.Now()
	f.badges[badge.ID] = badge
	return nil
}

func (f *fakeBadgeRepo) GetBadgeByID(_ context.Context, id string) (*models.Badge, error) {
	badge, ok := f.badges[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return badge, nil
}

func (f *fakeBadgeRepo) GetAllBadges(_ context.Context) ([]*models.Badge, error) {
	var out []*models.Badge
	for _, b := range f.badges {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBadgeRepo) BadgeExistsByName(_ context.Context, name string) (bool, error) {
	for _, b := range f.badges {
		if b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBadgeRepo) CreateRule(_ context.Context, rule *models.BadgeRule) error {
	f.rules = append(f.rules, rule)
	return nil
}

func (f *fakeBadgeRepo) GetActiveRules(_ context.Context) ([]*models.BadgeRule, error) {
	var out []*models.BadgeRule
	for _, r := range f.rules {
		if badge, ok := f.badges[r.BadgeID]; ok && badge.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBadgeRepo) AwardBadge(_ context.Context, userBadge *models.UserBadge) error {
	for _, ub := range f.earned {
		if ub.UserID == userBadge.UserID && ub.BadgeID == userBadge.BadgeID {
			return uniqueViolation("uq_user_badge")
		}
	}
	userBadge.AwardedAt = time.Now()
	f.earned = append(f.earned, userBadge)
	return nil
}

func (f *fakeBadgeRepo) GetUserBadges(_ context.Context, userID string) ([]*models.UserBadge, error) {
	var out []*models.UserBadge
	for _, ub := range f.earned {
		if ub.UserID == userID {
			copied := *ub
			copied.Badge = f.badges[ub.BadgeID]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBadgeRepo) HasBadge(_ context.Context, userID, badgeID string) (bool, error) {
	for _, ub := range f.earned {
		if ub.UserID == userID && ub.BadgeID == badgeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBadgeRepo) CountUserBadges(_ context.Context, userID string) (int, error) {
	count := 0
	for _, ub := range f.earned {
		if ub.UserID == userID {
			count++
		}
	}
	return count, nil
}

// fakeNotifier records delivered notifications for assertions.
type fakeNotifier struct {
	sent []*models.Notification
}

func (f *fakeNotifier) Notify(_ context.Context, userID string, notificationType models.NotificationType, title, message string) error {
	f.sent = append(f.sent, &models.Notification{
		ID:      fmt.Sprintf("n-%d", len(f.sent)+1),
		Type:    notificationType,
		Title:   title,
		Message: message,
		UserID:  userID,
	})
	return nil
}

func (f *fakeNotifier) GetNotifications(_ context.Context, userID string) (*dto.NotificationListResponse, error) {
	var out []*models.Notification
	for _, n := range f.sent {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return &dto.NotificationListResponse{Count: len(out), Notifications: out}, nil
}

func (f *fakeNotifier) MarkRead(_ context.Context, _, _ string) error  { return nil }
func (f *fakeNotifier) MarkAllRead(_ context.Context, _ string) error { return nil }
func (f *fakeNotifier) DeleteNotification(_ context.Context, _, _ string) error {
	return nil
}

func (f *fakeNotifier) byType(notificationType models.NotificationType) []*models.Notification {
	var out []*models.Notification
	for _, n := range f.sent {
		if n.Type == notificationType {
			out = append(out, n)
		}
	}
	return out
}

// fakeBadgeEvaluator records evaluation calls without awarding anything.
type fakeBadgeEvaluator struct {
	evaluated []string
}

func (f *fakeBadgeEvaluator) GetAllBadges(_ context.Context) (*dto.BadgeListResponse, error) {
	return &dto.BadgeListResponse{}, nil
}

func (f *fakeBadgeEvaluator) GetUserBadges(_ context.Context, _ string) (*dto.UserBadgeListResponse, error) {
	return &dto.UserBadgeListResponse{}, nil
}

func (f *fakeBadgeEvaluator) EvaluateForUser(_ context.Context, userID string) ([]*models.Badge, error) {
	f.evaluated = append(f.evaluated, userID)
	return nil, nil
}
