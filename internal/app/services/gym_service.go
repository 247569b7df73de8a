package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/repositories"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// GymService defines the interface for gym operations
type GymService interface {
	CreateGym(ctx context.Context, ownerID string, req *dto.CreateGymRequest) (*models.Gym, error)
	GetGyms(ctx context.Context, requesterRole models.UserRole, city string) ([]*models.Gym, error)
	GetGymByID(ctx context.Context, id string) (*models.Gym, error)
	GetMyGyms(ctx context.Context, ownerID string) ([]*models.Gym, error)
	UpdateGym(ctx context.Context, gymID, requesterID string, requesterRole models.UserRole, req *dto.UpdateGymRequest) (*models.Gym, error)
	ApproveGym(ctx context.Context, gymID string) (*models.Gym, error)
	RejectGym(ctx context.Context, gymID, reason string) (*models.Gym, error)
	DeleteGym(ctx context.Context, gymID, requesterID string, requesterRole models.UserRole) error
}

// gymServiceImpl implements GymService
type gymServiceImpl struct {
	gymRepo       repositories.IGymRepository
	userRepo      repositories.IUserRepository
	notifications NotificationService
	logger        zerolog.Logger
}

// NewGymService creates a new GymService
func NewGymService(
	gymRepo repositories.IGymRepository,
	userRepo repositories.IUserRepository,
	notifications NotificationService,
	logger zerolog.Logger,
) GymService {
	return &gymServiceImpl{
		gymRepo:       gymRepo,
		userRepo:      userRepo,
		notifications: notifications,
		logger:        logger,
	}
}

// CreateGym registers a gym in pending status for review
func (s *gymServiceImpl) CreateGym(ctx context.Context, ownerID string, req *dto.CreateGymRequest) (*models.Gym, error) {
	gym := &models.Gym{
		ID:                       uuid.New().String(),
		Name:                     req.Name,
		Address:                  req.Address,
		City:                     req.City,
		Description:              req.Description,
		Phone:                    req.Phone,
		Email:                    req.Email,
		Capacity:                 req.Capacity,
		Equipment:                req.Equipment,
		SpecializedExerciseTypes: req.SpecializedExerciseTypes,
		Status:                   models.GymStatusPending,
		OwnerID:                  ownerID,
	}

	if err := s.gymRepo.Create(ctx, gym); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("gymId", gym.ID).
		Str("ownerId", ownerID).
		Msg("Gym registered, pending review")
	return gym, nil
}

// GetGyms lists gyms. Administrators see every gym; everyone else only
// sees approved ones.
func (s *gymServiceImpl) GetGyms(ctx context.Context, requesterRole models.UserRole, city string) ([]*models.Gym, error) {
	status := models.GymStatusApproved
	if requesterRole == models.RoleSuperAdmin {
		status = ""
	}

	gyms, err := s.gymRepo.GetAll(ctx, status, city)
	if err != nil {
		return nil, err
	}
	if gyms == nil {
		gyms = []*models.Gym{}
	}
	return gyms, nil
}

// GetGymByID retrieves a gym with its owner
func (s *gymServiceImpl) GetGymByID(ctx context.Context, id string) (*models.Gym, error) {
	gym, err := s.gymRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, gym.OwnerID)
	if err == nil {
		gym.Owner = owner
	}
	return gym, nil
}

// GetMyGyms lists the gyms registered by an owner, in any status
func (s *gymServiceImpl) GetMyGyms(ctx context.Context, ownerID string) ([]*models.Gym, error) {
	gyms, err := s.gymRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if gyms == nil {
		gyms = []*models.Gym{}
	}
	return gyms, nil
}

// UpdateGym applies the non-nil fields of the request. Only the owner or
// an administrator may update a gym.
func (s *gymServiceImpl) UpdateGym(ctx context.Context, gymID, requesterID string, requesterRole models.UserRole, req *dto.UpdateGymRequest) (*models.Gym, error) {
	gym, err := s.gymRepo.GetByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	if gym.OwnerID != requesterID && requesterRole != models.RoleSuperAdmin {
		return nil, apperrors.NewForbiddenError("Only the gym owner can update this gym")
	}

	if req.Name != nil {
		gym.Name = *req.Name
	}
	if req.Address != nil {
		gym.Address = *req.Address
	}
	if req.City != nil {
		gym.City = *req.City
	}
	if req.Description != nil {
		gym.Description = *req.Description
	}
	if req.Phone != nil {
		gym.Phone = *req.Phone
	}
	if req.Email != nil {
		gym.Email = *req.Email
	}
	if req.Capacity != nil {
		gym.Capacity = *req.Capacity
	}
	if req.Equipment != nil {
		gym.Equipment = req.Equipment
	}
	if req.SpecializedExerciseTypes != nil {
		gym.SpecializedExerciseTypes = req.SpecializedExerciseTypes
	}

	if err := s.gymRepo.Update(ctx, gym); err != nil {
		return nil, err
	}
	return gym, nil
}

// ApproveGym marks a pending gym as approved and notifies the owner
func (s *gymServiceImpl) ApproveGym(ctx context.Context, gymID string) (*models.Gym, error) {
	gym, err := s.gymRepo.GetByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	if gym.Status == models.GymStatusApproved {
		return nil, apperrors.NewConflictError("Gym is already approved")
	}

	if err := s.gymRepo.UpdateStatus(ctx, gymID, models.GymStatusApproved); err != nil {
		return nil, err
	}
	gym.Status = models.GymStatusApproved

	if err := s.notifications.Notify(ctx, gym.OwnerID, models.NotificationGymApproved,
		"Gym approved", fmt.Sprintf("Your gym %q has been approved.", gym.Name)); err != nil {
		s.logger.Warn().Err(err).Str("gymId", gymID).Msg("Gym approved but notification failed")
	}

	s.logger.Info().Str("gymId", gymID).Msg("Gym approved")
	return gym, nil
}

// RejectGym marks a pending gym as rejected and notifies the owner with
// the review reason
func (s *gymServiceImpl) RejectGym(ctx context.Context, gymID, reason string) (*models.Gym, error) {
	gym, err := s.gymRepo.GetByID(ctx, gymID)
	if err != nil {
		return nil, err
	}

	if gym.Status == models.GymStatusRejected {
		return nil, apperrors.NewConflictError("Gym is already rejected")
	}

	if err := s.gymRepo.UpdateStatus(ctx, gymID, models.GymStatusRejected); err != nil {
		return nil, err
	}
	gym.Status = models.GymStatusRejected

	message := fmt.Sprintf("Your gym %q has been rejected.", gym.Name)
	if reason != "" {
		message = fmt.Sprintf("Your gym %q has been rejected: %s", gym.Name, reason)
	}
	if err := s.notifications.Notify(ctx, gym.OwnerID, models.NotificationGymRejected, "Gym rejected", message); err != nil {
		s.logger.Warn().Err(err).Str("gymId", gymID).Msg("Gym rejected but notification failed")
	}

	s.logger.Info().Str("gymId", gymID).Str("reason", reason).Msg("Gym rejected")
	return gym, nil
}

// DeleteGym removes a gym. Only the owner or an administrator may delete.
func (s *gymServiceImpl) DeleteGym(ctx context.Context, gymID, requesterID string, requesterRole models.UserRole) error {
	gym, err := s.gymRepo.GetByID(ctx, gymID)
	if err != nil {
		return err
	}

	if gym.OwnerID != requesterID && requesterRole != models.RoleSuperAdmin {
		return apperrors.NewForbiddenError("Only the gym owner can delete this gym")
	}

	return s.gymRepo.Delete(ctx, gymID)
}
