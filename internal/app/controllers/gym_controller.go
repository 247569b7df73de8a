package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/services"
	"github.com/oguzk/fitpulse/internal/middleware"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// GymController handles gym registration and review
type GymController struct {
	gymService services.GymService
}

// NewGymController creates a new GymController
func NewGymController(gymService services.GymService) *GymController {
	return &GymController{gymService: gymService}
}

// CreateGym registers a gym pending review
// @Summary Register a gym
// @Tags gyms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGymRequest true "Gym payload"
// @Success 201 {object} dto.APIResponse{data=models.Gym}
// @Router /gyms [post]
func (c *GymController) CreateGym(ctx *gin.Context) {
	var req dto.CreateGymRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	gym, err := c.gymService.CreateGym(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gym, "Gym registered successfully"))
}

// GetGyms lists gyms
// @Summary List gyms
// @Tags gyms
// @Produce json
// @Security BearerAuth
// @Param city query string false "Filter by city"
// @Success 200 {object} dto.APIResponse{data=[]models.Gym}
// @Router /gyms [get]
func (c *GymController) GetGyms(ctx *gin.Context) {
	gyms, err := c.gymService.GetGyms(ctx.Request.Context(), middleware.CurrentUserRole(ctx), ctx.Query("city"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gyms, "Gyms retrieved successfully"))
}

// GetGymByID retrieves one gym
// @Summary Get a gym
// @Tags gyms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gym ID"
// @Success 200 {object} dto.APIResponse{data=models.Gym}
// @Failure 404 {object} dto.APIResponse "Gym not found"
// @Router /gyms/{id} [get]
func (c *GymController) GetGymByID(ctx *gin.Context) {
	gym, err := c.gymService.GetGymByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gym, "Gym retrieved successfully"))
}

// GetMyGyms lists the authenticated owner's gyms
// @Summary List own gyms
// @Tags gyms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Gym}
// @Router /gyms/mine [get]
func (c *GymController) GetMyGyms(ctx *gin.Context) {
	gyms, err := c.gymService.GetMyGyms(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gyms, "Gyms retrieved successfully"))
}

// UpdateGym updates a gym's details
// @Summary Update a gym
// @Tags gyms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gym ID"
// @Param request body dto.UpdateGymRequest true "Gym fields"
// @Success 200 {object} dto.APIResponse{data=models.Gym}
// @Router /gyms/{id} [put]
func (c *GymController) UpdateGym(ctx *gin.Context) {
	var req dto.UpdateGymRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	gym, err := c.gymService.UpdateGym(ctx.Request.Context(), ctx.Param("id"),
		middleware.CurrentUserID(ctx), middleware.CurrentUserRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gym, "Gym updated successfully"))
}

// ApproveGym approves a pending gym
// @Summary Approve a gym
// @Tags gyms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gym ID"
// @Success 200 {object} dto.APIResponse{data=models.Gym}
// @Failure 409 {object} dto.APIResponse "Gym already approved"
// @Router /gyms/{id}/approve [post]
func (c *GymController) ApproveGym(ctx *gin.Context) {
	gym, err := c.gymService.ApproveGym(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gym, "Gym approved successfully"))
}

// RejectGym rejects a pending gym
// @Summary Reject a gym
// @Tags gyms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gym ID"
// @Param request body dto.RejectGymRequest false "Rejection reason"
// @Success 200 {object} dto.APIResponse{data=models.Gym}
// @Router /gyms/{id}/reject [post]
func (c *GymController) RejectGym(ctx *gin.Context) {
	var req dto.RejectGymRequest
	// The body is optional; rejection without a reason is allowed.
	_ = ctx.ShouldBindJSON(&req)

	gym, err := c.gymService.RejectGym(ctx.Request.Context(), ctx.Param("id"), req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gym, "Gym rejected"))
}

// DeleteGym removes a gym
// @Summary Delete a gym
// @Tags gyms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gym ID"
// @Success 200 {object} dto.APIResponse
// @Router /gyms/{id} [delete]
func (c *GymController) DeleteGym(ctx *gin.Context) {
	err := c.gymService.DeleteGym(ctx.Request.Context(), ctx.Param("id"),
		middleware.CurrentUserID(ctx), middleware.CurrentUserRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Gym deleted successfully"))
}
