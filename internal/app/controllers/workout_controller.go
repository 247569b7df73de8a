package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/services"
	"github.com/oguzk/fitpulse/internal/middleware"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// WorkoutController handles workout recording
type WorkoutController struct {
	workoutService services.WorkoutService
}

// NewWorkoutController creates a new WorkoutController
func NewWorkoutController(workoutService services.WorkoutService) *WorkoutController {
	return &WorkoutController{workoutService: workoutService}
}

// CreateWorkout records a workout
// @Summary Record a workout
// @Description Records a workout. With participationId set, the workout also advances that challenge participation.
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWorkoutRequest true "Workout payload"
// @Success 201 {object} dto.APIResponse{data=models.Workout}
// @Failure 403 {object} dto.APIResponse "Participation belongs to another user"
// @Router /workouts [post]
func (c *WorkoutController) CreateWorkout(ctx *gin.Context) {
	var req dto.CreateWorkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	workout, err := c.workoutService.CreateWorkout(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(workout, "Workout recorded successfully"))
}

// GetMyWorkouts lists the caller's workouts
// @Summary List own workouts
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.WorkoutListResponse}
// @Router /workouts [get]
func (c *WorkoutController) GetMyWorkouts(ctx *gin.Context) {
	resp, err := c.workoutService.GetMyWorkouts(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Workouts retrieved successfully"))
}

// DeleteWorkout removes a workout
// @Summary Delete a workout
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Success 200 {object} dto.APIResponse
// @Router /workouts/{id} [delete]
func (c *WorkoutController) DeleteWorkout(ctx *gin.Context) {
	if err := c.workoutService.DeleteWorkout(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Workout deleted successfully"))
}
