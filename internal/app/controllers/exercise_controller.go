package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/services"
	"github.com/oguzk/fitpulse/internal/middleware"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// ExerciseController handles the exercise catalog
type ExerciseController struct {
	exerciseService services.ExerciseService
}

// NewExerciseController creates a new ExerciseController
func NewExerciseController(exerciseService services.ExerciseService) *ExerciseController {
	return &ExerciseController{exerciseService: exerciseService}
}

// CreateExercise adds an exercise to the catalog
// @Summary Create an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExerciseRequest true "Exercise payload"
// @Success 201 {object} dto.APIResponse{data=models.Exercise}
// @Router /exercises [post]
func (c *ExerciseController) CreateExercise(ctx *gin.Context) {
	var req dto.CreateExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	exercise, err := c.exerciseService.CreateExercise(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(exercise, "Exercise created successfully"))
}

// GetExercises lists catalog exercises
// @Summary List exercises
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param difficulty query string false "Filter by difficulty"
// @Param muscleGroup query string false "Filter by muscle group"
// @Param search query string false "Search by name"
// @Success 200 {object} dto.APIResponse{data=[]models.Exercise}
// @Router /exercises [get]
func (c *ExerciseController) GetExercises(ctx *gin.Context) {
	var filter dto.ExerciseFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid query parameters"))
		return
	}

	exercises, err := c.exerciseService.GetExercises(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exercises, "Exercises retrieved successfully"))
}

// GetExerciseByID retrieves one exercise
// @Summary Get an exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} dto.APIResponse{data=models.Exercise}
// @Failure 404 {object} dto.APIResponse "Exercise not found"
// @Router /exercises/{id} [get]
func (c *ExerciseController) GetExerciseByID(ctx *gin.Context) {
	exercise, err := c.exerciseService.GetExerciseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exercise, "Exercise retrieved successfully"))
}

// UpdateExercise updates an exercise
// @Summary Update an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param request body dto.UpdateExerciseRequest true "Exercise fields"
// @Success 200 {object} dto.APIResponse{data=models.Exercise}
// @Router /exercises/{id} [put]
func (c *ExerciseController) UpdateExercise(ctx *gin.Context) {
	var req dto.UpdateExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	exercise, err := c.exerciseService.UpdateExercise(ctx.Request.Context(), ctx.Param("id"),
		middleware.CurrentUserID(ctx), middleware.CurrentUserRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exercise, "Exercise updated successfully"))
}

// DeleteExercise removes an exercise
// @Summary Delete an exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} dto.APIResponse
// @Router /exercises/{id} [delete]
func (c *ExerciseController) DeleteExercise(ctx *gin.Context) {
	err := c.exerciseService.DeleteExercise(ctx.Request.Context(), ctx.Param("id"),
		middleware.CurrentUserID(ctx), middleware.CurrentUserRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Exercise deleted successfully"))
}
