package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/services"
	"github.com/oguzk/fitpulse/internal/middleware"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// ChallengeController handles the challenge lifecycle and participation
type ChallengeController struct {
	challengeService services.ChallengeService
}

// NewChallengeController creates a new ChallengeController
func NewChallengeController(challengeService services.ChallengeService) *ChallengeController {
	return &ChallengeController{challengeService: challengeService}
}

// CreateChallenge creates a challenge
// @Summary Create a challenge
// @Description Creates a challenge in active status. Dates are RFC 3339 strings.
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateChallengeRequest true "Challenge payload"
// @Success 201 {object} dto.APIResponse{data=models.Challenge}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Router /challenges [post]
func (c *ChallengeController) CreateChallenge(ctx *gin.Context) {
	var req dto.CreateChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	challenge, err := c.challengeService.CreateChallenge(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(challenge, "Challenge created successfully"))
}

// GetChallenges lists challenges
// @Summary List challenges
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by type"
// @Param difficulty query string false "Filter by difficulty"
// @Param isPublic query bool false "Filter by public/private flag"
// @Param gymId query string false "Filter by gym"
// @Success 200 {object} dto.APIResponse{data=dto.ChallengeListResponse}
// @Router /challenges [get]
func (c *ChallengeController) GetChallenges(ctx *gin.Context) {
	var filter dto.ChallengeFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid query parameters"))
		return
	}

	resp, err := c.challengeService.GetChallenges(ctx.Request.Context(), middleware.CurrentUserRole(ctx), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Challenges retrieved successfully"))
}

// GetMyChallenges lists the challenges the caller created
// @Summary List own challenges
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ChallengeListResponse}
// @Router /challenges/mine [get]
func (c *ChallengeController) GetMyChallenges(ctx *gin.Context) {
	resp, err := c.challengeService.GetMyChallenges(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Challenges retrieved successfully"))
}

// GetChallengeByID retrieves one challenge with relations
// @Summary Get a challenge
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} dto.APIResponse{data=models.Challenge}
// @Failure 404 {object} dto.APIResponse "Challenge not found"
// @Router /challenges/{id} [get]
func (c *ChallengeController) GetChallengeByID(ctx *gin.Context) {
	challenge, err := c.challengeService.GetChallengeByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(challenge, "Challenge retrieved successfully"))
}

// UpdateChallenge updates a challenge
// @Summary Update a challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Param request body dto.UpdateChallengeRequest true "Challenge fields"
// @Success 200 {object} dto.APIResponse{data=models.Challenge}
// @Router /challenges/{id} [put]
func (c *ChallengeController) UpdateChallenge(ctx *gin.Context) {
	var req dto.UpdateChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	challenge, err := c.challengeService.UpdateChallenge(ctx.Request.Context(), ctx.Param("id"),
		middleware.CurrentUserID(ctx), middleware.CurrentUserRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(challenge, "Challenge updated successfully"))
}

// CancelChallenge cancels a challenge
// @Summary Cancel a challenge
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Challenge is no longer active"
// @Router /challenges/{id} [delete]
func (c *ChallengeController) CancelChallenge(ctx *gin.Context) {
	err := c.challengeService.CancelChallenge(ctx.Request.Context(), ctx.Param("id"),
		middleware.CurrentUserID(ctx), middleware.CurrentUserRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Challenge cancelled"))
}

// JoinChallenge enrolls the caller in a challenge
// @Summary Join a challenge
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 201 {object} dto.APIResponse{data=models.Participation} "Joined"
// @Failure 404 {object} dto.APIResponse "Challenge not found"
// @Failure 409 {object} dto.APIResponse "Already participating, challenge full, or challenge ended"
// @Router /challenges/{id}/join [post]
func (c *ChallengeController) JoinChallenge(ctx *gin.Context) {
	participation, err := c.challengeService.JoinChallenge(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(participation, "Joined challenge successfully"))
}

// LeaveChallenge abandons the caller's participation
// @Summary Leave a challenge
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} dto.APIResponse{data=models.Participation} "Left"
// @Failure 404 {object} dto.APIResponse "Not participating"
// @Failure 409 {object} dto.APIResponse "Completed challenges cannot be left"
// @Router /challenges/{id}/leave [post]
func (c *ChallengeController) LeaveChallenge(ctx *gin.Context) {
	participation, err := c.challengeService.LeaveChallenge(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(participation, "Left challenge successfully"))
}

// GetParticipants lists a challenge's participants
// @Summary List challenge participants
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} dto.APIResponse{data=dto.ParticipationListResponse}
// @Router /challenges/{id}/participants [get]
func (c *ChallengeController) GetParticipants(ctx *gin.Context) {
	resp, err := c.challengeService.GetParticipants(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Participants retrieved successfully"))
}

// GetMyParticipations lists the caller's participations
// @Summary List own participations
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ParticipationListResponse}
// @Router /challenges/my-participations [get]
func (c *ChallengeController) GetMyParticipations(ctx *gin.Context) {
	resp, err := c.challengeService.GetMyParticipations(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Participations retrieved successfully"))
}
