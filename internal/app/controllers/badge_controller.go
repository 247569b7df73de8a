package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/fitpulse/internal/app/models/dto"
	"github.com/oguzk/fitpulse/internal/app/services"
	"github.com/oguzk/fitpulse/internal/middleware"
)

// BadgeController handles the badge catalog and earned badges
type BadgeController struct {
	badgeService services.BadgeService
}

// NewBadgeController creates a new BadgeController
func NewBadgeController(badgeService services.BadgeService) *BadgeController {
	return &BadgeController{badgeService: badgeService}
}

// GetAllBadges lists the badge catalog
// @Summary List badges
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.BadgeListResponse}
// @Router /badges [get]
func (c *BadgeController) GetAllBadges(ctx *gin.Context) {
	resp, err := c.badgeService.GetAllBadges(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Badges retrieved successfully"))
}

// GetMyBadges lists the caller's earned badges
// @Summary List own badges
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserBadgeListResponse}
// @Router /badges/mine [get]
func (c *BadgeController) GetMyBadges(ctx *gin.Context) {
	resp, err := c.badgeService.GetUserBadges(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Badges retrieved successfully"))
}
