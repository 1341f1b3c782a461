package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/majorpath/internal/app/models/dto"
	"github.com/yigit/majorpath/internal/app/services"
	"github.com/yigit/majorpath/internal/middleware"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// UserController serves the authenticated user's own account
type UserController struct {
	authService services.AuthService
}

// NewUserController creates a new UserController
func NewUserController(authService services.AuthService) *UserController {
	return &UserController{authService: authService}
}

// GetProfile returns the authenticated user
// @Summary Get current user
// @Description Returns the account identified by the bearer token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "Current user"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /user/me [get]
// @Router /user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	user, err := c.authService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
