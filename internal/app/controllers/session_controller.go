package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/app/models/dto"
	"github.com/yigit/majorpath/internal/app/services"
	"github.com/yigit/majorpath/internal/middleware"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
	"github.com/yigit/majorpath/internal/pkg/helpers"
)

// SessionController stores and serves saved prediction sessions
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

func callerID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
	}
	return userID, ok
}

// SaveResult stores a prediction with its answers
// @Summary Save a prediction result
// @Description Stores the answers and ranked recommendations of one prediction in a single transaction. Every recommended major must exist.
// @Tags predict
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveResultRequest true "Prediction to store"
// @Success 200 {object} dto.SaveResultResponse "Result saved"
// @Failure 400 {object} dto.ErrorResponse "userId, answers or recommendations missing"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "userId does not match the token"
// @Failure 500 {object} dto.ErrorResponse "Unknown major or incomplete entry, nothing stored"
// @Router /predict/save-result [post]
func (c *SessionController) SaveResult(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.SaveResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	sessionID, err := c.sessionService.SaveResult(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SaveResultResponse{
		Success:   true,
		Message:   "Result saved",
		SessionID: sessionID,
	})
}

// GetHistory lists a user's sessions
// @Summary Get prediction history
// @Description Lists the caller's sessions, most recent first, each with answers and recommendations
// @Tags predict
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} dto.HistoryResponse "Sessions"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Another user's history"
// @Router /predict/history/{userId} [get]
func (c *SessionController) GetHistory(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	requestedID, err := helpers.ParseIDParam(ctx, "userId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sessions, err := c.sessionService.GetHistory(ctx.Request.Context(), userID, requestedID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if sessions == nil {
		sessions = []models.PredictionSession{}
	}

	ctx.JSON(http.StatusOK, dto.HistoryResponse{
		Success: true,
		Data:    sessions,
		Count:   len(sessions),
	})
}

// GetSession returns one session
// @Summary Get a prediction session
// @Tags predict
// @Produce json
// @Security BearerAuth
// @Param sessionId path int true "Session ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SessionResponse "Session"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Another user's session"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /predict/session/{sessionId} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	sessionID, err := helpers.ParseIDParam(ctx, "sessionId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	session, err := c.sessionService.GetSession(ctx.Request.Context(), userID, sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{Success: true, Data: *session})
}

// DeleteSession removes a session with its answers and recommendations
// @Summary Delete a prediction session
// @Tags predict
// @Produce json
// @Security BearerAuth
// @Param sessionId path int true "Session ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Session deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Another user's session"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /predict/session/{sessionId} [delete]
// @Router /predict/history/{sessionId} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	sessionID, err := helpers.ParseIDParam(ctx, "sessionId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.sessionService.DeleteSession(ctx.Request.Context(), userID, sessionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Session deleted"))
}
