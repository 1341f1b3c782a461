package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/majorpath/internal/app/services"
	"github.com/yigit/majorpath/internal/middleware"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// PredictController runs questionnaire predictions
type PredictController struct {
	predictionService services.PredictionService
}

// NewPredictController creates a new PredictController
func NewPredictController(predictionService services.PredictionService) *PredictController {
	return &PredictController{predictionService: predictionService}
}

// Predict classifies a questionnaire
// @Summary Predict matching majors
// @Description Validates the twelve questionnaire fields and returns the classifier ranking. Extra keys are forwarded to the classifier unchanged.
// @Tags predict
// @Accept json
// @Produce json
// @Param request body dto.PredictRequest true "Questionnaire answers"
// @Success 200 {object} dto.PredictResponse "Prediction completed"
// @Failure 400 {object} dto.ErrorResponse "Empty input, missing fields, invalid value or grade out of range"
// @Failure 500 {object} dto.ErrorResponse "Classifier failed or produced no usable result"
// @Router /predict [post]
func (c *PredictController) Predict(ctx *gin.Context) {
	var input map[string]interface{}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		middleware.HandleAPIError(ctx, &apperrors.ValidationError{
			Kind:    apperrors.ErrEmptyInput,
			Message: "input is empty or invalid",
		})
		return
	}

	resp, err := c.predictionService.Predict(ctx.Request.Context(), input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
