package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/majorpath/internal/app/models/dto"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
	"github.com/yigit/majorpath/internal/pkg/logger"
)

// diagnosticsEnabled reports whether internal error text and raw classifier
// output may be returned to clients.
func diagnosticsEnabled() bool {
	return gin.Mode() != gin.ReleaseMode
}

// HandleAPIError maps err to a status code and error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, detail := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request failed")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

func mapError(err error) (int, *dto.ErrorDetail) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationDetail(validationErr)
	}

	var predictionErr *apperrors.PredictionError
	if errors.As(err, &predictionErr) {
		return http.StatusInternalServerError, predictionDetail(predictionErr)
	}

	var saveErr *apperrors.SaveError
	if errors.As(err, &saveErr) {
		return http.StatusInternalServerError, saveDetail(saveErr)
	}

	switch {
	case errors.Is(err, apperrors.ErrIncompleteSaveData):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeIncompleteSaveData, messageOr(err, "Incomplete data"))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, withCustomDetails(dto.NewErrorDetail(dto.ErrorCodeBadRequest, messageOr(err, "Bad request")), err)
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Session not found")
	case errors.Is(err, apperrors.ErrMajorNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Major not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, messageOr(err, "Permission denied"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already registered")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	if diagnosticsEnabled() {
		detail = detail.WithDetails(err.Error())
	}
	return http.StatusInternalServerError, detail
}

func validationDetail(err *apperrors.ValidationError) *dto.ErrorDetail {
	code := dto.ErrorCodeValidationFailed
	switch {
	case errors.Is(err, apperrors.ErrEmptyInput):
		code = dto.ErrorCodeEmptyInput
	case errors.Is(err, apperrors.ErrMissingFields):
		code = dto.ErrorCodeMissingFields
	case errors.Is(err, apperrors.ErrInvalidEnum):
		code = dto.ErrorCodeInvalidEnum
	case errors.Is(err, apperrors.ErrInvalidRange):
		code = dto.ErrorCodeInvalidRange
	}

	detail := dto.NewErrorDetail(code, err.Error())
	if err.Field != "" {
		detail = detail.WithField(err.Field)
	}
	if len(err.Allowed) > 0 {
		detail = detail.WithDetails(map[string]interface{}{"allowed": err.Allowed})
	}
	if len(err.MissingFields) > 0 {
		detail = detail.WithMissingFields(err.MissingFields)
	}
	return detail
}

func predictionDetail(err *apperrors.PredictionError) *dto.ErrorDetail {
	code := dto.ErrorCodePredictionFailed
	message := "Failed to run prediction"
	switch {
	case errors.Is(err, apperrors.ErrNoPredictionOutput):
		code = dto.ErrorCodeNoPredictionOutput
		message = "Prediction produced no output"
	case errors.Is(err, apperrors.ErrMalformedPredictionOutput):
		code = dto.ErrorCodeMalformedPrediction
		message = "Prediction output could not be parsed"
	case errors.Is(err, context.Canceled):
		message = "Prediction canceled"
	}

	detail := dto.NewErrorDetail(code, message)
	if diagnosticsEnabled() {
		if err.Details != "" {
			detail = detail.WithDetails(err.Details)
		}
		if len(err.RawOutput) > 0 {
			detail = detail.WithRawOutput(err.RawOutput)
		}
	}
	return detail
}

// saveDetail always reports which entry aborted the save; the text names
// client-supplied data only.
func saveDetail(err *apperrors.SaveError) *dto.ErrorDetail {
	code := dto.ErrorCodeDatabaseError
	switch {
	case errors.Is(err, apperrors.ErrUnknownMajor):
		code = dto.ErrorCodeUnknownMajor
	case errors.Is(err, apperrors.ErrIncompleteAnswer):
		code = dto.ErrorCodeIncompleteAnswer
	case errors.Is(err, apperrors.ErrIncompleteRecommendation):
		code = dto.ErrorCodeIncompleteRecommendation
	}
	return dto.NewErrorDetail(code, "Failed to save result").WithDetails(err.Error())
}

func messageOr(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}

func withCustomDetails(detail *dto.ErrorDetail, err error) *dto.ErrorDetail {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && len(customErr.Details) > 0 {
		return detail.WithDetails(customErr.Details)
	}
	return detail
}
