package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/majorpath/internal/app/models/dto"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
	"github.com/yigit/majorpath/internal/pkg/validation"
)

// PredictionService defines the questionnaire prediction pipeline
type PredictionService interface {
	Predict(ctx context.Context, input map[string]interface{}) (*dto.PredictResponse, error)
}

type predictionServiceImpl struct {
	predictor Predictor
	logger    zerolog.Logger
}

// NewPredictionService creates a new prediction service instance
func NewPredictionService(predictor Predictor, logger zerolog.Logger) PredictionService {
	return &predictionServiceImpl{
		predictor: predictor,
		logger:    logger.With().Str("service", "prediction").Logger(),
	}
}

// Predict validates input and classifies it. Validation failures return
// before the classifier is started.
func (s *predictionServiceImpl) Predict(ctx context.Context, input map[string]interface{}) (*dto.PredictResponse, error) {
	questionnaire := validation.NormalizeQuestionnaire(input)
	if err := validation.ValidateQuestionnaire(questionnaire); err != nil {
		s.logger.Debug().Err(err).Int("fields", len(questionnaire)).Msg("Questionnaire rejected")
		return nil, err
	}

	start := time.Now()
	result, err := s.predictor.Predict(ctx, questionnaire)
	if err != nil {
		event := s.logger.Error()
		if errors.Is(err, context.Canceled) {
			event = s.logger.Warn()
		}
		var predErr *apperrors.PredictionError
		if errors.As(err, &predErr) {
			event = event.Int("rawLines", len(predErr.RawOutput))
		}
		event.Err(err).Dur("duration", time.Since(start)).Msg("Prediction failed")
		return nil, err
	}

	ranking := make([]dto.MajorScore, 0, len(result.Ranking))
	for _, entry := range result.Ranking {
		ranking = append(ranking, dto.MajorScore{MajorName: entry.MajorName, Score: entry.Score})
	}

	s.logger.Info().
		Int("fields", len(questionnaire)).
		Int("ranked", len(ranking)).
		Dur("duration", time.Since(start)).
		Msg("Prediction completed")

	return &dto.PredictResponse{
		Success:    true,
		Message:    "Prediction completed",
		Prediction: result.Prediction,
		Result:     ranking,
		Top3:       result.Top3(),
	}, nil
}
