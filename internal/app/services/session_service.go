package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/app/models/dto"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// SessionService defines operations on saved prediction sessions. callerID is
// the authenticated user; every operation is limited to the caller's own data.
type SessionService interface {
	SaveResult(ctx context.Context, callerID int64, req *dto.SaveResultRequest) (int64, error)
	GetHistory(ctx context.Context, callerID, userID int64) ([]models.PredictionSession, error)
	GetSession(ctx context.Context, callerID, sessionID int64) (*models.PredictionSession, error)
	DeleteSession(ctx context.Context, callerID, sessionID int64) error
}

type sessionServiceImpl struct {
	store  SessionStore
	logger zerolog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(store SessionStore, logger zerolog.Logger) SessionService {
	return &sessionServiceImpl{
		store:  store,
		logger: logger.With().Str("service", "session").Logger(),
	}
}

// SaveResult checks the request shape and ownership, then stores it in one
// transaction. Empty answer or recommendation lists are allowed.
func (s *sessionServiceImpl) SaveResult(ctx context.Context, callerID int64, req *dto.SaveResultRequest) (int64, error) {
	if req == nil || req.UserID == nil || *req.UserID <= 0 || req.Answers == nil || req.Recommendations == nil {
		return 0, apperrors.NewCustomError(apperrors.ErrIncompleteSaveData, "userId, answers and recommendations are required")
	}
	if *req.UserID != callerID {
		return 0, apperrors.NewForbiddenError("cannot save results for another user")
	}

	sessionID, err := s.store.Create(ctx, models.NewSession{
		UserID:          *req.UserID,
		Answers:         dto.ToAnswerInputs(req.Answers),
		Recommendations: dto.ToRecommendationInputs(req.Recommendations),
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", callerID).Msg("Failed to save prediction session")
		return 0, err
	}

	s.logger.Info().
		Int64("userID", callerID).
		Int64("sessionID", sessionID).
		Int("answers", len(req.Answers)).
		Int("recommendations", len(req.Recommendations)).
		Msg("Prediction session saved")
	return sessionID, nil
}

func (s *sessionServiceImpl) GetHistory(ctx context.Context, callerID, userID int64) ([]models.PredictionSession, error) {
	if userID != callerID {
		return nil, apperrors.NewForbiddenError("cannot read another user's history")
	}

	sessions, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionServiceImpl) GetSession(ctx context.Context, callerID, sessionID int64) (*models.PredictionSession, error) {
	session, err := s.store.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != callerID {
		return nil, apperrors.NewForbiddenError("cannot read another user's session")
	}
	return session, nil
}

func (s *sessionServiceImpl) DeleteSession(ctx context.Context, callerID, sessionID int64) error {
	ownerID, err := s.store.OwnerID(ctx, sessionID)
	if err != nil {
		return err
	}
	if ownerID != callerID {
		return apperrors.NewForbiddenError("cannot delete another user's session")
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", callerID).Int64("sessionID", sessionID).Msg("Prediction session deleted")
	return nil
}
