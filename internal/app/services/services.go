// Package services holds the business logic between controllers and repositories.
//
// Services defined in this package:
//   - PredictionService: validates a questionnaire and runs the classifier
//   - SessionService: stores, lists, reads and deletes prediction sessions for their owner
//   - MajorService: reads the majors catalog
//   - AuthService: registration, login and profile lookup
package services

import (
	"context"

	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/pkg/classifier"
)

// Predictor runs one classification. *classifier.Invoker implements it.
type Predictor interface {
	Predict(ctx context.Context, input map[string]string) (*classifier.Result, error)
}

// SessionStore persists prediction sessions. *repositories.SessionRepository implements it.
type SessionStore interface {
	Create(ctx context.Context, session models.NewSession) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.PredictionSession, error)
	GetByID(ctx context.Context, sessionID int64) (*models.PredictionSession, error)
	OwnerID(ctx context.Context, sessionID int64) (int64, error)
	Delete(ctx context.Context, sessionID int64) error
}

// MajorStore reads majors. *repositories.MajorRepository implements it.
type MajorStore interface {
	List(ctx context.Context) ([]models.Major, error)
	GetByName(ctx context.Context, name string) (*models.Major, error)
}

// UserStore persists users. *repositories.UserRepository implements it.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// TokenIssuer signs access tokens. *auth.JWTService implements it.
type TokenIssuer interface {
	GenerateAccessToken(user *models.User) (string, int64, error)
}
