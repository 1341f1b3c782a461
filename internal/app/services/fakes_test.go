package services

import (
	"context"

	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
	"github.com/yigit/majorpath/internal/pkg/classifier"
)

type fakePredictor struct {
	result *classifier.Result
	err    error
	calls  int
	input  map[string]string
}

func (f *fakePredictor) Predict(_ context.Context, input map[string]string) (*classifier.Result, error) {
	f.calls++
	f.input = input
	return f.result, f.err
}

type fakeSessionStore struct {
	sessions map[int64]*models.PredictionSession
	created  []models.NewSession
	deleted  []int64
	createFn func(models.NewSession) (int64, error)
}

func newFakeSessionStore(sessions ...models.PredictionSession) *fakeSessionStore {
	store := &fakeSessionStore{sessions: make(map[int64]*models.PredictionSession)}
	for i := range sessions {
		s := sessions[i]
		store.sessions[s.ID] = &s
	}
	return store
}

func (f *fakeSessionStore) Create(_ context.Context, session models.NewSession) (int64, error) {
	f.created = append(f.created, session)
	if f.createFn != nil {
		return f.createFn(session)
	}
	return int64(100 + len(f.created)), nil
}

func (f *fakeSessionStore) ListByUser(_ context.Context, userID int64) ([]models.PredictionSession, error) {
	out := make([]models.PredictionSession, 0)
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) GetByID(_ context.Context, sessionID int64) (*models.PredictionSession, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) OwnerID(_ context.Context, sessionID int64) (int64, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return 0, apperrors.ErrSessionNotFound
	}
	return s.UserID, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, sessionID int64) error {
	if _, ok := f.sessions[sessionID]; !ok {
		return apperrors.ErrSessionNotFound
	}
	delete(f.sessions, sessionID)
	f.deleted = append(f.deleted, sessionID)
	return nil
}

type fakeMajorStore struct {
	majors []models.Major
	err    error
}

func (f *fakeMajorStore) List(context.Context) ([]models.Major, error) {
	return f.majors, f.err
}

func (f *fakeMajorStore) GetByName(_ context.Context, name string) (*models.Major, error) {
	for i := range f.majors {
		if f.majors[i].Name == name {
			return &f.majors[i], nil
		}
	}
	return nil, apperrors.ErrMajorNotFound
}

type fakeUserStore struct {
	byEmail map[string]*models.User
	nextID  int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateAccessToken(user *models.User) (string, int64, error) {
	return "token-for-" + user.Email, 7200, nil
}
