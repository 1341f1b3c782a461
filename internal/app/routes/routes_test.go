package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/majorpath/internal/app/controllers"
	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/app/models/dto"
	"github.com/yigit/majorpath/internal/app/services"
	"github.com/yigit/majorpath/internal/middleware"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
	"github.com/yigit/majorpath/internal/pkg/auth"
	"github.com/yigit/majorpath/internal/pkg/classifier"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPredictor struct {
	result  *classifier.Result
	err     error
	breaker string
}

func (s *stubPredictor) BreakerState() string {
	return s.breaker
}

func (s *stubPredictor) Predict(context.Context, map[string]string) (*classifier.Result, error) {
	return s.result, s.err
}

type memorySessions struct {
	sessions map[int64]*models.PredictionSession
	nextID   int64
	saveErr  error
}

func (m *memorySessions) Create(_ context.Context, s models.NewSession) (int64, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	m.nextID++
	session := &models.PredictionSession{ID: m.nextID, UserID: s.UserID, CreatedAt: time.Now()}
	for _, a := range s.Answers {
		session.Answers = append(session.Answers, models.Answer{Question: a.Question, Answer: *a.Answer})
	}
	for _, r := range s.Recommendations {
		session.Recommendations = append(session.Recommendations, models.Recommendation{
			Score: *r.Score,
			Major: &models.Major{Name: r.MajorName},
		})
	}
	m.sessions[session.ID] = session
	return session.ID, nil
}

func (m *memorySessions) ListByUser(_ context.Context, userID int64) ([]models.PredictionSession, error) {
	var out []models.PredictionSession
	for id := m.nextID; id > 0; id-- {
		if s, ok := m.sessions[id]; ok && s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memorySessions) GetByID(_ context.Context, id int64) (*models.PredictionSession, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrSessionNotFound
}

func (m *memorySessions) OwnerID(_ context.Context, id int64) (int64, error) {
	if s, ok := m.sessions[id]; ok {
		return s.UserID, nil
	}
	return 0, apperrors.ErrSessionNotFound
}

func (m *memorySessions) Delete(_ context.Context, id int64) error {
	delete(m.sessions, id)
	return nil
}

type memoryMajors []models.Major

func (m memoryMajors) List(context.Context) ([]models.Major, error) { return m, nil }

func (m memoryMajors) GetByName(_ context.Context, name string) (*models.Major, error) {
	for i := range m {
		if bytes.EqualFold([]byte(m[i].Name), []byte(name)) {
			return &m[i], nil
		}
	}
	return nil, apperrors.ErrMajorNotFound
}

type memoryUsers struct{}

func (memoryUsers) Create(context.Context, *models.User) error { return nil }
func (memoryUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (memoryUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	if id == 1 {
		return &models.User{ID: 1, Name: "Siti", Email: "siti@example.com"}, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type testEnv struct {
	router    *gin.Engine
	sessions  *memorySessions
	predictor *stubPredictor
	jwt       *auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		sessions:  &memorySessions{sessions: make(map[int64]*models.PredictionSession)},
		predictor: &stubPredictor{breaker: "closed"},
		jwt:       auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"}),
	}
	majors := memoryMajors{{ID: 1, Name: "Teknik Informatika", Description: "Software"}}
	authService := services.NewAuthService(memoryUsers{}, env.jwt, zerolog.Nop())

	ctrl := &controllers.Controllers{
		Auth:    controllers.NewAuthController(authService, zerolog.Nop()),
		User:    controllers.NewUserController(authService),
		Predict: controllers.NewPredictController(services.NewPredictionService(env.predictor, zerolog.Nop())),
		Session: controllers.NewSessionController(services.NewSessionService(env.sessions, zerolog.Nop())),
		Major:   controllers.NewMajorController(services.NewMajorService(majors)),
	}

	env.router = gin.New()
	SetupRouter(env.router, ctrl, middleware.NewAuthMiddleware(env.jwt), env.predictor)
	return env
}

func (e *testEnv) token(t *testing.T, userID int64) string {
	t.Helper()
	token, _, err := e.jwt.GenerateAccessToken(&models.User{ID: userID, Email: "user@example.com"})
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		encoded, _ := json.Marshal(b)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func questionnaire() map[string]interface{} {
	return map[string]interface{}{
		"Gender":              "Laki-laki",
		"Minat_Teknologi":     "Ya",
		"Minat_Seni":          "Tidak",
		"Minat_Bisnis":        "Tidak",
		"Minat_Hukum":         "Tidak",
		"Minat_Kesehatan":     "Tidak",
		"Minat_Sains":         "Ya",
		"Problem_Solving":     "Sangat Tinggi",
		"Kreativitas":         "Sedang",
		"Kepemimpinan":        "Rendah",
		"Kerja_Tim":           "Sedang",
		"nilai akhir SMA/SMK": "90",
	}
}

func TestOperationalRoutes(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong","status":"success"}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/test", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"API is running","classifier":"closed"}`, w.Body.String())

	env.predictor.breaker = "open"
	w = env.do(http.MethodGet, "/api/test", "", nil)
	assert.Contains(t, w.Body.String(), `"classifier":"open"`)

	w = env.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPredictRoute(t *testing.T) {
	env := newTestEnv(t)
	top := "Teknik Informatika"
	env.predictor.result = &classifier.Result{
		Prediction: &top,
		Ranking: []classifier.MajorScore{
			{MajorName: "Teknik Informatika", Score: 0.9},
			{MajorName: "Sistem Informasi", Score: 0.8},
			{MajorName: "Statistik", Score: 0.7},
		},
	}

	w := env.do(http.MethodPost, "/api/predict", "", questionnaire())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{
		"success": true,
		"message": "Prediction completed",
		"prediction": "Teknik Informatika",
		"result": [
			{"majorName": "Teknik Informatika", "score": 0.9},
			{"majorName": "Sistem Informasi", "score": 0.8},
			{"majorName": "Statistik", "score": 0.7}
		],
		"top3": [["Teknik Informatika", 0.9], ["Sistem Informasi", 0.8], ["Statistik", 0.7]]
	}`, w.Body.String())
}

func TestPredictRoute_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/predict", "", `[]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	decode(t, w, &body)
	assert.Equal(t, "input is empty or invalid", body.Error)

	input := questionnaire()
	delete(input, "Gender")
	delete(input, "Kerja_Tim")
	w = env.do(http.MethodPost, "/api/predict", "", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body = dto.ErrorResponse{}
	decode(t, w, &body)
	assert.ElementsMatch(t, []string{"Gender", "Kerja_Tim"}, body.MissingFields)

	input = questionnaire()
	input["nilai akhir SMA/SMK"] = "150"
	w = env.do(http.MethodPost, "/api/predict", "", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body = dto.ErrorResponse{}
	decode(t, w, &body)
	assert.Equal(t, dto.ErrorCodeInvalidRange, body.Code)
}

func TestPredictRoute_ClassifierFailure(t *testing.T) {
	env := newTestEnv(t)
	env.predictor.err = &apperrors.PredictionError{
		Kind:      apperrors.ErrNoPredictionOutput,
		Details:   "classifier printed nothing",
		RawOutput: []string{},
	}

	w := env.do(http.MethodPost, "/api/predict", "", questionnaire())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	decode(t, w, &body)
	assert.False(t, body.Success)
	assert.Equal(t, dto.ErrorCodeNoPredictionOutput, body.Code)
	assert.Equal(t, "classifier printed nothing", body.Details)
}

func saveBody(userID int64) map[string]interface{} {
	return map[string]interface{}{
		"userId": userID,
		"answers": []map[string]interface{}{
			{"question": "Gender", "answer": "Laki-laki"},
			{"question": "nilai akhir SMA/SMK", "answer": 90},
		},
		"recommendations": []map[string]interface{}{
			{"majorName": "Teknik Informatika", "score": 0.9},
			{"majorName": "Sistem Informasi", "score": "0.8"},
		},
	}
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, 1)

	w := env.do(http.MethodPost, "/api/predict/save-result", token, saveBody(1))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var saved dto.SaveResultResponse
	decode(t, w, &saved)
	assert.True(t, saved.Success)
	assert.Equal(t, int64(1), saved.SessionID)

	stored := env.sessions.sessions[1]
	require.NotNil(t, stored)
	assert.Equal(t, "90", stored.Answers[1].Answer)
	assert.Equal(t, 0.8, stored.Recommendations[1].Score)

	w = env.do(http.MethodGet, "/api/predict/history/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history dto.HistoryResponse
	decode(t, w, &history)
	assert.Equal(t, 1, history.Count)
	require.Len(t, history.Data, 1)

	w = env.do(http.MethodGet, "/api/predict/session/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodDelete, "/api/predict/history/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Session deleted"}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/predict/session/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodDelete, "/api/predict/session/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/api/predict/history/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, w.Body.String())
}

func TestSessionRoutes_AuthAndOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.token(t, 1)
	other := env.token(t, 2)

	w := env.do(http.MethodPost, "/api/predict/save-result", "", saveBody(1))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/predict/save-result", other, saveBody(1))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodPost, "/api/predict/save-result", owner, saveBody(1))
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/predict/history/1", other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodGet, "/api/predict/session/1", other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodDelete, "/api/predict/session/1", other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, env.sessions.sessions, int64(1))

	for _, path := range []string{"/api/predict/history/abc", "/api/predict/history/0", "/api/predict/session/-3"} {
		w = env.do(http.MethodGet, path, owner, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestSaveResult_Errors(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, 1)

	w := env.do(http.MethodPost, "/api/predict/save-result", token, map[string]interface{}{"userId": 1, "answers": []string{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	decode(t, w, &body)
	assert.Equal(t, dto.ErrorCodeIncompleteSaveData, body.Code)

	w = env.do(http.MethodPost, "/api/predict/save-result", token, `{"userId":1,"answers":"nope","recommendations":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.sessions.saveErr = &apperrors.SaveError{Kind: apperrors.ErrUnknownMajor, MajorName: "Astrologi"}
	w = env.do(http.MethodPost, "/api/predict/save-result", token, saveBody(1))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body = dto.ErrorResponse{}
	decode(t, w, &body)
	assert.Equal(t, dto.ErrorCodeUnknownMajor, body.Code)
	assert.Equal(t, `major "Astrologi" not found`, body.Details)
}

func TestMajorRoutes(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/predict/major", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[{"id":1,"name":"Teknik Informatika","description":"Software"}]}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/predict/major/teknik%20informatika", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"id":1,"name":"Teknik Informatika","description":"Software"}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/major/Teknik%20Informatika", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Teknik Informatika","description":"Software"}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/predict/major/Astrologi", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserRoutes(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/user/me", "/api/user/profile"} {
		w := env.do(http.MethodGet, path, env.token(t, 1), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Siti","email":"siti@example.com"}`, w.Body.String())
	}

	w := env.do(http.MethodGet, "/api/user/me", env.token(t, 9), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/api/user/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRoute_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "nobody@example.com", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
