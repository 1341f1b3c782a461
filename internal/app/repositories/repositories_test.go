package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/majorpath/internal/app/migrations"
	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/db"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// openTestDB connects to TEST_POSTGRES_DSN, applies migrations and empties
// every table. Tests are skipped when the variable is unset; with the
// integration tag a container provides it.
func openTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	database, err := db.NewPostgresDBFromDSN(dsn)
	require.NoError(t, err)
	t.Cleanup(database.Close)

	ctx := context.Background()
	_, err = migrations.NewMigrator(database.Pool, zerolog.Nop()).
		MigrateFromDirectory(ctx, filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)

	_, err = database.Pool.Exec(ctx,
		`TRUNCATE recommendations, answers, prediction_sessions, majors, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return database
}

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func createUser(t *testing.T, repos *Repositories, email string) int64 {
	t.Helper()
	user := &models.User{Name: "Test", Email: email, Password: "hash"}
	require.NoError(t, repos.UserRepository.Create(context.Background(), user))
	return user.ID
}

func seedMajors(t *testing.T, repos *Repositories, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := repos.MajorRepository.InsertIfMissing(context.Background(), models.Major{Name: name, Description: name})
		require.NoError(t, err)
	}
}

func countRows(t *testing.T, database *db.PostgresDB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestUserRepository(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	ctx := context.Background()

	id := createUser(t, repos, "siti@example.com")

	user, err := repos.UserRepository.GetByEmail(ctx, "siti@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.Password)

	err = repos.UserRepository.Create(ctx, &models.User{Name: "Dup", Email: "siti@example.com", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = repos.UserRepository.GetByID(ctx, id+100)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestMajorRepository(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	ctx := context.Background()

	created, err := repos.MajorRepository.InsertIfMissing(ctx, models.Major{Name: "Hukum", Description: "Law"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repos.MajorRepository.InsertIfMissing(ctx, models.Major{Name: "HUKUM", Description: "Other"})
	require.NoError(t, err)
	assert.False(t, created)

	seedMajors(t, repos, "Farmasi")

	majors, err := repos.MajorRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, majors, 2)
	assert.Equal(t, "Farmasi", majors[0].Name)

	major, err := repos.MajorRepository.GetByName(ctx, "hukum")
	require.NoError(t, err)
	assert.Equal(t, "Law", major.Description)

	_, err = repos.MajorRepository.GetByName(ctx, "Astrologi")
	assert.ErrorIs(t, err, apperrors.ErrMajorNotFound)
}

func TestSessionRepository_CreateAndRead(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	ctx := context.Background()

	userID := createUser(t, repos, "a@example.com")
	seedMajors(t, repos, "Teknik Informatika", "Statistik", "Farmasi")

	sessionID, err := repos.SessionRepository.Create(ctx, models.NewSession{
		UserID: userID,
		Answers: []models.AnswerInput{
			{Question: "Gender", Answer: strPtr("Perempuan")},
			{Question: "Minat_Seni", Answer: strPtr("")},
		},
		Recommendations: []models.RecommendationInput{
			{MajorName: "Statistik", Score: floatPtr(0.4)},
			{MajorName: "teknik informatika", Score: floatPtr(0.9)},
			{MajorName: "Farmasi", Score: floatPtr(0.4)},
		},
	})
	require.NoError(t, err)

	session, err := repos.SessionRepository.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	require.Len(t, session.Answers, 2)
	assert.Equal(t, "Gender", session.Answers[0].Question)
	assert.Equal(t, "", session.Answers[1].Answer)

	require.Len(t, session.Recommendations, 3)
	assert.Equal(t, "Teknik Informatika", session.Recommendations[0].Major.Name)
	// equal scores keep insertion order
	assert.Equal(t, "Statistik", session.Recommendations[1].Major.Name)
	assert.Equal(t, "Farmasi", session.Recommendations[2].Major.Name)

	owner, err := repos.SessionRepository.OwnerID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, userID, owner)
}

func TestSessionRepository_EmptyListsAllowed(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	ctx := context.Background()

	userID := createUser(t, repos, "a@example.com")

	sessionID, err := repos.SessionRepository.Create(ctx, models.NewSession{UserID: userID})
	require.NoError(t, err)

	session, err := repos.SessionRepository.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, session.Answers)
	assert.NotNil(t, session.Recommendations)
}

func TestSessionRepository_RollsBackOnFailure(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	ctx := context.Background()

	userID := createUser(t, repos, "a@example.com")
	seedMajors(t, repos, "Farmasi")

	cases := []struct {
		name    string
		session models.NewSession
		kind    error
		message string
	}{
		{
			name: "unknown major",
			session: models.NewSession{
				UserID:  userID,
				Answers: []models.AnswerInput{{Question: "Gender", Answer: strPtr("Perempuan")}},
				Recommendations: []models.RecommendationInput{
					{MajorName: "Farmasi", Score: floatPtr(0.9)},
					{MajorName: "Astrologi", Score: floatPtr(0.5)},
				},
			},
			kind:    apperrors.ErrUnknownMajor,
			message: `major "Astrologi" not found`,
		},
		{
			name: "incomplete second answer",
			session: models.NewSession{
				UserID: userID,
				Answers: []models.AnswerInput{
					{Question: "Gender", Answer: strPtr("Perempuan")},
					{Question: "Kerja_Tim"},
				},
				Recommendations: []models.RecommendationInput{{MajorName: "Farmasi", Score: floatPtr(0.9)}},
			},
			kind:    apperrors.ErrIncompleteAnswer,
			message: "answer #2 is incomplete",
		},
		{
			name: "recommendation without score",
			session: models.NewSession{
				UserID:          userID,
				Answers:         []models.AnswerInput{},
				Recommendations: []models.RecommendationInput{{MajorName: "Farmasi"}},
			},
			kind:    apperrors.ErrIncompleteRecommendation,
			message: "recommendation #1 is incomplete",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repos.SessionRepository.Create(ctx, tc.session)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.kind)
			assert.EqualError(t, err, tc.message)

			assert.Zero(t, countRows(t, database, "prediction_sessions"))
			assert.Zero(t, countRows(t, database, "answers"))
			assert.Zero(t, countRows(t, database, "recommendations"))
		})
	}
}

func TestSessionRepository_UnknownUser(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)

	_, err := repos.SessionRepository.Create(context.Background(), models.NewSession{UserID: 999})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSessionRepository_HistoryAndDelete(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	ctx := context.Background()

	userID := createUser(t, repos, "a@example.com")
	otherID := createUser(t, repos, "b@example.com")
	seedMajors(t, repos, "Farmasi")

	save := func(owner int64) int64 {
		id, err := repos.SessionRepository.Create(ctx, models.NewSession{
			UserID:          owner,
			Answers:         []models.AnswerInput{{Question: "Gender", Answer: strPtr("Laki-laki")}},
			Recommendations: []models.RecommendationInput{{MajorName: "Farmasi", Score: floatPtr(0.7)}},
		})
		require.NoError(t, err)
		return id
	}

	first := save(userID)
	second := save(userID)
	save(otherID)

	history, err := repos.SessionRepository.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second, history[0].ID)
	assert.Equal(t, first, history[1].ID)
	for _, s := range history {
		assert.Len(t, s.Answers, 1)
		assert.Len(t, s.Recommendations, 1)
	}

	require.NoError(t, repos.SessionRepository.Delete(ctx, first))
	assert.ErrorIs(t, repos.SessionRepository.Delete(ctx, first), apperrors.ErrSessionNotFound)

	_, err = repos.SessionRepository.GetByID(ctx, first)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	assert.Equal(t, 2, countRows(t, database, "prediction_sessions"))
	assert.Equal(t, 2, countRows(t, database, "answers"))
	assert.Equal(t, 2, countRows(t, database, "recommendations"))

	empty, err := repos.SessionRepository.ListByUser(ctx, 12345)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
