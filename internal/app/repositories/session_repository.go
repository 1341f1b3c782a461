package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/db"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
	"github.com/yigit/majorpath/internal/pkg/dberrors"
	"github.com/yigit/majorpath/internal/pkg/logger"
)

// SessionRepository stores prediction sessions with their answers and
// recommendations. Every write runs in a single transaction.
type SessionRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(database *db.PostgresDB) *SessionRepository {
	return &SessionRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var readSnapshot = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// Create stores a session, its answers and its recommendations atomically and
// returns the new session id. An incomplete answer or recommendation, or a
// major name with no match, aborts the whole save with a *apperrors.SaveError.
func (r *SessionRepository) Create(ctx context.Context, session models.NewSession) (int64, error) {
	var sessionID int64

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("prediction_sessions").
			Columns("user_id").
			Values(session.UserID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create session query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&sessionID); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error creating session: %w", err)
		}

		if err := r.insertAnswers(ctx, tx, sessionID, session); err != nil {
			return err
		}
		return r.insertRecommendations(ctx, tx, sessionID, session)
	})
	if err != nil {
		return 0, err
	}

	logger.Debug().
		Int64("sessionID", sessionID).
		Int64("userID", session.UserID).
		Int("answers", len(session.Answers)).
		Int("recommendations", len(session.Recommendations)).
		Msg("Prediction session stored")
	return sessionID, nil
}

func (r *SessionRepository) insertAnswers(ctx context.Context, tx pgx.Tx, sessionID int64, session models.NewSession) error {
	if len(session.Answers) == 0 {
		return nil
	}

	insert := r.sb.Insert("answers").Columns("user_id", "session_id", "question", "answer")
	for i, a := range session.Answers {
		if a.Question == "" || a.Answer == nil {
			return &apperrors.SaveError{Kind: apperrors.ErrIncompleteAnswer, Position: i + 1}
		}
		insert = insert.Values(session.UserID, sessionID, a.Question, *a.Answer)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert answers query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting answers: %w", err)
	}
	return nil
}

func (r *SessionRepository) insertRecommendations(ctx context.Context, tx pgx.Tx, sessionID int64, session models.NewSession) error {
	if len(session.Recommendations) == 0 {
		return nil
	}

	resolved := make(map[string]int64, len(session.Recommendations))
	insert := r.sb.Insert("recommendations").Columns("user_id", "session_id", "major_id", "score")
	for i, rec := range session.Recommendations {
		if rec.MajorName == "" || rec.Score == nil {
			return &apperrors.SaveError{Kind: apperrors.ErrIncompleteRecommendation, Position: i + 1}
		}

		majorID, ok := resolved[rec.MajorName]
		if !ok {
			id, err := resolveMajorID(ctx, tx, r.sb, rec.MajorName)
			if err != nil {
				if errors.Is(err, apperrors.ErrUnknownMajor) {
					return &apperrors.SaveError{Kind: apperrors.ErrUnknownMajor, Position: i + 1, MajorName: rec.MajorName}
				}
				return err
			}
			majorID = id
			resolved[rec.MajorName] = id
		}

		insert = insert.Values(session.UserID, sessionID, majorID, *rec.Score)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert recommendations query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting recommendations: %w", err)
	}
	return nil
}

// ListByUser returns the user's sessions, most recent first, each with its
// answers in insertion order and its recommendations by descending score.
func (r *SessionRepository) ListByUser(ctx context.Context, userID int64) ([]models.PredictionSession, error) {
	sessions := make([]models.PredictionSession, 0)

	err := pgx.BeginTxFunc(ctx, r.db.Pool, readSnapshot, func(tx pgx.Tx) error {
		sql, args, err := r.sb.Select("id", "user_id", "created_at").
			From("prediction_sessions").
			Where(squirrel.Eq{"user_id": userID}).
			OrderBy("created_at DESC", "id DESC").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build list sessions query: %w", err)
		}

		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error listing sessions: %w", err)
		}
		for rows.Next() {
			var s models.PredictionSession
			if err := rows.Scan(&s.ID, &s.UserID, &s.CreatedAt); err != nil {
				rows.Close()
				return fmt.Errorf("error scanning session: %w", err)
			}
			sessions = append(sessions, s)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating sessions: %w", err)
		}

		return r.loadChildren(ctx, tx, sessions)
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetByID returns one session with its answers and recommendations
func (r *SessionRepository) GetByID(ctx context.Context, sessionID int64) (*models.PredictionSession, error) {
	var session models.PredictionSession

	err := pgx.BeginTxFunc(ctx, r.db.Pool, readSnapshot, func(tx pgx.Tx) error {
		sql, args, err := r.sb.Select("id", "user_id", "created_at").
			From("prediction_sessions").
			Where(squirrel.Eq{"id": sessionID}).
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build get session query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&session.ID, &session.UserID, &session.CreatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrSessionNotFound
			}
			return fmt.Errorf("error retrieving session: %w", err)
		}

		sessions := []models.PredictionSession{session}
		if err := r.loadChildren(ctx, tx, sessions); err != nil {
			return err
		}
		session = sessions[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// OwnerID returns the id of the user owning the session
func (r *SessionRepository) OwnerID(ctx context.Context, sessionID int64) (int64, error) {
	sql, args, err := r.sb.Select("user_id").
		From("prediction_sessions").
		Where(squirrel.Eq{"id": sessionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build session owner query: %w", err)
	}

	var ownerID int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrSessionNotFound
		}
		return 0, fmt.Errorf("error retrieving session owner: %w", err)
	}
	return ownerID, nil
}

// Delete removes a session's recommendations, then its answers, then the
// session itself, in one transaction.
func (r *SessionRepository) Delete(ctx context.Context, sessionID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Lock the row so a concurrent delete sees not found instead of racing
		sql, args, err := r.sb.Select("id").
			From("prediction_sessions").
			Where(squirrel.Eq{"id": sessionID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock session query: %w", err)
		}
		var id int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrSessionNotFound
			}
			return fmt.Errorf("error locking session: %w", err)
		}

		for _, table := range []string{"recommendations", "answers"} {
			sql, args, err := r.sb.Delete(table).Where(squirrel.Eq{"session_id": sessionID}).ToSql()
			if err != nil {
				return fmt.Errorf("failed to build delete %s query: %w", table, err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("error deleting %s: %w", table, err)
			}
		}

		sql, args, err = r.sb.Delete("prediction_sessions").Where(squirrel.Eq{"id": sessionID}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete session query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error deleting session: %w", err)
		}
		return nil
	})
}

// loadChildren fills Answers and Recommendations for sessions in place
func (r *SessionRepository) loadChildren(ctx context.Context, q db.Querier, sessions []models.PredictionSession) error {
	if len(sessions) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(sessions))
	index := make(map[int64]int, len(sessions))
	for i := range sessions {
		ids = append(ids, sessions[i].ID)
		index[sessions[i].ID] = i
		sessions[i].Answers = make([]models.Answer, 0)
		sessions[i].Recommendations = make([]models.Recommendation, 0)
	}

	sql, args, err := r.sb.Select("id", "user_id", "session_id", "question", "answer").
		From("answers").
		Where(squirrel.Eq{"session_id": ids}).
		OrderBy("session_id", "id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build list answers query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error listing answers: %w", err)
	}
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.UserID, &a.SessionID, &a.Question, &a.Answer); err != nil {
			rows.Close()
			return fmt.Errorf("error scanning answer: %w", err)
		}
		s := &sessions[index[a.SessionID]]
		s.Answers = append(s.Answers, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating answers: %w", err)
	}

	sql, args, err = r.sb.Select(
		"r.id", "r.user_id", "r.session_id", "r.major_id", "r.score",
		"m.id", "m.name", "m.description",
	).
		From("recommendations r").
		Join("majors m ON m.id = r.major_id").
		Where(squirrel.Eq{"r.session_id": ids}).
		OrderBy("r.session_id", "r.score DESC", "r.id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build list recommendations query: %w", err)
	}

	rows, err = q.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error listing recommendations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rec models.Recommendation
		major := &models.Major{}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.SessionID, &rec.MajorID, &rec.Score,
			&major.ID, &major.Name, &major.Description); err != nil {
			return fmt.Errorf("error scanning recommendation: %w", err)
		}
		rec.Major = major
		s := &sessions[index[rec.SessionID]]
		s.Recommendations = append(s.Recommendations, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating recommendations: %w", err)
	}

	return nil
}
