package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/db"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// MajorRepository reads the majors catalog
type MajorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMajorRepository creates a new MajorRepository
func NewMajorRepository(db *pgxpool.Pool) *MajorRepository {
	return &MajorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns every major ordered by name
func (r *MajorRepository) List(ctx context.Context) ([]models.Major, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("majors").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list majors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing majors: %w", err)
	}
	defer rows.Close()

	majors := make([]models.Major, 0)
	for rows.Next() {
		var m models.Major
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, fmt.Errorf("error scanning major: %w", err)
		}
		majors = append(majors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating majors: %w", err)
	}

	return majors, nil
}

// GetByName finds a major by name, ignoring case
func (r *MajorRepository) GetByName(ctx context.Context, name string) (*models.Major, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("majors").
		Where(squirrel.Expr("LOWER(name) = LOWER(?)", name)).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get major query: %w", err)
	}

	var m models.Major
	err = r.db.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.Name, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMajorNotFound
		}
		return nil, fmt.Errorf("error retrieving major: %w", err)
	}

	return &m, nil
}

// InsertIfMissing adds a major unless one with the same name (any case)
// exists. It reports whether a row was inserted.
func (r *MajorRepository) InsertIfMissing(ctx context.Context, major models.Major) (bool, error) {
	sql, args, err := r.sb.Insert("majors").
		Columns("name", "description").
		Values(major.Name, major.Description).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert major query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error inserting major %q: %w", major.Name, err)
	}
	return tag.RowsAffected() == 1, nil
}

// resolveMajorID maps a major name to its id within q, ignoring case.
// Unknown names return ErrUnknownMajor.
func resolveMajorID(ctx context.Context, q db.Querier, sb squirrel.StatementBuilderType, name string) (int64, error) {
	sql, args, err := sb.Select("id").
		From("majors").
		Where(squirrel.Expr("LOWER(name) = LOWER(?)", name)).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build resolve major query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrUnknownMajor
		}
		return 0, fmt.Errorf("error resolving major %q: %w", name, err)
	}
	return id, nil
}
