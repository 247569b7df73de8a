package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// IParticipationRepository defines the interface for participation database operations
type IParticipationRepository interface {
	Create(ctx context.Context, participation *models.Participation) error
	GetByID(ctx context.Context, id string) (*models.Participation, error)
	GetByUserAndChallenge(ctx context.Context, userID, challengeID string) (*models.Participation, error)
	GetByChallengeID(ctx context.Context, challengeID string) ([]*models.Participation, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Participation, error)
	CountActiveByChallengeID(ctx context.Context, challengeID string) (int, error)
	CountByChallengeIDAndStatus(ctx context.Context, challengeID string, status models.ParticipationStatus) (int, error)
	CountByUserIDAndStatus(ctx context.Context, userID string, status models.ParticipationStatus) (int, error)
	Update(ctx context.Context, participation *models.Participation) error
}

// ParticipationRepository handles database operations for challenge participations
type ParticipationRepository struct {
	db *pgxpool.Pool
}

// NewParticipationRepository creates a new ParticipationRepository
func NewParticipationRepository(db *pgxpool.Pool) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

var participationColumns = []string{
	"id", "status", "progress", "joined_at", "completed_at",
	"points_earned", "user_id", "challenge_id",
}

func scanParticipation(row pgx.Row) (*models.Participation, error) {
	var p models.Participation
	var progress []byte
	err := row.Scan(
		&p.ID,
		&p.Status,
		&progress,
		&p.JoinedAt,
		&p.CompletedAt,
		&p.PointsEarned,
		&p.UserID,
		&p.ChallengeID,
	)
	if err != nil {
		return nil, err
	}
	if len(progress) > 0 {
		if err := json.Unmarshal(progress, &p.Progress); err != nil {
			return nil, fmt.Errorf("error decoding progress: %w", err)
		}
	}
	return &p, nil
}

// Create inserts a new participation. A unique violation on
// (user_id, challenge_id) is returned unwrapped so callers can detect
// a concurrent duplicate join.
func (r *ParticipationRepository) Create(ctx context.Context, participation *models.Participation) error {
	progress, err := json.Marshal(participation.Progress)
	if err != nil {
		return fmt.Errorf("error encoding progress: %w", err)
	}

	query := squirrel.Insert("challenge_participations").
		Columns("id", "status", "progress", "points_earned", "user_id", "challenge_id").
		Values(participation.ID, participation.Status, progress, participation.PointsEarned, participation.UserID, participation.ChallengeID).
		Suffix("RETURNING joined_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&participation.JoinedAt); err != nil {
		return err
	}
	return nil
}

// GetByID retrieves a participation by ID
func (r *ParticipationRepository) GetByID(ctx context.Context, id string) (*models.Participation, error) {
	query := squirrel.Select(participationColumns...).
		From("challenge_participations").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	participation, err := scanParticipation(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParticipationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return participation, nil
}

// GetByUserAndChallenge retrieves a user's participation in a challenge,
// in any status. Returns (nil, nil) when the user never joined.
func (r *ParticipationRepository) GetByUserAndChallenge(ctx context.Context, userID, challengeID string) (*models.Participation, error) {
	query := squirrel.Select(participationColumns...).
		From("challenge_participations").
		Where("user_id = ?", userID).
		Where("challenge_id = ?", challengeID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	participation, err := scanParticipation(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return participation, nil
}

// GetByChallengeID retrieves all participations in a challenge, oldest join first
func (r *ParticipationRepository) GetByChallengeID(ctx context.Context, challengeID string) ([]*models.Participation, error) {
	query := squirrel.Select(participationColumns...).
		From("challenge_participations").
		Where("challenge_id = ?", challengeID).
		OrderBy("joined_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryParticipations(ctx, query)
}

// GetByUserID retrieves all of a user's participations, newest join first
func (r *ParticipationRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Participation, error) {
	query := squirrel.Select(participationColumns...).
		From("challenge_participations").
		Where("user_id = ?", userID).
		OrderBy("joined_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryParticipations(ctx, query)
}

// CountActiveByChallengeID counts the participations that occupy a
// challenge slot. Abandoned participations do not count.
func (r *ParticipationRepository) CountActiveByChallengeID(ctx context.Context, challengeID string) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("challenge_participations").
		Where("challenge_id = ?", challengeID).
		Where("status <> ?", models.ParticipationAbandoned).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// CountByChallengeIDAndStatus counts a challenge's participations in the
// given status. Capacity checks count joined participations only.
func (r *ParticipationRepository) CountByChallengeIDAndStatus(ctx context.Context, challengeID string, status models.ParticipationStatus) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("challenge_participations").
		Where("challenge_id = ?", challengeID).
		Where("status = ?", status).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// CountByUserIDAndStatus counts a user's participations in the given status
func (r *ParticipationRepository) CountByUserIDAndStatus(ctx context.Context, userID string, status models.ParticipationStatus) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("challenge_participations").
		Where("user_id = ?", userID).
		Where("status = ?", status).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// Update persists a participation's status, progress and award fields
func (r *ParticipationRepository) Update(ctx context.Context, participation *models.Participation) error {
	progress, err := json.Marshal(participation.Progress)
	if err != nil {
		return fmt.Errorf("error encoding progress: %w", err)
	}

	query := squirrel.Update("challenge_participations").
		Set("status", participation.Status).
		Set("progress", progress).
		Set("joined_at", participation.JoinedAt).
		Set("completed_at", participation.CompletedAt).
		Set("points_earned", participation.PointsEarned).
		Where("id = ?", participation.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrParticipationNotFound
	}
	return nil
}

func (r *ParticipationRepository) queryParticipations(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Participation, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var participations []*models.Participation
	for rows.Next() {
		participation, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		participations = append(participations, participation)
	}
	return participations, rows.Err()
}
