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

// IChallengeRepository defines the interface for challenge database operations
type IChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	GetByID(ctx context.Context, id string) (*models.Challenge, error)
	GetAll(ctx context.Context, filter ChallengeFilter) ([]*models.Challenge, error)
	GetByCreatorID(ctx context.Context, creatorID string) ([]*models.Challenge, error)
	Update(ctx context.Context, challenge *models.Challenge) error
	UpdateStatus(ctx context.Context, id string, status models.ChallengeStatus) error
	SetRecommendedExercises(ctx context.Context, challengeID string, exerciseIDs []string) error
	GetRecommendedExerciseIDs(ctx context.Context, challengeID string) ([]string, error)
}

// ChallengeFilter narrows challenge queries at the repository level
type ChallengeFilter struct {
	Type       models.ChallengeType
	Difficulty models.ChallengeDifficulty
	Status     models.ChallengeStatus
	GymID      string
	IsPublic   *bool
	PublicOnly bool
}

// ChallengeRepository handles database operations for challenges
type ChallengeRepository struct {
	db *pgxpool.Pool
}

// NewChallengeRepository creates a new ChallengeRepository
func NewChallengeRepository(db *pgxpool.Pool) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

var challengeColumns = []string{
	"id", "title", "description", "type", "difficulty", "objectives",
	"start_date", "end_date", "max_participants", "points_reward",
	"is_public", "status", "creator_id", "gym_id",
	"created_at", "updated_at",
}

func scanChallenge(row pgx.Row) (*models.Challenge, error) {
	var c models.Challenge
	var objectives []byte
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Type,
		&c.Difficulty,
		&objectives,
		&c.StartDate,
		&c.EndDate,
		&c.MaxParticipants,
		&c.PointsReward,
		&c.IsPublic,
		&c.Status,
		&c.CreatorID,
		&c.GymID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(objectives) > 0 {
		if err := json.Unmarshal(objectives, &c.Objectives); err != nil {
			return nil, fmt.Errorf("error decoding objectives: %w", err)
		}
	}
	return &c, nil
}

// Create inserts a new challenge
func (r *ChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	objectives, err := json.Marshal(challenge.Objectives)
	if err != nil {
		return fmt.Errorf("error encoding objectives: %w", err)
	}

	query := squirrel.Insert("challenges").
		Columns("id", "title", "description", "type", "difficulty", "objectives", "start_date", "end_date", "max_participants", "points_reward", "is_public", "status", "creator_id", "gym_id").
		Values(challenge.ID, challenge.Title, challenge.Description, challenge.Type, challenge.Difficulty, objectives, challenge.StartDate, challenge.EndDate, challenge.MaxParticipants, challenge.PointsReward, challenge.IsPublic, challenge.Status, challenge.CreatorID, challenge.GymID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&challenge.CreatedAt, &challenge.UpdatedAt); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// GetByID retrieves a challenge by ID
func (r *ChallengeRepository) GetByID(ctx context.Context, id string) (*models.Challenge, error) {
	query := squirrel.Select(challengeColumns...).
		From("challenges").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	challenge, err := scanChallenge(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return challenge, nil
}

// GetAll retrieves challenges matching the filter, newest first
func (r *ChallengeRepository) GetAll(ctx context.Context, filter ChallengeFilter) ([]*models.Challenge, error) {
	query := squirrel.Select(challengeColumns...).
		From("challenges").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.GymID != "" {
		query = query.Where("gym_id = ?", filter.GymID)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.PublicOnly {
		query = query.Where("is_public = TRUE")
	}

	return r.queryChallenges(ctx, query)
}

// GetByCreatorID retrieves all challenges created by a user
func (r *ChallengeRepository) GetByCreatorID(ctx context.Context, creatorID string) ([]*models.Challenge, error) {
	query := squirrel.Select(challengeColumns...).
		From("challenges").
		Where("creator_id = ?", creatorID).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryChallenges(ctx, query)
}

// Update persists the mutable challenge fields
func (r *ChallengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	objectives, err := json.Marshal(challenge.Objectives)
	if err != nil {
		return fmt.Errorf("error encoding objectives: %w", err)
	}

	query := squirrel.Update("challenges").
		Set("title", challenge.Title).
		Set("description", challenge.Description).
		Set("difficulty", challenge.Difficulty).
		Set("objectives", objectives).
		Set("end_date", challenge.EndDate).
		Set("max_participants", challenge.MaxParticipants).
		Set("status", challenge.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", challenge.ID).
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
		return apperrors.ErrChallengeNotFound
	}
	return nil
}

// UpdateStatus changes a challenge's lifecycle status
func (r *ChallengeRepository) UpdateStatus(ctx context.Context, id string, status models.ChallengeStatus) error {
	query := squirrel.Update("challenges").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
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
		return apperrors.ErrChallengeNotFound
	}
	return nil
}

// SetRecommendedExercises replaces the recommended exercise set for a challenge
func (r *ChallengeRepository) SetRecommendedExercises(ctx context.Context, challengeID string, exerciseIDs []string) error {
	del := squirrel.Delete("challenge_exercises").
		Where("challenge_id = ?", challengeID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := del.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if len(exerciseIDs) == 0 {
		return nil
	}

	ins := squirrel.Insert("challenge_exercises").
		Columns("challenge_id", "exercise_id").
		PlaceholderFormat(squirrel.Dollar)
	for _, exerciseID := range exerciseIDs {
		ins = ins.Values(challengeID, exerciseID)
	}

	sql, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// GetRecommendedExerciseIDs retrieves the exercise IDs recommended for a challenge
func (r *ChallengeRepository) GetRecommendedExerciseIDs(ctx context.Context, challengeID string) ([]string, error) {
	query := squirrel.Select("exercise_id").
		From("challenge_exercises").
		Where("challenge_id = ?", challengeID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ChallengeRepository) queryChallenges(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Challenge, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var challenges []*models.Challenge
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		challenges = append(challenges, challenge)
	}
	return challenges, rows.Err()
}
