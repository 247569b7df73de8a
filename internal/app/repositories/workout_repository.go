package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/fitpulse/internal/app/models"
	"github.com/oguzk/fitpulse/internal/pkg/apperrors"
)

// IWorkoutRepository defines the interface for workout database operations
type IWorkoutRepository interface {
	Create(ctx context.Context, workout *models.Workout) error
	GetByID(ctx context.Context, id string) (*models.Workout, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Workout, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, id string) error
}

// WorkoutRepository handles database operations for workouts
type WorkoutRepository struct {
	db *pgxpool.Pool
}

// NewWorkoutRepository creates a new WorkoutRepository
func NewWorkoutRepository(db *pgxpool.Pool) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

var workoutColumns = []string{
	"id", "name", "completion_date", "duration", "difficulty",
	"calories_burned", "user_id", "participation_id", "created_at",
}

func scanWorkout(row pgx.Row) (*models.Workout, error) {
	var w models.Workout
	err := row.Scan(
		&w.ID,
		&w.Name,
		&w.CompletionDate,
		&w.Duration,
		&w.Difficulty,
		&w.CaloriesBurned,
		&w.UserID,
		&w.ParticipationID,
		&w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create inserts a new workout
func (r *WorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	query := squirrel.Insert("workouts").
		Columns("id", "name", "completion_date", "duration", "difficulty", "calories_burned", "user_id", "participation_id").
		Values(workout.ID, workout.Name, workout.CompletionDate, workout.Duration, workout.Difficulty, workout.CaloriesBurned, workout.UserID, workout.ParticipationID).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&workout.CreatedAt); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// GetByID retrieves a workout by ID
func (r *WorkoutRepository) GetByID(ctx context.Context, id string) (*models.Workout, error) {
	query := squirrel.Select(workoutColumns...).
		From("workouts").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	workout, err := scanWorkout(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return workout, nil
}

// GetByUserID retrieves a user's workouts, newest first
func (r *WorkoutRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Workout, error) {
	query := squirrel.Select(workoutColumns...).
		From("workouts").
		Where("user_id = ?", userID).
		OrderBy("created_at DESC").
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

	var workouts []*models.Workout
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		workouts = append(workouts, workout)
	}
	return workouts, rows.Err()
}

// CountByUserID counts all workouts a user has recorded
func (r *WorkoutRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("workouts").
		Where("user_id = ?", userID).
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

// Delete removes a workout
func (r *WorkoutRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("workouts").
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
		return apperrors.ErrResourceNotFound
	}
	return nil
}
