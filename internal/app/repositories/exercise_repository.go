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

// IExerciseRepository defines the interface for exercise catalog operations
type IExerciseRepository interface {
	Create(ctx context.Context, exercise *models.Exercise) error
	GetByID(ctx context.Context, id string) (*models.Exercise, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Exercise, error)
	GetAll(ctx context.Context, difficulty models.ExerciseDifficulty, muscleGroup, search string) ([]*models.Exercise, error)
	Update(ctx context.Context, exercise *models.Exercise) error
	Delete(ctx context.Context, id string) error
}

// ExerciseRepository handles database operations for the exercise catalog
type ExerciseRepository struct {
	db *pgxpool.Pool
}

// NewExerciseRepository creates a new ExerciseRepository
func NewExerciseRepository(db *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

var exerciseColumns = []string{
	"id", "name", "description", "muscle_groups", "difficulty",
	"calories_per_minute", "instructions", "video_url", "image_url",
	"created_by_id", "created_at", "updated_at",
}

func scanExercise(row pgx.Row) (*models.Exercise, error) {
	var e models.Exercise
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.MuscleGroups,
		&e.Difficulty,
		&e.CaloriesPerMinute,
		&e.Instructions,
		&e.VideoURL,
		&e.ImageURL,
		&e.CreatedByID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new exercise
func (r *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	query := squirrel.Insert("exercises").
		Columns("id", "name", "description", "muscle_groups", "difficulty", "calories_per_minute", "instructions", "video_url", "image_url", "created_by_id").
		Values(exercise.ID, exercise.Name, exercise.Description, exercise.MuscleGroups, exercise.Difficulty, exercise.CaloriesPerMinute, exercise.Instructions, exercise.VideoURL, exercise.ImageURL, exercise.CreatedByID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exercise.CreatedAt, &exercise.UpdatedAt); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// GetByID retrieves an exercise by ID
func (r *ExerciseRepository) GetByID(ctx context.Context, id string) (*models.Exercise, error) {
	query := squirrel.Select(exerciseColumns...).
		From("exercises").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	exercise, err := scanExercise(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return exercise, nil
}

// GetByIDs retrieves the exercises matching the given IDs
func (r *ExerciseRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Exercise, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := squirrel.Select(exerciseColumns...).
		From("exercises").
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryExercises(ctx, query)
}

// GetAll retrieves exercises filtered by difficulty, muscle group and name
func (r *ExerciseRepository) GetAll(ctx context.Context, difficulty models.ExerciseDifficulty, muscleGroup, search string) ([]*models.Exercise, error) {
	query := squirrel.Select(exerciseColumns...).
		From("exercises").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if muscleGroup != "" {
		query = query.Where("? = ANY(muscle_groups)", muscleGroup)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	return r.queryExercises(ctx, query)
}

// Update persists the mutable exercise fields
func (r *ExerciseRepository) Update(ctx context.Context, exercise *models.Exercise) error {
	query := squirrel.Update("exercises").
		Set("name", exercise.Name).
		Set("description", exercise.Description).
		Set("muscle_groups", exercise.MuscleGroups).
		Set("difficulty", exercise.Difficulty).
		Set("calories_per_minute", exercise.CaloriesPerMinute).
		Set("instructions", exercise.Instructions).
		Set("video_url", exercise.VideoURL).
		Set("image_url", exercise.ImageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", exercise.ID).
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
		return apperrors.ErrExerciseNotFound
	}
	return nil
}

// Delete removes an exercise from the catalog
func (r *ExerciseRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("exercises").
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
		return apperrors.ErrExerciseNotFound
	}
	return nil
}

func (r *ExerciseRepository) queryExercises(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Exercise, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var exercises []*models.Exercise
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	return exercises, rows.Err()
}
