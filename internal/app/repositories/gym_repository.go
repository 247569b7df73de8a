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

// IGymRepository defines the interface for gym-related database operations
type IGymRepository interface {
	Create(ctx context.Context, gym *models.Gym) error
	GetByID(ctx context.Context, id string) (*models.Gym, error)
	GetAll(ctx context.Context, status models.GymStatus, city string) ([]*models.Gym, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Gym, error)
	Update(ctx context.Context, gym *models.Gym) error
	UpdateStatus(ctx context.Context, id string, status models.GymStatus) error
	Delete(ctx context.Context, id string) error
}

// GymRepository handles database operations for gyms
type GymRepository struct {
	db *pgxpool.Pool
}

// NewGymRepository creates a new GymRepository
func NewGymRepository(db *pgxpool.Pool) *GymRepository {
	return &GymRepository{db: db}
}

var gymColumns = []string{
	"id", "name", "address", "city", "description",
	"phone", "email", "capacity",
	"equipment", "specialized_exercise_types", "status", "owner_id",
	"created_at", "updated_at",
}

func scanGym(row pgx.Row) (*models.Gym, error) {
	var g models.Gym
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Address,
		&g.City,
		&g.Description,
		&g.Phone,
		&g.Email,
		&g.Capacity,
		&g.Equipment,
		&g.SpecializedExerciseTypes,
		&g.Status,
		&g.OwnerID,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a new gym
func (r *GymRepository) Create(ctx context.Context, gym *models.Gym) error {
	query := squirrel.Insert("gyms").
		Columns("id", "name", "address", "city", "description", "phone", "email", "capacity",
			"equipment", "specialized_exercise_types", "status", "owner_id").
		Values(gym.ID, gym.Name, gym.Address, gym.City, gym.Description, gym.Phone, gym.Email, gym.Capacity,
			gym.Equipment, gym.SpecializedExerciseTypes, gym.Status, gym.OwnerID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&gym.CreatedAt, &gym.UpdatedAt); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// GetByID retrieves a gym by ID
func (r *GymRepository) GetByID(ctx context.Context, id string) (*models.Gym, error) {
	query := squirrel.Select(gymColumns...).
		From("gyms").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	gym, err := scanGym(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGymNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return gym, nil
}

// GetAll retrieves gyms, optionally filtered by status and city
func (r *GymRepository) GetAll(ctx context.Context, status models.GymStatus, city string) ([]*models.Gym, error) {
	query := squirrel.Select(gymColumns...).
		From("gyms").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}

	return r.queryGyms(ctx, query)
}

// GetByOwnerID retrieves all gyms registered by an owner
func (r *GymRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Gym, error) {
	query := squirrel.Select(gymColumns...).
		From("gyms").
		Where("owner_id = ?", ownerID).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryGyms(ctx, query)
}

// Update persists the mutable gym fields
func (r *GymRepository) Update(ctx context.Context, gym *models.Gym) error {
	query := squirrel.Update("gyms").
		Set("name", gym.Name).
		Set("address", gym.Address).
		Set("city", gym.City).
		Set("description", gym.Description).
		Set("phone", gym.Phone).
		Set("email", gym.Email).
		Set("capacity", gym.Capacity).
		Set("equipment", gym.Equipment).
		Set("specialized_exercise_types", gym.SpecializedExerciseTypes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", gym.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	return r.exec(ctx, sql, args, err)
}

// UpdateStatus changes a gym's review status
func (r *GymRepository) UpdateStatus(ctx context.Context, id string, status models.GymStatus) error {
	query := squirrel.Update("gyms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	return r.exec(ctx, sql, args, err)
}

// Delete removes a gym
func (r *GymRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("gyms").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	return r.exec(ctx, sql, args, err)
}

func (r *GymRepository) queryGyms(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Gym, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var gyms []*models.Gym
	for rows.Next() {
		gym, err := scanGym(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		gyms = append(gyms, gym)
	}
	return gyms, rows.Err()
}

func (r *GymRepository) exec(ctx context.Context, sql string, args []interface{}, buildErr error) error {
	if buildErr != nil {
		return fmt.Errorf("error building SQL: %w", buildErr)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGymNotFound
	}
	return nil
}
