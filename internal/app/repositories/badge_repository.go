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

// IBadgeRepository defines the interface for badge database operations
type IBadgeRepository interface {
	CreateBadge(ctx context.Context, badge *models.Badge) error
	GetBadgeByID(ctx context.Context, id string) (*models.Badge, error)
	GetAllBadges(ctx context.Context) ([]*models.Badge, error)
	BadgeExistsByName(ctx context.Context, name string) (bool, error)
	CreateRule(ctx context.Context, rule *models.BadgeRule) error
	GetActiveRules(ctx context.Context) ([]*models.BadgeRule, error)
	AwardBadge(ctx context.Context, userBadge *models.UserBadge) error
	GetUserBadges(ctx context.Context, userID string) ([]*models.UserBadge, error)
	HasBadge(ctx context.Context, userID, badgeID string) (bool, error)
	CountUserBadges(ctx context.Context, userID string) (int, error)
}

// BadgeRepository handles database operations for badges, award rules
// and awarded badges
type BadgeRepository struct {
	db *pgxpool.Pool
}

// NewBadgeRepository creates a new BadgeRepository
func NewBadgeRepository(db *pgxpool.Pool) *BadgeRepository {
	return &BadgeRepository{db: db}
}

var badgeColumns = []string{
	"id", "name", "description", "icon", "points_value", "is_active", "created_at",
}

func scanBadge(row pgx.Row) (*models.Badge, error) {
	var b models.Badge
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Description,
		&b.Icon,
		&b.PointsValue,
		&b.IsActive,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBadge inserts a badge definition
func (r *BadgeRepository) CreateBadge(ctx context.Context, badge *models.Badge) error {
	query := squirrel.Insert("badges").
		Columns("id", "name", "description", "icon", "points_value", "is_active").
		Values(badge.ID, badge.Name, badge.Description, badge.Icon, badge.PointsValue, badge.IsActive).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&badge.CreatedAt); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// GetBadgeByID retrieves a badge definition by ID
func (r *BadgeRepository) GetBadgeByID(ctx context.Context, id string) (*models.Badge, error) {
	query := squirrel.Select(badgeColumns...).
		From("badges").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	badge, err := scanBadge(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return badge, nil
}

// GetAllBadges retrieves the active badge catalog
func (r *BadgeRepository) GetAllBadges(ctx context.Context) ([]*models.Badge, error) {
	query := squirrel.Select(badgeColumns...).
		From("badges").
		Where("is_active = TRUE").
		OrderBy("name ASC").
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

	var badges []*models.Badge
	for rows.Next() {
		badge, err := scanBadge(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		badges = append(badges, badge)
	}
	return badges, rows.Err()
}

// BadgeExistsByName checks whether a badge with the given name exists
func (r *BadgeRepository) BadgeExistsByName(ctx context.Context, name string) (bool, error) {
	query := squirrel.Select("COUNT(*)").
		From("badges").
		Where("name = ?", name).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return count > 0, nil
}

// CreateRule inserts an award rule for a badge
func (r *BadgeRepository) CreateRule(ctx context.Context, rule *models.BadgeRule) error {
	query := squirrel.Insert("badge_rules").
		Columns("id", "rule_type", "operator", "target_value", "description", "badge_id").
		Values(rule.ID, rule.RuleType, rule.Operator, rule.TargetValue, rule.Description, rule.BadgeID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// GetActiveRules retrieves the award rules whose badge is still active
func (r *BadgeRepository) GetActiveRules(ctx context.Context) ([]*models.BadgeRule, error) {
	query := squirrel.Select("br.id", "br.rule_type", "br.operator", "br.target_value", "br.description", "br.badge_id").
		From("badge_rules br").
		Join("badges b ON b.id = br.badge_id").
		Where("b.is_active = TRUE").
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

	var rules []*models.BadgeRule
	for rows.Next() {
		var rule models.BadgeRule
		err := rows.Scan(&rule.ID, &rule.RuleType, &rule.Operator, &rule.TargetValue, &rule.Description, &rule.BadgeID)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		rules = append(rules, &rule)
	}
	return rules, rows.Err()
}

// AwardBadge records an awarded badge. A unique violation on
// (user_id, badge_id) is returned unwrapped so callers can treat a
// double award as a no-op.
func (r *BadgeRepository) AwardBadge(ctx context.Context, userBadge *models.UserBadge) error {
	query := squirrel.Insert("user_badges").
		Columns("id", "user_id", "badge_id").
		Values(userBadge.ID, userBadge.UserID, userBadge.BadgeID).
		Suffix("RETURNING awarded_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&userBadge.AwardedAt); err != nil {
		return err
	}
	return nil
}

// GetUserBadges retrieves the badges a user has earned, newest first
func (r *BadgeRepository) GetUserBadges(ctx context.Context, userID string) ([]*models.UserBadge, error) {
	query := squirrel.Select(
		"ub.id", "ub.user_id", "ub.badge_id", "ub.awarded_at",
		"b.id", "b.name", "b.description", "b.icon", "b.points_value", "b.is_active", "b.created_at",
	).
		From("user_badges ub").
		Join("badges b ON b.id = ub.badge_id").
		Where("ub.user_id = ?", userID).
		OrderBy("ub.awarded_at DESC").
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

	var earned []*models.UserBadge
	for rows.Next() {
		var ub models.UserBadge
		var b models.Badge
		err := rows.Scan(
			&ub.ID, &ub.UserID, &ub.BadgeID, &ub.AwardedAt,
			&b.ID, &b.Name, &b.Description, &b.Icon, &b.PointsValue, &b.IsActive, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		ub.Badge = &b
		earned = append(earned, &ub)
	}
	return earned, rows.Err()
}

// HasBadge checks whether a user has already been awarded a badge
func (r *BadgeRepository) HasBadge(ctx context.Context, userID, badgeID string) (bool, error) {
	query := squirrel.Select("COUNT(*)").
		From("user_badges").
		Where("user_id = ?", userID).
		Where("badge_id = ?", badgeID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return count > 0, nil
}

// CountUserBadges counts the badges a user has been awarded
func (r *BadgeRepository) CountUserBadges(ctx context.Context, userID string) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("user_badges").
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
