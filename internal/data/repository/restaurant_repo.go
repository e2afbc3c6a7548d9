package repository

import (
	"context"
	"fmt"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	// Inventory adjustment. ReserveTable decrements the count for the
	// given table type in a single conditional statement and reports
	// whether a table was actually taken; the count never goes below
	// zero even under concurrent callers. ReleaseTable increments
	// unconditionally and tolerates a missing restaurant.
	ReserveTable(ctx context.Context, id uuid.UUID, tableType entity.TableType) (bool, error)
	ReleaseTable(ctx context.Context, id uuid.UUID, tableType entity.TableType) error
}

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

// tableColumn maps a table type to its count column. The column name is
// interpolated into SQL, so anything outside the known set is rejected.
func tableColumn(tableType entity.TableType) (string, error) {
	switch tableType {
	case entity.TableTypeTwoSeater:
		return "two_seater", nil
	case entity.TableTypeFourSeater:
		return "four_seater", nil
	default:
		return "", fmt.Errorf("unknown table type %q", string(tableType))
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, description, image, two_seater, four_seater, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Description,
		restaurant.Image,
		restaurant.TwoSeater,
		restaurant.FourSeater,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("name", restaurant.Name),
		)
		return fmt.Errorf("create restaurant %s: %w", restaurant.Name, err)
	}

	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	query := `
		SELECT id, name, description, image, two_seater, four_seater, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`

	var restaurant entity.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.Image,
		&restaurant.TwoSeater,
		&restaurant.FourSeater,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return nil, fmt.Errorf("find restaurant by ID %s: %w", id.String(), err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, name, description, image, two_seater, four_seater, created_at, updated_at
		FROM restaurants
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find restaurants", zap.Error(err))
		return nil, fmt.Errorf("find restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*entity.Restaurant
	for rows.Next() {
		var restaurant entity.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Description,
			&restaurant.Image,
			&restaurant.TwoSeater,
			&restaurant.FourSeater,
			&restaurant.CreatedAt,
			&restaurant.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, &restaurant)
	}

	return restaurants, nil
}

func (r *restaurantRepository) ReserveTable(ctx context.Context, id uuid.UUID, tableType entity.TableType) (bool, error) {
	column, err := tableColumn(tableType)
	if err != nil {
		return false, err
	}

	// Conditional decrement in one statement. Two callers racing for the
	// last table cannot both pass the count > 0 guard.
	query := fmt.Sprintf(`
		UPDATE restaurants
		SET %s = %s - 1, updated_at = NOW()
		WHERE id = $1 AND %s > 0
	`, column, column, column)

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to reserve table",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
			zap.String("table_type", string(tableType)),
		)
		return false, fmt.Errorf("reserve %s table at restaurant %s: %w",
			string(tableType), id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *restaurantRepository) ReleaseTable(ctx context.Context, id uuid.UUID, tableType entity.TableType) error {
	column, err := tableColumn(tableType)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE restaurants
		SET %s = %s + 1, updated_at = NOW()
		WHERE id = $1
	`, column, column)

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to release table",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
			zap.String("table_type", string(tableType)),
		)
		return fmt.Errorf("release %s table at restaurant %s: %w",
			string(tableType), id.String(), err)
	}

	// A deleted restaurant is fine here: the reservation is still
	// cancelled, there is just no inventory left to give back.
	if result.RowsAffected() == 0 {
		r.log.Warn("Release skipped, restaurant no longer exists",
			zap.String("restaurant_id", id.String()),
			zap.String("table_type", string(tableType)),
		)
	}

	return nil
}
