package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"car_market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CarRepository defines operations for car listing data
type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Car, error)
	FindAll(ctx context.Context) ([]model.Car, error)
	Search(ctx context.Context, keyword string) ([]model.Car, error)
	Update(ctx context.Context, car *model.Car) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type carRepository struct {
	db DB
}

// NewCarRepository creates a new CarRepository
func NewCarRepository(db DB) CarRepository {
	return &carRepository{db: db}
}

const carColumns = `id, title, description, tags, images, created_at`

// Create inserts a new car listing into the database
func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	sql := `INSERT INTO cars (title, description, tags, images)
            VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, car.Title, car.Description, car.Tags, car.Images).Scan(&car.ID, &car.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

// FindByID retrieves a car listing by its ID
func (r *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	car := &model.Car{}
	sql := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&car.ID, &car.Title, &car.Description, &car.Tags, &car.Images, &car.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find car by ID: %w", err)
	}
	return car, nil
}

// FindAll retrieves every car listing, newest first
func (r *carRepository) FindAll(ctx context.Context) ([]model.Car, error) {
	sql := `SELECT ` + carColumns + ` FROM cars ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query cars: %w", err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// Search retrieves car listings whose title, description or any tag contains
// the keyword, case-insensitively. Matches are a plain union; no ranking.
func (r *carRepository) Search(ctx context.Context, keyword string) ([]model.Car, error) {
	sql := `SELECT ` + carColumns + ` FROM cars
            WHERE title ILIKE $1
               OR description ILIKE $1
               OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $1)
            ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, likePattern(keyword))
	if err != nil {
		return nil, fmt.Errorf("failed to search cars: %w", err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// Update replaces the mutable fields of a car listing. Returns false when no
// listing with that ID exists.
func (r *carRepository) Update(ctx context.Context, car *model.Car) (bool, error) {
	sql := `UPDATE cars SET title = $1, description = $2, tags = $3, images = $4
            WHERE id = $5 RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, car.Title, car.Description, car.Tags, car.Images, car.ID).Scan(&car.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update car: %w", err)
	}
	return true, nil
}

// Delete removes a car listing. Returns false when no listing with that ID exists.
func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	sql := `DELETE FROM cars WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete car: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func scanCars(rows pgx.Rows) ([]model.Car, error) {
	var cars []model.Car
	for rows.Next() {
		var car model.Car
		if err := rows.Scan(
			&car.ID, &car.Title, &car.Description, &car.Tags, &car.Images, &car.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan car row: %w", err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating car rows: %w", err)
	}
	return cars, nil
}

// likePattern wraps a keyword for substring matching, escaping the LIKE
// metacharacters so user input cannot widen the match.
func likePattern(keyword string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(keyword)
	return "%" + escaped + "%"
}
