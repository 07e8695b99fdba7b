package repository

import (
	"context"
	"errors"
	"fmt"

	"car_market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines operations for product data. Update and Delete
// conjoin the record ID with created_by in the query itself, so a mutation by
// a non-owner is indistinguishable from the record not existing.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) (bool, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (*model.Product, error)
}

type productRepository struct {
	db DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, description, price, created_by`

// Create inserts a new product into the database
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	sql := `INSERT INTO products (name, description, price, created_by)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, product.Name, product.Description, product.Price, product.CreatedBy).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its ID. Reads are not ownership-scoped.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product := &model.Product{}
	sql := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, nil
}

// FindAll retrieves every product
func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// Update replaces the mutable fields of a product owned by product.CreatedBy.
// Returns false when no record matches both the ID and the owner.
func (r *productRepository) Update(ctx context.Context, product *model.Product) (bool, error) {
	sql := `UPDATE products SET name = $1, description = $2, price = $3
            WHERE id = $4 AND created_by = $5 RETURNING id` // ownership check lives in the query
	err := r.db.QueryRow(ctx, sql, product.Name, product.Description, product.Price, product.ID, product.CreatedBy).Scan(&product.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update product: %w", err)
	}
	return true, nil
}

// Delete removes a product owned by userID and returns the deleted record.
// Returns nil when no record matches both the ID and the owner.
func (r *productRepository) Delete(ctx context.Context, id, userID uuid.UUID) (*model.Product, error) {
	product := &model.Product{}
	sql := `DELETE FROM products WHERE id = $1 AND created_by = $2 RETURNING ` + productColumns
	err := r.db.QueryRow(ctx, sql, id, userID).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	return product, nil
}
