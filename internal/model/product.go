package model

import "github.com/google/uuid"

// Product represents a product record. CreatedBy scopes updates and deletes:
// only the creating user can mutate the record.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedBy   uuid.UUID `json:"created_by"`
}

// CreateProductRequest is used for creating a new product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

// UpdateProductRequest replaces the mutable fields of a product
type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}
