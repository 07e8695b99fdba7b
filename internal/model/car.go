package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxCarImages is the upper bound on images attached to a single listing.
const MaxCarImages = 10

// Car represents a car listing. Listings carry no owner: any client may
// read, change or remove them.
type Car struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCarRequest is used for creating a new car listing
type CreateCarRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// UpdateCarRequest replaces the mutable fields of a listing
type UpdateCarRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// ValidationError describes a rejected input field. It is checked before any
// store mutation so invalid data never reaches the database.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidateCarImages enforces the image-count limit for create and update.
func ValidateCarImages(images []string) *ValidationError {
	if len(images) > MaxCarImages {
		return &ValidationError{
			Field:  "images",
			Reason: fmt.Sprintf("you can only upload up to %d images", MaxCarImages),
		}
	}
	return nil
}
