package service

import (
	"context"
	"errors"
	"fmt"

	"car_market/internal/model"
	"car_market/internal/repository"

	"github.com/google/uuid"
)

// ErrProductNotFound covers both a missing record and an ownership mismatch
// on update/delete, so callers cannot probe for other users' records.
var ErrProductNotFound = errors.New("product not found or unauthorized")

// ProductService defines operations for products
type ProductService interface {
	CreateProduct(ctx context.Context, userID uuid.UUID, req model.CreateProductRequest) (*model.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id, userID uuid.UUID, req model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id, userID uuid.UUID) (*model.Product, error)
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, userID uuid.UUID, req model.CreateProductRequest) (*model.Product, error) {
	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CreatedBy:   userID,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products from repo: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id, userID uuid.UUID, req model.UpdateProductRequest) (*model.Product, error) {
	product := &model.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CreatedBy:   userID,
	}

	found, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product in repo: %w", err)
	}
	if !found {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id, userID uuid.UUID) (*model.Product, error) {
	product, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product in repo: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
