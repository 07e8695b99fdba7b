package service

import (
	"context"
	"errors"
	"fmt"

	"car_market/internal/model"
	"car_market/internal/repository"

	"github.com/google/uuid"
)

var ErrCarNotFound = errors.New("car not found")

// CarService defines operations for car listings
type CarService interface {
	CreateCar(ctx context.Context, req model.CreateCarRequest) (*model.Car, error)
	GetCarByID(ctx context.Context, id uuid.UUID) (*model.Car, error)
	GetAllCars(ctx context.Context) ([]model.Car, error)
	SearchCars(ctx context.Context, keyword string) ([]model.Car, error)
	UpdateCar(ctx context.Context, id uuid.UUID, req model.UpdateCarRequest) (*model.Car, error)
	DeleteCar(ctx context.Context, id uuid.UUID) error
}

type carService struct {
	repo repository.CarRepository
}

// NewCarService creates a new CarService
func NewCarService(repo repository.CarRepository) CarService {
	return &carService{repo: repo}
}

func (s *carService) CreateCar(ctx context.Context, req model.CreateCarRequest) (*model.Car, error) {
	if verr := model.ValidateCarImages(req.Images); verr != nil {
		return nil, verr
	}

	car := &model.Car{
		Title:       req.Title,
		Description: req.Description,
		Tags:        normalized(req.Tags),
		Images:      normalized(req.Images),
	}

	if err := s.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car in repo: %w", err)
	}
	return car, nil
}

func (s *carService) GetCarByID(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find car by ID: %w", err)
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	return car, nil
}

func (s *carService) GetAllCars(ctx context.Context) ([]model.Car, error) {
	cars, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cars from repo: %w", err)
	}
	return cars, nil
}

func (s *carService) SearchCars(ctx context.Context, keyword string) ([]model.Car, error) {
	cars, err := s.repo.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search cars in repo: %w", err)
	}
	return cars, nil
}

func (s *carService) UpdateCar(ctx context.Context, id uuid.UUID, req model.UpdateCarRequest) (*model.Car, error) {
	if verr := model.ValidateCarImages(req.Images); verr != nil {
		return nil, verr
	}

	car := &model.Car{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Tags:        normalized(req.Tags),
		Images:      normalized(req.Images),
	}

	found, err := s.repo.Update(ctx, car)
	if err != nil {
		return nil, fmt.Errorf("failed to update car in repo: %w", err)
	}
	if !found {
		return nil, ErrCarNotFound
	}
	return car, nil
}

func (s *carService) DeleteCar(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete car in repo: %w", err)
	}
	if !found {
		return ErrCarNotFound
	}
	return nil
}

// normalized substitutes an empty slice for nil so listings always serialize
// with [] rather than null.
func normalized(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
