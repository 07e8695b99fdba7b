package handler

import (
	"errors"
	"net/http"

	"car_market/internal/model"
	"car_market/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CarHandler handles car listing requests. Car CRUD is deliberately open:
// listings carry no owner, so no authentication is required.
type CarHandler struct {
	service service.CarService
	log     *zap.Logger
}

// NewCarHandler creates a new CarHandler
func NewCarHandler(s service.CarService, log *zap.Logger) *CarHandler {
	return &CarHandler{service: s, log: log}
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	var req model.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	car, err := h.service.CreateCar(c.Request.Context(), req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Reason})
			return
		}
		h.log.Error("Failed to create car", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create car"})
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (h *CarHandler) GetAllCars(c *gin.Context) {
	cars, err := h.service.GetAllCars(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get cars", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve cars"})
		return
	}
	if cars == nil {
		cars = []model.Car{}
	}
	c.JSON(http.StatusOK, cars)
}

func (h *CarHandler) SearchCars(c *gin.Context) {
	keyword := c.Query("keyword")

	cars, err := h.service.SearchCars(c.Request.Context(), keyword)
	if err != nil {
		h.log.Error("Failed to search cars", zap.String("keyword", keyword), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to search cars"})
		return
	}
	if cars == nil {
		cars = []model.Car{}
	}
	c.JSON(http.StatusOK, cars)
}

func (h *CarHandler) GetCarByID(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid car ID"})
		return
	}

	car, err := h.service.GetCarByID(c.Request.Context(), carID)
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Car not found"})
			return
		}
		h.log.Error("Failed to get car by ID", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve car"})
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid car ID"})
		return
	}

	var req model.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	car, err := h.service.UpdateCar(c.Request.Context(), carID, req)
	if err != nil {
		var verr *model.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Reason})
		case errors.Is(err, service.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Car not found"})
		default:
			h.log.Error("Failed to update car", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update car"})
		}
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid car ID"})
		return
	}

	if err := h.service.DeleteCar(c.Request.Context(), carID); err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Car not found"})
			return
		}
		h.log.Error("Failed to delete car", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete car"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}

// RegisterCarRoutes registers car routes
func (h *CarHandler) RegisterCarRoutes(rg *gin.RouterGroup) {
	carRoutes := rg.Group("/cars")
	{
		carRoutes.POST("", h.CreateCar)
		carRoutes.GET("", h.GetAllCars)
		carRoutes.GET("/search", h.SearchCars)
		carRoutes.GET("/:id", h.GetCarByID)
		carRoutes.PUT("/:id", h.UpdateCar)
		carRoutes.DELETE("/:id", h.DeleteCar)
	}
}
