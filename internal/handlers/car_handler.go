package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"car-registry-api/internal/models"
	"car-registry-api/internal/repositories"
)

// CarHandler translates transport input into repository calls for every car
// operation. The gin methods serve the long-running HTTP server; the
// Handle* methods in lambda.go serve the serverless deployment.
type CarHandler struct {
	repo   repositories.CarRepository
	logger *logrus.Logger
}

// NewCarHandler creates a new car handler.
func NewCarHandler(repo repositories.CarRepository, logger *logrus.Logger) *CarHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &CarHandler{
		repo:   repo,
		logger: logger,
	}
}

// @Summary List cars
// @Description Get every registered car
// @Tags cars
// @Produce json
// @Param limitPerPage query int false "Store page size used while scanning" default(100)
// @Success 200 {object} Response
// @Failure 500 {object} Response
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	opts := repositories.FindAllOptions{}
	if raw := c.Query("limitPerPage"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			opts.LimitPerPage = int32(v)
		}
	}

	cars, err := h.repo.FindAll(c.Request.Context(), opts)
	if err != nil {
		h.logger.WithError(err).Error("Error fetching cars")
		c.JSON(http.StatusInternalServerError, errorResponse(errInternal))
		return
	}
	if cars == nil {
		cars = []models.Car{}
	}

	c.JSON(http.StatusOK, listResponse(cars, len(cars)))
}

// @Summary Get a car
// @Description Get a car by its id
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse(errMissingIDParam))
		return
	}

	car, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error fetching car by id")
		c.JSON(http.StatusInternalServerError, errorResponse(errInternal))
		return
	}
	if car == nil {
		c.JSON(http.StatusNotFound, errorResponse(errCarNotFound))
		return
	}

	c.JSON(http.StatusOK, successResponse(car))
}

// @Summary Create a car
// @Description Register a new car; plate, make, model, year and owner are required
// @Tags cars
// @Accept json
// @Produce json
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(errInvalidJSON))
		return
	}

	if result := models.ValidateCarPayload(payload, true); !result.Valid {
		c.JSON(http.StatusBadRequest, errorResponse(result.Message))
		return
	}

	car, err := h.repo.Create(c.Request.Context(), carInputFromPayload(payload))
	if err != nil {
		h.logger.WithError(err).Error("Error creating car")
		c.JSON(http.StatusInternalServerError, errorResponse(errInternal))
		return
	}

	c.JSON(http.StatusCreated, messageResponse(car, msgCarCreated))
}

// @Summary Update a car
// @Description Partially update a car; at least one of plate, make, model, year, owner is required
// @Tags cars
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /cars/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse(errMissingIDParam))
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(errInvalidJSON))
		return
	}

	if !models.HasUpdatableFields(payload) {
		c.JSON(http.StatusBadRequest, errorResponse(errNoDataToUpdate))
		return
	}
	if result := models.ValidateCarPayload(payload, false); !result.Valid {
		c.JSON(http.StatusBadRequest, errorResponse(result.Message))
		return
	}
	normalizeYear(payload)

	existing, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error updating car")
		c.JSON(http.StatusInternalServerError, errorResponse(errInternal))
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, errorResponse(errCarNotFound))
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), id, payload)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error updating car")
		c.JSON(http.StatusInternalServerError, errorResponse(errInternal))
		return
	}

	c.JSON(http.StatusOK, messageResponse(updated, msgCarUpdated))
}

// @Summary Delete a car
// @Description Delete a car by its id
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse(errMissingIDParam))
		return
	}

	existing, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error deleting car")
		c.JSON(http.StatusInternalServerError, errorResponse(errInternal))
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, errorResponse(errCarNotFound))
		return
	}

	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error deleting car")
		c.JSON(http.StatusInternalServerError, errorResponse(errInternal))
		return
	}

	data := any(deleted)
	if deleted == nil {
		// The store reported no prior state; fall back to the record we
		// just located.
		data = existing
	}

	c.JSON(http.StatusOK, messageResponse(data, msgCarDeleted))
}

// carInputFromPayload converts a validated payload into a typed create input.
func carInputFromPayload(payload map[string]any) models.CarInput {
	year, _ := models.YearValue(payload["year"])
	return models.CarInput{
		Plate: stringField(payload, "plate"),
		Make:  stringField(payload, "make"),
		Model: stringField(payload, "model"),
		Year:  year,
		Owner: stringField(payload, "owner"),
	}
}

// normalizeYear replaces a raw year value with its coerced integer form so
// the store never sees a numeric string.
func normalizeYear(payload map[string]any) {
	if v, ok := payload["year"]; ok && v != nil {
		if year, valid := models.YearValue(v); valid {
			payload["year"] = year
		}
	}
}

// stringField reads a string value from the payload. Validation has already
// rejected non-string values for these fields.
func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
