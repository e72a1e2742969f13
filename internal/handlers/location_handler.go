package handlers

import (
	"catalog-backend/internal/services"
	"catalog-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LocationHandler struct {
	service services.LocationService
	logger  *logrus.Logger
}

func NewLocationHandler(service services.LocationService, logger *logrus.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllLocations godoc
// @Summary List storage locations
// @Tags locations
// @Produce json
// @Success 200 {array} models.Location
// @Router /locations [get]
func (h *LocationHandler) GetAllLocations(c *fiber.Ctx) error {
	locations, err := h.service.GetAllLocations(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(locations)
}

// GetLocationByID godoc
// @Summary Get location by ID
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} models.Location
// @Failure 404 {object} utils.APIMessage "Location not found"
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocationByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	location, err := h.service.GetLocationByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(location)
}

// CountForLocation godoc
// @Summary Count movies and series stored in one location
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} models.LocationElementCount
// @Failure 404 {object} utils.APIMessage "Location not found"
// @Router /locations/{id}/count [get]
func (h *LocationHandler) CountForLocation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	counts, err := h.service.CountForLocation(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(counts)
}

// CountForLocations godoc
// @Summary Count movies and series per location
// @Description Locations holding nothing are listed with zero counts
// @Tags locations
// @Produce json
// @Success 200 {array} models.LocationCount
// @Router /locations/count [get]
func (h *LocationHandler) CountForLocations(c *fiber.Ctx) error {
	counts, err := h.service.CountForLocations(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(counts)
}

// CreateLocation godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Success 201 {object} utils.APIMessage "Created, body carries the new id"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	id, err := h.service.CreateLocation(c.Context(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.CreatedResponse(c, "Location successfully created", id)
}

// UpdateLocation godoc
// @Summary Update a location
// @Description Responds 205 when a row changed, 204 when nothing changed
// @Tags locations
// @Accept json
// @Param id path int true "Location ID"
// @Success 205 "Location modified"
// @Success 204 "Nothing to modify"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	modified, err := h.service.UpdateLocation(c.Context(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if modified {
		return c.SendStatus(fiber.StatusResetContent)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteLocation godoc
// @Summary Delete a location
// @Description Also removes every movie and serie stored in it
// @Tags locations
// @Param id path int true "Location ID"
// @Success 204 "Location deleted"
// @Failure 404 {object} utils.APIMessage "Location not found"
// @Router /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.service.DeleteLocation(c.Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
