package handlers

import (
	"catalog-backend/internal/services"
	"catalog-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SerieHandler struct {
	service services.SerieService
	logger  *logrus.Logger
}

func NewSerieHandler(service services.SerieService, logger *logrus.Logger) *SerieHandler {
	return &SerieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllSeries godoc
// @Summary List series
// @Description List series with optional attribute projection, search, sorting and pagination
// @Tags series
// @Produce json
// @Param attributes query string false "Comma-separated columns to return"
// @Param sort query string false "Sort column, prefix with - for descending" default(title)
// @Param offset query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(99999)
// @Param title query string false "Substring match on title"
// @Param location query int false "Exact match on location id"
// @Param season query int false "Exact match on season"
// @Success 200 {array} repository.Record
// @Failure 400 {object} utils.APIMessage "Unauthorized field in query"
// @Router /series [get]
func (h *SerieHandler) GetAllSeries(c *fiber.Ctx) error {
	series, err := h.service.GetAllSeries(c.Context(), c.Queries())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(series)
}

// GetSerieByID godoc
// @Summary Get serie by ID
// @Tags series
// @Produce json
// @Param id path int true "Serie ID"
// @Success 200 {object} repository.Record
// @Failure 404 {object} utils.APIMessage "Serie not found"
// @Router /series/{id} [get]
func (h *SerieHandler) GetSerieByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	serie, err := h.service.GetSerieByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(serie)
}

// CountSeries godoc
// @Summary Count series
// @Tags series
// @Produce json
// @Param title query string false "Substring match on title"
// @Success 200 {object} map[string]int64
// @Router /series/count [get]
func (h *SerieHandler) CountSeries(c *fiber.Ctx) error {
	count, err := h.service.CountSeries(c.Context(), c.Query("title"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// CreateSerie godoc
// @Summary Create a serie
// @Tags series
// @Accept json
// @Produce json
// @Success 201 {object} utils.APIMessage "Created, body carries the new id"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /series [post]
func (h *SerieHandler) CreateSerie(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	id, err := h.service.CreateSerie(c.Context(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.CreatedResponse(c, "Serie successfully created", id)
}

// UpdateSerie godoc
// @Summary Update a serie
// @Description Responds 205 when a row changed, 204 when nothing changed
// @Tags series
// @Accept json
// @Param id path int true "Serie ID"
// @Success 205 "Serie modified"
// @Success 204 "Nothing to modify"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /series/{id} [put]
func (h *SerieHandler) UpdateSerie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	modified, err := h.service.UpdateSerie(c.Context(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if modified {
		return c.SendStatus(fiber.StatusResetContent)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteSerie godoc
// @Summary Delete a serie
// @Tags series
// @Param id path int true "Serie ID"
// @Success 204 "Serie deleted"
// @Failure 404 {object} utils.APIMessage "Serie not found"
// @Router /series/{id} [delete]
func (h *SerieHandler) DeleteSerie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.service.DeleteSerie(c.Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
