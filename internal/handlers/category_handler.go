package handlers

import (
	"catalog-backend/internal/services"
	"catalog-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	service services.CategoryService
	logger  *logrus.Logger
}

func NewCategoryHandler(service services.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param attributes query string false "Comma-separated columns to return"
// @Param sort query string false "Sort column, prefix with - for descending" default(label)
// @Param category query string false "Substring match on label"
// @Success 200 {array} repository.Record
// @Failure 400 {object} utils.APIMessage "Unauthorized field in query"
// @Router /categories [get]
func (h *CategoryHandler) GetAllCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.Context(), c.Queries())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(categories)
}

// GetCategoryByID godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} utils.APIMessage "Category not found"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	category, err := h.service.GetCategoryByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(category)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Success 201 {object} utils.APIMessage "Created, body carries the new id"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	id, err := h.service.CreateCategory(c.Context(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.CreatedResponse(c, "Category successfully created", id)
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Responds 205 when a row changed, 204 when nothing changed
// @Tags categories
// @Accept json
// @Param id path int true "Category ID"
// @Success 205 "Category modified"
// @Success 204 "Nothing to modify"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	modified, err := h.service.UpdateCategory(c.Context(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if modified {
		return c.SendStatus(fiber.StatusResetContent)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Also removes its links to movies and series
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204 "Category deleted"
// @Failure 404 {object} utils.APIMessage "Category not found"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.service.DeleteCategory(c.Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
