package handlers

import (
	"catalog-backend/internal/services"
	"catalog-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommandHandler struct {
	service services.CommandService
	logger  *logrus.Logger
}

func NewCommandHandler(service services.CommandService, logger *logrus.Logger) *CommandHandler {
	return &CommandHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllCommands godoc
// @Summary List purchase commands
// @Tags commands
// @Produce json
// @Param attributes query string false "Comma-separated columns to return"
// @Param sort query string false "Sort column, prefix with - for descending" default(id)
// @Success 200 {array} models.Command
// @Failure 400 {object} utils.APIMessage "Unauthorized field in query"
// @Router /commands [get]
func (h *CommandHandler) GetAllCommands(c *fiber.Ctx) error {
	commands, err := h.service.GetAllCommands(c.Context(), c.Queries())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(commands)
}

// GetCommandByID godoc
// @Summary Get command by ID
// @Tags commands
// @Produce json
// @Param id path int true "Command ID"
// @Success 200 {object} models.Command
// @Failure 404 {object} utils.APIMessage "Command not found"
// @Router /commands/{id} [get]
func (h *CommandHandler) GetCommandByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	command, err := h.service.GetCommandByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(command)
}

// CreateCommand godoc
// @Summary Create a command
// @Tags commands
// @Accept json
// @Produce json
// @Success 201 {object} utils.APIMessage "Created, body carries the new id"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /commands [post]
func (h *CommandHandler) CreateCommand(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	id, err := h.service.CreateCommand(c.Context(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.CreatedResponse(c, "Command successfully created", id)
}

// UpdateCommand godoc
// @Summary Update a command
// @Description Responds 205 when a row changed, 204 when nothing changed
// @Tags commands
// @Accept json
// @Param id path int true "Command ID"
// @Success 205 "Command modified"
// @Success 204 "Nothing to modify"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /commands/{id} [put]
func (h *CommandHandler) UpdateCommand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	modified, err := h.service.UpdateCommand(c.Context(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if modified {
		return c.SendStatus(fiber.StatusResetContent)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCommand godoc
// @Summary Delete a command
// @Tags commands
// @Param id path int true "Command ID"
// @Success 204 "Command deleted"
// @Failure 404 {object} utils.APIMessage "Command not found"
// @Router /commands/{id} [delete]
func (h *CommandHandler) DeleteCommand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.service.DeleteCommand(c.Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
