package handlers

import (
	"errors"

	"catalog-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps domain errors to HTTP statuses. Anything that is not a
// validation or not-found error turns into a generic 500 so datastore
// internals never reach the client.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	var validation *utils.ValidationError
	if errors.As(err, &validation) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validation.Message)
	}

	var notFound *utils.NotFoundError
	if errors.As(err, &notFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFound.Error())
	}

	logger.WithError(err).Error("Request failed")
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}

// parseID reads the :id path parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, &utils.ValidationError{Message: "Invalid id in path"}
	}
	return uint(id), nil
}

// parseBody decodes a JSON object body into a generic payload map.
func parseBody(c *fiber.Ctx) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return nil, &utils.ValidationError{Message: "Invalid request body"}
	}
	return payload, nil
}
