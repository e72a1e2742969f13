package handlers

import (
	"catalog-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type HealthHandler struct {
	db     *database.Database
	logger *logrus.Logger
}

func NewHealthHandler(db *database.Database, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Healthcheck godoc
// @Summary Service health probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthcheck [get]
func (h *HealthHandler) Healthcheck(c *fiber.Ctx) error {
	if err := h.db.HealthCheck(); err != nil {
		h.logger.WithError(err).Error("Health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unhealthy",
			"database": "down",
		})
	}
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"database": "up",
	})
}
