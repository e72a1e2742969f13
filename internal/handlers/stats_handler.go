package handlers

import (
	"catalog-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type StatsHandler struct {
	service services.StatsService
	logger  *logrus.Logger
}

func NewStatsHandler(service services.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger,
	}
}

// GetMoviesByYear godoc
// @Summary Movies per year
// @Tags stats
// @Produce json
// @Success 200 {array} models.YearMovieCount
// @Router /stats/movies/years [get]
func (h *StatsHandler) GetMoviesByYear(c *fiber.Ctx) error {
	rows, err := h.service.GetMoviesByYear(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(rows)
}

// GetSeriesByYear godoc
// @Summary Series per year
// @Tags stats
// @Produce json
// @Success 200 {array} models.YearSerieCount
// @Router /stats/series/years [get]
func (h *StatsHandler) GetSeriesByYear(c *fiber.Ctx) error {
	rows, err := h.service.GetSeriesByYear(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(rows)
}

// GetFullStats godoc
// @Summary Collection totals
// @Tags stats
// @Produce json
// @Success 200 {object} models.FullStats
// @Router /stats [get]
func (h *StatsHandler) GetFullStats(c *fiber.Ctx) error {
	stats, err := h.service.GetFullStats(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(stats)
}
