package handlers

import (
	"catalog-backend/internal/services"
	"catalog-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description List movies with optional attribute projection, search, sorting and pagination
// @Tags movies
// @Produce json
// @Param attributes query string false "Comma-separated columns to return"
// @Param sort query string false "Sort column, prefix with - for descending" default(title)
// @Param offset query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(99999)
// @Param title query string false "Substring match on title"
// @Param location query int false "Exact match on location id"
// @Param director query string false "Substring match on director"
// @Param actors query string false "Exact match on actors"
// @Param year query string false "Substring match on year"
// @Success 200 {array} repository.Record
// @Failure 400 {object} utils.APIMessage "Unauthorized field in query"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.service.GetAllMovies(c.Context(), c.Queries())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(movies)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} repository.Record
// @Failure 404 {object} utils.APIMessage "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	movie, err := h.service.GetMovieByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(movie)
}

// CountMovies godoc
// @Summary Count movies
// @Tags movies
// @Produce json
// @Param title query string false "Substring match on title"
// @Success 200 {object} map[string]int64
// @Router /movies/count [get]
func (h *MovieHandler) CountMovies(c *fiber.Ctx) error {
	count, err := h.service.CountMovies(c.Context(), c.Query("title"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// CreateMovie godoc
// @Summary Create a movie
// @Tags movies
// @Accept json
// @Produce json
// @Success 201 {object} utils.APIMessage "Created, body carries the new id"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	id, err := h.service.CreateMovie(c.Context(), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.CreatedResponse(c, "Movie successfully created", id)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Responds 205 when a row changed, 204 when nothing changed
// @Tags movies
// @Accept json
// @Param id path int true "Movie ID"
// @Success 205 "Movie modified"
// @Success 204 "Nothing to modify"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	modified, err := h.service.UpdateMovie(c.Context(), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if modified {
		return c.SendStatus(fiber.StatusResetContent)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Param id path int true "Movie ID"
// @Success 204 "Movie deleted"
// @Failure 404 {object} utils.APIMessage "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.service.DeleteMovie(c.Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
