package routes

import (
	"catalog-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Movie    *handlers.MovieHandler
	Serie    *handlers.SerieHandler
	Location *handlers.LocationHandler
	Category *handlers.CategoryHandler
	Command  *handlers.CommandHandler
	Stats    *handlers.StatsHandler
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
}

// Setup registers every route. Authentication routes live at the root so a
// client can obtain a token before touching the guarded /api tree.
func Setup(app *fiber.App, h Handlers, authGuard fiber.Handler) {
	app.Post("/user", h.Auth.CreateUser)
	app.Post("/login", h.Auth.Login)
	app.Get("/login", h.Auth.CheckLogin)
	app.Get("/users/:username", h.Auth.GetUser)

	api := app.Group("/api", authGuard)
	v1 := api.Group("/v1")

	v1.Get("/healthcheck", h.Health.Healthcheck)

	// Count routes are registered before the :id routes so "count" is never
	// captured as an id.
	locations := v1.Group("/locations")
	{
		locations.Get("/count", h.Location.CountForLocations)
		locations.Get("/", h.Location.GetAllLocations)
		locations.Get("/:id/count", h.Location.CountForLocation)
		locations.Get("/:id", h.Location.GetLocationByID)
		locations.Post("/", h.Location.CreateLocation)
		locations.Put("/:id", h.Location.UpdateLocation)
		locations.Delete("/:id", h.Location.DeleteLocation)
	}

	movies := v1.Group("/movies")
	{
		movies.Get("/count", h.Movie.CountMovies)
		movies.Get("/", h.Movie.GetAllMovies)
		movies.Get("/:id", h.Movie.GetMovieByID)
		movies.Post("/", h.Movie.CreateMovie)
		movies.Put("/:id", h.Movie.UpdateMovie)
		movies.Delete("/:id", h.Movie.DeleteMovie)
	}

	series := v1.Group("/series")
	{
		series.Get("/count", h.Serie.CountSeries)
		series.Get("/", h.Serie.GetAllSeries)
		series.Get("/:id", h.Serie.GetSerieByID)
		series.Post("/", h.Serie.CreateSerie)
		series.Put("/:id", h.Serie.UpdateSerie)
		series.Delete("/:id", h.Serie.DeleteSerie)
	}

	categories := v1.Group("/categories")
	{
		categories.Get("/", h.Category.GetAllCategories)
		categories.Get("/:id", h.Category.GetCategoryByID)
		categories.Post("/", h.Category.CreateCategory)
		categories.Put("/:id", h.Category.UpdateCategory)
		categories.Delete("/:id", h.Category.DeleteCategory)
	}

	commands := v1.Group("/commands")
	{
		commands.Get("/", h.Command.GetAllCommands)
		commands.Get("/:id", h.Command.GetCommandByID)
		commands.Post("/", h.Command.CreateCommand)
		commands.Put("/:id", h.Command.UpdateCommand)
		commands.Delete("/:id", h.Command.DeleteCommand)
	}

	stats := v1.Group("/stats")
	{
		stats.Get("/", h.Stats.GetFullStats)
		stats.Get("/movies/years", h.Stats.GetMoviesByYear)
		stats.Get("/series/years", h.Stats.GetSeriesByYear)
	}
}
