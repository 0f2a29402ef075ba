package router

import (
	"errors"
	"fmt"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/handlers"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/middleware"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/types"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/utils"
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"gorm.io/gorm"

	_ "github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/docs/api" // Swagger docs
)

// Options toggles the process-wide parts of the app
type Options struct {
	// Metrics registers the prometheus collectors, which can happen once per process
	Metrics   bool
	Swagger   bool
	AccessLog bool
}

// New builds the fiber app serving the routes of the schema
func New(db *gorm.DB, schema string, opts Options) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		// Trailing slashes are not significant
		StrictRouting: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(compress.New())
	app.Use(cors.New())

	// Prometheus metrics
	if opts.Metrics {
		prometheus := fiberprometheus.New("starwars")
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}

	// Swagger documentation
	if opts.Swagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Get("/", handlers.Sitemap(app))

	switch schema {
	case config.SchemaFavorites:
		registerFavorites(app, &handlers.FavoritesHandler{DB: db})
	case config.SchemaProfile:
		registerProfile(app, &handlers.ProfileHandler{DB: db})
	default:
		return nil, fmt.Errorf("unknown schema: %s", schema)
	}

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "Resource Not Found")
	})

	return app, nil
}

func registerFavorites(app *fiber.App, h *handlers.FavoritesHandler) {
	users := app.Group("/users")
	users.Get("", h.ListUsers)
	users.Post("", h.CreateUser)
	users.Get("/:id", h.GetUser)
	users.Delete("/:id", h.DeleteUser)
	users.Get("/:id/favorites", h.ListFavorites)
	users.Get("/:id/favorites/planets", h.ListFavPlanets)
	users.Get("/:id/favorites/peoples", h.ListFavPeoples)
	users.Post("/:id/favorites/planets/:planet_id", h.AddFavPlanet)
	users.Delete("/:id/favorites/planets/:planet_id", h.RemoveFavPlanet)
	users.Post("/:id/favorites/peoples/:people_id", h.AddFavPeople)
	users.Delete("/:id/favorites/peoples/:people_id", h.RemoveFavPeople)

	planets := app.Group("/planets")
	planets.Get("", h.ListPlanets)
	planets.Post("", h.CreatePlanet)
	planets.Get("/:id", h.GetPlanet)
	planets.Delete("/:id", h.DeletePlanet)

	peoples := app.Group("/peoples")
	peoples.Get("", h.ListPeoples)
	peoples.Post("", h.CreatePeople)
	peoples.Get("/:id", h.GetPeople)
	peoples.Delete("/:id", h.DeletePeople)
}

func registerProfile(app *fiber.App, h *handlers.ProfileHandler) {
	admin := app.Group("/admin")

	admin.Get("/user", h.ListUsers)
	admin.Post("/user", h.CreateUser)
	admin.Get("/user/:id", h.GetUser)
	admin.Delete("/user/:id", h.DeleteUser)

	admin.Get("/profile", h.ListProfiles)
	admin.Post("/profile", h.CreateProfile)
	admin.Delete("/profile/:id", h.DeleteProfile)
	admin.Get("/profile/:id/planets", h.ProfilePlanets)
	admin.Get("/profile/:id/peoples", h.ProfilePeoples)
	admin.Post("/profile/:id/planets/:planet_id", h.AddProfilePlanet)
	admin.Delete("/profile/:id/planets/:planet_id", h.RemoveProfilePlanet)
	admin.Post("/profile/:id/peoples/:people_id", h.AddProfilePeople)
	admin.Delete("/profile/:id/peoples/:people_id", h.RemoveProfilePeople)

	admin.Get("/planets", h.ListPlanets)
	admin.Post("/planets", h.CreatePlanet)
	admin.Get("/planets/:id", h.GetPlanet)
	admin.Delete("/planets/:id", h.DeletePlanet)

	admin.Get("/peoples", h.ListPeoples)
	admin.Post("/peoples", h.CreatePeople)
	admin.Get("/peoples/:id", h.GetPeople)
	admin.Delete("/peoples/:id", h.DeletePeople)
}

// ErrorHandler serializes errors returned by handlers. An APIError keeps its
// declared status, fiber errors keep theirs, everything else is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Code).JSON(apiErr.ToMap())
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return utils.ErrorResponse(c, fiberErr.Message, fiberErr.Code)
	}

	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError)
}
