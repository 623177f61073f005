package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/instructormatch/instructor_match/handlers"
	"github.com/instructormatch/instructor_match/middleware"
)

func ProfileRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	companies := api.Group("/companies", middleware.Protected())
	companies.Post("", h.CreateCompany)
	companies.Put("/:id", h.UpdateCompany)

	// The search endpoint is public; everything else requires auth.
	api.Get("/instructors/search", h.SearchInstructors)

	instructors := api.Group("/instructors", middleware.Protected())
	instructors.Post("", h.CreateInstructor)
	instructors.Put("/:id", h.UpdateInstructor)
}
