package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/instructormatch/instructor_match/handlers"
	"github.com/instructormatch/instructor_match/middleware"
)

func ReviewRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	api.Post("/reviews", middleware.Protected(), h.CreateReview)
	api.Get("/reviews/instructor/:instructorId", h.ListInstructorReviews)
}
