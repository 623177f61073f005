package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/instructormatch/instructor_match/handlers"
	"github.com/instructormatch/instructor_match/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/user", middleware.Protected(), h.CurrentUser)

	api.Put("/user/setup", middleware.Protected(), h.SetupUserType)
}
