package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/instructormatch/instructor_match/handlers"
	"github.com/instructormatch/instructor_match/middleware"
)

// MarketplaceRoutes wires the request/application/contract workflow.
func MarketplaceRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	requests := api.Group("/training-requests", middleware.Protected())
	requests.Post("", h.CreateTrainingRequest)
	requests.Get("", h.ListTrainingRequests)
	requests.Put("/:id", h.UpdateTrainingRequest)

	applications := api.Group("/applications", middleware.Protected())
	applications.Post("", h.CreateApplication)
	applications.Get("", h.ListApplications)
	applications.Put("/:id", h.UpdateApplication)

	contracts := api.Group("/contracts", middleware.Protected())
	contracts.Post("", h.CreateContract)
	contracts.Get("", h.ListContracts)
	contracts.Put("/:id", h.UpdateContract)
}
