package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/instructormatch/instructor_match/handlers"
	"github.com/instructormatch/instructor_match/middleware"
)

func NotificationRoutes(app *fiber.App, h *handlers.Handler) {
	notifications := app.Group("/api/notifications", middleware.Protected())
	notifications.Get("", h.ListNotifications)
	notifications.Put("/:id/read", h.MarkNotificationRead)
}
