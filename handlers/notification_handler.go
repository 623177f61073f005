package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/middleware"
	"github.com/instructormatch/instructor_match/storage"
)

func (h *Handler) ListNotifications(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	list, err := h.store.GetNotificationsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch notifications"})
	}

	return c.JSON(list)
}

func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid notification id"})
	}

	notification, err := h.store.GetNotification(notificationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Notification not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch notification"})
	}
	if notification.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "This is not your notification"})
	}

	notification.IsRead = true
	if err := h.store.SaveNotification(notification); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update notification"})
	}

	return c.JSON(notification)
}
