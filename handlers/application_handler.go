package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/middleware"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/notifications"
	"github.com/instructormatch/instructor_match/storage"
)

type CreateApplicationRequest struct {
	RequestID    string  `json:"requestId" validate:"required,uuid"`
	ProposedRate float64 `json:"proposedRate" validate:"required,gt=0"`
	CoverLetter  *string `json:"coverLetter"`
}

func (h *Handler) CreateApplication(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	instructor, err := h.store.GetInstructorByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Instructor profile required"})
	}

	var req CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	requestID, _ := uuid.Parse(req.RequestID)

	request, err := h.store.GetTrainingRequest(requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Training request not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch training request"})
	}

	if req.ProposedRate < request.MinBudget || req.ProposedRate > request.MaxBudget {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Proposed rate must be within the request's budget range"})
	}

	application := models.Application{
		RequestID:    request.ID,
		InstructorID: instructor.ID,
		ProposedRate: req.ProposedRate,
		CoverLetter:  req.CoverLetter,
		Status:       models.ApplicationStatusPending,
	}
	if err := h.store.CreateApplication(&application); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create application"})
	}

	// Tell the request's company. Not transactional with the insert; a lost
	// notification is tolerated here.
	if company, err := h.store.GetCompany(request.CompanyID); err == nil {
		title, message := notifications.ApplicationReceived(request.Title)
		now := time.Now()
		_ = h.store.CreateNotification(&models.Notification{
			UserID:  company.UserID,
			Title:   title,
			Message: message,
			Type:    notifications.TypeEmail,
			SentAt:  &now,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

// ListApplications lists by request (instructor embedded) or by instructor
// (request embedded).
func (h *Handler) ListApplications(c *fiber.Ctx) error {
	if requestParam := c.Query("requestId"); requestParam != "" {
		requestID, err := uuid.Parse(requestParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid requestId"})
		}
		applications, err := h.store.GetApplicationsByRequest(requestID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch applications"})
		}
		return c.JSON(applications)
	}

	if instructorParam := c.Query("instructorId"); instructorParam != "" {
		instructorID, err := uuid.Parse(instructorParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid instructorId"})
		}
		applications, err := h.store.GetApplicationsByInstructor(instructorID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch applications"})
		}
		return c.JSON(applications)
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "requestId or instructorId required"})
}

type UpdateApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// UpdateApplication accepts or rejects a pending application. The decision is
// terminal.
func (h *Handler) UpdateApplication(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid application id"})
	}

	var req UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	application, err := h.store.GetApplication(applicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Application not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch application"})
	}

	if application.Status != models.ApplicationStatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Application has already been decided"})
	}

	application.Status = req.Status
	if err := h.store.SaveApplication(application); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update application"})
	}

	return c.JSON(application)
}
