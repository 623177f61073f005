package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/middleware"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/storage"
)

type CreateTrainingRequestRequest struct {
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description" validate:"required"`
	TrainingType       string     `json:"trainingType" validate:"required"`
	Duration           string     `json:"duration" validate:"required"`
	MinBudget          float64    `json:"minBudget" validate:"required,gt=0"`
	MaxBudget          float64    `json:"maxBudget" validate:"required,gtfield=MinBudget"`
	Location           *string    `json:"location"`
	IsRemote           bool       `json:"isRemote"`
	PreferredStartDate *time.Time `json:"preferredStartDate"`
}

// CreateTrainingRequest posts a request and notifies every eligible
// instructor; creation and fan-out commit or fail together.
func (h *Handler) CreateTrainingRequest(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	company, err := h.store.GetCompanyByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Company profile required"})
	}

	var req CreateTrainingRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	request := models.TrainingRequest{
		CompanyID:          company.ID,
		Title:              req.Title,
		Description:        req.Description,
		TrainingType:       req.TrainingType,
		Duration:           req.Duration,
		MinBudget:          req.MinBudget,
		MaxBudget:          req.MaxBudget,
		Location:           req.Location,
		IsRemote:           req.IsRemote,
		PreferredStartDate: req.PreferredStartDate,
		Status:             models.RequestStatusOpen,
	}
	if err := h.store.CreateTrainingRequest(&request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create training request"})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// ListTrainingRequests returns the caller's company requests when
// ?type=company, otherwise all open requests. Newest first either way.
func (h *Handler) ListTrainingRequests(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	if c.Query("type") == models.UserTypeCompany {
		company, err := h.store.GetCompanyByUserID(userID)
		if err != nil {
			return c.JSON([]models.TrainingRequest{})
		}
		requests, err := h.store.GetTrainingRequestsByCompany(company.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch training requests"})
		}
		return c.JSON(requests)
	}

	requests, err := h.store.GetOpenTrainingRequests()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch training requests"})
	}
	return c.JSON(requests)
}

type UpdateTrainingRequestRequest struct {
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	Status               *string    `json:"status"`
	SelectedInstructorID *uuid.UUID `json:"selectedInstructorId"`
}

func (h *Handler) UpdateTrainingRequest(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request id"})
	}

	request, err := h.store.GetTrainingRequest(requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Training request not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch training request"})
	}

	company, err := h.store.GetCompanyByUserID(userID)
	if err != nil || company.ID != request.CompanyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "This is not your training request"})
	}

	var req UpdateTrainingRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	if req.Status != nil {
		if !models.IsRequestStatus(*req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
		}
		if !models.CanTransitionRequestStatus(request.Status, *req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request status can only move forward"})
		}
		request.Status = *req.Status
	}

	if req.SelectedInstructorID != nil {
		// The selected instructor is fixed at the moment the request goes
		// in progress.
		if request.Status != models.RequestStatusInProgress {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "An instructor can only be selected on an in-progress request"})
		}
		request.SelectedInstructorID = req.SelectedInstructorID
	}

	if req.Title != nil {
		request.Title = *req.Title
	}
	if req.Description != nil {
		request.Description = *req.Description
	}

	if err := h.store.SaveTrainingRequest(request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update training request"})
	}

	return c.JSON(request)
}
