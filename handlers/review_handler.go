package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/middleware"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/storage"
)

type CreateReviewRequest struct {
	ContractID string  `json:"contractId" validate:"required,uuid"`
	RevieweeID string  `json:"revieweeId" validate:"required,uuid"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	Comment    *string `json:"comment"`
	IsPublic   *bool   `json:"isPublic"`
}

// CreateReview appends a review for a completed contract and recomputes the
// reviewee instructor's running average rating.
func (h *Handler) CreateReview(c *fiber.Ctx) error {
	reviewerID := middleware.SubjectID(c)

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	contractID, _ := uuid.Parse(req.ContractID)
	revieweeID, _ := uuid.Parse(req.RevieweeID)

	contract, err := h.store.GetContract(contractID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Contract not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch contract"})
	}
	if contract.Status != models.ContractStatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Reviews can only be submitted for completed contracts"})
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	review := models.Review{
		ContractID: contractID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		IsPublic:   isPublic,
	}
	if err := h.store.CreateReview(&review); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create review"})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// ListInstructorReviews is public: all reviews received by the given user,
// newest first.
func (h *Handler) ListInstructorReviews(c *fiber.Ctx) error {
	revieweeID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid instructor id"})
	}

	reviews, err := h.store.GetReviewsByReviewee(revieweeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch reviews"})
	}

	return c.JSON(reviews)
}
