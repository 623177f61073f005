package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/middleware"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/storage"
)

type InstructorRequest struct {
	ProfessionalTitle     string   `json:"professionalTitle" validate:"required"`
	YearsExperience       int      `json:"yearsExperience" validate:"gte=0"`
	Location              *string  `json:"location"`
	Bio                   *string  `json:"bio"`
	Specializations       []string `json:"specializations"`
	MinHourlyRate         float64  `json:"minHourlyRate" validate:"required,gt=0"`
	DesiredHourlyRate     float64  `json:"desiredHourlyRate" validate:"required,gtfield=MinHourlyRate"`
	VerificationDocuments []string `json:"verificationDocuments"`
}

func (h *Handler) CreateInstructor(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	var req InstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if _, err := h.store.GetInstructorByUserID(userID); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Instructor profile already exists"})
	}

	instructor := models.Instructor{
		UserID:                userID,
		ProfessionalTitle:     req.ProfessionalTitle,
		YearsExperience:       req.YearsExperience,
		Location:              req.Location,
		Bio:                   req.Bio,
		Specializations:       req.Specializations,
		MinHourlyRate:         req.MinHourlyRate,
		DesiredHourlyRate:     req.DesiredHourlyRate,
		VerificationStatus:    "pending",
		VerificationDocuments: req.VerificationDocuments,
	}
	if err := h.store.CreateInstructor(&instructor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create instructor profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(instructor)
}

func (h *Handler) UpdateInstructor(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	instructorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid instructor id"})
	}

	instructor, err := h.store.GetInstructor(instructorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Instructor not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch instructor"})
	}
	if instructor.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "This is not your instructor profile"})
	}

	var req InstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	instructor.ProfessionalTitle = req.ProfessionalTitle
	instructor.YearsExperience = req.YearsExperience
	instructor.MinHourlyRate = req.MinHourlyRate
	instructor.DesiredHourlyRate = req.DesiredHourlyRate
	if req.Location != nil {
		instructor.Location = req.Location
	}
	if req.Bio != nil {
		instructor.Bio = req.Bio
	}
	if req.Specializations != nil {
		instructor.Specializations = req.Specializations
	}
	if req.VerificationDocuments != nil {
		instructor.VerificationDocuments = req.VerificationDocuments
	}

	if err := h.store.SaveInstructor(instructor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update instructor profile"})
	}

	return c.JSON(instructor)
}

// SearchInstructors is the public matching query: verified instructors whose
// rate range overlaps the given budget range, best rated first.
func (h *Handler) SearchInstructors(c *fiber.Ctx) error {
	minParam := c.Query("minBudget")
	maxParam := c.Query("maxBudget")
	if minParam == "" || maxParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Budget range required"})
	}

	minBudget, err := strconv.ParseFloat(minParam, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid minBudget"})
	}
	maxBudget, err := strconv.ParseFloat(maxParam, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid maxBudget"})
	}

	instructors, err := h.store.GetInstructorsInBudgetRange(minBudget, maxBudget)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to search instructors"})
	}

	return c.JSON(instructors)
}
