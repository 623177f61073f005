package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/middleware"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/storage"
)

type CompanyRequest struct {
	CompanyName string  `json:"companyName" validate:"required"`
	Industry    *string `json:"industry"`
	CompanySize *string `json:"companySize"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
}

func (h *Handler) CreateCompany(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	var req CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if _, err := h.store.GetCompanyByUserID(userID); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Company profile already exists"})
	}

	company := models.Company{
		UserID:      userID,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	}
	if err := h.store.CreateCompany(&company); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create company profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(company)
}

func (h *Handler) UpdateCompany(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	companyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid company id"})
	}

	company, err := h.store.GetCompany(companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch company"})
	}
	if company.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "This is not your company profile"})
	}

	var req CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	company.CompanyName = req.CompanyName
	if req.Industry != nil {
		company.Industry = req.Industry
	}
	if req.CompanySize != nil {
		company.CompanySize = req.CompanySize
	}
	if req.Description != nil {
		company.Description = req.Description
	}
	if req.Website != nil {
		company.Website = req.Website
	}
	if req.Location != nil {
		company.Location = req.Location
	}

	if err := h.store.SaveCompany(company); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update company profile"})
	}

	return c.JSON(company)
}
